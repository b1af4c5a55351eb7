// Package binding interprets the annotation families that rename, order,
// hide or expose bean properties. Each family is an Adapter; a Set queries
// the enabled adapters in priority order.
package binding

import (
	"fmt"

	"github.com/dhamidi/beanscan/java"
)

type Decision int

const (
	Undecided Decision = iota
	Expose
	Hide
)

func (d Decision) String() string {
	switch d {
	case Expose:
		return "expose"
	case Hide:
		return "hide"
	}
	return "undecided"
}

// Visibility is what a member's own annotations say about it. Decision
// applies to the member's scope (the whole property for fields, one direction
// for accessors); ReadOnly and WriteOnly restrict the property as a whole.
type Visibility struct {
	Decision  Decision
	ReadOnly  bool
	WriteOnly bool
}

type MemberKind int

const (
	FieldMember MemberKind = iota
	ReadMember
	WriteMember
)

// Member is the adapter-facing view of a field or accessor.
type Member struct {
	Kind        MemberKind
	Name        string
	Visibility  java.Visibility
	Annotations []java.AnnotationModel
}

// Order is a property order directive declared on a class. Names may match
// a property's logical or effective name.
type Order struct {
	Names        []string
	Alphabetical bool
	Source       string
}

type Adapter interface {
	Name() string
	// PropertyName returns an explicit name override.
	PropertyName(anns []java.AnnotationModel) (string, bool)
	Visibility(anns []java.AnnotationModel) Visibility
	// Access applies class level access directives to a member of class.
	Access(class *java.ClassModel, m Member) Decision
	Order(class *java.ClassModel) (Order, bool)
	// IgnoredProperties lists property names hidden by a class or member.
	IgnoredProperties(anns []java.AnnotationModel) []string
	IgnoresType(class *java.ClassModel) bool
	// Documents reports whether anns carry schema documentation.
	Documents(anns []java.AnnotationModel) bool
}

// Set is an ordered list of adapters; earlier adapters take precedence.
type Set []Adapter

var registry = []Adapter{Schema{}, JSONB{}, Jackson{}, JAXB{}}

// Names lists every known adapter name in priority order.
func Names() []string {
	names := make([]string, len(registry))
	for i, a := range registry {
		names[i] = a.Name()
	}
	return names
}

func All() Set {
	return append(Set(nil), registry...)
}

// NewSet returns the named adapters in priority order. An empty list means
// all adapters.
func NewSet(names ...string) (Set, error) {
	if len(names) == 0 {
		return All(), nil
	}
	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		found := false
		for _, a := range registry {
			if a.Name() == name {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown binding adapter %q (known: %v)", name, Names())
		}
		wanted[name] = true
	}
	var set Set
	for _, a := range registry {
		if wanted[a.Name()] {
			set = append(set, a)
		}
	}
	return set, nil
}

func (s Set) Names() []string {
	names := make([]string, len(s))
	for i, a := range s {
		names[i] = a.Name()
	}
	return names
}

func (s Set) PropertyName(anns []java.AnnotationModel) (string, bool) {
	for _, a := range s {
		if name, ok := a.PropertyName(anns); ok {
			return name, true
		}
	}
	return "", false
}

// Visibility takes the first adapter decision; direction restrictions from
// all adapters accumulate.
func (s Set) Visibility(anns []java.AnnotationModel) Visibility {
	var result Visibility
	for _, a := range s {
		v := a.Visibility(anns)
		if result.Decision == Undecided {
			result.Decision = v.Decision
		}
		result.ReadOnly = result.ReadOnly || v.ReadOnly
		result.WriteOnly = result.WriteOnly || v.WriteOnly
	}
	return result
}

func (s Set) Access(class *java.ClassModel, m Member) Decision {
	for _, a := range s {
		if d := a.Access(class, m); d != Undecided {
			return d
		}
	}
	return Undecided
}

// Orders returns the directives declared on class, lowest priority first, so
// that applying them in sequence leaves the highest priority adapter in
// charge.
func (s Set) Orders(class *java.ClassModel) []Order {
	var orders []Order
	for i := len(s) - 1; i >= 0; i-- {
		if o, ok := s[i].Order(class); ok {
			orders = append(orders, o)
		}
	}
	return orders
}

func (s Set) IgnoredProperties(anns []java.AnnotationModel) []string {
	var names []string
	for _, a := range s {
		names = append(names, a.IgnoredProperties(anns)...)
	}
	return names
}

func (s Set) IgnoresType(class *java.ClassModel) bool {
	if class == nil {
		return false
	}
	for _, a := range s {
		if a.IgnoresType(class) {
			return true
		}
	}
	return false
}

func (s Set) Documents(anns []java.AnnotationModel) bool {
	for _, a := range s {
		if a.Documents(anns) {
			return true
		}
	}
	return false
}

// Marks reports whether anns make a non-bean method eligible as a plain
// accessor: a schema annotation, a name override or an explicit opt-in.
func (s Set) Marks(anns []java.AnnotationModel) bool {
	if s.Documents(anns) {
		return true
	}
	if _, ok := s.PropertyName(anns); ok {
		return true
	}
	return s.Visibility(anns).Decision == Expose
}

func find(anns []java.AnnotationModel, names ...string) *java.AnnotationModel {
	return java.FindAnnotation(anns, names...)
}

// variants returns the javax and jakarta names of an annotation in pkg,
// e.g. variants("json.bind.annotation", "JsonbProperty").
func variants(pkg, simple string) []string {
	return []string{"javax." + pkg + "." + simple, "jakarta." + pkg + "." + simple}
}

func nonEmpty(names []string) []string {
	var out []string
	for _, n := range names {
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}
