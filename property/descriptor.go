// Package property resolves the serializable properties of a class by walking
// its hierarchy, merging fields and accessors, and applying the naming,
// visibility and ordering rules of the enabled annotation families.
package property

import (
	"fmt"

	"github.com/dhamidi/beanscan/binding"
	"github.com/dhamidi/beanscan/constraint"
	"github.com/dhamidi/beanscan/java"
)

// Member is a field or accessor method that contributes to a property.
type Member struct {
	Kind   binding.MemberKind
	Class  *java.ClassModel
	Field  *java.FieldModel
	Method *java.MethodModel
	// Plain marks accessors without a get/is/set prefix.
	Plain bool
	// Type is the declared type; Resolved has the class's type variables
	// substituted.
	Type     *java.Type
	Resolved *java.Type
	// Depth is 0 for the leaf and its interfaces, 1 for its superclass...
	Depth int

	// via is Class, or for interface members the class implementing it.
	via *java.ClassModel
	seq int
}

func (m *Member) Name() string {
	if m.Field != nil {
		return m.Field.Name
	}
	return m.Method.Name
}

func (m *Member) Annotations() []java.AnnotationModel {
	if m.Field != nil {
		return m.Field.Annotations
	}
	return m.Method.Annotations
}

// ConstraintAnnotations adds the parameter annotations of a write accessor.
func (m *Member) ConstraintAnnotations() []java.AnnotationModel {
	anns := m.Annotations()
	if m.Kind == binding.WriteMember && len(m.Method.Parameters) == 1 && len(m.Method.Parameters[0].Annotations) > 0 {
		anns = append(append([]java.AnnotationModel(nil), anns...), m.Method.Parameters[0].Annotations...)
	}
	return anns
}

func (m *Member) Visibility() java.Visibility {
	if m.Field != nil {
		return m.Field.Visibility
	}
	return m.Method.Visibility
}

func (m *Member) adapterView() binding.Member {
	return binding.Member{
		Kind:        m.Kind,
		Name:        m.Name(),
		Visibility:  m.Visibility(),
		Annotations: m.Annotations(),
	}
}

func (m *Member) String() string {
	if m.Field != nil {
		return fmt.Sprintf("%s.%s", m.Class.Name, m.Field.Name)
	}
	return fmt.Sprintf("%s.%s()", m.Class.Name, m.Method.Name)
}

type TargetKind int

const (
	TargetField TargetKind = iota
	TargetRead
	TargetWrite
)

func (k TargetKind) String() string {
	switch k {
	case TargetRead:
		return "read"
	case TargetWrite:
		return "write"
	}
	return "field"
}

// Descriptor is one resolved property. Descriptors returned by a Resolver
// are shared and must not be modified.
type Descriptor struct {
	// Key is the bean name the members were merged under; Name is the
	// effective name after overrides.
	Key  string
	Name string
	// DeclaringClass declares the target member.
	DeclaringClass string

	Field *Member
	Read  *Member
	Write *Member
	// Target is the authoritative member for documentation and validation
	// annotations.
	Target *Member

	UnresolvedType *java.Type
	ResolvedType   *java.Type

	Ignored   bool
	ReadOnly  bool
	WriteOnly bool

	Constraints constraint.Facets

	// Members lists every contributing member in discovery order.
	Members []*Member

	depth int
	// rank is the discovery sequence at depth, the default sort key.
	rank int
}

func (d *Descriptor) TargetKind() TargetKind {
	switch d.Target.Kind {
	case binding.ReadMember:
		return TargetRead
	case binding.WriteMember:
		return TargetWrite
	}
	return TargetField
}

func (d *Descriptor) String() string {
	s := d.Name
	if d.Name != d.Key {
		s += " (" + d.Key + ")"
	}
	s += ": " + d.ResolvedType.String()
	if d.Ignored {
		s += " [ignored]"
	}
	return s
}

// Properties is an ordered, read-only mapping from property key to
// descriptor.
type Properties struct {
	order []*Descriptor
	byKey map[string]*Descriptor
}

func newProperties(order []*Descriptor) *Properties {
	p := &Properties{order: order, byKey: make(map[string]*Descriptor, len(order))}
	for _, d := range order {
		p.byKey[d.Key] = d
	}
	return p
}

func (p *Properties) Len() int { return len(p.order) }

func (p *Properties) Get(key string) (*Descriptor, bool) {
	d, ok := p.byKey[key]
	return d, ok
}

// All returns the descriptors in order.
func (p *Properties) All() []*Descriptor {
	return append([]*Descriptor(nil), p.order...)
}

func (p *Properties) Keys() []string {
	keys := make([]string, len(p.order))
	for i, d := range p.order {
		keys[i] = d.Key
	}
	return keys
}

// Names returns the effective names in order.
func (p *Properties) Names() []string {
	names := make([]string, len(p.order))
	for i, d := range p.order {
		names[i] = d.Name
	}
	return names
}

// Visible returns the descriptors that are not ignored.
func (p *Properties) Visible() []*Descriptor {
	var out []*Descriptor
	for _, d := range p.order {
		if !d.Ignored {
			out = append(out, d)
		}
	}
	return out
}
