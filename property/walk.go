package property

import (
	"github.com/dhamidi/beanscan/accessor"
	"github.com/dhamidi/beanscan/binding"
	"github.com/dhamidi/beanscan/constraint"
	"github.com/dhamidi/beanscan/generic"
	"github.com/dhamidi/beanscan/java"
)

// walker holds the state of one resolution.
type walker struct {
	r       *Resolver
	visited map[string]bool
	// classes lists visited types leaf first, interfaces before superclasses.
	classes []*java.ClassModel
	props   map[string]*Descriptor
	order   []*Descriptor
	seq     int
}

func newWalker(r *Resolver) *walker {
	return &walker{
		r:       r,
		visited: map[string]bool{},
		props:   map[string]*Descriptor{},
	}
}

// visit collects the members of class, then descends into its interfaces and
// finally its superclass. Every type is visited at most once.
// visit collects the members of class. via is the nearest class the walk
// passed through, so interface members share its access directive.
func (w *walker) visit(class *java.ClassModel, env generic.Bindings, depth int, via *java.ClassModel) {
	if w.visited[class.Name] {
		return
	}
	w.visited[class.Name] = true
	w.classes = append(w.classes, class)
	if !class.IsInterface() {
		via = class
	}

	for i := range class.Fields {
		f := &class.Fields[i]
		if f.IsStatic || f.IsSynthetic || !accessor.IsIdentifier(f.Name) {
			continue
		}
		w.add(f.Name, &Member{
			Kind:     binding.FieldMember,
			Class:    class,
			via:      via,
			Field:    f,
			Type:     f.Type,
			Resolved: generic.Resolve(f.Type, env),
			Depth:    depth,
		})
	}

	for i := range class.Methods {
		m := &class.Methods[i]
		if m.IsStatic || m.IsSynthetic || m.IsBridge || m.IsConstructor() || !accessor.IsIdentifier(m.Name) {
			continue
		}
		acc := accessor.Classify(m, w.r.adapters.Marks(m.Annotations))
		if acc.Kind == accessor.None {
			continue
		}
		member := &Member{Class: class, via: via, Method: m, Plain: acc.Plain, Depth: depth}
		if acc.Kind == accessor.Read {
			member.Kind = binding.ReadMember
			member.Type = m.ReturnType
		} else {
			member.Kind = binding.WriteMember
			member.Type = m.Parameters[0].Type
		}
		member.Resolved = generic.Resolve(member.Type, generic.ForMethod(m, env))
		w.add(acc.Property, member)
	}

	super, interfaces := generic.Supertypes(w.r.index, class, env)
	for _, iface := range interfaces {
		if iface.Class == nil {
			log.Debugf("%s: interface %s is not indexed", class.Name, iface.Reference)
			continue
		}
		w.visit(iface.Class, iface.Bindings, depth, via)
	}
	if class.IsInterface() || super == nil {
		return
	}
	if super.Class == nil {
		if super.Reference.ClassName() != java.ObjectClass {
			log.Debugf("%s: superclass %s is not indexed", class.Name, super.Reference)
		}
		return
	}
	if super.Class.Name == java.ObjectClass {
		return
	}
	w.visit(super.Class, super.Bindings, depth+1, via)
}

// add merges member into the descriptor for key. Slots are filled
// first-come; a documented member takes over as target from an undocumented
// one.
func (w *walker) add(key string, m *Member) {
	w.seq++
	m.seq = w.seq

	d, ok := w.props[key]
	if !ok {
		d = &Descriptor{
			Key:            key,
			Target:         m,
			UnresolvedType: m.Type,
			ResolvedType:   m.Resolved,
			depth:          m.Depth,
			rank:           m.seq,
		}
		w.props[key] = d
		w.order = append(w.order, d)
	}
	d.Members = append(d.Members, m)
	if m.Depth > d.depth {
		d.depth = m.Depth
		d.rank = m.seq
	}

	switch m.Kind {
	case binding.FieldMember:
		if d.Field == nil {
			d.Field = m
		}
	case binding.ReadMember:
		if d.Read == nil {
			d.Read = m
		}
	case binding.WriteMember:
		if d.Write == nil {
			d.Write = m
		}
	}

	if ok && w.promotes(d.Target, m) {
		log.Debugf("%s: target %s replaced by %s", key, d.Target, m)
		d.Target = m
	}
}

func (w *walker) lookup(name string) *java.ClassModel {
	if w.r.index == nil || name == "" {
		return nil
	}
	return w.r.index.Lookup(name)
}

func (w *walker) promotes(current, candidate *Member) bool {
	if !w.documents(candidate) {
		return false
	}
	if !w.documents(current) {
		return true
	}
	return current.Class == candidate.Class &&
		current.Kind == binding.WriteMember && candidate.Kind == binding.ReadMember
}

// documents reports whether m carries schema documentation or validation
// constraints.
func (w *walker) documents(m *Member) bool {
	return w.r.adapters.Documents(m.Annotations()) || constraint.Annotated(m.ConstraintAnnotations())
}

// finish computes names, visibility and order and freezes the result.
func (w *walker) finish(referencing []java.AnnotationModel) *Properties {
	ignored := w.ignoredNames(referencing)
	for _, d := range w.order {
		w.name(d)
		w.visibility(d)
		if ignored[d.Key] || ignored[d.Name] {
			log.Debugf("%s: listed as ignored", d.Key)
			d.Ignored = true
		}
		if !d.Ignored && w.r.adapters.IgnoresType(w.lookup(d.ResolvedType.ClassName())) {
			log.Debugf("%s: type %s is ignored", d.Key, d.ResolvedType)
			d.Ignored = true
		}
		w.constraints(d)
	}
	return newProperties(unique(w.sorted()))
}

// unique keeps one descriptor per effective name, preferring a visible one
// over an ignored one and otherwise the first in order.
func unique(ds []*Descriptor) []*Descriptor {
	seen := make(map[string]int, len(ds))
	out := make([]*Descriptor, 0, len(ds))
	for _, d := range ds {
		i, dup := seen[d.Name]
		if !dup {
			seen[d.Name] = len(out)
			out = append(out, d)
			continue
		}
		if out[i].Ignored && !d.Ignored {
			log.Debugf("%s: name %q taken over from %s", d.Key, d.Name, out[i].Key)
			out[i] = d
		} else {
			log.Debugf("%s: dropped, name %q already used by %s", d.Key, d.Name, out[i].Key)
		}
	}
	return out
}

// name picks the effective name: an override on the target, the bean name
// when the target is documented without one, else the first override found
// walking leaf to root.
func (w *walker) name(d *Descriptor) {
	d.Name = d.Key
	d.DeclaringClass = d.Target.Class.Name
	if name, ok := w.r.adapters.PropertyName(d.Target.Annotations()); ok {
		d.Name = name
		return
	}
	if w.r.adapters.Documents(d.Target.Annotations()) {
		return
	}
	for _, m := range d.Members {
		if name, ok := w.r.adapters.PropertyName(m.Annotations()); ok {
			d.Name = name
			return
		}
	}
}

func (w *walker) ignoredNames(referencing []java.AnnotationModel) map[string]bool {
	names := map[string]bool{}
	for _, n := range w.r.adapters.IgnoredProperties(referencing) {
		names[n] = true
	}
	for _, c := range w.classes {
		for _, n := range w.r.adapters.IgnoredProperties(c.Annotations) {
			names[n] = true
		}
	}
	return names
}

func (w *walker) constraints(d *Descriptor) {
	lists := [][]java.AnnotationModel{d.Target.ConstraintAnnotations()}
	for _, m := range d.Members {
		if m != d.Target {
			lists = append(lists, m.ConstraintAnnotations())
		}
	}
	d.Constraints = constraint.Extract(d.ResolvedType, lists...)
}
