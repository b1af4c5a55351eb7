package generic

import "github.com/dhamidi/beanscan/java"

// Resolve substitutes the variables bound in env throughout t. Unbound
// variables are left in place. The result shares unchanged subtrees with t.
func Resolve(t *java.Type, env Bindings) *java.Type {
	if t == nil || env.Len() == 0 {
		return t
	}
	switch t.Kind {
	case java.TypeVariable:
		if bound, ok := env.Lookup(t.Name); ok {
			return bound
		}
		return t

	case java.TypeParameterized:
		var args []*java.Type
		for i, arg := range t.Arguments {
			resolved := Resolve(arg, env)
			if resolved != arg && args == nil {
				args = make([]*java.Type, len(t.Arguments))
				copy(args, t.Arguments[:i])
			}
			if args != nil {
				args[i] = resolved
			}
		}
		if args == nil {
			return t
		}
		return java.Parameterized(t.Name, args...)

	case java.TypeArray:
		component := Resolve(t.Component, env)
		if component == t.Component {
			return t
		}
		return java.Array(component)

	case java.TypeWildcard:
		bound := Resolve(t.Bound, env)
		if bound == t.Bound {
			return t
		}
		return java.Wildcard(t.BoundKind, bound)
	}
	return t
}

// Supertype is a direct supertype reference together with the environment
// of the supertype's own type parameters. Class is nil when the supertype is
// not in the index.
type Supertype struct {
	Reference *java.Type
	Class     *java.ClassModel
	Bindings  Bindings
}

// Supertypes returns the superclass (nil for java.lang.Object and classes
// without one) and the direct interfaces of class, with bindings derived from
// env.
func Supertypes(index *java.Index, class *java.ClassModel, env Bindings) (*Supertype, []Supertype) {
	var super *Supertype
	if class.SuperClass != nil && class.Name != java.ObjectClass {
		s := supertype(index, class.SuperClass, env)
		super = &s
	}
	interfaces := make([]Supertype, 0, len(class.Interfaces))
	for _, iface := range class.Interfaces {
		interfaces = append(interfaces, supertype(index, iface, env))
	}
	return super, interfaces
}

func supertype(index *java.Index, ref *java.Type, env Bindings) Supertype {
	s := Supertype{Reference: Resolve(ref, env)}
	if index != nil {
		s.Class = index.Lookup(ref.ClassName())
	}
	if s.Class != nil {
		s.Bindings = Bind(s.Class, ref, env)
	}
	return s
}
