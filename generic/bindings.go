// Package generic substitutes type variables through class hierarchies.
package generic

import (
	"sort"
	"strings"

	"github.com/dhamidi/beanscan/java"
)

// Bindings maps type variable names to types. The zero value is the empty
// environment; every operation returns a new value and leaves the receiver
// untouched.
type Bindings struct {
	vars map[string]*java.Type
}

func (b Bindings) Len() int { return len(b.vars) }

func (b Bindings) Lookup(name string) (*java.Type, bool) {
	t, ok := b.vars[name]
	return t, ok
}

func (b Bindings) With(name string, t *java.Type) Bindings {
	vars := make(map[string]*java.Type, len(b.vars)+1)
	for k, v := range b.vars {
		vars[k] = v
	}
	vars[name] = t
	return Bindings{vars: vars}
}

// Without drops the named variables, e.g. when a method declares type
// parameters that shadow those of its class.
func (b Bindings) Without(names ...string) Bindings {
	drop := false
	for _, name := range names {
		if _, ok := b.vars[name]; ok {
			drop = true
			break
		}
	}
	if !drop {
		return b
	}
	vars := make(map[string]*java.Type, len(b.vars))
	for k, v := range b.vars {
		vars[k] = v
	}
	for _, name := range names {
		delete(vars, name)
	}
	return Bindings{vars: vars}
}

// String renders the bindings sorted by name, so equal environments render
// identically.
func (b Bindings) String() string {
	names := make([]string, 0, len(b.vars))
	for name := range b.vars {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(name)
		sb.WriteByte('=')
		sb.WriteString(b.vars[name].String())
	}
	sb.WriteByte('}')
	return sb.String()
}

// Bind builds the environment of class as referenced by actual. The actual
// type arguments are resolved against outer first. A raw reference, or one
// whose arity does not match the declaration, binds nothing.
func Bind(class *java.ClassModel, actual *java.Type, outer Bindings) Bindings {
	if class == nil || actual == nil || actual.Kind != java.TypeParameterized {
		return Bindings{}
	}
	if len(actual.Arguments) != len(class.TypeParameters) {
		return Bindings{}
	}
	vars := make(map[string]*java.Type, len(class.TypeParameters))
	for i, tp := range class.TypeParameters {
		vars[tp.Name] = Resolve(actual.Arguments[i], outer)
	}
	return Bindings{vars: vars}
}

// ForMethod returns env with the method's own type parameters removed.
func ForMethod(m *java.MethodModel, env Bindings) Bindings {
	if len(m.TypeParameters) == 0 {
		return env
	}
	names := make([]string, len(m.TypeParameters))
	for i, tp := range m.TypeParameters {
		names[i] = tp.Name
	}
	return env.Without(names...)
}
