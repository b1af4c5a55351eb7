package java

import (
	"fmt"
	"strings"
)

type TypeKind int

const (
	TypePrimitive TypeKind = iota
	TypeVoid
	TypeClass
	TypeParameterized
	TypeArray
	TypeVariable
	TypeWildcard
)

func (k TypeKind) String() string {
	switch k {
	case TypePrimitive:
		return "primitive"
	case TypeVoid:
		return "void"
	case TypeClass:
		return "class"
	case TypeParameterized:
		return "parameterized"
	case TypeArray:
		return "array"
	case TypeVariable:
		return "variable"
	case TypeWildcard:
		return "wildcard"
	}
	return fmt.Sprintf("TypeKind(%d)", int(k))
}

type BoundKind int

const (
	BoundNone BoundKind = iota
	BoundExtends
	BoundSuper
)

// Type is an immutable type reference. Name holds the primitive name, the
// fully qualified class name or the type variable name depending on Kind.
type Type struct {
	Kind      TypeKind
	Name      string
	Arguments []*Type
	Component *Type
	Bound     *Type
	BoundKind BoundKind
}

var voidType = &Type{Kind: TypeVoid, Name: "void"}

func Void() *Type { return voidType }

func Primitive(name string) *Type {
	return &Type{Kind: TypePrimitive, Name: name}
}

func Class(name string) *Type {
	return &Type{Kind: TypeClass, Name: name}
}

func Parameterized(name string, args ...*Type) *Type {
	if len(args) == 0 {
		return Class(name)
	}
	return &Type{Kind: TypeParameterized, Name: name, Arguments: args}
}

func Array(component *Type) *Type {
	return &Type{Kind: TypeArray, Component: component}
}

func Variable(name string) *Type {
	return &Type{Kind: TypeVariable, Name: name}
}

func Wildcard(kind BoundKind, bound *Type) *Type {
	if bound == nil {
		kind = BoundNone
	}
	return &Type{Kind: TypeWildcard, BoundKind: kind, Bound: bound}
}

func (t *Type) IsPrimitive() bool { return t != nil && t.Kind == TypePrimitive }
func (t *Type) IsVoid() bool      { return t == nil || t.Kind == TypeVoid }

// IsBoolean reports whether t is boolean or java.lang.Boolean.
func (t *Type) IsBoolean() bool {
	if t == nil {
		return false
	}
	return (t.Kind == TypePrimitive && t.Name == "boolean") ||
		(t.Kind == TypeClass && t.Name == "java.lang.Boolean")
}

// ClassName returns the erased class name of class and parameterized types.
func (t *Type) ClassName() string {
	if t == nil {
		return ""
	}
	switch t.Kind {
	case TypeClass, TypeParameterized:
		return t.Name
	}
	return ""
}

func (t *Type) Equal(o *Type) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.Kind != o.Kind || t.Name != o.Name || t.BoundKind != o.BoundKind {
		return false
	}
	if len(t.Arguments) != len(o.Arguments) {
		return false
	}
	for i := range t.Arguments {
		if !t.Arguments[i].Equal(o.Arguments[i]) {
			return false
		}
	}
	return t.Component.Equal(o.Component) && t.Bound.Equal(o.Bound)
}

func (t *Type) String() string {
	if t == nil {
		return "void"
	}
	var sb strings.Builder
	t.write(&sb)
	return sb.String()
}

func (t *Type) write(sb *strings.Builder) {
	switch t.Kind {
	case TypeArray:
		t.Component.write(sb)
		sb.WriteString("[]")
	case TypeParameterized:
		sb.WriteString(t.Name)
		sb.WriteByte('<')
		for i, arg := range t.Arguments {
			if i > 0 {
				sb.WriteString(", ")
			}
			arg.write(sb)
		}
		sb.WriteByte('>')
	case TypeWildcard:
		sb.WriteByte('?')
		switch t.BoundKind {
		case BoundExtends:
			sb.WriteString(" extends ")
			t.Bound.write(sb)
		case BoundSuper:
			sb.WriteString(" super ")
			t.Bound.write(sb)
		}
	default:
		sb.WriteString(t.Name)
	}
}

var primitiveNames = map[string]bool{
	"boolean": true, "byte": true, "char": true, "short": true,
	"int": true, "long": true, "float": true, "double": true,
}

// ParseType parses a type written in source form, e.g.
// "java.util.Map<java.lang.String, T[]>". Names without a package are read as
// type variables.
func ParseType(s string) (*Type, error) {
	p := &typeParser{s: s}
	t, err := p.parse()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.s) {
		return nil, fmt.Errorf("type %q: unexpected %q at %d", s, p.s[p.pos], p.pos)
	}
	return t, nil
}

type typeParser struct {
	s   string
	pos int
}

func (p *typeParser) skipSpace() {
	for p.pos < len(p.s) && p.s[p.pos] == ' ' {
		p.pos++
	}
}

func (p *typeParser) parse() (*Type, error) {
	p.skipSpace()
	if p.pos < len(p.s) && p.s[p.pos] == '?' {
		p.pos++
		p.skipSpace()
		rest := p.s[p.pos:]
		var kind BoundKind
		switch {
		case strings.HasPrefix(rest, "extends "):
			kind, p.pos = BoundExtends, p.pos+len("extends ")
		case strings.HasPrefix(rest, "super "):
			kind, p.pos = BoundSuper, p.pos+len("super ")
		default:
			return Wildcard(BoundNone, nil), nil
		}
		bound, err := p.parse()
		if err != nil {
			return nil, err
		}
		return Wildcard(kind, bound), nil
	}

	start := p.pos
	for p.pos < len(p.s) && strings.IndexByte("<>,[] ", p.s[p.pos]) < 0 {
		p.pos++
	}
	name := p.s[start:p.pos]
	if name == "" {
		return nil, fmt.Errorf("type %q: expected name at %d", p.s, start)
	}

	var t *Type
	switch {
	case name == "void":
		t = Void()
	case primitiveNames[name]:
		t = Primitive(name)
	case !strings.Contains(name, "."):
		t = Variable(name)
	default:
		t = Class(name)
	}

	p.skipSpace()
	if p.pos < len(p.s) && p.s[p.pos] == '<' {
		if t.Kind != TypeClass {
			return nil, fmt.Errorf("type %q: %s cannot take arguments", p.s, name)
		}
		p.pos++
		var args []*Type
		for {
			arg, err := p.parse()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			p.skipSpace()
			if p.pos >= len(p.s) {
				return nil, fmt.Errorf("type %q: unterminated argument list", p.s)
			}
			if p.s[p.pos] == ',' {
				p.pos++
				continue
			}
			if p.s[p.pos] == '>' {
				p.pos++
				break
			}
			return nil, fmt.Errorf("type %q: unexpected %q at %d", p.s, p.s[p.pos], p.pos)
		}
		t = Parameterized(name, args...)
	}

	for {
		p.skipSpace()
		if !strings.HasPrefix(p.s[p.pos:], "[]") {
			break
		}
		p.pos += 2
		t = Array(t)
	}
	return t, nil
}

// MustParseType is like ParseType but panics on error.
func MustParseType(s string) *Type {
	t, err := ParseType(s)
	if err != nil {
		panic(err)
	}
	return t
}
