package classfile

import "fmt"

type SignatureKind int

const (
	SignatureBase SignatureKind = iota
	SignatureClass
	SignatureTypeVariable
	SignatureArray
)

// TypeSignature is one node of a generic type signature (JVMS 4.7.9.1).
type TypeSignature struct {
	Kind          SignatureKind
	BaseType      string // SignatureBase
	ClassName     string // SignatureClass, internal form with '$' for nested classes
	TypeArguments []TypeArgumentSignature
	TypeVariable  string         // SignatureTypeVariable
	Component     *TypeSignature // SignatureArray
}

// TypeArgumentSignature is a type argument; Wildcard is one of 0, '*', '+' or '-'.
type TypeArgumentSignature struct {
	Wildcard byte
	Type     *TypeSignature
}

type TypeParameterSignature struct {
	Name   string
	Bounds []TypeSignature
}

type ClassSignature struct {
	TypeParameters []TypeParameterSignature
	SuperClass     TypeSignature
	Interfaces     []TypeSignature
}

type MethodSignature struct {
	TypeParameters []TypeParameterSignature
	Parameters     []TypeSignature
	Return         *TypeSignature // nil for void
	Throws         []TypeSignature
}

type sigParser struct {
	s   string
	pos int
}

func (p *sigParser) peek() byte {
	if p.pos >= len(p.s) {
		return 0
	}
	return p.s[p.pos]
}

func (p *sigParser) expect(c byte) error {
	if p.peek() != c {
		return fmt.Errorf("signature %q: expected %q at %d", p.s, c, p.pos)
	}
	p.pos++
	return nil
}

func (p *sigParser) identifier(stops string) string {
	start := p.pos
	for p.pos < len(p.s) {
		c := p.s[p.pos]
		for i := 0; i < len(stops); i++ {
			if c == stops[i] {
				return p.s[start:p.pos]
			}
		}
		p.pos++
	}
	return p.s[start:p.pos]
}

func ParseClassSignature(sig string) (*ClassSignature, error) {
	p := &sigParser{s: sig}
	cs := &ClassSignature{}

	params, err := p.typeParameters()
	if err != nil {
		return nil, err
	}
	cs.TypeParameters = params

	super, err := p.classType()
	if err != nil {
		return nil, err
	}
	cs.SuperClass = *super

	for p.pos < len(p.s) {
		iface, err := p.classType()
		if err != nil {
			return nil, err
		}
		cs.Interfaces = append(cs.Interfaces, *iface)
	}
	return cs, nil
}

func ParseMethodSignature(sig string) (*MethodSignature, error) {
	p := &sigParser{s: sig}
	ms := &MethodSignature{}

	params, err := p.typeParameters()
	if err != nil {
		return nil, err
	}
	ms.TypeParameters = params

	if err := p.expect('('); err != nil {
		return nil, err
	}
	for p.peek() != ')' {
		if p.pos >= len(p.s) {
			return nil, fmt.Errorf("signature %q: unterminated parameter list", sig)
		}
		t, err := p.javaType()
		if err != nil {
			return nil, err
		}
		ms.Parameters = append(ms.Parameters, *t)
	}
	p.pos++

	if p.peek() == 'V' {
		p.pos++
	} else {
		ret, err := p.javaType()
		if err != nil {
			return nil, err
		}
		ms.Return = ret
	}

	for p.peek() == '^' {
		p.pos++
		t, err := p.referenceType()
		if err != nil {
			return nil, err
		}
		ms.Throws = append(ms.Throws, *t)
	}
	if p.pos != len(p.s) {
		return nil, fmt.Errorf("signature %q: trailing data at %d", sig, p.pos)
	}
	return ms, nil
}

// ParseFieldSignature parses a reference type signature of a field.
func ParseFieldSignature(sig string) (*TypeSignature, error) {
	p := &sigParser{s: sig}
	t, err := p.referenceType()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.s) {
		return nil, fmt.Errorf("signature %q: trailing data at %d", sig, p.pos)
	}
	return t, nil
}

func (p *sigParser) typeParameters() ([]TypeParameterSignature, error) {
	if p.peek() != '<' {
		return nil, nil
	}
	p.pos++

	var params []TypeParameterSignature
	for p.peek() != '>' {
		if p.pos >= len(p.s) {
			return nil, fmt.Errorf("signature %q: unterminated type parameters", p.s)
		}
		tp := TypeParameterSignature{Name: p.identifier(":")}
		if tp.Name == "" {
			return nil, fmt.Errorf("signature %q: empty type parameter name at %d", p.s, p.pos)
		}
		// class bound may be empty, interface bounds follow with another ':'
		for p.peek() == ':' {
			p.pos++
			if c := p.peek(); c == ':' || c == '>' {
				continue
			}
			bound, err := p.referenceType()
			if err != nil {
				return nil, err
			}
			tp.Bounds = append(tp.Bounds, *bound)
		}
		params = append(params, tp)
	}
	p.pos++
	return params, nil
}

func (p *sigParser) javaType() (*TypeSignature, error) {
	if base, ok := baseTypes[p.peek()]; ok {
		p.pos++
		return &TypeSignature{Kind: SignatureBase, BaseType: base}, nil
	}
	return p.referenceType()
}

func (p *sigParser) referenceType() (*TypeSignature, error) {
	switch p.peek() {
	case 'L':
		return p.classType()
	case 'T':
		p.pos++
		name := p.identifier(";")
		if err := p.expect(';'); err != nil {
			return nil, err
		}
		return &TypeSignature{Kind: SignatureTypeVariable, TypeVariable: name}, nil
	case '[':
		p.pos++
		component, err := p.javaType()
		if err != nil {
			return nil, err
		}
		return &TypeSignature{Kind: SignatureArray, Component: component}, nil
	}
	return nil, fmt.Errorf("signature %q: unexpected %q at %d", p.s, p.peek(), p.pos)
}

func (p *sigParser) classType() (*TypeSignature, error) {
	if err := p.expect('L'); err != nil {
		return nil, err
	}
	t := &TypeSignature{Kind: SignatureClass, ClassName: p.identifier("<.;")}

	for {
		if p.peek() == '<' {
			args, err := p.typeArguments()
			if err != nil {
				return nil, err
			}
			t.TypeArguments = args
		}
		if p.peek() != '.' {
			break
		}
		// nested class: only the innermost arguments are kept
		p.pos++
		t.ClassName += "$" + p.identifier("<.;")
		t.TypeArguments = nil
	}

	if err := p.expect(';'); err != nil {
		return nil, err
	}
	return t, nil
}

func (p *sigParser) typeArguments() ([]TypeArgumentSignature, error) {
	if err := p.expect('<'); err != nil {
		return nil, err
	}
	var args []TypeArgumentSignature
	for p.peek() != '>' {
		switch c := p.peek(); c {
		case 0:
			return nil, fmt.Errorf("signature %q: unterminated type arguments", p.s)
		case '*':
			p.pos++
			args = append(args, TypeArgumentSignature{Wildcard: '*'})
		case '+', '-':
			p.pos++
			t, err := p.referenceType()
			if err != nil {
				return nil, err
			}
			args = append(args, TypeArgumentSignature{Wildcard: c, Type: t})
		default:
			t, err := p.referenceType()
			if err != nil {
				return nil, err
			}
			args = append(args, TypeArgumentSignature{Type: t})
		}
	}
	p.pos++
	return args, nil
}
