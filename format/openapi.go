package format

import (
	"encoding/json"
	"io"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/dhamidi/beanscan/constraint"
	"github.com/dhamidi/beanscan/java"
)

const componentsPrefix = "#/components/schemas/"

// OpenAPIEncoder writes each document as an OpenAPI object schema keyed by
// the class's simple name. Referenced classes become component references.
// Schema properties are a map, so the encoded output is sorted by name.
type OpenAPIEncoder struct {
	w   io.Writer
	doc *Document
}

func NewOpenAPIEncoder(w io.Writer) *OpenAPIEncoder {
	return &OpenAPIEncoder{w: w}
}

func (e *OpenAPIEncoder) Encode(doc *Document) error {
	e.doc = doc
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *OpenAPIEncoder) MarshalText() ([]byte, error) {
	schemas := openapi3.Schemas{e.doc.SimpleName: openapi3.NewSchemaRef("", Schema(e.doc))}
	return json.MarshalIndent(schemas, "", "  ")
}

// Schema builds the object schema of doc.
func Schema(doc *Document) *openapi3.Schema {
	s := openapi3.NewObjectSchema()
	for _, p := range doc.Properties {
		if p.Ignored {
			continue
		}
		ps := typeSchema(p.resolved)
		if ps.Value != nil {
			ps.Value.Description = p.Description
			ps.Value.Deprecated = p.Deprecated
			ps.Value.ReadOnly = p.ReadOnly
			ps.Value.WriteOnly = p.WriteOnly
			applyFacets(ps.Value, p.Constraints)
		}
		s.Properties[p.Name] = ps
		if p.Constraints.IsRequired() {
			s.Required = append(s.Required, p.Name)
		}
	}
	return s
}

func typeSchema(t *java.Type) *openapi3.SchemaRef {
	switch constraint.KindOf(t) {
	case constraint.KindString:
		return openapi3.NewSchemaRef("", openapi3.NewStringSchema())
	case constraint.KindBoolean:
		return openapi3.NewSchemaRef("", openapi3.NewBoolSchema())
	case constraint.KindNumber:
		return openapi3.NewSchemaRef("", numberSchema(t))
	case constraint.KindArray:
		s := openapi3.NewArraySchema()
		s.Items = typeSchema(elementType(t, 0))
		return openapi3.NewSchemaRef("", s)
	case constraint.KindMap:
		s := openapi3.NewObjectSchema()
		s.AdditionalProperties = openapi3.AdditionalProperties{Schema: typeSchema(elementType(t, 1))}
		return openapi3.NewSchemaRef("", s)
	}
	name := t.ClassName()
	if name == "" || name == java.ObjectClass {
		return openapi3.NewSchemaRef("", openapi3.NewObjectSchema())
	}
	return openapi3.NewSchemaRef(componentsPrefix+simpleName(name), nil)
}

func numberSchema(t *java.Type) *openapi3.Schema {
	name := t.Name
	if t.Kind == java.TypeWildcard && t.Bound != nil {
		name = t.Bound.Name
	}
	switch name {
	case "int", "short", "byte", "java.lang.Integer", "java.lang.Short", "java.lang.Byte",
		"java.util.concurrent.atomic.AtomicInteger":
		return openapi3.NewInt32Schema()
	case "long", "java.lang.Long", "java.util.concurrent.atomic.AtomicLong":
		return openapi3.NewInt64Schema()
	case "java.math.BigInteger":
		return openapi3.NewIntegerSchema()
	case "float", "java.lang.Float":
		return openapi3.NewFloat64Schema().WithFormat("float")
	case "double", "java.lang.Double":
		return openapi3.NewFloat64Schema()
	}
	return &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeNumber}}
}

// elementType returns the component of an array or the i-th type argument of
// a collection or map, falling back to Object.
func elementType(t *java.Type, i int) *java.Type {
	if t.Kind == java.TypeWildcard && t.Bound != nil {
		t = t.Bound
	}
	if t.Kind == java.TypeArray {
		return t.Component
	}
	if i < len(t.Arguments) {
		arg := t.Arguments[i]
		if arg.Kind == java.TypeWildcard && arg.Bound != nil {
			return arg.Bound
		}
		return arg
	}
	return java.Class(java.ObjectClass)
}

func applyFacets(s *openapi3.Schema, f *constraint.Facets) {
	if f.IsZero() {
		return
	}
	if f.MinLength != nil {
		s.MinLength = uint64(*f.MinLength)
	}
	s.MaxLength = uint64Ptr(f.MaxLength)
	if f.MinItems != nil {
		s.MinItems = uint64(*f.MinItems)
	}
	s.MaxItems = uint64Ptr(f.MaxItems)
	if f.MinProperties != nil {
		s.MinProps = uint64(*f.MinProperties)
	}
	s.MaxProps = uint64Ptr(f.MaxProperties)
	if f.Minimum != nil {
		v := f.Minimum.Float()
		s.Min = &v
		s.ExclusiveMin = f.ExclusiveMinimum
	}
	if f.Maximum != nil {
		v := f.Maximum.Float()
		s.Max = &v
		s.ExclusiveMax = f.ExclusiveMaximum
	}
	s.Pattern = f.Pattern
}

func uint64Ptr(v *int64) *uint64 {
	if v == nil || *v < 0 {
		return nil
	}
	u := uint64(*v)
	return &u
}

func simpleName(name string) string {
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == '.' || name[i] == '$' {
			return name[i+1:]
		}
	}
	return name
}
