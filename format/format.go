// Package format renders resolved properties and class models as text.
package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/beanscan/binding"
	"github.com/dhamidi/beanscan/constraint"
	"github.com/dhamidi/beanscan/java"
	"github.com/dhamidi/beanscan/property"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(doc *Document) error
}

// Names lists the formats accepted by New.
func Names() []string {
	return []string{"line", "json", "yaml", "openapi"}
}

// Options control presentation only.
type Options struct {
	Color bool
}

func New(name string, w io.Writer, opts Options) (Encoder, error) {
	switch name {
	case "line":
		return NewLineEncoder(w, opts), nil
	case "json":
		return NewJSONEncoder(w), nil
	case "yaml":
		return NewYAMLEncoder(w), nil
	case "openapi":
		return NewOpenAPIEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown format %q (known: %v)", name, Names())
}

// Document is the encodable view of one class's properties.
type Document struct {
	Class      string     `json:"class" yaml:"class"`
	SimpleName string     `json:"simpleName" yaml:"simpleName"`
	Properties []Property `json:"properties" yaml:"properties"`
}

type Property struct {
	Name           string             `json:"name" yaml:"name"`
	Key            string             `json:"key" yaml:"key"`
	Type           string             `json:"type" yaml:"type"`
	DeclaredType   string             `json:"declaredType,omitempty" yaml:"declaredType,omitempty"`
	DeclaringClass string             `json:"declaringClass" yaml:"declaringClass"`
	Target         string             `json:"target" yaml:"target"`
	Members        []string           `json:"members" yaml:"members"`
	Description    string             `json:"description,omitempty" yaml:"description,omitempty"`
	Deprecated     bool               `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	Ignored        bool               `json:"ignored,omitempty" yaml:"ignored,omitempty"`
	ReadOnly       bool               `json:"readOnly,omitempty" yaml:"readOnly,omitempty"`
	WriteOnly      bool               `json:"writeOnly,omitempty" yaml:"writeOnly,omitempty"`
	Constraints    *constraint.Facets `json:"constraints,omitempty" yaml:"constraints,omitempty"`

	resolved *java.Type
}

// NewDocument builds the view of class's properties. Ignored properties are
// left out unless ignored is set.
func NewDocument(class *java.ClassModel, props *property.Properties, ignored bool) *Document {
	doc := &Document{Class: class.Name, SimpleName: class.SimpleName, Properties: []Property{}}
	for _, d := range props.All() {
		if d.Ignored && !ignored {
			continue
		}
		doc.Properties = append(doc.Properties, newProperty(d))
	}
	return doc
}

func newProperty(d *property.Descriptor) Property {
	p := Property{
		Name:           d.Name,
		Key:            d.Key,
		Type:           d.ResolvedType.String(),
		DeclaringClass: d.DeclaringClass,
		Target:         d.Target.String(),
		Ignored:        d.Ignored,
		ReadOnly:       d.ReadOnly,
		WriteOnly:      d.WriteOnly,
		resolved:       d.ResolvedType,
	}
	if declared := d.UnresolvedType.String(); declared != p.Type {
		p.DeclaredType = declared
	}
	for _, m := range d.Members {
		p.Members = append(p.Members, m.String())
	}
	anns := d.Target.Annotations()
	if s := java.FindAnnotation(anns, binding.SchemaAnnotation); s != nil {
		p.Description, _ = s.String("description")
		p.Deprecated, _ = s.Bool("deprecated")
	}
	if java.FindAnnotation(anns, "java.lang.Deprecated") != nil {
		p.Deprecated = true
	}
	if !d.Constraints.IsZero() {
		facets := d.Constraints
		p.Constraints = &facets
	}
	return p
}
