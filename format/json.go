package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/beanscan/java"
)

type JSONEncoder struct {
	w   io.Writer
	doc *Document
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(doc *Document) error {
	e.doc = doc
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(e.doc, "", "  ")
}

// JSONModelEncoder writes a class model as read from a class file.
type JSONModelEncoder struct {
	w     io.Writer
	model *java.ClassModel
}

func NewJSONModelEncoder(w io.Writer) *JSONModelEncoder {
	return &JSONModelEncoder{w: w}
}

func (e *JSONModelEncoder) Encode(model *java.ClassModel) error {
	e.model = model
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *JSONModelEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(newClassData(e.model), "", "  ")
}

type jsonClass struct {
	Name           string           `json:"name" yaml:"name"`
	Kind           string           `json:"kind" yaml:"kind"`
	Visibility     string           `json:"visibility" yaml:"visibility"`
	Modifiers      []string         `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
	TypeParameters []string         `json:"typeParameters,omitempty" yaml:"typeParameters,omitempty"`
	SuperClass     string           `json:"superClass,omitempty" yaml:"superClass,omitempty"`
	Interfaces     []string         `json:"interfaces,omitempty" yaml:"interfaces,omitempty"`
	Annotations    []jsonAnnotation `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	Fields         []jsonField      `json:"fields,omitempty" yaml:"fields,omitempty"`
	Methods        []jsonMethod     `json:"methods,omitempty" yaml:"methods,omitempty"`
}

type jsonAnnotation struct {
	Type   string                 `json:"type" yaml:"type"`
	Values map[string]interface{} `json:"values,omitempty" yaml:"values,omitempty"`
}

type jsonField struct {
	Name        string           `json:"name" yaml:"name"`
	Type        string           `json:"type" yaml:"type"`
	Visibility  string           `json:"visibility" yaml:"visibility"`
	Modifiers   []string         `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
	Annotations []jsonAnnotation `json:"annotations,omitempty" yaml:"annotations,omitempty"`
}

type jsonMethod struct {
	Name        string           `json:"name" yaml:"name"`
	ReturnType  string           `json:"returnType" yaml:"returnType"`
	Parameters  []string         `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Visibility  string           `json:"visibility" yaml:"visibility"`
	Modifiers   []string         `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
	Annotations []jsonAnnotation `json:"annotations,omitempty" yaml:"annotations,omitempty"`
}

func newClassData(m *java.ClassModel) jsonClass {
	data := jsonClass{
		Name:           m.Name,
		Kind:           string(m.Kind),
		Visibility:     string(m.Visibility),
		Modifiers:      classModifiers(m),
		TypeParameters: m.TypeParameterNames(),
		Annotations:    annotationData(m.Annotations),
	}
	if m.SuperClass != nil {
		data.SuperClass = m.SuperClass.String()
	}
	for _, i := range m.Interfaces {
		data.Interfaces = append(data.Interfaces, i.String())
	}
	for _, f := range m.Fields {
		data.Fields = append(data.Fields, jsonField{
			Name:        f.Name,
			Type:        f.Type.String(),
			Visibility:  string(f.Visibility),
			Modifiers:   fieldModifiers(f),
			Annotations: annotationData(f.Annotations),
		})
	}
	for _, method := range m.Methods {
		data.Methods = append(data.Methods, jsonMethod{
			Name:        method.Name,
			ReturnType:  method.ReturnType.String(),
			Parameters:  parameterTypes(method.Parameters),
			Visibility:  string(method.Visibility),
			Modifiers:   methodModifiers(method),
			Annotations: annotationData(method.Annotations),
		})
	}
	return data
}

func annotationData(anns []java.AnnotationModel) []jsonAnnotation {
	var out []jsonAnnotation
	for _, a := range anns {
		ja := jsonAnnotation{Type: a.Type}
		for _, p := range a.Values {
			if ja.Values == nil {
				ja.Values = map[string]interface{}{}
			}
			ja.Values[p.Name] = annotationValue(p.Value)
		}
		out = append(out, ja)
	}
	return out
}

func annotationValue(v interface{}) interface{} {
	switch v := v.(type) {
	case java.EnumValue:
		return v.Type + "." + v.Name
	case java.ClassValue:
		return string(v) + ".class"
	case java.AnnotationModel:
		return annotationData([]java.AnnotationModel{v})[0]
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, item := range v {
			out[i] = annotationValue(item)
		}
		return out
	}
	return v
}

func classModifiers(m *java.ClassModel) []string {
	var mods []string
	if m.IsFinal {
		mods = append(mods, "final")
	}
	if m.IsAbstract {
		mods = append(mods, "abstract")
	}
	if m.IsSynthetic {
		mods = append(mods, "synthetic")
	}
	return mods
}

func fieldModifiers(f java.FieldModel) []string {
	var mods []string
	if f.IsStatic {
		mods = append(mods, "static")
	}
	if f.IsFinal {
		mods = append(mods, "final")
	}
	if f.IsTransient {
		mods = append(mods, "transient")
	}
	if f.IsSynthetic {
		mods = append(mods, "synthetic")
	}
	return mods
}

func methodModifiers(m java.MethodModel) []string {
	var mods []string
	if m.IsStatic {
		mods = append(mods, "static")
	}
	if m.IsAbstract {
		mods = append(mods, "abstract")
	}
	if m.IsBridge {
		mods = append(mods, "bridge")
	}
	if m.IsSynthetic {
		mods = append(mods, "synthetic")
	}
	if m.IsDefault {
		mods = append(mods, "default")
	}
	return mods
}

func parameterTypes(params []java.ParameterModel) []string {
	var out []string
	for _, p := range params {
		out = append(out, p.Type.String())
	}
	return out
}
