package format

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dhamidi/beanscan/java"
)

// YAMLEncoder writes one YAML document per Encode call, separated by "---".
type YAMLEncoder struct {
	w     io.Writer
	doc   *Document
	count int
}

func NewYAMLEncoder(w io.Writer) *YAMLEncoder {
	return &YAMLEncoder{w: w}
}

func (e *YAMLEncoder) Encode(doc *Document) error {
	e.doc = doc
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	if e.count > 0 {
		text = append([]byte("---\n"), text...)
	}
	e.count++
	_, err = e.w.Write(text)
	return err
}

func (e *YAMLEncoder) MarshalText() ([]byte, error) {
	return marshalYAML(e.doc)
}

type YAMLModelEncoder struct {
	w     io.Writer
	model *java.ClassModel
}

func NewYAMLModelEncoder(w io.Writer) *YAMLModelEncoder {
	return &YAMLModelEncoder{w: w}
}

func (e *YAMLModelEncoder) Encode(model *java.ClassModel) error {
	e.model = model
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *YAMLModelEncoder) MarshalText() ([]byte, error) {
	return marshalYAML(newClassData(e.model))
}

func marshalYAML(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
