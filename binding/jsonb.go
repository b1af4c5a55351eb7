package binding

import "github.com/dhamidi/beanscan/java"

var (
	jsonbProperty      = variants("json.bind.annotation", "JsonbProperty")
	jsonbTransient     = variants("json.bind.annotation", "JsonbTransient")
	jsonbPropertyOrder = variants("json.bind.annotation", "JsonbPropertyOrder")
)

// JSONB reads the JSON Binding annotations of both javax and jakarta.
type JSONB struct{}

func (JSONB) Name() string { return "jsonb" }

func (JSONB) PropertyName(anns []java.AnnotationModel) (string, bool) {
	if p := find(anns, jsonbProperty...); p != nil {
		if name, ok := p.String("value"); ok && name != "" {
			return name, true
		}
	}
	return "", false
}

func (JSONB) Visibility(anns []java.AnnotationModel) Visibility {
	switch {
	case find(anns, jsonbTransient...) != nil:
		return Visibility{Decision: Hide}
	case find(anns, jsonbProperty...) != nil:
		return Visibility{Decision: Expose}
	}
	return Visibility{}
}

func (JSONB) Access(*java.ClassModel, Member) Decision { return Undecided }

func (JSONB) Order(class *java.ClassModel) (Order, bool) {
	o := find(class.Annotations, jsonbPropertyOrder...)
	if o == nil {
		return Order{}, false
	}
	names, _ := o.Strings("value")
	return Order{Names: nonEmpty(names), Source: o.Type}, true
}

func (JSONB) IgnoredProperties([]java.AnnotationModel) []string { return nil }

func (JSONB) IgnoresType(*java.ClassModel) bool { return false }

func (JSONB) Documents([]java.AnnotationModel) bool { return false }
