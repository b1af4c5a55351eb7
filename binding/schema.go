package binding

import "github.com/dhamidi/beanscan/java"

// SchemaAnnotation is the MicroProfile OpenAPI schema annotation.
const SchemaAnnotation = "org.eclipse.microprofile.openapi.annotations.media.Schema"

// Schema reads @Schema: name, hidden, readOnly and writeOnly.
type Schema struct{}

func (Schema) Name() string { return "schema" }

func (Schema) PropertyName(anns []java.AnnotationModel) (string, bool) {
	if s := find(anns, SchemaAnnotation); s != nil {
		if name, ok := s.String("name"); ok && name != "" {
			return name, true
		}
	}
	return "", false
}

func (Schema) Visibility(anns []java.AnnotationModel) Visibility {
	s := find(anns, SchemaAnnotation)
	if s == nil {
		return Visibility{}
	}
	var v Visibility
	if hidden, ok := s.Bool("hidden"); ok {
		v.Decision = Expose
		if hidden {
			v.Decision = Hide
		}
	}
	v.ReadOnly, _ = s.Bool("readOnly")
	v.WriteOnly, _ = s.Bool("writeOnly")
	return v
}

func (Schema) Access(*java.ClassModel, Member) Decision { return Undecided }

func (Schema) Order(*java.ClassModel) (Order, bool) { return Order{}, false }

func (Schema) IgnoredProperties([]java.AnnotationModel) []string { return nil }

// IgnoresType reports @Schema(hidden = true) on the class itself.
func (Schema) IgnoresType(class *java.ClassModel) bool {
	hidden, _ := find(class.Annotations, SchemaAnnotation).Bool("hidden")
	return hidden
}

func (Schema) Documents(anns []java.AnnotationModel) bool {
	return find(anns, SchemaAnnotation) != nil
}
