package binding

import "github.com/dhamidi/beanscan/java"

const (
	jaxbPackage            = "xml.bind.annotation"
	xmlAccessField         = "FIELD"
	xmlAccessProperty      = "PROPERTY"
	xmlAccessPublicMember  = "PUBLIC_MEMBER"
	xmlAccessNone          = "NONE"
	xmlAccessOrderAlphabet = "ALPHABETICAL"
)

var (
	xmlTransient     = variants(jaxbPackage, "XmlTransient")
	xmlType          = variants(jaxbPackage, "XmlType")
	xmlAccessorType  = variants(jaxbPackage, "XmlAccessorType")
	xmlAccessorOrder = variants(jaxbPackage, "XmlAccessorOrder")
	xmlBound         = bound("XmlElement", "XmlAttribute", "XmlElementRef", "XmlElementRefs",
		"XmlElements", "XmlElementWrapper", "XmlValue", "XmlAnyElement", "XmlAnyAttribute", "XmlID", "XmlIDREF")
)

func bound(simple ...string) []string {
	var names []string
	for _, s := range simple {
		names = append(names, variants(jaxbPackage, s)...)
	}
	return names
}

// JAXB reads the XML Binding annotations of both javax and jakarta. XML
// element and attribute names are not property names, so it never renames.
type JAXB struct{}

func (JAXB) Name() string { return "jaxb" }

func (JAXB) PropertyName([]java.AnnotationModel) (string, bool) { return "", false }

func (JAXB) Visibility(anns []java.AnnotationModel) Visibility {
	switch {
	case find(anns, xmlTransient...) != nil:
		return Visibility{Decision: Hide}
	case find(anns, xmlBound...) != nil:
		return Visibility{Decision: Expose}
	}
	return Visibility{}
}

// Access applies @XmlTransient on the class and @XmlAccessorType.
func (JAXB) Access(class *java.ClassModel, m Member) Decision {
	if find(class.Annotations, xmlTransient...) != nil {
		return Hide
	}
	at := find(class.Annotations, xmlAccessorType...)
	if at == nil {
		return Undecided
	}
	value, _ := at.Enum("value")
	switch value {
	case xmlAccessField:
		return exposeIf(m.Kind == FieldMember)
	case xmlAccessProperty:
		return exposeIf(m.Kind != FieldMember)
	case xmlAccessPublicMember:
		return exposeIf(m.Visibility == java.VisibilityPublic)
	case xmlAccessNone:
		return Hide
	}
	return Undecided
}

func (JAXB) Order(class *java.ClassModel) (Order, bool) {
	var o Order
	found := false
	if t := find(class.Annotations, xmlType...); t != nil {
		if names, ok := t.Strings("propOrder"); ok {
			o.Names = nonEmpty(names)
			o.Source = t.Type
			found = len(o.Names) > 0
		}
	}
	if ao := find(class.Annotations, xmlAccessorOrder...); ao != nil {
		if value, _ := ao.Enum("value"); value == xmlAccessOrderAlphabet {
			o.Alphabetical = true
			if o.Source == "" {
				o.Source = ao.Type
			}
			found = true
		}
	}
	return o, found
}

func (JAXB) IgnoredProperties([]java.AnnotationModel) []string { return nil }

func (JAXB) IgnoresType(*java.ClassModel) bool { return false }

func (JAXB) Documents([]java.AnnotationModel) bool { return false }
