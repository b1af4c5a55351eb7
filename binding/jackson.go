package binding

import "github.com/dhamidi/beanscan/java"

const (
	jacksonPackage              = "com.fasterxml.jackson.annotation."
	jacksonProperty             = jacksonPackage + "JsonProperty"
	jacksonIgnore               = jacksonPackage + "JsonIgnore"
	jacksonPropertyOrder        = jacksonPackage + "JsonPropertyOrder"
	jacksonIgnoreProperties     = jacksonPackage + "JsonIgnoreProperties"
	jacksonIgnoreType           = jacksonPackage + "JsonIgnoreType"
	jacksonAutoDetect           = jacksonPackage + "JsonAutoDetect"
	jacksonAccessReadOnly       = "READ_ONLY"
	jacksonAccessWriteOnly      = "WRITE_ONLY"
	jacksonVisibilityAny        = "ANY"
	jacksonVisibilityNonPrivate = "NON_PRIVATE"
	jacksonVisibilityProtected  = "PROTECTED_AND_PUBLIC"
	jacksonVisibilityPublic     = "PUBLIC_ONLY"
	jacksonVisibilityNone       = "NONE"
)

// Jackson reads the com.fasterxml.jackson.annotation family.
type Jackson struct{}

func (Jackson) Name() string { return "jackson" }

func (Jackson) PropertyName(anns []java.AnnotationModel) (string, bool) {
	if p := find(anns, jacksonProperty); p != nil {
		if name, ok := p.String("value"); ok && name != "" {
			return name, true
		}
	}
	return "", false
}

// Visibility treats @JsonIgnore as a hide unless its value is false, which
// re-exposes the member. @JsonProperty exposes and may restrict direction.
func (Jackson) Visibility(anns []java.AnnotationModel) Visibility {
	if ignore := find(anns, jacksonIgnore); ignore != nil {
		if value, ok := ignore.Bool("value"); ok && !value {
			return Visibility{Decision: Expose}
		}
		return Visibility{Decision: Hide}
	}
	p := find(anns, jacksonProperty)
	if p == nil {
		return Visibility{}
	}
	v := Visibility{Decision: Expose}
	switch access, _ := p.Enum("access"); access {
	case jacksonAccessReadOnly:
		v.ReadOnly = true
	case jacksonAccessWriteOnly:
		v.WriteOnly = true
	}
	return v
}

// Access applies @JsonAutoDetect. DEFAULT or an absent setting leaves the
// decision to the caller.
func (Jackson) Access(class *java.ClassModel, m Member) Decision {
	auto := find(class.Annotations, jacksonAutoDetect)
	if auto == nil {
		return Undecided
	}
	var setting string
	switch m.Kind {
	case FieldMember:
		setting, _ = auto.Enum("fieldVisibility")
	case ReadMember:
		if len(m.Name) > 2 && m.Name[:2] == "is" {
			setting, _ = auto.Enum("isGetterVisibility")
		}
		if setting == "" {
			setting, _ = auto.Enum("getterVisibility")
		}
	case WriteMember:
		setting, _ = auto.Enum("setterVisibility")
	}

	switch setting {
	case jacksonVisibilityAny:
		return Expose
	case jacksonVisibilityNonPrivate:
		return exposeIf(m.Visibility != java.VisibilityPrivate)
	case jacksonVisibilityProtected:
		return exposeIf(m.Visibility == java.VisibilityPublic || m.Visibility == java.VisibilityProtected)
	case jacksonVisibilityPublic:
		return exposeIf(m.Visibility == java.VisibilityPublic)
	case jacksonVisibilityNone:
		return Hide
	}
	return Undecided
}

func exposeIf(ok bool) Decision {
	if ok {
		return Expose
	}
	return Hide
}

func (Jackson) Order(class *java.ClassModel) (Order, bool) {
	o := find(class.Annotations, jacksonPropertyOrder)
	if o == nil {
		return Order{}, false
	}
	names, _ := o.Strings("value")
	alphabetic, _ := o.Bool("alphabetic")
	return Order{Names: nonEmpty(names), Alphabetical: alphabetic, Source: o.Type}, true
}

func (Jackson) IgnoredProperties(anns []java.AnnotationModel) []string {
	if ip := find(anns, jacksonIgnoreProperties); ip != nil {
		names, _ := ip.Strings("value")
		return nonEmpty(names)
	}
	return nil
}

func (Jackson) IgnoresType(class *java.ClassModel) bool {
	it := find(class.Annotations, jacksonIgnoreType)
	if it == nil {
		return false
	}
	if value, ok := it.Bool("value"); ok {
		return value
	}
	return true
}

func (Jackson) Documents([]java.AnnotationModel) bool { return false }
