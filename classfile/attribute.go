package classfile

import (
	"encoding/binary"
)

const (
	AttrSignature                            = "Signature"
	AttrRecord                               = "Record"
	AttrRuntimeVisibleAnnotations            = "RuntimeVisibleAnnotations"
	AttrRuntimeInvisibleAnnotations          = "RuntimeInvisibleAnnotations"
	AttrRuntimeVisibleParameterAnnotations   = "RuntimeVisibleParameterAnnotations"
	AttrRuntimeInvisibleParameterAnnotations = "RuntimeInvisibleParameterAnnotations"
)

// AttributeInfo is a raw attribute. Parsed is set for the attributes the
// property scanner needs; everything else keeps only its bytes.
type AttributeInfo struct {
	NameIndex uint16
	Info      []byte
	Parsed    interface{}
}

type SignatureAttribute struct {
	SignatureIndex uint16
}

type RecordAttribute struct {
	Components []RecordComponentInfo
}

type RecordComponentInfo struct {
	NameIndex       uint16
	DescriptorIndex uint16
	Attributes      []AttributeInfo
}

func (rc *RecordComponentInfo) Name(cp ConstantPool) string {
	return cp.GetUtf8(rc.NameIndex)
}

type Annotation struct {
	TypeIndex         uint16
	ElementValuePairs []ElementValuePair
}

type ElementValuePair struct {
	ElementNameIndex uint16
	Value            ElementValue
}

type ElementValue struct {
	Tag   byte
	Value interface{}
}

type EnumConstValue struct {
	TypeNameIndex  uint16
	ConstNameIndex uint16
}

type ArrayValue struct {
	Values []ElementValue
}

type AnnotationsAttribute struct {
	Visible     bool
	Annotations []Annotation
}

type ParameterAnnotationsAttribute struct {
	Visible    bool
	Parameters [][]Annotation
}

func (a *AttributeInfo) AsSignature() *SignatureAttribute {
	sig, _ := a.Parsed.(*SignatureAttribute)
	return sig
}

func (a *AttributeInfo) AsRecord() *RecordAttribute {
	rec, _ := a.Parsed.(*RecordAttribute)
	return rec
}

func (a *AttributeInfo) AsAnnotations() *AnnotationsAttribute {
	anns, _ := a.Parsed.(*AnnotationsAttribute)
	return anns
}

func (a *AttributeInfo) AsParameterAnnotations() *ParameterAnnotationsAttribute {
	pa, _ := a.Parsed.(*ParameterAnnotationsAttribute)
	return pa
}

func findAttribute(attrs []AttributeInfo, cp ConstantPool, name string) *AttributeInfo {
	for i := range attrs {
		if cp.GetUtf8(attrs[i].NameIndex) == name {
			return &attrs[i]
		}
	}
	return nil
}

func signatureOf(attrs []AttributeInfo, cp ConstantPool) string {
	attr := findAttribute(attrs, cp, AttrSignature)
	if attr == nil {
		return ""
	}
	if sig := attr.AsSignature(); sig != nil {
		return cp.GetUtf8(sig.SignatureIndex)
	}
	return ""
}

func annotationsOf(attrs []AttributeInfo, cp ConstantPool) []Annotation {
	var result []Annotation
	for _, name := range []string{AttrRuntimeVisibleAnnotations, AttrRuntimeInvisibleAnnotations} {
		attr := findAttribute(attrs, cp, name)
		if attr == nil {
			continue
		}
		if anns := attr.AsAnnotations(); anns != nil {
			result = append(result, anns.Annotations...)
		}
	}
	return result
}

// parseAttribute decodes the payload of the attributes this package understands.
func parseAttribute(name string, info []byte, cp ConstantPool) interface{} {
	switch name {
	case AttrSignature:
		return parseSignatureAttribute(info)
	case AttrRecord:
		return parseRecordAttribute(info, cp)
	case AttrRuntimeVisibleAnnotations:
		return parseAnnotationsAttribute(info, true)
	case AttrRuntimeInvisibleAnnotations:
		return parseAnnotationsAttribute(info, false)
	case AttrRuntimeVisibleParameterAnnotations:
		return parseParameterAnnotationsAttribute(info, true)
	case AttrRuntimeInvisibleParameterAnnotations:
		return parseParameterAnnotationsAttribute(info, false)
	}
	return nil
}

func parseSignatureAttribute(info []byte) *SignatureAttribute {
	if len(info) < 2 {
		return nil
	}
	return &SignatureAttribute{
		SignatureIndex: binary.BigEndian.Uint16(info[0:2]),
	}
}

func parseRecordAttribute(info []byte, cp ConstantPool) *RecordAttribute {
	if len(info) < 2 {
		return nil
	}

	count := binary.BigEndian.Uint16(info[0:2])
	rec := &RecordAttribute{
		Components: make([]RecordComponentInfo, 0, count),
	}

	offset := 2
	for i := uint16(0); i < count; i++ {
		if len(info) < offset+6 {
			return nil
		}
		component := RecordComponentInfo{
			NameIndex:       binary.BigEndian.Uint16(info[offset : offset+2]),
			DescriptorIndex: binary.BigEndian.Uint16(info[offset+2 : offset+4]),
		}
		attributesCount := binary.BigEndian.Uint16(info[offset+4 : offset+6])
		offset += 6

		for j := uint16(0); j < attributesCount; j++ {
			if len(info) < offset+6 {
				return nil
			}
			nameIndex := binary.BigEndian.Uint16(info[offset : offset+2])
			length := int(binary.BigEndian.Uint32(info[offset+2 : offset+6]))
			offset += 6
			if len(info) < offset+length {
				return nil
			}
			payload := info[offset : offset+length]
			offset += length

			component.Attributes = append(component.Attributes, AttributeInfo{
				NameIndex: nameIndex,
				Info:      payload,
				Parsed:    parseAttribute(cp.GetUtf8(nameIndex), payload, cp),
			})
		}

		rec.Components = append(rec.Components, component)
	}

	return rec
}

func parseElementValue(info []byte, offset int) (ElementValue, int) {
	if len(info) <= offset {
		return ElementValue{}, offset
	}

	tag := info[offset]
	offset++

	ev := ElementValue{Tag: tag}

	switch tag {
	case 'B', 'C', 'D', 'F', 'I', 'J', 'S', 'Z', 's', 'c':
		if len(info) < offset+2 {
			return ev, offset
		}
		ev.Value = binary.BigEndian.Uint16(info[offset : offset+2])
		offset += 2

	case 'e':
		if len(info) < offset+4 {
			return ev, offset
		}
		ev.Value = EnumConstValue{
			TypeNameIndex:  binary.BigEndian.Uint16(info[offset : offset+2]),
			ConstNameIndex: binary.BigEndian.Uint16(info[offset+2 : offset+4]),
		}
		offset += 4

	case '@':
		var ann Annotation
		ann, offset = parseAnnotation(info, offset)
		ev.Value = ann

	case '[':
		if len(info) < offset+2 {
			return ev, offset
		}
		numValues := binary.BigEndian.Uint16(info[offset : offset+2])
		offset += 2
		values := make([]ElementValue, numValues)
		for i := uint16(0); i < numValues; i++ {
			values[i], offset = parseElementValue(info, offset)
		}
		ev.Value = ArrayValue{Values: values}
	}

	return ev, offset
}

func parseAnnotation(info []byte, offset int) (Annotation, int) {
	ann := Annotation{}
	if len(info) < offset+4 {
		return ann, offset
	}

	ann.TypeIndex = binary.BigEndian.Uint16(info[offset : offset+2])
	numPairs := binary.BigEndian.Uint16(info[offset+2 : offset+4])
	offset += 4

	ann.ElementValuePairs = make([]ElementValuePair, 0, numPairs)
	for i := uint16(0); i < numPairs; i++ {
		if len(info) < offset+2 {
			return ann, offset
		}
		pair := ElementValuePair{
			ElementNameIndex: binary.BigEndian.Uint16(info[offset : offset+2]),
		}
		offset += 2
		pair.Value, offset = parseElementValue(info, offset)
		ann.ElementValuePairs = append(ann.ElementValuePairs, pair)
	}

	return ann, offset
}

func parseAnnotationList(info []byte, offset int) ([]Annotation, int) {
	if len(info) < offset+2 {
		return nil, offset
	}
	count := binary.BigEndian.Uint16(info[offset : offset+2])
	offset += 2

	annotations := make([]Annotation, count)
	for i := uint16(0); i < count; i++ {
		annotations[i], offset = parseAnnotation(info, offset)
	}
	return annotations, offset
}

func parseAnnotationsAttribute(info []byte, visible bool) *AnnotationsAttribute {
	if len(info) < 2 {
		return nil
	}
	annotations, _ := parseAnnotationList(info, 0)
	return &AnnotationsAttribute{Visible: visible, Annotations: annotations}
}

func parseParameterAnnotationsAttribute(info []byte, visible bool) *ParameterAnnotationsAttribute {
	if len(info) < 1 {
		return nil
	}

	numParameters := int(info[0])
	pa := &ParameterAnnotationsAttribute{
		Visible:    visible,
		Parameters: make([][]Annotation, numParameters),
	}

	offset := 1
	for i := 0; i < numParameters; i++ {
		if len(info) < offset+2 {
			return nil
		}
		pa.Parameters[i], offset = parseAnnotationList(info, offset)
	}

	return pa
}
