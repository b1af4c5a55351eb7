package java

import "github.com/dhamidi/beanscan/classfile"

// AnnotationModel is an annotation instance with its element values in
// declaration order. Values are string, int32, int64, float32, float64,
// EnumValue, ClassValue, AnnotationModel or []interface{}.
type AnnotationModel struct {
	Type   string
	Values []ElementValuePair
}

type ElementValuePair struct {
	Name  string
	Value interface{}
}

type EnumValue struct {
	Type string
	Name string
}

type ClassValue string

func NewAnnotation(typeName string, pairs ...ElementValuePair) AnnotationModel {
	return AnnotationModel{Type: typeName, Values: pairs}
}

func Pair(name string, value interface{}) ElementValuePair {
	return ElementValuePair{Name: name, Value: value}
}

func FindAnnotation(anns []AnnotationModel, names ...string) *AnnotationModel {
	for i := range anns {
		for _, name := range names {
			if anns[i].Type == name {
				return &anns[i]
			}
		}
	}
	return nil
}

func (a *AnnotationModel) Value(name string) (interface{}, bool) {
	if a == nil {
		return nil, false
	}
	for _, p := range a.Values {
		if p.Name == name {
			return p.Value, true
		}
	}
	return nil, false
}

func (a *AnnotationModel) Has(name string) bool {
	_, ok := a.Value(name)
	return ok
}

func (a *AnnotationModel) String(name string) (string, bool) {
	v, ok := a.Value(name)
	if !ok {
		return "", false
	}
	switch v := v.(type) {
	case string:
		return v, true
	case ClassValue:
		return string(v), true
	}
	return "", false
}

func (a *AnnotationModel) Bool(name string) (bool, bool) {
	v, ok := a.Value(name)
	if !ok {
		return false, false
	}
	switch v := v.(type) {
	case bool:
		return v, true
	case int32:
		return v != 0, true
	}
	return false, false
}

func (a *AnnotationModel) Int(name string) (int64, bool) {
	v, ok := a.Value(name)
	if !ok {
		return 0, false
	}
	switch v := v.(type) {
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	}
	return 0, false
}

// Strings returns a string array element. A single string counts as a
// one-element array.
func (a *AnnotationModel) Strings(name string) ([]string, bool) {
	v, ok := a.Value(name)
	if !ok {
		return nil, false
	}
	switch v := v.(type) {
	case string:
		return []string{v}, true
	case []string:
		return v, true
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out, true
	}
	return nil, false
}

// Enum returns the constant name of an enum element.
func (a *AnnotationModel) Enum(name string) (string, bool) {
	v, ok := a.Value(name)
	if !ok {
		return "", false
	}
	switch v := v.(type) {
	case EnumValue:
		return v.Name, true
	case []interface{}:
		if len(v) == 1 {
			if e, ok := v[0].(EnumValue); ok {
				return e.Name, true
			}
		}
	}
	return "", false
}

// Nested returns annotation-valued elements, flattening arrays.
func (a *AnnotationModel) Nested(name string) []AnnotationModel {
	v, ok := a.Value(name)
	if !ok {
		return nil
	}
	switch v := v.(type) {
	case AnnotationModel:
		return []AnnotationModel{v}
	case []interface{}:
		var out []AnnotationModel
		for _, item := range v {
			if ann, ok := item.(AnnotationModel); ok {
				out = append(out, ann)
			}
		}
		return out
	}
	return nil
}

func annotationsFromClassfile(anns []classfile.Annotation, cp classfile.ConstantPool) []AnnotationModel {
	if len(anns) == 0 {
		return nil
	}
	result := make([]AnnotationModel, len(anns))
	for i, a := range anns {
		result[i] = annotationFromClassfile(a, cp)
	}
	return result
}

func annotationFromClassfile(a classfile.Annotation, cp classfile.ConstantPool) AnnotationModel {
	model := AnnotationModel{
		Type:   descriptorToTypeName(cp.GetUtf8(a.TypeIndex)),
		Values: make([]ElementValuePair, len(a.ElementValuePairs)),
	}
	for i, p := range a.ElementValuePairs {
		model.Values[i] = ElementValuePair{
			Name:  cp.GetUtf8(p.ElementNameIndex),
			Value: elementValueToGo(p.Value, cp),
		}
	}
	return model
}

func elementValueToGo(ev classfile.ElementValue, cp classfile.ConstantPool) interface{} {
	switch ev.Tag {
	case 'Z':
		if idx, ok := ev.Value.(uint16); ok {
			if val, found := cp.GetInteger(idx); found {
				return val != 0
			}
		}
	case 'B', 'C', 'I', 'S':
		if idx, ok := ev.Value.(uint16); ok {
			if val, found := cp.GetInteger(idx); found {
				return val
			}
		}
	case 'D':
		if idx, ok := ev.Value.(uint16); ok {
			if val, found := cp.GetDouble(idx); found {
				return val
			}
		}
	case 'F':
		if idx, ok := ev.Value.(uint16); ok {
			if val, found := cp.GetFloat(idx); found {
				return val
			}
		}
	case 'J':
		if idx, ok := ev.Value.(uint16); ok {
			if val, found := cp.GetLong(idx); found {
				return val
			}
		}
	case 's':
		if idx, ok := ev.Value.(uint16); ok {
			return cp.GetUtf8(idx)
		}
	case 'e':
		if ecv, ok := ev.Value.(classfile.EnumConstValue); ok {
			return EnumValue{
				Type: descriptorToTypeName(cp.GetUtf8(ecv.TypeNameIndex)),
				Name: cp.GetUtf8(ecv.ConstNameIndex),
			}
		}
	case 'c':
		if idx, ok := ev.Value.(uint16); ok {
			return ClassValue(descriptorToTypeName(cp.GetUtf8(idx)))
		}
	case '@':
		if ann, ok := ev.Value.(classfile.Annotation); ok {
			return annotationFromClassfile(ann, cp)
		}
	case '[':
		if arr, ok := ev.Value.(classfile.ArrayValue); ok {
			result := make([]interface{}, len(arr.Values))
			for i, v := range arr.Values {
				result[i] = elementValueToGo(v, cp)
			}
			return result
		}
	}
	return nil
}

func descriptorToTypeName(desc string) string {
	if len(desc) == 0 {
		return ""
	}
	if desc[0] == 'L' && desc[len(desc)-1] == ';' {
		return classfile.InternalToSourceName(desc[1 : len(desc)-1])
	}
	return desc
}
