package java

import (
	"reflect"
	"testing"
)

func TestAnnotationAccessors(t *testing.T) {
	inner := NewAnnotation("javax.xml.bind.annotation.XmlElement", Pair("name", "x"))
	a := NewAnnotation("test.Ann",
		Pair("value", "hello"),
		Pair("flag", true),
		Pair("legacyFlag", int32(0)),
		Pair("count", int32(3)),
		Pair("big", int64(1)<<40),
		Pair("names", []interface{}{"a", "b"}),
		Pair("single", "only"),
		Pair("mode", EnumValue{Type: "test.Mode", Name: "FIELD"}),
		Pair("type", ClassValue("java.lang.String")),
		Pair("nested", []interface{}{inner, inner}),
		Pair("one", inner),
	)

	if v, ok := a.String("value"); !ok || v != "hello" {
		t.Errorf("String(value) = %q, %v", v, ok)
	}
	if v, ok := a.String("type"); !ok || v != "java.lang.String" {
		t.Errorf("String(type) = %q, %v", v, ok)
	}
	if _, ok := a.String("count"); ok {
		t.Error("String(count) should not convert integers")
	}
	if v, ok := a.Bool("flag"); !ok || !v {
		t.Errorf("Bool(flag) = %v, %v", v, ok)
	}
	if v, ok := a.Bool("legacyFlag"); !ok || v {
		t.Errorf("Bool(legacyFlag) = %v, %v", v, ok)
	}
	if v, ok := a.Int("count"); !ok || v != 3 {
		t.Errorf("Int(count) = %d, %v", v, ok)
	}
	if v, ok := a.Int("big"); !ok || v != 1<<40 {
		t.Errorf("Int(big) = %d, %v", v, ok)
	}
	if v, ok := a.Strings("names"); !ok || !reflect.DeepEqual(v, []string{"a", "b"}) {
		t.Errorf("Strings(names) = %v, %v", v, ok)
	}
	if v, ok := a.Strings("single"); !ok || !reflect.DeepEqual(v, []string{"only"}) {
		t.Errorf("Strings(single) = %v, %v", v, ok)
	}
	if v, ok := a.Enum("mode"); !ok || v != "FIELD" {
		t.Errorf("Enum(mode) = %q, %v", v, ok)
	}
	if got := len(a.Nested("nested")); got != 2 {
		t.Errorf("len(Nested(nested)) = %d, want 2", got)
	}
	if got := a.Nested("one"); len(got) != 1 || got[0].Type != inner.Type {
		t.Errorf("Nested(one) = %v", got)
	}
	if a.Has("missing") {
		t.Error("Has(missing) = true")
	}

	var none *AnnotationModel
	if _, ok := none.String("value"); ok {
		t.Error("nil annotation should have no values")
	}
}

func TestFindAnnotation(t *testing.T) {
	anns := []AnnotationModel{
		NewAnnotation("javax.json.bind.annotation.JsonbTransient"),
		NewAnnotation("jakarta.json.bind.annotation.JsonbProperty", Pair("value", "n")),
	}
	got := FindAnnotation(anns, "javax.json.bind.annotation.JsonbProperty", "jakarta.json.bind.annotation.JsonbProperty")
	if got == nil || got.Type != "jakarta.json.bind.annotation.JsonbProperty" {
		t.Fatalf("FindAnnotation() = %v", got)
	}
	if FindAnnotation(anns, "com.fasterxml.jackson.annotation.JsonIgnore") != nil {
		t.Error("FindAnnotation() found an absent annotation")
	}
}
