package classfile_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dhamidi/beanscan/classfile"
	cw "github.com/dhamidi/beanscan/internal/classwriter"
)

func TestParseMinimalClass(t *testing.T) {
	data := (&cw.Class{Access: cw.AccPublic, Name: "com/example/Empty", Super: "java/lang/Object"}).Bytes()

	cf, err := classfile.Parse(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := cf.ClassName(); got != "com/example/Empty" {
		t.Errorf("ClassName() = %q, want %q", got, "com/example/Empty")
	}
	if got := cf.SuperClassName(); got != "java/lang/Object" {
		t.Errorf("SuperClassName() = %q, want %q", got, "java/lang/Object")
	}
	if cf.IsInterface() {
		t.Error("IsInterface() = true, want false")
	}
}

func TestParseMembersAndAnnotations(t *testing.T) {
	data := (&cw.Class{
		Access:     cw.AccPublic,
		Name:       "com/example/Box",
		Super:      "java/lang/Object",
		Interfaces: []string{"java/io/Serializable"},
		Signature:  "<T:Ljava/lang/Object;>Ljava/lang/Object;Ljava/io/Serializable;",
		Fields: []cw.Member{
			{
				Access:     cw.AccPrivate | cw.AccTransient,
				Name:       "items",
				Descriptor: "Ljava/util/List;",
				Signature:  "Ljava/util/List<TT;>;",
				Annotations: []cw.Annotation{{
					Type: "Ljavax/json/bind/annotation/JsonbProperty;",
					Values: []cw.Value{
						{Name: "value", V: "nm"},
						{Name: "nillable", V: true},
						{Name: "ordinal", V: int64(7)},
					},
				}},
			},
			{Access: cw.AccPublic | cw.AccStatic, Name: "COUNT", Descriptor: "I"},
		},
		Methods: []cw.Member{
			{
				Access:     cw.AccPublic,
				Name:       "setItems",
				Descriptor: "(Ljava/util/List;)V",
				ParameterAnnotations: [][]cw.Annotation{
					{{Type: "Ljavax/validation/constraints/NotNull;"}},
				},
			},
			{Access: cw.AccPublic, Name: "<init>", Descriptor: "()V"},
		},
	}).Bytes()

	cf, err := classfile.Parse(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	cp := cf.ConstantPool

	t.Run("interfaces", func(t *testing.T) {
		got := cf.InterfaceNames()
		if len(got) != 1 || got[0] != "java/io/Serializable" {
			t.Errorf("InterfaceNames() = %v, want [java/io/Serializable]", got)
		}
	})

	t.Run("class signature", func(t *testing.T) {
		want := "<T:Ljava/lang/Object;>Ljava/lang/Object;Ljava/io/Serializable;"
		if got := cf.Signature(); got != want {
			t.Errorf("Signature() = %q, want %q", got, want)
		}
	})

	t.Run("field", func(t *testing.T) {
		f := cf.GetField("items")
		if f == nil {
			t.Fatal("GetField(items) = nil")
		}
		if !f.IsTransient() || !f.IsPrivate() {
			t.Errorf("flags = %#x, want private transient", f.AccessFlags)
		}
		if got := f.Signature(cp); got != "Ljava/util/List<TT;>;" {
			t.Errorf("Signature() = %q", got)
		}
		anns := f.Annotations(cp)
		if len(anns) != 1 {
			t.Fatalf("len(Annotations()) = %d, want 1", len(anns))
		}
		a := anns[0]
		if got := cp.GetUtf8(a.TypeIndex); got != "Ljavax/json/bind/annotation/JsonbProperty;" {
			t.Errorf("annotation type = %q", got)
		}
		if len(a.ElementValuePairs) != 3 {
			t.Fatalf("len(pairs) = %d, want 3", len(a.ElementValuePairs))
		}
		if got := cp.GetUtf8(a.ElementValuePairs[0].Value.Value.(uint16)); got != "nm" {
			t.Errorf("value = %q, want %q", got, "nm")
		}
		if v, ok := cp.GetInteger(a.ElementValuePairs[1].Value.Value.(uint16)); !ok || v != 1 {
			t.Errorf("nillable = %d, %v; want 1, true", v, ok)
		}
		if v, ok := cp.GetLong(a.ElementValuePairs[2].Value.Value.(uint16)); !ok || v != 7 {
			t.Errorf("ordinal = %d, %v; want 7, true", v, ok)
		}
	})

	t.Run("static field", func(t *testing.T) {
		f := cf.GetField("COUNT")
		if f == nil || !f.IsStatic() {
			t.Fatal("COUNT should be a static field")
		}
		if ft := f.ParsedDescriptor(cp); ft.BaseType != "int" {
			t.Errorf("BaseType = %q, want int", ft.BaseType)
		}
	})

	t.Run("method parameter annotations", func(t *testing.T) {
		ms := cf.GetMethods("setItems")
		if len(ms) != 1 {
			t.Fatalf("len(GetMethods) = %d, want 1", len(ms))
		}
		params := ms[0].ParameterAnnotations(cp)
		if len(params) != 1 || len(params[0]) != 1 {
			t.Fatalf("ParameterAnnotations() = %v", params)
		}
		if got := cp.GetUtf8(params[0][0].TypeIndex); got != "Ljavax/validation/constraints/NotNull;" {
			t.Errorf("parameter annotation = %q", got)
		}
	})

	t.Run("constructor", func(t *testing.T) {
		ms := cf.GetMethods("<init>")
		if len(ms) != 1 || !ms[0].IsConstructor(cp) {
			t.Error("<init> should be a constructor")
		}
	})
}

func TestParseInvalidMagic(t *testing.T) {
	_, err := classfile.Parse(bytes.NewReader([]byte{0xDE, 0xAD, 0xBE, 0xEF}))
	if err == nil || !strings.Contains(err.Error(), "invalid magic") {
		t.Errorf("Parse() error = %v, want invalid magic", err)
	}
}

func TestParseTruncated(t *testing.T) {
	data := (&cw.Class{Access: cw.AccPublic, Name: "a/B", Super: "java/lang/Object"}).Bytes()
	if _, err := classfile.Parse(bytes.NewReader(data[:len(data)-3])); err == nil {
		t.Error("Parse() of truncated data succeeded")
	}
}
