package java

import "testing"

func TestParseType(t *testing.T) {
	tests := []struct {
		in   string
		kind TypeKind
		want string
	}{
		{"int", TypePrimitive, "int"},
		{"void", TypeVoid, "void"},
		{"java.lang.String", TypeClass, "java.lang.String"},
		{"T", TypeVariable, "T"},
		{"java.util.List<T>", TypeParameterized, "java.util.List<T>"},
		{"java.util.Map<java.lang.String,java.util.List<? extends java.lang.Number>>", TypeParameterized,
			"java.util.Map<java.lang.String, java.util.List<? extends java.lang.Number>>"},
		{"java.util.List<?>", TypeParameterized, "java.util.List<?>"},
		{"java.util.Comparator<? super T>", TypeParameterized, "java.util.Comparator<? super T>"},
		{"int[][]", TypeArray, "int[][]"},
		{"java.util.List<T>[]", TypeArray, "java.util.List<T>[]"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseType(tt.in)
			if err != nil {
				t.Fatalf("ParseType(%q) error = %v", tt.in, err)
			}
			if got.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", got.Kind, tt.kind)
			}
			if got.String() != tt.want {
				t.Errorf("String() = %q, want %q", got.String(), tt.want)
			}
		})
	}
}

func TestParseTypeErrors(t *testing.T) {
	for _, in := range []string{"", "java.util.List<", "java.util.List<T", "int<T>", "java.lang.String>"} {
		if _, err := ParseType(in); err == nil {
			t.Errorf("ParseType(%q) succeeded, want error", in)
		}
	}
}

func TestTypeEqual(t *testing.T) {
	a := MustParseType("java.util.Map<java.lang.String, T[]>")
	b := Parameterized("java.util.Map", Class("java.lang.String"), Array(Variable("T")))
	if !a.Equal(b) {
		t.Errorf("%s should equal %s", a, b)
	}
	if a.Equal(MustParseType("java.util.Map<java.lang.String, T>")) {
		t.Error("types with different arguments should not be equal")
	}
	var nilType *Type
	if !nilType.Equal(nil) || nilType.Equal(Void()) {
		t.Error("nil handling in Equal is wrong")
	}
}

func TestTypePredicates(t *testing.T) {
	if !Primitive("boolean").IsBoolean() || !Class("java.lang.Boolean").IsBoolean() {
		t.Error("boolean and java.lang.Boolean should be boolean")
	}
	if Primitive("int").IsBoolean() {
		t.Error("int is not boolean")
	}
	if got := MustParseType("java.util.List<T>").ClassName(); got != "java.util.List" {
		t.Errorf("ClassName() = %q, want java.util.List", got)
	}
	if got := Variable("T").ClassName(); got != "" {
		t.Errorf("ClassName() of a variable = %q, want empty", got)
	}
	if Parameterized("java.util.List").Kind != TypeClass {
		t.Error("Parameterized without arguments should be a raw class")
	}
}
