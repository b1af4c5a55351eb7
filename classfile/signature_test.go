package classfile

import "testing"

func TestParseClassSignature(t *testing.T) {
	cs, err := ParseClassSignature("<K:Ljava/lang/Object;V::Ljava/lang/Comparable<TV;>;>Lcom/example/Base<TK;Ljava/util/List<TV;>;>;Ljava/io/Serializable;")
	if err != nil {
		t.Fatalf("ParseClassSignature() error = %v", err)
	}
	if len(cs.TypeParameters) != 2 {
		t.Fatalf("len(TypeParameters) = %d, want 2", len(cs.TypeParameters))
	}
	if cs.TypeParameters[0].Name != "K" || cs.TypeParameters[1].Name != "V" {
		t.Errorf("type parameters = %q, %q", cs.TypeParameters[0].Name, cs.TypeParameters[1].Name)
	}
	if got := cs.TypeParameters[1].Bounds[0].ClassName; got != "java/lang/Comparable" {
		t.Errorf("V bound = %q, want java/lang/Comparable", got)
	}
	if cs.SuperClass.ClassName != "com/example/Base" {
		t.Errorf("SuperClass = %q", cs.SuperClass.ClassName)
	}
	args := cs.SuperClass.TypeArguments
	if len(args) != 2 {
		t.Fatalf("len(super args) = %d, want 2", len(args))
	}
	if args[0].Type.Kind != SignatureTypeVariable || args[0].Type.TypeVariable != "K" {
		t.Errorf("arg 0 = %+v, want type variable K", args[0].Type)
	}
	if args[1].Type.ClassName != "java/util/List" || args[1].Type.TypeArguments[0].Type.TypeVariable != "V" {
		t.Errorf("arg 1 = %+v, want List<V>", args[1].Type)
	}
	if len(cs.Interfaces) != 1 || cs.Interfaces[0].ClassName != "java/io/Serializable" {
		t.Errorf("Interfaces = %+v", cs.Interfaces)
	}
}

func TestParseMethodSignature(t *testing.T) {
	tests := []struct {
		name       string
		sig        string
		params     int
		returnKind SignatureKind
		void       bool
		typeParams int
	}{
		{"generic getter", "()TT;", 0, SignatureTypeVariable, false, 0},
		{"setter", "(Ljava/util/Map<Ljava/lang/String;+Ljava/lang/Number;>;)V", 1, 0, true, 0},
		{"method type parameter", "<U:Ljava/lang/Object;>(TU;[I)[TU;", 2, SignatureArray, false, 1},
		{"throws", "()V^Ljava/io/IOException;^TE;", 0, 0, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms, err := ParseMethodSignature(tt.sig)
			if err != nil {
				t.Fatalf("ParseMethodSignature(%q) error = %v", tt.sig, err)
			}
			if len(ms.Parameters) != tt.params {
				t.Errorf("len(Parameters) = %d, want %d", len(ms.Parameters), tt.params)
			}
			if len(ms.TypeParameters) != tt.typeParams {
				t.Errorf("len(TypeParameters) = %d, want %d", len(ms.TypeParameters), tt.typeParams)
			}
			if tt.void {
				if ms.Return != nil {
					t.Errorf("Return = %+v, want void", ms.Return)
				}
				return
			}
			if ms.Return == nil || ms.Return.Kind != tt.returnKind {
				t.Errorf("Return = %+v, want kind %d", ms.Return, tt.returnKind)
			}
		})
	}
}

func TestParseFieldSignatureWildcards(t *testing.T) {
	ts, err := ParseFieldSignature("Ljava/util/Map<*-Ljava/lang/Integer;>;")
	if err != nil {
		t.Fatalf("ParseFieldSignature() error = %v", err)
	}
	if len(ts.TypeArguments) != 2 {
		t.Fatalf("len(TypeArguments) = %d, want 2", len(ts.TypeArguments))
	}
	if ts.TypeArguments[0].Wildcard != '*' || ts.TypeArguments[0].Type != nil {
		t.Errorf("arg 0 = %+v, want unbounded wildcard", ts.TypeArguments[0])
	}
	if ts.TypeArguments[1].Wildcard != '-' || ts.TypeArguments[1].Type.ClassName != "java/lang/Integer" {
		t.Errorf("arg 1 = %+v, want ? super Integer", ts.TypeArguments[1])
	}
}

func TestParseFieldSignatureNested(t *testing.T) {
	ts, err := ParseFieldSignature("Lcom/example/Outer<TT;>.Inner<Ljava/lang/String;>;")
	if err != nil {
		t.Fatalf("ParseFieldSignature() error = %v", err)
	}
	if ts.ClassName != "com/example/Outer$Inner" {
		t.Errorf("ClassName = %q, want com/example/Outer$Inner", ts.ClassName)
	}
	if len(ts.TypeArguments) != 1 || ts.TypeArguments[0].Type.ClassName != "java/lang/String" {
		t.Errorf("TypeArguments = %+v", ts.TypeArguments)
	}
}

func TestParseSignatureErrors(t *testing.T) {
	for _, sig := range []string{"", "Ljava/lang/String", "Ljava/util/List<TT;", "Q"} {
		if _, err := ParseFieldSignature(sig); err == nil {
			t.Errorf("ParseFieldSignature(%q) succeeded, want error", sig)
		}
	}
	if _, err := ParseMethodSignature("(I"); err == nil {
		t.Error("ParseMethodSignature(\"(I\") succeeded, want error")
	}
}
