package java

type Visibility string

const (
	VisibilityPublic    Visibility = "public"
	VisibilityProtected Visibility = "protected"
	VisibilityPrivate   Visibility = "private"
	VisibilityPackage   Visibility = "package"
)

type ClassKind string

const (
	ClassKindClass      ClassKind = "class"
	ClassKindInterface  ClassKind = "interface"
	ClassKindEnum       ClassKind = "enum"
	ClassKindAnnotation ClassKind = "annotation"
	ClassKindRecord     ClassKind = "record"
)

const ObjectClass = "java.lang.Object"

type ClassModel struct {
	Name           string
	SimpleName     string
	Package        string
	Kind           ClassKind
	Visibility     Visibility
	IsAbstract     bool
	IsFinal        bool
	IsSynthetic    bool
	SuperClass     *Type
	Interfaces     []*Type
	TypeParameters []TypeParameterModel
	Annotations    []AnnotationModel
	Fields         []FieldModel
	Methods        []MethodModel
}

type FieldModel struct {
	Name        string
	Type        *Type
	Visibility  Visibility
	IsStatic    bool
	IsFinal     bool
	IsTransient bool
	IsSynthetic bool
	Annotations []AnnotationModel
}

type MethodModel struct {
	Name           string
	ReturnType     *Type
	Parameters     []ParameterModel
	TypeParameters []TypeParameterModel
	Visibility     Visibility
	IsStatic       bool
	IsAbstract     bool
	IsBridge       bool
	IsSynthetic    bool
	IsDefault      bool
	Annotations    []AnnotationModel
}

type ParameterModel struct {
	Type        *Type
	Annotations []AnnotationModel
}

type TypeParameterModel struct {
	Name   string
	Bounds []*Type
}

func (v Visibility) IsPublic() bool { return v == VisibilityPublic }

// TypeParameterNames returns the declared type parameter names in order.
func (c *ClassModel) TypeParameterNames() []string {
	names := make([]string, len(c.TypeParameters))
	for i, tp := range c.TypeParameters {
		names[i] = tp.Name
	}
	return names
}

func (c *ClassModel) IsInterface() bool { return c.Kind == ClassKindInterface }

func (c *ClassModel) Annotation(names ...string) *AnnotationModel {
	return FindAnnotation(c.Annotations, names...)
}

func (f *FieldModel) Annotation(names ...string) *AnnotationModel {
	return FindAnnotation(f.Annotations, names...)
}

func (m *MethodModel) Annotation(names ...string) *AnnotationModel {
	return FindAnnotation(m.Annotations, names...)
}

// ParameterTypes returns the declared parameter types in order.
func (m *MethodModel) ParameterTypes() []*Type {
	types := make([]*Type, len(m.Parameters))
	for i, p := range m.Parameters {
		types[i] = p.Type
	}
	return types
}

func (m *MethodModel) IsConstructor() bool {
	return m.Name == "<init>" || m.Name == "<clinit>"
}
