package property_test

import (
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/dhamidi/beanscan/binding"
	"github.com/dhamidi/beanscan/java"
	"github.com/dhamidi/beanscan/property"
)

// Class metadata for the fixtures below is written out the way the class
// file loader produces it, in declaration order.

const (
	jackson  = "com.fasterxml.jackson.annotation."
	jsonb    = "javax.json.bind.annotation."
	jaxb     = "javax.xml.bind.annotation."
	pkg      = "test.animals."
	strType  = "java.lang.String"
	voidType = "void"
)

func typ(s string) *java.Type { return java.MustParseType(s) }

func schema(pairs ...java.ElementValuePair) java.AnnotationModel {
	return java.NewAnnotation(binding.SchemaAnnotation, pairs...)
}

func ann(name string, pairs ...java.ElementValuePair) java.AnnotationModel {
	return java.NewAnnotation(name, pairs...)
}

func strs(values ...string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func enum(typeName, name string) java.EnumValue {
	return java.EnumValue{Type: typeName, Name: name}
}

func field(vis java.Visibility, name, t string, anns ...java.AnnotationModel) java.FieldModel {
	return java.FieldModel{Name: name, Type: typ(t), Visibility: vis, Annotations: anns}
}

func method(vis java.Visibility, name, ret string, params []string, anns ...java.AnnotationModel) java.MethodModel {
	m := java.MethodModel{Name: name, ReturnType: typ(ret), Visibility: vis, Annotations: anns}
	for _, p := range params {
		m.Parameters = append(m.Parameters, java.ParameterModel{Type: typ(p)})
	}
	return m
}

func getter(name, ret string, anns ...java.AnnotationModel) java.MethodModel {
	return method(java.VisibilityPublic, name, ret, nil, anns...)
}

func setter(name, param string, anns ...java.AnnotationModel) java.MethodModel {
	return method(java.VisibilityPublic, name, voidType, []string{param}, anns...)
}

func static(m java.MethodModel) java.MethodModel {
	m.IsStatic = true
	return m
}

type classSpec struct {
	name       string
	kind       java.ClassKind
	super      string
	interfaces []string
	params     []string
	anns       []java.AnnotationModel
	fields     []java.FieldModel
	methods    []java.MethodModel
}

func class(s classSpec) *java.ClassModel {
	c := &java.ClassModel{
		Name:        s.name,
		SimpleName:  s.name[strings.LastIndexByte(s.name, '.')+1:],
		Kind:        java.ClassKindClass,
		Visibility:  java.VisibilityPublic,
		Annotations: s.anns,
		Fields:      s.fields,
		Methods:     s.methods,
	}
	if s.kind != "" {
		c.Kind = s.kind
	}
	if c.Kind == java.ClassKindInterface {
		c.IsAbstract = true
		for i := range c.Methods {
			c.Methods[i].IsAbstract = !c.Methods[i].IsStatic
		}
	}
	super := s.super
	if super == "" {
		super = java.ObjectClass
	}
	c.SuperClass = typ(super)
	for _, i := range s.interfaces {
		c.Interfaces = append(c.Interfaces, typ(i))
	}
	for _, p := range s.params {
		c.TypeParameters = append(c.TypeParameters, java.TypeParameterModel{Name: p, Bounds: []*java.Type{typ(java.ObjectClass)}})
	}
	return c
}

var (
	abstractAnimal = class(classSpec{
		name: pkg + "AbstractAnimal",
		anns: []java.AnnotationModel{ann(jackson+"JsonPropertyOrder", java.Pair("value", strs("age", "type")))},
		fields: []java.FieldModel{
			field(java.VisibilityPrivate, "type", strType, schema()),
			field(java.VisibilityProtected, "age", "java.lang.Integer"),
			field(java.VisibilityPrivate, "extinct", "boolean"),
		},
		methods: []java.MethodModel{
			getter("getType", strType, schema(java.Pair("name", "pet_type"), java.Pair("required", true))),
			setter("setType", strType),
			getter("getAge", "int"),
			setter("setAge", "int"),
			getter("isExtinct", "java.lang.Boolean", schema()),
			setter("setExtinct", "boolean"),
		},
	})

	feline = class(classSpec{
		name: pkg + "Feline",
		kind: java.ClassKindInterface,
		methods: []java.MethodModel{
			setter("setName", strType, schema(java.Pair("name", "name"), java.Pair("required", false), java.Pair("example", "Feline"))),
		},
	})

	cat = class(classSpec{
		name:       pkg + "Cat",
		super:      pkg + "AbstractAnimal",
		interfaces: []string{pkg + "Feline"},
		anns:       []java.AnnotationModel{ann(jaxb+"XmlType", java.Pair("propOrder", strs("name", "type")))},
		fields: []java.FieldModel{
			field(java.VisibilityPackage, "name", strType, schema(java.Pair("required", true), java.Pair("example", "Felix"))),
		},
		methods: []java.MethodModel{
			getter("getName", strType),
			setter("setName", strType),
			getter("getType", strType, schema(java.Pair("name", "type"), java.Pair("required", false), java.Pair("example", "Cat"))),
		},
	})

	canine = class(classSpec{
		name: pkg + "Canine",
		kind: java.ClassKindInterface,
		methods: []java.MethodModel{
			getter("getName", strType, schema(java.Pair("name", "c_name"),
				java.Pair("description", "The name of the canine"), java.Pair("maxLength", int32(50)))),
		},
	})

	dog = class(classSpec{
		name:       pkg + "Dog",
		super:      pkg + "AbstractAnimal",
		interfaces: []string{pkg + "Canine"},
		anns:       []java.AnnotationModel{ann(jsonb+"JsonbPropertyOrder", java.Pair("value", strs("name", "type", "bark")))},
		fields: []java.FieldModel{
			field(java.VisibilityPackage, "bark", strType, ann(jsonb+"JsonbProperty", java.Pair("value", "bark"))),
		},
		methods: []java.MethodModel{
			getter("getBark", strType, schema(java.Pair("name", "bark"))),
			getter("getName", strType),
			static(getter("getStaticAge", "int", schema(java.Pair("description", "static")))),
		},
	})

	reptile = class(classSpec{
		name: pkg + "Reptile",
		kind: java.ClassKindInterface,
		methods: []java.MethodModel{
			getter("getScaleColor", strType, schema(java.Pair("name", "scaleColor"),
				java.Pair("description", "The color of a reptile's scales"))),
			setter("setScaleColor", strType, schema(java.Pair("name", "scaleColor"),
				java.Pair("description", "This is how the color is set"))),
		},
	})

	lizard = func() *java.ClassModel {
		c := class(classSpec{
			name:       pkg + "Lizard",
			super:      pkg + "AbstractAnimal",
			interfaces: []string{pkg + "Reptile"},
			fields: []java.FieldModel{
				field(java.VisibilityPackage, "scaleColor", strType, schema(java.Pair("deprecated", true))),
				field(java.VisibilityPackage, "lovesRocks", "boolean"),
			},
			methods: []java.MethodModel{
				getter("getScaleColor", strType),
				setter("setScaleColor", strType),
				setter("setAge", strType),
			},
		})
		c.Fields[0].IsStatic = true
		return c
	}()

	mySchema = class(classSpec{
		name: pkg + "MySchema",
		kind: java.ClassKindInterface,
		anns: []java.AnnotationModel{ann(jsonb+"JsonbPropertyOrder", java.Pair("value", strs("field1", "field3", "field2")))},
		methods: []java.MethodModel{
			getter("getField1", strType, schema(java.Pair("required", true))),
			getter("getField2", strType, schema(java.Pair("name", "anotherField"))),
			getter("getField3", strType),
		},
	})
)

func animals() *java.Index {
	return java.NewIndex(abstractAnimal, feline, cat, canine, dog, reptile, lizard, mySchema)
}

func jacksonOrder(order []string, comment2 ...java.AnnotationModel) *java.ClassModel {
	return class(classSpec{
		name: pkg + "JacksonPropertyOrder",
		anns: []java.AnnotationModel{ann(jackson+"JsonPropertyOrder", java.Pair("value", strs(order...)))},
		fields: []java.FieldModel{
			field(java.VisibilityPackage, "name", strType, ann(jackson+"JsonProperty", java.Pair("value", "theName"))),
			field(java.VisibilityPackage, "name2", strType),
			field(java.VisibilityPackage, "comment", strType),
			field(java.VisibilityPackage, "comment2", strType, comment2...),
		},
		methods: []java.MethodModel{
			getter("getComment", strType),
			getter("getName", strType),
		},
	})
}

var jaxbOrder = class(classSpec{
	name: pkg + "JaxbCustomPropertyOrder",
	anns: []java.AnnotationModel{ann(jaxb+"XmlType",
		java.Pair("propOrder", strs("theName", "comment2ActuallyFirst", "comment", "name2")))},
	fields: []java.FieldModel{
		field(java.VisibilityPackage, "name", strType, ann(jaxb+"XmlElement", java.Pair("name", "theName"))),
		field(java.VisibilityPackage, "name2", strType, ann(jaxb+"XmlAttribute")),
		field(java.VisibilityPackage, "comment", strType, ann(jaxb+"XmlElement")),
		field(java.VisibilityPackage, "comment2", strType, ann(jaxb+"XmlAttribute", java.Pair("name", "comment2ActuallyFirst"))),
	},
	methods: []java.MethodModel{
		getter("getComment", strType),
		getter("getName", strType),
		getter("getName2", strType),
		getter("getComment2", strType),
	},
})

func nonBean(readAnns, writeAnns []java.AnnotationModel) *java.ClassModel {
	return class(classSpec{
		name:   pkg + "NonJavaBean",
		fields: []java.FieldModel{field(java.VisibilityPackage, "name", strType)},
		methods: []java.MethodModel{
			method(java.VisibilityPackage, "name", strType, nil, readAnns...),
			method(java.VisibilityPackage, "anotherValue", strType, nil),
			method(java.VisibilityPackage, "anotherValue", voidType, []string{strType}),
			method(java.VisibilityPackage, "get", strType, nil),
			method(java.VisibilityPackage, "isNotAnAccessor", strType, nil),
			method(java.VisibilityPackage, "name", voidType, []string{strType}, writeAnns...),
		},
	})
}

var (
	oneSidedParent = class(classSpec{
		name: pkg + "OneSidedParent",
		methods: []java.MethodModel{
			getter("getParentProp1", strType, schema(java.Pair("hidden", true))),
			setter("setParentProp2", strType, schema(java.Pair("hidden", true))),
		},
	})

	oneSided = class(classSpec{
		name:  pkg + "OneSidedProperties",
		super: pkg + "OneSidedParent",
		fields: []java.FieldModel{
			field(java.VisibilityPackage, "prop1", strType),
			field(java.VisibilityPackage, "prop2", strType),
			field(java.VisibilityPackage, "prop3", strType),
		},
		methods: []java.MethodModel{
			getter("getProp1", strType, schema(java.Pair("hidden", true))),
			setter("setProp1", strType),
			getter("getProp2", strType),
			setter("setProp2", strType, schema(java.Pair("hidden", true))),
		},
	})
)

func xmlAccessorType(value string) java.AnnotationModel {
	return ann(jaxb+"XmlAccessorType", java.Pair("value", enum(jaxb+"XmlAccessType", value)))
}

// summary is what failing tests print.
type summary struct {
	Key, Name, Target string
	Ignored           bool
}

func dump(props *property.Properties) string {
	var out []summary
	for _, d := range props.All() {
		out = append(out, summary{d.Key, d.Name, d.Target.String(), d.Ignored})
	}
	return spew.Sdump(out)
}
