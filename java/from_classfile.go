package java

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dhamidi/beanscan/classfile"
)

func ClassModelFromFile(path string) (*ClassModel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open class file: %w", err)
	}
	defer f.Close()
	return ClassModelFromReader(f)
}

func ClassModelFromReader(r io.Reader) (*ClassModel, error) {
	cf, err := classfile.Parse(r)
	if err != nil {
		return nil, err
	}
	return ClassModelFromClassFile(cf), nil
}

// ClassModelFromClassFile converts a parsed class file. Generic signatures
// take precedence over erased descriptors; a malformed signature falls back
// to the descriptor.
func ClassModelFromClassFile(cf *classfile.ClassFile) *ClassModel {
	cp := cf.ConstantPool
	className := classfile.InternalToSourceName(cf.ClassName())
	pkg, simpleName := splitClassName(className)

	model := &ClassModel{
		Name:        className,
		SimpleName:  simpleName,
		Package:     pkg,
		Visibility:  visibilityFromAccessFlags(cf.AccessFlags),
		Kind:        classKindFromClassFile(cf),
		IsFinal:     cf.AccessFlags.IsFinal(),
		IsAbstract:  cf.AccessFlags.IsAbstract(),
		IsSynthetic: cf.AccessFlags.IsSynthetic(),
		Annotations: annotationsFromClassfile(cf.Annotations(), cp),
	}

	var sig *classfile.ClassSignature
	if raw := cf.Signature(); raw != "" {
		sig, _ = classfile.ParseClassSignature(raw)
	}
	if sig != nil {
		model.TypeParameters = typeParametersFromSignature(sig.TypeParameters)
		if cf.SuperClass != 0 {
			model.SuperClass = typeFromSignature(&sig.SuperClass)
		}
		for i := range sig.Interfaces {
			model.Interfaces = append(model.Interfaces, typeFromSignature(&sig.Interfaces[i]))
		}
	} else {
		if cf.SuperClass != 0 {
			model.SuperClass = Class(classfile.InternalToSourceName(cf.SuperClassName()))
		}
		for _, iface := range cf.InterfaceNames() {
			model.Interfaces = append(model.Interfaces, Class(classfile.InternalToSourceName(iface)))
		}
	}

	for i := range cf.Fields {
		model.Fields = append(model.Fields, fieldModelFromFieldInfo(&cf.Fields[i], cp))
	}

	for i := range cf.Methods {
		method := &cf.Methods[i]
		if method.IsStaticInitializer(cp) {
			continue
		}
		model.Methods = append(model.Methods, methodModelFromMethodInfo(method, cp, model.Kind))
	}

	return model
}

func splitClassName(fullName string) (pkg, simpleName string) {
	lastDot := strings.LastIndex(fullName, ".")
	if lastDot == -1 {
		return "", fullName
	}
	return fullName[:lastDot], fullName[lastDot+1:]
}

func visibilityFromAccessFlags(flags classfile.AccessFlags) Visibility {
	if flags.IsPublic() {
		return VisibilityPublic
	}
	if flags.IsProtected() {
		return VisibilityProtected
	}
	if flags.IsPrivate() {
		return VisibilityPrivate
	}
	return VisibilityPackage
}

func classKindFromClassFile(cf *classfile.ClassFile) ClassKind {
	switch {
	case cf.IsAnnotation():
		return ClassKindAnnotation
	case cf.IsEnum():
		return ClassKindEnum
	case cf.IsInterface():
		return ClassKindInterface
	case cf.IsRecord():
		return ClassKindRecord
	}
	return ClassKindClass
}

func fieldModelFromFieldInfo(f *classfile.FieldInfo, cp classfile.ConstantPool) FieldModel {
	model := FieldModel{
		Name:        f.Name(cp),
		Type:        typeFromFieldType(f.ParsedDescriptor(cp)),
		Visibility:  visibilityFromAccessFlags(f.AccessFlags),
		IsStatic:    f.IsStatic(),
		IsFinal:     f.IsFinal(),
		IsTransient: f.IsTransient(),
		IsSynthetic: f.IsSynthetic(),
		Annotations: annotationsFromClassfile(f.Annotations(cp), cp),
	}
	if sig := f.Signature(cp); sig != "" {
		if ts, err := classfile.ParseFieldSignature(sig); err == nil {
			model.Type = typeFromSignature(ts)
		}
	}
	return model
}

func methodModelFromMethodInfo(m *classfile.MethodInfo, cp classfile.ConstantPool, owner ClassKind) MethodModel {
	model := MethodModel{
		Name:        m.Name(cp),
		Visibility:  visibilityFromAccessFlags(m.AccessFlags),
		IsStatic:    m.IsStatic(),
		IsAbstract:  m.IsAbstract(),
		IsBridge:    m.IsBridge(),
		IsSynthetic: m.IsSynthetic(),
		Annotations: annotationsFromClassfile(m.Annotations(cp), cp),
		ReturnType:  Void(),
	}
	model.IsDefault = owner == ClassKindInterface && !model.IsAbstract && !model.IsStatic && m.IsPublic()

	if desc := m.ParsedDescriptor(cp); desc != nil {
		if desc.ReturnType != nil {
			model.ReturnType = typeFromFieldType(desc.ReturnType)
		}
		for i := range desc.Parameters {
			model.Parameters = append(model.Parameters, ParameterModel{
				Type: typeFromFieldType(&desc.Parameters[i]),
			})
		}
	}

	if sig := m.Signature(cp); sig != "" {
		// Signatures of inner class constructors may omit synthetic
		// parameters; only use the signature when the arity agrees.
		if ms, err := classfile.ParseMethodSignature(sig); err == nil && len(ms.Parameters) == len(model.Parameters) {
			model.TypeParameters = typeParametersFromSignature(ms.TypeParameters)
			model.ReturnType = Void()
			if ms.Return != nil {
				model.ReturnType = typeFromSignature(ms.Return)
			}
			for i := range ms.Parameters {
				model.Parameters[i].Type = typeFromSignature(&ms.Parameters[i])
			}
		}
	}

	for i, anns := range m.ParameterAnnotations(cp) {
		if i < len(model.Parameters) {
			model.Parameters[i].Annotations = annotationsFromClassfile(anns, cp)
		}
	}

	return model
}

func typeFromFieldType(ft *classfile.FieldType) *Type {
	if ft == nil {
		return Void()
	}
	var t *Type
	if ft.BaseType != "" {
		t = Primitive(ft.BaseType)
	} else {
		t = Class(classfile.InternalToSourceName(ft.ClassName))
	}
	for i := 0; i < ft.ArrayDepth; i++ {
		t = Array(t)
	}
	return t
}

func typeFromSignature(ts *classfile.TypeSignature) *Type {
	switch ts.Kind {
	case classfile.SignatureBase:
		return Primitive(ts.BaseType)
	case classfile.SignatureTypeVariable:
		return Variable(ts.TypeVariable)
	case classfile.SignatureArray:
		return Array(typeFromSignature(ts.Component))
	}

	name := classfile.InternalToSourceName(ts.ClassName)
	args := make([]*Type, 0, len(ts.TypeArguments))
	for _, arg := range ts.TypeArguments {
		switch arg.Wildcard {
		case '*':
			args = append(args, Wildcard(BoundNone, nil))
		case '+':
			args = append(args, Wildcard(BoundExtends, typeFromSignature(arg.Type)))
		case '-':
			args = append(args, Wildcard(BoundSuper, typeFromSignature(arg.Type)))
		default:
			args = append(args, typeFromSignature(arg.Type))
		}
	}
	return Parameterized(name, args...)
}

func typeParametersFromSignature(params []classfile.TypeParameterSignature) []TypeParameterModel {
	if len(params) == 0 {
		return nil
	}
	result := make([]TypeParameterModel, len(params))
	for i, p := range params {
		result[i] = TypeParameterModel{Name: p.Name}
		for j := range p.Bounds {
			result[i].Bounds = append(result[i].Bounds, typeFromSignature(&p.Bounds[j]))
		}
	}
	return result
}
