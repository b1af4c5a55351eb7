package classfile

type MethodInfo struct {
	AccessFlags     AccessFlags
	NameIndex       uint16
	DescriptorIndex uint16
	Attributes      []AttributeInfo
}

func (m *MethodInfo) Name(cp ConstantPool) string {
	return cp.GetUtf8(m.NameIndex)
}

func (m *MethodInfo) Descriptor(cp ConstantPool) string {
	return cp.GetUtf8(m.DescriptorIndex)
}

func (m *MethodInfo) GetAttribute(cp ConstantPool, name string) *AttributeInfo {
	return findAttribute(m.Attributes, cp, name)
}

func (m *MethodInfo) Signature(cp ConstantPool) string {
	return signatureOf(m.Attributes, cp)
}

func (m *MethodInfo) Annotations(cp ConstantPool) []Annotation {
	return annotationsOf(m.Attributes, cp)
}

// ParameterAnnotations returns per-parameter annotations, visible before invisible.
// The result may be shorter than the parameter list for synthetic parameters.
func (m *MethodInfo) ParameterAnnotations(cp ConstantPool) [][]Annotation {
	var result [][]Annotation
	for _, name := range []string{AttrRuntimeVisibleParameterAnnotations, AttrRuntimeInvisibleParameterAnnotations} {
		attr := m.GetAttribute(cp, name)
		if attr == nil {
			continue
		}
		pa := attr.AsParameterAnnotations()
		if pa == nil {
			continue
		}
		for i, anns := range pa.Parameters {
			for len(result) <= i {
				result = append(result, nil)
			}
			result[i] = append(result[i], anns...)
		}
	}
	return result
}

func (m *MethodInfo) IsPublic() bool    { return m.AccessFlags.IsPublic() }
func (m *MethodInfo) IsPrivate() bool   { return m.AccessFlags.IsPrivate() }
func (m *MethodInfo) IsProtected() bool { return m.AccessFlags.IsProtected() }
func (m *MethodInfo) IsStatic() bool    { return m.AccessFlags.IsStatic() }
func (m *MethodInfo) IsFinal() bool     { return m.AccessFlags.IsFinal() }
func (m *MethodInfo) IsBridge() bool    { return m.AccessFlags.IsBridge() }
func (m *MethodInfo) IsVarargs() bool   { return m.AccessFlags.IsVarargs() }
func (m *MethodInfo) IsAbstract() bool  { return m.AccessFlags.IsAbstract() }
func (m *MethodInfo) IsSynthetic() bool { return m.AccessFlags.IsSynthetic() }

func (m *MethodInfo) IsConstructor(cp ConstantPool) bool {
	return m.Name(cp) == "<init>"
}

func (m *MethodInfo) IsStaticInitializer(cp ConstantPool) bool {
	return m.Name(cp) == "<clinit>"
}

func (m *MethodInfo) ParsedDescriptor(cp ConstantPool) *MethodDescriptor {
	return ParseMethodDescriptor(m.Descriptor(cp))
}
