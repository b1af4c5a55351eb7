package classfile

import "math"

type ConstantPoolEntry interface {
	Tag() ConstantTag
}

type ConstantUtf8Info struct {
	Value string
}

func (c *ConstantUtf8Info) Tag() ConstantTag { return ConstantUtf8 }

// ConstantClassInfo references the internal name of a class.
type ConstantClassInfo struct {
	NameIndex uint16
}

func (c *ConstantClassInfo) Tag() ConstantTag { return ConstantClass }

// ConstantRawInfo keeps the payload of constants that are only ever
// dereferenced as annotation element values (numbers, strings) or not at all.
type ConstantRawInfo struct {
	Kind  ConstantTag
	Bytes []byte
}

func (c *ConstantRawInfo) Tag() ConstantTag { return c.Kind }

type ConstantPool []ConstantPoolEntry

func (cp ConstantPool) entry(index uint16) ConstantPoolEntry {
	if index == 0 || int(index) > len(cp) {
		return nil
	}
	return cp[index-1]
}

func (cp ConstantPool) GetUtf8(index uint16) string {
	if entry, ok := cp.entry(index).(*ConstantUtf8Info); ok {
		return entry.Value
	}
	return ""
}

func (cp ConstantPool) GetClassName(index uint16) string {
	if entry, ok := cp.entry(index).(*ConstantClassInfo); ok {
		return cp.GetUtf8(entry.NameIndex)
	}
	return ""
}

func (cp ConstantPool) raw(index uint16, tag ConstantTag) []byte {
	if entry, ok := cp.entry(index).(*ConstantRawInfo); ok && entry.Kind == tag {
		return entry.Bytes
	}
	return nil
}

func (cp ConstantPool) GetInteger(index uint16) (int32, bool) {
	b := cp.raw(index, ConstantInteger)
	if len(b) != 4 {
		return 0, false
	}
	return int32(be32(b)), true
}

func (cp ConstantPool) GetLong(index uint16) (int64, bool) {
	b := cp.raw(index, ConstantLong)
	if len(b) != 8 {
		return 0, false
	}
	return int64(uint64(be32(b))<<32 | uint64(be32(b[4:]))), true
}

func (cp ConstantPool) GetFloat(index uint16) (float32, bool) {
	b := cp.raw(index, ConstantFloat)
	if len(b) != 4 {
		return 0, false
	}
	return math.Float32frombits(be32(b)), true
}

func (cp ConstantPool) GetDouble(index uint16) (float64, bool) {
	b := cp.raw(index, ConstantDouble)
	if len(b) != 8 {
		return 0, false
	}
	return math.Float64frombits(uint64(be32(b))<<32 | uint64(be32(b[4:]))), true
}

func be32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}
