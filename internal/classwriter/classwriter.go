// Package classwriter assembles small class files in memory. It backs the
// parser and scanner tests, which need real class bytes without a JDK.
package classwriter

import (
	"bytes"
	"encoding/binary"
	"math"
)

const (
	AccPublic    uint16 = 0x0001
	AccPrivate   uint16 = 0x0002
	AccProtected uint16 = 0x0004
	AccStatic    uint16 = 0x0008
	AccFinal     uint16 = 0x0010
	AccBridge    uint16 = 0x0040
	AccTransient uint16 = 0x0080
	AccSynthetic uint16 = 0x1000
	AccInterface uint16 = 0x0200
	AccAbstract  uint16 = 0x0400
	AccEnum      uint16 = 0x4000
)

type Class struct {
	Access      uint16
	Name        string // internal form, e.g. com/example/Pet
	Super       string
	Interfaces  []string
	Signature   string
	Annotations []Annotation
	Fields      []Member
	Methods     []Member
}

type Member struct {
	Access               uint16
	Name                 string
	Descriptor           string
	Signature            string
	Annotations          []Annotation
	ParameterAnnotations [][]Annotation
}

// Annotation uses the descriptor form for Type, e.g. Ljavax/json/bind/annotation/JsonbProperty;.
type Annotation struct {
	Type   string
	Values []Value
}

// Value holds string, bool, int, int32, int64, float64, Enum, Annotation or []interface{}.
type Value struct {
	Name string
	V    interface{}
}

type Enum struct {
	Type string
	Name string
}

type writer struct {
	pool  bytes.Buffer
	count uint16
	utf8s map[string]uint16
}

func (w *writer) utf8(s string) uint16 {
	if idx, ok := w.utf8s[s]; ok {
		return idx
	}
	w.pool.WriteByte(1)
	u2(&w.pool, uint16(len(s)))
	w.pool.WriteString(s)
	idx := w.count
	w.count++
	w.utf8s[s] = idx
	return idx
}

func (w *writer) class(name string) uint16 {
	nameIdx := w.utf8(name)
	w.pool.WriteByte(7)
	u2(&w.pool, nameIdx)
	idx := w.count
	w.count++
	return idx
}

func (w *writer) integer(v int32) uint16 {
	w.pool.WriteByte(3)
	binary.Write(&w.pool, binary.BigEndian, v)
	idx := w.count
	w.count++
	return idx
}

func (w *writer) long(v int64) uint16 {
	w.pool.WriteByte(5)
	binary.Write(&w.pool, binary.BigEndian, v)
	idx := w.count
	w.count += 2
	return idx
}

func (w *writer) double(v float64) uint16 {
	w.pool.WriteByte(6)
	binary.Write(&w.pool, binary.BigEndian, math.Float64bits(v))
	idx := w.count
	w.count += 2
	return idx
}

func u2(buf *bytes.Buffer, v uint16) {
	buf.WriteByte(byte(v >> 8))
	buf.WriteByte(byte(v))
}

func (w *writer) attribute(buf *bytes.Buffer, name string, payload []byte) {
	u2(buf, w.utf8(name))
	binary.Write(buf, binary.BigEndian, uint32(len(payload)))
	buf.Write(payload)
}

func (w *writer) annotation(buf *bytes.Buffer, a Annotation) {
	u2(buf, w.utf8(a.Type))
	u2(buf, uint16(len(a.Values)))
	for _, v := range a.Values {
		u2(buf, w.utf8(v.Name))
		w.elementValue(buf, v.V)
	}
}

func (w *writer) elementValue(buf *bytes.Buffer, v interface{}) {
	switch v := v.(type) {
	case string:
		buf.WriteByte('s')
		u2(buf, w.utf8(v))
	case bool:
		buf.WriteByte('Z')
		var i int32
		if v {
			i = 1
		}
		u2(buf, w.integer(i))
	case int:
		buf.WriteByte('I')
		u2(buf, w.integer(int32(v)))
	case int32:
		buf.WriteByte('I')
		u2(buf, w.integer(v))
	case int64:
		buf.WriteByte('J')
		u2(buf, w.long(v))
	case float64:
		buf.WriteByte('D')
		u2(buf, w.double(v))
	case Enum:
		buf.WriteByte('e')
		u2(buf, w.utf8(v.Type))
		u2(buf, w.utf8(v.Name))
	case Annotation:
		buf.WriteByte('@')
		w.annotation(buf, v)
	case []interface{}:
		buf.WriteByte('[')
		u2(buf, uint16(len(v)))
		for _, item := range v {
			w.elementValue(buf, item)
		}
	default:
		panic("classwriter: unsupported element value")
	}
}

func (w *writer) annotations(list []Annotation) []byte {
	var buf bytes.Buffer
	u2(&buf, uint16(len(list)))
	for _, a := range list {
		w.annotation(&buf, a)
	}
	return buf.Bytes()
}

// attributes writes the count-prefixed attribute table shared by classes and members.
func (w *writer) attributes(signature string, anns []Annotation, params [][]Annotation) []byte {
	var body bytes.Buffer
	var n uint16
	if signature != "" {
		var payload bytes.Buffer
		u2(&payload, w.utf8(signature))
		w.attribute(&body, "Signature", payload.Bytes())
		n++
	}
	if len(anns) > 0 {
		w.attribute(&body, "RuntimeVisibleAnnotations", w.annotations(anns))
		n++
	}
	if len(params) > 0 {
		var payload bytes.Buffer
		payload.WriteByte(byte(len(params)))
		for _, p := range params {
			payload.Write(w.annotations(p))
		}
		w.attribute(&body, "RuntimeVisibleParameterAnnotations", payload.Bytes())
		n++
	}
	var out bytes.Buffer
	u2(&out, n)
	out.Write(body.Bytes())
	return out.Bytes()
}

func (w *writer) members(ms []Member) []byte {
	var buf bytes.Buffer
	u2(&buf, uint16(len(ms)))
	for _, m := range ms {
		u2(&buf, m.Access)
		u2(&buf, w.utf8(m.Name))
		u2(&buf, w.utf8(m.Descriptor))
		buf.Write(w.attributes(m.Signature, m.Annotations, m.ParameterAnnotations))
	}
	return buf.Bytes()
}

// Bytes encodes c as a class file (Java 17 format).
func (c *Class) Bytes() []byte {
	w := &writer{count: 1, utf8s: map[string]uint16{}}

	thisIdx := w.class(c.Name)
	var superIdx uint16
	if c.Super != "" {
		superIdx = w.class(c.Super)
	}
	ifaces := make([]uint16, len(c.Interfaces))
	for i, name := range c.Interfaces {
		ifaces[i] = w.class(name)
	}
	fields := w.members(c.Fields)
	methods := w.members(c.Methods)
	attrs := w.attributes(c.Signature, c.Annotations, nil)

	var out bytes.Buffer
	binary.Write(&out, binary.BigEndian, uint32(0xCAFEBABE))
	u2(&out, 0)
	u2(&out, 61)
	u2(&out, w.count)
	out.Write(w.pool.Bytes())
	u2(&out, c.Access)
	u2(&out, thisIdx)
	u2(&out, superIdx)
	u2(&out, uint16(len(ifaces)))
	for _, idx := range ifaces {
		u2(&out, idx)
	}
	out.Write(fields)
	out.Write(methods)
	out.Write(attrs)
	return out.Bytes()
}
