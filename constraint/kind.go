package constraint

import "github.com/dhamidi/beanscan/java"

// Kind is the schema shape a Java type maps to, as far as constraints care.
type Kind int

const (
	KindObject Kind = iota
	KindString
	KindNumber
	KindBoolean
	KindArray
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	}
	return "object"
}

var (
	stringTypes = setOf("java.lang.String", "java.lang.CharSequence", "java.lang.Character", "char",
		"java.util.UUID", "java.net.URI", "java.net.URL")
	numberTypes = setOf("byte", "short", "int", "long", "float", "double",
		"java.lang.Byte", "java.lang.Short", "java.lang.Integer", "java.lang.Long",
		"java.lang.Float", "java.lang.Double", "java.lang.Number",
		"java.math.BigDecimal", "java.math.BigInteger",
		"java.util.concurrent.atomic.AtomicInteger", "java.util.concurrent.atomic.AtomicLong")
	collectionTypes = setOf("java.lang.Iterable", "java.util.Collection",
		"java.util.List", "java.util.ArrayList", "java.util.LinkedList",
		"java.util.Set", "java.util.HashSet", "java.util.LinkedHashSet", "java.util.SortedSet",
		"java.util.NavigableSet", "java.util.TreeSet", "java.util.EnumSet",
		"java.util.Queue", "java.util.Deque", "java.util.ArrayDeque", "java.util.stream.Stream")
	mapTypes = setOf("java.util.Map", "java.util.HashMap", "java.util.LinkedHashMap",
		"java.util.SortedMap", "java.util.NavigableMap", "java.util.TreeMap", "java.util.EnumMap",
		"java.util.concurrent.ConcurrentMap", "java.util.concurrent.ConcurrentHashMap")
)

func setOf(names ...string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

// KindOf classifies t by its erased class name. Unbound type variables and
// unknown classes are objects.
func KindOf(t *java.Type) Kind {
	if t == nil {
		return KindObject
	}
	switch t.Kind {
	case java.TypeArray:
		return KindArray
	case java.TypeWildcard:
		if t.BoundKind == java.BoundExtends {
			return KindOf(t.Bound)
		}
		return KindObject
	}
	if t.IsBoolean() {
		return KindBoolean
	}
	name := t.ClassName()
	if t.IsPrimitive() {
		name = t.Name
	}
	switch {
	case stringTypes[name]:
		return KindString
	case numberTypes[name]:
		return KindNumber
	case collectionTypes[name]:
		return KindArray
	case mapTypes[name]:
		return KindMap
	}
	return KindObject
}
