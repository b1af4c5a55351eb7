// Package accessor recognizes property accessors among methods.
package accessor

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dhamidi/beanscan/java"
)

type Kind int

const (
	None Kind = iota
	Read
	Write
)

func (k Kind) String() string {
	switch k {
	case Read:
		return "read"
	case Write:
		return "write"
	}
	return "none"
}

// Accessor describes what a method contributes to a property. Plain is set
// for fluent accessors such as name() and name(value).
type Accessor struct {
	Kind     Kind
	Property string
	Plain    bool
}

// Classify applies the JavaBeans naming rules to m. When m does not follow
// them, it is accepted as a plain accessor only if annotated is true, i.e.
// the method carries a schema or binding name annotation. Methods named
// exactly get, is or set are never accessors.
func Classify(m *java.MethodModel, annotated bool) Accessor {
	name := m.Name
	params := len(m.Parameters)
	void := m.ReturnType.IsVoid()

	switch name {
	case "get", "is", "set":
		return Accessor{}
	}

	switch {
	case params == 0 && !void && hasPrefix(name, "get"):
		return Accessor{Kind: Read, Property: Decapitalize(name[3:])}
	case params == 0 && m.ReturnType.IsBoolean() && hasPrefix(name, "is"):
		return Accessor{Kind: Read, Property: Decapitalize(name[2:])}
	case params == 1 && void && hasPrefix(name, "set"):
		return Accessor{Kind: Write, Property: Decapitalize(name[3:])}
	}

	if !annotated || !IsIdentifier(name) {
		return Accessor{}
	}
	switch {
	case params == 0 && !void:
		return Accessor{Kind: Read, Property: name, Plain: true}
	case params == 1 && void:
		return Accessor{Kind: Write, Property: name, Plain: true}
	}
	return Accessor{}
}

func hasPrefix(name, prefix string) bool {
	return len(name) > len(prefix) && strings.HasPrefix(name, prefix)
}

// Decapitalize follows java.beans.Introspector: the first letter is lowered
// unless the first two letters are both upper case ("URL" stays "URL").
func Decapitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	if size < len(s) {
		second, _ := utf8.DecodeRuneInString(s[size:])
		if unicode.IsUpper(first) && unicode.IsUpper(second) {
			return s
		}
	}
	return string(unicode.ToLower(first)) + s[size:]
}

// IsIdentifier reports whether s is a valid Java identifier. Compiler
// generated names such as <init> are not.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}
