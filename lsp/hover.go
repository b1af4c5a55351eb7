package lsp

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/dhamidi/beanscan/format"
	"github.com/dhamidi/beanscan/java"
	"github.com/dhamidi/beanscan/property"
)

// wordAt returns the possibly qualified identifier covering the given
// zero-based position, with its start and end columns. Columns count UTF-16
// code units, as LSP positions do.
func wordAt(text string, line, col int) (string, int, int) {
	lines := strings.Split(text, "\n")
	if line < 0 || line >= len(lines) {
		return "", 0, 0
	}
	l := strings.TrimSuffix(lines[line], "\r")
	offset, ok := byteOffset(l, col)
	if !ok {
		return "", 0, 0
	}
	start, end := offset, offset
	for start > 0 && isWordByte(l[start-1]) {
		start--
	}
	for end < len(l) && isWordByte(l[end]) {
		end++
	}
	word := strings.Trim(l[start:end], ".")
	if word == "" {
		return "", 0, 0
	}
	start += strings.Index(l[start:end], word)
	col = utf16Len(l[:start])
	return word, col, col + len(word)
}

// byteOffset converts a UTF-16 column in l to a byte offset. A column inside
// a surrogate pair maps to the start of that rune.
func byteOffset(l string, col int) (int, bool) {
	if col < 0 {
		return 0, false
	}
	units := 0
	for i, r := range l {
		if units >= col {
			return i, true
		}
		units += utf16.RuneLen(r)
		if units > col {
			return i, true
		}
	}
	if units == col {
		return len(l), true
	}
	return 0, false
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

func isWordByte(b byte) bool {
	return b == '_' || b == '$' || b == '.' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// lookup finds the class word refers to. Simple names are disambiguated by
// the document's imports and package declaration.
func lookup(index *java.Index, word, text string) *java.ClassModel {
	if c := index.Lookup(word); c != nil {
		return c
	}
	simple := word[strings.LastIndexByte(word, '.')+1:]
	candidates := index.FindBySimpleName(simple)
	switch len(candidates) {
	case 0:
		return nil
	case 1:
		return candidates[0]
	}
	for _, c := range candidates {
		if strings.Contains(text, "import "+c.Name+";") ||
			strings.Contains(text, "import "+c.Package+".*;") ||
			strings.Contains(text, "package "+c.Package+";") {
			return c
		}
	}
	log.Debugf("%s is ambiguous, using %s", word, candidates[0].Name)
	return candidates[0]
}

func markdown(class *java.ClassModel, props *property.Properties) string {
	doc := format.NewDocument(class, props, false)

	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s** `%s`\n\n", class.SimpleName, class.Name)
	if len(doc.Properties) == 0 {
		sb.WriteString("_no properties_\n")
		return sb.String()
	}
	sb.WriteString("| Property | Type | Flags |\n|---|---|---|\n")
	for _, p := range doc.Properties {
		fmt.Fprintf(&sb, "| %s | `%s` | %s |\n", p.Name, p.Type, p.Flags())
	}
	return sb.String()
}
