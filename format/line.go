package format

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/dhamidi/beanscan/java"
)

// IsTerminal reports whether f is a terminal that accepts colors.
func IsTerminal(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

type LineEncoder struct {
	w   io.Writer
	doc *Document

	class, name, typ, flags, ignored *color.Color
}

func NewLineEncoder(w io.Writer, opts Options) *LineEncoder {
	e := &LineEncoder{
		w:       w,
		class:   color.New(color.Bold),
		name:    color.New(color.FgGreen),
		typ:     color.New(color.FgCyan),
		flags:   color.New(color.FgYellow),
		ignored: color.New(color.Faint),
	}
	for _, c := range []*color.Color{e.class, e.name, e.typ, e.flags, e.ignored} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return e
}

func (e *LineEncoder) Encode(doc *Document) error {
	e.doc = doc
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "class\t%s\n", e.class.Sprint(e.doc.Class))
	for _, p := range e.doc.Properties {
		if p.Ignored {
			fmt.Fprintf(&sb, "%s\n", e.ignored.Sprintf("property\t%s\t%s\t%s\t%s", p.Name, p.Type, p.Target, p.Flags()))
			continue
		}
		fmt.Fprintf(&sb, "property\t%s\t%s\t%s\t%s\n",
			e.name.Sprint(p.Name),
			e.typ.Sprint(p.Type),
			p.Target,
			e.flags.Sprint(p.Flags()),
		)
	}
	return []byte(sb.String()), nil
}

// Flags summarizes naming and visibility in one comma separated word.
func (p Property) Flags() string {
	var flags []string
	if p.Name != p.Key {
		flags = append(flags, "key="+p.Key)
	}
	if p.Constraints.IsRequired() {
		flags = append(flags, "required")
	}
	if p.ReadOnly {
		flags = append(flags, "readOnly")
	}
	if p.WriteOnly {
		flags = append(flags, "writeOnly")
	}
	if p.Deprecated {
		flags = append(flags, "deprecated")
	}
	if p.Ignored {
		flags = append(flags, "ignored")
	}
	if len(flags) == 0 {
		return "-"
	}
	return strings.Join(flags, ",")
}

type LineModelEncoder struct {
	w     io.Writer
	model *java.ClassModel
}

func NewLineModelEncoder(w io.Writer) *LineModelEncoder {
	return &LineModelEncoder{w: w}
}

func (e *LineModelEncoder) Encode(model *java.ClassModel) error {
	e.model = model
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineModelEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	m := e.model

	mods := append([]string{string(m.Visibility)}, classModifiers(m)...)
	fmt.Fprintf(&sb, "%s\t%s\t%s\n", m.Kind, m.Name, strings.Join(mods, ","))

	for _, a := range m.Annotations {
		fmt.Fprintf(&sb, "annotation\t%s\n", a.Type)
	}

	for _, f := range m.Fields {
		fmt.Fprintf(&sb, "field\t%s\t%s\t%s\t%s\n",
			f.Name,
			f.Type,
			f.Visibility,
			joinOrDash(fieldModifiers(f)),
		)
	}

	for _, method := range m.Methods {
		fmt.Fprintf(&sb, "method\t%s\t%s\t%s\t%s\t%s\n",
			method.Name,
			method.ReturnType,
			joinOrDash(parameterTypes(method.Parameters)),
			method.Visibility,
			joinOrDash(methodModifiers(method)),
		)
	}

	return []byte(sb.String()), nil
}

func joinOrDash(parts []string) string {
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ",")
}
