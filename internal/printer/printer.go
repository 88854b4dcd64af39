// Package printer reconstructs JSON text from a parsed value tree.
//
// Numbers are rendered from their decomposed literal form, so the lexical
// shape of the source survives the round trip. String content is emitted
// verbatim, matching the scanner's raw character copy.
package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/mcncl/jtree/internal/errors"
	"github.com/mcncl/jtree/internal/value"
)

// KeyCase names a style object keys can be rewritten into.
type KeyCase string

const (
	KeyCaseNone   KeyCase = ""
	KeyCaseCamel  KeyCase = "camel"
	KeyCasePascal KeyCase = "pascal"
	KeyCaseSnake  KeyCase = "snake"
	KeyCaseKebab  KeyCase = "kebab"
)

// Options controls the printed form.
type Options struct {
	// Indent is the number of spaces per nesting level. Zero produces
	// compact single-line output.
	Indent int
	// KeyCase rewrites object keys into the given style.
	KeyCase KeyCase
}

// Printer renders value trees as JSON text.
type Printer struct {
	opts Options
}

// NewPrinter creates a Printer with the given options.
func NewPrinter(opts Options) (*Printer, error) {
	switch opts.KeyCase {
	case KeyCaseNone, KeyCaseCamel, KeyCasePascal, KeyCaseSnake, KeyCaseKebab:
	default:
		return nil, errors.NewOutputError(
			fmt.Sprintf("unknown key case %q", opts.KeyCase), nil,
		)
	}
	return &Printer{opts: opts}, nil
}

// Print renders v as JSON text.
func (p *Printer) Print(v value.Value) string {
	var sb strings.Builder
	p.writeValue(&sb, v, 0)
	return sb.String()
}

func (p *Printer) key(k string) string {
	switch p.opts.KeyCase {
	case KeyCaseCamel:
		return strcase.ToLowerCamel(k)
	case KeyCasePascal:
		return strcase.ToCamel(k)
	case KeyCaseSnake:
		return strcase.ToSnake(k)
	case KeyCaseKebab:
		return strcase.ToKebab(k)
	default:
		return k
	}
}

func (p *Printer) writeValue(sb *strings.Builder, v value.Value, depth int) {
	switch tv := v.(type) {
	case value.Null:
		sb.WriteString("null")
	case value.Bool:
		sb.WriteString(strconv.FormatBool(bool(tv)))
	case value.String:
		sb.WriteByte('"')
		sb.WriteString(string(tv))
		sb.WriteByte('"')
	case value.Number:
		sb.WriteString(tv.Render())
	case value.Array:
		p.writeArray(sb, tv, depth)
	case *value.Object:
		p.writeObject(sb, tv, depth)
	}
}

func (p *Printer) writeArray(sb *strings.Builder, arr value.Array, depth int) {
	if len(arr) == 0 {
		sb.WriteString("[]")
		return
	}
	sb.WriteByte('[')
	for i, elem := range arr {
		if i > 0 {
			sb.WriteByte(',')
		}
		p.newlineIndent(sb, depth+1)
		p.writeValue(sb, elem, depth+1)
	}
	p.newlineIndent(sb, depth)
	sb.WriteByte(']')
}

func (p *Printer) writeObject(sb *strings.Builder, obj *value.Object, depth int) {
	if obj.Len() == 0 {
		sb.WriteString("{}")
		return
	}
	sb.WriteByte('{')
	for i, m := range obj.Members() {
		if i > 0 {
			sb.WriteByte(',')
		}
		p.newlineIndent(sb, depth+1)
		sb.WriteByte('"')
		sb.WriteString(p.key(m.Key))
		sb.WriteString(`":`)
		if p.opts.Indent > 0 {
			sb.WriteByte(' ')
		}
		p.writeValue(sb, m.Value, depth+1)
	}
	p.newlineIndent(sb, depth)
	sb.WriteByte('}')
}

func (p *Printer) newlineIndent(sb *strings.Builder, depth int) {
	if p.opts.Indent == 0 {
		return
	}
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat(" ", p.opts.Indent*depth))
}
