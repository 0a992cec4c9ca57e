package seqfn

import (
	"strconv"
	"strings"
	"unicode"
)

/* ---------- globals & tiny helpers ---------- */

var EnableColor = false // REPL-only; tests can leave this false
var MaxInlineWidth = 80 // width threshold for single-line sequences

const (
	colorReset = "\033[0m"
	colorBlue  = "\033[34m"
)

func colorize(s, c string) string {
	if !EnableColor {
		return s
	}
	return c + s + colorReset
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	rs := []rune(s)
	if !(unicode.IsLetter(rs[0]) || rs[0] == '_') {
		return false
	}
	for _, r := range rs[1:] {
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
			return false
		}
	}
	return true
}

func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

/* ---------- small writer with indentation ---------- */

type out struct {
	b     *strings.Builder
	depth int
}

func (o *out) write(s string) { o.b.WriteString(s) }
func (o *out) nl()            { o.b.WriteByte('\n') }
func (o *out) pad() {
	for i := 0; i < o.depth; i++ {
		o.b.WriteString("  ")
	}
}
func (o *out) blue(s string)        { o.b.WriteString(colorize(s, colorBlue)) }
func (o *out) withIndent(fn func()) { o.depth++; fn(); o.depth-- }

/* ---------- runtime value pretty-printer ---------- */

// Format returns a string for a runtime Value with width awareness and
// optional colors. Short sequences render on one line; longer or nested
// ones indent. Named sequences render their entries as `name: value` in
// insertion order.
func Format(v Value) string {
	var b strings.Builder
	o := out{b: &b}
	writeValue(&o, v)
	return b.String()
}

func writeValue(o *out, v Value) {
	switch v.Tag {

	case VTNull:
		o.blue("null")

	case VTBool:
		if v.Data.(bool) {
			o.blue("true")
		} else {
			o.blue("false")
		}

	case VTInt:
		o.blue(strconv.FormatInt(v.Data.(int64), 10))

	case VTNum:
		s := strconv.FormatFloat(v.Data.(float64), 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		o.blue(s)

	case VTStr:
		o.blue(quoteString(v.Data.(string)))

	case VTSeq:
		s := v.Data.(*Seq)
		if oneline := seqOneLine(s); oneline != "" && len(oneline) <= MaxInlineWidth {
			o.blue(oneline)
			return
		}
		open, shut := "[", "]"
		if s.HasNames() {
			open, shut = "{", "}"
		}
		o.blue(open)
		o.nl()
		o.withIndent(func() {
			for i := range s.Elems {
				o.pad()
				if s.HasNames() {
					writeName(o, s.Names[i])
				}
				writeValue(o, s.Elems[i])
				if i < s.Len()-1 {
					o.blue(",")
				}
				o.nl()
			}
		})
		o.pad()
		o.blue(shut)

	case VTFun:
		f := v.Data.(Fn)
		name := f.name
		if name == "" {
			name = "_"
		}
		if f.variadic {
			o.blue("<fn " + name + "/...>")
			return
		}
		o.blue("<fn " + name + "/" + strconv.Itoa(f.arity) + ">")

	default:
		o.blue("<unknown>")
	}
}

func writeName(o *out, name string) {
	if isIdent(name) {
		o.blue(name)
	} else {
		o.blue(quoteString(name))
	}
	o.blue(": ")
}

/* ---------- single-line candidates ---------- */

func seqOneLine(s *Seq) string {
	if s.Len() == 0 {
		if s.HasNames() {
			return "{}"
		}
		return "[]"
	}
	parts := make([]string, 0, s.Len())
	for i := range s.Elems {
		if isValueMultiline(s.Elems[i]) {
			return ""
		}
		var b strings.Builder
		o := out{b: &b}
		if s.HasNames() {
			writeName(&o, s.Names[i])
		}
		writeValue(&o, s.Elems[i])
		parts = append(parts, b.String())
	}
	if s.HasNames() {
		return "{ " + strings.Join(parts, ", ") + " }"
	}
	return "[ " + strings.Join(parts, ", ") + " ]"
}

func isValueMultiline(v Value) bool {
	if v.Tag != VTSeq {
		return false
	}
	s := v.Data.(*Seq)
	if s.Len() == 0 {
		return false
	}
	for _, it := range s.Elems {
		if isValueMultiline(it) {
			return true
		}
	}
	line := seqOneLine(s)
	return line == "" || len(line) > MaxInlineWidth
}
