// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsonc

import (
	"bytes"
	"cmp"
	"io"
	"strings"
	"unicode/utf8"
)

// A Formatter carries the settings for pretty-printing JWCC values.
// A zero value is ready for use with default settings.
type Formatter struct {
	// Indent is the indentation for each nesting level (default two spaces).
	Indent string

	// MaxLineItems is the largest number of elements an array may have and
	// still be rendered on one line (default 3).
	MaxLineItems int
}

// Format renders a pretty-printed representation of v to w with default
// settings.
func Format(w io.Writer, v Value) error {
	var f Formatter
	return f.Format(w, v)
}

// FormatToString formats v to a string with default settings.
// In case of error in formatting, it returns an empty string.
func FormatToString(v Value) string {
	var buf bytes.Buffer
	if Format(&buf, v) != nil {
		return ""
	}
	return buf.String()
}

// Format renders a pretty-printed representation of v to w using the settings
// from f.
//
// Comments are written on lines of their own, except for line comments, which
// follow the element they belong to. Arrays and objects are written on one
// line when they contain no comments and are short enough. Adjacent object
// members whose values fit on one line have their values aligned.
func (f Formatter) Format(w io.Writer, v Value) error {
	p := &printer{unit: cmp.Or(f.Indent, "  "), items: f.MaxLineItems}
	if p.items <= 0 {
		p.items = 3
	}
	p.top(v)
	_, err := w.Write(p.buf.Bytes())
	return err
}

type printer struct {
	buf   bytes.Buffer
	unit  string // one level of indentation
	items int    // the most elements of a one-line array
}

func (p *printer) top(v Value) {
	var end []string
	if d, ok := v.(*Document); ok {
		v, end = d.Value, d.Comments().End
	}
	com := v.Comments()
	p.comments(com.Before, 0)
	p.value(v, 0)
	p.lineComment(com.Line)
	if len(end) != 0 {
		p.buf.WriteByte('\n')
		p.comments(end, 0)
	}
}

// value writes v at the current position. Lines after the first are indented
// for nesting depth.
func (p *printer) value(v Value, depth int) {
	if p.flat(v) {
		p.inline(v)
		return
	}
	switch t := v.(type) {
	case *Array:
		p.array(t, depth)
	case *Object:
		p.object(t, depth)
	case *Member:
		p.buf.WriteString(t.Key.JSON())
		p.buf.WriteString(": ")
		p.value(t.Value, depth)
	case *Document:
		p.value(t.Value, depth)
	default:
		p.buf.WriteString(v.JSON())
	}
}

// flat reports whether v can be written on one line. The comments of v
// itself do not matter, only those of its contents.
func (p *printer) flat(v Value) bool {
	switch t := v.(type) {
	case *Array:
		if len(t.Values) > p.items || len(t.Comments().End) != 0 {
			return false
		}
		for _, elt := range t.Values {
			if !elt.Comments().IsEmpty() || !p.flat(elt) {
				return false
			}
		}
	case *Object:
		if len(t.Members) > 1 || len(t.Comments().End) != 0 {
			return false
		}
		for _, m := range t.Members {
			if !m.Comments().IsEmpty() || !m.Value.Comments().IsEmpty() || !p.flat(m.Value) {
				return false
			}
		}
	case *Member, *Document:
		return false
	}
	return true
}

// inline writes v on a single line. The caller has checked that v is flat.
func (p *printer) inline(v Value) {
	switch t := v.(type) {
	case *Array:
		p.buf.WriteByte('[')
		for i, elt := range t.Values {
			if i > 0 {
				p.buf.WriteString(", ")
			}
			p.inline(elt)
		}
		p.buf.WriteByte(']')
	case *Object:
		p.buf.WriteByte('{')
		for i, m := range t.Members {
			if i > 0 {
				p.buf.WriteString(", ")
			}
			p.buf.WriteString(m.Key.JSON())
			p.buf.WriteString(": ")
			p.inline(m.Value)
		}
		p.buf.WriteByte('}')
	default:
		p.buf.WriteString(v.JSON())
	}
}

func (p *printer) array(a *Array, depth int) {
	p.buf.WriteString("[\n")
	for _, elt := range a.Values {
		com := elt.Comments()
		p.comments(com.Before, depth+1)
		p.indent(depth + 1)
		p.value(elt, depth+1)
		p.endElement(com.Line)
	}
	p.comments(a.Comments().End, depth+1)
	p.indent(depth)
	p.buf.WriteByte(']')
}

func (p *printer) object(o *Object, depth int) {
	p.buf.WriteString("{\n")
	cols := p.columns(o.Members)
	for i, m := range o.Members {
		mc, vc := m.Comments(), m.Value.Comments()
		p.comments(mc.Before, depth+1)
		p.indent(depth + 1)
		key := m.Key.JSON()
		p.buf.WriteString(key)
		p.buf.WriteByte(':')
		if len(vc.Before) != 0 {
			p.buf.WriteByte('\n')
			p.comments(vc.Before, depth+2)
			p.indent(depth + 2)
			p.value(m.Value, depth+2)
		} else {
			p.buf.WriteString(strings.Repeat(" ", cols[i]-utf8.RuneCountInString(key)+1))
			p.value(m.Value, depth+1)
		}
		p.endElement(cmp.Or(mc.Line, vc.Line))
		p.comments(mc.End, depth+1)
	}
	p.comments(o.Comments().End, depth+1)
	p.indent(depth)
	p.buf.WriteByte('}')
}

// columns returns the width to which each key of ms is padded. Runs of
// adjacent members whose values fit on one line share the width of their
// longest key. A member with comments before it starts a new run.
func (p *printer) columns(ms []*Member) []int {
	fits := func(m *Member) bool {
		return len(m.Value.Comments().Before) == 0 && p.flat(m.Value)
	}
	cols := make([]int, len(ms))
	for i := 0; i < len(ms); {
		j := i + 1
		if fits(ms[i]) {
			for j < len(ms) && fits(ms[j]) && len(ms[j].Comments().Before) == 0 {
				j++
			}
		}
		var w int
		for _, m := range ms[i:j] {
			w = max(w, utf8.RuneCountInString(m.Key.JSON()))
		}
		for k := i; k < j; k++ {
			cols[k] = w
		}
		i = j
	}
	return cols
}

// endElement finishes an element of an array or object with a comma and its
// line comment, if any.
func (p *printer) endElement(line string) {
	p.buf.WriteByte(',')
	p.lineComment(line)
	p.buf.WriteByte('\n')
}

func (p *printer) lineComment(s string) {
	if s != "" {
		p.buf.WriteByte(' ')
		p.buf.WriteString(strings.TrimSpace(s))
	}
}

// comments writes each of coms on lines of its own at depth. An empty string
// stands for a blank line.
func (p *printer) comments(coms []string, depth int) {
	for _, c := range coms {
		if c == "" {
			p.buf.WriteByte('\n')
			continue
		}
		c = strings.TrimSpace(c)
		block := strings.HasPrefix(c, "/*")
		lines := strings.Split(c, "\n")
		outdentCommentLines(lines)
		for i, line := range lines {
			if line != "" {
				p.indent(depth)
				if i > 0 && block {
					p.buf.WriteByte(' ')
				}
				p.buf.WriteString(line)
			}
			p.buf.WriteByte('\n')
		}
	}
}

func (p *printer) indent(depth int) {
	for range depth {
		p.buf.WriteString(p.unit)
	}
}
