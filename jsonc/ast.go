// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsonc

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/creachadair/comb"
	"github.com/creachadair/comb/internal/escape"
	"go4.org/mem"
)

// A Value is a JSON value optionally decorated with comments.
// The concrete type is one of *Array, *Bool, *Document, *Member, *Null,
// *Number, *Object, or *String.
type Value interface {
	// Span reports the location of the value in its source text. A value
	// that was not parsed has an empty span.
	Span() comb.Range

	// JSON renders the value as compact JSON text without comments.
	JSON() string

	// Comments returns the comments annotating this value.
	Comments() *Comments
}

// Comments records the comments associated with a value.
// All values have a comment record; use IsEmpty to test whether the value has
// any actual comment text.
type Comments struct {
	Before []string
	Line   string
	End    []string
}

// IsEmpty reports whether c is "empty", meaning it has no non-empty comment
// text for its associated value.
func (c Comments) IsEmpty() bool {
	return len(c.Before) == 0 && c.Line == "" && len(c.End) == 0
}

// node carries the location and comments shared by all values.
type node struct {
	span comb.Range
	com  Comments
}

func (n *node) Span() comb.Range { return n.span }

func (n *node) Comments() *Comments { return &n.com }

// An Array is a commented array of values.
type Array struct {
	node

	Values []Value
}

func (a *Array) JSON() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a.Values {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (a *Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a.Values)) }

func (a *Array) Len() int { return len(a.Values) }

// ArrayOf constructs an array of the given values, which must be accepted
// by ToValue.
func ArrayOf(vs ...any) *Array {
	a := &Array{Values: make([]Value, len(vs))}
	for i, v := range vs {
		a.Values[i] = ToValue(v)
	}
	return a
}

// An Object is a collection of key-value members.
type Object struct {
	node

	Members []*Member
}

// FindKey returns the first member of o for whose key f reports true, or nil.
func (o *Object) FindKey(f func(string) bool) *Member {
	if i := o.IndexKey(f); i >= 0 {
		return o.Members[i]
	}
	return nil
}

// Find returns the first member of o whose key equals key, or nil.
func (o *Object) Find(key string) *Member {
	return o.FindKey(func(s string) bool { return s == key })
}

// IndexKey returns the index of the first member of o for whose key f reports
// true, or -1.
func (o *Object) IndexKey(f func(string) bool) int {
	for i, m := range o.Members {
		if f(m.Key.Value) {
			return i
		}
	}
	return -1
}

func (o *Object) Len() int { return len(o.Members) }

func (o *Object) JSON() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range o.Members {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(m.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

func (o *Object) String() string { return fmt.Sprintf("Object(len=%d)", len(o.Members)) }

// Sort sorts the members of o in ascending order by key.
func (o *Object) Sort() {
	sort.SliceStable(o.Members, func(i, j int) bool {
		return o.Members[i].Key.Value < o.Members[j].Key.Value
	})
}

// A Member is a key-value pair in an object.
type Member struct {
	node

	Key   *String
	Value Value
}

func (m *Member) JSON() string { return m.Key.JSON() + ":" + m.Value.JSON() }

func (m *Member) String() string { return fmt.Sprintf("Member(key=%q)", m.Key.Value) }

// Field constructs an object member with the given key and value.
// The value must be accepted by ToValue.
func Field(key string, value any) *Member {
	return &Member{Key: StringOf(key), Value: ToValue(value)}
}

// A String is a string value. Text is its JSON encoding, including quotes,
// and Value is the decoded string.
type String struct {
	node

	Text  string
	Value string
}

// StringOf constructs a string value with the given content.
func StringOf(s string) *String { return &String{Text: escape.Quote(mem.S(s)), Value: s} }

func (s *String) JSON() string { return s.Text }

func (s *String) String() string { return s.Value }

// A Number is a numeric value. Text is its JSON encoding.
type Number struct {
	node

	Text string
}

// Int64 reports the value of n as an int64, or an error if n is not an
// integer in range.
func (n *Number) Int64() (int64, error) { return strconv.ParseInt(n.Text, 10, 64) }

// Float64 reports the value of n as a float64.
func (n *Number) Float64() (float64, error) { return strconv.ParseFloat(n.Text, 64) }

func (n *Number) JSON() string { return n.Text }

func (n *Number) String() string { return n.Text }

// A Bool is a Boolean value.
type Bool struct {
	node

	Value bool
}

func (b *Bool) JSON() string { return strconv.FormatBool(b.Value) }

func (b *Bool) String() string { return b.JSON() }

// A Null is the JSON null value.
type Null struct{ node }

func (*Null) JSON() string { return "null" }

func (*Null) String() string { return "null" }

// A Document is a single value with optional trailing comments.
type Document struct {
	Value

	com Comments
}

func (d *Document) Comments() *Comments { return &d.com }

// ToValue converts a string, int, int64, float64, bool, nil, or Value into a
// Value. It panics if v does not have one of those types.
func ToValue(v any) Value {
	switch t := v.(type) {
	case Value:
		return t
	case nil:
		return new(Null)
	case bool:
		return &Bool{Value: t}
	case string:
		return StringOf(t)
	case int:
		return &Number{Text: strconv.Itoa(t)}
	case int64:
		return &Number{Text: strconv.FormatInt(t, 10)}
	case float64:
		return &Number{Text: strconv.FormatFloat(t, 'g', -1, 64)}
	default:
		panic(fmt.Sprintf("invalid value type %T", v))
	}
}
