// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsonc

import (
	"slices"
	"strings"

	"github.com/creachadair/comb"
	"github.com/creachadair/comb/internal/escape"
	"github.com/creachadair/comb/text"
	"go4.org/mem"
)

// A comment is a comment token found between two other tokens.
type comment struct {
	text  string
	lines int // line breaks between the previous token and the comment
}

// trailing reports whether c is a line comment on the same line as the
// token before it.
func (c comment) trailing() bool { return c.lines == 0 && strings.HasPrefix(c.text, "//") }

// A gap is the whitespace and comments between two tokens.
type gap struct {
	coms []comment
	tail int // line breaks after the last comment
}

// An entry is an element of a document, array, or object with the gaps
// around it.
type entry[T Value] struct {
	lead  gap
	value T
	trail gap
}

// A body is the contents of an array or object.
type body[T Value] struct {
	entries []entry[T]
	end     []string // comments not claimed by any entry
}

// document is the grammar for a complete JWCC document.
var document = comb.Lazy(newGrammar)

func newGrammar() comb.Parser[*Document] {
	breaks := comb.MapText(comb.Parser[comb.Unit](text.Whitespaces()), func(s string) int {
		return strings.Count(s, "\n")
	})
	lineComment := comb.CollectString(comb.Then(
		text.Just("//"),
		comb.Parser[comb.Discard[rune]](comb.Repeated(text.Filter(func(r rune) bool { return r != '\n' }))),
	))
	blockComment := comb.CollectString(comb.Then(
		text.Just("/*"),
		comb.Then(
			comb.Parser[comb.Discard[rune]](comb.Repeated(comb.IgnoreThen(comb.Not(text.Just("*/")), text.Filter(anyRune)))),
			comb.Parser[string](comb.Critical(text.Just("*/"), "unterminated block comment").NoEOFMessage()),
		),
	))
	piece := comb.Map(comb.Then(breaks, comb.Or(lineComment, blockComment)), func(p comb.Pair[int, string]) comment {
		return comment{text: p.Second, lines: p.First}
	})
	space := comb.Map(comb.Then(comb.Parser[comb.List[comment]](comb.RepeatedList(piece)), breaks),
		func(p comb.Pair[comb.List[comment], int]) gap {
			return gap{coms: p.First, tail: p.Second}
		})

	late := comb.Declare[Value]()
	value := comb.Parser[Value](late)

	str := build(stringToken(), func(r comb.Range, s string) *String {
		dec, _ := escape.Unquote(mem.S(s[1 : len(s)-1])) // escapes are checked by stringToken
		return &String{node: node{span: r}, Text: s, Value: dec}
	})
	number := build(numberToken(), func(r comb.Range, s string) Value {
		return &Number{node: node{span: r}, Text: s}
	})
	literal := func(word string, f func(node) Value) comb.Parser[Value] {
		return build(text.Just(word), func(r comb.Range, _ string) Value { return f(node{span: r}) })
	}

	array := build(comb.DelimitedBy(
		text.Char('['),
		sequence(value, space),
		comb.Parser[rune](comb.Critical(text.Char(']'), "expected ',' or ']'")),
	), func(r comb.Range, b body[Value]) Value {
		a := &Array{node: node{span: r, com: Comments{End: b.end}}}
		for _, e := range b.entries {
			a.Values = append(a.Values, e.value)
		}
		return a
	})

	colon := comb.Parser[rune](comb.Critical(text.Char(':'), "expected ':' after object key"))
	member := build(comb.Then(str, comb.Then(space, comb.IgnoreThen(colon, comb.Then(space, value)))),
		func(r comb.Range, p comb.Pair[*String, comb.Pair[gap, comb.Pair[gap, Value]]]) *Member {
			key, pre, post, v := p.First, p.Second.First, p.Second.Second.First, p.Second.Second.Second
			v.Comments().Before = group(slices.Concat(pre.coms, post.coms), post.tail)
			return &Member{node: node{span: r}, Key: key, Value: v}
		})
	object := build(comb.DelimitedBy(
		text.Char('{'),
		sequence(member, space),
		comb.Parser[rune](comb.Critical(text.Char('}'), "expected ',' or '}'")),
	), func(r comb.Range, b body[*Member]) Value {
		o := &Object{node: node{span: r, com: Comments{End: b.end}}}
		for _, e := range b.entries {
			o.Members = append(o.Members, e.value)
		}
		return o
	})

	late.Define(comb.CustomErr(comb.Choice(
		object,
		array,
		comb.Map(str, func(s *String) Value { return s }),
		number,
		literal("true", func(n node) Value { return &Bool{node: n, Value: true} }),
		literal("false", func(n node) Value { return &Bool{node: n} }),
		literal("null", func(n node) Value { return &Null{node: n} }),
	), "expected a JSON value"))

	return comb.Map(comb.ThenIgnore(
		element(value, space),
		comb.Parser[comb.Unit](comb.Critical(comb.End(), "unexpected input after value")),
	), func(e entry[Value]) *Document {
		d := &Document{Value: e.value}
		d.com.End = attach([]entry[Value]{e}, gap{})
		return d
	})
}

func anyRune(rune) bool { return true }

// build returns a parser that matches p and constructs a value from the
// matched range and the value of p.
func build[T, V any](p comb.Parser[T], f func(comb.Range, T) V) comb.Parser[V] {
	return comb.AndThen(p, func(sp comb.Span[T]) (V, *comb.Error) {
		return f(sp.Range, sp.Value), nil
	})
}

// element returns a parser that matches p with the gaps around it.
func element[T Value](p comb.Parser[T], space comb.Parser[gap]) comb.Parser[entry[T]] {
	return comb.Map(comb.Then(space, comb.Then(p, space)), func(v comb.Pair[gap, comb.Pair[T, gap]]) entry[T] {
		return entry[T]{lead: v.First, value: v.Second.First, trail: v.Second.Second}
	})
}

// sequence returns a parser for the body of an array or object whose
// elements match p. The body may end with one trailing comma, provided it
// has at least one element.
func sequence[T Value](p comb.Parser[T], space comb.Parser[gap]) comb.Parser[body[T]] {
	elts := comb.Parser[comb.List[entry[T]]](comb.SeparatedBy(element(p, space), text.Char(',')))
	trailer := comb.OrNot(comb.Spanned(text.Char(',')))
	return comb.AndThen(comb.Then(elts, comb.Then(trailer, space)),
		func(sp comb.Span[comb.Pair[comb.List[entry[T]], comb.Pair[comb.Opt[comb.Span[rune]], gap]]]) (body[T], *comb.Error) {
			es, comma, tail := sp.Value.First, sp.Value.Second.First, sp.Value.Second.Second
			if comma.OK && len(es) == 0 {
				return body[T]{}, comb.Errorf(comma.Value.Range, "unexpected ','").Criticalize("unexpected ','")
			}
			return body[T]{entries: es, end: attach(es, tail)}, nil
		})
}

// attach distributes the comments in the gaps of es among the entries, and
// returns the comments in tail that belong to none of them.
//
// The first comment after an entry, if it is a line comment on the same line
// where the entry ends, is the line comment of the entry. Other comments
// before an entry are its before comments.
func attach[T Value](es []entry[T], tail gap) []string {
	var carry []comment
	for i, e := range es {
		lead := e.lead.coms
		if i > 0 && len(lead) != 0 && lead[0].trailing() {
			if prev := es[i-1].value.Comments(); prev.Line == "" {
				prev.Line = lead[0].text
				lead = lead[1:]
			}
		}
		c := e.value.Comments()
		c.Before = append(group(slices.Concat(carry, lead), e.lead.tail), c.Before...)

		trail := e.trail.coms
		if len(trail) != 0 && trail[0].trailing() && c.Line == "" {
			c.Line = trail[0].text
			trail = trail[1:]
		}
		carry = trail
	}

	rest := tail.coms
	if n := len(es); n != 0 && len(rest) != 0 && rest[0].trailing() {
		if last := es[n-1].value.Comments(); last.Line == "" {
			last.Line = rest[0].text
			rest = rest[1:]
		}
	}
	return group(slices.Concat(carry, rest), 0)
}

// group renders a run of comments as comment text. A blank line between two
// comments, or between the last comment and the following token, is
// recorded as an empty string.
func group(coms []comment, tail int) []string {
	if len(coms) == 0 {
		return nil
	}
	var out []string
	for i, c := range coms {
		if i > 0 && c.lines > 1 {
			out = append(out, "")
		}
		out = append(out, c.text)
	}
	if tail > 1 {
		out = append(out, "")
	}
	return out
}

// stringToken returns a parser for a JSON string, including its quotes,
// whose value is the matched text.
func stringToken() comb.Parser[string] {
	plain := text.Filter(func(r rune) bool { return r >= ' ' && r != '"' && r != '\\' })
	hex4 := comb.Parser[comb.Discard[rune]](comb.Repeated(text.Digit(16)).Exactly(4))
	esc := comb.IgnoreThen(text.Char('\\'), comb.Parser[comb.Unit](comb.Critical(comb.SilentChoice(
		comb.Silent(text.OneOf(`"\/bfnrt`)),
		comb.Silent(comb.Then(text.Char('u'), hex4)),
	), "invalid escape sequence").NoEOFMessage()))
	return comb.CollectString(comb.Then(
		text.Char('"'),
		comb.Then(
			comb.Parser[comb.Discard[comb.Unit]](comb.Repeated(comb.Or(comb.Silent(plain), esc))),
			comb.Parser[rune](comb.Critical(text.Char('"'), "unterminated string").NoEOFMessage()),
		),
	))
}

// numberToken returns a parser for a JSON number, whose value is the
// matched text.
func numberToken() comb.Parser[string] {
	digits := comb.Parser[comb.Discard[rune]](comb.Repeated(text.Digit(10)).AtLeast(1))
	integer := comb.Or(
		comb.Silent(text.Char('0')),
		comb.Silent(comb.Then(text.Filter(func(r rune) bool { return '1' <= r && r <= '9' }),
			comb.Parser[comb.Discard[rune]](comb.Repeated(text.Digit(10))))),
	)
	frac := comb.OrNot(comb.Then(text.Char('.'),
		comb.Parser[comb.Discard[rune]](comb.Critical(digits, "expected digits after decimal point"))))
	exp := comb.OrNot(comb.Then(text.OneOf("eE"), comb.Then(
		comb.OrNot(text.OneOf("+-")),
		comb.Parser[comb.Discard[rune]](comb.Critical(digits, "expected digits in exponent")),
	)))
	return comb.CollectString(comb.Then(
		comb.OrNot(text.Char('-')),
		comb.Then(integer, comb.Then(frac, exp)),
	))
}
