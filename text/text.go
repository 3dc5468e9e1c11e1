// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package text implements leaf parsers for characters, literal strings, and
// whitespace, for use with package comb.
package text

import (
	"strconv"
	"unicode"

	"github.com/creachadair/comb"
	"github.com/creachadair/mds/mapset"
	"go4.org/mem"
)

// Char returns a parser that matches the character ch.
func Char(ch rune) comb.Parser[rune] {
	return comb.Func[rune](func(c *comb.Cursor) (comb.Span[rune], *comb.Error) {
		start := c.Range(0)
		sp, ok := c.TryEatRune()
		if !ok {
			return sp, comb.NewError(start, comb.ExpectedChar(ch))
		} else if sp.Value != ch {
			return comb.Span[rune]{}, comb.NewError(sp.Range, comb.ExpectedChar(ch))
		}
		return sp, nil
	})
}

// Just returns a parser that matches the literal string s.
func Just(s string) comb.Parser[string] {
	return comb.Func[string](func(c *comb.Cursor) (comb.Span[string], *comb.Error) {
		if !mem.HasPrefix(c.Rest(), mem.S(s)) {
			return comb.Span[string]{}, comb.NewError(c.Range(0), comb.ExpectedString(s))
		}
		sp, ok := c.TryEat(len(s))
		if !ok {
			return sp, comb.NewError(c.Range(0), comb.ExpectedString(s))
		}
		return sp, nil
	})
}

// Filter returns a parser that matches a single character for which keep
// reports true.
func Filter(keep func(rune) bool) comb.Parser[rune] {
	return comb.Func[rune](func(c *comb.Cursor) (comb.Span[rune], *comb.Error) {
		start := c.Range(0)
		sp, ok := c.TryEatRune()
		if !ok && c.AtEnd() {
			return sp, comb.Errorf(start, "no character left")
		} else if !ok {
			return sp, comb.Errorf(c.Range(1), "invalid UTF-8")
		} else if !keep(sp.Value) {
			return comb.Span[rune]{}, comb.Errorf(sp.Range, "character filter failed")
		}
		return sp, nil
	})
}

// Digit returns a parser that matches a single digit in the given radix,
// which must be between 2 and 36 inclusive. Digits above 9 are the letters
// 'a' to 'z' in either case.
func Digit(radix int) comb.Parser[rune] {
	if radix < 2 || radix > 36 {
		panic("text: invalid digit radix " + strconv.Itoa(radix))
	}
	return Filter(func(ch rune) bool {
		var v int
		switch {
		case ch >= '0' && ch <= '9':
			v = int(ch - '0')
		case ch >= 'a' && ch <= 'z':
			v = int(ch-'a') + 10
		case ch >= 'A' && ch <= 'Z':
			v = int(ch-'A') + 10
		default:
			return false
		}
		return v < radix
	})
}

// OneOf returns a parser that matches any one of the characters of chars.
func OneOf(chars string) comb.Parser[rune] {
	set := mapset.New([]rune(chars)...)
	return comb.Func[rune](func(c *comb.Cursor) (comb.Span[rune], *comb.Error) {
		start := c.Range(0)
		sp, ok := c.TryEatRune()
		if !ok {
			return sp, comb.Errorf(start, "expected one of %q", chars)
		} else if !set.Has(sp.Value) {
			return comb.Span[rune]{}, comb.Errorf(sp.Range, "expected one of %q", chars)
		}
		return sp, nil
	})
}

func isNewline(ch rune) bool { return ch == '\n' || ch == '\r' }

func isLineSpace(ch rune) bool { return unicode.IsSpace(ch) && !isNewline(ch) }

// Whitespace returns a parser that matches a single whitespace character.
func Whitespace() comb.Parser[rune] { return Filter(unicode.IsSpace) }

// LineSpace returns a parser that matches a single whitespace character
// other than a newline.
func LineSpace() comb.Parser[rune] { return Filter(isLineSpace) }

// Spaces is a parser that matches a run of whitespace characters.
// By default it matches zero or more, including newlines.
type Spaces struct {
	atLeastOne bool
	noNewline  bool
}

// Whitespaces returns a parser that matches zero or more whitespace
// characters.
func Whitespaces() Spaces { return Spaces{} }

// AtLeastOne returns a copy of s that requires at least one character.
func (s Spaces) AtLeastOne() Spaces { s.atLeastOne = true; return s }

// NoNewline returns a copy of s that does not match newline characters.
func (s Spaces) NoNewline() Spaces { s.noNewline = true; return s }

// Attempt satisfies the comb.Parser interface.
func (s Spaces) Attempt(c *comb.Cursor) (comb.Span[comb.Unit], *comb.Error) {
	keep := unicode.IsSpace
	if s.noNewline {
		keep = isLineSpace
	}
	rest := c.Rest()
	n := rest.Len() - mem.TrimLeftFunc(rest, keep).Len()
	if n == 0 && s.atLeastOne {
		return comb.Span[comb.Unit]{}, comb.Errorf(c.Range(0), "expected at least one whitespace")
	}
	sp, _ := c.TryEat(n)
	return comb.Replace(sp, comb.Unit{}), nil
}

// Newline returns a parser that matches a single line break: "\r\n", "\r",
// or "\n".
func Newline() comb.Parser[comb.Unit] {
	return comb.Func[comb.Unit](func(c *comb.Cursor) (comb.Span[comb.Unit], *comb.Error) {
		rest := c.Rest()
		var n int
		if mem.HasPrefix(rest, mem.S("\r\n")) {
			n = 2
		} else if rest.Len() > 0 && (rest.At(0) == '\r' || rest.At(0) == '\n') {
			n = 1
		} else {
			return comb.Span[comb.Unit]{}, comb.Errorf(c.Range(0), "expected a newline")
		}
		sp, _ := c.TryEat(n)
		return comb.Replace(sp, comb.Unit{}), nil
	})
}

// Padded returns a parser that matches p surrounded by optional whitespace,
// including newlines.
func Padded[T any](p comb.Parser[T]) comb.Parser[T] {
	return comb.PaddedBy(p, comb.Parser[comb.Unit](Whitespaces()))
}

// LinePadded returns a parser that matches p surrounded by optional
// whitespace, not including newlines.
func LinePadded[T any](p comb.Parser[T]) comb.Parser[T] {
	return comb.PaddedBy(p, comb.Parser[comb.Unit](Whitespaces().NoNewline()))
}
