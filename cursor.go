// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package comb

import (
	"fmt"
	"unicode/utf8"

	"go4.org/mem"
)

// A Cursor is the parsing position within a source text: the unconsumed
// remainder of the text, the location where it starts, and the complete
// original text.
//
// A Cursor is a small value and is copied to backtrack. It is advanced only
// by consuming ranges that start at its current location, so the remainder
// is always the suffix of the original text at the current offset.
type Cursor struct {
	rest mem.RO
	at   Location
	orig string
	ctx  any
}

// NewCursor constructs a cursor at the beginning of text, whose locations
// belong to the given source.
func NewCursor(text string, file FileID) *Cursor {
	return &Cursor{rest: mem.S(text), at: Location{File: file}, orig: text}
}

// NewCursorWithContext is as NewCursor, but attaches a context value that
// parsers can retrieve with GetContext.
func NewCursorWithContext(text string, file FileID, ctx any) *Cursor {
	c := NewCursor(text, file)
	c.ctx = ctx
	return c
}

// Rest returns a read-only view of the unconsumed input.
func (c *Cursor) Rest() mem.RO { return c.rest }

// Remaining returns the unconsumed input as a string.
func (c *Cursor) Remaining() string { return c.orig[c.at.Offset:] }

// Len reports the number of unconsumed bytes.
func (c *Cursor) Len() int { return c.rest.Len() }

// AtEnd reports whether no input remains.
func (c *Cursor) AtEnd() bool { return c.rest.Len() == 0 }

// At returns the current location.
func (c *Cursor) At() Location { return c.at }

// Offset returns the current byte offset within the original text.
func (c *Cursor) Offset() int { return c.at.Offset }

// Original returns the complete original text.
func (c *Cursor) Original() string { return c.orig }

// Context returns the context value attached to c, or nil.
func (c *Cursor) Context() any { return c.ctx }

// Range returns the range of n bytes starting at the current location.
func (c *Cursor) Range(n int) Range { return c.at.Range(n) }

// Extract returns the text of the original input covered by r.
func (c *Cursor) Extract(r Range) string {
	return c.orig[r.Start.Offset : r.Start.Offset+r.Len]
}

// apply advances c past r, which must start at the current location and fit
// within the remaining input.
func (c *Cursor) apply(r Range) {
	if r.Start != c.at {
		panic(fmt.Sprintf("comb: consumed range %v does not start at cursor %v", r, c.at))
	} else if r.Len > c.rest.Len() {
		panic(fmt.Sprintf("comb: consumed range %v exceeds remaining input (%d bytes)", r, c.rest.Len()))
	}
	c.rest = c.rest.SliceFrom(r.Len)
	c.at = c.at.Advance(r.Len)
}

// boundary reports whether n is a valid place to split the remaining input.
func (c *Cursor) boundary(n int) bool {
	if n < 0 || n > c.rest.Len() {
		return false
	}
	return n == c.rest.Len() || utf8.RuneStart(c.rest.At(n))
}

// TryEat consumes the next n bytes of input and returns them. It reports
// false without consuming anything if fewer than n bytes remain or if n
// would split a UTF-8 encoded rune.
func (c *Cursor) TryEat(n int) (Span[string], bool) {
	if !c.boundary(n) {
		return Span[string]{}, false
	}
	r := c.Range(n)
	s := Ate(r, c.Extract(r))
	c.apply(r)
	return s, true
}

// TryEatRune consumes the next rune of input and returns it. It reports false
// without consuming anything at the end of input or if the input does not
// begin with a valid UTF-8 encoding.
func (c *Cursor) TryEatRune() (Span[rune], bool) {
	ch, n := mem.DecodeRune(c.rest)
	if n == 0 || (ch == utf8.RuneError && n == 1) {
		return Span[rune]{}, false
	}
	r := c.Range(n)
	c.apply(r)
	return Ate(r, ch), true
}

// PeekRune returns the next rune of input without consuming it, and its
// length in bytes. It returns length 0 at the end of input.
func (c *Cursor) PeekRune() (rune, int) { return mem.DecodeRune(c.rest) }

func (c *Cursor) String() string {
	const maxShow = 16
	rest := c.Remaining()
	if len(rest) > maxShow {
		n := maxShow
		for n > 0 && !utf8.RuneStart(rest[n]) {
			n--
		}
		rest = rest[:n] + "..."
	}
	return fmt.Sprintf("Cursor(%v, %q)", c.at, rest)
}
