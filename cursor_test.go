// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package comb_test

import (
	"errors"
	"testing"

	"github.com/creachadair/comb"
	"github.com/creachadair/comb/text"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

func TestCursor(t *testing.T) {
	c := comb.NewCursor("é!x", comb.File(1))

	if sp, ok := c.TryEat(1); ok {
		t.Errorf("TryEat(1) split a rune: got %v", sp)
	}
	if c.Offset() != 0 {
		t.Errorf("Offset after failed TryEat: got %d, want 0", c.Offset())
	}

	r, ok := c.TryEatRune()
	if !ok {
		t.Fatal("TryEatRune failed")
	}
	if r.Value != 'é' || r.Len != 2 {
		t.Errorf("TryEatRune: got %q len %d, want %q len 2", r.Value, r.Len, 'é')
	}

	s, ok := c.TryEat(1)
	if !ok || s.Value != "!" {
		t.Errorf("TryEat(1): got %v, %v; want %q", s, ok, "!")
	}
	if got, want := c.At(), (comb.Location{File: comb.File(1), Offset: 3}); got != want {
		t.Errorf("At: got %v, want %v", got, want)
	}
	if got := c.Remaining(); got != "x" {
		t.Errorf("Remaining: got %q, want %q", got, "x")
	}
	if got := c.Extract(r.Range); got != "é" {
		t.Errorf("Extract: got %q, want %q", got, "é")
	}
	if _, ok := c.TryEat(2); ok {
		t.Error("TryEat(2) past the end should fail")
	}
	if _, ok := c.TryEat(1); !ok || !c.AtEnd() {
		t.Errorf("TryEat(1): got %v, at end %v", ok, c.AtEnd())
	}
	if _, ok := c.TryEatRune(); ok {
		t.Error("TryEatRune at end should fail")
	}
	if got := c.Original(); got != "é!x" {
		t.Errorf("Original: got %q", got)
	}
}

func TestCursorInvalidUTF8(t *testing.T) {
	c := comb.NewCursor("\xffa", comb.FileID{})
	if sp, ok := c.TryEatRune(); ok {
		t.Errorf("TryEatRune on invalid input: got %v", sp)
	}
	if c.Offset() != 0 {
		t.Errorf("Offset: got %d, want 0", c.Offset())
	}
}

func TestParseRestoresCursor(t *testing.T) {
	p := comb.Then(text.Char('a'), text.Char('b'))
	c := comb.NewCursor("ac", comb.File(1))
	if sp, err := comb.Parse(p, c); err == nil {
		t.Fatalf("Parse: got %v, want error", sp)
	}
	if c.Offset() != 0 || c.Remaining() != "ac" {
		t.Errorf("Cursor moved after failure: %v", c)
	}

	c = comb.NewCursor("abc", comb.File(1))
	if _, err := comb.Parse(p, c); err != nil {
		t.Fatalf("Parse: unexpected error: %v", err)
	}
	if c.Offset() != 2 || c.Remaining() != "c" {
		t.Errorf("Cursor after success: %v", c)
	}
}

func TestParseBadRange(t *testing.T) {
	skip := comb.Func[int](func(c *comb.Cursor) (comb.Span[int], *comb.Error) {
		return comb.Ate(c.At().Advance(1).Range(0), 0), nil
	})
	mtest.MustPanic(t, func() { comb.ParseString(skip, "abc") })

	long := comb.Func[int](func(c *comb.Cursor) (comb.Span[int], *comb.Error) {
		return comb.Ate(c.Range(10), 0), nil
	})
	mtest.MustPanic(t, func() { comb.ParseString(long, "abc") })
}

func TestCombine(t *testing.T) {
	at := comb.Location{File: comb.File(2), Offset: 3}
	a := comb.Ate(at.Range(2), "ab")
	b := comb.Ate(at.Advance(2).Range(1), 'c')

	got := comb.Combine(a, b)
	want := comb.Ate(at.Range(3), comb.Pair[string, rune]{First: "ab", Second: 'c'})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Combine (-want, +got):\n%s", diff)
	}

	gap := comb.Ate(at.Advance(3).Range(1), 'd')
	mtest.MustPanic(t, func() { comb.Combine(a, gap) })
}

func TestLineCol(t *testing.T) {
	const input = "ab\ncd\r\n\nxyz"
	tests := []struct {
		offset int
		want   comb.LineCol
	}{
		{0, comb.LineCol{Line: 1, Column: 0}},
		{2, comb.LineCol{Line: 1, Column: 2}},
		{3, comb.LineCol{Line: 2, Column: 0}},
		{5, comb.LineCol{Line: 2, Column: 2}},
		{7, comb.LineCol{Line: 3, Column: 0}},
		{8, comb.LineCol{Line: 4, Column: 0}},
		{11, comb.LineCol{Line: 4, Column: 3}},
	}
	for _, tc := range tests {
		loc := comb.Location{Offset: tc.offset}
		got, err := loc.LineCol(input)
		if err != nil {
			t.Errorf("LineCol(%d): unexpected error: %v", tc.offset, err)
		} else if got != tc.want {
			t.Errorf("LineCol(%d): got %v, want %v", tc.offset, got, tc.want)
		}
	}
	if lc, err := (comb.Location{Offset: 20}).LineCol(input); err == nil {
		t.Errorf("LineCol(20): got %v, want error", lc)
	}
}

func TestRangeContains(t *testing.T) {
	f1 := comb.Location{File: comb.File(1), Offset: 2}
	f2 := comb.Location{File: comb.File(2), Offset: 2}
	tag := comb.Location{File: comb.Custom(7), Offset: 2}

	tests := []struct {
		outer, inner comb.Range
		want         bool
		err          error
	}{
		{f1.Range(5), f1.Advance(1).Range(2), true, nil},
		{f1.Range(5), f1.Range(5), true, nil},
		{f1.Range(5), f1.Advance(3).Range(3), false, nil},
		{f1.Range(5), f2.Range(1), false, nil},
		{tag.Range(5), tag.Advance(4).Range(1), true, nil},
		{comb.Location{}.Range(3), comb.Location{}.Range(1), false, comb.ErrIncomparable},
		{f1.Range(3), comb.Location{File: comb.FileID{Kind: comb.Internal}}.Range(1), false, comb.ErrIncomparable},
	}
	for _, tc := range tests {
		got, err := tc.outer.Contains(tc.inner)
		if !errors.Is(err, tc.err) {
			t.Errorf("Contains(%v, %v): got error %v, want %v", tc.outer, tc.inner, err, tc.err)
		} else if got != tc.want {
			t.Errorf("Contains(%v, %v): got %v, want %v", tc.outer, tc.inner, got, tc.want)
		}
	}
}

func TestFileID(t *testing.T) {
	if !comb.File(1).Comparable(comb.File(1)) {
		t.Error("File(1) should be comparable with itself")
	}
	if comb.File(1).Comparable(comb.File(2)) {
		t.Error("File(1) should not be comparable with File(2)")
	}
	if comb.File(1).Comparable(comb.Custom(1)) {
		t.Error("File(1) should not be comparable with Custom(1)")
	}
	if (comb.FileID{}).Comparable(comb.FileID{}) {
		t.Error("No source should not be comparable")
	}
}
