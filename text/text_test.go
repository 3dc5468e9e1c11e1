// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package text_test

import (
	"errors"
	"testing"

	"github.com/creachadair/comb"
	"github.com/creachadair/comb/text"
	"github.com/creachadair/mds/mtest"
)

func TestDigitRadix(t *testing.T) {
	mtest.MustPanic(t, func() { text.Digit(1) })
	mtest.MustPanic(t, func() { text.Digit(37) })

	p := text.Digit(36)
	for _, ok := range []string{"0", "9", "a", "z", "Z"} {
		if _, err := comb.ParseString(p, ok); err != nil {
			t.Errorf("Digit(36) %q: unexpected error: %v", ok, err)
		}
	}
}

func TestMessages(t *testing.T) {
	tests := []struct {
		name  string
		p     comb.Parser[rune]
		input string
		want  string
	}{
		{"CharEOF", text.Char('a'), "", "expected char 'a'"},
		{"FilterEOF", text.Filter(func(rune) bool { return true }), "", "no character left"},
		{"Filter", text.Whitespace(), "x", "character filter failed"},
		{"LineSpace", text.LineSpace(), "\n", "character filter failed"},
		{"OneOf", text.OneOf("+-"), "*", `expected one of "+-"`},
		{"Invalid", text.Filter(func(rune) bool { return true }), "\xff", "invalid UTF-8"},
		{"InvalidTail", text.Filter(func(rune) bool { return true }), "\xe9", "invalid UTF-8"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := comb.ParseString(tc.p, tc.input)
			var perr *comb.Error
			if !errors.As(err, &perr) {
				t.Fatalf("Parse %q: got error %v, want *comb.Error", tc.input, err)
			}
			if got := perr.Message(); got != tc.want {
				t.Errorf("Parse %q: got %q, want %q", tc.input, got, tc.want)
			}
			if perr.At.Start.Offset != 0 {
				t.Errorf("Parse %q: error at offset %d, want 0", tc.input, perr.At.Start.Offset)
			}
		})
	}
}

func TestNewline(t *testing.T) {
	p := comb.RepeatedList(text.Newline())
	sp, err := comb.ParseString(comb.Parser[comb.List[comb.Unit]](p), "\r\n\n\r")
	if err != nil {
		t.Fatalf("Parse: unexpected error: %v", err)
	}
	if len(sp.Value) != 3 {
		t.Errorf("Got %d newlines, want 3", len(sp.Value))
	}
	if _, err := comb.ParseString(text.Newline(), "x"); err == nil {
		t.Error("Newline matched x")
	}
}
