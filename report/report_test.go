// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package report_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/creachadair/comb"
	"github.com/creachadair/comb/report"
	"github.com/creachadair/comb/text"
	"github.com/google/go-cmp/cmp"
)

func TestRender(t *testing.T) {
	list := comb.Full(comb.DelimitedBy(
		text.Char('['),
		comb.SeparatedBy(text.Padded(text.Digit(10)), text.Char(',')),
		comb.CriticalExpectation(text.Char(']')),
	))
	const source = "[1, 2x"
	_, err := comb.ParseString(list, source)
	if err == nil {
		t.Fatal("Parse succeeded unexpectedly")
	}

	tests := []struct {
		name, source string
		err          error
		want         string
	}{
		{"Parse", source, err, `error: expected char ']'
 --> test.txt:1:6
  |
1 | [1, 2x
  |      ^
`},
		{"MultiLine", "ab\n\tcd\r\nef", comb.Errorf(comb.Location{Offset: 4}.Range(2), "oops"), "error: oops\n" +
			" --> test.txt:2:2\n" +
			"  |\n" +
			"2 | \tcd\n" +
			"  | \t^^\n"},
		{"AtEnd", "abc", comb.Errorf(comb.Location{Offset: 3}.Range(0), "more"), `error: more
 --> test.txt:1:4
  |
1 | abc
  |    ^
`},
		{"Wrapped", "abc", fmt.Errorf("parsing: %w", comb.Errorf(comb.Location{Offset: 1}.Range(1), "bad b")), `error: bad b
 --> test.txt:1:2
  |
1 | abc
  |  ^
`},
		{"Plain", "abc", errors.New("boom"), "error: boom\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := report.Render(tc.source, "test.txt", tc.err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Render (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestRenderBreak(t *testing.T) {
	_, err := comb.ParseString(comb.Fail(text.Char('a')), "xyz")
	got := report.Render("xyz", "", err)
	if !strings.HasPrefix(got, "error: unexpected input\n --> input:1:1\n") {
		t.Errorf("Render break: got %q", got)
	}
}

func TestRenderColor(t *testing.T) {
	err := comb.Errorf(comb.Location{Offset: 0}.Range(1), "bad")

	var plain, colored strings.Builder
	if err := (report.Renderer{Label: "x"}).Render(&plain, "abc", err); err != nil {
		t.Fatalf("Render: unexpected error: %v", err)
	}
	if err := (report.Renderer{Label: "x", Color: true}).Render(&colored, "abc", err); err != nil {
		t.Fatalf("Render: unexpected error: %v", err)
	}
	if strings.Contains(plain.String(), "\x1b[") {
		t.Errorf("Plain output has escapes: %q", plain.String())
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Errorf("Colored output has no escapes: %q", colored.String())
	}
}
