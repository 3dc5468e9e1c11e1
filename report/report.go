// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package report renders parse errors as annotated snippets of source text.
//
// A rendered error looks like this:
//
//	error: expected char ']'
//	 --> input.json:3:8
//	  |
//	3 |   [1, 2
//	  |        ^
package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/creachadair/comb"
	"github.com/fatih/color"
)

// A Renderer renders parse errors. The zero value is ready for use, and
// renders without color.
type Renderer struct {
	// Label names the source in the rendered output, e.g., a file name.
	// If empty, "input" is used.
	Label string

	// Color enables terminal colors in the output.
	Color bool
}

// styles holds the color formatters for the parts of a rendered error.
type styles struct {
	severity *color.Color
	message  *color.Color
	gutter   *color.Color
	marker   *color.Color
}

func newStyles(enabled bool) *styles {
	s := &styles{
		severity: color.New(color.Bold, color.FgHiRed),
		message:  color.New(color.Bold),
		gutter:   color.New(color.FgHiBlue),
		marker:   color.New(color.Bold, color.FgHiRed),
	}
	if enabled {
		s.severity.EnableColor()
		s.message.EnableColor()
		s.gutter.EnableColor()
		s.marker.EnableColor()
	} else {
		s.severity.DisableColor()
		s.message.DisableColor()
		s.gutter.DisableColor()
		s.marker.DisableColor()
	}
	return s
}

// Render renders err as an annotated snippet of source to w. If err is not
// (and does not wrap) a *comb.Error, only its text is rendered.
func (r Renderer) Render(w io.Writer, source string, err error) error {
	s := newStyles(r.Color)
	var perr *comb.Error
	if !errors.As(err, &perr) {
		_, werr := fmt.Fprintf(w, "%s %s\n", s.severity.Sprint("error:"), s.message.Sprint(err.Error()))
		return werr
	}

	label := r.Label
	if label == "" {
		label = "input"
	}
	start := min(max(perr.At.Start.Offset, 0), len(source))
	lc, lerr := comb.Location{Offset: start}.LineCol(source)
	if lerr != nil {
		return fmt.Errorf("locate error: %w", lerr)
	}
	line := lineAt(source, start)
	col := start - line.start

	num := strconv.Itoa(lc.Line)
	pad := strings.Repeat(" ", len(num))

	var buf strings.Builder
	fmt.Fprintf(&buf, "%s %s\n", s.severity.Sprint("error:"), s.message.Sprint(perr.Message()))
	fmt.Fprintf(&buf, "%s%s %s:%d:%d\n", pad, s.gutter.Sprint("-->"), label, lc.Line, lc.Column+1)
	fmt.Fprintf(&buf, "%s %s\n", pad, s.gutter.Sprint("|"))
	fmt.Fprintf(&buf, "%s %s %s\n", s.gutter.Sprint(num), s.gutter.Sprint("|"), line.text)
	fmt.Fprintf(&buf, "%s %s %s%s\n", pad, s.gutter.Sprint("|"),
		indent(line.text[:col]), s.marker.Sprint(strings.Repeat("^", markLen(line.text[col:], perr.At.Len))))
	_, werr := io.WriteString(w, buf.String())
	return werr
}

// Render returns a rendering of err as an annotated snippet of source,
// labelled with label and without color.
func Render(source, label string, err error) string {
	var buf strings.Builder
	Renderer{Label: label}.Render(&buf, source, err) // cannot fail
	return buf.String()
}

type sourceLine struct {
	start int
	text  string
}

// lineAt returns the line of source containing offset, without its line
// terminator.
func lineAt(source string, offset int) sourceLine {
	start := strings.LastIndexByte(source[:offset], '\n') + 1
	end := len(source)
	if i := strings.IndexByte(source[offset:], '\n'); i >= 0 {
		end = offset + i
	}
	return sourceLine{start: start, text: strings.TrimSuffix(source[start:end], "\r")}
}

// indent returns whitespace that aligns with the display of s, keeping tabs.
func indent(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// markLen returns the number of markers needed to underline n bytes at the
// front of rest, limited to the end of the line. It is at least 1.
func markLen(rest string, n int) int {
	return max(utf8.RuneCountInString(rest[:min(n, len(rest))]), 1)
}
