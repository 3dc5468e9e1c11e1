// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsonc

import "strings"

// CleanComments combines and removes comment markers from the given comments,
// returning a slice of plain lines of text. Leading and trailing spaces are
// removed from the lines.
func CleanComments(coms ...string) []string {
	var out []string
	for _, com := range coms {
		lines := strings.Split(stripMarkers(com), "\n")
		outdentCommentLines(lines)
		for _, line := range lines {
			out = append(out, strings.TrimSpace(line))
		}
	}
	return out
}

// stripMarkers returns the text of comment s without its "//" or "/* */"
// markers.
func stripMarkers(s string) string {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, "//"); ok {
		return rest
	}
	if rest, ok := strings.CutPrefix(s, "/*"); ok {
		return strings.TrimSpace(strings.TrimSuffix(rest, "*/"))
	}
	return s
}

// outdentCommentLines removes from all but the first of lines the shortest
// run of leading blanks they share, and trims trailing blanks from each.
// Lines that are entirely blank are ignored when finding the run.
func outdentCommentLines(lines []string) {
	cut := -1
	for _, line := range lines[1:] {
		body := strings.TrimLeft(line, " \t")
		if body == "" {
			continue
		}
		if n := len(line) - len(body); cut < 0 || n < cut {
			cut = n
		}
	}
	for i, line := range lines {
		if i > 0 && cut > 0 && len(line) >= cut {
			line = line[cut:]
		}
		lines[i] = strings.TrimRight(line, " \t")
	}
}
