// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package comb

import (
	"errors"
	"fmt"
	"strings"
)

// A FileKind identifies the kind of source a FileID refers to.
type FileKind byte

// Constants defining the valid FileKind values.
const (
	NoFile     FileKind = iota // no source
	Internal                   // internal or synthetic source
	SourceFile                 // a numbered source file
	CustomFile                 // an opaque caller-defined tag
)

// A FileID identifies the source that a Location refers to.
// The zero value denotes "no source".
type FileID struct {
	Kind FileKind
	ID   uint64 // the file number or custom tag; zero for NoFile and Internal
}

// File returns the FileID of the numbered source file id.
func File(id uint64) FileID { return FileID{Kind: SourceFile, ID: id} }

// Custom returns a FileID with the given opaque tag.
func Custom(tag uint64) FileID { return FileID{Kind: CustomFile, ID: tag} }

// Comparable reports whether locations in f can be ordered against locations
// in other. Locations with no source or an internal source are never
// comparable.
func (f FileID) Comparable(other FileID) bool {
	return f.located() && other.located() && f == other
}

func (f FileID) located() bool { return f.Kind == SourceFile || f.Kind == CustomFile }

func (f FileID) String() string {
	switch f.Kind {
	case NoFile:
		return "none"
	case Internal:
		return "internal"
	case SourceFile:
		return fmt.Sprintf("file %d", f.ID)
	default:
		return fmt.Sprintf("custom %d", f.ID)
	}
}

// A Location is a byte offset within a source.
type Location struct {
	File   FileID
	Offset int // byte offset, 0-based
}

// Advance returns a copy of loc moved forward by n bytes.
func (loc Location) Advance(n int) Location {
	return Location{File: loc.File, Offset: loc.Offset + n}
}

// Range returns the range of n bytes starting at loc.
func (loc Location) Range(n int) Range { return Range{Start: loc, Len: n} }

func (loc Location) String() string {
	if loc.File.Kind == NoFile {
		return fmt.Sprintf("offset %d", loc.Offset)
	}
	return fmt.Sprintf("offset %d @ %s", loc.Offset, loc.File)
}

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 0-based
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// LineCol reports the line and column of loc within text, which must be the
// complete text loc was taken from.
func (loc Location) LineCol(text string) (LineCol, error) {
	if loc.Offset < 0 || loc.Offset > len(text) {
		return LineCol{}, fmt.Errorf("offset %d out of bounds (0..%d)", loc.Offset, len(text))
	}
	before := text[:loc.Offset]
	line := strings.Count(before, "\n")
	col := len(before)
	if i := strings.LastIndexByte(before, '\n'); i >= 0 {
		col = len(before) - i - 1
	}
	return LineCol{Line: line + 1, Column: col}, nil
}

// A Range describes a contiguous run of bytes in a source.
type Range struct {
	Start Location
	Len   int // length in bytes
}

// End returns the location just past the end of r.
func (r Range) End() Location { return r.Start.Advance(r.Len) }

// IsEmpty reports whether r has zero length.
func (r Range) IsEmpty() bool { return r.Len == 0 }

func (r Range) String() string {
	return fmt.Sprintf("offset %d to %d @ %s", r.Start.Offset, r.Start.Offset+max(r.Len, 1)-1, r.Start.File)
}

// ErrIncomparable is reported by Range.Contains when either range has no
// source or an internal source.
var ErrIncomparable = errors.New("ranges are not comparable")

// Contains reports whether other lies entirely within r. Ranges in distinct
// sources never contain one another. It reports ErrIncomparable if either
// range has no source or an internal source.
func (r Range) Contains(other Range) (bool, error) {
	if !r.Start.File.located() || !other.Start.File.located() {
		return false, ErrIncomparable
	}
	if r.Start.File != other.Start.File {
		return false, nil
	}
	return other.Start.Offset >= r.Start.Offset &&
		other.Start.Offset+other.Len <= r.Start.Offset+r.Len, nil
}
