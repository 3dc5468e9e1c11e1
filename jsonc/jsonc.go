// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jsonc implements a parser for JSON With Commas and Comments (JWCC)
// as defined by https://nigeltao.github.io/blog/2021/json-with-commas-comments.html
//
// The grammar is written with the combinators of package comb. Parsed values
// record their location in the source, and the comments around them.
package jsonc

import (
	"errors"
	"fmt"
	"io"

	"github.com/creachadair/comb"
)

// Parse parses a single JWCC document from text.
// If parsing fails, the error has concrete type *SyntaxError.
func Parse(text string) (*Document, error) {
	return ParseFile(text, comb.File(0))
}

// ParseFile parses a single JWCC document from text, and records locations
// in the file identified by file.
func ParseFile(text string, file comb.FileID) (*Document, error) {
	sp, err := comb.ParseFile(document, text, file)
	if err != nil {
		return nil, newSyntaxError(text, err)
	}
	return sp.Value, nil
}

// ParseReader reads all of r and parses it as a JWCC document.
func ParseReader(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}

// SyntaxError is the concrete type of errors reported by Parse.
type SyntaxError struct {
	Location comb.LineCol // where the error occurred
	Message  string       // the description of the error

	err *comb.Error
}

func newSyntaxError(text string, err error) *SyntaxError {
	var perr *comb.Error
	if !errors.As(err, &perr) {
		panic(fmt.Sprintf("unexpected error type %T", err))
	}
	lc, _ := perr.At.Start.LineCol(text) // the offset is within text
	return &SyntaxError{Location: lc, Message: perr.Message(), err: perr}
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %d:%d: %s", s.Location.Line, s.Location.Column+1, s.Message)
}

// Unwrap returns the underlying parse error.
func (s *SyntaxError) Unwrap() error { return s.err }
