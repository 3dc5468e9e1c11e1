// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package comb

import (
	"fmt"
	"strconv"
)

// An ExpectKind identifies what a failed parser expected to find.
type ExpectKind byte

// Constants defining the valid ExpectKind values.
const (
	ExpectCustom ExpectKind = iota // a free-form message
	ExpectChar                     // a specific character
	ExpectString                   // a specific literal string
	ExpectBreak                    // a break signal, see Fail
)

// An Expectation describes what a failed parser expected to find.
type Expectation struct {
	Kind    ExpectKind
	Char    rune   // for ExpectChar
	Text    string // for ExpectString
	Message string // for ExpectCustom
}

// ExpectedChar returns an expectation for the character ch.
func ExpectedChar(ch rune) Expectation { return Expectation{Kind: ExpectChar, Char: ch} }

// ExpectedString returns an expectation for the literal s.
func ExpectedString(s string) Expectation { return Expectation{Kind: ExpectString, Text: s} }

// Expected returns an expectation with a custom message.
func Expected(msg string) Expectation { return Expectation{Kind: ExpectCustom, Message: msg} }

func (e Expectation) String() string {
	switch e.Kind {
	case ExpectChar:
		return "expected char " + strconv.QuoteRune(e.Char)
	case ExpectString:
		return "expected " + strconv.Quote(e.Text)
	case ExpectBreak:
		return "unexpected input"
	default:
		return e.Message
	}
}

// Error is the concrete type of a parse failure. It records where the
// failure occurred and what was expected, plus two optional annotations:
//
// A critical error is not recoverable: combinators that try alternatives or
// repeat a parser propagate it instead of backtracking.
//
// An atomic message is authoritative: once set, the messages of enclosing
// combinators do not replace it.
//
// Both annotations are monotonic; the first one set wins.
type Error struct {
	At       Range
	Expected Expectation

	critical    bool
	criticalMsg string
	atomic      bool
	atomicMsg   string
}

// NewError constructs a recoverable error at r with the given expectation.
func NewError(r Range, exp Expectation) *Error { return &Error{At: r, Expected: exp} }

// Errorf constructs a recoverable error at r with a custom message.
func Errorf(r Range, msg string, args ...any) *Error {
	return &Error{At: r, Expected: Expected(fmt.Sprintf(msg, args...))}
}

// Break constructs a break signal at r.
func Break(r Range) *Error { return &Error{At: r, Expected: Expectation{Kind: ExpectBreak}} }

// Criticalize marks e critical with the given message, unless e is already
// critical. It returns e.
func (e *Error) Criticalize(msg string) *Error {
	if !e.critical {
		e.critical = true
		e.criticalMsg = msg
	}
	return e
}

// WithAtomic attaches an atomic message to e, unless one is already present.
// It returns e.
func (e *Error) WithAtomic(msg string) *Error {
	if !e.atomic {
		e.atomic = true
		e.atomicMsg = msg
	}
	return e
}

// IsCritical reports whether e is a critical error.
func (e *Error) IsCritical() bool { return e.critical }

// IsAtomic reports whether e carries an atomic message.
func (e *Error) IsAtomic() bool { return e.atomic }

// IsBreak reports whether e is a break signal.
func (e *Error) IsBreak() bool { return e.Expected.Kind == ExpectBreak }

// AtomicMessage returns the atomic message of e, if it has one.
func (e *Error) AtomicMessage() (string, bool) { return e.atomicMsg, e.atomic }

// Message returns the most specific description of e: its critical message
// if set, otherwise its atomic message if set, otherwise a description of
// its expectation.
func (e *Error) Message() string {
	if e.critical {
		return e.criticalMsg
	} else if e.atomic {
		return e.atomicMsg
	}
	return e.Expected.String()
}

// Error satisfies the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("at %s: %s", e.At, e.Message())
}
