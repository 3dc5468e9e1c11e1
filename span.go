// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package comb

import "fmt"

// A Span is a parsed value paired with the range of source it was parsed
// from.
type Span[T any] struct {
	Range
	Value T
}

// Ate constructs a span of v covering r.
func Ate[T any](r Range, v T) Span[T] { return Span[T]{Range: r, Value: v} }

// Replace returns a span covering the same range as s with value v.
func Replace[T, U any](s Span[T], v U) Span[U] { return Span[U]{Range: s.Range, Value: v} }

// MapSpan returns a span covering the same range as s whose value is f
// applied to the value of s.
func MapSpan[T, U any](s Span[T], f func(T) U) Span[U] {
	return Span[U]{Range: s.Range, Value: f(s.Value)}
}

func (s Span[T]) String() string { return fmt.Sprintf("%v => %v", s.Range, s.Value) }

// A Pair holds the values of two parsers run in sequence.
type Pair[T, U any] struct {
	First  T
	Second U
}

// Combine joins two contiguous spans into one span covering both, whose value
// is the pair of their values. It panics if b does not start exactly where a
// ends: combinators only ever combine spans they produced in sequence, so a
// gap indicates a bug in the combinator.
func Combine[T, U any](a Span[T], b Span[U]) Span[Pair[T, U]] {
	if b.Start != a.End() {
		panic(fmt.Sprintf("comb: non-contiguous spans: %v does not start at %v", b.Range, a.End()))
	}
	return Span[Pair[T, U]]{
		Range: Range{Start: a.Start, Len: a.Len + b.Len},
		Value: Pair[T, U]{First: a.Value, Second: b.Value},
	}
}
