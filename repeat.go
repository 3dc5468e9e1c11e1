// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package comb

import "fmt"

// bounds records the repetition limits of a Repeat or Separated parser.
// A negative max means there is no upper limit.
type bounds struct {
	min, max      int
	hasMin, exact bool
}

func unbounded() bounds { return bounds{max: -1} }

func (b bounds) atLeast(n int) bounds {
	if n < 0 {
		panic(fmt.Sprintf("comb: negative repetition minimum %d", n))
	} else if b.exact {
		panic("comb: cannot combine a minimum with an exact repetition count")
	} else if b.max >= 0 && n > b.max {
		panic(fmt.Sprintf("comb: repetition minimum %d exceeds maximum %d", n, b.max))
	}
	b.min, b.hasMin = n, true
	return b
}

func (b bounds) atMost(n int) bounds {
	if n < 0 {
		panic(fmt.Sprintf("comb: negative repetition maximum %d", n))
	} else if b.exact {
		panic("comb: cannot combine a maximum with an exact repetition count")
	} else if b.hasMin && n < b.min {
		panic(fmt.Sprintf("comb: repetition maximum %d is less than minimum %d", n, b.min))
	}
	b.max = n
	return b
}

func (b bounds) exactly(n int) bounds {
	if n < 0 {
		panic(fmt.Sprintf("comb: negative repetition count %d", n))
	} else if b.hasMin || b.max >= 0 {
		panic("comb: cannot combine an exact repetition count with other bounds")
	}
	return bounds{min: n, max: n, hasMin: true, exact: true}
}

// full reports whether n repetitions reach the upper limit.
func (b bounds) full(n int) bool { return b.max >= 0 && n >= b.max }

// Repeat is a parser that matches another parser repeatedly, collecting the
// values in a container of type C. Use the AtLeast, AtMost, and Exactly
// methods to constrain the number of repetitions. Setting conflicting bounds
// panics.
//
// Repetition stops at the first failure, when the upper limit is reached, or
// after a match that consumed no input. A critical failure is reported
// as-is. If fewer than the minimum number of repetitions match, the result
// is an error.
type Repeat[T any, C Container[T, C]] struct {
	p    Parser[T]
	newC Factory[C]
	b    bounds
}

// Repeated returns a parser that matches p zero or more times and discards
// the values.
func Repeated[T any](p Parser[T]) Repeat[T, Discard[T]] {
	return RepeatedInto[T, Discard[T]](p, NewDiscard[T])
}

// RepeatedList returns a parser that matches p zero or more times and
// collects the values in order.
func RepeatedList[T any](p Parser[T]) Repeat[T, List[T]] {
	return RepeatedInto[T, List[T]](p, NewList[T])
}

// RepeatedInto returns a parser that matches p zero or more times and
// collects the values in a container constructed by newC.
func RepeatedInto[T any, C Container[T, C]](p Parser[T], newC Factory[C]) Repeat[T, C] {
	return Repeat[T, C]{p: p, newC: newC, b: unbounded()}
}

// AtLeast returns a copy of r that requires at least n repetitions.
func (r Repeat[T, C]) AtLeast(n int) Repeat[T, C] { r.b = r.b.atLeast(n); return r }

// AtMost returns a copy of r that stops after n repetitions.
func (r Repeat[T, C]) AtMost(n int) Repeat[T, C] { r.b = r.b.atMost(n); return r }

// Exactly returns a copy of r that requires exactly n repetitions.
func (r Repeat[T, C]) Exactly(n int) Repeat[T, C] { r.b = r.b.exactly(n); return r }

// Attempt satisfies the Parser interface.
func (r Repeat[T, C]) Attempt(c *Cursor) (Span[C], *Error) {
	start := c.At()
	out := r.newC(r.b.min)
	var n int
	var last *Error
	for !r.b.full(n) {
		sp, err := Parse(r.p, c)
		if err != nil {
			if err.IsCritical() {
				return Span[C]{}, err
			}
			last = err
			break
		}
		out = out.Add(sp.Value)
		n++
		if sp.IsEmpty() {
			break
		}
	}
	if n < r.b.min {
		if n == 0 && last != nil {
			return Span[C]{}, last
		}
		return Span[C]{}, Errorf(c.Range(0), "not enough repetitions")
	}
	return Ate(start.Range(c.Offset()-start.Offset), out), nil
}

// Separated is a parser that matches repetitions of an item parser separated
// by matches of a separator parser, collecting the item values in a
// container of type C. It has the same bounds as Repeat.
//
// By default, a separator that is not followed by an item ends the sequence
// and is not consumed. Use CriticalAfterSep to make that a critical error
// instead.
type Separated[T, S any, C Container[T, C]] struct {
	p    Parser[T]
	sep  Parser[S]
	newC Factory[C]
	b    bounds

	critical    bool
	criticalMsg string
}

// SeparatedBy returns a parser that matches zero or more repetitions of p
// separated by sep, and collects the values of p in order.
func SeparatedBy[T, S any](p Parser[T], sep Parser[S]) Separated[T, S, List[T]] {
	return SeparatedInto[T, S, List[T]](p, sep, NewList[T])
}

// SeparatedInto returns a parser that matches zero or more repetitions of p
// separated by sep, and collects the values of p in a container constructed
// by newC.
func SeparatedInto[T, S any, C Container[T, C]](p Parser[T], sep Parser[S], newC Factory[C]) Separated[T, S, C] {
	return Separated[T, S, C]{p: p, sep: sep, newC: newC, b: unbounded()}
}

// AtLeast returns a copy of s that requires at least n items.
func (s Separated[T, S, C]) AtLeast(n int) Separated[T, S, C] { s.b = s.b.atLeast(n); return s }

// AtMost returns a copy of s that stops after n items.
func (s Separated[T, S, C]) AtMost(n int) Separated[T, S, C] { s.b = s.b.atMost(n); return s }

// Exactly returns a copy of s that requires exactly n items.
func (s Separated[T, S, C]) Exactly(n int) Separated[T, S, C] { s.b = s.b.exactly(n); return s }

// CriticalAfterSep returns a copy of s in which an item that fails to match
// after a separator is a critical error with the given message, located
// where the item was expected.
func (s Separated[T, S, C]) CriticalAfterSep(msg string) Separated[T, S, C] {
	s.critical, s.criticalMsg = true, msg
	return s
}

// Attempt satisfies the Parser interface.
func (s Separated[T, S, C]) Attempt(c *Cursor) (Span[C], *Error) {
	start := c.At()
	out := s.newC(s.b.min)
	var n int
	var last *Error
	for !s.b.full(n) {
		save := *c
		if n > 0 {
			if _, err := Parse(s.sep, c); err != nil {
				if err.IsCritical() {
					return Span[C]{}, err
				}
				last = err
				break
			}
		}
		sp, err := Parse(s.p, c)
		if err != nil {
			if err.IsCritical() {
				return Span[C]{}, err
			} else if n > 0 && s.critical {
				return Span[C]{}, err.Criticalize(s.criticalMsg)
			}
			*c = save // do not consume a trailing separator
			last = err
			break
		}
		out = out.Add(sp.Value)
		n++
		if c.At() == save.At() {
			break
		}
	}
	if n < s.b.min {
		if n == 0 && last != nil {
			return Span[C]{}, last
		}
		return Span[C]{}, Errorf(c.Range(0), "not enough repetitions")
	}
	return Ate(start.Range(c.Offset()-start.Offset), out), nil
}

// Flatten returns a parser that matches p and collects the elements of each
// of the groups p produces into a single container constructed by newC.
func Flatten[T any, S ~[]T, G ~[]S, C Container[T, C]](p Parser[G], newC Factory[C]) Parser[C] {
	return Map(p, func(groups G) C {
		var size int
		for _, g := range groups {
			size += len(g)
		}
		out := newC(size)
		for _, g := range groups {
			for _, v := range g {
				out = out.Add(v)
			}
		}
		return out
	})
}

// FlattenList is as Flatten, collecting the elements in order.
func FlattenList[T any, S ~[]T, G ~[]S](p Parser[G]) Parser[List[T]] {
	return Flatten[T, S, G, List[T]](p, NewList[T])
}

// DelimitedBy returns a parser that matches left, then middle, then right,
// and keeps only the value of middle. The span covers all three.
func DelimitedBy[L, M, R any](left Parser[L], middle Parser[M], right Parser[R]) Parser[M] {
	return ThenIgnore(IgnoreThen(left, middle), right)
}

// SurroundedBy is as DelimitedBy, with the middle parser first.
func SurroundedBy[M, L, R any](middle Parser[M], left Parser[L], right Parser[R]) Parser[M] {
	return DelimitedBy(left, middle, right)
}

// PaddedBy returns a parser that matches middle with pad on both sides, and
// keeps only the value of middle.
func PaddedBy[M, P any](middle Parser[M], pad Parser[P]) Parser[M] {
	return DelimitedBy(pad, middle, pad)
}
