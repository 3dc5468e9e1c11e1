// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package comb

// Choice returns a parser that tries each of ps in order at the same
// position, and returns the result of the first that succeeds.
//
// A critical failure of any alternative ends the search and is reported
// as-is, as is a break signal. If every alternative fails, the result is an
// error at the starting position.
func Choice[T any](ps ...Parser[T]) Parser[T] {
	return Func[T](func(c *Cursor) (Span[T], *Error) {
		for _, p := range ps {
			sp, err := Parse(p, c)
			if err == nil {
				return sp, nil
			} else if err.IsCritical() || err.IsBreak() {
				return Span[T]{}, err
			}
		}
		return Span[T]{}, Errorf(c.Range(0), "none of choices matched")
	})
}

// Or returns a parser that matches a or, failing that, b.
// It is shorthand for Choice(a, b).
func Or[T any](a, b Parser[T]) Parser[T] { return Choice(a, b) }

// SilentChoice is as Choice, for alternatives whose values are not needed.
// Use Silent to convert a parser of any type.
func SilentChoice(ps ...Parser[Unit]) Parser[Unit] { return Choice(ps...) }
