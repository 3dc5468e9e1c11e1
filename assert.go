// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package comb

// Start returns a parser that matches the empty string at the beginning of
// the input.
func Start() Parser[Unit] {
	return Func[Unit](func(c *Cursor) (Span[Unit], *Error) {
		if c.Offset() != 0 {
			return Span[Unit]{}, Errorf(c.Range(0), "expected start of input")
		}
		return Ate(c.Range(0), Unit{}), nil
	})
}

// End returns a parser that matches the empty string at the end of the
// input.
func End() Parser[Unit] {
	return Func[Unit](func(c *Cursor) (Span[Unit], *Error) {
		if !c.AtEnd() {
			return Span[Unit]{}, Errorf(c.Range(0), "expected end of input")
		}
		return Ate(c.Range(0), Unit{}), nil
	})
}

// Empty returns a parser that always succeeds without consuming input.
func Empty() Parser[Unit] {
	return Func[Unit](func(c *Cursor) (Span[Unit], *Error) {
		return Ate(c.Range(0), Unit{}), nil
	})
}

// Lookahead returns a parser that succeeds if p matches, but consumes no
// input. The value is that of p.
func Lookahead[T any](p Parser[T]) Parser[T] {
	return Func[T](func(c *Cursor) (Span[T], *Error) {
		look := *c
		sp, err := Parse(p, &look)
		if err != nil {
			return Span[T]{}, err
		}
		return Ate(c.Range(0), sp.Value), nil
	})
}

// Not returns a parser that succeeds without consuming input if p fails for
// any reason, and fails at the range p matched if p succeeds.
func Not[T any](p Parser[T]) Parser[Unit] {
	return Func[Unit](func(c *Cursor) (Span[Unit], *Error) {
		look := *c
		sp, err := Parse(p, &look)
		if err == nil {
			return Span[Unit]{}, Errorf(sp.Range, "parser should not have matched")
		}
		return Ate(c.Range(0), Unit{}), nil
	})
}

// Fail returns a parser that never succeeds. If p matches, the parser fails
// at the range p matched. If p fails critically, that failure is reported.
// Otherwise the parser reports a break signal at the starting position,
// which stops enclosing repetitions and choices without being critical.
func Fail[T any](p Parser[T]) Parser[Unit] {
	return Func[Unit](func(c *Cursor) (Span[Unit], *Error) {
		start := c.Range(0)
		sp, err := Parse(p, c)
		if err == nil {
			return Span[Unit]{}, Errorf(sp.Range, "parser should not have matched")
		} else if err.IsCritical() {
			return Span[Unit]{}, err
		}
		return Span[Unit]{}, Break(start)
	})
}

// Full returns a parser that matches p against the whole input. It fails if
// it is not attempted at the start of the input, or if p does not consume
// all of it.
func Full[T any](p Parser[T]) Parser[T] {
	return Func[T](func(c *Cursor) (Span[T], *Error) {
		if c.Offset() > 0 {
			return Span[T]{}, Errorf(c.Range(0), "expected start of input")
		}
		sp, err := Parse(p, c)
		if err != nil {
			return Span[T]{}, err
		}
		if !c.AtEnd() {
			_, n := c.PeekRune()
			return Span[T]{}, Errorf(c.Range(max(n, 1)), "unexpected symbol")
		}
		return sp, nil
	})
}
