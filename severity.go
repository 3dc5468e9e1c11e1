// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package comb

// CriticalParser is a parser that makes every failure of another parser
// critical. See Critical and CriticalExpectation.
type CriticalParser[T any] struct {
	p       Parser[T]
	msg     string
	inherit bool
	noEOF   bool
}

// Critical returns a parser that matches p, and makes any failure of p a
// critical error with the given message. If no input remained when p was
// attempted, the message is "unexpected end of input" instead, unless the
// NoEOFMessage method is used.
func Critical[T any](p Parser[T], msg string) CriticalParser[T] {
	return CriticalParser[T]{p: p, msg: msg}
}

// CriticalExpectation is as Critical, but the message of the critical error
// is the atomic message of the underlying failure if it has one, or
// otherwise the description of what it expected.
func CriticalExpectation[T any](p Parser[T]) CriticalParser[T] {
	return CriticalParser[T]{p: p, inherit: true}
}

// NoEOFMessage returns a copy of q that does not substitute a message when
// no input remains.
func (q CriticalParser[T]) NoEOFMessage() CriticalParser[T] { q.noEOF = true; return q }

// Attempt satisfies the Parser interface.
func (q CriticalParser[T]) Attempt(c *Cursor) (Span[T], *Error) {
	atEOF := c.AtEnd()
	sp, err := Parse(q.p, c)
	if err == nil {
		return sp, nil
	}
	msg := q.msg
	if atEOF && !q.noEOF {
		msg = "unexpected end of input"
	} else if q.inherit {
		if am, ok := err.AtomicMessage(); ok {
			msg = am
		} else {
			msg = err.Expected.String()
		}
	}
	return Span[T]{}, err.Criticalize(msg)
}

// AtomicErr returns a parser that matches p, and replaces the message of any
// failure of p with msg. The message is atomic, so enclosing AtomicErr and
// CustomErr parsers do not replace it; if the failure already carries an
// atomic message, that message is kept.
func AtomicErr[T any](p Parser[T], msg string) Parser[T] {
	return Func[T](func(c *Cursor) (Span[T], *Error) {
		sp, err := Parse(p, c)
		if err == nil {
			return sp, nil
		} else if !err.IsAtomic() {
			err.Expected = Expected(msg)
		}
		return Span[T]{}, err.WithAtomic(msg)
	})
}

// CustomErr returns a parser that matches p, and replaces the expectation of
// any failure of p with msg. Critical and atomic annotations of the failure
// are kept, and take precedence over msg when the error is reported.
func CustomErr[T any](p Parser[T], msg string) Parser[T] {
	return Func[T](func(c *Cursor) (Span[T], *Error) {
		sp, err := Parse(p, c)
		if err == nil {
			return sp, nil
		}
		err.Expected = Expected(msg)
		return Span[T]{}, err
	})
}
