// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package comb

// ContextParser is a parser that yields the context value of the parse.
// See GetContext.
type ContextParser[C any] struct {
	notCritical bool
}

// GetContext returns a parser that consumes no input, and whose value is the
// context value passed to ParseWithContext. If no context value was given,
// or it does not have type C, the parser fails critically unless the
// NotCritical method is used.
func GetContext[C any]() ContextParser[C] { return ContextParser[C]{} }

// NotCritical returns a copy of g whose failures are recoverable.
func (g ContextParser[C]) NotCritical() ContextParser[C] { g.notCritical = true; return g }

// Attempt satisfies the Parser interface.
func (g ContextParser[C]) Attempt(c *Cursor) (Span[C], *Error) {
	var msg string
	if c.ctx == nil {
		msg = "context value is missing"
	} else if v, ok := c.ctx.(C); ok {
		return Ate(c.Range(0), v), nil
	} else {
		msg = "context value has the wrong type"
	}
	err := Errorf(c.Range(0), "%s", msg)
	if !g.notCritical {
		err.Criticalize(msg)
	}
	return Span[C]{}, err
}
