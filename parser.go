// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package comb

// A Parser recognizes a value of type T at the front of its input.
//
// Attempt is the inner step of parsing. It may advance its cursor even when
// it fails, so callers must not invoke it directly; use Parse, which runs
// Attempt on a copy of the cursor and commits only on success.
type Parser[T any] interface {
	Attempt(*Cursor) (Span[T], *Error)
}

// Unit is the value type of parsers whose result carries no information.
type Unit = struct{}

// Func adapts a function to the Parser interface. The function is called as
// the inner attempt, so it may leave its cursor partially advanced.
type Func[T any] func(*Cursor) (Span[T], *Error)

// Attempt satisfies the Parser interface.
func (f Func[T]) Attempt(c *Cursor) (Span[T], *Error) { return f(c) }

// Parse runs p at the current position of c. On success, c is advanced past
// the span of the result. On failure, c is unchanged.
func Parse[T any](p Parser[T], c *Cursor) (Span[T], *Error) {
	try := *c
	sp, err := p.Attempt(&try)
	if err != nil {
		return Span[T]{}, err
	}
	c.apply(sp.Range)
	return sp, nil
}

// ParseString parses text with p. The locations reported in the result and
// in errors have no source.
func ParseString[T any](p Parser[T], text string) (Span[T], error) {
	return ParseFile(p, text, FileID{})
}

// ParseFile parses text, the contents of the specified source, with p.
func ParseFile[T any](p Parser[T], text string, file FileID) (Span[T], error) {
	return run(p, NewCursor(text, file))
}

// ParseWithContext parses text, the contents of the specified source, with p.
// The context value ctx is available to parsers via GetContext.
func ParseWithContext[T any](p Parser[T], text string, file FileID, ctx any) (Span[T], error) {
	return run(p, NewCursorWithContext(text, file, ctx))
}

func run[T any](p Parser[T], c *Cursor) (Span[T], error) {
	sp, err := Parse(p, c)
	if err != nil {
		return sp, err
	}
	return sp, nil
}
