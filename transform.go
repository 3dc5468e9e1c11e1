// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package comb

// Map returns a parser that matches p and replaces its value with f applied
// to that value.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return Func[U](func(c *Cursor) (Span[U], *Error) {
		sp, err := Parse(p, c)
		if err != nil {
			return Span[U]{}, err
		}
		return MapSpan(sp, f), nil
	})
}

// To returns a parser that matches p and replaces its value with v.
func To[T, U any](p Parser[T], v U) Parser[U] {
	return Map(p, func(T) U { return v })
}

// Silent returns a parser that matches p and discards its value.
func Silent[T any](p Parser[T]) Parser[Unit] { return To(p, Unit{}) }

// MapText returns a parser that matches p and replaces its value with f
// applied to the source text p matched.
func MapText[T, U any](p Parser[T], f func(string) U) Parser[U] {
	return Func[U](func(c *Cursor) (Span[U], *Error) {
		sp, err := Parse(p, c)
		if err != nil {
			return Span[U]{}, err
		}
		return Replace(sp, f(c.Extract(sp.Range))), nil
	})
}

// CollectString returns a parser that matches p and replaces its value with
// the source text p matched.
func CollectString[T any](p Parser[T]) Parser[string] {
	return MapText(p, func(s string) string { return s })
}

// A TextValue is the source text matched by a parser, with its value.
type TextValue[T any] struct {
	Text  string
	Value T
}

// CollectStringWithValue returns a parser that matches p and pairs its value
// with the source text p matched.
func CollectStringWithValue[T any](p Parser[T]) Parser[TextValue[T]] {
	return Func[TextValue[T]](func(c *Cursor) (Span[TextValue[T]], *Error) {
		sp, err := Parse(p, c)
		if err != nil {
			return Span[TextValue[T]]{}, err
		}
		return Replace(sp, TextValue[T]{Text: c.Extract(sp.Range), Value: sp.Value}), nil
	})
}

// Spanned returns a parser that matches p and whose value is the complete
// span p produced.
func Spanned[T any](p Parser[T]) Parser[Span[T]] {
	return Func[Span[T]](func(c *Cursor) (Span[Span[T]], *Error) {
		sp, err := Parse(p, c)
		if err != nil {
			return Span[Span[T]]{}, err
		}
		return Replace(sp, sp), nil
	})
}

// An Opt is an optional value. OK is false when the value is absent.
type Opt[T any] struct {
	Value T
	OK    bool
}

// OrNot returns a parser that matches p if possible. If p fails
// non-critically, OrNot succeeds with an absent value and consumes nothing.
func OrNot[T any](p Parser[T]) Parser[Opt[T]] {
	return Func[Opt[T]](func(c *Cursor) (Span[Opt[T]], *Error) {
		sp, err := Parse(p, c)
		if err == nil {
			return Replace(sp, Opt[T]{Value: sp.Value, OK: true}), nil
		} else if err.IsCritical() {
			return Span[Opt[T]]{}, err
		}
		return Ate(c.Range(0), Opt[T]{}), nil
	})
}

// AndThen returns a parser that matches p and then calls f with the result.
// If f reports an error, the parser fails with that error.
func AndThen[T, U any](p Parser[T], f func(Span[T]) (U, *Error)) Parser[U] {
	return Func[U](func(c *Cursor) (Span[U], *Error) {
		sp, err := Parse(p, c)
		if err != nil {
			return Span[U]{}, err
		}
		v, err := f(sp)
		if err != nil {
			return Span[U]{}, err
		}
		return Replace(sp, v), nil
	})
}

// AndThenOrCritical returns a parser that matches p and replaces its value
// with f applied to that value. If f reports an error, the parser fails with
// a critical error at the range p matched, whose message is the text of the
// error from f.
func AndThenOrCritical[T, U any](p Parser[T], f func(T) (U, error)) Parser[U] {
	return AndThen(p, func(sp Span[T]) (U, *Error) {
		v, err := f(sp.Value)
		if err != nil {
			return v, Errorf(sp.Range, "an error was returned").Criticalize(err.Error())
		}
		return v, nil
	})
}

// AndThenOrErr is as AndThenOrCritical, but an error from f is recoverable.
func AndThenOrErr[T, U any](p Parser[T], f func(T) (U, error)) Parser[U] {
	return AndThen(p, func(sp Span[T]) (U, *Error) {
		v, err := f(sp.Value)
		if err != nil {
			return v, Errorf(sp.Range, "%s", err.Error())
		}
		return v, nil
	})
}

// TryMap returns a parser that matches p and replaces its value with f
// applied to that value. If f reports false, the parser fails.
func TryMap[T, U any](p Parser[T], f func(T) (U, bool)) Parser[U] {
	return AndThen(p, func(sp Span[T]) (U, *Error) {
		v, ok := f(sp.Value)
		if !ok {
			return v, Errorf(sp.Range, "failed to map")
		}
		return v, nil
	})
}

// Validator is a parser that matches another parser and then checks its
// value with a predicate.
type Validator[T any] struct {
	p        Parser[T]
	pred     func(T) bool
	msg      string
	critical bool
}

// Validate returns a parser that matches p and fails if pred reports false
// for its value. The error covers the input p matched.
func Validate[T any](p Parser[T], pred func(T) bool) Validator[T] {
	return Validator[T]{p: p, pred: pred, msg: "validator failed"}
}

// WithMessage returns a copy of v that reports msg when the predicate fails.
func (v Validator[T]) WithMessage(msg string) Validator[T] { v.msg = msg; return v }

// Critical returns a copy of v whose predicate failures are critical.
func (v Validator[T]) Critical() Validator[T] { v.critical = true; return v }

// Attempt satisfies the Parser interface.
func (v Validator[T]) Attempt(c *Cursor) (Span[T], *Error) {
	start := c.At()
	sp, err := Parse(v.p, c)
	if err != nil {
		return sp, err
	}
	if !v.pred(sp.Value) {
		if v.critical {
			return Span[T]{}, Errorf(start.Range(sp.Len), "%s", v.msg).Criticalize(v.msg)
		}
		return Span[T]{}, Errorf(start.Range(sp.Len), "%s", v.msg)
	}
	return sp, nil
}

// ValidateOrCritical returns a parser that matches p and checks its value
// with f. If f reports an error, the parser fails with a critical error at
// the range p matched, whose message is the text of the error from f.
func ValidateOrCritical[T any](p Parser[T], f func(T) error) Parser[T] {
	return AndThen(p, func(sp Span[T]) (T, *Error) {
		if err := f(sp.Value); err != nil {
			return sp.Value, Errorf(sp.Range, "validation failed").Criticalize(err.Error())
		}
		return sp.Value, nil
	})
}
