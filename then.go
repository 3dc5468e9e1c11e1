// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package comb

// Then returns a parser that matches a followed by b, whose value is the pair
// of their values.
func Then[T, U any](a Parser[T], b Parser[U]) Parser[Pair[T, U]] {
	return Func[Pair[T, U]](func(c *Cursor) (Span[Pair[T, U]], *Error) {
		sa, err := Parse(a, c)
		if err != nil {
			return Span[Pair[T, U]]{}, err
		}
		sb, err := Parse(b, c)
		if err != nil {
			return Span[Pair[T, U]]{}, err
		}
		return Combine(sa, sb), nil
	})
}

// ThenIgnore returns a parser that matches a followed by b, and keeps only
// the value of a. The span covers both.
func ThenIgnore[T, U any](a Parser[T], b Parser[U]) Parser[T] {
	return Map(Then(a, b), func(p Pair[T, U]) T { return p.First })
}

// IgnoreThen returns a parser that matches a followed by b, and keeps only
// the value of b. The span covers both.
func IgnoreThen[T, U any](a Parser[T], b Parser[U]) Parser[U] {
	return Map(Then(a, b), func(p Pair[T, U]) U { return p.Second })
}

// FollowedBy returns a parser that matches a, then requires b to match at
// the position after a. The input matched by b is not consumed.
func FollowedBy[T, U any](a Parser[T], b Parser[U]) Parser[T] {
	return Func[T](func(c *Cursor) (Span[T], *Error) {
		sa, err := Parse(a, c)
		if err != nil {
			return Span[T]{}, err
		}
		look := *c
		if _, err := Parse(b, &look); err != nil {
			return Span[T]{}, err
		}
		return sa, nil
	})
}

// NotFollowedBy returns a parser that matches a, then requires b not to
// match at the position after a. If b succeeds, the result is an error at
// the range b matched. A critical failure of b is reported as-is.
func NotFollowedBy[T, U any](a Parser[T], b Parser[U]) Parser[T] {
	return Func[T](func(c *Cursor) (Span[T], *Error) {
		sa, err := Parse(a, c)
		if err != nil {
			return Span[T]{}, err
		}
		look := *c
		sb, err := Parse(b, &look)
		if err == nil {
			return Span[T]{}, Errorf(sb.Range, "parser should not have matched")
		} else if err.IsCritical() {
			return Span[T]{}, err
		}
		return sa, nil
	})
}
