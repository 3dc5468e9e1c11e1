// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package comb implements parser combinators for textual grammars.
//
// # Parsers
//
// A Parser[T] recognizes a value of type T at the front of its input, and
// reports the value together with the Range of source text it matched as a
// Span[T]. Parsers are built by combining smaller parsers, starting from the
// leaf parsers of the text package:
//
//	digit := text.Digit(10)
//	number := comb.CollectString(comb.RepeatedList(digit).AtLeast(1))
//	list := comb.SeparatedBy(number, text.Char(','))
//
// To run a parser over a complete input, call ParseString or ParseFile:
//
//	sp, err := comb.ParseString(comb.Full(list), "1,22,333")
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//	log.Printf("Numbers: %q", sp.Value)
//
// # Backtracking
//
// Parsing proceeds by recursive descent over a Cursor. When a parser fails,
// the cursor is left where it was before the parser was attempted, so an
// enclosing combinator may try something else at the same position. Parser
// implementations must run their children with Parse, which enforces this.
//
// # Errors
//
// A failed parse reports an error of concrete type *comb.Error, which gives
// the range where the failure occurred and a description of what was
// expected. By default a failure is recoverable: Choice tries the next
// alternative, and repetitions stop. A critical failure is not recoverable,
// and is reported up through every enclosing combinator. Use Critical and
// CriticalExpectation to commit to a parse once enough input has been seen,
// so that the error refers to the real problem rather than a later
// alternative:
//
//	object := comb.DelimitedBy(
//	   text.Char('{'),
//	   members,
//	   comb.Critical(text.Char('}'), "unclosed object"),
//	)
//
// The table below summarizes which combinators discard a recoverable
// failure of their children:
//
//	Combinator          | On recoverable failure
//	------------------- | ------------------------------------------
//	Choice, Or          | try the next alternative
//	Repeat, Separated   | stop, and check the minimum count
//	OrNot               | succeed with an absent value
//	Not, NotFollowedBy  | succeed
//	(all others)        | report the failure
//
// An atomic message, set by AtomicErr, replaces the description of a
// failure and is not replaced by enclosing combinators.
//
// # Recursion
//
// Grammars that refer to themselves are built with Recursive, or with a Late
// parser from Declare that is defined after use:
//
//	value := comb.Declare[Value]()
//	array := comb.Map(comb.DelimitedBy(text.Char('['), comb.SeparatedBy(value, comma), text.Char(']')), newArray)
//	value.Define(comb.Choice(atom, array))
//
// Grammars stored in package variables can be constructed on first use with
// Lazy.
package comb
