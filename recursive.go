// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package comb

import (
	"sync"
	"sync/atomic"
)

// Late is a parser whose definition is supplied after it is constructed, so
// that it can be used to build grammars that refer to themselves.
//
// A Late must be defined exactly once, before it is used to parse. Define is
// not safe for concurrent use; once defined, a Late may be shared freely.
// Use Shared when definition may race with use.
type Late[T any] struct {
	p Parser[T]
}

// Declare returns a new undefined Late parser.
func Declare[T any]() *Late[T] { return new(Late[T]) }

// Define sets the parser l stands for. It panics if l is already defined.
func (l *Late[T]) Define(p Parser[T]) {
	if l.p != nil {
		panic("comb: parser is already defined")
	}
	l.p = p
}

// IsDefined reports whether l has been defined.
func (l *Late[T]) IsDefined() bool { return l.p != nil }

// Attempt satisfies the Parser interface. It panics if l is not defined.
func (l *Late[T]) Attempt(c *Cursor) (Span[T], *Error) {
	if l.p == nil {
		panic("comb: parser used before it was defined")
	}
	return Parse(l.p, c)
}

// Recursive returns a parser defined by f, which is passed a parser that
// stands for the result. This allows a grammar rule to refer to itself:
//
//	seq := comb.Recursive(func(seq comb.Parser[string]) comb.Parser[string] {
//	   return comb.CollectString(comb.Then(text.Just("12"), comb.OrNot(seq)))
//	})
//
// The parser passed to f must not be used to parse until f returns.
func Recursive[T any](f func(Parser[T]) Parser[T]) Parser[T] {
	l := Declare[T]()
	l.Define(f(l))
	return l
}

// Shared is as Late, but may be defined and used concurrently by multiple
// goroutines. Its definition is stored once, atomically.
type Shared[T any] struct {
	p atomic.Pointer[Parser[T]]
}

// DeclareShared returns a new undefined Shared parser.
func DeclareShared[T any]() *Shared[T] { return new(Shared[T]) }

// Define sets the parser s stands for. It panics if s is already defined.
func (s *Shared[T]) Define(p Parser[T]) {
	if !s.p.CompareAndSwap(nil, &p) {
		panic("comb: parser is already defined")
	}
}

// IsDefined reports whether s has been defined.
func (s *Shared[T]) IsDefined() bool { return s.p.Load() != nil }

// Attempt satisfies the Parser interface. It panics if s is not defined.
func (s *Shared[T]) Attempt(c *Cursor) (Span[T], *Error) {
	p := s.p.Load()
	if p == nil {
		panic("comb: parser used before it was defined")
	}
	return Parse(*p, c)
}

// RecursiveShared is as Recursive, but the resulting parser is a Shared.
func RecursiveShared[T any](f func(Parser[T]) Parser[T]) Parser[T] {
	s := DeclareShared[T]()
	s.Define(f(s))
	return s
}

// Lazy returns a parser that calls build the first time it is used, and
// thereafter parses with the parser build returned. It is safe for
// concurrent use, and is meant for long-lived grammars held in package
// variables.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	get := sync.OnceValue(build)
	return Func[T](func(c *Cursor) (Span[T], *Error) {
		return Parse(get(), c)
	})
}
