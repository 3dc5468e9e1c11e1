// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package comb

import (
	"cmp"
	"iter"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/creachadair/mds/mapset"
)

// A Container accumulates values of type T. Add returns the updated
// container, which replaces the receiver; callers must not use the receiver
// after calling Add.
type Container[T, C any] interface {
	Add(T) C
}

// A Factory constructs an empty container with room for at least capacity
// elements. The capacity is a hint and may be ignored.
type Factory[C any] func(capacity int) C

// Collect adds each value of seq to a new container constructed by newC.
func Collect[T any, C Container[T, C]](newC Factory[C], seq iter.Seq[T]) C {
	c := newC(0)
	for v := range seq {
		c = c.Add(v)
	}
	return c
}

// List is a container that keeps values in order of insertion.
type List[T any] []T

// NewList is a Factory for List[T].
func NewList[T any](capacity int) List[T] { return make(List[T], 0, capacity) }

// Add appends v to a.
func (a List[T]) Add(v T) List[T] { return append(a, v) }

// Text is a container that accumulates runes as UTF-8 text.
type Text []byte

// NewText is a Factory for Text.
func NewText(capacity int) Text { return make(Text, 0, capacity) }

// Add appends the UTF-8 encoding of r to t.
func (t Text) Add(r rune) Text { return utf8.AppendRune(t, r) }

func (t Text) String() string { return string(t) }

// Concat is a container that concatenates strings.
type Concat []string

// NewConcat is a Factory for Concat.
func NewConcat(capacity int) Concat { return make(Concat, 0, capacity) }

// Add appends s to c.
func (c Concat) Add(s string) Concat { return append(c, s) }

func (c Concat) String() string { return strings.Join(c, "") }

// Set is an unordered container of distinct values.
type Set[T comparable] mapset.Set[T]

// NewSet is a Factory for Set[T].
func NewSet[T comparable](int) Set[T] { return Set[T](mapset.New[T]()) }

// Add adds v to s.
func (s Set[T]) Add(v T) Set[T] {
	m := mapset.Set[T](s)
	m.Add(v)
	return Set[T](m)
}

// Has reports whether v is in s.
func (s Set[T]) Has(v T) bool { return mapset.Set[T](s).Has(v) }

// Len reports the number of elements in s.
func (s Set[T]) Len() int { return len(s) }

// OrderedSet is a container of distinct values kept in increasing order.
type OrderedSet[T cmp.Ordered] []T

// NewOrderedSet is a Factory for OrderedSet[T].
func NewOrderedSet[T cmp.Ordered](capacity int) OrderedSet[T] {
	return make(OrderedSet[T], 0, capacity)
}

// Add inserts v into s if it is not already present.
func (s OrderedSet[T]) Add(v T) OrderedSet[T] {
	i, ok := slices.BinarySearch(s, v)
	if ok {
		return s
	}
	return slices.Insert(s, i, v)
}

// Has reports whether v is in s.
func (s OrderedSet[T]) Has(v T) bool {
	_, ok := slices.BinarySearch(s, v)
	return ok
}

// Discard is a container that drops its values.
type Discard[T any] struct{}

// NewDiscard is a Factory for Discard[T].
func NewDiscard[T any](int) Discard[T] { return Discard[T]{} }

// Add discards v.
func (Discard[T]) Add(T) Discard[T] { return Discard[T]{} }
