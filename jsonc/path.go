// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsonc

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/creachadair/comb"
	"github.com/creachadair/comb/internal/escape"
	"github.com/creachadair/comb/text"
	"go4.org/mem"
)

// Path traverses a sequential path through the structure of a value starting
// at v, and returns the value it reaches. In case of error, Path returns v
// along with the error. Before each step, a *Member or *Document is replaced
// by the value it holds.
//
// Each element of path is one of:
//
//   - a string, which selects the *Member of an object with that key;
//   - an int, which selects an element of an array, where negative indices
//     count backward from the end (-1 is the last element);
//   - a func(Value) (Value, error), whose result is the next value.
//
// Errors reported by a function element are returned unchanged.
func Path(v Value, path ...any) (Value, error) {
	cur := v
	for _, elt := range path {
		next, err := step(holds(cur), elt)
		if err != nil {
			return v, err
		}
		cur = next
	}
	return cur, nil
}

// holds returns the value held by a member or a document, or else v.
func holds(v Value) Value {
	switch t := v.(type) {
	case *Member:
		return t.Value
	case *Document:
		return t.Value
	}
	return v
}

func step(v Value, elt any) (Value, error) {
	switch t := elt.(type) {
	case string:
		if o, ok := v.(*Object); ok {
			if m := o.Find(t); m != nil {
				return m, nil
			}
			return nil, fmt.Errorf("key %q not found", t)
		}
	case int:
		if a, ok := v.(*Array); ok {
			i := t
			if i < 0 {
				i += len(a.Values)
			}
			if i < 0 || i >= len(a.Values) {
				return nil, fmt.Errorf("index %d out of range for %d elements", t, len(a.Values))
			}
			return a.Values[i], nil
		}
	case func(Value) (Value, error):
		return t(v)
	default:
		return nil, fmt.Errorf("invalid path element %T", elt)
	}
	return nil, fmt.Errorf("cannot select %#v from %T", elt, v)
}

// ParsePath parses a path expression into elements suitable for Path.
//
// A path is a sequence of steps. The step ".name" selects an object key,
// where name is a run of letters, digits, "_", and "-". The step `["name"]`
// selects a key given as a JSON string, and "[n]" selects an array index,
// possibly negative. The first step may omit its leading dot. The empty path
// and "." select the value itself.
//
// For example, `servers[0].ports[-1]` selects the last port of the first
// server.
func ParsePath(s string) ([]any, error) {
	if s == "." {
		return nil, nil
	}
	sp, err := comb.ParseString(pathExpr, s)
	if err != nil {
		var perr *comb.Error
		if errors.As(err, &perr) {
			return nil, fmt.Errorf("invalid path %q at offset %d: %s", s, perr.At.Start.Offset, perr.Message())
		}
		return nil, err
	}
	return sp.Value, nil
}

var pathExpr = comb.Lazy(newPathExpr)

func newPathExpr() comb.Parser[[]any] {
	name := comb.Map(comb.CollectString(comb.Parser[comb.Discard[rune]](
		comb.Repeated(text.Filter(isNameRune)).AtLeast(1),
	)), func(s string) any { return s })

	dotted := comb.IgnoreThen(text.Char('.'),
		comb.Parser[any](comb.Critical(name, "expected a key after '.'")))

	quoted := comb.AndThenOrCritical(stringToken(), func(s string) (any, error) {
		key, err := escape.Unquote(mem.S(s[1 : len(s)-1]))
		return key, err
	})
	index := comb.AndThenOrCritical(comb.CollectString(comb.Then(
		comb.OrNot(text.Char('-')),
		comb.Parser[comb.Discard[rune]](comb.Repeated(text.Digit(10)).AtLeast(1)),
	)), func(s string) (any, error) {
		n, err := strconv.Atoi(s)
		return n, err
	})
	bracket := comb.DelimitedBy(
		text.Char('['),
		comb.Parser[any](comb.Critical(comb.Or(quoted, index), "expected a string or an index")),
		comb.Parser[rune](comb.Critical(text.Char(']'), "expected ']'")),
	)

	steps := comb.Then(comb.OrNot(name), comb.Parser[comb.List[any]](comb.RepeatedList(comb.Or(dotted, bracket))))
	return comb.Full(comb.Map(steps, func(p comb.Pair[comb.Opt[any], comb.List[any]]) []any {
		var out []any
		if p.First.OK {
			out = append(out, p.First.Value)
		}
		return append(out, p.Second...)
	}))
}

func isNameRune(r rune) bool {
	return r == '_' || r == '-' || '0' <= r && r <= '9' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}
