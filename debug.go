// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package comb

import "github.com/tliron/commonlog"

var log = commonlog.GetLogger("comb")

// A DebugEvent reports the progress of a parser wrapped by Debug.
// Each attempt produces two events: one with Input set before the attempt,
// and one with Done set after it.
type DebugEvent[T any] struct {
	Input *Cursor // the cursor before the attempt; do not modify

	Done   bool    // whether the attempt has finished
	Result Span[T] // the result, if Done and Err == nil
	Err    *Error  // the error, if Done and the attempt failed
}

// Debug returns a parser that matches p, and calls f before and after each
// attempt.
func Debug[T any](p Parser[T], f func(DebugEvent[T])) Parser[T] {
	return Func[T](func(c *Cursor) (Span[T], *Error) {
		before := *c
		f(DebugEvent[T]{Input: &before})
		sp, err := Parse(p, c)
		f(DebugEvent[T]{Input: &before, Done: true, Result: sp, Err: err})
		return sp, err
	})
}

// Trace returns a parser that matches p, and logs each attempt and its
// outcome under the given name at debug level, to the "comb" logger.
func Trace[T any](p Parser[T], name string) Parser[T] {
	return Debug(p, func(e DebugEvent[T]) {
		if !log.AllowLevel(commonlog.Debug) {
			return
		} else if !e.Done {
			log.Debugf("%s: attempt at %v", name, e.Input.At())
		} else if e.Err != nil {
			log.Debugf("%s: failed: %v", name, e.Err)
		} else {
			log.Debugf("%s: matched %v", name, e.Result.Range)
		}
	})
}
