// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package comb_test

import (
	"slices"
	"testing"

	"github.com/creachadair/comb"
	"github.com/google/go-cmp/cmp"
)

func TestContainers(t *testing.T) {
	t.Run("List", func(t *testing.T) {
		got := comb.Collect(comb.NewList[int], slices.Values([]int{3, 1, 3}))
		if diff := cmp.Diff(comb.List[int]{3, 1, 3}, got); diff != "" {
			t.Errorf("List (-want, +got):\n%s", diff)
		}
	})
	t.Run("Text", func(t *testing.T) {
		got := comb.Collect(comb.NewText, slices.Values([]rune("héllo, 世界")))
		if got.String() != "héllo, 世界" {
			t.Errorf("Text: got %q", got)
		}
	})
	t.Run("Concat", func(t *testing.T) {
		got := comb.Collect(comb.NewConcat, slices.Values([]string{"ab", "", "cd"}))
		if got.String() != "abcd" {
			t.Errorf("Concat: got %q", got)
		}
	})
	t.Run("Set", func(t *testing.T) {
		got := comb.Collect(comb.NewSet[string], slices.Values([]string{"a", "b", "a"}))
		if got.Len() != 2 || !got.Has("a") || !got.Has("b") || got.Has("c") {
			t.Errorf("Set: got %v", got)
		}
	})
	t.Run("OrderedSet", func(t *testing.T) {
		got := comb.Collect(comb.NewOrderedSet[int], slices.Values([]int{5, 2, 9, 2, 5, 1}))
		if diff := cmp.Diff(comb.OrderedSet[int]{1, 2, 5, 9}, got); diff != "" {
			t.Errorf("OrderedSet (-want, +got):\n%s", diff)
		}
		if !got.Has(9) || got.Has(3) {
			t.Errorf("OrderedSet.Has: wrong result for %v", got)
		}
	})
	t.Run("Discard", func(t *testing.T) {
		got := comb.Collect(comb.NewDiscard[int], slices.Values([]int{1, 2, 3}))
		if got != (comb.Discard[int]{}) {
			t.Errorf("Discard: got %v", got)
		}
	})
	t.Run("Empty", func(t *testing.T) {
		got := comb.Collect(comb.NewList[int], slices.Values[[]int](nil))
		if len(got) != 0 {
			t.Errorf("List: got %v, want empty", got)
		}
	})
}
