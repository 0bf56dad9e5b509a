// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package container

import "github.com/emirpasic/gods/containers"

// AsGodsContainer exposes s through the untyped gods Container interface so
// that gods helpers (containers.GetSortedValues and friends) can consume it.
// The returned value is a view: Clear empties s.
func AsGodsContainer[T any](s Sequence[T]) containers.Container {
	return godsContainer[T]{s: s}
}

type godsContainer[T any] struct {
	s Sequence[T]
}

var _ containers.Container = godsContainer[int]{}

func (g godsContainer[T]) Empty() bool {
	return g.s.Empty()
}

func (g godsContainer[T]) Size() int {
	return g.s.Len()
}

func (g godsContainer[T]) Clear() {
	g.s.Clear()
}

func (g godsContainer[T]) Values() []interface{} {
	vals := g.s.Values()
	res := make([]interface{}, len(vals))
	for i, v := range vals {
		res[i] = v
	}
	return res
}

func (g godsContainer[T]) String() string { return g.s.String() }
