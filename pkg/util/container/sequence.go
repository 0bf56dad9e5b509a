// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package container holds what the sequence containers in list and vector
// have in common: the Sequence contract, the range error they report, and a
// few helpers that work on any Sequence.
package container

import "fmt"

// Sequence is an ordered run of elements that can be measured, emptied and
// read back in order. Both list.List and vector.Vector implement it.
type Sequence[T any] interface {
	// Len returns the number of live elements.
	Len() int
	// Empty reports whether Len is zero.
	Empty() bool
	// Clear removes every element.
	Clear()
	// Values returns the elements in order in a newly allocated slice.
	Values() []T

	fmt.Stringer
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b Sequence[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T, U any](a Sequence[T], b Sequence[U], eq func(T, U) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	av, bv := a.Values(), b.Values()
	for i := range av {
		if !eq(av[i], bv[i]) {
			return false
		}
	}
	return true
}

// IsSorted reports whether s is in ascending order according to cmp.
func IsSorted[T any](s Sequence[T], cmp func(a, b T) int) bool {
	vals := s.Values()
	for i := 1; i < len(vals); i++ {
		if cmp(vals[i], vals[i-1]) < 0 {
			return false
		}
	}
	return true
}
