// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package ordered provides the natural ordering used by the containers'
// generic Sort and Merge helpers.
package ordered

import "golang.org/x/exp/constraints"

// Compare returns -1, 0 or +1 depending on whether a is less than, equal to
// or greater than b. A NaN is considered less than any other value and equal
// to another NaN, which keeps float orderings total.
func Compare[T constraints.Ordered](a, b T) int {
	aNaN, bNaN := isNaN(a), isNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN || a < b:
		return -1
	case bNaN || a > b:
		return +1
	}
	return 0
}

// Less reports whether a sorts before b under Compare.
func Less[T constraints.Ordered](a, b T) bool {
	return Compare(a, b) < 0
}

func isNaN[T constraints.Ordered](x T) bool {
	// Only NaN is not equal to itself.
	return x != x
}
