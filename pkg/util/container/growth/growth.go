// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package growth holds the capacity policy of contiguous buffers.
//
// A full buffer doubles, so n appends cost O(n) copies in total and the
// unused tail never exceeds the live part.
package growth

import "math"

// NextCapacity returns the capacity a full buffer of the given capacity grows
// to: 1 for an empty buffer, twice the current capacity otherwise. The result
// saturates at math.MaxInt.
func NextCapacity(current int) int {
	if current <= 0 {
		return 1
	}
	if current > math.MaxInt/2 {
		return math.MaxInt
	}
	return 2 * current
}

// Reallocations returns how many times a buffer that starts empty and grows
// with NextCapacity is reallocated while n elements are appended to it.
func Reallocations(n int) int {
	var count int
	for c := 0; c < n; c = NextCapacity(c) {
		count++
	}
	return count
}
