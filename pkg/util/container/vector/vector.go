// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package vector implements a generic dynamic array over one contiguous
// buffer.
//
// Unlike a bare Go slice, a Vector keeps its capacity under explicit control:
// the buffer is reallocated only when an insertion needs more room (doubling,
// see package growth) or when Reserve asks for more, and it only shrinks
// through ShrinkToFit.
//
// A Vector is not safe for concurrent use.
package vector

import (
	"github.com/cockroachdb/containers/pkg/util/buildutil"
	"github.com/cockroachdb/containers/pkg/util/container"
	"github.com/cockroachdb/containers/pkg/util/container/growth"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// Vector is a dynamic array of T. The zero value is an empty vector with no
// buffer.
type Vector[T any] struct {
	// buf has one slot per unit of capacity; the first size slots are live
	// and the rest hold zero values. buf is nil iff the capacity is zero.
	buf  []T
	size int
}

var _ container.Sequence[int] = (*Vector[int])(nil)

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int { return len(v.buf) }

// Empty reports whether the vector has no elements.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// realloc moves the live elements into a new buffer of exactly n slots.
func (v *Vector[T]) realloc(n int) {
	var buf []T
	if n > 0 {
		buf = make([]T, n)
		copy(buf, v.buf[:v.size])
	}
	v.buf = buf
}

// growIfFull makes room for one more element.
func (v *Vector[T]) growIfFull() {
	if v.size == len(v.buf) {
		v.realloc(growth.NextCapacity(len(v.buf)))
	}
}

// Reserve ensures the capacity is at least n. If it is not, the buffer is
// reallocated to exactly n slots. Reserve never lowers the capacity.
func (v *Vector[T]) Reserve(n int) {
	if n <= len(v.buf) {
		return
	}
	v.realloc(n)
	v.assertValid()
}

// ShrinkToFit reallocates the buffer to exactly Len slots.
func (v *Vector[T]) ShrinkToFit() {
	if len(v.buf) == v.size {
		return
	}
	v.realloc(v.size)
	v.assertValid()
}

// PushBack appends x, doubling the capacity first if the vector is full.
func (v *Vector[T]) PushBack(x T) {
	v.growIfFull()
	v.buf[v.size] = x
	v.size++
}

// PopBack removes and returns the last element. It panics with a range error
// if the vector is empty.
func (v *Vector[T]) PopBack() T {
	if v.size == 0 {
		panic(container.EmptyAccess("pop back"))
	}
	v.size--
	x := v.buf[v.size]
	var zero T
	v.buf[v.size] = zero
	return x
}

// Insert inserts x at pos, shifting the elements at and after pos one slot
// toward the end. pos must lie in [0, Len()]; inserting at Len() appends.
func (v *Vector[T]) Insert(pos int, x T) error {
	if pos < 0 || pos > v.size {
		return container.InsertOutOfRange("insert", pos, v.size)
	}
	v.growIfFull()
	copy(v.buf[pos+1:v.size+1], v.buf[pos:v.size])
	v.buf[pos] = x
	v.size++
	return nil
}

// Erase removes the element at pos, shifting the elements after it one slot
// toward the front. pos must lie in [0, Len()).
func (v *Vector[T]) Erase(pos int) error {
	if pos < 0 || pos >= v.size {
		return container.IndexOutOfRange("erase", pos, v.size)
	}
	copy(v.buf[pos:v.size-1], v.buf[pos+1:v.size])
	v.size--
	var zero T
	v.buf[v.size] = zero
	return nil
}

// At returns the element at pos, which must lie in [0, Len()).
func (v *Vector[T]) At(pos int) (T, error) {
	if pos < 0 || pos >= v.size {
		var zero T
		return zero, container.IndexOutOfRange("at", pos, v.size)
	}
	return v.buf[pos], nil
}

// Set overwrites the element at pos, which must lie in [0, Len()).
func (v *Vector[T]) Set(pos int, x T) error {
	if pos < 0 || pos >= v.size {
		return container.IndexOutOfRange("set", pos, v.size)
	}
	v.buf[pos] = x
	return nil
}

// Index returns the element at pos without checking it against Len. Reading
// a slot in [Len(), Cap()) yields a zero value; anything outside the buffer
// panics like any out-of-bounds slice index. Use At when pos is untrusted.
func (v *Vector[T]) Index(pos int) T {
	return v.buf[pos]
}

// Front returns the first element. It panics with a range error if the
// vector is empty.
func (v *Vector[T]) Front() T {
	if v.size == 0 {
		panic(container.EmptyAccess("front"))
	}
	return v.buf[0]
}

// Back returns the last element. It panics with a range error if the vector
// is empty.
func (v *Vector[T]) Back() T {
	if v.size == 0 {
		panic(container.EmptyAccess("back"))
	}
	return v.buf[v.size-1]
}

// Data returns the live elements. The slice aliases the buffer until the
// next reallocation; its capacity is clipped so appending to it never
// overwrites the vector's spare slots.
func (v *Vector[T]) Data() []T {
	return v.buf[:v.size:v.size]
}

// Resize changes the length to n, appending zero values or truncating as
// needed. Truncation keeps the capacity.
func (v *Vector[T]) Resize(n int) {
	var zero T
	v.ResizeWith(n, zero)
}

// ResizeWith is like Resize but appends copies of x. It panics with a range
// error if n is negative.
func (v *Vector[T]) ResizeWith(n int, x T) {
	if n < 0 {
		panic(container.NegativeCount("resize", n))
	}
	if n > v.size {
		v.Reserve(n)
		for i := v.size; i < n; i++ {
			v.buf[i] = x
		}
	} else {
		clearSlots(v.buf[n:v.size])
	}
	v.size = n
}

// Clear removes all elements and keeps the capacity.
func (v *Vector[T]) Clear() {
	clearSlots(v.buf[:v.size])
	v.size = 0
}

// Assign replaces the contents with n copies of x. It panics with a range
// error if n is negative.
func (v *Vector[T]) Assign(n int, x T) {
	if n < 0 {
		panic(container.NegativeCount("assign", n))
	}
	v.Clear()
	v.Reserve(n)
	for i := 0; i < n; i++ {
		v.buf[i] = x
	}
	v.size = n
}

// AssignValues replaces the contents with xs. xs may alias the vector's own
// storage, as a slice of Data does.
func (v *Vector[T]) AssignValues(xs ...T) {
	n := len(xs)
	if n > len(v.buf) {
		buf := make([]T, n)
		copy(buf, xs)
		v.buf = buf
	} else {
		// copy handles overlapping slices, and xs is read before any slot
		// past it is cleared.
		copy(v.buf, xs)
		if v.size > n {
			clearSlots(v.buf[n:v.size])
		}
	}
	v.size = n
	v.assertValid()
}

// CopyFrom makes v an element-wise copy of other, reusing the current buffer
// when it is large enough.
func (v *Vector[T]) CopyFrom(other *Vector[T]) {
	if other == v {
		return
	}
	v.AssignValues(other.Data()...)
}

// MoveFrom takes over the buffer of other, leaving other empty with no
// capacity. No element is copied.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if other == v {
		return
	}
	v.buf, v.size = other.buf, other.size
	other.buf, other.size = nil, 0
}

// Swap exchanges the buffers, lengths and capacities of v and other in O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf, other.buf = other.buf, v.buf
	v.size, other.size = other.size, v.size
}

// Clone returns a copy of v whose capacity equals its length.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{}
	c.AssignValues(v.Data()...)
	return c
}

// Values returns a copy of the elements.
func (v *Vector[T]) Values() []T {
	res := make([]T, v.size)
	copy(res, v.buf[:v.size])
	return res
}

// ForEach calls fn on each element in order until fn returns false.
func (v *Vector[T]) ForEach(fn func(x T) bool) {
	for i := 0; i < v.size; i++ {
		if !fn(v.buf[i]) {
			return
		}
	}
}

// String implements fmt.Stringer.
func (v *Vector[T]) String() string {
	return redact.StringWithoutMarkers(v)
}

// SafeFormat implements redact.SafeFormatter. Element values are not printed.
func (v *Vector[T]) SafeFormat(s redact.SafePrinter, _ rune) {
	s.Printf("vector{len: %d, cap: %d}", redact.Safe(v.size), redact.Safe(len(v.buf)))
}

func clearSlots[T any](s []T) {
	var zero T
	for i := range s {
		s[i] = zero
	}
}

func (v *Vector[T]) assertValid() {
	if !buildutil.Invariants {
		return
	}
	if err := v.validate(); err != nil {
		panic(err)
	}
}

func (v *Vector[T]) validate() error {
	if v.size < 0 || v.size > len(v.buf) {
		return errors.AssertionFailedf("len %d outside [0, %d]", v.size, len(v.buf))
	}
	if (v.buf == nil) != (len(v.buf) == 0) {
		return errors.AssertionFailedf("empty buffer must be nil")
	}
	return nil
}
