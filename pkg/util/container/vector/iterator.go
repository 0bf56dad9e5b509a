// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package vector

import "github.com/cockroachdb/containers/pkg/util/container"

// Iterator is a bidirectional position in a Vector, held as an index. It is
// invalidated by insertions and removals before it, like an index would be,
// but survives reallocation. Iterators are comparable with ==.
type Iterator[T any] struct {
	v   *Vector[T]
	pos int
}

// Begin returns an iterator to the first element.
func (v *Vector[T]) Begin() Iterator[T] { return Iterator[T]{v: v, pos: 0} }

// End returns the position one past the last element.
func (v *Vector[T]) End() Iterator[T] { return Iterator[T]{v: v, pos: v.size} }

// Valid reports whether it references a live element.
func (it Iterator[T]) Valid() bool {
	return it.v != nil && it.pos >= 0 && it.pos < it.v.size
}

// Pos returns the index it references.
func (it Iterator[T]) Pos() int { return it.pos }

// Next returns the following position.
func (it Iterator[T]) Next() Iterator[T] { return Iterator[T]{v: it.v, pos: it.pos + 1} }

// Prev returns the preceding position.
func (it Iterator[T]) Prev() Iterator[T] { return Iterator[T]{v: it.v, pos: it.pos - 1} }

// Advance returns the position n steps away, in O(1).
func (it Iterator[T]) Advance(n int) Iterator[T] { return Iterator[T]{v: it.v, pos: it.pos + n} }

// Value returns the referenced element. It panics if it is not Valid.
func (it Iterator[T]) Value() T {
	if !it.Valid() {
		panic(container.InvalidIterator("value"))
	}
	return it.v.buf[it.pos]
}

// Set overwrites the referenced element. It panics if it is not Valid.
func (it Iterator[T]) Set(x T) {
	if !it.Valid() {
		panic(container.InvalidIterator("set"))
	}
	it.v.buf[it.pos] = x
}

// Const returns a read-only view of it.
func (it Iterator[T]) Const() ConstIterator[T] { return ConstIterator[T]{it: it} }

// ConstIterator is a read-only Iterator.
type ConstIterator[T any] struct {
	it Iterator[T]
}

// CBegin is the read-only counterpart of Begin.
func (v *Vector[T]) CBegin() ConstIterator[T] { return v.Begin().Const() }

// CEnd is the read-only counterpart of End.
func (v *Vector[T]) CEnd() ConstIterator[T] { return v.End().Const() }

// Valid reports whether it references a live element.
func (it ConstIterator[T]) Valid() bool {
	return it.it.Valid()
}

// Pos returns the index it references.
func (it ConstIterator[T]) Pos() int {
	return it.it.pos
}

// Next returns the following position.
func (it ConstIterator[T]) Next() ConstIterator[T] {
	return it.it.Next().Const()
}

// Prev returns the preceding position.
func (it ConstIterator[T]) Prev() ConstIterator[T] {
	return it.it.Prev().Const()
}

// Value returns the referenced element. It panics if it is not Valid.
func (it ConstIterator[T]) Value() T {
	return it.it.Value()
}

// ReverseIterator walks a Vector from back to front. It references the
// element it yields; Base returns a forward iterator to that same element.
type ReverseIterator[T any] struct {
	it Iterator[T]
}

// RBegin returns a reverse iterator to the last element.
func (v *Vector[T]) RBegin() ReverseIterator[T] {
	return ReverseIterator[T]{it: Iterator[T]{v: v, pos: v.size - 1}}
}

// REnd returns the reverse position one before the first element.
func (v *Vector[T]) REnd() ReverseIterator[T] {
	return ReverseIterator[T]{it: Iterator[T]{v: v, pos: -1}}
}

// Valid reports whether it references a live element.
func (it ReverseIterator[T]) Valid() bool {
	return it.it.Valid()
}

// Next moves toward the front.
func (it ReverseIterator[T]) Next() ReverseIterator[T] {
	return ReverseIterator[T]{it: it.it.Prev()}
}

// Prev moves toward the back.
func (it ReverseIterator[T]) Prev() ReverseIterator[T] {
	return ReverseIterator[T]{it: it.it.Next()}
}

// Value returns the referenced element. It panics if it is not Valid.
func (it ReverseIterator[T]) Value() T {
	return it.it.Value()
}

// Set overwrites the referenced element. It panics if it is not Valid.
func (it ReverseIterator[T]) Set(x T) {
	it.it.Set(x)
}

// Base returns the forward iterator to the same element.
func (it ReverseIterator[T]) Base() Iterator[T] {
	return it.it
}

// Const returns a read-only view of it.
func (it ReverseIterator[T]) Const() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{it: it}
}

// ConstReverseIterator is a read-only ReverseIterator.
type ConstReverseIterator[T any] struct {
	it ReverseIterator[T]
}

// CRBegin is the read-only counterpart of RBegin.
func (v *Vector[T]) CRBegin() ConstReverseIterator[T] { return v.RBegin().Const() }

// CREnd is the read-only counterpart of REnd.
func (v *Vector[T]) CREnd() ConstReverseIterator[T] { return v.REnd().Const() }

// Valid reports whether it references a live element.
func (it ConstReverseIterator[T]) Valid() bool {
	return it.it.Valid()
}

// Next moves toward the front.
func (it ConstReverseIterator[T]) Next() ConstReverseIterator[T] {
	return it.it.Next().Const()
}

// Prev moves toward the back.
func (it ConstReverseIterator[T]) Prev() ConstReverseIterator[T] {
	return it.it.Prev().Const()
}

// Value returns the referenced element. It panics if it is not Valid.
func (it ConstReverseIterator[T]) Value() T {
	return it.it.Value()
}
