// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package list

import "github.com/cockroachdb/containers/pkg/util/container"

// Iterator is a bidirectional position in a List. It references a node by
// identity, so it stays valid across insertions and across removals of other
// elements, and it follows its element when the node moves to another list
// through Splice or MergeFunc. Iterators are comparable with ==.
//
// The zero Iterator references nothing.
type Iterator[T any] struct {
	n *node[T]
}

// Begin returns an iterator to the first element, or End() if the list is
// empty.
func (l *List[T]) Begin() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{n: l.head.next}
}

// End returns the position one past the last element.
func (l *List[T]) End() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{n: l.tail}
}

// Valid reports whether it references an element linked into a list, as
// opposed to a boundary position, an erased element or nothing at all.
func (it Iterator[T]) Valid() bool {
	return it.n != nil && !it.n.boundary && it.n.prev != nil
}

// Next returns the following position.
func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{n: it.n.next}
}

// Prev returns the preceding position.
func (it Iterator[T]) Prev() Iterator[T] {
	return Iterator[T]{n: it.n.prev}
}

// Advance returns the position n steps forward, or backward when n is
// negative.
func (it Iterator[T]) Advance(n int) Iterator[T] {
	for ; n > 0; n-- {
		it = it.Next()
	}
	for ; n < 0; n++ {
		it = it.Prev()
	}
	return it
}

// Value returns the referenced element. It panics if it is not Valid.
func (it Iterator[T]) Value() T {
	if !it.Valid() {
		panic(container.InvalidIterator("value"))
	}
	return it.n.value
}

// Set overwrites the referenced element. It panics if it is not Valid.
func (it Iterator[T]) Set(v T) {
	if !it.Valid() {
		panic(container.InvalidIterator("set"))
	}
	it.n.value = v
}

// Const returns a read-only view of it.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{it: it}
}

// ConstIterator is a read-only Iterator.
type ConstIterator[T any] struct {
	it Iterator[T]
}

// CBegin is the read-only counterpart of Begin.
func (l *List[T]) CBegin() ConstIterator[T] { return l.Begin().Const() }

// CEnd is the read-only counterpart of End.
func (l *List[T]) CEnd() ConstIterator[T] { return l.End().Const() }

// Valid reports whether it references a live element.
func (it ConstIterator[T]) Valid() bool {
	return it.it.Valid()
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

// ReverseIterator walks a List from back to front. It references the element
// it yields; Base returns a forward iterator to that same element.
type ReverseIterator[T any] struct {
	it Iterator[T]
}

// RBegin returns a reverse iterator to the last element.
func (l *List[T]) RBegin() ReverseIterator[T] {
	l.lazyInit()
	return ReverseIterator[T]{it: Iterator[T]{n: l.tail.prev}}
}

// REnd returns the reverse position one before the first element.
func (l *List[T]) REnd() ReverseIterator[T] {
	l.lazyInit()
	return ReverseIterator[T]{it: Iterator[T]{n: l.head}}
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
func (it ReverseIterator[T]) Set(v T) {
	it.it.Set(v)
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
func (l *List[T]) CRBegin() ConstReverseIterator[T] { return l.RBegin().Const() }

// CREnd is the read-only counterpart of REnd.
func (l *List[T]) CREnd() ConstReverseIterator[T] { return l.REnd().Const() }

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

// collect returns the values in [first, last), stopping early at a boundary.
func collect[T any](first, last Iterator[T]) []T {
	var vals []T
	for it := first; it != last && it.Valid(); it = it.Next() {
		vals = append(vals, it.n.value)
	}
	return vals
}
