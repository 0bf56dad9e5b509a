// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package list implements a generic doubly linked list.
//
// The list is delimited by two boundary nodes, head and tail, which never
// carry an element. The live elements sit strictly between them, so the end
// position of an iteration is always a real node and every insertion or
// removal relinks exactly the neighbors of the affected node. Splicing a whole
// list into another is therefore O(1), and merging and sorting move nodes
// rather than values.
//
// A List is not safe for concurrent use.
package list

import (
	"github.com/cockroachdb/containers/pkg/util/buildutil"
	"github.com/cockroachdb/containers/pkg/util/container"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// node is either a boundary (head or tail of exactly one list) or an element.
// An element node is linked into at most one list at a time; once erased its
// links are cleared.
type node[T any] struct {
	next, prev *node[T]
	value      T
	boundary   bool
}

// List is a doubly linked list of T. The zero value is an empty list ready to
// use.
type List[T any] struct {
	// head and tail are allocated on first use. head.prev and tail.next are
	// always nil.
	head, tail *node[T]
	len        int
}

var _ container.Sequence[int] = (*List[int])(nil)

func (l *List[T]) lazyInit() {
	if l.head != nil {
		return
	}
	l.head = &node[T]{boundary: true}
	l.tail = &node[T]{boundary: true}
	l.head.next = l.tail
	l.tail.prev = l.head
}

// release drops the boundary nodes and returns l to its zero state. It is
// used once every element node has been handed to another list.
func (l *List[T]) release() {
	l.head, l.tail, l.len = nil, nil, 0
}

// linkBefore links the detached node n in front of at.
func linkBefore[T any](at, n *node[T]) {
	n.prev = at.prev
	n.next = at
	at.prev.next = n
	at.prev = n
}

// unlink detaches n from its neighbors and clears its links.
func unlink[T any](n *node[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next, n.prev = nil, nil
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int { return l.len }

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool { return l.len == 0 }

// Front returns the first element. It panics with a range error if the list
// is empty.
func (l *List[T]) Front() T {
	if l.len == 0 {
		panic(container.EmptyAccess("front"))
	}
	return l.head.next.value
}

// Back returns the last element. It panics with a range error if the list is
// empty.
func (l *List[T]) Back() T {
	if l.len == 0 {
		panic(container.EmptyAccess("back"))
	}
	return l.tail.prev.value
}

// position returns the node pos references, which must be an element of l or
// its end position.
func (l *List[T]) position(op redact.SafeString, pos Iterator[T]) *node[T] {
	// The head boundary and erased nodes both have a nil prev link.
	if pos.n == nil || pos.n.prev == nil {
		panic(container.InvalidIterator(op))
	}
	return pos.n
}

// Insert inserts v immediately before pos and returns an iterator to the new
// element. pos may be the end position.
func (l *List[T]) Insert(pos Iterator[T], v T) Iterator[T] {
	l.lazyInit()
	at := l.position("insert", pos)
	n := &node[T]{value: v}
	linkBefore(at, n)
	l.len++
	return Iterator[T]{n: n}
}

// PushFront inserts v at the front of the list.
func (l *List[T]) PushFront(v T) Iterator[T] {
	return l.Insert(l.Begin(), v)
}

// PushBack inserts v at the back of the list.
func (l *List[T]) PushBack(v T) Iterator[T] {
	return l.Insert(l.End(), v)
}

// Erase removes the element at pos and returns an iterator to the element
// that followed it. Erasing the end position does nothing and returns it.
func (l *List[T]) Erase(pos Iterator[T]) Iterator[T] {
	n := l.position("erase", pos)
	if n.boundary {
		return pos
	}
	next := n.next
	unlink(n)
	l.len--
	return Iterator[T]{n: next}
}

// EraseRange removes the elements in [first, last) and returns last.
func (l *List[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	for it := first; it != last && it.Valid(); {
		it = l.Erase(it)
	}
	return last
}

// PopFront removes and returns the first element. It panics with a range
// error if the list is empty.
func (l *List[T]) PopFront() T {
	if l.len == 0 {
		panic(container.EmptyAccess("pop front"))
	}
	n := l.head.next
	unlink(n)
	l.len--
	return n.value
}

// PopBack removes and returns the last element. It panics with a range error
// if the list is empty.
func (l *List[T]) PopBack() T {
	if l.len == 0 {
		panic(container.EmptyAccess("pop back"))
	}
	n := l.tail.prev
	unlink(n)
	l.len--
	return n.value
}

// Clear removes all elements. The boundary nodes survive, so End() iterators
// taken before the call remain valid.
func (l *List[T]) Clear() {
	if l.head == nil {
		return
	}
	for n := l.head.next; n != l.tail; {
		next := n.next
		n.next, n.prev = nil, nil
		n = next
	}
	l.head.next = l.tail
	l.tail.prev = l.head
	l.len = 0
}

// Assign replaces the contents with n copies of v. It panics with a range
// error if n is negative.
func (l *List[T]) Assign(n int, v T) {
	if n < 0 {
		panic(container.NegativeCount("assign", n))
	}
	l.Clear()
	for i := 0; i < n; i++ {
		l.PushBack(v)
	}
}

// AssignValues replaces the contents with vals.
func (l *List[T]) AssignValues(vals ...T) {
	l.Clear()
	for _, v := range vals {
		l.PushBack(v)
	}
}

// AssignRange replaces the contents with the elements in [first, last). The
// range may belong to l itself.
func (l *List[T]) AssignRange(first, last Iterator[T]) {
	vals := collect(first, last)
	l.AssignValues(vals...)
}

// CopyFrom makes l an element-wise copy of other. Nodes of l are reused for
// the overlapping prefix, so iterators into that prefix stay valid and now
// observe the copied values; surplus nodes are erased and missing ones
// appended.
func (l *List[T]) CopyFrom(other *List[T]) {
	if other == l {
		return
	}
	l.lazyInit()
	src := other.first()
	dst := l.head.next
	for ; dst != l.tail && src != nil && !src.boundary; dst, src = dst.next, src.next {
		dst.value = src.value
	}
	for dst != l.tail {
		next := dst.next
		unlink(dst)
		l.len--
		dst = next
	}
	for ; src != nil && !src.boundary; src = src.next {
		l.PushBack(src.value)
	}
	l.assertValid()
}

// MoveFrom replaces the contents of l with the nodes of other, leaving other
// empty. No element is copied.
func (l *List[T]) MoveFrom(other *List[T]) {
	if other == l {
		return
	}
	l.Clear()
	l.Splice(l.End(), other)
}

// Clone returns an element-wise copy of l.
func (l *List[T]) Clone() *List[T] {
	c := &List[T]{}
	c.CopyFrom(l)
	return c
}

// Resize changes the length of the list to n, appending zero values or
// erasing from the back as needed.
func (l *List[T]) Resize(n int) {
	var zero T
	l.ResizeWith(n, zero)
}

// ResizeWith is like Resize but appends copies of v. It panics with a range
// error if n is negative.
func (l *List[T]) ResizeWith(n int, v T) {
	if n < 0 {
		panic(container.NegativeCount("resize", n))
	}
	for l.len < n {
		l.PushBack(v)
	}
	for l.len > n {
		l.PopBack()
	}
}

// Swap exchanges the contents of l and other in O(1).
func (l *List[T]) Swap(other *List[T]) {
	if other == l {
		return
	}
	l.head, other.head = other.head, l.head
	l.tail, other.tail = other.tail, l.tail
	l.len, other.len = other.len, l.len
}

// Values returns the elements in order.
func (l *List[T]) Values() []T {
	res := make([]T, 0, l.len)
	l.ForEach(func(v T) bool {
		res = append(res, v)
		return true
	})
	return res
}

// ForEach calls fn on each element in order until fn returns false.
func (l *List[T]) ForEach(fn func(v T) bool) {
	for n := l.first(); n != nil && !n.boundary; n = n.next {
		if !fn(n.value) {
			return
		}
	}
}

// first returns the first element node, the tail boundary of an empty list,
// or nil for a list that was never initialized.
func (l *List[T]) first() *node[T] {
	if l.head == nil {
		return nil
	}
	return l.head.next
}

// String implements fmt.Stringer.
func (l *List[T]) String() string {
	return redact.StringWithoutMarkers(l)
}

// SafeFormat implements redact.SafeFormatter. Element values are not printed.
func (l *List[T]) SafeFormat(s redact.SafePrinter, _ rune) {
	s.Printf("list{len: %d}", redact.Safe(l.len))
}

func (l *List[T]) assertValid() {
	if !buildutil.Invariants {
		return
	}
	if err := l.validate(); err != nil {
		panic(err)
	}
}

// validate walks the list in both directions and checks that each walk takes
// exactly len steps and that every link is mirrored by its neighbor.
func (l *List[T]) validate() error {
	if l.head == nil {
		if l.tail != nil || l.len != 0 {
			return errors.AssertionFailedf("uninitialized list with len %d", l.len)
		}
		return nil
	}
	if !l.head.boundary || !l.tail.boundary || l.head.prev != nil || l.tail.next != nil {
		return errors.AssertionFailedf("malformed boundary nodes")
	}
	n := l.head
	for i := 0; i < l.len; i++ {
		n = n.next
		if n == nil || n.boundary {
			return errors.AssertionFailedf("forward walk ended after %d of %d elements", i, l.len)
		}
		if n.prev.next != n {
			return errors.AssertionFailedf("element %d is not linked back from its predecessor", i)
		}
	}
	if n.next != l.tail || l.tail.prev != n {
		return errors.AssertionFailedf("forward walk of %d elements did not reach the tail", l.len)
	}
	n = l.tail
	for i := 0; i < l.len; i++ {
		n = n.prev
		if n == nil || n.boundary {
			return errors.AssertionFailedf("backward walk ended after %d of %d elements", i, l.len)
		}
	}
	if n.prev != l.head {
		return errors.AssertionFailedf("backward walk of %d elements did not reach the head", l.len)
	}
	return nil
}
