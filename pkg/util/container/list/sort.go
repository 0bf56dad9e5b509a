// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package list

import (
	"github.com/cockroachdb/containers/pkg/util/container/ordered"
	"golang.org/x/exp/constraints"
)

// Splice moves every element of other into l immediately before pos, in
// O(1), preserving their order. other is left empty and its boundary nodes
// are released; it is ready for reuse as a zero List. Iterators to elements of
// other keep referencing the same elements, now in l, while its end position
// is no longer valid.
func (l *List[T]) Splice(pos Iterator[T], other *List[T]) {
	l.lazyInit()
	at := l.position("splice", pos)
	if other == l || other.len == 0 {
		return
	}
	first, last := other.head.next, other.tail.prev
	first.prev = at.prev
	last.next = at
	at.prev.next = first
	at.prev = last
	l.len += other.len
	// Detach other's boundaries so that its stale End() iterators are
	// rejected as positions.
	other.head.next, other.tail.prev = nil, nil
	other.release()
	l.assertValid()
}

// MergeFunc merges other into l. Both lists must already be sorted in
// ascending order according to cmp; the result is sorted as well and other
// is left empty. The merge is stable: among equal elements, those of l come
// first. Nodes are relinked, never copied, and the merge runs in
// O(l.Len()+other.Len()).
func (l *List[T]) MergeFunc(other *List[T], cmp func(a, b T) int) {
	if other == l || other.len == 0 {
		return
	}
	l.lazyInit()
	if l.len == 0 {
		l.Splice(l.End(), other)
		return
	}
	a, b := l.head.next, other.head.next
	for a != l.tail && b != other.tail {
		if cmp(b.value, a.value) < 0 {
			next := b.next
			unlink(b)
			other.len--
			linkBefore(a, b)
			l.len++
			b = next
		} else {
			a = a.next
		}
	}
	// Whatever remains of other sorts after every element of l.
	l.Splice(l.End(), other)
	l.assertValid()
}

// SortFunc sorts the list in ascending order according to cmp. The sort is
// stable, runs in O(n log n) and relinks nodes in place without allocating.
func (l *List[T]) SortFunc(cmp func(a, b T) int) {
	if l.len < 2 {
		return
	}
	sortRange(l.head, l.tail, l.len, cmp)
	l.assertValid()
}

// Reverse reverses the order of the elements in place by swapping the links
// of every node, boundaries included, and then swapping the roles of the two
// boundaries.
func (l *List[T]) Reverse() {
	if l.head == nil {
		return
	}
	for n := l.head; n != nil; {
		next := n.next
		n.next, n.prev = n.prev, n.next
		n = next
	}
	l.head, l.tail = l.tail, l.head
	l.assertValid()
}

// Sort sorts l in ascending natural order.
func Sort[T constraints.Ordered](l *List[T]) {
	l.SortFunc(ordered.Compare[T])
}

// Merge merges other into l, both sorted in ascending natural order. See
// MergeFunc.
func Merge[T constraints.Ordered](l, other *List[T]) {
	l.MergeFunc(other, ordered.Compare[T])
}

// sortRange sorts the n nodes strictly between before and end. Both bounds
// stay in place, which is what lets the two halves be sorted independently
// and then merged.
func sortRange[T any](before, end *node[T], n int, cmp func(a, b T) int) {
	if n < 2 {
		return
	}
	half := n / 2
	mid := before.next
	for i := 0; i < half; i++ {
		mid = mid.next
	}
	sortRange(before, mid, half, cmp)
	// mid bounds the left half and so has not moved, but the left half's last
	// node may have changed.
	leftLast := mid.prev
	sortRange(leftLast, end, n-half, cmp)
	mergeAdjacent(before, leftLast.next, end, cmp)
}

// mergeAdjacent merges the sorted runs (before, mid) and [mid, end) in place.
// A node of the right run moves only when it is strictly less than the
// current node of the left run, which keeps the merge stable.
func mergeAdjacent[T any](before, mid, end *node[T], cmp func(a, b T) int) {
	a, b := before.next, mid
	for a != b && b != end {
		if cmp(b.value, a.value) < 0 {
			next := b.next
			unlink(b)
			linkBefore(a, b)
			b = next
		} else {
			a = a.next
		}
	}
}
