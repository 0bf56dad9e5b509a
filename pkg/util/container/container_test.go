// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package container_test

import (
	"testing"

	"github.com/cockroachdb/containers/pkg/util/container"
	"github.com/cockroachdb/containers/pkg/util/container/list"
	"github.com/cockroachdb/containers/pkg/util/container/ordered"
	"github.com/cockroachdb/containers/pkg/util/container/vector"
	"github.com/cockroachdb/errors"
	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/utils"
	"github.com/stretchr/testify/require"
)

func TestRangeErrors(t *testing.T) {
	for _, tc := range []struct {
		err error
		msg string
	}{
		{container.IndexOutOfRange("erase", 4, 4), "erase: position 4 not in [0, 4): out of range"},
		{container.IndexOutOfRange("at", -1, 5), "at: position -1 not in [0, 5): out of range"},
		{container.InsertOutOfRange("insert", 7, 5), "insert: position 7 not in [0, 5]: out of range"},
		{container.EmptyAccess("front"), "front: container is empty: out of range"},
		{container.NegativeCount("resize", -3), "resize: negative count -3: out of range"},
	} {
		t.Run(tc.msg, func(t *testing.T) {
			require.True(t, errors.Is(tc.err, container.ErrOutOfRange))
			require.EqualError(t, tc.err, tc.msg)
		})
	}

	err := container.InvalidIterator("value")
	require.True(t, errors.Is(err, container.ErrOutOfRange))
	require.True(t, errors.HasAssertionFailure(err))
}

func TestEqual(t *testing.T) {
	l := list.Of(1, 2, 3)
	v := vector.Of(1, 2, 3)
	require.True(t, container.Equal[int](l, v))
	require.True(t, container.Equal[int](v, l))

	v.PushBack(4)
	require.False(t, container.Equal[int](l, v))

	l.PushBack(5)
	require.False(t, container.Equal[int](l, v))

	require.True(t, container.Equal[int](list.Of[int](), vector.Of[int]()))

	strs := vector.Of("1", "2", "3")
	require.False(t, container.EqualFunc[int, string](list.Of(1, 2, 3), strs, func(a int, b string) bool {
		return false
	}))
	require.True(t, container.EqualFunc[int, string](list.Of(1, 2, 3), strs, func(a int, b string) bool {
		return string(rune('0'+a)) == b
	}))
}

func TestIsSorted(t *testing.T) {
	require.True(t, container.IsSorted[int](list.Of[int](), ordered.Compare[int]))
	require.True(t, container.IsSorted[int](list.Of(1), ordered.Compare[int]))
	require.True(t, container.IsSorted[int](vector.Of(1, 1, 2, 3), ordered.Compare[int]))
	require.False(t, container.IsSorted[int](vector.Of(1, 3, 2), ordered.Compare[int]))
}

func TestGodsContainer(t *testing.T) {
	l := list.Of(5, 3, 4, 1, 2)
	c := container.AsGodsContainer[int](l)
	require.False(t, c.Empty())
	require.Equal(t, 5, c.Size())
	require.Equal(t, []interface{}{5, 3, 4, 1, 2}, c.Values())
	require.Equal(t, []interface{}{1, 2, 3, 4, 5}, containers.GetSortedValues(c, utils.IntComparator))
	require.Equal(t, "list{len: 5}", c.String())

	// The adapter is a view over the list.
	c.Clear()
	require.True(t, l.Empty())
	require.True(t, c.Empty())

	v := vector.Of("b", "a")
	c = container.AsGodsContainer[string](v)
	require.Equal(t, []interface{}{"a", "b"}, containers.GetSortedValues(c, utils.StringComparator))
	require.Equal(t, "vector{len: 2, cap: 2}", c.String())
}
