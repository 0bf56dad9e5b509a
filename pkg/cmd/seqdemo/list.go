// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package main

import (
	"fmt"

	"github.com/cockroachdb/containers/pkg/util/container"
	"github.com/cockroachdb/containers/pkg/util/container/list"
	"github.com/cockroachdb/containers/pkg/util/container/ordered"
	"github.com/cockroachdb/containers/pkg/util/randutil"
	"github.com/cockroachdb/errors"
	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const maxValue = 100

func newListCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "sort, merge, splice and reverse generated lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(e)
		},
	}
}

func runList(e *env) error {
	a := list.Of(randutil.RandIntSlice(e.rng, e.count, maxValue)...)
	fmt.Fprintf(e.out, "generated: %v\n", a.Values())

	// The gods view sorts a copy and leaves a untouched.
	expected := containers.GetSortedValues(container.AsGodsContainer[int](a), utils.IntComparator)
	list.Sort(a)
	fmt.Fprintf(e.out, "sorted:    %v\n", a.Values())
	for i, x := range a.Values() {
		if expected[i] != x {
			return errors.AssertionFailedf("sorted list differs from gods at %d: %d != %v", i, x, expected[i])
		}
	}
	if !container.IsSorted[int](a, ordered.Compare[int]) {
		return errors.AssertionFailedf("sorted list is out of order")
	}

	b := list.Of(randutil.RandIntSlice(e.rng, e.count, maxValue)...)
	list.Sort(b)
	e.log.Debug("merging", zap.Stringer("into", a), zap.Stringer("from", b))
	list.Merge(a, b)
	fmt.Fprintf(e.out, "merged:    %v (donor len %d)\n", a.Values(), b.Len())

	a.Reverse()
	fmt.Fprintf(e.out, "reversed:  %v\n", a.Values())

	c := list.Of(-1, -2)
	a.Splice(a.Begin(), c)
	fmt.Fprintf(e.out, "spliced:   %v (donor len %d)\n", a.Values(), c.Len())
	e.log.Debug("done", zap.Stringer("list", a))
	return nil
}
