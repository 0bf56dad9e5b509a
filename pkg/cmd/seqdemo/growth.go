// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package main

import (
	"fmt"

	"github.com/cockroachdb/containers/pkg/util/container/growth"
	"github.com/cockroachdb/containers/pkg/util/container/vector"
	"github.com/cockroachdb/containers/pkg/util/humanizeutil"
	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newGrowthCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "growth",
		Short: "tabulate vector reallocations over --count appends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrowth(e)
		},
	}
}

func runGrowth(e *env) error {
	table := tablewriter.NewWriter(e.out)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"append", "capacity", "buffer"})

	var v vector.Vector[int]
	reallocs := 0
	for i := 0; i < e.count; i++ {
		before := v.Cap()
		v.PushBack(i)
		if c := v.Cap(); c != before {
			reallocs++
			table.Append([]string{
				humanizeutil.Count(i + 1),
				humanizeutil.Count(c),
				humanizeutil.IBytes(int64(c) * slotBytes),
			})
		}
	}
	table.Render()

	if want := growth.Reallocations(e.count); reallocs != want {
		return errors.AssertionFailedf("%d reallocations, expected %d", reallocs, want)
	}
	fmt.Fprintf(e.out, "%s appends, %d reallocations, final capacity %s\n",
		humanizeutil.Count(e.count), reallocs, humanizeutil.Count(v.Cap()))
	return nil
}
