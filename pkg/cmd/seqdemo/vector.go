// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/containers/pkg/util/container"
	"github.com/cockroachdb/containers/pkg/util/container/vector"
	"github.com/cockroachdb/containers/pkg/util/humanizeutil"
	"github.com/cockroachdb/containers/pkg/util/randutil"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const slotBytes = strconv.IntSize / 8

func newVectorCmd(e *env) *cobra.Command {
	var reserveBytes int64
	reserve := humanizeutil.NewBytesValue(&reserveBytes)
	cmd := &cobra.Command{
		Use:   "vector",
		Short: "reserve, insert into and erase from a generated vector",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			slots := e.count / 2
			if reserve.IsSet() {
				slots = int(reserveBytes / slotBytes)
			}
			return runVector(e, slots)
		},
	}
	cmd.Flags().Var(reserve, "reserve", "buffer size to reserve up front (default: room for half of --count)")
	return cmd
}

func runVector(e *env, reserve int) error {
	var v vector.Vector[int]
	v.Reserve(reserve)
	fmt.Fprintf(e.out, "reserved:  %s\n", &v)

	for _, x := range randutil.RandIntSlice(e.rng, e.count, maxValue) {
		before := v.Cap()
		v.PushBack(x)
		if v.Cap() != before {
			e.log.Debug("reallocated", zap.Int("from", before), zap.Int("to", v.Cap()))
		}
	}
	fmt.Fprintf(e.out, "generated: %v %s\n", v.Data(), &v)

	if err := v.Insert(v.Len()/2, -1); err != nil {
		return errors.Wrap(err, "inserting in the middle")
	}
	fmt.Fprintf(e.out, "inserted:  %v\n", v.Data())

	if err := v.Erase(0); err != nil {
		return errors.Wrap(err, "erasing the front")
	}
	fmt.Fprintf(e.out, "erased:    %v\n", v.Data())

	// Positions past the end are reported, not clamped.
	if err := v.Erase(v.Len()); err != nil {
		if !errors.Is(err, container.ErrOutOfRange) {
			return errors.WithAssertionFailure(err)
		}
		fmt.Fprintf(e.out, "rejected:  %v\n", err)
	}

	v.ShrinkToFit()
	fmt.Fprintf(e.out, "shrunk:    %s\n", &v)
	return nil
}
