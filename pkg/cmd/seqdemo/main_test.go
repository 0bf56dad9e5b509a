// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(func(bool) (*zap.Logger, error) {
		return zaptest.NewLogger(t), nil
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := runCmd(t, "list", "--count", "8", "--seed", "42", "--verbose")
	require.NoError(t, err)
	for _, prefix := range []string{"generated:", "sorted:", "merged:", "reversed:", "spliced:"} {
		require.Contains(t, out, prefix)
	}
	require.Contains(t, out, "(donor len 0)")
	require.Contains(t, out, "spliced:   [-1 -2 ")

	// The same seed generates the same input.
	again, err := runCmd(t, "list", "--count", "8", "--seed", "42")
	require.NoError(t, err)
	require.Equal(t, out, again)
}

func TestListEmpty(t *testing.T) {
	out, err := runCmd(t, "list", "--count", "0")
	require.NoError(t, err)
	require.Equal(t, strings.Join([]string{
		"generated: []",
		"sorted:    []",
		"merged:    [] (donor len 0)",
		"reversed:  []",
		"spliced:   [-1 -2] (donor len 0)",
		"",
	}, "\n"), out)
}

func TestVector(t *testing.T) {
	out, err := runCmd(t, "vector", "--count", "0")
	require.NoError(t, err)
	require.Equal(t, strings.Join([]string{
		"reserved:  vector{len: 0, cap: 0}",
		"generated: [] vector{len: 0, cap: 0}",
		"inserted:  [-1]",
		"erased:    []",
		"rejected:  erase: position 0 not in [0, 0): out of range",
		"shrunk:    vector{len: 0, cap: 0}",
		"",
	}, "\n"), out)

	out, err = runCmd(t, "vector", "--count", "6", "--seed", "7")
	require.NoError(t, err)
	require.Contains(t, out, "reserved:  vector{len: 0, cap: 3}")
	require.Contains(t, out, "vector{len: 6, cap: 6}")
	require.Contains(t, out, "rejected:  erase: position 6 not in [0, 6): out of range")
	require.Contains(t, out, "shrunk:    vector{len: 6, cap: 6}")

	out, err = runCmd(t, "vector", "--count", "2", "--reserve", "1KiB")
	require.NoError(t, err)
	require.Contains(t, out, "reserved:  vector{len: 0, cap: 128}")

	_, err = runCmd(t, "vector", "--reserve", "-5")
	require.Error(t, err)
}

func TestGrowth(t *testing.T) {
	out, err := runCmd(t, "growth", "--count", "5")
	require.NoError(t, err)
	require.Contains(t, out, "capacity")
	require.Contains(t, out, "5 appends, 4 reallocations, final capacity 8")

	out, err = runCmd(t, "growth", "--count", "2000")
	require.NoError(t, err)
	require.Contains(t, out, "2,000 appends, 12 reallocations, final capacity 2,048")
	require.Contains(t, out, "16 KiB")
}

func TestBadFlags(t *testing.T) {
	_, err := runCmd(t, "growth", "--count", "-1")
	require.ErrorContains(t, err, "--count must not be negative")

	_, err = runCmd(t, "list", "extra")
	require.Error(t, err)
}
