// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package humanizeutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIBytes(t *testing.T) {
	require.Equal(t, "0 B", IBytes(0))
	require.Equal(t, "16 KiB", IBytes(16<<10))
	require.Equal(t, "-1.0 KiB", IBytes(-1024))
	require.Equal(t, "1,234,567", Count(1234567))
}

func TestBytesValue(t *testing.T) {
	var v int64
	b := NewBytesValue(&v)
	require.False(t, b.IsSet())
	require.Equal(t, "0 B", b.String())

	for _, tc := range []struct {
		in  string
		exp int64
	}{
		{"512B", 512},
		{"1KiB", 1024},
		{"1 MB", 1000 * 1000},
		{"64kib", 64 << 10},
	} {
		require.NoError(t, b.Set(tc.in), tc.in)
		require.Equal(t, tc.exp, v, tc.in)
	}
	require.True(t, b.IsSet())
	require.Equal(t, "bytes", b.Type())

	for _, in := range []string{"", "-1KiB", "lots"} {
		require.Error(t, b.Set(in), in)
	}
	require.Equal(t, int64(64<<10), v)
}
