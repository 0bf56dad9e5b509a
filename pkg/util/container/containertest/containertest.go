// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package containertest has assertions shared by the container tests.
package containertest

import (
	"testing"

	"github.com/cockroachdb/containers/pkg/util/container"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

// RequireOutOfRange fails the test unless err is a range error.
func RequireOutOfRange(t testing.TB, err error) {
	t.Helper()
	require.Error(t, err)
	require.True(t, errors.Is(err, container.ErrOutOfRange), "expected a range error, got %v", err)
}

// RequirePanicsOutOfRange fails the test unless f panics with a range error.
func RequirePanicsOutOfRange(t testing.TB, f func()) {
	t.Helper()
	var recovered interface{}
	func() {
		defer func() { recovered = recover() }()
		f()
	}()
	require.NotNil(t, recovered, "expected a panic")
	err, ok := recovered.(error)
	require.True(t, ok, "expected the panic value to be an error, got %T: %v", recovered, recovered)
	RequireOutOfRange(t, err)
}
