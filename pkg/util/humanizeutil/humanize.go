// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package humanizeutil adapts go-humanize to the signed integers the
// containers report and to command-line flags.
package humanizeutil

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"
)

// IBytes is an int64 version of go-humanize's IBytes.
func IBytes(value int64) string {
	if value < 0 {
		return "-" + humanize.IBytes(uint64(-value))
	}
	return humanize.IBytes(uint64(value))
}

// Count formats n with thousands separators.
func Count(n int) string {
	return humanize.Comma(int64(n))
}

// ParseBytes is an int64 version of go-humanize's ParseBytes. Negative sizes
// are rejected.
func ParseBytes(s string) (int64, error) {
	if s == "" {
		return 0, errors.New("parsing \"\": invalid syntax")
	}
	if s[0] == '-' {
		return 0, errors.Newf("negative size %q", s)
	}
	value, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing %q", s)
	}
	if value > math.MaxInt64 {
		return 0, errors.Newf("too large: %s", s)
	}
	return int64(value), nil
}

// BytesValue is a pflag.Value that accepts sizes in any format go-humanize
// recognizes ("64KiB", "1 MB", "512B").
type BytesValue struct {
	val   *int64
	isSet bool
}

var _ pflag.Value = &BytesValue{}

// NewBytesValue returns a BytesValue bound to val.
func NewBytesValue(val *int64) *BytesValue {
	return &BytesValue{val: val}
}

// Set implements pflag.Value.
func (b *BytesValue) Set(s string) error {
	v, err := ParseBytes(s)
	if err != nil {
		return err
	}
	*b.val = v
	b.isSet = true
	return nil
}

// Type implements pflag.Value.
func (b *BytesValue) Type() string { return "bytes" }

// String implements pflag.Value. Sizes print with the binary suffixes.
func (b *BytesValue) String() string {
	if b.val == nil {
		return IBytes(0)
	}
	return IBytes(*b.val)
}

// IsSet reports whether Set has succeeded at least once.
func (b *BytesValue) IsSet() bool { return b.isSet }
