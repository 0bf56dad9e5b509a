// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package container

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

// ErrOutOfRange marks every error that reports an access outside the live
// range of a container: a bad position, a read from an empty container or a
// negative element count. Callers test for it with errors.Is.
var ErrOutOfRange = errors.New("out of range")

// ErrInvalidOption is returned by constructors handed conflicting options.
var ErrInvalidOption = errors.New("invalid option")

// IndexOutOfRange reports a position that had to lie in [0, size).
func IndexOutOfRange(op redact.SafeString, pos, size int) error {
	return errors.Wrapf(ErrOutOfRange, "%s: position %d not in [0, %d)", op, pos, size)
}

// InsertOutOfRange reports an insertion position that had to lie in
// [0, size]. Inserting at size appends.
func InsertOutOfRange(op redact.SafeString, pos, size int) error {
	return errors.Wrapf(ErrOutOfRange, "%s: position %d not in [0, %d]", op, pos, size)
}

// EmptyAccess reports a read or removal at either end of an empty container.
func EmptyAccess(op redact.SafeString) error {
	return errors.Wrapf(ErrOutOfRange, "%s: container is empty", op)
}

// NegativeCount reports a negative element count or capacity.
func NegativeCount(op redact.SafeString, n int) error {
	return errors.Wrapf(ErrOutOfRange, "%s: negative count %d", op, n)
}

// InvalidIterator reports the use of an iterator that does not reference a
// live element (the zero iterator, an end position, or an erased node).
func InvalidIterator(op redact.SafeString) error {
	return errors.Mark(errors.AssertionFailedf("%s: iterator does not reference an element", op), ErrOutOfRange)
}
