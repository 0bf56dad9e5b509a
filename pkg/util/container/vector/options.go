// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package vector

import (
	"github.com/cockroachdb/containers/pkg/util/container"
	"github.com/cockroachdb/errors"
)

// Option configures a Vector built by New. At most one option naming a
// source of elements may be given; WithCapacity combines with any of them.
type Option[T any] func(*config[T])

type config[T any] struct {
	sources int

	count int
	fill  T

	values []T

	copyOf, moveOf *Vector[T]

	capacity int
}

// WithSize fills the vector with n zero values. The capacity is exactly n.
func WithSize[T any](n int) Option[T] {
	return func(c *config[T]) {
		c.sources++
		c.count = n
	}
}

// WithFill fills the vector with n copies of x. The capacity is exactly n.
func WithFill[T any](n int, x T) Option[T] {
	return func(c *config[T]) {
		c.sources++
		c.count = n
		c.fill = x
	}
}

// WithValues fills the vector with xs. The capacity is exactly len(xs).
func WithValues[T any](xs ...T) Option[T] {
	return func(c *config[T]) {
		c.sources++
		c.values = xs
	}
}

// WithCopyOf fills the vector with a copy of src's elements.
func WithCopyOf[T any](src *Vector[T]) Option[T] {
	return func(c *config[T]) {
		c.sources++
		c.copyOf = src
	}
}

// WithMoveOf takes over src's buffer, leaving src empty.
func WithMoveOf[T any](src *Vector[T]) Option[T] {
	return func(c *config[T]) {
		c.sources++
		c.moveOf = src
	}
}

// WithCapacity reserves at least n slots once the contents are in place.
func WithCapacity[T any](n int) Option[T] {
	return func(c *config[T]) {
		c.capacity = n
	}
}

// New returns a vector configured by opts. With no options the vector is
// empty and has no buffer.
func New[T any](opts ...Option[T]) (*Vector[T], error) {
	var c config[T]
	for _, opt := range opts {
		opt(&c)
	}
	return build(c)
}

// Of returns a vector holding xs with a capacity of len(xs).
func Of[T any](xs ...T) *Vector[T] {
	return mustBuild(config[T]{sources: 1, values: xs})
}

// Filled returns a vector of n copies of x. It panics with a range error if n
// is negative.
func Filled[T any](n int, x T) *Vector[T] {
	return mustBuild(config[T]{sources: 1, count: n, fill: x})
}

func mustBuild[T any](c config[T]) *Vector[T] {
	v, err := build(c)
	if err != nil {
		panic(err)
	}
	return v
}

// build is the only place a Vector gets populated at construction.
func build[T any](c config[T]) (*Vector[T], error) {
	if c.sources > 1 {
		return nil, errors.Wrapf(container.ErrInvalidOption,
			"%d element sources given, at most one is allowed", c.sources)
	}
	if c.count < 0 {
		return nil, container.NegativeCount("new", c.count)
	}
	if c.capacity < 0 {
		return nil, container.NegativeCount("new capacity", c.capacity)
	}
	v := &Vector[T]{}
	switch {
	case c.moveOf != nil:
		v.MoveFrom(c.moveOf)
	case c.copyOf != nil:
		v.CopyFrom(c.copyOf)
	case c.values != nil:
		v.AssignValues(c.values...)
	default:
		v.Assign(c.count, c.fill)
	}
	v.Reserve(c.capacity)
	return v, nil
}
