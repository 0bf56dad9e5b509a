// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package list

import (
	"github.com/cockroachdb/containers/pkg/util/container"
	"github.com/cockroachdb/errors"
)

// Option configures the initial contents of a List built by New. At most one
// option naming a source of elements may be given.
type Option[T any] func(*config[T])

type config[T any] struct {
	// sources counts the options that supply elements.
	sources int

	count int
	fill  T

	values []T

	hasRange    bool
	first, last Iterator[T]

	copyOf, moveOf *List[T]
}

// WithSize fills the list with n zero values.
func WithSize[T any](n int) Option[T] {
	return func(c *config[T]) {
		c.sources++
		c.count = n
	}
}

// WithFill fills the list with n copies of v.
func WithFill[T any](n int, v T) Option[T] {
	return func(c *config[T]) {
		c.sources++
		c.count = n
		c.fill = v
	}
}

// WithValues fills the list with vals, in order.
func WithValues[T any](vals ...T) Option[T] {
	return func(c *config[T]) {
		c.sources++
		c.values = vals
	}
}

// WithRange fills the list with copies of the elements in [first, last).
func WithRange[T any](first, last Iterator[T]) Option[T] {
	return func(c *config[T]) {
		c.sources++
		c.hasRange = true
		c.first, c.last = first, last
	}
}

// WithCopyOf fills the list with copies of the elements of src.
func WithCopyOf[T any](src *List[T]) Option[T] {
	return func(c *config[T]) {
		c.sources++
		c.copyOf = src
	}
}

// WithMoveOf takes over the nodes of src, leaving src empty.
func WithMoveOf[T any](src *List[T]) Option[T] {
	return func(c *config[T]) {
		c.sources++
		c.moveOf = src
	}
}

// New returns a list configured by opts. With no options the list is empty.
func New[T any](opts ...Option[T]) (*List[T], error) {
	var c config[T]
	for _, opt := range opts {
		opt(&c)
	}
	return build(c)
}

// Of returns a list holding vals.
func Of[T any](vals ...T) *List[T] {
	return mustBuild(config[T]{sources: 1, values: vals})
}

// Filled returns a list of n copies of v. It panics with a range error if n
// is negative.
func Filled[T any](n int, v T) *List[T] {
	return mustBuild(config[T]{sources: 1, count: n, fill: v})
}

func mustBuild[T any](c config[T]) *List[T] {
	l, err := build(c)
	if err != nil {
		panic(err)
	}
	return l
}

// build is the only place a List gets populated at construction.
func build[T any](c config[T]) (*List[T], error) {
	if c.sources > 1 {
		return nil, errors.Wrapf(container.ErrInvalidOption,
			"%d element sources given, at most one is allowed", c.sources)
	}
	if c.count < 0 {
		return nil, container.NegativeCount("new", c.count)
	}
	l := &List[T]{}
	l.lazyInit()
	switch {
	case c.moveOf != nil:
		l.MoveFrom(c.moveOf)
	case c.copyOf != nil:
		l.CopyFrom(c.copyOf)
	case c.hasRange:
		l.AssignValues(collect(c.first, c.last)...)
	case c.values != nil:
		l.AssignValues(c.values...)
	default:
		for i := 0; i < c.count; i++ {
			l.PushBack(c.fill)
		}
	}
	return l, nil
}
