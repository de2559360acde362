/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package sorting is an order-statistics and partial-sort engine.
//
// The engine never touches memory directly. Every read and write goes through a
// caller-supplied Accessor using plain integer indices, and every call threads a
// caller-owned context value through to the accessor and the ordering. This keeps the
// same algorithms usable over slices, tiled buffers or any other indexable storage.
//
// All operations work on a half-open range [start, end) and are iterative. The sort,
// selection, partition and search operations never allocate; Fingerprint and the
// TiledBuffer helpers are the exceptions. The ordering must be a strict weak order. With a
// non-deterministic ordering Partition may step outside [start, end); wrap the accessor
// in a BoundsChecked to detect that.
package sorting

import (
	"fmt"
)

const (
	// DefaultSmallRangeThreshold is the range length at or below which NthElement
	// finishes with a partial selection sort.
	DefaultSmallRangeThreshold = 50
	// DefaultMaxDepth is the number of partition steps NthElement may take before it
	// falls back to insertion sort.
	DefaultMaxDepth = 32
	// DefaultInsertionSortCutoff is the range length at or below which Sort uses
	// insertion sort.
	DefaultInsertionSortCutoff = 16
)

// Sorter binds an Accessor and an ordering over elements of type E with a context of
// type C. A Sorter holds no per-call state and may be shared by concurrent callers as
// long as they work on disjoint ranges or private contexts.
type Sorter[E any, C any] struct {
	acc                 Accessor[E, C]
	less                LessFn[E, C]
	smallRangeThreshold int
	maxDepth            int
	insertionSortCutoff int
}

// sorterOptions holds optional parameters for sorter construction.
type sorterOptions struct {
	smallRangeThreshold int
	maxDepth            int
	insertionSortCutoff int
}

// Option is a functional option for configuring a Sorter.
type Option func(*sorterOptions)

// WithSmallRangeThreshold sets the range length at or below which NthElement
// switches to a partial selection sort.
func WithSmallRangeThreshold(n int) Option {
	return func(opts *sorterOptions) {
		opts.smallRangeThreshold = n
	}
}

// WithMaxDepth sets the NthElement depth budget.
func WithMaxDepth(depth int) Option {
	return func(opts *sorterOptions) {
		opts.maxDepth = depth
	}
}

// WithInsertionSortCutoff sets the range length at or below which Sort uses
// insertion sort.
func WithInsertionSortCutoff(n int) Option {
	return func(opts *sorterOptions) {
		opts.insertionSortCutoff = n
	}
}

// NewSorter creates a Sorter over the given accessor and ordering.
//
// Parameters:
//   - acc: reads and writes elements by index
//   - less: strict weak order over elements
//   - opts: optional configuration (thresholds, depth budget)
//
// Returns an error if a parameter is invalid.
func NewSorter[E any, C any](acc Accessor[E, C], less LessFn[E, C], opts ...Option) (*Sorter[E, C], error) {
	if acc == nil {
		return nil, fmt.Errorf("no accessor provided")
	}
	if less == nil {
		return nil, fmt.Errorf("no less function provided")
	}

	options := &sorterOptions{
		smallRangeThreshold: DefaultSmallRangeThreshold,
		maxDepth:            DefaultMaxDepth,
		insertionSortCutoff: DefaultInsertionSortCutoff,
	}
	for _, opt := range opts {
		opt(options)
	}

	if options.smallRangeThreshold < 1 {
		return nil, fmt.Errorf("small range threshold must be >= 1: %d", options.smallRangeThreshold)
	}
	if options.maxDepth < 1 {
		return nil, fmt.Errorf("max depth must be >= 1: %d", options.maxDepth)
	}
	if options.insertionSortCutoff < 1 {
		return nil, fmt.Errorf("insertion sort cutoff must be >= 1: %d", options.insertionSortCutoff)
	}

	return newSorter(acc, less, options), nil
}

func newSorter[E any, C any](acc Accessor[E, C], less LessFn[E, C], options *sorterOptions) *Sorter[E, C] {
	return &Sorter[E, C]{
		acc:                 acc,
		less:                less,
		smallRangeThreshold: options.smallRangeThreshold,
		maxDepth:            options.maxDepth,
		insertionSortCutoff: options.insertionSortCutoff,
	}
}

// defaultSorter returns a Sorter by value so that short-lived callers can keep it on
// the stack.
func defaultSorter[E any, C any](acc Accessor[E, C], less LessFn[E, C]) Sorter[E, C] {
	return Sorter[E, C]{
		acc:                 acc,
		less:                less,
		smallRangeThreshold: DefaultSmallRangeThreshold,
		maxDepth:            DefaultMaxDepth,
		insertionSortCutoff: DefaultInsertionSortCutoff,
	}
}

// SmallRangeThreshold returns the NthElement partial selection cutoff.
func (s *Sorter[E, C]) SmallRangeThreshold() int {
	return s.smallRangeThreshold
}

// MaxDepth returns the NthElement depth budget.
func (s *Sorter[E, C]) MaxDepth() int {
	return s.maxDepth
}

// InsertionSortCutoff returns the Sort insertion sort cutoff.
func (s *Sorter[E, C]) InsertionSortCutoff() int {
	return s.insertionSortCutoff
}
