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

package sorting

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRange    = errors.New("invalid range")
	ErrNotSorted       = errors.New("range is not sorted")
	ErrNotPartitioned  = errors.New("range is not partitioned")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// CheckRange validates [start, end) against a sequence of the given length. The
// engine itself never validates ranges.
func CheckRange(start, end, length int) error {
	if start < 0 || end < start || end > length {
		return fmt.Errorf("%w: [%d, %d) of length %d", ErrInvalidRange, start, end, length)
	}
	return nil
}

// IsSorted reports whether [start, end) is in ascending order.
func (s *Sorter[E, C]) IsSorted(start, end int, ctx *C) bool {
	return s.CheckSorted(start, end, ctx) == nil
}

// CheckSorted returns ErrNotSorted, with the first offending index, if some element of
// [start, end) is less than its predecessor.
func (s *Sorter[E, C]) CheckSorted(start, end int, ctx *C) error {
	if end-start <= 1 {
		return nil
	}
	prev := s.acc.Load(start, ctx)
	for i := start + 1; i < end; i++ {
		cur := s.acc.Load(i, ctx)
		if s.less(cur, prev, ctx) {
			return fmt.Errorf("%w: index %d is less than index %d", ErrNotSorted, i, i-1)
		}
		prev = cur
	}
	return nil
}

// CheckNthElement verifies the NthElement postcondition: nothing in [start, nth) is
// greater than the element at nth and nothing in (nth, end) is less.
func (s *Sorter[E, C]) CheckNthElement(start, nth, end int, ctx *C) error {
	if nth < start || nth >= end {
		return fmt.Errorf("%w: nth %d outside [%d, %d)", ErrInvalidRange, nth, start, end)
	}
	v := s.acc.Load(nth, ctx)
	for i := start; i < nth; i++ {
		if s.less(v, s.acc.Load(i, ctx), ctx) {
			return fmt.Errorf("%w: index %d is greater than nth %d", ErrNotPartitioned, i, nth)
		}
	}
	for i := nth + 1; i < end; i++ {
		if s.less(s.acc.Load(i, ctx), v, ctx) {
			return fmt.Errorf("%w: index %d is less than nth %d", ErrNotPartitioned, i, nth)
		}
	}
	return nil
}

// CheckPartition verifies the Partition postcondition for split p and pivot value
// piv: nothing in [start, p) is greater than piv, the element at p is equivalent to
// piv and nothing in (p, end) is less than piv.
func (s *Sorter[E, C]) CheckPartition(start, p, end int, piv E, ctx *C) error {
	if p < start || p >= end {
		return fmt.Errorf("%w: split %d outside [%d, %d)", ErrInvalidRange, p, start, end)
	}
	at := s.acc.Load(p, ctx)
	if s.less(at, piv, ctx) || s.less(piv, at, ctx) {
		return fmt.Errorf("%w: split %d does not hold the pivot value", ErrNotPartitioned, p)
	}
	for i := start; i < p; i++ {
		if s.less(piv, s.acc.Load(i, ctx), ctx) {
			return fmt.Errorf("%w: index %d is greater than the pivot", ErrNotPartitioned, i)
		}
	}
	for i := p + 1; i < end; i++ {
		if s.less(s.acc.Load(i, ctx), piv, ctx) {
			return fmt.Errorf("%w: index %d is less than the pivot", ErrNotPartitioned, i)
		}
	}
	return nil
}
