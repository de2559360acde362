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

// Partition splits [start, end) around the value held at pivot and returns the index
// p where that value ends up. Nothing in [start, p) is greater than the pivot value
// and nothing in (p, end) is less than it.
//
// When the pivot value is the minimum of the range, p is advanced over the run of
// values equivalent to it, up to but never past the requested pivot index. Without
// the run, [start, p) is strictly less than the pivot value.
//
// The inner scans rely on the ordering for their sentinels and do not check bounds.
// An ordering that is not a strict weak order can make them leave [start, end).
func (s *Sorter[E, C]) Partition(start, end, pivot int, ctx *C) int {
	last := end - 1
	if pivot != last {
		s.Swap(pivot, last, ctx)
	}

	result := s.PartitionExternal(start, last, s.acc.Load(last, ctx), ctx)
	if result == last {
		return result
	}
	s.Swap(result, last, ctx)

	// Walk over values equivalent to the pivot so that a range full of duplicates
	// still splits near the requested index.
	if result == start {
		for next := result + 1; result != pivot; next++ {
			if s.less(s.acc.Load(result, ctx), s.acc.Load(next, ctx), ctx) {
				break
			}
			result++
		}
	}
	return result
}

// PartitionExternal reorders [start, end) so that the elements less than piv come
// first and returns the index of the first element that is not. piv does not have to
// be stored in the range.
func (s *Sorter[E, C]) PartitionExternal(start, end int, piv E, ctx *C) int {
	last := end - 1

	for start <= last && s.less(s.acc.Load(start, ctx), piv, ctx) {
		start++
	}
	for start < last && !s.less(s.acc.Load(last, ctx), piv, ctx) {
		last--
	}

	for start < last {
		s.Swap(start, last, ctx)
		for {
			start++
			if !s.less(s.acc.Load(start, ctx), piv, ctx) {
				break
			}
		}
		for {
			last--
			if s.less(s.acc.Load(last, ctx), piv, ctx) {
				break
			}
		}
	}
	return start
}
