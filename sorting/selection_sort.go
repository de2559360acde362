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

// SelectionSort sorts [start, end) in ascending order with at most end-start-1 swaps.
// It is not stable.
func (s *Sorter[E, C]) SelectionSort(start, end int, ctx *C) {
	for last := end - 1; start < last; start++ {
		s.selectMin(start, end, ctx)
	}
}

// PartialSelectionSort places the ranked elements start..nth (inclusive) in their
// sorted positions. Elements in (nth, end) are left unordered but none of them is less
// than the element at nth.
func (s *Sorter[E, C]) PartialSelectionSort(start, nth, end int, ctx *C) {
	for ; start <= nth; start++ {
		s.selectMin(start, end, ctx)
	}
}

// selectMin swaps the first minimum of [start, end) into start.
func (s *Sorter[E, C]) selectMin(start, end int, ctx *C) {
	m := start
	lowest := s.acc.Load(m, ctx)
	for it := start + 1; it < end; it++ {
		v := s.acc.Load(it, ctx)
		if s.less(v, lowest, ctx) {
			m = it
			lowest = v
		}
	}
	if m != start {
		s.Swap(m, start, ctx)
	}
}
