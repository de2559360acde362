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

// heapSort sorts [start, end) with an in-place binary max-heap rooted at start. It
// bounds Sort at O(n log n) once a range has spent its depth budget.
func (s *Sorter[E, C]) heapSort(start, end int, ctx *C) {
	n := end - start
	for i := n/2 - 1; i >= 0; i-- {
		s.heapDown(start, i, n, ctx)
	}
	for last := n - 1; last > 0; last-- {
		s.Swap(start, start+last, ctx)
		s.heapDown(start, 0, last, ctx)
	}
}

// heapDown sifts the element at heap position pos down a heap of n elements stored
// from base.
func (s *Sorter[E, C]) heapDown(base, pos, n int, ctx *C) {
	cur := s.acc.Load(base+pos, ctx)
	for {
		kid := 2*pos + 1
		if kid >= n {
			break
		}
		kv := s.acc.Load(base+kid, ctx)
		if kid+1 < n {
			if rv := s.acc.Load(base+kid+1, ctx); s.less(kv, rv, ctx) {
				kid++
				kv = rv
			}
		}
		if !s.less(cur, kv, ctx) {
			break
		}
		s.acc.Store(base+pos, kv, ctx)
		pos = kid
	}
	s.acc.Store(base+pos, cur, ctx)
}
