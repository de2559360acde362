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

// Swap exchanges the elements at indices a and b.
func (s *Sorter[E, C]) Swap(a, b int, ctx *C) {
	va := s.acc.Load(a, ctx)
	vb := s.acc.Load(b, ctx)
	s.acc.Store(a, vb, ctx)
	s.acc.Store(b, va, ctx)
}

// MedianOfThree returns whichever of a, b and c holds the median value. It uses at
// most three comparisons and does not move anything.
func (s *Sorter[E, C]) MedianOfThree(a, b, c int, ctx *C) int {
	va := s.acc.Load(a, ctx)
	vb := s.acc.Load(b, ctx)
	vc := s.acc.Load(c, ctx)

	if s.less(va, vb, ctx) {
		if s.less(vb, vc, ctx) {
			return b
		}
		if s.less(va, vc, ctx) {
			return c
		}
		return a
	}
	if s.less(va, vc, ctx) {
		return a
	}
	if s.less(vb, vc, ctx) {
		return c
	}
	return b
}
