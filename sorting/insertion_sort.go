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

// InsertionSort sorts [start, end) in ascending order. It is stable and is the
// fallback every other operation can rely on to terminate.
func (s *Sorter[E, C]) InsertionSort(start, end int, ctx *C) {
	for it := start + 1; it < end; it++ {
		value := s.acc.Load(it, ctx)
		sub := it
		for last := it - 1; last >= start; last-- {
			prev := s.acc.Load(last, ctx)
			if !s.less(value, prev, ctx) {
				break
			}
			s.acc.Store(sub, prev, ctx)
			sub = last
		}
		s.acc.Store(sub, value, ctx)
	}
}
