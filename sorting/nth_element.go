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

// NthElement rearranges [start, end) so that the element of rank nth (0-indexed,
// ascending) sits at index nth, nothing before it is greater and nothing after it is
// less. nth must lie in [start, end).
//
// The loop narrows the live range around nth. Ranges of at most SmallRangeThreshold
// elements finish with PartialSelectionSort. Each partition step spends one unit of
// the depth budget; once it runs out the live range is insertion sorted, which bounds
// the worst case at O(n^2) regardless of how the pivots fall.
func (s *Sorter[E, C]) NthElement(start, nth, end int, ctx *C) {
	if end-start <= 1 {
		return
	}

	depth := s.maxDepth
	for {
		n := end - start
		if n <= 1 {
			return
		}
		if n <= s.smallRangeThreshold {
			s.PartialSelectionSort(start, nth, end, ctx)
			return
		}
		depth--
		if depth <= 0 {
			s.InsertionSort(start, end, ctx)
			return
		}

		split := s.Partition(start, end, nth, ctx)

		// The pivot was the minimum and nothing equal to it followed. start already
		// holds its final element, so drop it and retry around the midpoint.
		for split == start && split != nth {
			start++
			n = end - start
			split = s.Partition(start, end, start+n/2, ctx)
		}

		if split < nth {
			start = split + 1
		} else if split > nth {
			end = split
		} else {
			return
		}
	}
}
