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
	"github.com/orderstat/orderstat-go/internal"
)

// sortStackSize bounds the pending ranges of Sort. The smaller side of every split is
// processed first, so at most log2(n) ranges are ever pending.
const sortStackSize = 64

type sortRange struct {
	start int
	end   int
	depth int
}

// Sort sorts [start, end) in ascending order. It is not stable.
//
// Ranges are split with MedianOfThree and Partition. The larger side waits on a
// fixed-size stack while the smaller side is processed, so Sort neither recurses nor
// allocates. Ranges of at most InsertionSortCutoff elements are insertion sorted;
// larger ranges whose depth budget is spent are heap sorted.
func (s *Sorter[E, C]) Sort(start, end int, ctx *C) {
	if end-start <= 1 {
		return
	}

	var stack [sortStackSize]sortRange
	top := 0
	depth := sortDepth(end-start, s.maxDepth)

	for {
		n := end - start
		switch {
		case n <= s.insertionSortCutoff:
			s.InsertionSort(start, end, ctx)
		case depth <= 0:
			s.heapSort(start, end, ctx)
		default:
			depth--
			pivot := s.MedianOfThree(start, start+n/2, end-1, ctx)
			p := s.Partition(start, end, pivot, ctx)
			if p-start < end-p-1 {
				stack[top] = sortRange{start: p + 1, end: end, depth: depth}
				end = p
			} else {
				stack[top] = sortRange{start: start, end: p, depth: depth}
				start = p + 1
			}
			top++
			continue
		}

		if top == 0 {
			return
		}
		top--
		start, end, depth = stack[top].start, stack[top].end, stack[top].depth
	}
}

// sortDepth returns the depth budget for sorting n elements: twice the bit length of
// n, and never less than maxDepth.
func sortDepth(n int, maxDepth int) int {
	return max(2*internal.BitLength(uint64(n)), maxDepth)
}
