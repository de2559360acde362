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
	"golang.org/x/exp/constraints"
)

// NthElementSlice partially sorts s so that s[nth] holds the element of rank nth,
// with nothing greater before it and nothing less after it.
func NthElementSlice[E constraints.Ordered](s []E, nth int) {
	sorter := defaultSorter[E, []E](SliceAccessor[E]{}, OrderedLess[E, []E])
	sorter.NthElement(0, nth, len(s), &s)
}

// NthElementSliceFunc is NthElementSlice with a custom strict weak order.
func NthElementSliceFunc[E any](s []E, nth int, less func(a, b E) bool) {
	sorter := defaultSorter[E, []E](SliceAccessor[E]{}, sliceLess[E](less))
	sorter.NthElement(0, nth, len(s), &s)
}

// SortSlice sorts s in ascending order. It is not stable.
func SortSlice[E constraints.Ordered](s []E) {
	sorter := defaultSorter[E, []E](SliceAccessor[E]{}, OrderedLess[E, []E])
	sorter.Sort(0, len(s), &s)
}

// SortSliceFunc sorts s with a custom strict weak order. It is not stable.
func SortSliceFunc[E any](s []E, less func(a, b E) bool) {
	sorter := defaultSorter[E, []E](SliceAccessor[E]{}, sliceLess[E](less))
	sorter.Sort(0, len(s), &s)
}

// PartitionSlice partitions s around s[pivot] and returns the pivot's final index.
func PartitionSlice[E constraints.Ordered](s []E, pivot int) int {
	sorter := defaultSorter[E, []E](SliceAccessor[E]{}, OrderedLess[E, []E])
	return sorter.Partition(0, len(s), pivot, &s)
}

func sliceLess[E any](less func(a, b E) bool) LessFn[E, []E] {
	return func(a, b E, _ *[]E) bool {
		return less(a, b)
	}
}
