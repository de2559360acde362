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
	"fmt"
	"math"
)

// RankIndex maps a normalized rank in [0, 1] to an index of [start, end). Rank 0 is
// start, rank 1 is end-1, and ranks in between round down, so the median of an even
// sized range is its lower median.
func RankIndex(start, end int, rank float64) (int, error) {
	if end <= start {
		return 0, fmt.Errorf("operation is undefined for an empty range: [%d, %d)", start, end)
	}
	if math.IsNaN(rank) || rank < 0 || rank > 1 {
		return 0, fmt.Errorf("normalized rank cannot be less than zero or greater than 1.0: %f", rank)
	}
	return start + int(math.Floor(rank*float64(end-start-1))), nil
}

// Quantile selects the element of the given normalized rank in [start, end) with
// NthElement and returns it. The range is left partitioned around that element.
func (s *Sorter[E, C]) Quantile(start, end int, rank float64, ctx *C) (E, error) {
	nth, err := RankIndex(start, end, rank)
	if err != nil {
		return *new(E), err
	}
	s.NthElement(start, nth, end, ctx)
	return s.acc.Load(nth, ctx), nil
}

// Median returns the lower median of [start, end).
func (s *Sorter[E, C]) Median(start, end int, ctx *C) (E, error) {
	return s.Quantile(start, end, 0.5, ctx)
}
