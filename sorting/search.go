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

// Inequality selects which index FindWithInequality reports.
type Inequality int

const (
	// InequalityLT finds the highest index whose element is less than v.
	InequalityLT Inequality = iota
	// InequalityLE finds the highest index whose element is not greater than v.
	InequalityLE
	// InequalityGE finds the lowest index whose element is not less than v.
	InequalityGE
	// InequalityGT finds the lowest index whose element is greater than v.
	InequalityGT
)

// FindWithInequality binary searches the sorted, inclusive range [low, high] and
// returns the index selected by crit, or -1 if no element qualifies.
func (s *Sorter[E, C]) FindWithInequality(low, high int, v E, crit Inequality, ctx *C) int {
	if crit < InequalityLT || crit > InequalityGT {
		panic("invalid inequality")
	}
	lo := low
	hi := high
	for lo <= hi {
		if hi-lo <= 1 {
			return s.resolve(lo, hi, v, crit, ctx)
		}
		mid := lo + (hi-lo)/2
		ret := s.compareAdjacent(mid, mid+1, v, crit, ctx)
		if ret == -1 {
			hi = mid
		} else if ret == 1 {
			lo = mid + 1
		} else {
			return s.getIndex(mid, mid+1, crit)
		}
	}
	return -1
}

// matches reports whether the element at index satisfies crit against v.
func (s *Sorter[E, C]) matches(index int, v E, crit Inequality, ctx *C) bool {
	x := s.acc.Load(index, ctx)
	switch crit {
	case InequalityLT:
		return s.less(x, v, ctx)
	case InequalityLE:
		return !s.less(v, x, ctx)
	case InequalityGE:
		return !s.less(x, v, ctx)
	default:
		return s.less(v, x, ctx)
	}
}

func (s *Sorter[E, C]) resolve(lo, hi int, v E, crit Inequality, ctx *C) int {
	switch crit {
	case InequalityLT, InequalityLE:
		if s.matches(hi, v, crit, ctx) {
			return hi
		}
		if lo != hi && s.matches(lo, v, crit, ctx) {
			return lo
		}
	default:
		if s.matches(lo, v, crit, ctx) {
			return lo
		}
		if lo != hi && s.matches(hi, v, crit, ctx) {
			return hi
		}
	}
	return -1
}

// compareAdjacent locates v relative to the adjacent pair (a, b): -1 if the answer
// lies at or below a, 1 if it lies above b, 0 if the pair straddles it.
func (s *Sorter[E, C]) compareAdjacent(a, b int, v E, crit Inequality, ctx *C) int {
	switch crit {
	case InequalityLT, InequalityGE:
		if !s.less(s.acc.Load(a, ctx), v, ctx) {
			return -1
		}
		if s.less(s.acc.Load(b, ctx), v, ctx) {
			return 1
		}
	default:
		if s.less(v, s.acc.Load(a, ctx), ctx) {
			return -1
		}
		if !s.less(v, s.acc.Load(b, ctx), ctx) {
			return 1
		}
	}
	return 0
}

func (s *Sorter[E, C]) getIndex(a, b int, crit Inequality) int {
	if crit == InequalityLT || crit == InequalityLE {
		return a
	}
	return b
}
