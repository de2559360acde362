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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindWithInequality(t *testing.T) {
	s := newInt64Sorter(t)
	data := []int64{1, 2, 2, 2, 5, 7, 7, 9}
	last := len(data) - 1

	testCases := []struct {
		name     string
		v        int64
		crit     Inequality
		expected int
	}{
		{name: "LT below all", v: 0, crit: InequalityLT, expected: -1},
		{name: "LT first", v: 2, crit: InequalityLT, expected: 0},
		{name: "LT between", v: 6, crit: InequalityLT, expected: 4},
		{name: "LT above all", v: 10, crit: InequalityLT, expected: 7},
		{name: "LE below all", v: 0, crit: InequalityLE, expected: -1},
		{name: "LE run", v: 2, crit: InequalityLE, expected: 3},
		{name: "LE between", v: 6, crit: InequalityLE, expected: 4},
		{name: "LE exact last", v: 9, crit: InequalityLE, expected: 7},
		{name: "GE below all", v: 0, crit: InequalityGE, expected: 0},
		{name: "GE run", v: 7, crit: InequalityGE, expected: 5},
		{name: "GE between", v: 3, crit: InequalityGE, expected: 4},
		{name: "GE above all", v: 10, crit: InequalityGE, expected: -1},
		{name: "GT below all", v: 0, crit: InequalityGT, expected: 0},
		{name: "GT run", v: 2, crit: InequalityGT, expected: 4},
		{name: "GT last", v: 9, crit: InequalityGT, expected: -1},
		{name: "GT between", v: 8, crit: InequalityGT, expected: 7},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, s.FindWithInequality(0, last, tc.v, tc.crit, &data))
		})
	}
}

func TestFindWithInequalityMatchesLinearScan(t *testing.T) {
	s := newInt64Sorter(t)
	data := []int64{0, 0, 1, 3, 3, 3, 4, 8, 8, 10, 11, 11, 11, 15}
	last := len(data) - 1

	linear := func(v int64, crit Inequality) int {
		switch crit {
		case InequalityLT:
			for i := last; i >= 0; i-- {
				if data[i] < v {
					return i
				}
			}
		case InequalityLE:
			for i := last; i >= 0; i-- {
				if data[i] <= v {
					return i
				}
			}
		case InequalityGE:
			for i := 0; i <= last; i++ {
				if data[i] >= v {
					return i
				}
			}
		case InequalityGT:
			for i := 0; i <= last; i++ {
				if data[i] > v {
					return i
				}
			}
		}
		return -1
	}

	for _, crit := range []Inequality{InequalityLT, InequalityLE, InequalityGE, InequalityGT} {
		for v := int64(-1); v <= 16; v++ {
			assert.Equal(t, linear(v, crit), s.FindWithInequality(0, last, v, crit, &data), "v=%d crit=%d", v, crit)
		}
	}
}

func TestFindWithInequalityEdges(t *testing.T) {
	s := newInt64Sorter(t)
	empty := []int64{}
	assert.Equal(t, -1, s.FindWithInequality(0, -1, 3, InequalityGE, &empty))

	single := []int64{4}
	assert.Equal(t, 0, s.FindWithInequality(0, 0, 4, InequalityLE, &single))
	assert.Equal(t, -1, s.FindWithInequality(0, 0, 4, InequalityLT, &single))

	assert.Panics(t, func() {
		s.FindWithInequality(0, 0, 4, Inequality(9), &single)
	})
}
