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

package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitLength(t *testing.T) {
	testCases := []struct {
		name     string
		input    uint64
		expected int
	}{
		{name: "n=0", input: 0, expected: 0},
		{name: "n=1", input: 1, expected: 1},
		{name: "n=2", input: 2, expected: 2},
		{name: "n=3", input: 3, expected: 2},
		{name: "n=50", input: 50, expected: 6},
		{name: "n=255", input: 255, expected: 8},
		{name: "n=256", input: 256, expected: 9},
		{name: "n=1000", input: 1000, expected: 10},
		{name: "n=1<<40", input: 1 << 40, expected: 41},
		{name: "n=1<<63", input: 1 << 63, expected: 64},
		{name: "n=max", input: ^uint64(0), expected: 64},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, BitLength(tc.input))
		})
	}
}

func TestExactLog2(t *testing.T) {
	v, err := ExactLog2(1)
	assert.NoError(t, err)
	assert.Equal(t, 0, v)

	v, err = ExactLog2(64)
	assert.NoError(t, err)
	assert.Equal(t, 6, v)

	_, err = ExactLog2(0)
	assert.Error(t, err)
	_, err = ExactLog2(12)
	assert.Error(t, err)
	_, err = ExactLog2(-8)
	assert.Error(t, err)
}
