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
	"encoding/binary"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func newInt64Sorter(t *testing.T, opts ...Option) *Sorter[int64, []int64] {
	t.Helper()
	s, err := NewSorter[int64, []int64](SliceAccessor[int64]{}, OrderedLess[int64, []int64], opts...)
	require.NoError(t, err)
	return s
}

func encodeInt64(buf []byte, v int64) []byte {
	return binary.LittleEndian.AppendUint64(buf, uint64(v))
}

func sortedCopy(values []int64) []int64 {
	out := slices.Clone(values)
	slices.Sort(out)
	return out
}

var propertySizes = []int{0, 1, 2, 3, 7, 16, 17, 49, 50, 51, 100, 257, 1000}
