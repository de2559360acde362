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
	"encoding/binary"

	"github.com/twmb/murmur3"
)

const (
	DEFAULT_SEQUENCE_SEED = uint64(9001)
)

// Shape is the layout of a generated test sequence.
type Shape int

const (
	ShapeRandom Shape = iota
	ShapeAscending
	ShapeDescending
	ShapeAllEqual
	ShapeFewUnique
	ShapeOrganPipe
	ShapeSawtooth
)

// Shapes lists every Shape, for table-driven tests.
var Shapes = []Shape{
	ShapeRandom,
	ShapeAscending,
	ShapeDescending,
	ShapeAllEqual,
	ShapeFewUnique,
	ShapeOrganPipe,
	ShapeSawtooth,
}

func (s Shape) String() string {
	switch s {
	case ShapeRandom:
		return "random"
	case ShapeAscending:
		return "ascending"
	case ShapeDescending:
		return "descending"
	case ShapeAllEqual:
		return "all-equal"
	case ShapeFewUnique:
		return "few-unique"
	case ShapeOrganPipe:
		return "organ-pipe"
	case ShapeSawtooth:
		return "sawtooth"
	default:
		return "unknown"
	}
}

// HashIndex returns the murmur3 hash of i under seed. Equal (i, seed) pairs always
// give the same value.
func HashIndex(i int, seed uint64) uint64 {
	var scratch [8]byte
	binary.LittleEndian.PutUint64(scratch[:], uint64(i))
	return murmur3.SeedSum64(seed, scratch[:])
}

// Sequence generates n values laid out as shape. Random shapes are deterministic
// for a given seed.
func Sequence(shape Shape, n int, seed uint64) []int64 {
	out := make([]int64, n)
	for i := range out {
		switch shape {
		case ShapeRandom:
			out[i] = int64(HashIndex(i, seed) >> 1)
		case ShapeAscending:
			out[i] = int64(i)
		case ShapeDescending:
			out[i] = int64(n - i)
		case ShapeAllEqual:
			out[i] = 7
		case ShapeFewUnique:
			out[i] = int64(HashIndex(i, seed) % 4)
		case ShapeOrganPipe:
			out[i] = int64(min(i, n-1-i))
		case ShapeSawtooth:
			out[i] = int64(i % 17)
		}
	}
	return out
}

// Shuffle permutes values in place with a Fisher-Yates shuffle driven by HashIndex.
func Shuffle[T any](values []T, seed uint64) {
	for i := len(values) - 1; i > 0; i-- {
		j := int(HashIndex(i, seed) % uint64(i+1))
		values[i], values[j] = values[j], values[i]
	}
}
