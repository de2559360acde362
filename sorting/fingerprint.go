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
	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns an order-independent digest of the multiset of elements in
// [start, end): the sum of the xxhash64 of each element's encoding. Two ranges holding
// the same elements in any order have the same fingerprint.
//
// encode appends the encoding of an element to buf and returns the extended slice; the
// buffer is reused between elements but grows on the heap, so unlike the sort and
// selection operations Fingerprint allocates.
func (s *Sorter[E, C]) Fingerprint(start, end int, encode func(buf []byte, value E) []byte, ctx *C) uint64 {
	var sum uint64
	var buf []byte
	for i := start; i < end; i++ {
		buf = encode(buf[:0], s.acc.Load(i, ctx))
		sum += xxhash.Sum64(buf)
	}
	return sum
}
