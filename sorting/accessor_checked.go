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
)

// BoundsChecked wraps an Accessor and refuses accesses outside [lo, hi). A refused
// load returns the zero value and a refused store is dropped; the first refusal is
// kept and reported by Err. It also counts the loads and stores that reach it.
//
// A BoundsChecked is per call state: give each concurrent invocation its own.
type BoundsChecked[E any, C any] struct {
	inner  Accessor[E, C]
	lo     int
	hi     int
	loads  int
	stores int
	err    error
}

// NewBoundsChecked returns a BoundsChecked that allows indices in [lo, hi).
func NewBoundsChecked[E any, C any](inner Accessor[E, C], lo, hi int) *BoundsChecked[E, C] {
	return &BoundsChecked[E, C]{
		inner: inner,
		lo:    lo,
		hi:    hi,
	}
}

func (b *BoundsChecked[E, C]) Load(index int, ctx *C) E {
	b.loads++
	if !b.allowed(index, "load") {
		return *new(E)
	}
	return b.inner.Load(index, ctx)
}

func (b *BoundsChecked[E, C]) Store(index int, value E, ctx *C) {
	b.stores++
	if !b.allowed(index, "store") {
		return
	}
	b.inner.Store(index, value, ctx)
}

func (b *BoundsChecked[E, C]) allowed(index int, op string) bool {
	if index >= b.lo && index < b.hi {
		return true
	}
	if b.err == nil {
		b.err = fmt.Errorf("%w: %s at %d outside [%d, %d)", ErrIndexOutOfRange, op, index, b.lo, b.hi)
	}
	return false
}

// Err returns the first refused access, or nil.
func (b *BoundsChecked[E, C]) Err() error {
	return b.err
}

// Loads returns the number of loads seen, including refused ones.
func (b *BoundsChecked[E, C]) Loads() int {
	return b.loads
}

// Stores returns the number of stores seen, including refused ones.
func (b *BoundsChecked[E, C]) Stores() int {
	return b.stores
}

// Reset clears the counters and the recorded error.
func (b *BoundsChecked[E, C]) Reset() {
	b.loads = 0
	b.stores = 0
	b.err = nil
}
