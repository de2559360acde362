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

// Accessor is the only way the engine reads or writes elements. A Store at index i
// must be visible to any later Load at index i within the same call. Load must not
// have side effects observable by other accessor calls.
type Accessor[E any, C any] interface {
	Load(index int, ctx *C) E
	Store(index int, value E, ctx *C)
}

// LessFn is a strict weak order over E. It receives the same context as the accessor.
type LessFn[E any, C any] func(a, b E, ctx *C) bool

// AccessorFuncs adapts a pair of functions to the Accessor interface.
type AccessorFuncs[E any, C any] struct {
	LoadFn  func(index int, ctx *C) E
	StoreFn func(index int, value E, ctx *C)
}

func (f AccessorFuncs[E, C]) Load(index int, ctx *C) E {
	return f.LoadFn(index, ctx)
}

func (f AccessorFuncs[E, C]) Store(index int, value E, ctx *C) {
	f.StoreFn(index, value, ctx)
}

// SliceAccessor addresses a slice that is carried as the context.
type SliceAccessor[E any] struct{}

func (SliceAccessor[E]) Load(index int, ctx *[]E) E {
	return (*ctx)[index]
}

func (SliceAccessor[E]) Store(index int, value E, ctx *[]E) {
	(*ctx)[index] = value
}

// OrderedLess is the natural ascending order of an ordered type. NaN compares as
// neither less nor greater than anything, so float slices holding NaN do not form a
// strict weak order.
func OrderedLess[E constraints.Ordered, C any](a, b E, _ *C) bool {
	return a < b
}
