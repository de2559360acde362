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
	"errors"
	"testing"

	"github.com/orderstat/orderstat-go/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessorFuncs(t *testing.T) {
	type ctx struct {
		values []string
		reads  int
	}
	acc := AccessorFuncs[string, ctx]{
		LoadFn: func(index int, c *ctx) string {
			c.reads++
			return c.values[index]
		},
		StoreFn: func(index int, value string, c *ctx) {
			c.values[index] = value
		},
	}
	s, err := NewSorter[string, ctx](acc, OrderedLess[string, ctx])
	require.NoError(t, err)

	c := &ctx{values: []string{"dog", "cat", "elephant", "ant", "bear"}}
	s.NthElement(0, 2, 5, c)

	assert.Equal(t, "cat", c.values[2])
	assert.Greater(t, c.reads, 0)
}

func TestBoundsChecked(t *testing.T) {
	checked := NewBoundsChecked[int64, []int64](SliceAccessor[int64]{}, 1, 3)
	data := []int64{10, 20, 30, 40}

	assert.Equal(t, int64(20), checked.Load(1, &data))
	checked.Store(2, 99, &data)
	assert.NoError(t, checked.Err())

	assert.Equal(t, int64(0), checked.Load(0, &data))
	checked.Store(3, 77, &data)
	assert.Equal(t, []int64{10, 20, 99, 40}, data)

	err := checked.Err()
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	assert.Contains(t, err.Error(), "load at 0")
	assert.Equal(t, 2, checked.Loads())
	assert.Equal(t, 2, checked.Stores())

	checked.Reset()
	assert.NoError(t, checked.Err())
	assert.Equal(t, 0, checked.Loads())
	assert.Equal(t, 0, checked.Stores())
}

func TestTiledBuffer(t *testing.T) {
	buf, err := NewTiledBuffer[int64](10, 4)
	require.NoError(t, err)
	assert.Equal(t, 10, buf.Len())
	assert.Equal(t, 4, buf.TileSize())
	assert.Equal(t, 3, buf.NumTiles())

	for i := 0; i < buf.Len(); i++ {
		buf.Set(i, int64(i*i))
	}
	assert.Equal(t, int64(81), buf.At(9))
	assert.Equal(t, []int64{16, 25, 36, 49}, buf.Tile(1))
	assert.Equal(t, []int64{64, 81, 0, 0}, buf.Tile(2))
	assert.Len(t, buf.Values(), 10)
}

func TestTiledBufferInvalid(t *testing.T) {
	_, err := NewTiledBuffer[int64](10, 3)
	assert.Error(t, err)
	_, err = NewTiledBuffer[int64](10, 0)
	assert.Error(t, err)
	_, err = NewTiledBuffer[int64](-1, 4)
	assert.Error(t, err)

	empty, err := NewTiledBuffer[int64](0, 8)
	assert.NoError(t, err)
	assert.Equal(t, 0, empty.NumTiles())
}

func TestTiledSort(t *testing.T) {
	values := internal.Sequence(internal.ShapeFewUnique, 3000, internal.DEFAULT_SEQUENCE_SEED)
	buf, err := NewTiledBufferFrom(values, 256)
	require.NoError(t, err)

	s, err := NewSorter[int64, TiledBuffer[int64]](TiledAccessor[int64]{}, OrderedLess[int64, TiledBuffer[int64]])
	require.NoError(t, err)
	s.Sort(0, buf.Len(), buf)

	assert.Equal(t, sortedCopy(values), buf.Values())
}
