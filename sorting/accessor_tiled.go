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

	"github.com/orderstat/orderstat-go/internal"
)

// TiledBuffer stores a logically linear sequence in fixed-size tiles. Index i lives in
// tile i/tileSize at offset i%tileSize; the tile size is a power of two so both are
// a shift and a mask.
type TiledBuffer[E any] struct {
	tiles     [][]E
	length    int
	tileShift int
	tileMask  int
}

// NewTiledBuffer creates a zeroed buffer of the given length split into tiles of
// tileSize elements. The last tile is allocated in full.
func NewTiledBuffer[E any](length int, tileSize int) (*TiledBuffer[E], error) {
	if length < 0 {
		return nil, fmt.Errorf("length cannot be negative: %d", length)
	}
	shift, err := internal.ExactLog2(tileSize)
	if err != nil {
		return nil, fmt.Errorf("tile size must be a positive power of 2: %d", tileSize)
	}

	numTiles := (length + tileSize - 1) >> shift
	tiles := make([][]E, numTiles)
	for i := range tiles {
		tiles[i] = make([]E, tileSize)
	}
	return &TiledBuffer[E]{
		tiles:     tiles,
		length:    length,
		tileShift: shift,
		tileMask:  tileSize - 1,
	}, nil
}

// NewTiledBufferFrom copies values into a new TiledBuffer.
func NewTiledBufferFrom[E any](values []E, tileSize int) (*TiledBuffer[E], error) {
	t, err := NewTiledBuffer[E](len(values), tileSize)
	if err != nil {
		return nil, err
	}
	for i, v := range values {
		t.Set(i, v)
	}
	return t, nil
}

func (t *TiledBuffer[E]) Len() int {
	return t.length
}

func (t *TiledBuffer[E]) TileSize() int {
	return t.tileMask + 1
}

func (t *TiledBuffer[E]) NumTiles() int {
	return len(t.tiles)
}

// Tile returns the backing storage of tile i. Elements past Len in the last tile are
// padding.
func (t *TiledBuffer[E]) Tile(i int) []E {
	return t.tiles[i]
}

func (t *TiledBuffer[E]) At(index int) E {
	return t.tiles[index>>t.tileShift][index&t.tileMask]
}

func (t *TiledBuffer[E]) Set(index int, value E) {
	t.tiles[index>>t.tileShift][index&t.tileMask] = value
}

// Values copies the logical sequence out into a new slice.
func (t *TiledBuffer[E]) Values() []E {
	out := make([]E, t.length)
	for i := range out {
		out[i] = t.At(i)
	}
	return out
}

// TiledAccessor addresses a TiledBuffer that is carried as the context.
type TiledAccessor[E any] struct{}

func (TiledAccessor[E]) Load(index int, ctx *TiledBuffer[E]) E {
	return ctx.At(index)
}

func (TiledAccessor[E]) Store(index int, value E, ctx *TiledBuffer[E]) {
	ctx.Set(index, value)
}
