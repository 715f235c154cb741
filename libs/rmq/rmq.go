/*
 * Copyright (c) 2024 Yunshan Networks
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package rmq

import (
	"cmp"
	"errors"
	"math/bits"

	"github.com/deepflowio/deepflow-algo/libs/segmenttree"
	"github.com/deepflowio/deepflow-algo/libs/utils"
)

const BLOCK_SIZE = 32

var (
	ErrEmptyRange       = errors.New("empty range")
	ErrRangeOutOfBounds = errors.New("range out of bounds")
)

// block keeps, for every prefix of up to 32 elements, the monotone stack of
// minimum candidates as a bitmask.
type block struct {
	snapshots [BLOCK_SIZE]uint32
}

// argmin is the offset of the minimum in [from, to) within the block.
func (b *block) argmin(from, to int) int {
	return bits.TrailingZeros32(b.snapshots[to-1] &^ (1<<uint(from) - 1))
}

// RMQ answers range minimum queries in O(1) after O(n) preprocessing.
// Among equal minima the later index within a block is reported.
type RMQ[T cmp.Ordered] struct {
	data   []T
	blocks []block
	// table[k][i] is the argmin over blocks [i, i+2^k)
	table [][]int
}

func New[T cmp.Ordered](data []T) *RMQ[T] {
	n := len(data)
	count := (n + BLOCK_SIZE - 1) / BLOCK_SIZE
	r := &RMQ[T]{
		data:   data,
		blocks: make([]block, count),
	}

	levels := 0
	if count > 0 {
		levels = utils.Log2Floor(count) + 1
	}
	r.table = make([][]int, levels)
	if levels > 0 {
		r.table[0] = make([]int, count)
	}
	for i := range r.blocks {
		begin := i * BLOCK_SIZE
		end := utils.Min(begin+BLOCK_SIZE, n)
		r.table[0][i] = begin + r.initBlock(i, data[begin:end])
	}
	for k := 1; k < levels; k++ {
		width := 1 << (k - 1)
		r.table[k] = make([]int, count-2*width+1)
		for i := range r.table[k] {
			r.table[k][i] = r.selectMin(r.table[k-1][i], r.table[k-1][i+width])
		}
	}
	return r
}

func (r *RMQ[T]) initBlock(index int, data []T) int {
	b := &r.blocks[index]
	var stack uint32
	for i := range data {
		for stack != 0 {
			last := 31 - bits.LeadingZeros32(stack)
			if data[i] > data[last] {
				break
			}
			stack ^= 1 << uint(last)
		}
		stack ^= 1 << uint(i)
		b.snapshots[i] = stack
	}
	return b.argmin(0, len(data))
}

func (r *RMQ[T]) selectMin(i, j int) int {
	if r.data[i] < r.data[j] {
		return i
	}
	return j
}

func (r *RMQ[T]) blockArgmin(index, from, to int) int {
	return index*BLOCK_SIZE + r.blocks[index].argmin(from, to)
}

func (r *RMQ[T]) Len() int {
	return len(r.data)
}

// ArgMin returns the index of a minimum element in rg. Empty ranges panic.
func (r *RMQ[T]) ArgMin(rg segmenttree.Range) int {
	i, j := rg.Bounds(len(r.data))
	if i < 0 || j > len(r.data) {
		panic(ErrRangeOutOfBounds)
	}
	if i >= j {
		panic(ErrEmptyRange)
	}

	iBlock, jBlock := i/BLOCK_SIZE, (j-1)/BLOCK_SIZE
	iOffset, jOffset := i%BLOCK_SIZE, (j-1)%BLOCK_SIZE+1
	if iBlock == jBlock {
		return r.blockArgmin(iBlock, iOffset, jOffset)
	}
	edges := r.selectMin(
		r.blockArgmin(iBlock, iOffset, BLOCK_SIZE),
		r.blockArgmin(jBlock, 0, jOffset),
	)
	if iBlock+1 == jBlock {
		return edges
	}
	k := utils.Log2Floor(jBlock - iBlock - 1)
	width := 1 << k
	return r.selectMin(edges, r.selectMin(r.table[k][iBlock+1], r.table[k][jBlock-width]))
}

func (r *RMQ[T]) Min(rg segmenttree.Range) T {
	return r.data[r.ArgMin(rg)]
}
