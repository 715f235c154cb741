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

package mo

import (
	"cmp"
	"errors"

	"golang.org/x/exp/slices"
)

var ErrInvalidQuery = errors.New("query out of bounds")

// State is the sliding window maintained by Solve. Insert and Erase add and
// remove element i, Get reports the answer for the current window.
type State[O any] interface {
	Insert(i int)
	Erase(i int)
	Get() O
}

// Query is the half-open interval [L, R).
type Query struct {
	L, R int
}

// TriangleOrder ranks the cell (x, y), x <= y < n, along a space filling
// curve over the lower triangle of an n x n grid. Consecutive ranks are
// close in Manhattan distance. For n = 5:
//
//	0
//	1  2
//	6  5  3
//	7  4 11 12
//	8  9 10 13 14
func TriangleOrder(x, y, n uint32) uint64 {
	if n == 1 {
		return 0
	}
	small := (n - 1) / 2
	medium := n / 2
	big := (n + 1) / 2

	mediumArea := uint64(medium) * (uint64(medium) + 1) / 2
	bigArea := uint64(big) * (uint64(big) + 1) / 2
	squareArea := uint64(big) * uint64(big)

	switch {
	case y < medium:
		// top
		return TriangleOrder(x, y, medium)
	case x >= big:
		// right
		return TriangleOrder(x-big, y-big, medium) + mediumArea + squareArea
	case x < n-y:
		// left
		return TriangleOrder(y-medium, big-x-1, big) + mediumArea
	default:
		// bottom
		return TriangleOrder(small+medium-y, x-1, small) + mediumArea + bigArea
	}
}

// HilbertOrder ranks (x, y) along the Hilbert curve over a 2^bit square.
func HilbertOrder(bit, x, y uint32) uint64 {
	var order uint64
	n := uint32(1) << bit
	for s := n >> 1; s != 0; s >>= 1 {
		var rx, ry uint32
		if x&s != 0 {
			rx = 1
		}
		if y&s != 0 {
			ry = 1
		}
		order += uint64(s) * uint64(s) * uint64(rx^(ry*3))
		if rx != 0 {
			continue
		}
		if ry != 0 {
			x, y = n-1-x, n-1-y
		}
		x, y = y, x
	}
	return order
}

func queryKey(q Query, n int) uint64 {
	if n == 0 {
		return 0
	}
	x := uint32(min(q.L, n-1))
	y := uint32(max(q.R-1, int(x)))
	return TriangleOrder(x, y, uint32(n))
}

// Solve answers every query over positions [0, n) by moving one window
// across them in triangle order. Answers come back in query order.
func Solve[O any](n int, queries []Query, state State[O]) []O {
	keys := make([]uint64, len(queries))
	indices := make([]int, len(queries))
	for i, q := range queries {
		if q.L < 0 || q.L > q.R || q.R > n {
			panic(ErrInvalidQuery)
		}
		keys[i] = queryKey(q, n)
		indices[i] = i
	}
	slices.SortFunc(indices, func(a, b int) int {
		return cmp.Compare(keys[a], keys[b])
	})

	answers := make([]O, len(queries))
	l, r := 0, 0
	for _, i := range indices {
		q := queries[i]
		for r < q.R {
			state.Insert(r)
			r++
		}
		for l > q.L {
			l--
			state.Insert(l)
		}
		for r > q.R {
			r--
			state.Erase(r)
		}
		for l < q.L {
			state.Erase(l)
			l++
		}
		answers[i] = state.Get()
	}
	return answers
}
