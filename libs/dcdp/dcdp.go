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

package dcdp

import (
	"errors"

	"golang.org/x/exp/constraints"
)

var ErrInvalidSize = errors.New("n and k must be positive")

type Cost interface {
	constraints.Integer | constraints.Float
}

type solver[C Cost] struct {
	cost  func(i, j int) C
	dp    []C
	newDp []C
}

// step fills newDp[l:r] knowing the optimal split for each of them lies in
// [optl, optr].
func (s *solver[C]) step(l, r, optl, optr int) {
	if l >= r {
		return
	}
	mid := l + (r-l)/2
	best, opt := s.dp[optl]+s.cost(optl, mid), optl
	for i := optl + 1; i <= optr && i <= mid; i++ {
		if v := s.dp[i] + s.cost(i, mid); v < best {
			best, opt = v, i
		}
	}
	s.newDp[mid] = best
	s.step(l, mid, optl, opt)
	s.step(mid+1, r, opt, optr)
}

// Solve returns the minimum total cost of cutting [0, n) into at most k
// consecutive groups, where cost(i, j) prices the group [i, j) and
// cost(i, i) is zero. The optimal cut points must be monotone, which holds
// when cost satisfies the quadrangle inequality.
func Solve[C Cost](n, k int, cost func(i, j int) C) C {
	if n < 1 || k < 1 {
		panic(ErrInvalidSize)
	}
	s := &solver[C]{
		cost:  cost,
		dp:    make([]C, n+1),
		newDp: make([]C, n+1),
	}
	for i := range s.dp {
		s.dp[i] = cost(0, i)
	}
	for layer := 1; layer < k; layer++ {
		s.step(0, n+1, 0, n)
		s.dp, s.newDp = s.newDp, s.dp
	}
	return s.dp[n]
}
