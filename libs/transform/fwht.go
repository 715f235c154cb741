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

package transform

import (
	"github.com/deepflowio/deepflow-algo/libs/algebra"
	"github.com/deepflowio/deepflow-algo/libs/utils"
)

// FWHT runs the Walsh-Hadamard transform in place over ring r. The inverse
// divides every entry by len(a) through div. len(a) must be a power of two.
func FWHT[T any](r algebra.Ring[T], a []T, inverse bool, div func(x T, n int) T) {
	n := len(a)
	if n > 0 && !utils.IsPowerOfTwo(n) {
		panic(ErrNotPowerOfTwo)
	}
	for step := 1; step < n; step <<= 1 {
		for i := 0; i < n; i += 2 * step {
			for j := i; j < i+step; j++ {
				u, v := a[j], a[j+step]
				a[j], a[j+step] = r.Add(u, v), r.Sub(u, v)
			}
		}
	}
	if inverse {
		for i := range a {
			a[i] = div(a[i], n)
		}
	}
}

// XorConvolve returns c with c[i^j] summing a[i]*b[j]. Both inputs must
// have the same power of two length and are left untouched.
func XorConvolve[T any](r algebra.Ring[T], a, b []T, div func(x T, n int) T) []T {
	if len(a) != len(b) {
		panic(ErrLengthMismatch)
	}
	fa := append([]T(nil), a...)
	fb := append([]T(nil), b...)
	FWHT(r, fa, false, div)
	FWHT(r, fb, false, div)
	for i := range fa {
		fa[i] = r.Mul(fa[i], fb[i])
	}
	FWHT(r, fa, true, div)
	return fa
}
