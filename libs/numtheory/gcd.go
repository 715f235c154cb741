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

package numtheory

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// GCD is the binary gcd of |a| and |b|, with GCD(0, 0) = 0.
func GCD[T constraints.Integer](a, b T) T {
	u, v := uint64(a), uint64(b)
	if a < 0 {
		u = -u
	}
	if b < 0 {
		v = -v
	}
	if u == 0 {
		return T(v)
	}
	if v == 0 {
		return T(u)
	}

	i, j := bits.TrailingZeros64(u), bits.TrailingZeros64(v)
	u >>= i
	v >>= j
	k := min(i, j)
	for {
		if u > v {
			u, v = v, u
		}
		v -= u
		if v == 0 {
			return T(u << k)
		}
		v >>= bits.TrailingZeros64(v)
	}
}
