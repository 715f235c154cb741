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
	"github.com/deepflowio/deepflow-algo/libs/modnum"
)

// NTT is FFT over Z/MZ, the number theoretic transform.
func NTT[M modnum.Modulus](a []modnum.Modnum[M], inverse bool) error {
	return FFT[modnum.Modnum[M]](modnum.Roots[M]{}, a, inverse)
}

// ConvolveMod multiplies polynomials with coefficients in Z/MZ. M must admit
// a root of unity of the padded length, as 998244353 does up to 2^23.
func ConvolveMod[M modnum.Modulus](a, b []modnum.Modnum[M]) ([]modnum.Modnum[M], error) {
	return Convolve[modnum.Modnum[M]](modnum.Roots[M]{}, a, b)
}
