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
	"math"

	"github.com/pkg/errors"

	"github.com/deepflowio/deepflow-algo/libs/complex"
	"github.com/deepflowio/deepflow-algo/libs/utils"
)

// RealFFT returns the forward transform of real data using one complex
// transform of half the length: even samples go to the real lanes, odd
// samples to the imaginary lanes, and conjugate symmetry separates them.
func RealFFT(a []float64) ([]complex.Complex, error) {
	n := len(a)
	if !utils.IsPowerOfTwo(n) {
		return nil, errors.Wrapf(ErrNotPowerOfTwo, "real transform of length %d", n)
	}
	if n == 1 {
		return []complex.Complex{complex.FromFloat(a[0])}, nil
	}

	h := n / 2
	z := make([]complex.Complex, h)
	for k := range z {
		z[k] = complex.New(a[2*k], a[2*k+1])
	}
	if err := FFT[complex.Complex](complex.Roots{}, z, false); err != nil {
		return nil, err
	}

	result := make([]complex.Complex, n)
	w, step := complex.ONE, complex.Cis(2*math.Pi/float64(n))
	for k := 0; k < h; k++ {
		zc := z[(h-k)%h].Conj()
		even := z[k].Add(zc).Scale(0.5)
		odd := z[k].Sub(zc).Mul(complex.I.Neg()).Scale(0.5)
		result[k] = even.Add(w.Mul(odd))
		result[k+h] = even.Sub(w.Mul(odd))
		w = w.Mul(step)
	}
	return result, nil
}

// ConvolveReal multiplies real polynomials with a single complex transform:
// with z = a + ib, the product a*b is Im(z*z) / 2.
func ConvolveReal(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, nil
	}
	length := len(a) + len(b) - 1
	n := utils.NextPowerOfTwo(length)

	z := make([]complex.Complex, n)
	for i := range z {
		var re, im float64
		if i < len(a) {
			re = a[i]
		}
		if i < len(b) {
			im = b[i]
		}
		z[i] = complex.New(re, im)
	}
	if err := FFT[complex.Complex](complex.Roots{}, z, false); err != nil {
		return nil, err
	}
	for i := range z {
		z[i] = z[i].Mul(z[i])
	}
	if err := FFT[complex.Complex](complex.Roots{}, z, true); err != nil {
		return nil, err
	}

	result := make([]float64, length)
	scale := 1 / float64(2*n)
	for i := range result {
		result[i] = z[i].Im() * scale
	}
	return result, nil
}
