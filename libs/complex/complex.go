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

package complex

import (
	"math"
	"math/cmplx"
	"strconv"

	"github.com/pkg/errors"

	"github.com/deepflowio/deepflow-algo/libs/algebra"
)

var ErrInvalidOrder = errors.New("root of unity order must be positive")

// Complex is a complex128 with the method set the generic transforms use.
type Complex complex128

var (
	ZERO = New(0, 0)
	ONE  = New(1, 0)
	I    = New(0, 1)
)

func New(re, im float64) Complex {
	return Complex(complex(re, im))
}

func FromFloat(re float64) Complex {
	return New(re, 0)
}

// Cis is cos(angle) + i sin(angle).
func Cis(angle float64) Complex {
	return Complex(cmplx.Rect(1, angle))
}

func (a Complex) Re() float64 { return real(a) }
func (a Complex) Im() float64 { return imag(a) }

func (a Complex) Add(b Complex) Complex { return a + b }
func (a Complex) Sub(b Complex) Complex { return a - b }
func (a Complex) Neg() Complex          { return -a }
func (a Complex) Mul(b Complex) Complex { return a * b }
func (a Complex) Div(b Complex) Complex { return a / b }

func (a Complex) Scale(f float64) Complex {
	return New(real(a)*f, imag(a)*f)
}

func (a Complex) Conj() Complex {
	return Complex(cmplx.Conj(complex128(a)))
}

func (a Complex) SquaredNorm() float64 {
	return real(a)*real(a) + imag(a)*imag(a)
}

func (a Complex) Abs() float64 {
	return cmplx.Abs(complex128(a))
}

func (a Complex) Inv() Complex {
	n := a.SquaredNorm()
	return New(real(a)/n, -imag(a)/n)
}

func (a Complex) Pow(e uint64) Complex {
	return algebra.Pow[Complex](Ring{}, a, e)
}

func (a Complex) String() string {
	return strconv.FormatFloat(real(a), 'g', -1, 64) + " + i " + strconv.FormatFloat(imag(a), 'g', -1, 64)
}

// NthRootOfUnity returns e^(2 pi i / n).
func NthRootOfUnity(n int) (Complex, error) {
	if n <= 0 {
		return ZERO, errors.Wrapf(ErrInvalidOrder, "order %d", n)
	}
	return Cis(2 * math.Pi / float64(n)), nil
}

// NthRootOfUnityInv returns e^(-2 pi i / n).
func NthRootOfUnityInv(n int) (Complex, error) {
	if n <= 0 {
		return ZERO, errors.Wrapf(ErrInvalidOrder, "order %d", n)
	}
	return Cis(-2 * math.Pi / float64(n)), nil
}

// Ring is the field of complex numbers seen as a ring.
type Ring struct{}

func (Ring) Zero() Complex            { return ZERO }
func (Ring) One() Complex             { return ONE }
func (Ring) Add(a, b Complex) Complex { return a + b }
func (Ring) Sub(a, b Complex) Complex { return a - b }
func (Ring) Mul(a, b Complex) Complex { return a * b }

// Roots exposes the complex roots of unity to the transforms.
type Roots struct{}

func (Roots) Name() string                             { return "complex" }
func (Roots) One() Complex                             { return ONE }
func (Roots) FromInt(n int) Complex                    { return FromFloat(float64(n)) }
func (Roots) NthRootOfUnity(n int) (Complex, error)    { return NthRootOfUnity(n) }
func (Roots) NthRootOfUnityInv(n int) (Complex, error) { return NthRootOfUnityInv(n) }

var (
	_ algebra.Ring[Complex]         = Ring{}
	_ algebra.RootsOfUnity[Complex] = Roots{}
)
