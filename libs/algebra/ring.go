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

package algebra

// Ring supplies the operations of a ring over T. It is passed by value next
// to the data, the same way a Monoid is.
type Ring[T any] interface {
	Zero() T
	One() T
	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
}

type NumberRing[N Number] struct{}

func (NumberRing[N]) Zero() N      { return 0 }
func (NumberRing[N]) One() N       { return 1 }
func (NumberRing[N]) Add(a, b N) N { return a + b }
func (NumberRing[N]) Sub(a, b N) N { return a - b }
func (NumberRing[N]) Mul(a, b N) N { return a * b }

type additive[T any] struct{ r Ring[T] }

func (m additive[T]) Identity() T { return m.r.Zero() }
func (m additive[T]) Op(a, b T) T { return m.r.Add(a, b) }

type multiplicative[T any] struct{ r Ring[T] }

func (m multiplicative[T]) Identity() T { return m.r.One() }
func (m multiplicative[T]) Op(a, b T) T { return m.r.Mul(a, b) }

// Additive returns the monoid (T, +, 0) of a ring.
func Additive[T any](r Ring[T]) Monoid[T] {
	return additive[T]{r}
}

// Multiplicative returns the monoid (T, *, 1) of a ring.
func Multiplicative[T any](r Ring[T]) Monoid[T] {
	return multiplicative[T]{r}
}

// Pow computes x^e by squaring.
func Pow[T any](r Ring[T], x T, e uint64) T {
	acc := r.One()
	for e != 0 {
		if e&1 == 1 {
			acc = r.Mul(acc, x)
		}
		x = r.Mul(x, x)
		e >>= 1
	}
	return acc
}
