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

package modnum

import (
	"strconv"

	"github.com/pkg/errors"
)

var ErrNoRootOfUnity = errors.New("no root of unity of this order")

// Modulus names a modulus at the type level. PrimitiveRoot generates the
// multiplicative group when Mod is prime, 0 if unknown.
type Modulus interface {
	Mod() uint32
	PrimitiveRoot() uint32
}

// Mod998244353 is the NTT-friendly prime 119 * 2^23 + 1.
type Mod998244353 struct{}

func (Mod998244353) Mod() uint32           { return 998244353 }
func (Mod998244353) PrimitiveRoot() uint32 { return 3 }

type Mod1000000007 struct{}

func (Mod1000000007) Mod() uint32           { return 1000000007 }
func (Mod1000000007) PrimitiveRoot() uint32 { return 5 }

// Modnum is an element of Z/mZ with m given by M, always kept in [0, m).
type Modnum[M Modulus] struct {
	v uint32
}

func modulus[M Modulus]() uint32 {
	var m M
	return m.Mod()
}

func New[M Modulus](x uint64) Modnum[M] {
	return Modnum[M]{uint32(x % uint64(modulus[M]()))}
}

// FromInt reduces a possibly negative integer.
func FromInt[M Modulus](x int64) Modnum[M] {
	m := int64(modulus[M]())
	x %= m
	if x < 0 {
		x += m
	}
	return Modnum[M]{uint32(x)}
}

func Zero[M Modulus]() Modnum[M] {
	return Modnum[M]{}
}

func One[M Modulus]() Modnum[M] {
	return New[M](1)
}

func (a Modnum[M]) Value() uint32 {
	return a.v
}

func (a Modnum[M]) String() string {
	return strconv.FormatUint(uint64(a.v), 10)
}

func (a Modnum[M]) Add(b Modnum[M]) Modnum[M] {
	m := modulus[M]()
	s := a.v + b.v
	if s >= m || s < a.v {
		s -= m
	}
	return Modnum[M]{s}
}

func (a Modnum[M]) Neg() Modnum[M] {
	if a.v == 0 {
		return a
	}
	return Modnum[M]{modulus[M]() - a.v}
}

func (a Modnum[M]) Sub(b Modnum[M]) Modnum[M] {
	return a.Add(b.Neg())
}

func (a Modnum[M]) Mul(b Modnum[M]) Modnum[M] {
	return Modnum[M]{uint32(uint64(a.v) * uint64(b.v) % uint64(modulus[M]()))}
}

func (a Modnum[M]) Pow(e uint64) Modnum[M] {
	result := One[M]()
	for ; e != 0; e >>= 1 {
		if e&1 == 1 {
			result = result.Mul(a)
		}
		a = a.Mul(a)
	}
	return result
}

// Inv assumes the modulus is prime and a is nonzero.
func (a Modnum[M]) Inv() Modnum[M] {
	return a.Pow(uint64(modulus[M]()) - 2)
}

func (a Modnum[M]) Div(b Modnum[M]) Modnum[M] {
	return a.Mul(b.Inv())
}

// NthRootOfUnity returns a principal n-th root of unity. The result is
// deterministic for a given modulus and n.
func NthRootOfUnity[M Modulus](n int) (Modnum[M], error) {
	var m M
	if n <= 0 || m.PrimitiveRoot() == 0 || uint64(m.Mod()-1)%uint64(n) != 0 {
		return Modnum[M]{}, errors.Wrapf(ErrNoRootOfUnity, "order %d modulo %d", n, m.Mod())
	}
	return New[M](uint64(m.PrimitiveRoot())).Pow(uint64(m.Mod()-1) / uint64(n)), nil
}

// NthRootOfUnityInv returns the inverse of NthRootOfUnity(n).
func NthRootOfUnityInv[M Modulus](n int) (Modnum[M], error) {
	root, err := NthRootOfUnity[M](n)
	if err != nil {
		return root, err
	}
	return root.Pow(uint64(n - 1)), nil
}
