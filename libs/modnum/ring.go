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
	"fmt"

	"github.com/deepflowio/deepflow-algo/libs/algebra"
)

// Ring is the ring Z/mZ.
type Ring[M Modulus] struct{}

func (Ring[M]) Zero() Modnum[M]              { return Zero[M]() }
func (Ring[M]) One() Modnum[M]               { return One[M]() }
func (Ring[M]) Add(a, b Modnum[M]) Modnum[M] { return a.Add(b) }
func (Ring[M]) Sub(a, b Modnum[M]) Modnum[M] { return a.Sub(b) }
func (Ring[M]) Mul(a, b Modnum[M]) Modnum[M] { return a.Mul(b) }

type AddMonoid[M Modulus] struct{}

func (AddMonoid[M]) Identity() Modnum[M]         { return Zero[M]() }
func (AddMonoid[M]) Op(a, b Modnum[M]) Modnum[M] { return a.Add(b) }

type MulMonoid[M Modulus] struct{}

func (MulMonoid[M]) Identity() Modnum[M]         { return One[M]() }
func (MulMonoid[M]) Op(a, b Modnum[M]) Modnum[M] { return a.Mul(b) }

// Roots exposes the roots of unity of Z/mZ to the transforms.
type Roots[M Modulus] struct{}

func (Roots[M]) Name() string {
	return fmt.Sprintf("mod%d", modulus[M]())
}

func (Roots[M]) One() Modnum[M]          { return One[M]() }
func (Roots[M]) FromInt(n int) Modnum[M] { return FromInt[M](int64(n)) }

func (Roots[M]) NthRootOfUnity(n int) (Modnum[M], error) {
	return NthRootOfUnity[M](n)
}

func (Roots[M]) NthRootOfUnityInv(n int) (Modnum[M], error) {
	return NthRootOfUnityInv[M](n)
}

var (
	_ algebra.RootsOfUnity[Modnum[Mod998244353]] = Roots[Mod998244353]{}
	_ algebra.Ring[Modnum[Mod998244353]]         = Ring[Mod998244353]{}
	_ algebra.Monoid[Modnum[Mod998244353]]       = AddMonoid[Mod998244353]{}
	_ algebra.Monoid[Modnum[Mod998244353]]       = MulMonoid[Mod998244353]{}
)
