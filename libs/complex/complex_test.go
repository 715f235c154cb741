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
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertClose(t *testing.T, expected, actual Complex) {
	t.Helper()
	assert.InDelta(t, expected.Re(), actual.Re(), 1e-9)
	assert.InDelta(t, expected.Im(), actual.Im(), 1e-9)
}

func TestArithmetic(t *testing.T) {
	a, b := New(1, 2), New(3, -1)
	assert.Equal(t, New(4, 1), a.Add(b))
	assert.Equal(t, New(-2, 3), a.Sub(b))
	assert.Equal(t, New(5, 5), a.Mul(b))
	assert.Equal(t, New(1, -2), a.Conj())
	assert.Equal(t, New(-1, -2), a.Neg())
	assert.Equal(t, New(2, 4), a.Scale(2))
	assert.Equal(t, 5.0, a.SquaredNorm())
	assert.InDelta(t, math.Sqrt(5), a.Abs(), 1e-12)
	assertClose(t, ONE, a.Mul(a.Inv()))
	assertClose(t, a, a.Mul(b).Div(b))
	assertClose(t, New(-1, 0), I.Pow(2))
	assertClose(t, ONE, I.Pow(4))
	assert.Equal(t, "1 + i -2", a.Conj().String())
}

func TestRootsOfUnity(t *testing.T) {
	for _, n := range []int{1, 2, 3, 8, 1024} {
		w, err := NthRootOfUnity(n)
		require.NoError(t, err)
		wi, err := NthRootOfUnityInv(n)
		require.NoError(t, err)
		assertClose(t, ONE, w.Pow(uint64(n)))
		assertClose(t, ONE, w.Mul(wi))
	}
	w, _ := NthRootOfUnity(4)
	assertClose(t, I, w)

	_, err := NthRootOfUnity(0)
	assert.True(t, errors.Is(err, ErrInvalidOrder))
	_, err = Roots{}.NthRootOfUnityInv(-2)
	assert.True(t, errors.Is(err, ErrInvalidOrder))
}

func TestRoots(t *testing.T) {
	var r Roots
	assert.Equal(t, "complex", r.Name())
	assert.Equal(t, ONE, r.One())
	assert.Equal(t, New(6, 0), r.FromInt(6))
	assertClose(t, Cis(math.Pi/3), New(0.5, math.Sqrt(3)/2))
}
