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
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"

	"github.com/deepflowio/deepflow-algo/libs/algebra"
	"github.com/deepflowio/deepflow-algo/libs/utils"
)

const (
	ROOT_TABLE_EXPIRATION = 10 * time.Minute
	ROOT_TABLE_CLEANUP    = 20 * time.Minute
)

var (
	ErrNotPowerOfTwo  = errors.New("length is not a power of two")
	ErrLengthMismatch = errors.New("length mismatch")
)

// Element is a field element usable by the butterflies.
type Element[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
}

// rootTables memoises per-size butterfly roots, keyed by value domain, size
// and direction.
var rootTables = cache.New(ROOT_TABLE_EXPIRATION, ROOT_TABLE_CLEANUP)

// BitReversal permutes a in place so that index i moves to the index with
// the reversed low log2(len(a)) bits.
func BitReversal[T any](a []T) {
	n := len(a)
	j := 0
	for i := 1; i < n; i++ {
		bit := n >> 1
		for j&bit != 0 {
			j ^= bit
			bit >>= 1
		}
		j ^= bit
		if i < j {
			a[i], a[j] = a[j], a[i]
		}
	}
}

// rootTable returns w such that w[k] is the primitive 2^(k+1)-th root (or
// its inverse) used by the butterflies of width 2^(k+1).
func rootTable[T Element[T]](r algebra.RootsOfUnity[T], n int, inverse bool) ([]T, error) {
	key := fmt.Sprintf("%s:%d:%t", r.Name(), n, inverse)
	if table, found := rootTables.Get(key); found {
		return table.([]T), nil
	}

	var root T
	var err error
	if inverse {
		root, err = r.NthRootOfUnityInv(n)
	} else {
		root, err = r.NthRootOfUnity(n)
	}
	if err != nil {
		return nil, err
	}
	levels := utils.Log2Floor(n)
	table := make([]T, levels)
	for k := levels - 1; k >= 0; k-- {
		table[k] = root
		root = root.Mul(root)
	}
	rootTables.Set(key, table, cache.DefaultExpiration)
	return table, nil
}

// FFT runs the radix-2 transform in place over any domain with roots of
// unity. The inverse transform is not normalised: FFT(FFT(a, false), true)
// yields len(a) * a.
func FFT[T Element[T]](r algebra.RootsOfUnity[T], a []T, inverse bool) error {
	n := len(a)
	if !utils.IsPowerOfTwo(n) {
		return errors.Wrapf(ErrNotPowerOfTwo, "%s transform of length %d", r.Name(), n)
	}
	roots, err := rootTable(r, n, inverse)
	if err != nil {
		return err
	}

	BitReversal(a)
	for k, width := 0, 2; width <= n; k, width = k+1, width*2 {
		step := roots[k]
		half := width / 2
		for i := 0; i < n; i += width {
			w := r.One()
			for j := i; j < i+half; j++ {
				u, v := a[j], w.Mul(a[j+half])
				a[j], a[j+half] = u.Add(v), u.Sub(v)
				w = w.Mul(step)
			}
		}
	}
	return nil
}

// Convolve returns the product of the polynomials a and b, of length
// len(a)+len(b)-1. Empty inputs give an empty result.
func Convolve[T Element[T]](r algebra.RootsOfUnity[T], a, b []T) ([]T, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, nil
	}
	length := len(a) + len(b) - 1
	n := utils.NextPowerOfTwo(length)

	fa := make([]T, n)
	fb := make([]T, n)
	zero := r.FromInt(0)
	copy(fa, a)
	copy(fb, b)
	for i := len(a); i < n; i++ {
		fa[i] = zero
	}
	for i := len(b); i < n; i++ {
		fb[i] = zero
	}
	if err := FFT(r, fa, false); err != nil {
		return nil, err
	}
	if err := FFT(r, fb, false); err != nil {
		return nil, err
	}
	for i := range fa {
		fa[i] = fa[i].Mul(fb[i])
	}
	if err := FFT(r, fa, true); err != nil {
		return nil, err
	}

	size := r.FromInt(n)
	result := fa[:length]
	for i := range result {
		result[i] = result[i].Div(size)
	}
	return result, nil
}
