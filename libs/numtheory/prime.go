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

	"github.com/Workiva/go-datastructures/bitarray"
	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/exp/slices"
)

// witnesses make Miller-Rabin exact for all 64-bit inputs.
var witnesses = [...]uint64{2, 325, 9375, 28178, 450775, 9780504, 1795265022}

func mulMod(x, y, m uint64) uint64 {
	hi, lo := bits.Mul64(x, y)
	return bits.Rem64(hi, lo, m)
}

func powMod(b, e, m uint64) uint64 {
	a := uint64(1) % m
	for ; e != 0; e >>= 1 {
		if e&1 == 1 {
			a = mulMod(a, b, m)
		}
		b = mulMod(b, b, m)
	}
	return a
}

func IsPrime(n uint64) bool {
	if n < 2 || n%6%4 != 1 {
		return n|1 == 3
	}
	s := bits.TrailingZeros64(n - 1)
	d := n >> s
	for _, a := range witnesses {
		p := powMod(a%n, d, n)
		i := s
		for p != 1 && p != n-1 && a%n != 0 && i != 0 {
			p = mulMod(p, p, n)
			i--
		}
		if p != n-1 && i != s {
			return false
		}
	}
	return true
}

// Pollard returns a nontrivial divisor of the composite n.
func Pollard(n uint64) uint64 {
	f := func(x uint64) uint64 { return mulMod(x, x, n) + 1 }
	var x, y uint64
	t, product, i := 30, uint64(2), uint64(1)
	for t%40 != 0 || GCD(product, n) == 1 {
		t++
		if x == y {
			i++
			x = i
			y = f(x)
		}
		diff := x - y
		if y > x {
			diff = y - x
		}
		if q := mulMod(product, diff, n); q != 0 {
			product = q
		}
		x = f(x)
		y = f(f(y))
	}
	return GCD(product, n)
}

// Factor returns the prime factors of n with multiplicity in ascending
// order. Factor(0) and Factor(1) are empty.
func Factor(n uint64) []uint64 {
	if n < 2 {
		return nil
	}
	var factors []uint64
	for n%2 == 0 {
		factors = append(factors, 2)
		n /= 2
	}
	factors = appendFactors(factors, n)
	slices.Sort(factors)
	return factors
}

func appendFactors(factors []uint64, n uint64) []uint64 {
	if n == 1 {
		return factors
	}
	if IsPrime(n) {
		return append(factors, n)
	}
	d := Pollard(n)
	return appendFactors(appendFactors(factors, d), n/d)
}

func DistinctPrimeFactors(n uint64) mapset.Set[uint64] {
	return mapset.NewThreadUnsafeSet(Factor(n)...)
}

// Sieve returns a bit array with bit p set exactly for the primes p <= n.
func Sieve(n uint64) bitarray.BitArray {
	composite := bitarray.NewBitArray(n + 1)
	primes := bitarray.NewBitArray(n + 1)
	for p := uint64(2); p <= n; p++ {
		if marked, _ := composite.GetBit(p); marked {
			continue
		}
		primes.SetBit(p)
		for q := p * p; q <= n && q >= p; q += p {
			composite.SetBit(q)
		}
	}
	return primes
}

func Primes(n uint64) []uint64 {
	return Sieve(n).ToNums()
}
