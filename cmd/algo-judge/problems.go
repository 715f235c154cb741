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

package main

import (
	"math"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/pkg/errors"

	"github.com/deepflowio/deepflow-algo/libs/algebra"
	"github.com/deepflowio/deepflow-algo/libs/fastio"
	"github.com/deepflowio/deepflow-algo/libs/mo"
	"github.com/deepflowio/deepflow-algo/libs/modnum"
	"github.com/deepflowio/deepflow-algo/libs/numtheory"
	"github.com/deepflowio/deepflow-algo/libs/rmq"
	"github.com/deepflowio/deepflow-algo/libs/segmenttree"
	"github.com/deepflowio/deepflow-algo/libs/transform"
	"github.com/deepflowio/deepflow-algo/libs/unionfind"
)

// solver reads one problem instance from cin and writes its answers to
// cout. Flushing is left to the caller.
type solver func(cin *fastio.Cin, cout *fastio.Cout) error

var ErrBadInput = errors.New("bad input")

// MAX_INPUT_SIZE bounds every n and q read from the input.
const MAX_INPUT_SIZE = 1 << 24

func readSize(cin *fastio.Cin, name string) (int, error) {
	v := cin.Int()
	if err := cin.Err(); err != nil {
		return 0, errors.Wrapf(err, "read %s", name)
	}
	if v < 0 {
		return 0, errors.Wrapf(ErrBadInput, "%s = %d is negative", name, v)
	}
	if v > MAX_INPUT_SIZE {
		return 0, errors.Wrapf(ErrBadInput, "%s = %d exceeds %d", name, v, MAX_INPUT_SIZE)
	}
	return int(v), nil
}

func readInts(cin *fastio.Cin, n int) ([]int64, error) {
	values := make([]int64, n)
	for i := range values {
		values[i] = cin.Int()
	}
	if err := cin.Err(); err != nil {
		return nil, errors.Wrap(err, "read values")
	}
	return values, nil
}

func checkIndex(query, index, n int64) error {
	if index < 0 || index >= n {
		return errors.Wrapf(ErrBadInput, "query %d: index %d out of [0, %d)", query, index, n)
	}
	return nil
}

func checkRange(query, l, r, n int64) error {
	if l < 0 || l > r || r > n {
		return errors.Wrapf(ErrBadInput, "query %d: range [%d, %d) out of [0, %d]", query, l, r, n)
	}
	return nil
}

// solveSegtree keeps a sum tree and a min tree over the same values.
func solveSegtree(cin *fastio.Cin, cout *fastio.Cout) error {
	n, err := readSize(cin, "n")
	if err != nil {
		return err
	}
	q, err := readSize(cin, "q")
	if err != nil {
		return err
	}
	values, err := readInts(cin, n)
	if err != nil {
		return err
	}
	sums := segmenttree.FromSeqN[int64](algebra.AddMonoid[int64]{}, n, slices.Values(values))
	mins := segmenttree.New[int64](algebra.NewMinMonoid[int64](), values)

	size := int64(n)
	for k := int64(0); k < int64(q); k++ {
		op, a, b := cin.Int(), cin.Int(), cin.Int()
		if err := cin.Err(); err != nil {
			return errors.Wrapf(err, "read query %d", k)
		}
		switch op {
		case 0:
			if err := checkIndex(k, a, size); err != nil {
				return err
			}
			sums.Add(int(a), b)
			mins.WithPointMut(int(a), func(leaf *int64) { *leaf += b })
		case 1:
			if err := checkRange(k, a, b, size); err != nil {
				return err
			}
			cout.Int(sums.Fold(segmenttree.Between(int(a), int(b)))).Newline()
		case 2:
			if err := checkIndex(k, a, size); err != nil {
				return err
			}
			sums.Set(int(a), b)
			mins.Set(int(a), b)
		case 3:
			if err := checkRange(k, a, a, size); err != nil {
				return err
			}
			if b < 0 {
				return errors.Wrapf(ErrBadInput, "query %d: negative limit %d", k, b)
			}
			end, sum := sums.RightWhile(int(a), func(s int64) bool { return s <= b })
			cout.Int(int64(end)).Space().Int(sum).Newline()
		case 4:
			if err := checkRange(k, a, b, size); err != nil {
				return err
			}
			cout.Int(mins.Fold(segmenttree.Between(int(a), int(b)))).Newline()
		default:
			return errors.Wrapf(ErrBadInput, "query %d: unknown op %d", k, op)
		}
	}
	return nil
}

func solveUnionFind(cin *fastio.Cin, cout *fastio.Cout) error {
	n, err := readSize(cin, "n")
	if err != nil {
		return err
	}
	q, err := readSize(cin, "q")
	if err != nil {
		return err
	}
	sets := unionfind.New[algebra.Unit](algebra.UnitMonoid{}, n)
	size := int64(n)
	for k := int64(0); k < int64(q); k++ {
		op, u, v := cin.Int(), cin.Int(), cin.Int()
		if err := cin.Err(); err != nil {
			return errors.Wrapf(err, "read query %d", k)
		}
		if err := checkIndex(k, u, size); err != nil {
			return err
		}
		if err := checkIndex(k, v, size); err != nil {
			return err
		}
		switch op {
		case 0:
			sets.Unite(int(u), int(v))
		case 1:
			if sets.Same(int(u), int(v)) {
				cout.Byte('1').Newline()
			} else {
				cout.Byte('0').Newline()
			}
		default:
			return errors.Wrapf(ErrBadInput, "query %d: unknown op %d", k, op)
		}
	}
	return nil
}

func solveRMQ(cin *fastio.Cin, cout *fastio.Cout) error {
	n, err := readSize(cin, "n")
	if err != nil {
		return err
	}
	q, err := readSize(cin, "q")
	if err != nil {
		return err
	}
	values, err := readInts(cin, n)
	if err != nil {
		return err
	}
	table := rmq.New(values)
	for k := int64(0); k < int64(q); k++ {
		l, r := cin.Int(), cin.Int()
		if err := cin.Err(); err != nil {
			return errors.Wrapf(err, "read query %d", k)
		}
		if err := checkRange(k, l, r, int64(n)); err != nil {
			return err
		}
		if l == r {
			return errors.Wrapf(ErrBadInput, "query %d: empty range", k)
		}
		cout.Int(table.Min(segmenttree.Between(int(l), int(r)))).Newline()
	}
	return nil
}

type mint = modnum.Modnum[modnum.Mod998244353]

func readMints(cin *fastio.Cin, n int) ([]mint, error) {
	values := make([]mint, n)
	for i := range values {
		values[i] = modnum.FromInt[modnum.Mod998244353](cin.Int())
	}
	if err := cin.Err(); err != nil {
		return nil, errors.Wrap(err, "read coefficients")
	}
	return values, nil
}

func solveConvolve(cin *fastio.Cin, cout *fastio.Cout) error {
	n, err := readSize(cin, "n")
	if err != nil {
		return err
	}
	m, err := readSize(cin, "m")
	if err != nil {
		return err
	}
	a, err := readMints(cin, n)
	if err != nil {
		return err
	}
	b, err := readMints(cin, m)
	if err != nil {
		return err
	}
	c, err := transform.ConvolveMod(a, b)
	if err != nil {
		return errors.Wrap(err, "convolve")
	}
	for i, v := range c {
		if i > 0 {
			cout.Space()
		}
		cout.Uint(uint64(v.Value()))
	}
	cout.Newline()
	return nil
}

// MAX_REAL_COEFFICIENT bounds convolve-int inputs. Rounding the float
// product is exact while its coefficients stay far below 2^53.
const MAX_REAL_COEFFICIENT = 1 << 12

func readFloats(cin *fastio.Cin, n int) ([]float64, error) {
	values := make([]float64, n)
	for i := range values {
		v := cin.Int()
		if v < -MAX_REAL_COEFFICIENT || v > MAX_REAL_COEFFICIENT {
			return nil, errors.Wrapf(ErrBadInput, "coefficient %d out of [-%d, %d]", v, MAX_REAL_COEFFICIENT, MAX_REAL_COEFFICIENT)
		}
		values[i] = float64(v)
	}
	if err := cin.Err(); err != nil {
		return nil, errors.Wrap(err, "read coefficients")
	}
	return values, nil
}

// solveConvolveInt multiplies small integer polynomials exactly with the
// complex transform.
func solveConvolveInt(cin *fastio.Cin, cout *fastio.Cout) error {
	n, err := readSize(cin, "n")
	if err != nil {
		return err
	}
	m, err := readSize(cin, "m")
	if err != nil {
		return err
	}
	a, err := readFloats(cin, n)
	if err != nil {
		return err
	}
	b, err := readFloats(cin, m)
	if err != nil {
		return err
	}
	c, err := transform.ConvolveReal(a, b)
	if err != nil {
		return errors.Wrap(err, "convolve")
	}
	for i, v := range c {
		if i > 0 {
			cout.Space()
		}
		cout.Int(int64(math.Round(v)))
	}
	cout.Newline()
	return nil
}

func solveFactor(cin *fastio.Cin, cout *fastio.Cout) error {
	q, err := readSize(cin, "q")
	if err != nil {
		return err
	}
	for k := 0; k < q; k++ {
		n := cin.Uint()
		if err := cin.Err(); err != nil {
			return errors.Wrapf(err, "read query %d", k)
		}
		factors := numtheory.Factor(n)
		cout.Int(int64(len(factors)))
		for _, p := range factors {
			cout.Space().Uint(p)
		}
		cout.Newline()
	}
	return nil
}

// distinctValues counts the distinct values in the current window.
type distinctValues struct {
	values  []int64
	count   map[int64]int
	present mapset.Set[int64]
}

func newDistinctValues(values []int64) *distinctValues {
	return &distinctValues{
		values:  values,
		count:   make(map[int64]int),
		present: mapset.NewThreadUnsafeSet[int64](),
	}
}

func (s *distinctValues) Insert(i int) {
	v := s.values[i]
	if s.count[v]++; s.count[v] == 1 {
		s.present.Add(v)
	}
}

func (s *distinctValues) Erase(i int) {
	v := s.values[i]
	if s.count[v]--; s.count[v] == 0 {
		delete(s.count, v)
		s.present.Remove(v)
	}
}

func (s *distinctValues) Get() int {
	return s.present.Cardinality()
}

func solveMo(cin *fastio.Cin, cout *fastio.Cout) error {
	n, err := readSize(cin, "n")
	if err != nil {
		return err
	}
	q, err := readSize(cin, "q")
	if err != nil {
		return err
	}
	values, err := readInts(cin, n)
	if err != nil {
		return err
	}
	queries := make([]mo.Query, q)
	for k := range queries {
		l, r := cin.Int(), cin.Int()
		if err := cin.Err(); err != nil {
			return errors.Wrapf(err, "read query %d", k)
		}
		if err := checkRange(int64(k), l, r, int64(n)); err != nil {
			return err
		}
		queries[k] = mo.Query{L: int(l), R: int(r)}
	}
	state := newDistinctValues(values)
	for _, answer := range mo.Solve[int](n, queries, state) {
		cout.Int(int64(answer)).Newline()
	}
	return nil
}
