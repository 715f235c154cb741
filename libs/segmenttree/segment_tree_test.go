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

package segmenttree

import (
	"math/rand"
	"slices"
	"testing"

	logging "github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepflowio/deepflow-algo/libs/algebra"
)

type affine struct {
	a, b int64
}

// x -> g(f(x)) for Op(f, g), not commutative
var affineMonoid = algebra.NewFuncMonoid(affine{1, 0}, func(f, g affine) affine {
	return affine{f.a * g.a % 1000003, (f.b*g.a + g.b) % 1000003}
})

// same composition without the modulus, slopes only grow
var growingAffineMonoid = algebra.NewFuncMonoid(affine{1, 0}, func(f, g affine) affine {
	return affine{f.a * g.a, f.b*g.a + g.b}
})

func bruteFold[T any](m algebra.Monoid[T], values []T, start, end int) T {
	acc := m.Identity()
	for i := start; i < end; i++ {
		acc = m.Op(acc, values[i])
	}
	return acc
}

func checkInvariant[T any](t *testing.T, tree *SegmentTree[T]) {
	for i := 1; i < tree.offset(); i++ {
		require.Equal(t, tree.monoid.Op(tree.values[2*i], tree.values[2*i+1]), tree.values[i], "node %d", i)
	}
	for i := tree.offset() + tree.n; i < len(tree.values); i++ {
		require.Equal(t, tree.monoid.Identity(), tree.values[i], "padding %d", i)
	}
}

func randomAffines(r *rand.Rand, n int) []affine {
	values := make([]affine, n)
	for i := range values {
		values[i] = affine{r.Int63n(5) + 1, r.Int63n(10)}
	}
	return values
}

func TestSumScenario(t *testing.T) {
	tree := New[int64](algebra.AddMonoid[int64]{}, []int64{1, 2, 3, 4, 5})

	assert.Equal(t, int64(9), tree.Fold(Between(1, 4)))
	assert.Equal(t, int64(9), tree.Fold(Closed(1, 3)))
	assert.Equal(t, int64(15), tree.Fold(All()))

	tree.Add(0, 10)
	assert.Equal(t, int64(11), tree.Fold(Between(0, 1)))

	tree = New[int64](algebra.AddMonoid[int64]{}, []int64{1, 2, 3, 4, 5})
	index, sum := tree.RightWhile(0, func(s int64) bool { return s <= 6 })
	assert.Equal(t, 3, index)
	assert.Equal(t, int64(6), sum)
}

func TestMinScenario(t *testing.T) {
	tree := New[int](algebra.NewMinMonoid[int](), []int{5, 3, 8, 1, 9, 2, 7, 4})
	assert.Equal(t, 1, tree.Fold(Between(2, 6)))
	assert.Equal(t, 3, tree.Fold(LessThan(3)))
	assert.Equal(t, 2, tree.Fold(GreaterThan(3)))
	assert.Equal(t, 1, tree.Fold(AtMost(3)))
	assert.Equal(t, 2, tree.Fold(AtLeast(4)))
	assert.Equal(t, 1, tree.Fold(Open(2, 4)))
}

func TestBuild(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for n := 0; n <= 40; n++ {
		values := randomAffines(r, n)
		tree := New[affine](affineMonoid, values)
		checkInvariant(t, tree)
		assert.Equal(t, n, tree.Len())
		assert.Equal(t, bruteFold[affine](affineMonoid, values, 0, n), tree.Fold(All()))
		assert.Equal(t, values, tree.Leaves())
	}
}

func TestWithSize(t *testing.T) {
	tree := WithSize[int64](algebra.NewMaxMonoid[int64](), 6)
	checkInvariant(t, tree)
	assert.Equal(t, algebra.MinValue[int64](), tree.Fold(All()))
	tree.Set(4, 7)
	tree.Set(1, 3)
	assert.Equal(t, int64(7), tree.Fold(All()))
	assert.Equal(t, int64(3), tree.Fold(Between(0, 4)))
	checkInvariant(t, tree)

	empty := WithSize[int](algebra.AddMonoid[int]{}, 0)
	assert.Equal(t, 0, empty.Fold(All()))
	index, sum := empty.RightWhile(0, func(int) bool { return true })
	assert.Equal(t, 0, index)
	assert.Equal(t, 0, sum)
}

func TestFromSeq(t *testing.T) {
	values := []int{4, 1, 7, 3, 9}
	unknown := FromSeq[int](algebra.AddMonoid[int]{}, slices.Values(values))
	known := FromSeqN[int](algebra.AddMonoid[int]{}, len(values), slices.Values(values))
	assert.Equal(t, values, unknown.Leaves())
	assert.Equal(t, values, known.Leaves())
	assert.Equal(t, 24, known.Fold(All()))
	checkInvariant(t, known)

	assert.PanicsWithError(t, ErrLengthMismatch.Error(), func() {
		FromSeqN[int](algebra.AddMonoid[int]{}, 3, slices.Values(values))
	})
	assert.PanicsWithError(t, ErrLengthMismatch.Error(), func() {
		FromSeqN[int](algebra.AddMonoid[int]{}, 6, slices.Values(values))
	})
}

func TestBuildIsQuiet(t *testing.T) {
	backend := logging.InitForTesting(logging.DEBUG)
	for n := 0; n < 64; n++ {
		New[int64](algebra.AddMonoid[int64]{}, make([]int64, n))
		FromSeq[int64](algebra.AddMonoid[int64]{}, slices.Values(make([]int64, n)))
	}
	assert.Nil(t, backend.Head())
}

func TestAddConsistency(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	m := algebra.AddMonoid[int64]{}
	for round := 0; round < 20; round++ {
		n := r.Intn(30) + 1
		values := make([]int64, n)
		for i := range values {
			values[i] = r.Int63n(100)
		}
		tree := New[int64](m, values)
		i := r.Intn(n)
		delta := r.Int63n(50) - 25
		tree.Add(i, delta)
		assert.Equal(t, values[i]+delta, tree.Fold(Between(i, i+1)))
		assert.Equal(t, bruteFold[int64](m, values, 0, i), tree.FoldRange(0, i))
		assert.Equal(t, bruteFold[int64](m, values, i+1, n), tree.FoldRange(i+1, n))
		values[i] += delta
		checkInvariant(t, tree)
		assert.Equal(t, bruteFold[int64](m, values, 0, n), tree.Fold(All()))
	}
}

func TestAddCommutativeMonoids(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for _, m := range []algebra.Monoid[int64]{
		algebra.MulMonoid[int64]{},
		algebra.NewMinMonoid[int64](),
		algebra.NewMaxMonoid[int64](),
	} {
		values := make([]int64, 11)
		for i := range values {
			values[i] = r.Int63n(7) + 1
		}
		tree := New[int64](m, values)
		for round := 0; round < 10; round++ {
			i, delta := r.Intn(len(values)), r.Int63n(7)+1
			tree.Add(i, delta)
			values[i] = m.Op(values[i], delta)
			checkInvariant(t, tree)
			assert.Equal(t, bruteFold[int64](m, values, 2, 9), tree.FoldRange(2, 9))
		}
	}
}

func TestAddNonCommutativeDiverges(t *testing.T) {
	tree := New[affine](affineMonoid, []affine{{1, 0}, {3, 0}})
	tree.Add(0, affine{1, 1})
	assert.Equal(t, affine{1, 1}, tree.Get(0))
	// the root saw delta after the scaling leaf, not before it
	assert.Equal(t, affine{3, 1}, tree.Fold(All()))
	assert.NotEqual(t, affineMonoid.Op(affine{1, 1}, affine{3, 0}), tree.Fold(All()))

	tree = New[affine](affineMonoid, []affine{{1, 0}, {3, 0}})
	tree.Set(0, affine{1, 1})
	assert.Equal(t, affine{3, 3}, tree.Fold(All()))
}

func TestPointRef(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	values := randomAffines(r, 13)
	tree := New[affine](affineMonoid, values)
	for round := 0; round < 50; round++ {
		i := r.Intn(len(values))
		x := affine{r.Int63n(9) + 1, r.Int63n(9)}

		ref := tree.GetMut(i)
		assert.Equal(t, i, ref.Index())
		assert.Equal(t, values[i], ref.Value())
		ref.Set(x)
		ref.Release()
		values[i] = x

		assert.Equal(t, x, tree.Fold(Between(i, i+1)))
		assert.Equal(t, x, tree.Get(i))
		checkInvariant(t, tree)
		assert.Equal(t, bruteFold[affine](affineMonoid, values, 0, len(values)), tree.Fold(All()))
	}
}

func TestPointRefExclusive(t *testing.T) {
	tree := New[int](algebra.AddMonoid[int]{}, []int{1, 2, 3})
	ref := tree.GetMut(1)
	assert.PanicsWithError(t, ErrBorrowed.Error(), func() { tree.Get(0) })
	assert.PanicsWithError(t, ErrBorrowed.Error(), func() { tree.GetMut(2) })
	assert.PanicsWithError(t, ErrBorrowed.Error(), func() { tree.Fold(All()) })
	assert.PanicsWithError(t, ErrBorrowed.Error(), func() { tree.Add(0, 1) })
	assert.PanicsWithError(t, ErrBorrowed.Error(), func() {
		tree.RightWhile(0, func(int) bool { return true })
	})
	*ref.Ptr() = 20
	ref.Release()
	ref.Release()
	assert.PanicsWithError(t, ErrReleased.Error(), func() { ref.Set(5) })
	assert.Equal(t, 24, tree.Fold(All()))
}

func TestWithPointMutReleasesOnPanic(t *testing.T) {
	tree := New[int](algebra.AddMonoid[int]{}, []int{1, 2, 3, 4})
	assert.Panics(t, func() {
		tree.WithPointMut(2, func(leaf *int) {
			*leaf = 30
			panic("caller failure")
		})
	})
	assert.Equal(t, 37, tree.Fold(All()))
	checkInvariant(t, tree)

	tree.WithPointMut(0, func(leaf *int) { *leaf *= 10 })
	assert.Equal(t, 46, tree.Fold(All()))
}

func TestFoldLaws(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for round := 0; round < 30; round++ {
		n := r.Intn(40) + 1
		values := randomAffines(r, n)
		tree := New[affine](affineMonoid, values)
		for q := 0; q < 30; q++ {
			a := r.Intn(n + 1)
			b := a + r.Intn(n-a+1)
			m := a + r.Intn(b-a+1)
			whole := tree.FoldRange(a, b)
			assert.Equal(t, bruteFold[affine](affineMonoid, values, a, b), whole)
			assert.Equal(t, affineMonoid.Op(tree.FoldRange(a, m), tree.FoldRange(m, b)), whole)
		}
		assert.Equal(t, affineMonoid.Identity(), tree.FoldRange(n, n))
		assert.Equal(t, affineMonoid.Identity(), tree.FoldRange(3, 1))
		assert.Equal(t, affineMonoid.Identity(), tree.Fold(Open(0, 1)))
	}
}

func TestFoldOutOfBounds(t *testing.T) {
	tree := New[int](algebra.AddMonoid[int]{}, []int{1, 2, 3})
	assert.PanicsWithError(t, ErrRangeOutOfBounds.Error(), func() { tree.FoldRange(0, 4) })
	assert.PanicsWithError(t, ErrRangeOutOfBounds.Error(), func() { tree.Fold(Closed(1, 3)) })
	assert.PanicsWithError(t, ErrRangeOutOfBounds.Error(), func() { tree.FoldRange(-1, 2) })
	assert.PanicsWithError(t, ErrIndexOutOfRange.Error(), func() { tree.Get(3) })
	assert.PanicsWithError(t, ErrIndexOutOfRange.Error(), func() { tree.GetMut(-1) })
	assert.PanicsWithError(t, ErrIndexOutOfRange.Error(), func() { tree.Add(5, 1) })
}

func TestRightWhile(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	m := algebra.AddMonoid[int64]{}
	for round := 0; round < 200; round++ {
		n := r.Intn(40) + 1
		values := make([]int64, n)
		for i := range values {
			values[i] = r.Int63n(10)
		}
		tree := New[int64](m, values)
		start := r.Intn(n + 1)
		limit := r.Int63n(60)
		pred := func(s int64) bool { return s <= limit }

		index, sum := tree.RightWhile(start, pred)
		require.GreaterOrEqual(t, index, start)
		require.LessOrEqual(t, index, n)
		assert.Equal(t, tree.FoldRange(start, index), sum)
		assert.True(t, pred(sum))
		if index < n {
			assert.False(t, pred(tree.FoldRange(start, index+1)))
		}
	}
}

func TestRightWhileNonCommutative(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	for round := 0; round < 100; round++ {
		n := r.Intn(20) + 1
		values := make([]affine, n)
		for i := range values {
			values[i] = affine{r.Int63n(2) + 1, r.Int63n(10)}
		}
		tree := New[affine](growingAffineMonoid, values)
		start := r.Intn(n + 1)
		limit := r.Int63n(200) + 1
		pred := func(f affine) bool { return f.a <= limit }

		index, acc := tree.RightWhile(start, pred)
		assert.Equal(t, bruteFold[affine](growingAffineMonoid, values, start, index), acc)
		if index < n {
			assert.False(t, pred(tree.FoldRange(start, index+1)))
		}
	}
}

func TestRightWhileEdges(t *testing.T) {
	tree := New[int](algebra.AddMonoid[int]{}, []int{1, 2, 3})
	index, sum := tree.RightWhile(3, func(s int) bool { return s < 0 || s >= 0 })
	assert.Equal(t, 3, index)
	assert.Equal(t, 0, sum)

	index, sum = tree.RightWhile(0, func(s int) bool { return s <= 100 })
	assert.Equal(t, 3, index)
	assert.Equal(t, 6, sum)

	index, sum = tree.RightWhile(1, func(s int) bool { return s < 2 })
	assert.Equal(t, 1, index)
	assert.Equal(t, 0, sum)

	assert.PanicsWithError(t, ErrPredicateAtIdentity.Error(), func() {
		tree.RightWhile(0, func(s int) bool { return s > 0 })
	})
	assert.PanicsWithError(t, ErrIndexOutOfRange.Error(), func() {
		tree.RightWhile(4, func(int) bool { return true })
	})
}

func TestString(t *testing.T) {
	tree := New[int](algebra.AddMonoid[int]{}, []int{1, 2, 3})
	assert.Equal(t, "SegmentTree{layers: [[6] [3 3] [1 2 3 0]]}", tree.String())
}

func BenchmarkFold(b *testing.B) {
	values := make([]int64, 1<<16)
	for i := range values {
		values[i] = int64(i)
	}
	tree := New[int64](algebra.AddMonoid[int64]{}, values)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.FoldRange(i&0x7fff, 0x8000+i&0x7fff)
	}
}

func BenchmarkAdd(b *testing.B) {
	tree := WithSize[int64](algebra.AddMonoid[int64]{}, 1<<16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Add(i&0xffff, 1)
	}
}
