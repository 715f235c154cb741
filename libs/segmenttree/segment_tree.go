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
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/deepflowio/deepflow-algo/libs/algebra"
	"github.com/deepflowio/deepflow-algo/libs/utils"
)

// Precondition violations panic with one of these.
var (
	ErrIndexOutOfRange     = errors.New("index out of range")
	ErrRangeOutOfBounds    = errors.New("range out of bounds")
	ErrBorrowed            = errors.New("segment tree is borrowed by a point reference")
	ErrReleased            = errors.New("point reference already released")
	ErrPredicateAtIdentity = errors.New("predicate is false at identity")
	ErrLengthMismatch      = errors.New("sequence length mismatch")
)

// SegmentTree keeps monoid aggregates over n leaves in an implicit binary
// heap of 2*p slots, p = NextPowerOfTwo(n). Leaves live at [p, p+n), the
// padding [p+n, 2p) holds the identity and node i aggregates 2i and 2i+1.
// Slot 0 is unused.
//
// The monoid is called through an interface, one indirect call per Op.
type SegmentTree[T any] struct {
	monoid   algebra.Monoid[T]
	n        int
	values   []T
	borrowed bool
}

func newTree[T any](m algebra.Monoid[T], n int, fill func(leaves []T)) *SegmentTree[T] {
	offset := utils.NextPowerOfTwo(n)
	values := make([]T, 2*offset)
	identity := m.Identity()
	for i := range values {
		values[i] = identity
	}
	t := &SegmentTree[T]{monoid: m, n: n, values: values}
	if fill != nil {
		fill(values[offset : offset+n])
		for i := offset - 1; i > 0; i-- {
			t.pull(i)
		}
	}
	return t
}

// New builds a tree whose leaves are a copy of src.
func New[T any](m algebra.Monoid[T], src []T) *SegmentTree[T] {
	return newTree(m, len(src), func(leaves []T) {
		copy(leaves, src)
	})
}

// WithSize builds a tree of size identity leaves.
func WithSize[T any](m algebra.Monoid[T], size int) *SegmentTree[T] {
	if size < 0 {
		panic(ErrIndexOutOfRange)
	}
	return newTree(m, size, nil)
}

// FromSeq builds a tree from a sequence of unknown length.
func FromSeq[T any](m algebra.Monoid[T], seq iter.Seq[T]) *SegmentTree[T] {
	var buffer []T
	for v := range seq {
		buffer = append(buffer, v)
	}
	return New(m, buffer)
}

// FromSeqN builds a tree from a sequence known to yield exactly n values,
// writing them straight into the leaves.
func FromSeqN[T any](m algebra.Monoid[T], n int, seq iter.Seq[T]) *SegmentTree[T] {
	return newTree(m, n, func(leaves []T) {
		i := 0
		for v := range seq {
			if i == len(leaves) {
				panic(ErrLengthMismatch)
			}
			leaves[i] = v
			i++
		}
		if i != len(leaves) {
			panic(ErrLengthMismatch)
		}
	})
}

func (t *SegmentTree[T]) offset() int {
	return len(t.values) / 2
}

func (t *SegmentTree[T]) pull(i int) {
	t.values[i] = t.monoid.Op(t.values[2*i], t.values[2*i+1])
}

func (t *SegmentTree[T]) checkBorrow() {
	if t.borrowed {
		panic(ErrBorrowed)
	}
}

func (t *SegmentTree[T]) checkIndex(index int) {
	if index < 0 || index >= t.n {
		panic(ErrIndexOutOfRange)
	}
}

func (t *SegmentTree[T]) Len() int {
	return t.n
}

func (t *SegmentTree[T]) Monoid() algebra.Monoid[T] {
	return t.monoid
}

// Get returns leaf index.
func (t *SegmentTree[T]) Get(index int) T {
	t.checkBorrow()
	t.checkIndex(index)
	return t.values[t.offset()+index]
}

// Leaves returns a copy of the n visible leaves.
func (t *SegmentTree[T]) Leaves() []T {
	t.checkBorrow()
	offset := t.offset()
	leaves := make([]T, t.n)
	copy(leaves, t.values[offset:offset+t.n])
	return leaves
}

// GetMut opens an exclusive handle on leaf index. Until it is released every
// other operation on the tree panics with ErrBorrowed.
func (t *SegmentTree[T]) GetMut(index int) *PointRef[T] {
	t.checkBorrow()
	t.checkIndex(index)
	t.borrowed = true
	return &PointRef[T]{tree: t, slot: t.offset() + index}
}

// WithPointMut hands fn a pointer to leaf index and repropagates the
// ancestors once fn returns or panics.
func (t *SegmentTree[T]) WithPointMut(index int, fn func(leaf *T)) {
	ref := t.GetMut(index)
	defer ref.Release()
	fn(ref.Ptr())
}

// Set replaces leaf index with value.
func (t *SegmentTree[T]) Set(index int, value T) {
	t.WithPointMut(index, func(leaf *T) {
		*leaf = value
	})
}

// Add replaces leaf index with Op(leaf, delta) and folds delta into every
// ancestor directly instead of recomputing them from their children. The
// result matches a full recompute only when Op is commutative: AddMonoid,
// MulMonoid, MinMonoid and MaxMonoid over integers qualify, floating point
// sums agree up to rounding. A FuncMonoid such as affine composition does
// not; use Set there. Replacing a leaf must go through Set or GetMut.
func (t *SegmentTree[T]) Add(index int, delta T) {
	t.checkBorrow()
	t.checkIndex(index)
	i := t.offset() + index
	t.values[i] = t.monoid.Op(t.values[i], delta)
	for i >>= 1; i > 0; i >>= 1 {
		t.values[i] = t.monoid.Op(t.values[i], delta)
	}
}

// Fold returns the ordered Op-reduction of the leaves in r. A range whose
// start lies past its end folds to the identity instead of failing. An end
// beyond Len() panics.
func (t *SegmentTree[T]) Fold(r Range) T {
	start, end := r.Bounds(t.n)
	return t.FoldRange(start, end)
}

// FoldRange folds the half-open range [start, end).
func (t *SegmentTree[T]) FoldRange(start, end int) T {
	t.checkBorrow()
	if start > end {
		return t.monoid.Identity()
	}
	if start < 0 || end > t.n {
		panic(ErrRangeOutOfBounds)
	}

	offset := t.offset()
	i, j := start+offset-1, end+offset
	left, right := t.monoid.Identity(), t.monoid.Identity()
	for i+1 < j {
		if i&1 == 0 {
			left = t.monoid.Op(left, t.values[i+1])
		}
		if j&1 == 1 {
			right = t.monoid.Op(t.values[j-1], right)
		}
		i >>= 1
		j >>= 1
	}
	return t.monoid.Op(left, right)
}

// RightWhile returns the largest r such that pred holds on the fold of
// [start, r), together with that fold. pred must be true at the identity
// and must stay false once it turns false as leaves are appended.
func (t *SegmentTree[T]) RightWhile(start int, pred func(T) bool) (int, T) {
	t.checkBorrow()
	if start < 0 || start > t.n {
		panic(ErrIndexOutOfRange)
	}
	identity := t.monoid.Identity()
	if !pred(identity) {
		panic(ErrPredicateAtIdentity)
	}
	if start == t.n {
		return t.n, identity
	}

	offset := t.offset()
	i := start + offset
	sum := identity
	for {
		// climb to the largest aligned block starting at i
		i >>= utils.TrailingZeros(i)
		next := t.monoid.Op(sum, t.values[i])
		if !pred(next) {
			for i < offset {
				i <<= 1
				next = t.monoid.Op(sum, t.values[i])
				if pred(next) {
					sum = next
					i++
				}
			}
			// padding leaves are identity, so stopping inside it is clamped
			return utils.Min(i-offset, t.n), sum
		}
		sum = next
		i++
		if utils.IsPowerOfTwo(i) {
			break
		}
	}
	return t.n, sum
}

// String dumps the tree layer by layer, root first.
func (t *SegmentTree[T]) String() string {
	var sb strings.Builder
	sb.WriteString("SegmentTree{layers: [")
	for begin := 1; begin < len(t.values); begin <<= 1 {
		if begin > 1 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, t.values[begin:begin<<1])
	}
	sb.WriteString("]}")
	return sb.String()
}
