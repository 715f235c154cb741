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

// PointRef is an exclusive handle on one leaf of a SegmentTree. The leaf may
// be changed freely while the handle is open. Release restores the ancestor
// aggregates and returns the tree to its owner.
type PointRef[T any] struct {
	tree     *SegmentTree[T]
	slot     int
	released bool
}

func (r *PointRef[T]) check() {
	if r.released {
		panic(ErrReleased)
	}
}

func (r *PointRef[T]) Index() int {
	return r.slot - r.tree.offset()
}

func (r *PointRef[T]) Value() T {
	r.check()
	return r.tree.values[r.slot]
}

func (r *PointRef[T]) Set(value T) {
	r.check()
	r.tree.values[r.slot] = value
}

// Ptr is valid until Release.
func (r *PointRef[T]) Ptr() *T {
	r.check()
	return &r.tree.values[r.slot]
}

// Release recomputes every ancestor of the leaf, bottom-up. Calling it again
// is a no-op, so it is safe to defer next to an explicit call.
func (r *PointRef[T]) Release() {
	if r.released {
		return
	}
	r.released = true
	for i := r.slot >> 1; i > 0; i >>= 1 {
		r.tree.pull(i)
	}
	r.tree.borrowed = false
}
