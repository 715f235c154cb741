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

package unionfind

import (
	"github.com/deepflowio/deepflow-algo/libs/algebra"
)

// UnionFind is a disjoint-set forest with path compression and union by
// size. Every set carries a value; merging two sets combines their values
// with the monoid.
type UnionFind[V any] struct {
	monoid algebra.Monoid[V]
	// negative size for roots, parent index otherwise
	parent []int
	data   []V
}

// New creates n singleton sets, each holding the monoid identity.
func New[V any](m algebra.Monoid[V], n int) *UnionFind[V] {
	u := &UnionFind[V]{
		monoid: m,
		parent: make([]int, n),
		data:   make([]V, n),
	}
	identity := m.Identity()
	for i := range u.parent {
		u.parent[i] = -1
		u.data[i] = identity
	}
	return u
}

func (u *UnionFind[V]) Len() int {
	return len(u.parent)
}

// Push adds a singleton set holding v and returns its index.
func (u *UnionFind[V]) Push(v V) int {
	u.parent = append(u.parent, -1)
	u.data = append(u.data, v)
	return len(u.parent) - 1
}

func (u *UnionFind[V]) Extend(vs ...V) {
	for _, v := range vs {
		u.Push(v)
	}
}

func (u *UnionFind[V]) Find(i int) int {
	root := i
	for u.parent[root] >= 0 {
		root = u.parent[root]
	}
	for u.parent[i] >= 0 {
		next := u.parent[i]
		u.parent[i] = root
		i = next
	}
	return root
}

// Unite merges the sets of i and j. It returns false when they already
// share a set, otherwise the root that survives and the root that was
// absorbed.
func (u *UnionFind[V]) Unite(i, j int) (newRoot, oldRoot int, ok bool) {
	i, j = u.Find(i), u.Find(j)
	if i == j {
		return i, j, false
	}
	merged := u.monoid.Op(u.data[i], u.data[j])
	if -u.parent[i] < -u.parent[j] {
		i, j = j, i
	}
	u.parent[i] += u.parent[j]
	u.parent[j] = i
	u.data[i] = merged
	var zero V
	u.data[j] = zero
	return i, j, true
}

func (u *UnionFind[V]) Same(i, j int) bool {
	return u.Find(i) == u.Find(j)
}

func (u *UnionFind[V]) Cardinality(i int) int {
	return -u.parent[u.Find(i)]
}

// Get returns the value of the set containing i.
func (u *UnionFind[V]) Get(i int) V {
	return u.data[u.Find(i)]
}

// Update modifies the value of the set containing i in place.
func (u *UnionFind[V]) Update(i int, fn func(v *V)) {
	fn(&u.data[u.Find(i)])
}
