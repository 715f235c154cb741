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
	"math/rand"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/deepflowio/deepflow-algo/libs/algebra"
)

func TestUnionFind(t *testing.T) {
	Convey("TestUnionFind", t, func() {
		u := New[int](algebra.AddMonoid[int]{}, 4)
		So(u.Len(), ShouldEqual, 4)
		for i := 0; i < 4; i++ {
			So(u.Find(i), ShouldEqual, i)
			So(u.Cardinality(i), ShouldEqual, 1)
			So(u.Get(i), ShouldEqual, 0)
		}

		Convey("values merge on unite", func() {
			for i := 0; i < 4; i++ {
				u.Update(i, func(v *int) { *v = i + 1 })
			}
			newRoot, oldRoot, ok := u.Unite(0, 1)
			So(ok, ShouldBeTrue)
			So(newRoot, ShouldNotEqual, oldRoot)
			So(u.Find(0), ShouldEqual, newRoot)
			So(u.Find(1), ShouldEqual, newRoot)
			So(u.Get(1), ShouldEqual, 3)
			So(u.Cardinality(0), ShouldEqual, 2)

			_, _, ok = u.Unite(1, 0)
			So(ok, ShouldBeFalse)

			u.Unite(2, 3)
			u.Unite(3, 0)
			So(u.Cardinality(2), ShouldEqual, 4)
			So(u.Get(0), ShouldEqual, 10)
			So(u.Same(1, 2), ShouldBeTrue)
		})

		Convey("larger set keeps its root", func() {
			u.Unite(0, 1)
			u.Unite(0, 2)
			root := u.Find(0)
			newRoot, oldRoot, ok := u.Unite(3, 0)
			So(ok, ShouldBeTrue)
			So(newRoot, ShouldEqual, root)
			So(oldRoot, ShouldEqual, 3)
		})

		Convey("push and extend add singletons", func() {
			So(u.Push(7), ShouldEqual, 4)
			u.Extend(8, 9)
			So(u.Len(), ShouldEqual, 7)
			So(u.Get(6), ShouldEqual, 9)
			u.Unite(4, 6)
			So(u.Get(4), ShouldEqual, 16)
			So(u.Same(4, 5), ShouldBeFalse)
		})
	})
}

func TestUnionFindRandom(t *testing.T) {
	Convey("TestUnionFindRandom", t, func() {
		r := rand.New(rand.NewSource(20240101))
		const n = 200
		u := New[int](algebra.AddMonoid[int]{}, 0)
		label := make([]int, n)
		for i := 0; i < n; i++ {
			u.Push(1)
			label[i] = i
		}
		for step := 0; step < 300; step++ {
			a, b := r.Intn(n), r.Intn(n)
			u.Unite(a, b)
			from, to := label[b], label[a]
			for k := range label {
				if label[k] == from {
					label[k] = to
				}
			}
		}
		for i := 0; i < n; i++ {
			size := 0
			for k := range label {
				if label[k] == label[i] {
					size++
				}
			}
			So(u.Cardinality(i), ShouldEqual, size)
			So(u.Get(i), ShouldEqual, size)
			j := r.Intn(n)
			So(u.Same(i, j), ShouldEqual, label[i] == label[j])
		}
	})
}
