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

package tensor

import (
	"fmt"
	"iter"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrIndexOutOfRange = errors.New("tensor index out of range")
	ErrRankMismatch    = errors.New("tensor rank mismatch")
	ErrShapeMismatch   = errors.New("tensor shape mismatch")
)

// Tensor is a dense row-major array with a fixed shape.
type Tensor[T any] struct {
	data []T
	dims []int
}

func volume(dims []int) int {
	size := 1
	for _, d := range dims {
		if d < 0 {
			panic(ErrShapeMismatch)
		}
		size *= d
	}
	return size
}

// New returns a tensor of the given shape with every cell set to fill.
func New[T any](fill T, dims ...int) *Tensor[T] {
	data := make([]T, volume(dims))
	for i := range data {
		data[i] = fill
	}
	return &Tensor[T]{data: data, dims: append([]int(nil), dims...)}
}

// FromSlice wraps data without copying; len(data) must match the shape.
func FromSlice[T any](data []T, dims ...int) *Tensor[T] {
	if len(data) != volume(dims) {
		panic(ErrShapeMismatch)
	}
	return &Tensor[T]{data: data, dims: append([]int(nil), dims...)}
}

// FromSeq fills a tensor of the given shape in row-major order.
func FromSeq[T any](seq iter.Seq[T], dims ...int) *Tensor[T] {
	size := volume(dims)
	data := make([]T, 0, size)
	for v := range seq {
		if len(data) == size {
			panic(ErrShapeMismatch)
		}
		data = append(data, v)
	}
	return FromSlice(data, dims...)
}

func (t *Tensor[T]) Dims() []int {
	return append([]int(nil), t.dims...)
}

func (t *Tensor[T]) Len() int {
	return len(t.data)
}

// Data exposes the backing row-major slice.
func (t *Tensor[T]) Data() []T {
	return t.data
}

func (t *Tensor[T]) offset(index []int) int {
	if len(index) != len(t.dims) {
		panic(ErrRankMismatch)
	}
	off := 0
	for k, i := range index {
		if i < 0 || i >= t.dims[k] {
			panic(ErrIndexOutOfRange)
		}
		off = off*t.dims[k] + i
	}
	return off
}

func (t *Tensor[T]) Get(index ...int) T {
	return t.data[t.offset(index)]
}

func (t *Tensor[T]) Set(index []int, v T) {
	t.data[t.offset(index)] = v
}

func (t *Tensor[T]) Ptr(index ...int) *T {
	return &t.data[t.offset(index)]
}

// String prints matrices row by row and other ranks flat.
func (t *Tensor[T]) String() string {
	if len(t.dims) != 2 {
		return fmt.Sprintf("%v%v", t.dims, t.data)
	}
	var sb strings.Builder
	cols := t.dims[1]
	for r := 0; r < t.dims[0]; r++ {
		for c := 0; c < cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprint(&sb, t.data[r*cols+c])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
