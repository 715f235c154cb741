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

package algebra

import (
	"math"
	"reflect"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

type AddMonoid[N Number] struct{}

func (AddMonoid[N]) Identity() N { return 0 }
func (AddMonoid[N]) Op(a, b N) N { return a + b }

type MulMonoid[N Number] struct{}

func (MulMonoid[N]) Identity() N { return 1 }
func (MulMonoid[N]) Op(a, b N) N { return a * b }

// MinMonoid must be created with NewMinMonoid, the zero value has a zero
// identity.
type MinMonoid[N Number] struct {
	identity N
}

func NewMinMonoid[N Number]() MinMonoid[N] {
	return MinMonoid[N]{identity: MaxValue[N]()}
}

func (m MinMonoid[N]) Identity() N { return m.identity }

func (m MinMonoid[N]) Op(a, b N) N {
	if b < a {
		return b
	}
	return a
}

// MaxMonoid must be created with NewMaxMonoid.
type MaxMonoid[N Number] struct {
	identity N
}

func NewMaxMonoid[N Number]() MaxMonoid[N] {
	return MaxMonoid[N]{identity: MinValue[N]()}
}

func (m MaxMonoid[N]) Identity() N { return m.identity }

func (m MaxMonoid[N]) Op(a, b N) N {
	if b > a {
		return b
	}
	return a
}

// MaxValue returns the largest value of N, +Inf for floats. It is the
// identity of min.
func MaxValue[N Number]() N {
	var zero N
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Int8:
		v := int64(math.MaxInt8)
		return N(v)
	case reflect.Int16:
		v := int64(math.MaxInt16)
		return N(v)
	case reflect.Int32:
		v := int64(math.MaxInt32)
		return N(v)
	case reflect.Int, reflect.Int64:
		v := int64(math.MaxInt64)
		if reflect.TypeOf(zero).Size() == 4 {
			v = math.MaxInt32
		}
		return N(v)
	case reflect.Uint8:
		v := uint64(math.MaxUint8)
		return N(v)
	case reflect.Uint16:
		v := uint64(math.MaxUint16)
		return N(v)
	case reflect.Uint32:
		v := uint64(math.MaxUint32)
		return N(v)
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		v := uint64(math.MaxUint64)
		if reflect.TypeOf(zero).Size() == 4 {
			v = math.MaxUint32
		}
		return N(v)
	default:
		v := math.Inf(1)
		return N(v)
	}
}

// MinValue returns the smallest value of N, -Inf for floats. It is the
// identity of max.
func MinValue[N Number]() N {
	var zero N
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Int8:
		v := int64(math.MinInt8)
		return N(v)
	case reflect.Int16:
		v := int64(math.MinInt16)
		return N(v)
	case reflect.Int32:
		v := int64(math.MinInt32)
		return N(v)
	case reflect.Int, reflect.Int64:
		v := int64(math.MinInt64)
		if reflect.TypeOf(zero).Size() == 4 {
			v = math.MinInt32
		}
		return N(v)
	case reflect.Float32, reflect.Float64:
		v := math.Inf(-1)
		return N(v)
	default:
		return 0
	}
}
