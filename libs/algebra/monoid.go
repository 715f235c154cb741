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

// Monoid is a set equipped with an associative operation Op and an identity.
//
// Implementations promise:
//
//	Op(Op(a, b), c) == Op(a, Op(b, c))
//	Op(Identity(), a) == Op(a, Identity()) == a
//
// Op must be a pure function of its two operands.
type Monoid[T any] interface {
	Identity() T
	Op(a, b T) T
}

// MonoidAction is a monoid over F acting on another monoid over T.
//
// Implementations must satisfy:
//
//	Apply(f, Apply(g, a)) == Apply(Op(f, g), a)
//	Apply(Identity(), a) == a
//	Apply(f, t.Op(a, b)) == t.Op(Apply(f, a), Apply(f, b))
//
// Nothing in libs consumes it yet; it is the hook for lazy range updates.
type MonoidAction[F, T any] interface {
	Monoid[F]
	Apply(f F, x T) T
}

type Unit struct{}

// UnitMonoid is the trivial monoid with a single element.
type UnitMonoid struct{}

func (UnitMonoid) Identity() Unit    { return Unit{} }
func (UnitMonoid) Op(_, _ Unit) Unit { return Unit{} }

// FuncMonoid adapts an identity value and an operation into a Monoid. The
// caller is responsible for the monoid laws.
type FuncMonoid[T any] struct {
	identity T
	op       func(a, b T) T
}

func NewFuncMonoid[T any](identity T, op func(a, b T) T) FuncMonoid[T] {
	return FuncMonoid[T]{identity: identity, op: op}
}

func (m FuncMonoid[T]) Identity() T {
	return m.identity
}

func (m FuncMonoid[T]) Op(a, b T) T {
	return m.op(a, b)
}

// Fold reduces values left to right.
func Fold[T any](m Monoid[T], values ...T) T {
	acc := m.Identity()
	for _, v := range values {
		acc = m.Op(acc, v)
	}
	return acc
}
