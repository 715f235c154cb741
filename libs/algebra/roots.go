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

// RootsOfUnity supplies the constants a fast Fourier transform over T needs.
// NthRootOfUnity must be deterministic: the same n always yields the same
// principal root, and NthRootOfUnityInv(n) is its multiplicative inverse.
type RootsOfUnity[T any] interface {
	// Name identifies the value domain, e.g. in cache keys.
	Name() string
	One() T
	FromInt(n int) T
	NthRootOfUnity(n int) (T, error)
	NthRootOfUnityInv(n int) (T, error)
}
