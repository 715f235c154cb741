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

// Cut is one end of a Range. An unbounded cut ignores endpoint and closed.
type Cut struct {
	endpoint int
	closed   bool
	bounded  bool
}

func (c Cut) hasBound() bool {
	return c.bounded
}

// Range is an index interval over leaves. Both ends may be open, closed or
// unbounded, and resolve to a half-open [start, end) against the tree size.
type Range struct {
	lower, upper Cut
}

var (
	unbounded = Cut{}
	RANGE_ALL = Range{unbounded, unbounded}
)

// Between is the half-open range [lower, upper).
func Between(lower, upper int) Range {
	return Range{Cut{lower, true, true}, Cut{upper, false, true}}
}

// Closed is the range [lower, upper].
func Closed(lower, upper int) Range {
	return Range{Cut{lower, true, true}, Cut{upper, true, true}}
}

// Open is the range (lower, upper).
func Open(lower, upper int) Range {
	return Range{Cut{lower, false, true}, Cut{upper, false, true}}
}

func AtLeast(lower int) Range {
	return Range{Cut{lower, true, true}, unbounded}
}

func GreaterThan(lower int) Range {
	return Range{Cut{lower, false, true}, unbounded}
}

func LessThan(upper int) Range {
	return Range{unbounded, Cut{upper, false, true}}
}

func AtMost(upper int) Range {
	return Range{unbounded, Cut{upper, true, true}}
}

func All() Range {
	return RANGE_ALL
}

// Bounds translates r to [start, end) for a sequence of n elements.
func (r Range) Bounds(n int) (start, end int) {
	switch {
	case !r.lower.hasBound():
		start = 0
	case r.lower.closed:
		start = r.lower.endpoint
	default:
		start = r.lower.endpoint + 1
	}
	switch {
	case !r.upper.hasBound():
		end = n
	case r.upper.closed:
		end = r.upper.endpoint + 1
	default:
		end = r.upper.endpoint
	}
	return
}
