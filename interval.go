// Copyright 2025 Radu Berinde.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package intervalds

// Interval is a contiguous region of the key space, delimited by a lower and
// an upper bound. Either side can be inclusive, exclusive, or unbounded.
type Interval[K any] struct {
	Lower Bound[K]
	Upper Bound[K]
}

// MakeInterval is a shorthand for constructing an interval from two bounds.
func MakeInterval[K any](lower, upper Bound[K]) Interval[K] {
	return Interval[K]{Lower: lower, Upper: upper}
}

// Point returns the degenerate interval [v, v].
func Point[K any](v K) Interval[K] {
	return Interval[K]{Lower: Included(v), Upper: Included(v)}
}

// All returns the interval (-inf, +inf) covering the entire key space.
func All[K any]() Interval[K] {
	return Interval[K]{Lower: Unbounded[K](), Upper: Unbounded[K]()}
}

// CompareIntervals orders intervals by lower bound, breaking ties by upper
// bound (each compared in its respective role).
func CompareIntervals[K any](cmp CompareFn[K], a, b Interval[K]) int {
	if c := CompareLowerBounds(cmp, a.Lower, b.Lower); c != 0 {
		return c
	}
	return CompareUpperBounds(cmp, a.Upper, b.Upper)
}

// Overlap reports whether a and b share at least one point, with endpoint
// inclusivity taken into account.
func Overlap[K any](cmp CompareFn[K], a, b Interval[K]) bool {
	return CompareBounds(cmp, a.Lower, Lower, b.Upper, Upper) <= 0 &&
		CompareBounds(cmp, b.Lower, Lower, a.Upper, Upper) <= 0
}

func (iv Interval[K]) String() string {
	return iv.Lower.StringAs(Lower) + ", " + iv.Upper.StringAs(Upper)
}
