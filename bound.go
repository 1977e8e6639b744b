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

// Package intervalds provides primitives for intervals over an arbitrary
// totally-ordered key space: endpoints that can be inclusive, exclusive or
// unbounded, a total order over them, and parsing/formatting helpers. The
// intervaltree subpackage builds an augmented search tree on top of these
// primitives.
package intervalds

import "fmt"

// CompareFn is a comparison function for keys; it returns a negative, zero,
// or positive value if a is less than, equal to, or greater than b.
type CompareFn[K any] func(a, b K) int

// BoundType describes how an interval endpoint treats its value.
type BoundType uint8

const (
	// BoundTypeInclusive endpoints contain their value.
	BoundTypeInclusive BoundType = iota
	// BoundTypeExclusive endpoints do not contain their value.
	BoundTypeExclusive
	// BoundTypeUnbounded endpoints extend indefinitely; the direction depends
	// on the role (lower bounds extend toward -inf, upper bounds toward
	// +inf). The bound's value is meaningless.
	BoundTypeUnbounded
)

func (t BoundType) String() string {
	switch t {
	case BoundTypeInclusive:
		return "inclusive"
	case BoundTypeExclusive:
		return "exclusive"
	case BoundTypeUnbounded:
		return "unbounded"
	default:
		return fmt.Sprintf("<invalid bound type %d>", uint8(t))
	}
}

// Bound is one endpoint of an interval. The zero value is an inclusive bound
// on the zero key.
type Bound[K any] struct {
	Type BoundType
	// Value is the endpoint's position; it is ignored when Type is
	// BoundTypeUnbounded.
	Value K
}

// Included returns an inclusive bound on v.
func Included[K any](v K) Bound[K] {
	return Bound[K]{Type: BoundTypeInclusive, Value: v}
}

// Excluded returns an exclusive bound on v.
func Excluded[K any](v K) Bound[K] {
	return Bound[K]{Type: BoundTypeExclusive, Value: v}
}

// Unbounded returns a bound that extends indefinitely in its role's
// direction.
func Unbounded[K any]() Bound[K] {
	return Bound[K]{Type: BoundTypeUnbounded}
}

// Role is the position a bound occupies within an interval. The same bound
// orders differently depending on its role: an exclusive lower bound (a, ..
// sits just above a, whereas an exclusive upper bound .., a) sits just below
// it.
type Role uint8

const (
	// Lower is the role of an interval's start bound.
	Lower Role = iota
	// Upper is the role of an interval's end bound.
	Upper
)

// CompareBounds compares two bounds, each interpreted in its given role,
// under the "real line with infinitesimals" order: a bound maps to its value
// plus an epsilon shift (+eps for an exclusive lower bound, -eps for an
// exclusive upper bound, 0 otherwise), with unbounded endpoints mapping to
// -inf (lower role) or +inf (upper role). Returns a negative, zero, or
// positive value following the usual comparator convention.
func CompareBounds[K any](cmp CompareFn[K], a Bound[K], aRole Role, b Bound[K], bRole Role) int {
	aInf := a.Type == BoundTypeUnbounded
	bInf := b.Type == BoundTypeUnbounded
	switch {
	case aInf && bInf:
		return infinitySign(aRole) - infinitySign(bRole)
	case aInf:
		return infinitySign(aRole)
	case bInf:
		return -infinitySign(bRole)
	}
	if c := cmp(a.Value, b.Value); c != 0 {
		return c
	}
	return epsilonShift(a.Type, aRole) - epsilonShift(b.Type, bRole)
}

// CompareLowerBounds compares a and b, both interpreted as lower bounds.
func CompareLowerBounds[K any](cmp CompareFn[K], a, b Bound[K]) int {
	return CompareBounds(cmp, a, Lower, b, Lower)
}

// CompareUpperBounds compares a and b, both interpreted as upper bounds.
func CompareUpperBounds[K any](cmp CompareFn[K], a, b Bound[K]) int {
	return CompareBounds(cmp, a, Upper, b, Upper)
}

// MaxUpperBound returns the larger of a and b under the upper bound order,
// preferring a on ties.
func MaxUpperBound[K any](cmp CompareFn[K], a, b Bound[K]) Bound[K] {
	if CompareUpperBounds(cmp, a, b) >= 0 {
		return a
	}
	return b
}

func infinitySign(r Role) int {
	if r == Lower {
		return -1
	}
	return 1
}

func epsilonShift(t BoundType, r Role) int {
	if t != BoundTypeExclusive {
		return 0
	}
	if r == Lower {
		return 1
	}
	return -1
}

// StringAs renders the bound as the given role's half of an interval, e.g.
// "[5" for an inclusive lower bound and "5)" for an exclusive upper bound.
func (b Bound[K]) StringAs(r Role) string {
	if r == Lower {
		switch b.Type {
		case BoundTypeInclusive:
			return fmt.Sprintf("[%v", b.Value)
		case BoundTypeExclusive:
			return fmt.Sprintf("(%v", b.Value)
		default:
			return "(-inf"
		}
	}
	switch b.Type {
	case BoundTypeInclusive:
		return fmt.Sprintf("%v]", b.Value)
	case BoundTypeExclusive:
		return fmt.Sprintf("%v)", b.Value)
	default:
		return "+inf)"
	}
}
