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

// Package intervaltree implements an interval tree: a binary search tree of
// intervals with inclusive, exclusive, and unbounded endpoints, augmented
// with each subtree's maximum upper bound to prune searches. It is based on
// the data structure described in Cormen et al. (2009, Section 14.3:
// Interval trees). It supports stabbing queries ("is point p, or interval i,
// covered by the stored intervals?"), overlap enumeration, and computing the
// uncovered parts of a query interval.
package intervaltree

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/RaduBerinde/intervalds"
)

// Tree is an interval tree. Intervals are keyed by the interval order
// (lower bound first, upper bound as tie-break); storing the same interval
// twice is a no-op.
//
// The tree is not self-balancing: an adversarial insertion order can
// degenerate it to a list, making operations O(n) instead of O(log n).
//
// A Tree must not be accessed concurrently with any mutating operation;
// callers that need concurrent access must synchronize externally.
type Tree[K any] struct {
	cmp  intervalds.CompareFn[K]
	root *node[K]
	size int
}

// New creates a Tree with the given key comparison function and inserts the
// given seed intervals.
func New[K any](cmp intervalds.CompareFn[K], ivs ...intervalds.Interval[K]) *Tree[K] {
	t := &Tree[K]{cmp: cmp}
	for _, iv := range ivs {
		t.Insert(iv)
	}
	return t
}

// Insert adds iv to the tree and reports whether it was added; it returns
// false if an equal interval (under the interval order) is already stored.
// Overlapping intervals are fine and are stored separately.
//
// The new node is attached as a leaf; every node on the descent path has its
// augmented maximum refreshed in the same pass.
func (t *Tree[K]) Insert(iv intervalds.Interval[K]) bool {
	if t.root == nil {
		t.root = newNode(iv)
		t.size++
		return true
	}
	curr := t.root
	for {
		curr.maybeUpdateValue(t.cmp, iv.Upper)
		switch c := intervalds.CompareIntervals(t.cmp, iv, curr.key); {
		case c == 0:
			return false
		case c < 0:
			if curr.left == nil {
				curr.left = newNode(iv)
				t.size++
				return true
			}
			curr = curr.left
		default:
			if curr.right == nil {
				curr.right = newNode(iv)
				t.size++
				return true
			}
			curr = curr.right
		}
	}
}

// ContainsPoint reports whether p lies inside any stored interval (a
// "stabbing query").
func (t *Tree[K]) ContainsPoint(p K) bool {
	return t.ContainsInterval(intervalds.Point(p))
}

// ContainsInterval reports whether q is fully covered by the union of the
// stored intervals.
func (t *Tree[K]) ContainsInterval(q intervalds.Interval[K]) bool {
	return len(t.Difference(q)) == 0
}

// Overlapping returns the stored intervals that intersect q (partially or
// completely), in ascending interval order.
func (t *Tree[K]) Overlapping(q intervalds.Interval[K]) []intervalds.Interval[K] {
	var acc []intervalds.Interval[K]
	t.appendOverlapping(t.root, q, &acc)
	return acc
}

func (t *Tree[K]) appendOverlapping(
	n *node[K], q intervalds.Interval[K], acc *[]intervalds.Interval[K],
) {
	if n == nil {
		return
	}
	// If the subtree's maximum upper bound falls below q's lower bound,
	// nothing in the subtree (this node included) can intersect q.
	if intervalds.CompareBounds(t.cmp, n.value, intervalds.Upper, q.Lower, intervalds.Lower) < 0 {
		return
	}
	t.appendOverlapping(n.left, q, acc)
	// If this node starts after q ends, so does everything in the right
	// subtree.
	if intervalds.CompareBounds(t.cmp, n.key.Lower, intervalds.Lower, q.Upper, intervalds.Upper) > 0 {
		return
	}
	if intervalds.CompareBounds(t.cmp, n.key.Upper, intervalds.Upper, q.Lower, intervalds.Lower) >= 0 {
		*acc = append(*acc, n.key)
	}
	t.appendOverlapping(n.right, q, acc)
}

// Difference returns the ordered list of maximal subintervals of q that are
// not covered by any stored interval. An empty result means q is fully
// covered; if q does not intersect any stored interval, the result is q
// itself.
//
// A gap endpoint has the opposite inclusivity of the covered endpoint it
// meets, so that covered points stay out of the gap. Two exclusive endpoints
// meeting at the same value leave that single point uncovered, producing a
// [v, v] gap; any other touching combination is contiguous.
func (t *Tree[K]) Difference(q intervalds.Interval[K]) []intervalds.Interval[K] {
	overlaps := t.Overlapping(q)
	if len(overlaps) == 0 {
		return []intervalds.Interval[K]{q}
	}
	var acc []intervalds.Interval[K]

	// Leading gap: q starts strictly before the first covered interval.
	first := overlaps[0]
	if intervalds.CompareLowerBounds(t.cmp, q.Lower, first.Lower) < 0 {
		acc = append(acc, intervalds.Interval[K]{Lower: q.Lower, Upper: invert(first.Lower)})
	}
	if first.Upper.Type == intervalds.BoundTypeUnbounded {
		return acc
	}

	// contiguous is the upper end of the covered run being merged.
	contiguous := first.Upper
	for _, ov := range overlaps[1:] {
		if gap, ok := t.gapBetween(contiguous, ov.Lower); ok {
			acc = append(acc, gap)
			contiguous = ov.Upper
		}
		if ov.Upper.Type == intervalds.BoundTypeUnbounded {
			// Nothing past an unbounded upper bound can be uncovered.
			return acc
		}
		if intervalds.CompareUpperBounds(t.cmp, contiguous, ov.Upper) < 0 {
			contiguous = ov.Upper
		}
	}

	// Trailing gap: q extends past the last covered run.
	if intervalds.CompareUpperBounds(t.cmp, contiguous, q.Upper) < 0 {
		acc = append(acc, intervalds.Interval[K]{Lower: invert(contiguous), Upper: q.Upper})
	}
	return acc
}

// gapBetween returns the uncovered interval between the upper end of a
// covered run and the lower bound of the next overlap, if there is one.
// contiguous is never unbounded here (the callers return early in that
// case); next is a stored interval's lower bound.
func (t *Tree[K]) gapBetween(contiguous, next intervalds.Bound[K]) (intervalds.Interval[K], bool) {
	if next.Type == intervalds.BoundTypeUnbounded {
		return intervalds.Interval[K]{}, false
	}
	// A strict value gap is always a gap. At equal values, only two
	// exclusive endpoints leave a point uncovered: ..v) followed by (v..
	// misses v itself, while an inclusive endpoint on either side makes the
	// runs contiguous.
	c := t.cmp(contiguous.Value, next.Value)
	bothExclusive := contiguous.Type == intervalds.BoundTypeExclusive &&
		next.Type == intervalds.BoundTypeExclusive
	if c > 0 || (c == 0 && !bothExclusive) {
		return intervalds.Interval[K]{}, false
	}
	return intervalds.Interval[K]{Lower: invert(contiguous), Upper: invert(next)}, true
}

// invert flips the inclusivity of a finite bound; covered endpoints must not
// end up inside a gap.
func invert[K any](b intervalds.Bound[K]) intervalds.Bound[K] {
	switch b.Type {
	case intervalds.BoundTypeInclusive:
		return intervalds.Excluded(b.Value)
	case intervalds.BoundTypeExclusive:
		return intervalds.Included(b.Value)
	default:
		return b
	}
}

// RemoveRandomLeaf removes a random leaf from the tree and returns its
// interval; the second return value is false if the tree is empty. The leaf
// is reached by flipping a fair coin at every node with two children, so the
// choice is random but not uniform across leaves.
func (t *Tree[K]) RemoveRandomLeaf() (intervalds.Interval[K], bool) {
	if t.root == nil {
		return intervalds.Interval[K]{}, false
	}
	t.size--
	if t.root.isLeaf() {
		iv := t.root.key
		t.root = nil
		return iv, true
	}

	// Ancestors whose augmented value may shrink once the leaf is gone.
	// maxOther is what the ancestor's value becomes if the removed branch
	// stops contributing: the maximum over its own key and the other child's
	// subtree.
	type pathEntry struct {
		n        *node[K]
		maxOther intervalds.Bound[K]
	}
	var path []pathEntry

	curr := t.root
	var deleted intervalds.Interval[K]
	var newMax intervalds.Bound[K]
	for {
		// curr is always an internal node, so the leaf is detached from its
		// parent once we find it.
		goLeft := curr.right == nil || (curr.left != nil && rand.IntN(2) == 0)
		next, other := curr.right, curr.left
		if goLeft {
			next, other = curr.left, curr.right
		}
		maxOther := curr.key.Upper
		if other != nil {
			maxOther = intervalds.MaxUpperBound(t.cmp, maxOther, other.value)
		}
		if next.isLeaf() {
			deleted = next.key
			newMax = maxOther
			curr.value = maxOther
			if goLeft {
				curr.left = nil
			} else {
				curr.right = nil
			}
			break
		}
		path = append(path, pathEntry{n: curr, maxOther: maxOther})
		curr = next
	}

	// Unwind the path, shrinking the augmented values the removed leaf
	// contributed to. newMax carries the descended child's repaired maximum;
	// each ancestor's new value is the larger of that and its maxOther.
	for i := len(path) - 1; i >= 0; i-- {
		n := path[i].n
		newMax = intervalds.MaxUpperBound(t.cmp, path[i].maxOther, newMax)
		c := intervalds.CompareUpperBounds(t.cmp, n.value, newMax)
		if c < 0 {
			// The augmentation invariant guarantees an ancestor's maximum
			// can only shrink when a leaf is removed.
			panic("intervaltree: augmented max would grow during leaf removal")
		}
		if c == 0 {
			// The value does not change, so neither do the values above it.
			break
		}
		n.value = newMax
	}
	return deleted, true
}

// Len returns the number of intervals stored in the tree.
func (t *Tree[K]) Len() int {
	return t.size
}

// IsEmpty reports whether the tree contains no intervals.
func (t *Tree[K]) IsEmpty() bool {
	return t.size == 0
}

// Clear removes all stored intervals.
func (t *Tree[K]) Clear() {
	t.root = nil
	t.size = 0
}

// String returns a compact nested rendering of the tree structure, for
// debugging.
func (t *Tree[K]) String() string {
	if t.root == nil {
		return "<empty>"
	}
	var sb strings.Builder
	t.root.writeTo(&sb)
	return sb.String()
}

// CheckInvariants verifies the BST ordering, the size counter, and the
// augmented maximum of every node, panicking on any violation. Meant for
// tests.
func (t *Tree[K]) CheckInvariants() {
	var prev intervalds.Interval[K]
	count := 0
	it := t.Iter()
	for iv, ok := it.Next(); ok; iv, ok = it.Next() {
		if count > 0 && intervalds.CompareIntervals(t.cmp, prev, iv) >= 0 {
			panic(fmt.Sprintf("intervaltree: inorder sequence out of order at %s", iv))
		}
		prev = iv
		count++
	}
	if count != t.size {
		panic(fmt.Sprintf("intervaltree: size %d does not match node count %d", t.size, count))
	}
	if t.root != nil {
		t.checkMax(t.root)
	}
}

// checkMax verifies the augmented value of the subtree rooted at n and
// returns the subtree's true maximum upper bound.
func (t *Tree[K]) checkMax(n *node[K]) intervalds.Bound[K] {
	max := n.key.Upper
	if n.left != nil {
		max = intervalds.MaxUpperBound(t.cmp, max, t.checkMax(n.left))
	}
	if n.right != nil {
		max = intervalds.MaxUpperBound(t.cmp, max, t.checkMax(n.right))
	}
	if intervalds.CompareUpperBounds(t.cmp, n.value, max) != 0 {
		panic(fmt.Sprintf(
			"intervaltree: node %s has augmented max %s, expected %s",
			n.key, n.value.StringAs(intervalds.Upper), max.StringAs(intervalds.Upper),
		))
	}
	return max
}
