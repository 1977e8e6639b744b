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

package intervaltree

import "github.com/RaduBerinde/intervalds"

// Iter returns an iterator over the stored intervals in ascending interval
// order. The iterator is lazy and cannot be restarted; it must not be used
// across mutations of the tree.
func (t *Tree[K]) Iter() *Iterator[K] {
	return &Iterator[K]{curr: t.root}
}

// Iterator is an inorder iterator over the intervals stored in a Tree. It
// keeps an explicit stack of nodes that were visited but not yet yielded.
type Iterator[K any] struct {
	toVisit []*node[K]
	curr    *node[K]
}

// Next returns the next interval; the second return value is false once the
// iterator is exhausted.
func (it *Iterator[K]) Next() (intervalds.Interval[K], bool) {
	if it.curr == nil && len(it.toVisit) == 0 {
		return intervalds.Interval[K]{}, false
	}
	for it.curr != nil {
		it.toVisit = append(it.toVisit, it.curr)
		it.curr = it.curr.left
	}
	n := it.toVisit[len(it.toVisit)-1]
	it.toVisit = it.toVisit[:len(it.toVisit)-1]
	it.curr = n.right
	return n.key, true
}
