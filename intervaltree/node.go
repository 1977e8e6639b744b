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

import (
	"fmt"
	"strings"

	"github.com/RaduBerinde/intervalds"
)

// node is a tree node. Keys in the left subtree compare less than the node's
// key under the interval order, keys in the right subtree greater; equal
// keys are rejected at insertion. value is the maximum upper bound (under
// the upper bound order) across the node's own key and its entire subtree.
type node[K any] struct {
	key   intervalds.Interval[K]
	value intervalds.Bound[K]
	left  *node[K]
	right *node[K]
}

func newNode[K any](iv intervalds.Interval[K]) *node[K] {
	return &node[K]{key: iv, value: iv.Upper}
}

func (n *node[K]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// maybeUpdateValue grows the node's augmented maximum to account for an
// upper bound being inserted somewhere below it.
func (n *node[K]) maybeUpdateValue(cmp intervalds.CompareFn[K], upper intervalds.Bound[K]) {
	n.value = intervalds.MaxUpperBound(cmp, n.value, upper)
}

func (n *node[K]) writeTo(sb *strings.Builder) {
	fmt.Fprintf(sb, "{%s max=%s", n.key, n.value.StringAs(intervalds.Upper))
	if n.left != nil {
		sb.WriteString(" left:")
		n.left.writeTo(sb)
	}
	if n.right != nil {
		sb.WriteString(" right:")
		n.right.writeTo(sb)
	}
	sb.WriteString("}")
}
