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
	"encoding/json"

	"github.com/RaduBerinde/intervalds"
	"github.com/pkg/errors"
)

// The persisted form of a tree is {"root": <node|null>, "size": N}, where a
// node is {"key": [<bound>, <bound>], "value": <bound>, "left": ...,
// "right": ...} and a bound is null (unbounded) or {"Included": v} /
// {"Excluded": v}. Encoding and re-decoding a tree yields a structurally
// identical tree; the empty tree encodes as {"root": null, "size": 0}.

type jsonTree[K any] struct {
	Root *jsonNode[K] `json:"root"`
	Size int          `json:"size"`
}

type jsonNode[K any] struct {
	Key   [2]intervalds.Bound[K] `json:"key"`
	Value intervalds.Bound[K]    `json:"value"`
	Left  *jsonNode[K]           `json:"left"`
	Right *jsonNode[K]           `json:"right"`
}

// MarshalJSON implements json.Marshaler.
func (t *Tree[K]) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonTree[K]{Root: toJSONNode(t.root), Size: t.size})
}

// UnmarshalJSON implements json.Unmarshaler. The receiver's comparison
// function is kept; the decoded structure replaces any previously stored
// intervals and is taken as-is, without re-checking the tree invariants.
func (t *Tree[K]) UnmarshalJSON(data []byte) error {
	var enc jsonTree[K]
	if err := json.Unmarshal(data, &enc); err != nil {
		return errors.Wrap(err, "decoding interval tree")
	}
	t.root = fromJSONNode(enc.Root)
	t.size = enc.Size
	return nil
}

func toJSONNode[K any](n *node[K]) *jsonNode[K] {
	if n == nil {
		return nil
	}
	return &jsonNode[K]{
		Key:   [2]intervalds.Bound[K]{n.key.Lower, n.key.Upper},
		Value: n.value,
		Left:  toJSONNode(n.left),
		Right: toJSONNode(n.right),
	}
}

func fromJSONNode[K any](enc *jsonNode[K]) *node[K] {
	if enc == nil {
		return nil
	}
	return &node[K]{
		key:   intervalds.Interval[K]{Lower: enc.Key[0], Upper: enc.Key[1]},
		value: enc.Value,
		left:  fromJSONNode(enc.Left),
		right: fromJSONNode(enc.Right),
	}
}
