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

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

var jsonNull = []byte("null")

// MarshalJSON implements json.Marshaler. An unbounded bound encodes as null;
// the other kinds encode as a single-field object, e.g. {"Included": 5} or
// {"Excluded": "foo"}.
func (b Bound[K]) MarshalJSON() ([]byte, error) {
	switch b.Type {
	case BoundTypeUnbounded:
		return jsonNull, nil
	case BoundTypeInclusive:
		return json.Marshal(map[string]K{"Included": b.Value})
	case BoundTypeExclusive:
		return json.Marshal(map[string]K{"Excluded": b.Value})
	default:
		return nil, errors.Errorf("cannot encode %s bound", b.Type)
	}
}

// UnmarshalJSON implements json.Unmarshaler, accepting the format produced
// by MarshalJSON.
func (b *Bound[K]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*b = Unbounded[K]()
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return errors.Wrap(err, "decoding bound")
	}
	if len(fields) != 1 {
		return errors.Errorf("bound must have exactly one field, found %d", len(fields))
	}
	for name, raw := range fields {
		var t BoundType
		switch name {
		case "Included":
			t = BoundTypeInclusive
		case "Excluded":
			t = BoundTypeExclusive
		default:
			return errors.Errorf("unknown bound field %q", name)
		}
		var v K
		if err := json.Unmarshal(raw, &v); err != nil {
			return errors.Wrapf(err, "decoding %s bound value", name)
		}
		*b = Bound[K]{Type: t, Value: v}
	}
	return nil
}
