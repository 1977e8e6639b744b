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
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Parser is an interface for parsing intervals from textual input. It is
// used by datadriven tests and debugging tools.
type Parser[K any] interface {
	// ParseInterval parses an interval from the beginning of the input and
	// returns the remaining input (with separating whitespace trimmed).
	//
	// The syntax matches Interval.String: "[" and "]" delimit inclusive
	// endpoints, "(" and ")" exclusive ones, and "-inf" / "+inf" stand for
	// unbounded endpoints (which must use the exclusive delimiters). The two
	// endpoints are separated by ", ". Examples:
	//   [1, 10)   (10, 30]   (-inf, 5]   [0, +inf)
	ParseInterval(input string) (_ Interval[K], remainder string, _ error)
}

// MakeParser creates a Parser which uses the given function to parse key
// values. Key values must not contain ", ", ")", or "]".
func MakeParser[K any](parseKey func(string) (K, error)) Parser[K] {
	return parser[K]{parseKey: parseKey}
}

// MakeIntParser creates a Parser for int keys.
func MakeIntParser() Parser[int] {
	return MakeParser(strconv.Atoi)
}

// MakeStringParser creates a Parser for string keys.
func MakeStringParser() Parser[string] {
	return MakeParser(func(s string) (string, error) { return s, nil })
}

// MustParseInterval parses an interval which must make up the entire input.
func MustParseInterval[K any](p Parser[K], input string) Interval[K] {
	iv, rem, err := p.ParseInterval(input)
	if err != nil {
		panic(err)
	}
	if rem != "" {
		panic(errors.Errorf("unexpected input %q after interval", rem))
	}
	return iv
}

// MustParseIntervalPrefix parses an interval at the beginning of the input
// and returns the rest of the input.
func MustParseIntervalPrefix[K any](p Parser[K], input string) (Interval[K], string) {
	iv, rem, err := p.ParseInterval(input)
	if err != nil {
		panic(err)
	}
	return iv, rem
}

type parser[K any] struct {
	parseKey func(string) (K, error)
}

func (p parser[K]) ParseInterval(input string) (Interval[K], string, error) {
	fail := func(format string, args ...interface{}) (Interval[K], string, error) {
		return Interval[K]{}, "", errors.Wrapf(errors.Errorf(format, args...), "parsing interval from %q", input)
	}
	if input == "" || (input[0] != '[' && input[0] != '(') {
		return fail("expected '[' or '('")
	}
	lowerInclusive := input[0] == '['
	rest := input[1:]
	sep := strings.Index(rest, ", ")
	if sep < 0 {
		return fail("expected ', ' separating the bounds")
	}
	lowerTok := rest[:sep]
	rest = rest[sep+2:]
	end := strings.IndexAny(rest, "])")
	if end < 0 {
		return fail("expected ']' or ')'")
	}
	upperTok := rest[:end]
	upperInclusive := rest[end] == ']'
	remainder := strings.TrimLeft(rest[end+1:], " ")

	lower, err := p.parseBound(lowerTok, Lower, lowerInclusive)
	if err != nil {
		return fail("%v", err)
	}
	upper, err := p.parseBound(upperTok, Upper, upperInclusive)
	if err != nil {
		return fail("%v", err)
	}
	return Interval[K]{Lower: lower, Upper: upper}, remainder, nil
}

func (p parser[K]) parseBound(tok string, role Role, inclusive bool) (Bound[K], error) {
	if tok == "-inf" || tok == "+inf" {
		if inclusive {
			return Bound[K]{}, errors.Errorf("%s endpoint cannot be inclusive", tok)
		}
		if (role == Lower) != (tok == "-inf") {
			return Bound[K]{}, errors.Errorf("%s not valid as %s bound", tok, roleName(role))
		}
		return Unbounded[K](), nil
	}
	v, err := p.parseKey(tok)
	if err != nil {
		return Bound[K]{}, errors.Wrapf(err, "invalid %s bound %q", roleName(role), tok)
	}
	if inclusive {
		return Included(v), nil
	}
	return Excluded(v), nil
}

func roleName(r Role) string {
	if r == Lower {
		return "lower"
	}
	return "upper"
}
