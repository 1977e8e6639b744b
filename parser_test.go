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
	"reflect"
	"testing"
)

func TestParser(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		p := MakeIntParser()
		testParse(t, p, "[1, 2)", MakeInterval(Included(1), Excluded(2)), "")
		testParse(t, p, "[1, 2]", MakeInterval(Included(1), Included(2)), "")
		testParse(t, p, "(1, 2)", MakeInterval(Excluded(1), Excluded(2)), "")
		testParse(t, p, "(1, 2]", MakeInterval(Excluded(1), Included(2)), "")
		testParse(t, p, "(-inf, 2]", MakeInterval(Unbounded[int](), Included(2)), "")
		testParse(t, p, "[-5, +inf)", MakeInterval(Included(-5), Unbounded[int]()), "")
		testParse(t, p, "(-inf, +inf)", All[int](), "")

		testParse(t, p, "[1, 2) ", MakeInterval(Included(1), Excluded(2)), "")
		testParse(t, p, "[1, 2) foo", MakeInterval(Included(1), Excluded(2)), "foo")
		testParse(t, p, "(1, 2]    foo bar", MakeInterval(Excluded(1), Included(2)), "foo bar")

		testParseErr(t, p, "")
		testParseErr(t, p, "1, 2)")
		testParseErr(t, p, "[1, 2")
		testParseErr(t, p, "[1,2)")
		testParseErr(t, p, "[x, 2)")
		testParseErr(t, p, "[1, y)")
		testParseErr(t, p, "[-inf, 2)")
		testParseErr(t, p, "(1, +inf]")
		testParseErr(t, p, "(+inf, 2)")
		testParseErr(t, p, "(1, -inf)")
	})
	t.Run("string", func(t *testing.T) {
		p := MakeStringParser()
		testParse(t, p, "[abc, de)", MakeInterval(Included("abc"), Excluded("de")), "")
		testParse(t, p, "(abc, de]", MakeInterval(Excluded("abc"), Included("de")), "")
		testParse(t, p, "(-inf, de)", MakeInterval(Unbounded[string](), Excluded("de")), "")
		testParse(t, p, "[abc, de] foo bar", MakeInterval(Included("abc"), Included("de")), "foo bar")

		testParseErr(t, p, "abc, de)")
		testParseErr(t, p, "[abc, de")
		testParseErr(t, p, "[abc,de)")
	})
}

func testParse[K any](
	t *testing.T, p Parser[K], input string, expected Interval[K], expectedRemainder string,
) {
	t.Helper()
	iv, rem, err := p.ParseInterval(input)
	if err != nil {
		t.Fatalf("%q: unexpected error: %v", input, err)
	}
	if !reflect.DeepEqual(iv, expected) || rem != expectedRemainder {
		t.Fatalf("expected %v %q, got %v %q", expected, expectedRemainder, iv, rem)
	}
}

func testParseErr[K any](t *testing.T, p Parser[K], input string) {
	if _, _, err := p.ParseInterval(input); err == nil {
		t.Helper()
		t.Fatalf("%q: expected error", input)
	}
}

func TestMustParseIntervalPrefix(t *testing.T) {
	p := MakeIntParser()
	iv, rest := MustParseIntervalPrefix(p, "[1, 2) (3, +inf)")
	if !reflect.DeepEqual(iv, MakeInterval(Included(1), Excluded(2))) {
		t.Fatalf("unexpected interval %v", iv)
	}
	iv, rest = MustParseIntervalPrefix(p, rest)
	if !reflect.DeepEqual(iv, MakeInterval(Excluded(3), Unbounded[int]())) || rest != "" {
		t.Fatalf("unexpected interval %v, remainder %q", iv, rest)
	}
}

func TestParseFormatRoundtrip(t *testing.T) {
	p := MakeIntParser()
	for _, s := range []string{
		"[1, 2)", "[1, 2]", "(1, 2)", "(1, 2]",
		"(-inf, 2]", "[-5, +inf)", "(-inf, +inf)",
	} {
		if got := MustParseInterval(p, s).String(); got != s {
			t.Errorf("%q round-tripped to %q", s, got)
		}
	}
}
