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
	"cmp"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/RaduBerinde/intervalds"
)

func benchIntervals(rng *rand.Rand, n, keyRange int) []intervalds.Interval[int] {
	res := make([]intervalds.Interval[int], n)
	for i := range res {
		a := rng.IntN(keyRange)
		b := a + 1 + rng.IntN(keyRange/10)
		res[i] = intervalds.MakeInterval(intervalds.Included(a), intervalds.Excluded(b))
	}
	return res
}

func benchTree(rng *rand.Rand, n, keyRange int) *Tree[int] {
	return New(cmp.Compare[int], benchIntervals(rng, n, keyRange)...)
}

func BenchmarkInsert(b *testing.B) {
	for _, n := range []int{100, 1000, 10000} {
		b.Run(fmt.Sprint(n), func(b *testing.B) {
			rng := rand.New(rand.NewPCG(0, 0))
			intervals := benchIntervals(rng, n, 10*n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				tree := New(cmp.Compare[int])
				for _, interval := range intervals {
					tree.Insert(interval)
				}
			}
		})
	}
}

func BenchmarkOverlapping(b *testing.B) {
	for _, n := range []int{100, 1000, 10000} {
		b.Run(fmt.Sprint(n), func(b *testing.B) {
			rng := rand.New(rand.NewPCG(0, 0))
			tree := benchTree(rng, n, 10*n)
			queries := benchIntervals(rng, 100, 10*n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = tree.Overlapping(queries[i%len(queries)])
			}
		})
	}
}

func BenchmarkDifference(b *testing.B) {
	for _, n := range []int{100, 1000, 10000} {
		b.Run(fmt.Sprint(n), func(b *testing.B) {
			rng := rand.New(rand.NewPCG(0, 0))
			tree := benchTree(rng, n, 10*n)
			queries := benchIntervals(rng, 100, 10*n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = tree.Difference(queries[i%len(queries)])
			}
		})
	}
}

func BenchmarkContainsPoint(b *testing.B) {
	for _, n := range []int{100, 1000, 10000} {
		b.Run(fmt.Sprint(n), func(b *testing.B) {
			rng := rand.New(rand.NewPCG(0, 0))
			tree := benchTree(rng, n, 10*n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = tree.ContainsPoint(rng.IntN(10 * n))
			}
		})
	}
}
