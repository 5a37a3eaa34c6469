// SPDX-License-Identifier: MIT

package uniform_test

import (
	"testing"

	"github.com/katalvlaran/uniformity/set"
	"github.com/katalvlaran/uniformity/uniform"
)

// line returns {0, ..., n-1}.
func line(n int) set.Finite[int] {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = i
	}

	return set.Of(xs...)
}

// BenchmarkFromMetric validates the integer metric on 16 points.
func BenchmarkFromMetric(b *testing.B) {
	carrier := line(16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := uniform.FromMetric(carrier, absDist, uniform.Halving(16)); err != nil {
			b.Fatalf("FromMetric failed: %v", err)
		}
	}
}

// BenchmarkSup joins a metric space with an equivalence space on 8 points.
func BenchmarkSup(b *testing.B) {
	carrier := line(8)
	u, err := uniform.FromMetric(carrier, absDist, uniform.Halving(8))
	if err != nil {
		b.Fatalf("FromMetric failed: %v", err)
	}
	v := uniform.Comap(func(x int) int { return x / 2 }, uniform.Discrete(carrier), carrier)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = uniform.Sup(u, v)
	}
}

// BenchmarkOpenSets enumerates every open subset of a 10-point space.
func BenchmarkOpenSets(b *testing.B) {
	u := uniform.Comap(func(x int) int { return x / 3 }, uniform.Discrete(line(10)), line(10))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := u.OpenSets(10); err != nil {
			b.Fatalf("OpenSets failed: %v", err)
		}
	}
}
