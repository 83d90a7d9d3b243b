package invcache_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/matcache/invcache"
	"github.com/katalvlaran/matcache/matrix"
)

// benchMatrix builds a well-conditioned n×n matrix: random entries with a
// boosted diagonal, so the default inverter never hits a zero pivot.
func benchMatrix(b *testing.B, n int, seed int64) *matrix.Dense {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatalf("NewDense(%d,%d): %v", n, n, err)
	}
	var i, j int // loop iterators
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v := rng.Float64()
			if i == j {
				v += float64(n) // diagonal dominance keeps pivots away from zero
			}
			_ = m.Set(i, j, v)
		}
	}

	return m
}

// benchmarkSolveHit measures the cached path: one warm-up solve, then b.N hits.
func benchmarkSolveHit(b *testing.B, n int) {
	cm := invcache.New(benchMatrix(b, n, 1))
	if _, err := cm.SolveInverse(); err != nil {
		b.Fatalf("warm-up solve: %v", err)
	}

	b.ResetTimer() // ignore setup and the initial computation
	for i := 0; i < b.N; i++ {
		if _, err := cm.SolveInverse(); err != nil {
			b.Fatalf("SolveInverse failed: %v", err)
		}
	}
}

// benchmarkSolveMiss measures the computing path: SetValue before every
// solve forces a fresh generation each iteration.
func benchmarkSolveMiss(b *testing.B, n int) {
	m := benchMatrix(b, n, 1)
	cm := invcache.New(m)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cm.SetValue(m) // invalidate: next solve recomputes
		if _, err := cm.SolveInverse(); err != nil {
			b.Fatalf("SolveInverse failed: %v", err)
		}
	}
}

// BenchmarkSolveInverse_Hit8 benchmarks cache hits on an 8×8 matrix.
func BenchmarkSolveInverse_Hit8(b *testing.B) { benchmarkSolveHit(b, 8) }

// BenchmarkSolveInverse_Hit64 benchmarks cache hits on a 64×64 matrix.
func BenchmarkSolveInverse_Hit64(b *testing.B) { benchmarkSolveHit(b, 64) }

// BenchmarkSolveInverse_Miss8 benchmarks forced recomputation on an 8×8 matrix.
func BenchmarkSolveInverse_Miss8(b *testing.B) { benchmarkSolveMiss(b, 8) }

// BenchmarkSolveInverse_Miss64 benchmarks forced recomputation on a 64×64 matrix.
func BenchmarkSolveInverse_Miss64(b *testing.B) { benchmarkSolveMiss(b, 64) }
