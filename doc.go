// Package matcache is a small toolkit for computing matrix inverses once
// and reusing them until the matrix changes.
//
// 🚀 What is matcache?
//
//	A compact, pure-Go library built around one idea: inverting a matrix is
//	expensive, so do it at most once per matrix value. It brings together:
//		• Dense matrices: a minimal row-major float64 implementation
//		• An inversion primitive: Doolittle LU + forward/backward substitution
//		• A memoized accessor: one container, one cached inverse, strict
//		  invalidate-on-set semantics
//
// ✨ Why choose matcache?
//
//   - Predictable guarantees – the cached inverse always matches the current
//     value; replacing the value always clears the cache
//   - Safe under contention – one mutex covers invalidate-on-set and the
//     check-then-compute-then-store path, so at most one computation runs
//     per matrix generation
//   - Observable – cache hits and misses are reported through an injected
//     zap logger, silent by default
//   - Extensible – swap the inversion primitive via options (test doubles,
//     alternative decompositions)
//
// Everything is organized under two subpackages:
//
//	matrix/   — Matrix interface, Dense storage, Mul/AllClose/Fingerprint
//	            helpers, and the LU-based inversion primitive in matrix/ops
//	invcache/ — the CachedMatrix container and its memoized SolveInverse
//
// Quick sketch:
//
//	m, _ := matrix.NewDenseFromRows([][]float64{{2, 0}, {0, 2}})
//	cm := invcache.New(m)
//	inv, _ := cm.SolveInverse() // computes
//	inv, _ = cm.SolveInverse()  // cached, no recomputation
//	cm.SetValue(other)          // invalidates; next solve recomputes
//
//	go get github.com/katalvlaran/matcache
package matcache
