// Package invcache implements a memoized accessor for the inverse of a
// matrix: one container, one matrix value, one optionally cached inverse.
//
// 🚀 What is invcache?
//
//	A single-slot cache with a strict get/set/invalidate contract:
//	  • New wraps a matrix; the cached inverse starts absent
//	  • SolveInverse returns the cached inverse when present, otherwise
//	    computes it once via the inversion primitive and stores it
//	  • SetValue replaces the matrix and unconditionally drops the cached
//	    inverse — no dirty-check, no state where a stale inverse survives
//
// ✨ Key guarantees:
//   - Whenever the cached inverse is present, it is the inverse of the
//     current value (upheld by construction; SetInverse is the one trusted
//     escape hatch and performs no validation)
//   - At most one inversion per matrix generation, even under contention:
//     a single mutex covers invalidate-on-set and check-then-compute-then-store
//   - A failed inversion caches nothing; the container stays in its pre-call
//     state and the next SolveInverse retries from scratch
//
// ⚙️ Usage:
//
//	m, _ := matrix.NewDenseFromRows([][]float64{{2, 0}, {0, 2}})
//	cm := invcache.New(m, invcache.WithLogger(logger))
//
//	inv, err := cm.SolveInverse() // notice: "computing inverse"
//	inv, err = cm.SolveInverse()  // notice: "returning cached inverse"
//
//	cm.SetValue(next)             // invalidates the cached inverse
//
// Cache hits and misses are reported through an injected *zap.Logger
// (silent zap.NewNop by default); the inversion primitive defaults to
// ops.Inverse and can be swapped with WithInverter.
package invcache
