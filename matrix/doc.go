// Package matrix provides the dense linear-algebra primitives used by
// matcache: a minimal Matrix interface, a row-major Dense implementation,
// and the handful of free functions (Mul, AllClose, Fingerprint) that the
// memoized inverse accessor and its tests rely on.
//
// ✨ Key features:
//   - Matrix interface with bounds-checked At/Set and deep Clone
//   - Dense: flat-slice row-major storage, cache friendly
//   - Mul with a Dense fast-path and a generic interface fallback
//   - AllClose for elementwise tolerance comparison (ε ≥ 0)
//   - Fingerprint: xxhash content digest identifying a matrix value
//
// Error discipline:
//
//	All user-triggered failures return package-level sentinel errors
//	(see errors.go) and are matched with errors.Is. Nothing here panics.
//
// The inversion primitive itself lives in matrix/ops.
package matrix
