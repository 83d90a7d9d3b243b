// Package ops provides the matrix decomposition and inversion primitives
// for matcache. Inverse is the trusted collaborator the memoized accessor
// in invcache delegates to: it computes M⁻¹ via Doolittle LU decomposition
// and forward/backward substitution, fail-fast, without pivoting.
//
// Errors: ops returns the matrix package sentinels (matrix.ErrNonSquare,
// matrix.ErrSingular, matrix.ErrNilMatrix), wrapped with operation context
// and matchable via errors.Is.
package ops
