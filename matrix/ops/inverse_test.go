// Package ops_test contains unit tests for LU decomposition and inversion.
package ops_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/matcache/matrix"
	"github.com/katalvlaran/matcache/matrix/ops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9 // tolerance for floating-point comparisons

// mustRows builds a Dense from literal rows or fails the test.
func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// TestLU_Validation covers nil and non-square input.
func TestLU_Validation(t *testing.T) {
	_, _, err := ops.LU(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	_, _, err = ops.LU(rect)
	assert.ErrorIs(t, err, matrix.ErrNonSquare, "2x3 input must be rejected")
}

// TestLU_Reconstructs verifies that L·U reproduces the input matrix and
// that L carries a unit diagonal.
func TestLU_Reconstructs(t *testing.T) {
	a := mustRows(t, [][]float64{
		{4, 3, 2},
		{2, 1, 3},
		{6, 5, 1},
	})

	L, U, err := ops.LU(a)
	require.NoError(t, err)

	var i int
	var d float64
	for i = 0; i < L.Rows(); i++ {
		d, err = L.At(i, i)
		require.NoError(t, err)
		assert.Equal(t, 1.0, d, "L diagonal must be unit")
	}

	prod, err := matrix.Mul(L, U)
	require.NoError(t, err)
	ok, err := matrix.AllClose(prod, a, eps)
	require.NoError(t, err)
	assert.True(t, ok, "L·U must reconstruct the input")
}

// TestInverse_Known2x2 pins the inverse of a diagonal matrix.
func TestInverse_Known2x2(t *testing.T) {
	m := mustRows(t, [][]float64{{2, 0}, {0, 2}})
	want := mustRows(t, [][]float64{{0.5, 0}, {0, 0.5}})

	inv, err := ops.Inverse(m)
	require.NoError(t, err)

	ok, err := matrix.AllClose(inv, want, eps)
	require.NoError(t, err)
	assert.True(t, ok, "inverse of 2I must be I/2")
}

// TestInverse_Property checks M·M⁻¹ ≈ I ≈ M⁻¹·M on a dense 3×3.
func TestInverse_Property(t *testing.T) {
	m := mustRows(t, [][]float64{
		{4, 7, 2},
		{3, 6, 1},
		{2, 5, 3},
	})

	inv, err := ops.Inverse(m)
	require.NoError(t, err)

	id, err := matrix.Identity(3)
	require.NoError(t, err)

	left, err := matrix.Mul(m, inv)
	require.NoError(t, err)
	ok, err := matrix.AllClose(left, id, eps)
	require.NoError(t, err)
	assert.True(t, ok, "M·M⁻¹ must be the identity")

	right, err := matrix.Mul(inv, m)
	require.NoError(t, err)
	ok, err = matrix.AllClose(right, id, eps)
	require.NoError(t, err)
	assert.True(t, ok, "M⁻¹·M must be the identity")
}

// TestInverse_NormalizedZeros verifies that zero entries of a computed
// inverse carry a positive sign bit: forward substitution produces -0.0
// for off-diagonal basis entries, and letting it escape would render as
// "-0" and split the fingerprint of numerically equal matrices.
func TestInverse_NormalizedZeros(t *testing.T) {
	m := mustRows(t, [][]float64{{2, 0}, {0, 2}})
	want := mustRows(t, [][]float64{{0.5, 0}, {0, 0.5}})

	inv, err := ops.Inverse(m)
	require.NoError(t, err)

	var i, j int // loop iterators
	var v float64
	for i = 0; i < inv.Rows(); i++ {
		for j = 0; j < inv.Cols(); j++ {
			v, err = inv.At(i, j)
			require.NoError(t, err)
			if v == 0 {
				assert.False(t, math.Signbit(v), "entry [%d,%d] must be +0, not -0", i, j)
			}
		}
	}

	assert.Equal(t, matrix.Fingerprint(want), matrix.Fingerprint(inv),
		"computed inverse must share the fingerprint of the equal literal")
}

// TestInverse_NoPivoting pins the deterministic no-pivot contract: a zero
// leading pivot is reported as singular even when the matrix is invertible
// by row exchange (permutation matrices being the canonical case).
func TestInverse_NoPivoting(t *testing.T) {
	perm := mustRows(t, [][]float64{{0, 1}, {1, 0}})

	_, err := ops.Inverse(perm)
	assert.ErrorIs(t, err, matrix.ErrSingular,
		"zero leading pivot must surface as ErrSingular under the no-pivot scheme")
}

// TestInverse_Singular verifies the singular sentinel on a rank-deficient
// matrix (second row is twice the first).
func TestInverse_Singular(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2}, {2, 4}})

	_, err := ops.Inverse(m)
	assert.ErrorIs(t, err, matrix.ErrSingular, "rank-1 input must be singular")
}

// TestInverse_NonSquare verifies the shape sentinel.
func TestInverse_NonSquare(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	_, err := ops.Inverse(m)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}
