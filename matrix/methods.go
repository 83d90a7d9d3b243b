// SPDX-License-Identifier: MIT

// Package matrix: free functions over Matrix values.
// Every function validates its inputs first, returns sentinel errors from
// errors.go, and carries a Dense fast-path next to a generic interface
// fallback, so custom Matrix implementations keep working.
package matrix

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// operation names used for error context.
const (
	opMul      = "Mul"
	opAllClose = "AllClose"
)

// matrixErrorf wraps a sentinel with the failing operation's name.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// ValidateNotNil reports ErrNilMatrix for a nil Matrix value.
// A typed-nil *Dense hidden behind the interface is also rejected.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return ErrNilMatrix
	}

	return nil
}

// Mul performs standard matrix multiplication of a and b (a × b).
// Stage 1 (Validate): nil-check and inner-dimension match.
// Stage 2 (Prepare): allocate result Dense.
// Stage 3 (Execute): triple loop, with fast-path for *Dense operands.
// Stage 4 (Finalize): return result.
// Complexity: O(r·n·c) time and O(r·c) memory.
func Mul(a, b Matrix) (Matrix, error) {
	// Stage 1: Validate inputs
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}

	// Stage 2: Allocate result Dense
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Stage 3: Fast-path for two Dense matrices
	var (
		i, j, k         int // loop iterators
		av, bv, current float64
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// row-major multiplication into res.data
			// da.data layout: i*aCols + k; db.data layout: k*bCols + j
			var offA, offB, offR int
			for i = 0; i < aRows; i++ {
				offA = i * aCols
				offR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[offA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					offB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[offR+j] += av * db.data[offB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = 0.0
			for k = 0; k < aCols; k++ {
				av, _ = a.At(i, k) // safe: bounds ensured
				if av == 0 {
					continue // skip zero for performance
				}
				bv, _ = b.At(k, j) // safe: bounds ensured
				current += av * bv // accumulate product
			}
			_ = res.Set(i, j, current) // safe: within bounds
		}
	}

	// Stage 4: Return result
	return res, nil
}

// AllClose reports whether a and b have the same shape and agree elementwise
// within the non-negative tolerance eps (|a[i][j] − b[i][j]| ≤ eps).
// Stage 1 (Validate): nil-checks, finite eps ≥ 0, identical shapes.
// Stage 2 (Execute): elementwise comparison with early exit on first mismatch.
// Errors: ErrNilMatrix, ErrInvalidEpsilon, ErrDimensionMismatch.
// Complexity: O(r·c) time, O(1) memory.
func AllClose(a, b Matrix, eps float64) (bool, error) {
	// Stage 1: Validate inputs
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		return false, matrixErrorf(opAllClose, ErrInvalidEpsilon)
	}
	rows, cols := a.Rows(), a.Cols()
	if rows != b.Rows() || cols != b.Cols() {
		return false, matrixErrorf(opAllClose, ErrDimensionMismatch)
	}

	// Stage 2: Compare elementwise
	var (
		i, j   int // loop iterators
		av, bv float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			av, _ = a.At(i, j) // safe: bounds ensured
			bv, _ = b.At(i, j) // safe: same shape
			if math.Abs(av-bv) > eps {
				return false, nil // first mismatch decides
			}
		}
	}

	return true, nil
}

// Fingerprint returns an xxhash digest of m's dimensions and raw float64
// bits, identifying one matrix value (one cache generation) in log output.
// Two matrices of equal shape and equal elements share a fingerprint; a nil
// matrix hashes to 0. NaN payloads and signed zeros are distinguished since
// raw bits are hashed, not numeric values.
// Complexity: O(r·c) time, O(1) memory.
func Fingerprint(m Matrix) uint64 {
	if ValidateNotNil(m) != nil {
		return 0
	}

	h := xxhash.New()
	var buf [8]byte
	// Dimensions first: a 1×2 and a 2×1 with equal data must differ.
	binary.LittleEndian.PutUint64(buf[:], uint64(m.Rows()))
	_, _ = h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(m.Cols()))
	_, _ = h.Write(buf[:])

	// Fast-path: hash Dense backing storage directly.
	if d, ok := m.(*Dense); ok {
		for _, v := range d.data {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			_, _ = h.Write(buf[:])
		}

		return h.Sum64()
	}

	// Fallback: walk the interface in row-major order.
	var (
		i, j int
		v    float64
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j) // safe: bounds ensured
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			_, _ = h.Write(buf[:])
		}
	}

	return h.Sum64()
}
