// SPDX-License-Identifier: MIT

// Package invcache: domain types. Options live in options.go, the container
// and its operations in invcache.go, per the package conventions.
package invcache

import (
	"sync"

	"github.com/katalvlaran/matcache/matrix"
	"go.uber.org/zap"
)

// Inverter computes the inverse of a square, invertible matrix. It is the
// external primitive the memoized solver delegates to. An Inverter must
// fail for non-square or singular input and must not retain or mutate its
// argument. The default is ops.Inverse.
type Inverter func(matrix.Matrix) (matrix.Matrix, error)

// CachedMatrix pairs one matrix value with at most one cached inverse.
//
// Invariant: whenever inverse is non-nil it is the mathematical inverse of
// the current value. SetValue restores inverse to nil in the same critical
// section that replaces value, so no state pairs a stale inverse with a
// newer value. One mutex guards both fields; see SolveInverse for the
// at-most-one-computation-per-generation guarantee.
//
// The zero value is not usable; construct with New.
type CachedMatrix struct {
	mu      sync.Mutex    // guards value and inverse together
	value   matrix.Matrix // current matrix, taken as-is from the caller
	inverse matrix.Matrix // nil until solved for the current value

	logger   *zap.Logger // notice sink for cache hits and misses
	inverter Inverter    // the inversion primitive
}
