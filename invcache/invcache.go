// SPDX-License-Identifier: MIT

// Package invcache: the CachedMatrix operations and the memoized solver.
package invcache

import (
	"fmt"

	"github.com/katalvlaran/matcache/matrix"
	"go.uber.org/zap"
)

// notice messages emitted by SolveInverse.
const (
	msgCacheHit  = "returning cached inverse"
	msgComputing = "computing inverse"
)

// New constructs a container holding initial with no cached inverse.
// The matrix is taken as-is: no shape or invertibility validation happens
// here — squareness and invertibility are the caller's preconditions,
// checked only by the inversion primitive on the first solve.
// Complexity: O(1).
func New(initial matrix.Matrix, opts ...Option) *CachedMatrix {
	o := gatherOptions(opts...)

	return &CachedMatrix{
		value:    initial,
		logger:   o.logger,
		inverter: o.inverter,
	}
}

// SetValue replaces the current matrix with m and unconditionally drops the
// cached inverse. Invalidation is not a dirty-check: the cache is cleared
// even when m equals the old value, so a later SolveInverse recomputes.
// Both writes happen in one critical section.
// Complexity: O(1).
func (c *CachedMatrix) SetValue(m matrix.Matrix) {
	c.mu.Lock()
	c.value = m     // replace current generation
	c.inverse = nil // invalidate, no staleness window
	c.mu.Unlock()
}

// Value returns the current matrix. No side effects.
// Complexity: O(1).
func (c *CachedMatrix) Value() matrix.Matrix {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.value
}

// SetInverse stores inv as the cached inverse directly, with no validation
// that inv actually inverts the current value.
//
// TRUST BOUNDARY: this operation exists for the memoized solver; calling it
// with an incorrect matrix silently corrupts the cache invariant. Prefer
// SolveInverse.
// Complexity: O(1).
func (c *CachedMatrix) SetInverse(inv matrix.Matrix) {
	c.mu.Lock()
	c.inverse = inv
	c.mu.Unlock()
}

// Inverse returns the cached inverse for the current value, comma-ok style.
// ok is false until the first successful SolveInverse of this generation.
// No side effects.
// Complexity: O(1).
func (c *CachedMatrix) Inverse() (matrix.Matrix, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inverse == nil {
		return nil, false
	}

	return c.inverse, true
}

// SolveInverse returns the inverse of the current value, memoized.
// Blueprint:
//
//	Stage 1 (Check): under the lock, return the cached inverse when present.
//	Stage 2 (Compute): otherwise invoke the inversion primitive on the value.
//	Stage 3 (Store): on success, cache the result for this generation.
//
// The mutex is held across all three stages, so concurrent callers observe
// at most one inversion per generation and never a stale inverse paired
// with a newer value.
//
// Errors: the primitive's error is propagated wrapped (errors.Is still
// matches matrix.ErrNonSquare / matrix.ErrSingular); a failed attempt
// leaves the cache absent, so the next call retries from scratch.
// Complexity: O(1) on a hit; the primitive's cost (O(n³) for the default)
// plus O(n²) for the notice fingerprint on a miss.
func (c *CachedMatrix) SolveInverse() (matrix.Matrix, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Stage 1: Cache hit — no recomputation, no state change
	if c.inverse != nil {
		c.logger.Info(msgCacheHit, c.noticeFields()...)

		return c.inverse, nil
	}

	// Stage 2: Cache miss — delegate to the inversion primitive
	c.logger.Info(msgComputing, c.noticeFields()...)
	inv, err := c.inverter(c.value)
	if err != nil {
		// No cache mutation on failure; container keeps its pre-call state.
		return nil, fmt.Errorf("SolveInverse: %w", err)
	}

	// Stage 3: Store exactly one cache write for this generation
	c.inverse = inv

	return inv, nil
}

// noticeFields describes the current value for notice messages.
// Caller must hold c.mu.
func (c *CachedMatrix) noticeFields() []zap.Field {
	if matrix.ValidateNotNil(c.value) != nil {
		return []zap.Field{zap.Bool("nil_value", true)}
	}

	return []zap.Field{
		zap.Int("rows", c.value.Rows()),
		zap.Int("cols", c.value.Cols()),
		zap.Uint64("fingerprint", matrix.Fingerprint(c.value)),
	}
}
