// SPDX-License-Identifier: MIT

// Package invcache: functional configuration for the CachedMatrix container.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults,
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: options fields are unexported; public APIs consume ...Option.
package invcache

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/matcache/matrix/ops"
)

// panic messages for invalid option constructor input (programmer errors).
const (
	panicNilLogger   = "invcache: WithLogger requires a non-nil *zap.Logger"
	panicNilInverter = "invcache: WithInverter requires a non-nil Inverter"
)

// Option mutates the container's resolved configuration.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
// It is intentionally unexported to prevent external mutation.
type options struct {
	logger   *zap.Logger // notice sink; DefaultLogger
	inverter Inverter    // inversion primitive; DefaultInverter
}

// DefaultLogger returns the default notice sink: a no-op zap logger, so the
// container is silent unless the caller injects a real logger.
func DefaultLogger() *zap.Logger { return zap.NewNop() }

// DefaultInverter returns the default inversion primitive, ops.Inverse.
func DefaultInverter() Inverter { return ops.Inverse }

// WithLogger injects the notice sink that receives the informational
// "computing inverse" / "returning cached inverse" messages.
// Notices are advisory only; they carry the value's dimensions and content
// fingerprint as structured fields and are not part of the functional
// contract.
// Panics when l is nil (programmer error).
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	// Assign validated logger
	return func(o *options) { o.logger = l }
}

// WithInverter swaps the inversion primitive invoked on a cache miss.
// Intended for test doubles (call counting, canned failures) and for
// alternative decompositions.
// Panics when fn is nil (programmer error).
func WithInverter(fn Inverter) Option {
	if fn == nil {
		panic(panicNilInverter)
	}

	// Assign validated inverter
	return func(o *options) { o.inverter = fn }
}

// gatherOptions resolves defaults, then applies user setters in order.
func gatherOptions(user ...Option) options {
	o := options{
		logger:   DefaultLogger(),
		inverter: DefaultInverter(),
	}
	for _, opt := range user {
		opt(&o)
	}

	return o
}
