// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Consumers:
//   - eps: IsUnitary, ApproxEqual.
//   - validateNaNInf: New, FromRows, Set on the resulting Dense.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance for IsUnitary and ApproxEqual:
	// entries a, b are equal when |a - b| <= eps.
	DefaultEpsilon = 1e-10

	// DefaultValidateNaNInf leaves IEEE semantics untouched: NaN and ±Inf
	// entries are stored and propagate through arithmetic.
	DefaultValidateNaNInf = false
)

// ---------- Internal panic messages (no magic strings) ----------

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithEpsilon sets the tolerance used by IsUnitary and ApproxEqual.
//
// Errors:
//   - Panics with a stable message when eps is negative, NaN or ±Inf.
//
// AI-Hints:
//   - 1e-10 suits well-conditioned double-precision data; loosen for
//     matrices assembled from rounded inputs (e.g. 1/√2 literals).
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf makes New, FromRows and the resulting matrix's Set
// reject NaN and ±Inf entries with ErrNaNInf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf restores the default IEEE pass-through.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewOptions resolves opts against the defaults.
// Exposed for callers that want to inspect the effective policy.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// Epsilon returns the effective tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether non-finite entries are rejected.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// gatherOptions applies user options over the defaults, in order; the last
// setter for a field wins. nil options are skipped.
// Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
