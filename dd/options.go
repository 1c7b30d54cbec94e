// SPDX-License-Identifier: MIT

// Package dd: functional configuration for stores and algebra operations.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - Options are captured by a Store at creation. Algebra outputs inherit the
//     options of their left operand; explicit opts passed to an operation are
//     applied on top (last-writer-wins), except the radix, which always follows
//     the operands.
package dd

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the magnitude-of-difference bound under which two
	// complex weights are treated as equal (edge interning, reduction and
	// zero tests all use the same value).
	DefaultTolerance = 1e-10

	// DefaultRadix is the branching radix R; nodes carry R*R children.
	DefaultRadix = 2

	// DefaultComputeTableSize bounds each computed table of an operation.
	// Zero disables memoization entirely.
	DefaultComputeTableSize = 1 << 16
)

// MaxDenseDim caps ToDense / AllClose to keep dense reconstruction bounded.
const MaxDenseDim = 1 << 12

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; read them through the accessor methods.
type Options struct {
	eps       float64 // > 0; DefaultTolerance
	radix     int     // >= 2; DefaultRadix
	cacheSize int     // >= 0; DefaultComputeTableSize
}

// Tolerance returns the weight-equality tolerance.
func (o Options) Tolerance() float64 { return o.eps }

// Radix returns the branching radix R.
func (o Options) Radix() int { return o.radix }

// ComputeTableSize returns the per-table computed-result capacity.
func (o Options) ComputeTableSize() int { return o.cacheSize }

// WithTolerance sets the numeric tolerance eps used by every weight comparison.
// Implementation:
//   - Stage 1: validate eps is finite and > 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Notes:
//   - Larger eps merges more weights into one edge, which shrinks diagrams but
//     also blurs genuinely different amplitudes; keep it well below the
//     smallest amplitude you care about.
func WithTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicToleranceBad)
	}

	return func(o *Options) { o.eps = eps }
}

// WithRadix sets the branching radix R (R*R children per node).
// Panics when r < 2.
func WithRadix(r int) Option {
	if r < 2 {
		panic(panicRadixBad)
	}

	return func(o *Options) { o.radix = r }
}

// WithComputeTableSize bounds every computed table of an operation to n
// entries (LRU eviction). n == 0 disables memoization; results are identical
// either way, only the amount of recomputation changes.
func WithComputeTableSize(n int) Option {
	if n < 0 {
		panic(panicCacheSizeBad)
	}

	return func(o *Options) { o.cacheSize = n }
}

// withOptions replays a resolved Options snapshot; used to inherit the
// configuration of an operand store.
func withOptions(src Options) Option {
	return func(o *Options) { *o = src }
}

// NewOptions resolves opts on top of the documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

func defaultOptions() Options {
	return Options{
		eps:       DefaultTolerance,
		radix:     DefaultRadix,
		cacheSize: DefaultComputeTableSize,
	}
}

// gatherOptions applies user setters on top of defaults in order
// (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
