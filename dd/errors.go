// SPDX-License-Identifier: MIT
// Package dd: sentinel error set and panic messages.
// Public operations return these sentinels wrapped with an operation tag;
// callers match them via errors.Is. Panics are reserved for broken store
// invariants (unknown ids, malformed child lists), which are programmer errors.

package dd

import "github.com/pkg/errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "dd: ..." for consistency and easy grepping.
// Facades wrap sentinels with ddErrorf(op, err) so that the operation name
// shows up first ("Add: dd: dimension mismatch") and errors.Is still matches.

var (
	// ErrNilDiagram indicates that a nil *Diagram was passed as an operand.
	ErrNilDiagram = errors.New("dd: nil diagram")

	// ErrNilStore indicates that NewDiagram was called without a store.
	ErrNilStore = errors.New("dd: nil store")

	// ErrDimensionMismatch indicates operands with different level counts
	// where equal shapes are required (Add, Multiply).
	ErrDimensionMismatch = errors.New("dd: dimension mismatch")

	// ErrRadixMismatch indicates operands whose stores use different radices.
	ErrRadixMismatch = errors.New("dd: radix mismatch")

	// ErrBadShape is returned by FromDense for non-square input or a side
	// that is not a power of the radix.
	ErrBadShape = errors.New("dd: invalid shape")

	// ErrBadLevels indicates a negative level count, or a root node whose
	// variable does not fit inside the declared level count.
	ErrBadLevels = errors.New("dd: invalid level count")

	// ErrUnknownEdge indicates a root edge id that the store never issued.
	ErrUnknownEdge = errors.New("dd: unknown edge id")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("dd: index out of range")

	// ErrNaNInf signals a NaN or ±Inf entry in dense input.
	ErrNaNInf = errors.New("dd: NaN or Inf encountered")

	// ErrTooLarge is returned by dense conversions above MaxDenseDim.
	ErrTooLarge = errors.New("dd: matrix too large for dense conversion")
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicUnknownEdge     = "dd: edge id %d not present in store (%d edges)"
	panicUnknownNode     = "dd: node id %d not present in store (%d nodes)"
	panicChildCount      = "dd: node needs %d children, got %d"
	panicNonFiniteWeight = "dd: edge weight must be finite, got %v"
	panicLevelUnderflow  = "dd: node %d reached below the terminal level"
	panicToleranceBad    = "dd: WithTolerance: eps must be finite and > 0"
	panicRadixBad        = "dd: WithRadix: radix must be >= 2"
	panicCacheSizeBad    = "dd: WithComputeTableSize: size must be >= 0"
)

// ddErrorf wraps err with an operation tag, keeping the sentinel reachable
// through errors.Is / errors.Cause. Only call it with a non-nil err.
func ddErrorf(tag string, err error) error {
	return errors.Wrap(err, tag)
}
