// SPDX-License-Identifier: MIT
// Package dd: construction helpers.
//
// The canned 2x2 factories populate a fresh store with one node (variable 0)
// through InternEdge/InternNode only; they are ordinary clients of the store
// and carry no invariants of their own.

package dd

import (
	"math"

	"github.com/pkg/errors"
)

// single2x2 builds a one-level diagram for the row-major 2x2 entries,
// pulling scale onto the root edge.
func single2x2(scale complex128, entries [4]complex128) *Diagram {
	s := NewStore()
	children := make([]EdgeRef, len(entries))
	for i, w := range entries {
		children[i] = s.InternEdge(NoNode, w)
	}
	target, factor := s.InternNode(0, children)
	root := s.InternEdge(target, scale*factor)

	return &Diagram{store: s, root: root, levels: 1}
}

// Identity returns the 2x2 identity [1 0; 0 1].
func Identity() *Diagram {
	return single2x2(1, [4]complex128{1, 0, 0, 1})
}

// Hadamard returns H = 1/√2·[1 1; 1 -1]; H·H = I.
func Hadamard() *Diagram {
	return single2x2(complex(1/math.Sqrt2, 0), [4]complex128{1, 1, 1, -1})
}

// AntiIdentity returns the anti-diagonal [0 1; 1 0] (Pauli X).
func AntiIdentity() *Diagram {
	return single2x2(1, [4]complex128{0, 1, 1, 0})
}

// Scalar returns the 0-level diagram of the 1x1 matrix [w].
func Scalar(w complex128, opts ...Option) *Diagram {
	s := NewStore(opts...)
	root := s.zeroEdge()
	if !isZero(w, s.opts.eps) {
		root = s.InternEdge(NoNode, w)
	}

	return &Diagram{store: s, root: root, levels: 0}
}

// IdentityN returns the identity of side R^n: a chain of n nodes whose
// diagonal blocks point at the identity one level down.
// n must be >= 0 (ErrBadLevels).
func IdentityN(n int, opts ...Option) (*Diagram, error) {
	if n < 0 {
		return nil, ddErrorf(opIdentityN, ErrBadLevels)
	}

	s := NewStore(opts...)
	r := s.opts.radix
	zero := s.zeroEdge()
	below := s.InternEdge(NoNode, 1)
	for level := 0; level < n; level++ {
		children := make([]EdgeRef, r*r)
		for i := range children {
			children[i] = zero
		}
		for i := 0; i < r; i++ {
			children[i*r+i] = below
		}
		target, factor := s.InternNode(level, children)
		below = s.InternEdge(target, factor)
	}

	return &Diagram{store: s, root: below, levels: n}, nil
}

// FromDense builds the canonical diagram of a square matrix whose side is a
// power of the radix (1x1 gives a 0-level scalar diagram).
// Implementation:
//   - Stage 1: validate shape and finiteness.
//   - Stage 2: recurse over R x R block quadrants down to scalars, interning
//     bottom-up so equal blocks share nodes and constant blocks collapse.
//
// Errors:
//   - ErrBadShape (empty, ragged, non-square, side not R^n), ErrNaNInf;
//     wrapped "FromDense: ...".
//
// Complexity:
//   - Time O(n^2) node interning for an n x n input.
func FromDense(m [][]complex128, opts ...Option) (*Diagram, error) {
	op := newOperation(opFromDense, nil, opts...)
	r := op.radix

	n := len(m)
	if n == 0 {
		return nil, ddErrorf(opFromDense, ErrBadShape)
	}
	for i, row := range m {
		if len(row) != n {
			return nil, ddErrorf(opFromDense, errors.Wrapf(ErrBadShape, "row %d has %d entries, want %d", i, len(row), n))
		}
		for j, v := range row {
			if !isFinite(v) {
				return nil, ddErrorf(opFromDense, errors.Wrapf(ErrNaNInf, "entry (%d,%d)", i, j))
			}
		}
	}
	levels := 0
	for side := n; side > 1; side /= r {
		if side%r != 0 {
			return nil, ddErrorf(opFromDense, errors.Wrapf(ErrBadShape, "side %d is not a power of %d", n, r))
		}
		levels++
	}

	root := op.fromBlock(m, levels-1, 0, 0, n)

	return op.finish(root, levels), nil
}

func (op *operation) fromBlock(m [][]complex128, level, row, col, size int) operand {
	if size == 1 {
		return op.result(NoNode, m[row][col])
	}

	r := op.radix
	sub := size / r
	children := make([]operand, r*r)
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			children[i*r+j] = op.fromBlock(m, level-1, row+i*sub, col+j*sub, sub)
		}
	}

	return op.makeNode(level, children)
}
