// SPDX-License-Identifier: MIT

package dd

import "math"

// Multiply computes the matrix product C = A × B as a new diagram.
// Implementation:
//   - Stage 1: validate operands. A 0-level operand is a scalar and turns
//     the product into Scale.
//   - Stage 2: recurse from the top level: C[i,j] = Σ_k A[i,k]·B[k,j], the R
//     partial products of each block accumulated with Add in the output store.
//
// Behavior highlights:
//   - A zero operand on either side short-circuits to zero.
//   - Levels elided by the reduction rule are constant blocks J_m; a product
//     of two such blocks contributes the factor m, so the result is the true
//     matrix product for every canonical input.
//
// Errors:
//   - ErrNilDiagram, ErrRadixMismatch, ErrDimensionMismatch (wrapped "Multiply: ...").
//
// Complexity:
//   - Memoized on (node, weight) pairs, so each distinct pair of reachable
//     sub-blocks is multiplied at most once per table lifetime.
func Multiply(a, b *Diagram, opts ...Option) (*Diagram, error) {
	if err := validateMulCompatible(a, b); err != nil {
		return nil, ddErrorf(opMultiply, err)
	}
	if a.levels == 0 {
		return scale(opMultiply, b, a.Root().Weight, opts...), nil
	}
	if b.levels == 0 {
		return scale(opMultiply, a, b.Root().Weight, opts...), nil
	}

	op := newOperation(opMultiply, a.store, opts...)
	r := op.multiply(a.operand(), b.operand(), a.levels-1)

	return op.finish(r, a.levels), nil
}

// multiply returns A·B for operands whose blocks are processed at level
// (level -1 is the scalar level).
func (op *operation) multiply(a, b operand, level int) operand {
	if op.isZero(a) || op.isZero(b) {
		return op.zero()
	}

	top := max(a.variable(), b.variable())
	if top < level {
		// Both sides are constant across levels top+1..level:
		// (J_m ⊗ X)(J_m ⊗ Y) = m·(J_m ⊗ XY) with m = R^(level-top).
		a.weight *= complex(math.Pow(float64(op.radix), float64(level-top)), 0)
		level = top
	}
	if level < 0 {
		return op.result(NoNode, a.weight*b.weight)
	}

	key := mulKey{sa: a.store, sb: b.store, ta: a.target, tb: b.target, wa: a.weight, wb: b.weight}
	if cached, ok := op.muls.get(key); ok {
		return cached
	}

	r := op.radix
	children := make([]operand, r*r)
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			acc := op.zero()
			for k := 0; k < r; k++ {
				p := op.multiply(a.child(i*r+k, level), b.child(k*r+j, level), level-1)
				acc = op.add(acc, p)
			}
			children[i*r+j] = acc
		}
	}
	res := op.makeNode(level, children)
	op.muls.put(key, res)

	return res
}
