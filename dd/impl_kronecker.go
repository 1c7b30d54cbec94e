// SPDX-License-Identifier: MIT

package dd

// Kronecker computes the tensor product C = A ⊗ B as a new diagram with
// A.Levels()+B.Levels() levels.
// Implementation:
//   - Stage 1: validate operands (non-nil, same radix).
//   - Stage 2: recurse down A only. Every node of A is rebuilt with its
//     variable shifted by B.Levels(); every terminal of A is replaced by a
//     copy of the whole of B scaled by the terminal weight.
//
// Behavior highlights:
//   - Zero terminals of A stay zero terminals.
//   - A terminal of weight 1 reproduces B's root unchanged, own weight included.
//   - Asymmetric by construction: A ⊗ B and B ⊗ A are different matrices.
//   - Node variables are level indices, so a node of A with variable v
//     becomes variable v + B.Levels() in the result; B's nodes keep theirs.
//     The root variable of H ⊗ H is therefore 1, not the sum 0 + 0 of the
//     operand root variables.
//
// Errors:
//   - ErrNilDiagram, ErrRadixMismatch (wrapped "Kronecker: ...").
//
// Complexity:
//   - O(|A|) recursion steps plus one copy of B; both memoized.
func Kronecker(a, b *Diagram, opts ...Option) (*Diagram, error) {
	if err := validateNotNil(a, b); err != nil {
		return nil, ddErrorf(opKronecker, err)
	}
	if a.levels > 0 && b.levels > 0 {
		if err := validateSameRadix(a, b); err != nil {
			return nil, ddErrorf(opKronecker, err)
		}
	}

	left := a.store
	if a.levels == 0 {
		left = b.store
	}
	op := newOperation(opKronecker, left, opts...)
	r := op.kronecker(a.operand(), b.operand(), b.levels)

	return op.finish(r, a.levels+b.levels), nil
}

func (op *operation) kronecker(a, b operand, shift int) operand {
	if op.isZero(a) || op.isZero(b) {
		return op.zero()
	}
	if a.terminal() {
		return op.scaled(op.copyInto(b), a.weight)
	}

	key := kronKey{ta: a.target, wa: a.weight}
	if cached, ok := op.krons.get(key); ok {
		return cached
	}

	n := a.store.node(a.target)
	children := make([]operand, len(n.Children))
	for i := range children {
		children[i] = op.kronecker(a.child(i, n.Variable), b, shift)
	}
	r := op.makeNode(n.Variable+shift, children)
	op.krons.put(key, r)

	return r
}
