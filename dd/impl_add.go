// SPDX-License-Identifier: MIT

package dd

// Add computes the elementwise sum C = A + B as a new, independent diagram.
// Implementation:
//   - Stage 1: validate operands (non-nil, same radix, same level count).
//   - Stage 2: recurse over both diagrams at once (see add), writing into a
//     fresh output store.
//
// Behavior highlights:
//   - Symmetric: terminal and zero operands are detected on either side.
//   - A (tolerance-)zero operand yields an unscaled copy of the other one.
//   - Inputs are never mutated; the result shares no ids with them.
//
// Inputs:
//   - a, b: diagrams of equal shape, possibly from different stores.
//   - opts: overrides for the output store (tolerance, computed-table size).
//
// Returns:
//   - *Diagram: the sum, with a.Levels() levels.
//
// Errors:
//   - ErrNilDiagram, ErrRadixMismatch, ErrDimensionMismatch (wrapped "Add: ...").
//
// Complexity:
//   - O(|A|*|B|) node pairs in the worst case with memoization on.
func Add(a, b *Diagram, opts ...Option) (*Diagram, error) {
	if err := validateSameShape(a, b); err != nil {
		return nil, ddErrorf(opAdd, err)
	}

	op := newOperation(opAdd, a.store, opts...)
	r := op.add(a.operand(), b.operand())

	return op.finish(r, a.levels), nil
}

// Sub computes A - B as Add(A, -1*B).
func Sub(a, b *Diagram, opts ...Option) (*Diagram, error) {
	if err := validateSameShape(a, b); err != nil {
		return nil, ddErrorf(opSub, err)
	}

	op := newOperation(opSub, a.store, opts...)
	neg := b.operand()
	neg.weight = -neg.weight
	r := op.add(a.operand(), neg)

	return op.finish(r, a.levels), nil
}

// add is the recursive kernel. Operands may live in any store; the result
// lives in op.out. Operands carry their effective weights all the way down,
// so every zero test judges the entry value itself.
func (op *operation) add(a, b operand) operand {
	if op.isZero(a) {
		return op.copyInto(b)
	}
	if op.isZero(b) {
		return op.copyInto(a)
	}
	if a.terminal() && b.terminal() {
		return op.result(NoNode, a.weight+b.weight)
	}

	key := addKey{sa: a.store, sb: b.store, ta: a.target, tb: b.target, wa: a.weight, wb: b.weight}
	if cached, ok := op.adds.get(key); ok {
		return cached
	}

	top := max(a.variable(), b.variable())
	children := make([]operand, op.radix*op.radix)
	for i := range children {
		children[i] = op.add(a.child(i, top), b.child(i, top))
	}
	r := op.makeNode(top, children)
	op.adds.put(key, r)

	return r
}
