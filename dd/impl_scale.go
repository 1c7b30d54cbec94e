// SPDX-License-Identifier: MIT

package dd

// Scale returns w·A as a new diagram in a fresh store.
func Scale(a *Diagram, w complex128, opts ...Option) (*Diagram, error) {
	if err := validateNotNil(a); err != nil {
		return nil, ddErrorf(opScale, err)
	}

	return scale(opScale, a, w, opts...), nil
}

func scale(tag string, a *Diagram, w complex128, opts ...Option) *Diagram {
	op := newOperation(tag, a.store, opts...)
	r := op.copyInto(a.operand())

	return op.finish(op.scaled(r, w), a.levels)
}
