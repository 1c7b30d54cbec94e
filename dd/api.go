// SPDX-License-Identifier: MIT
// Package dd: public facade aliases.
//
// Purpose:
//   - Offer the linear-algebra vocabulary (Sum, Product, Tensor) next to
//     the diagram names, so call sites read naturally in either idiom.
//   - Keep every alias a one-line delegation; behaviour lives in impl_*.go.

package dd

// Sum returns A + B. Alias of Add.
func Sum(a, b *Diagram, opts ...Option) (*Diagram, error) { return Add(a, b, opts...) }

// Diff returns A - B. Alias of Sub.
func Diff(a, b *Diagram, opts ...Option) (*Diagram, error) { return Sub(a, b, opts...) }

// Product returns A × B. Alias of Multiply.
func Product(a, b *Diagram, opts ...Option) (*Diagram, error) { return Multiply(a, b, opts...) }

// Tensor returns A ⊗ B. Alias of Kronecker.
func Tensor(a, b *Diagram, opts ...Option) (*Diagram, error) { return Kronecker(a, b, opts...) }

// Values returns the Evaluate sequence of d as a slice (nil for a nil d).
func Values(d *Diagram) []complex128 {
	if d == nil {
		return nil
	}

	return d.Values()
}

// KroneckerPower returns A ⊗ A ⊗ ... ⊗ A (n factors). n == 0 yields the
// scalar 1. The result takes A's options with opts applied on top.
func KroneckerPower(a *Diagram, n int, opts ...Option) (*Diagram, error) {
	if err := validateNotNil(a); err != nil {
		return nil, ddErrorf(opKronecker, err)
	}
	if n < 0 {
		return nil, ddErrorf(opKronecker, ErrBadLevels)
	}

	acc := Scalar(1, append([]Option{withOptions(a.store.opts)}, opts...)...)
	for i := 0; i < n; i++ {
		next, err := Kronecker(acc, a, opts...)
		if err != nil {
			return nil, err
		}
		acc = next
	}

	return acc, nil
}
