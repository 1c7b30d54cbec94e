// SPDX-License-Identifier: MIT
// Package dd: canonical operand validation for the algebra facades.
// Validators return plain sentinels; facades wrap them with the op tag.

package dd

func validateNotNil(ds ...*Diagram) error {
	for _, d := range ds {
		if d == nil {
			return ErrNilDiagram
		}
	}

	return nil
}

// validateSameRadix assumes non-nil operands.
func validateSameRadix(a, b *Diagram) error {
	if a.store.opts.radix != b.store.opts.radix {
		return ErrRadixMismatch
	}

	return nil
}

// validateSameShape is the composite check used by Add: NotNil → Radix → Levels.
func validateSameShape(a, b *Diagram) error {
	if err := validateNotNil(a, b); err != nil {
		return err
	}
	if err := validateSameRadix(a, b); err != nil {
		return err
	}
	if a.levels != b.levels {
		return ErrDimensionMismatch
	}

	return nil
}

// validateMulCompatible is validateSameShape, except that a 0-level scalar
// operand is compatible with anything.
func validateMulCompatible(a, b *Diagram) error {
	if err := validateNotNil(a, b); err != nil {
		return err
	}
	if a.levels == 0 || b.levels == 0 {
		return nil
	}
	if err := validateSameRadix(a, b); err != nil {
		return err
	}
	if a.levels != b.levels {
		return ErrDimensionMismatch
	}

	return nil
}
