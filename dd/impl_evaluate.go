// SPDX-License-Identifier: MIT
// Package dd: inspection of diagrams (path enumeration and dense views).
//
// Evaluate walks root-to-terminal paths and is the structural view: an
// elided level yields one value for the whole constant block. ToDense and
// At are the matrix view: they know the level count and expand elided
// levels back into every entry they cover.

package dd

import (
	"fmt"
	"iter"
	"math"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/pkg/errors"
)

// frame is one pending path of the depth-first walk.
type frame struct {
	target NodeRef
	value  complex128
}

// Evaluate returns a lazy enumeration of one value per root-to-terminal
// path: the product of the edge weights along the path, starting from the
// root weight. Children are visited in index order, all R*R of them, so for
// a one-level diagram the values are the matrix entries in row-major order.
//
// The sequence is finite and restartable (every range starts a new walk)
// and uses an explicit work-stack, so deep diagrams cannot exhaust the call
// stack.
func (d *Diagram) Evaluate() iter.Seq[complex128] {
	return func(yield func(complex128) bool) {
		root := d.Root()
		stack := arraystack.New()
		stack.Push(frame{target: root.Target, value: root.Weight})
		for !stack.Empty() {
			top, _ := stack.Pop()
			f := top.(frame)
			if f.target == NoNode {
				if !yield(f.value) {
					return
				}
				continue
			}
			n := d.store.node(f.target)
			// reverse push keeps index order on pop
			for i := len(n.Children) - 1; i >= 0; i-- {
				e := d.store.edge(n.Children[i])
				stack.Push(frame{target: e.Target, value: f.value * e.Weight})
			}
		}
	}
}

// Values collects Evaluate into a slice.
func (d *Diagram) Values() []complex128 {
	var out []complex128
	for v := range d.Evaluate() {
		out = append(out, v)
	}

	return out
}

// Evaluate is the function form of (*Diagram).Evaluate; a nil diagram
// yields an empty sequence.
func Evaluate(d *Diagram) iter.Seq[complex128] {
	if d == nil {
		return func(func(complex128) bool) {}
	}

	return d.Evaluate()
}

// ToDense reconstructs the full R^levels x R^levels matrix in row-major
// order.
// Implementation:
//   - Stage 1: validate d and the dense size bound.
//   - Stage 2: descend level by level; a terminal above the scalar level
//     fills its whole block, a node of a lower level repeats in every block.
//
// Errors:
//   - ErrNilDiagram, ErrTooLarge (Dim() > MaxDenseDim), wrapped "ToDense: ...".
//
// Complexity:
//   - Time O(Dim()^2), Space O(Dim()^2).
func ToDense(d *Diagram) ([][]complex128, error) {
	if err := validateNotNil(d); err != nil {
		return nil, ddErrorf(opToDense, err)
	}
	if !denseSizeOK(d) {
		return nil, ddErrorf(opToDense, ErrTooLarge)
	}

	n := d.Dim()
	out := make([][]complex128, n)
	for i := range out {
		out[i] = make([]complex128, n)
	}
	fillDense(out, d.operand(), d.levels-1, 0, 0, n, d.store.opts.radix)

	return out, nil
}

func denseSizeOK(d *Diagram) bool {
	dim, ok := checkedDim(d.store.opts.radix, d.levels)

	return ok && dim <= MaxDenseDim
}

// checkedDim returns radix^levels, or false when it overflows int.
func checkedDim(radix, levels int) (int, bool) {
	dim := 1
	for l := 0; l < levels; l++ {
		if dim > math.MaxInt/radix {
			return 0, false
		}
		dim *= radix
	}

	return dim, true
}

func fillDense(out [][]complex128, o operand, level, row, col, size, radix int) {
	if o.weight == 0 {
		return
	}
	if o.terminal() {
		for i := row; i < row+size; i++ {
			for j := col; j < col+size; j++ {
				out[i][j] = o.weight
			}
		}
		return
	}
	if level < 0 {
		panic(fmt.Sprintf(panicLevelUnderflow, o.target))
	}

	sub := size / radix
	for i := 0; i < radix; i++ {
		for j := 0; j < radix; j++ {
			fillDense(out, o.child(i*radix+j, level), level-1, row+i*sub, col+j*sub, sub, radix)
		}
	}
}

// At returns entry (row, col) by following a single path.
//
// Errors:
//   - ErrNilDiagram, ErrOutOfRange (wrapped "At: ...").
//
// Complexity:
//   - O(Levels()).
func At(d *Diagram, row, col int) (complex128, error) {
	if err := validateNotNil(d); err != nil {
		return 0, ddErrorf(opAt, err)
	}
	dim, ok := checkedDim(d.store.opts.radix, d.levels)
	if !ok {
		return 0, ddErrorf(opAt, ErrTooLarge)
	}
	if row < 0 || col < 0 || row >= dim || col >= dim {
		return 0, ddErrorf(opAt, errors.Wrapf(ErrOutOfRange, "(%d,%d) in %dx%d", row, col, dim, dim))
	}

	radix := d.store.opts.radix
	o := d.operand()
	size := dim
	for level := d.levels - 1; level >= 0 && !o.terminal(); level-- {
		size /= radix
		i, j := row/size, col/size
		row, col = row%size, col%size
		o = o.child(i*radix+j, level)
	}
	if !o.terminal() {
		panic(fmt.Sprintf(panicLevelUnderflow, o.target))
	}

	return o.weight, nil
}

// AllClose reports whether a and b represent the same matrix within tol
// on every entry. The operands may come from different stores.
//
// Errors:
//   - ErrNilDiagram, ErrDimensionMismatch, ErrTooLarge (wrapped "AllClose: ...").
func AllClose(a, b *Diagram, tol float64) (bool, error) {
	if err := validateSameShape(a, b); err != nil {
		return false, ddErrorf(opAllClose, err)
	}
	ma, err := ToDense(a)
	if err != nil {
		return false, ddErrorf(opAllClose, err)
	}
	mb, err := ToDense(b)
	if err != nil {
		return false, ddErrorf(opAllClose, err)
	}
	for i := range ma {
		for j := range ma[i] {
			if !approxEqual(ma[i][j], mb[i][j], tol) {
				return false, nil
			}
		}
	}

	return true, nil
}
