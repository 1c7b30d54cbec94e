// SPDX-License-Identifier: MIT

package dd

import (
	"math"
	"math/cmplx"
)

// approxEqual is the single weight-equality predicate of the package.
func approxEqual(a, b complex128, eps float64) bool {
	return cmplx.Abs(a-b) < eps
}

// isZero reports |w| < eps.
func isZero(w complex128, eps float64) bool {
	return cmplx.Abs(w) < eps
}

func isFinite(w complex128) bool {
	re, im := real(w), imag(w)

	return !math.IsNaN(re) && !math.IsInf(re, 0) && !math.IsNaN(im) && !math.IsInf(im, 0)
}

// cell quantises a weight onto an eps-sized grid. Two weights closer than
// eps land in the same or in adjacent cells on both axes, so a 3x3 cell
// neighbourhood covers every candidate of a tolerance lookup.
type cell struct {
	re, im int64
}

func cellOf(w complex128, eps float64) cell {
	return cell{re: quantise(real(w), eps), im: quantise(imag(w), eps)}
}

// cellLimit keeps quantised coordinates (and their ±1 neighbours) inside
// int64; huge weights share the boundary cell.
const cellLimit = 1 << 62

func quantise(x, eps float64) int64 {
	q := math.Floor(x / eps)
	switch {
	case q >= cellLimit:
		return cellLimit
	case q <= -cellLimit:
		return -cellLimit
	}

	return int64(q)
}

// ipow returns base^exp for small non-negative exponents.
func ipow(base, exp int) int {
	out := 1
	for ; exp > 0; exp-- {
		out *= base
	}

	return out
}
