// SPDX-License-Identifier: MIT
// Package dd_test contains test helpers
//
// Purpose:
//   • Dense reference kernels (add, multiply, kronecker) to cross-check the
//     diagram algebra entry by entry.
//   • Deterministic random fixtures and tolerance-aware comparisons.

package dd_test

import (
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/qmdd/dd"
	"github.com/stretchr/testify/require"
)

// tol is the entry-wise tolerance used by dense comparisons.
const tol = 1e-9

// closeComplex compares complex entries within tol.
var closeComplex = cmp.Comparer(func(x, y complex128) bool {
	return cmplx.Abs(x-y) < tol
})

// requireMatrixClose fails the test when want and got differ by tol or more
// in any entry (or in shape).
func requireMatrixClose(t *testing.T, want, got [][]complex128) {
	t.Helper()
	require.True(t, cmp.Equal(want, got, closeComplex), cmp.Diff(want, got, closeComplex))
}

// requireValuesClose is requireMatrixClose for flat value sequences.
func requireValuesClose(t *testing.T, want, got []complex128) {
	t.Helper()
	require.True(t, cmp.Equal(want, got, closeComplex), cmp.Diff(want, got, closeComplex))
}

// mustFromDense builds a diagram or fails the test.
func mustFromDense(t *testing.T, m [][]complex128, opts ...dd.Option) *dd.Diagram {
	t.Helper()
	d, err := dd.FromDense(m, opts...)
	require.NoError(t, err)

	return d
}

// mustDense reconstructs the dense matrix or fails the test.
func mustDense(t *testing.T, d *dd.Diagram) [][]complex128 {
	t.Helper()
	m, err := dd.ToDense(d)
	require.NoError(t, err)

	return m
}

// randomMatrix returns an n×n matrix with entries in the unit square,
// deterministic for a given seed.
func randomMatrix(seed int64, n int) [][]complex128 {
	rng := rand.New(rand.NewSource(seed))
	m := make([][]complex128, n)
	for i := range m {
		m[i] = make([]complex128, n)
		for j := range m[i] {
			m[i][j] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
		}
	}

	return m
}

// kronJ returns m ⊗ J_k (every entry blown up into a constant k×k block).
func kronJ(m [][]complex128, k int) [][]complex128 {
	return denseKron(m, constant(k, 1))
}

// jKron returns J_k ⊗ m (m repeated in every block).
func jKron(k int, m [][]complex128) [][]complex128 {
	return denseKron(constant(k, 1), m)
}

func constant(n int, v complex128) [][]complex128 {
	m := make([][]complex128, n)
	for i := range m {
		m[i] = make([]complex128, n)
		for j := range m[i] {
			m[i][j] = v
		}
	}

	return m
}

func denseIdentity(n int) [][]complex128 {
	m := constant(n, 0)
	for i := range m {
		m[i][i] = 1
	}

	return m
}

func denseAdd(a, b [][]complex128) [][]complex128 {
	out := constant(len(a), 0)
	for i := range a {
		for j := range a[i] {
			out[i][j] = a[i][j] + b[i][j]
		}
	}

	return out
}

func denseMul(a, b [][]complex128) [][]complex128 {
	n := len(a)
	out := constant(n, 0)
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			for j := 0; j < n; j++ {
				out[i][j] += a[i][k] * b[k][j]
			}
		}
	}

	return out
}

func denseKron(a, b [][]complex128) [][]complex128 {
	na, nb := len(a), len(b)
	out := constant(na*nb, 0)
	for i := 0; i < na; i++ {
		for j := 0; j < na; j++ {
			for k := 0; k < nb; k++ {
				for l := 0; l < nb; l++ {
					out[i*nb+k][j*nb+l] = a[i][j] * b[k][l]
				}
			}
		}
	}

	return out
}

// hadamardDense is the dense form of dd.Hadamard().
func hadamardDense() [][]complex128 {
	h := complex(1/1.4142135623730951, 0)

	return [][]complex128{{h, h}, {h, -h}}
}
