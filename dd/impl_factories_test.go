// Package dd_test contains unit tests for the construction helpers and the
// Diagram wrapper.
package dd_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qmdd/dd"
	"github.com/stretchr/testify/require"
)

// TestCannedFactoriesRoundTrip evaluates each canned 2x2 diagram and compares
// the row-major entries.
func TestCannedFactoriesRoundTrip(t *testing.T) {
	h := complex(1/math.Sqrt2, 0)
	cases := []struct {
		name string
		d    *dd.Diagram
		want []complex128
	}{
		{"Identity", dd.Identity(), []complex128{1, 0, 0, 1}},
		{"Hadamard", dd.Hadamard(), []complex128{h, h, h, -h}},
		{"AntiIdentity", dd.AntiIdentity(), []complex128{0, 1, 1, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, 1, tc.d.Levels())
			require.Equal(t, 2, tc.d.Dim())
			require.Equal(t, 1, tc.d.NodeCount())
			requireValuesClose(t, tc.want, tc.d.Values())

			m := mustDense(t, tc.d)
			requireMatrixClose(t, [][]complex128{tc.want[:2], tc.want[2:]}, m)
		})
	}
}

// TestHadamardStructure checks the normalized shape of H.
func TestHadamardStructure(t *testing.T) {
	h := dd.Hadamard()
	root := h.Root()
	require.False(t, root.IsTerminal())
	require.InDelta(t, 1/math.Sqrt2, real(root.Weight), 1e-15)

	node := h.Store().Node(root.Target)
	require.Equal(t, 0, node.Variable)
	require.Len(t, node.Children, 4)
	require.Equal(t, node.Children[0], node.Children[1]) // shared +1 leaf
	require.Equal(t, node.Children[0], node.Children[2])
	require.Equal(t, complex(-1, 0), h.Store().Edge(node.Children[3]).Weight)
}

// TestFromDenseRoundTrip builds random diagrams and reconstructs them.
func TestFromDenseRoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8} {
		m := randomMatrix(int64(n), n)
		d := mustFromDense(t, m)
		requireMatrixClose(t, m, mustDense(t, d))
	}

	d := mustFromDense(t, hadamardDense())
	ok, err := dd.AllClose(d, dd.Hadamard(), tol)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestFromDenseConstantBlocks: constant blocks collapse but round-trip.
func TestFromDenseConstantBlocks(t *testing.T) {
	ones := constant(4, 1)
	d := mustFromDense(t, ones)
	require.True(t, d.Root().IsTerminal())
	require.Equal(t, 0, d.NodeCount())
	require.Equal(t, []complex128{1}, d.Values())
	requireMatrixClose(t, ones, mustDense(t, d))

	// J ⊗ M: the top level is elided, the root points at M's node.
	m := [][]complex128{{1, 2}, {3, 4}}
	jm := jKron(2, m)
	d = mustFromDense(t, jm)
	require.Equal(t, 2, d.Levels())
	require.Equal(t, 0, d.Store().Node(d.Root().Target).Variable)
	requireMatrixClose(t, jm, mustDense(t, d))

	// M ⊗ J: the bottom level is elided under every block.
	mj := kronJ(m, 2)
	d = mustFromDense(t, mj)
	require.Equal(t, 1, d.Store().Node(d.Root().Target).Variable)
	require.Len(t, d.Values(), 4)
	requireMatrixClose(t, mj, mustDense(t, d))
}

// TestFromDenseErrors covers shape and finiteness validation.
func TestFromDenseErrors(t *testing.T) {
	_, err := dd.FromDense(nil)
	require.ErrorIs(t, err, dd.ErrBadShape)

	_, err = dd.FromDense([][]complex128{{1, 2}, {3}})
	require.ErrorIs(t, err, dd.ErrBadShape)

	_, err = dd.FromDense(constant(3, 1))
	require.ErrorIs(t, err, dd.ErrBadShape)

	_, err = dd.FromDense([][]complex128{{1, complex(math.Inf(1), 0)}, {0, 1}})
	require.ErrorIs(t, err, dd.ErrNaNInf)

	// 3x3 is fine with radix 3.
	d, err := dd.FromDense(denseIdentity(3), dd.WithRadix(3))
	require.NoError(t, err)
	require.Equal(t, 1, d.Levels())
}

// TestIdentityN checks the n-level identity chain.
func TestIdentityN(t *testing.T) {
	d, err := dd.IdentityN(3)
	require.NoError(t, err)
	require.Equal(t, 3, d.Levels())
	require.Equal(t, 3, d.NodeCount())
	requireMatrixClose(t, denseIdentity(8), mustDense(t, d))

	d, err = dd.IdentityN(0)
	require.NoError(t, err)
	require.Equal(t, []complex128{1}, d.Values())

	d, err = dd.IdentityN(2, dd.WithRadix(3))
	require.NoError(t, err)
	requireMatrixClose(t, denseIdentity(9), mustDense(t, d))

	_, err = dd.IdentityN(-1)
	require.ErrorIs(t, err, dd.ErrBadLevels)
}

// TestScalar checks the 0-level diagram.
func TestScalar(t *testing.T) {
	d := dd.Scalar(2 + 3i)
	require.Equal(t, 0, d.Levels())
	require.Equal(t, 1, d.Dim())
	require.Equal(t, []complex128{2 + 3i}, d.Values())

	z := dd.Scalar(1e-14)
	require.Equal(t, complex(0, 0), z.Root().Weight)
}

// TestNewDiagramValidation covers the public wrapper constructor.
func TestNewDiagramValidation(t *testing.T) {
	s := dd.NewStore()
	one := s.InternEdge(dd.NoNode, 1)
	zero := s.InternEdge(dd.NoNode, 0)
	node, factor := s.InternNode(0, []dd.EdgeRef{zero, one, one, zero})
	root := s.InternEdge(node, factor)

	_, err := dd.NewDiagram(nil, root, 1)
	require.ErrorIs(t, err, dd.ErrNilStore)

	_, err = dd.NewDiagram(s, 99, 1)
	require.ErrorIs(t, err, dd.ErrUnknownEdge)

	_, err = dd.NewDiagram(s, root, -1)
	require.ErrorIs(t, err, dd.ErrBadLevels)

	_, err = dd.NewDiagram(s, root, 0) // variable 0 needs at least one level
	require.ErrorIs(t, err, dd.ErrBadLevels)

	d, err := dd.NewDiagram(s, root, 1)
	require.NoError(t, err)
	requireValuesClose(t, []complex128{0, 1, 1, 0}, d.Values())
	require.Contains(t, d.String(), "levels=1")
}
