// Package dd_test verifies option defaults, validation panics and the
// observable effect of the tolerance.
package dd_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qmdd/dd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsDefaults(t *testing.T) {
	o := dd.NewOptions()
	assert.Equal(t, dd.DefaultTolerance, o.Tolerance())
	assert.Equal(t, dd.DefaultRadix, o.Radix())
	assert.Equal(t, dd.DefaultComputeTableSize, o.ComputeTableSize())

	// nil setters are skipped
	o = dd.NewOptions(nil, dd.WithRadix(4), nil)
	assert.Equal(t, 4, o.Radix())

	// last writer wins
	o = dd.NewOptions(dd.WithTolerance(1e-3), dd.WithTolerance(1e-5))
	assert.Equal(t, 1e-5, o.Tolerance())

	s := dd.NewStore(dd.WithComputeTableSize(0))
	assert.Equal(t, 0, s.Options().ComputeTableSize())
	assert.Equal(t, dd.DefaultTolerance, s.Tolerance())
}

func TestOptionsPanics(t *testing.T) {
	cases := []struct {
		name string
		fn   func()
	}{
		{"ToleranceZero", func() { dd.WithTolerance(0) }},
		{"ToleranceNegative", func() { dd.WithTolerance(-1e-9) }},
		{"ToleranceNaN", func() { dd.WithTolerance(math.NaN()) }},
		{"ToleranceInf", func() { dd.WithTolerance(math.Inf(1)) }},
		{"RadixOne", func() { dd.WithRadix(1) }},
		{"CacheNegative", func() { dd.WithComputeTableSize(-1) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Panics(t, tc.fn)
		})
	}
}

// TestToleranceMergesWeights: a coarse tolerance collapses nearly-constant
// blocks, the default one keeps them apart.
func TestToleranceMergesWeights(t *testing.T) {
	m := [][]complex128{{1, 1.0005}, {1, 1}}

	fine := mustFromDense(t, m)
	require.False(t, fine.Root().IsTerminal())
	require.Equal(t, 1, fine.NodeCount())

	coarse := mustFromDense(t, m, dd.WithTolerance(1e-3))
	require.True(t, coarse.Root().IsTerminal())
	require.Equal(t, []complex128{1}, coarse.Values())
}
