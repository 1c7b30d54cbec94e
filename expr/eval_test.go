package expr_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qmdd/dd"
	"github.com/katalvlaran/qmdd/expr"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func requireSame(t *testing.T, want, got *dd.Diagram) {
	t.Helper()
	ok, err := dd.AllClose(want, got, tol)
	require.NoError(t, err)
	require.True(t, ok, "want %s, got %s", want, got)
}

// mustOf returns a must-helper bound to t for (diagram, error) results.
func mustOf(t *testing.T) func(*dd.Diagram, error) *dd.Diagram {
	return func(d *dd.Diagram, err error) *dd.Diagram {
		t.Helper()
		require.NoError(t, err)

		return d
	}
}

func TestEvalMatchesAlgebra(t *testing.T) {
	must := mustOf(t)
	h, x, i := dd.Hadamard(), dd.AntiIdentity(), dd.Identity()
	hh := must(dd.Kronecker(h, h))
	xi := must(dd.Kronecker(x, i))

	cases := []struct {
		src  string
		want *dd.Diagram
	}{
		{"H", h},
		{"H @ H", hh},
		{"H * H", i},
		{"H*H + X", must(dd.Add(i, x))},
		{"H - H", must(dd.Sub(h, h))},
		{"-X", must(dd.Scale(x, -1))},
		{"2 * H", must(dd.Scale(h, 2))},
		{"0.5i * X", must(dd.Scale(x, 0.5i))},
		{"H @ H * (X @ I)", must(dd.Multiply(hh, xi))},
		{"(H + X) @ I", must(dd.Kronecker(must(dd.Add(h, x)), i))},
		{"X @ I - I @ X", must(dd.Sub(xi, must(dd.Kronecker(i, x))))},
		{"3", dd.Scalar(3)},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			got, err := expr.Eval(tc.src, expr.DefaultEnv())
			require.NoError(t, err)
			require.Equal(t, tc.want.Levels(), got.Levels())
			requireSame(t, tc.want, got)
		})
	}
}

// TestEvalPrecedence: "@" binds tighter than "*", which binds tighter than "+".
func TestEvalPrecedence(t *testing.T) {
	must := mustOf(t)
	env := expr.DefaultEnv()
	a := must(expr.Eval("H @ H * H @ H", env))
	b := must(expr.Eval("(H @ H) * (H @ H)", env))
	requireSame(t, a, b)

	ii := must(expr.Eval("I @ I", env))
	requireSame(t, ii, a)

	c := must(expr.Eval("X + H * H", env))
	d := must(expr.Eval("X + (H * H)", env))
	requireSame(t, c, d)
}

func TestEvalCustomEnv(t *testing.T) {
	r2 := complex(1/math.Sqrt2, 0)
	s, err := dd.FromDense([][]complex128{{1, 0}, {0, 1i}})
	require.NoError(t, err)

	env := expr.DefaultEnv()
	env["S"] = s
	got, err := expr.Eval("S * S", env)
	require.NoError(t, err)
	require.Equal(t, []complex128{1, 0, 0, -1}, roundAll(got.Values()))

	got, err = expr.Eval("H * S * H", env)
	require.NoError(t, err)
	v, err := dd.At(got, 0, 1)
	require.NoError(t, err)
	require.InDelta(t, real(r2*r2*(1-1i)), real(v), tol)
	require.InDelta(t, imag(r2*r2*(1-1i)), imag(v), tol)
}

func TestEvalOptions(t *testing.T) {
	got, err := expr.Eval("H @ H", expr.DefaultEnv(), dd.WithTolerance(1e-6))
	require.NoError(t, err)
	require.Equal(t, 1e-6, got.Store().Tolerance())
}

func TestEvalErrors(t *testing.T) {
	cases := []struct {
		src  string
		want error
	}{
		{"", expr.ErrSyntax},
		{"H @", expr.ErrSyntax},
		{"(H", expr.ErrSyntax},
		{"H H", expr.ErrSyntax},
		{"H $ H", expr.ErrSyntax},
		{"Y", expr.ErrUnknownName},
		{"H * (I + Q)", expr.ErrUnknownName},
		{"H + H @ H", dd.ErrDimensionMismatch},
		{"1 + H", dd.ErrDimensionMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			_, err := expr.Eval(tc.src, expr.DefaultEnv())
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func roundAll(vals []complex128) []complex128 {
	out := make([]complex128, len(vals))
	for i, v := range vals {
		out[i] = complex(math.Round(real(v)*1e9)/1e9, math.Round(imag(v)*1e9)/1e9)
	}

	return out
}
