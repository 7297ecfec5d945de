// SPDX-License-Identifier: MIT

package rootfind_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rootfinder/rootfind"
)

// TestBisection_Sqrt2 brackets √2 in [0, 2] with default tolerances.
func TestBisection_Sqrt2(t *testing.T) {
	bs := rootfind.NewBisection(rootfind.DefaultParams(square2), 0, 2)

	x, err := bs.Solve()
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, x, 1e-6)
	assert.LessOrEqual(t, bs.Iterations(), 21, "2/2^21 < 1e-6")
	assert.True(t, bs.Status().Converged())

	a, b := bs.Bracket()
	assert.True(t, a <= math.Sqrt2 && math.Sqrt2 <= b, "bracket [%v, %v] lost the root", a, b)
}

// TestBisection_HalvingInvariant checks after every iteration that the width
// is exactly half of the previous one and that the sign change survives.
func TestBisection_HalvingInvariant(t *testing.T) {
	var bs *rootfind.Bisection
	width := 2.0

	p := rootfind.NewParams(square2, 40, 0, 0)
	p.Observer = func(it rootfind.Iterate) error {
		a, b := bs.Bracket()
		assert.Equal(t, width/2, it.Step, "iteration %d", it.Iteration)
		assert.Equal(t, b-a, it.Step, "iteration %d", it.Iteration)
		assert.LessOrEqual(t, square2(a)*square2(b), 0.0, "iteration %d: sign change lost", it.Iteration)
		width = it.Step
		return nil
	}
	bs = rootfind.NewBisection(p, 0, 2)

	_, err := bs.Solve()
	require.NoError(t, err)
	assert.Equal(t, 40, bs.Iterations())
	assert.Equal(t, rootfind.StatusMaxIterations, bs.Status())
	assert.Equal(t, 2/math.Pow(2, 40), bs.Step())
}

// TestBisection_HistoryGrowth: nothing is seeded, so len(History) == Iterations.
func TestBisection_HistoryGrowth(t *testing.T) {
	bs := rootfind.NewBisectionFunc(square2, 0, 2, 8, 0, 0)
	assert.Empty(t, bs.History())

	x, err := bs.Solve()
	require.NoError(t, err)
	h := bs.History()
	assert.Len(t, h, bs.Iterations())
	assert.Equal(t, x, h[len(h)-1])
	assert.Equal(t, []float64{1, 1.5, 1.25, 1.375, 1.4375, 1.40625, 1.421875, 1.4140625}, h)
}

// TestBisection_InvalidBracket: x²+1 has no sign change on [0, 1].
func TestBisection_InvalidBracket(t *testing.T) {
	f := func(x float64) float64 { return x*x + 1 }
	bs := rootfind.NewBisectionFunc(f, 0, 1, 100, 1e-6, 1e-6)

	x, err := bs.Solve()
	assert.ErrorIs(t, err, rootfind.ErrInvalidBracket)
	assert.True(t, math.IsNaN(x), "no estimate may be produced")
	assert.Empty(t, bs.History())
	assert.Equal(t, 0, bs.Iterations())
	assert.Equal(t, rootfind.StatusPending, bs.Status())

	a, b := bs.Bracket()
	assert.Equal(t, 0.0, a)
	assert.Equal(t, 1.0, b)
}

// TestBisection_NonFiniteBracket rejects NaN/Inf endpoints and values.
func TestBisection_NonFiniteBracket(t *testing.T) {
	_, err := rootfind.NewBisectionFunc(square2, math.NaN(), 2, 10, 0, 0).Solve()
	assert.ErrorIs(t, err, rootfind.ErrInvalidBracket)

	_, err = rootfind.NewBisectionFunc(square2, 0, math.Inf(1), 10, 0, 0).Solve()
	assert.ErrorIs(t, err, rootfind.ErrInvalidBracket)

	undefined := func(x float64) float64 { return math.Log(x) }
	_, err = rootfind.NewBisectionFunc(undefined, -1, 2, 10, 0, 0).Solve()
	assert.ErrorIs(t, err, rootfind.ErrInvalidBracket, "f(-1) is NaN")
}

// TestBisection_RootAtEndpoint accepts f(a)=0 as a sign change.
func TestBisection_RootAtEndpoint(t *testing.T) {
	f := func(x float64) float64 { return x - 1 }
	bs := rootfind.NewBisectionFunc(f, 0, 1, 60, 1e-12, 1e-12)

	x, err := bs.Solve()
	require.NoError(t, err)
	assert.InDelta(t, 1, x, 1e-12)
}

// TestBisection_IterationCap bounds the run and keeps it bounded on resume.
func TestBisection_IterationCap(t *testing.T) {
	bs := rootfind.NewBisectionFunc(square2, 0, 2, 5, 0, 0)

	x, err := bs.Solve()
	require.NoError(t, err)
	assert.Equal(t, 5, bs.Iterations())
	assert.Equal(t, 1.4375, x)
	assert.Equal(t, 0.0625, bs.Step())

	again, err := bs.Solve()
	require.NoError(t, err)
	assert.Equal(t, x, again)
	assert.Equal(t, 5, bs.Iterations())
	assert.Len(t, bs.History(), 5)
}

// TestBisection_HugeBracket keeps every midpoint finite when a+b would
// overflow.
func TestBisection_HugeBracket(t *testing.T) {
	const root = 1.5e308
	f := func(x float64) float64 { return x - root }
	bs := rootfind.NewBisectionFunc(f, 1e308, 1.7e308, 60, 0, 0)

	x, err := bs.Solve()
	require.NoError(t, err)
	assert.False(t, math.IsInf(x, 0), "root %g", x)
	assert.InEpsilon(t, root, x, 1e-12)
	assert.NotEqual(t, rootfind.StatusIndeterminate, bs.Status())

	for i, h := range bs.History() {
		assert.False(t, math.IsInf(h, 0) || math.IsNaN(h), "history[%d] = %g", i, h)
	}

	a, b := bs.Bracket()
	assert.False(t, math.IsInf(a, 0) || math.IsInf(b, 0), "bracket [%g, %g]", a, b)
	assert.LessOrEqual(t, a, root)
	assert.GreaterOrEqual(t, b, root)
}

// TestBisection_ConstructorsEquivalent compares the bundle and expanded forms.
func TestBisection_ConstructorsEquivalent(t *testing.T) {
	a := rootfind.NewBisection(rootfind.NewParams(square2, 30, 1e-9, 1e-9), 0, 2)
	b := rootfind.NewBisectionFunc(square2, 0, 2, 30, 1e-9, 1e-9)

	_, errA := a.Solve()
	_, errB := b.Solve()
	require.NoError(t, errA)
	require.NoError(t, errB)
	assert.Equal(t, a.History(), b.History())
	assert.Equal(t, a.Residual(), b.Residual())
	assert.Equal(t, "Bisection", a.Name())
}
