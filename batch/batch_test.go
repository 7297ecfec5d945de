// SPDX-License-Identifier: MIT

package batch_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/rootfinder/batch"
	"github.com/katalvlaran/rootfinder/problemset"
	"github.com/katalvlaran/rootfinder/rootfind"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const doc = `
problems:
  - name: newton
    method: newton
    f: "x*x - 2"
    df: "2*x"
    x0: 1
  - name: secant
    method: secant
    f: "math.Cos(x) - x"
    x0: 1
  - name: no-sign-change
    method: bisection
    f: "x*x + 1"
    a: 0
    b: 1
  - name: bisection
    method: bisection
    f: "x*x*x - x - 2"
    a: 1
    b: 2
    max_iterations: 100
    residual_tolerance: 0
    step_tolerance: 1e-9
  - name: bad-expression
    method: secant
    f: "x +"
    x0: 1
`

func parse(t *testing.T) []problemset.Problem {
	t.Helper()
	s, err := problemset.Parse([]byte(doc))
	require.NoError(t, err)

	return s.Problems
}

// TestRun_Outcomes checks per-problem results, order and isolation of failures.
func TestRun_Outcomes(t *testing.T) {
	out, err := batch.Run(context.Background(), zaptest.NewLogger(t), parse(t), batch.Options{Workers: 2, KeepHistory: true})
	require.NoError(t, err)
	require.Len(t, out, 5)

	newton := out[0]
	assert.Equal(t, "newton", newton.Problem)
	assert.Equal(t, "Newton", newton.Method)
	assert.InDelta(t, math.Sqrt2, newton.Root, 1e-6)
	assert.Equal(t, 4, newton.Iterations)
	assert.Equal(t, rootfind.StatusConvergedResidual.String(), newton.Status)
	assert.Len(t, newton.History, newton.Iterations+1)
	assert.Empty(t, newton.Err)
	assert.Contains(t, newton.Report, "Newton method\n")

	secant := out[1]
	assert.Equal(t, "Secant", secant.Method)
	assert.InDelta(t, 0.7390851332151607, secant.Root, 1e-6)

	invalid := out[2]
	assert.Equal(t, "Bisection", invalid.Method)
	assert.Contains(t, invalid.Err, "no sign change")
	assert.True(t, math.IsNaN(invalid.Root))
	assert.Empty(t, invalid.History)

	bisect := out[3]
	assert.InDelta(t, 1.5213797068045676, bisect.Root, 1e-8)
	assert.Equal(t, rootfind.StatusConvergedStep.String(), bisect.Status)

	bad := out[4]
	assert.Equal(t, "secant", bad.Method, "no finder was built")
	assert.Contains(t, bad.Err, "compile failed")
	assert.Empty(t, bad.Report)
}

// TestRun_NilLoggerDefaultWorkers uses the fallbacks.
func TestRun_NilLoggerDefaultWorkers(t *testing.T) {
	out, err := batch.Run(context.Background(), nil, parse(t)[:1], batch.Options{})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Nil(t, out[0].History, "history only on request")
}

// TestRun_Canceled stops before any problem runs.
func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := batch.Run(ctx, zaptest.NewLogger(t), parse(t), batch.Options{Workers: 1})
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, out, 5)
	for _, o := range out {
		assert.Equal(t, rootfind.StatusPending.String(), o.Status, o.Problem)
		assert.NotEmpty(t, o.Err, o.Problem)
		assert.ErrorIs(t, o.Error, context.Canceled, o.Problem)
	}
}

// TestRun_CanceledDuringSolve stops a running finder through its observer.
func TestRun_CanceledDuringSolve(t *testing.T) {
	s, err := problemset.Parse([]byte(`
problems:
  - name: slow
    method: bisection
    f: "x*x - 2"
    a: 0
    b: 2
    max_iterations: 100
    residual_tolerance: 0
    step_tolerance: 0
`))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var seen []string
	out, err := batch.Run(ctx, zaptest.NewLogger(t), s.Problems, batch.Options{
		Workers: 1,
		OnIterate: func(problem string, it rootfind.Iterate) {
			seen = append(seen, problem)
			if it.Iteration == 1 {
				cancel()
			}
		},
	})
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, out, 1)

	o := out[0]
	assert.Equal(t, []string{"slow"}, seen)
	assert.Equal(t, 1, o.Iterations)
	assert.Equal(t, rootfind.StatusStopped.String(), o.Status)
	assert.Equal(t, 1.0, o.Root, "estimate of the last completed iterate")
	assert.True(t, errors.Is(o.Error, rootfind.ErrStopped))
	assert.True(t, errors.Is(o.Error, context.Canceled))
	assert.Contains(t, o.Err, rootfind.ErrStopped.Error())
}
