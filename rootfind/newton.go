// SPDX-License-Identifier: MIT

package rootfind

import (
	"fmt"
	"math"
)

// Method names reported by Name.
const (
	MethodNewton    = "Newton"
	MethodSecant    = "Secant"
	MethodBisection = "Bisection"
)

// Newton is the derivative-based strategy.
//
// Update rule:
//
//	Δx = f(x) / f'(x)
//	x  ← x − Δx
//
// f' is the caller's exact derivative (WithDerivative, name "Newton") or the
// forward difference (f(x+h) − f(x)) / h with a fixed h (name "Secant").
// The "Secant" label does not mean a two-point secant iteration: both names
// share this update, only the source of f' differs.
//
// The initial guess is seeded into the history at construction, so after
// Solve len(History()) == Iterations()+1.
type Newton struct {
	tracker
	x0    float64
	deriv derivative
	exact bool
}

// NewNewton builds a Newton/Secant finder from a Params bundle and an initial
// guess x0.
func NewNewton(p Params, x0 float64, opts ...Option) *Newton {
	cfg := gatherOptions(opts)

	n := &Newton{
		tracker: newTracker(p, 1),
		x0:      x0,
	}
	n.state.estimate = x0
	n.state.history = append(n.state.history, x0)

	if cfg.df != nil {
		n.deriv = exactDerivative(cfg.df)
		n.exact = true
	} else {
		n.deriv = forwardDifference{f: p.F, h: cfg.h}
	}

	return n
}

// NewNewtonFunc is NewNewton with the Params bundle built from its fields.
func NewNewtonFunc(f Func, x0 float64, maxIterations int, residualTol, stepTol float64, opts ...Option) *Newton {
	return NewNewton(NewParams(f, maxIterations, residualTol, stepTol), x0, opts...)
}

// Name returns "Newton" when an exact derivative was supplied, "Secant" otherwise.
func (n *Newton) Name() string {
	if n.exact {
		return MethodNewton
	}

	return MethodSecant
}

// InitialGuess returns the x0 the finder was built with.
func (n *Newton) InitialGuess() float64 { return n.x0 }

// Solve iterates from the current estimate and returns the final one.
//
// Errors:
//   - ErrNilFunction, ErrInvalidMaxIterations, ErrInvalidTolerance — bad Params.
//   - ErrSingularDerivative — f'(x) is zero or non-finite, or Δx is non-finite.
//     The returned value is the last good estimate.
//   - ErrStopped — the Observer asked to stop.
func (n *Newton) Solve() (float64, error) {
	if err := n.params.validate(); err != nil {
		return n.state.estimate, err
	}

	var err error
	n.state, err = run(n.params, n.state, n.step)

	return n.state.estimate, err
}

// step performs one Newton update from x.
func (n *Newton) step(x float64) (Iterate, error) {
	f := n.params.F

	d := n.deriv.at(x)
	if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return Iterate{}, fmt.Errorf("%w: f'(%g) = %g", ErrSingularDerivative, x, d)
	}

	dx := f(x) / d
	if math.IsNaN(dx) || math.IsInf(dx, 0) {
		return Iterate{}, fmt.Errorf("%w: Δx = %g at x = %g", ErrSingularDerivative, dx, x)
	}

	next := x - dx

	return Iterate{
		Estimate: next,
		Residual: math.Abs(f(next)),
		Step:     math.Abs(dx),
	}, nil
}

// String returns the four-line report.
func (n *Newton) String() string {
	return report(n.Name(), n.state)
}
