// SPDX-License-Identifier: MIT

package rootfind

import (
	"fmt"
	"math"
)

// Bisection is the bracketing strategy.
//
// Each iteration takes the midpoint c = (a+b)/2 and keeps the half that still
// shows a sign change:
//
//	f(a), f(c) of opposite sign  ⇒ b ← c
//	otherwise                    ⇒ a ← c
//
// The recorded step is the new bracket width |b−a| and the residual is |f(c)|.
// Nothing is seeded into the history, so after Solve
// len(History()) == Iterations().
type Bisection struct {
	tracker
	a, b float64
}

// NewBisection builds a Bisection finder over the bracket [a, b].
// The sign change is checked lazily by Solve.
func NewBisection(p Params, a, b float64) *Bisection {
	bs := &Bisection{
		tracker: newTracker(p, 0),
		a:       a,
		b:       b,
	}
	bs.state.step = math.Abs(b - a)

	return bs
}

// NewBisectionFunc is NewBisection with the Params bundle built from its fields.
func NewBisectionFunc(f Func, a, b float64, maxIterations int, residualTol, stepTol float64) *Bisection {
	return NewBisection(NewParams(f, maxIterations, residualTol, stepTol), a, b)
}

// Name always returns "Bisection".
func (bs *Bisection) Name() string { return MethodBisection }

// Bracket returns the current endpoints.
func (bs *Bisection) Bracket() (a, b float64) { return bs.a, bs.b }

// Solve checks the bracket and halves it until a halt condition holds.
//
// Errors:
//   - ErrNilFunction, ErrInvalidMaxIterations, ErrInvalidTolerance — bad Params.
//   - ErrInvalidBracket — f(a), f(b) share a sign, or an endpoint or value is
//     not a number. Returned before any state changes; the estimate is NaN on
//     a fresh finder.
//   - ErrStopped — the Observer asked to stop.
func (bs *Bisection) Solve() (float64, error) {
	if err := bs.params.validate(); err != nil {
		return bs.state.estimate, err
	}
	if err := bs.checkBracket(); err != nil {
		return bs.state.estimate, err
	}

	var err error
	bs.state, err = run(bs.params, bs.state, bs.step)

	return bs.state.estimate, err
}

// checkBracket requires f(a)·f(b) <= 0. Signs are compared directly so the
// test cannot overflow or underflow.
func (bs *Bisection) checkBracket() error {
	if isNonFinite(bs.a) || isNonFinite(bs.b) {
		return fmt.Errorf("%w: endpoints [%g, %g] must be finite", ErrInvalidBracket, bs.a, bs.b)
	}

	fa, fb := bs.params.F(bs.a), bs.params.F(bs.b)
	if !((fa <= 0 && fb >= 0) || (fa >= 0 && fb <= 0)) {
		return fmt.Errorf("%w: f(%g) = %g, f(%g) = %g", ErrInvalidBracket, bs.a, fa, bs.b, fb)
	}

	return nil
}

// step halves the bracket. The current estimate is not needed.
func (bs *Bisection) step(float64) (Iterate, error) {
	f := bs.params.F
	// Halve before adding: a+b overflows for brackets near MaxFloat64.
	c := 0.5*bs.a + 0.5*bs.b

	fa, fc := f(bs.a), f(c)
	if oppositeSigns(fa, fc) {
		bs.b = c
	} else {
		bs.a = c
	}

	return Iterate{
		Estimate: c,
		Residual: math.Abs(fc),
		Step:     math.Abs(bs.b - bs.a),
	}, nil
}

// String returns the four-line report.
func (bs *Bisection) String() string {
	return report(bs.Name(), bs.state)
}

func oppositeSigns(u, v float64) bool {
	return (u < 0 && v > 0) || (u > 0 && v < 0)
}

func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
