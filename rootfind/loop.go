// SPDX-License-Identifier: MIT

package rootfind

import (
	"fmt"
	"math"
	"strings"
)

// historyCapHint bounds the up-front history allocation for huge iteration caps.
const historyCapHint = 1 << 12

// state is the running iteration trace. It is owned by exactly one finder and
// only replaced wholesale by the value run returns.
type state struct {
	estimate   float64
	iterations int
	residual   float64
	step       float64
	history    []float64
	status     Status
}

// stepFunc computes one update from the current estimate.
// Strategies that keep extra state (the Bisection bracket) update it themselves.
type stepFunc func(x float64) (Iterate, error)

// tracker holds the parameters and the trace, and provides the read-only
// accessors shared by every strategy.
type tracker struct {
	params Params
	state  state
}

// newTracker pre-sizes the history for maxIterations entries plus the seeded
// ones. The capacity is a hint only.
func newTracker(p Params, seeded int) tracker {
	size := p.MaxIterations
	if size < 0 {
		size = 0
	}
	if size > historyCapHint {
		size = historyCapHint
	}

	return tracker{
		params: p,
		state: state{
			estimate: math.NaN(),
			residual: notMeasured,
			step:     notMeasured,
			history:  make([]float64, 0, size+seeded),
		},
	}
}

// Estimate returns the latest approximation.
func (t *tracker) Estimate() float64 { return t.state.estimate }

// Iterations returns the number of completed iterations.
func (t *tracker) Iterations() int { return t.state.iterations }

// Residual returns |f(x)| at the last accepted estimate.
func (t *tracker) Residual() float64 { return t.state.residual }

// Step returns the magnitude of the last update (bracket width for Bisection).
func (t *tracker) Step() float64 { return t.state.step }

// Status returns why the last Solve stopped.
func (t *tracker) Status() Status { return t.state.status }

// Params returns the convergence bundle the finder was built with.
func (t *tracker) Params() Params { return t.params }

// History returns a copy of the estimate trace, oldest first.
func (t *tracker) History() []float64 {
	out := make([]float64, len(t.state.history))
	copy(out, t.state.history)

	return out
}

// run is the loop shared by all strategies. It executes at least one update
// and continues while iterations < MaxIterations, step > StepTol and
// residual > ResidualTol all hold.
//
// A finder that already spent its budget is returned unchanged, so
// iterations never exceed MaxIterations across repeated Solve calls.
func run(p Params, s state, step stepFunc) (state, error) {
	if s.iterations >= p.MaxIterations {
		return s, nil
	}

	for {
		it, err := step(s.estimate)
		if err != nil {
			s.status = StatusFailed

			return s, err
		}

		s.iterations++
		it.Iteration = s.iterations
		s.estimate, s.residual, s.step = it.Estimate, it.Residual, it.Step
		s.history = append(s.history, it.Estimate)

		if p.Observer != nil {
			if err = p.Observer(it); err != nil {
				s.status = StatusStopped

				return s, fmt.Errorf("%w at iteration %d: %w", ErrStopped, s.iterations, err)
			}
		}

		if s.status = haltReason(p, s); s.status != StatusPending {
			return s, nil
		}
	}
}

// haltReason maps the loop condition onto a Status. StatusPending means
// "keep going".
func haltReason(p Params, s state) Status {
	switch {
	case s.residual <= p.ResidualTol:
		return StatusConvergedResidual
	case s.step <= p.StepTol:
		return StatusConvergedStep
	case s.iterations >= p.MaxIterations:
		return StatusMaxIterations
	case math.IsNaN(s.residual) || math.IsNaN(s.step):
		return StatusIndeterminate
	}

	return StatusPending
}

// report renders the fixed four-line summary.
func report(name string, s state) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s method\n", name)
	fmt.Fprintf(&sb, " - approximate root : %.6g\n", s.estimate)
	fmt.Fprintf(&sb, " - # iterations     : %d\n", s.iterations)
	fmt.Fprintf(&sb, " - residual         : %.6g\n", s.residual)

	return sb.String()
}
