// SPDX-License-Identifier: MIT

package rootfind

import "math"

// Defaults used by DefaultParams and by NewNewton when no WithDifferenceStep
// option is given.
const (
	// DefaultMaxIterations caps the loop when the caller has no better bound.
	DefaultMaxIterations = 1000

	// DefaultResidualTol stops the loop once |f(x)| <= 1e-6.
	DefaultResidualTol = 1e-6

	// DefaultStepTol stops the loop once the last step (or bracket width) <= 1e-6.
	DefaultStepTol = 1e-6

	// DefaultDifferenceStep is the fixed h of the forward difference
	// (f(x+h) − f(x)) / h used when no exact derivative is supplied.
	DefaultDifferenceStep = 1e-5
)

// Func is a real function of one real variable. The finders treat it as pure:
// it may be called any number of times at any point they visit.
type Func func(x float64) float64

// Observer is called after every accepted iteration. Returning a non-nil error
// stops the loop; Solve then returns an error wrapping ErrStopped and it.
type Observer func(it Iterate) error

// Iterate describes one accepted iteration.
type Iterate struct {
	Iteration int     // 1-based iteration number
	Estimate  float64 // estimate produced by this iteration
	Residual  float64 // |f(Estimate)|
	Step      float64 // |Δx| for Newton/Secant, bracket width |b−a| for Bisection
}

// Params is the convergence bundle shared by every strategy.
// It is copied into each finder at construction and never mutated afterwards.
//
// Fields:
//   - F             — target function (required).
//   - MaxIterations — hard cap on loop iterations (>= 1).
//   - ResidualTol   — stop when |f(x)| <= ResidualTol (>= 0).
//   - StepTol       — stop when the last step <= StepTol (>= 0).
//   - Observer      — optional per-iteration hook; nil means none.
type Params struct {
	F             Func
	MaxIterations int
	ResidualTol   float64
	StepTol       float64
	Observer      Observer
}

// NewParams builds a Params bundle from its four required fields.
func NewParams(f Func, maxIterations int, residualTol, stepTol float64) Params {
	return Params{
		F:             f,
		MaxIterations: maxIterations,
		ResidualTol:   residualTol,
		StepTol:       stepTol,
	}
}

// DefaultParams returns Params for f with DefaultMaxIterations,
// DefaultResidualTol and DefaultStepTol.
func DefaultParams(f Func) Params {
	return NewParams(f, DefaultMaxIterations, DefaultResidualTol, DefaultStepTol)
}

// validate checks Params before any iteration state is touched.
func (p Params) validate() error {
	if p.F == nil {
		return ErrNilFunction
	}
	if p.MaxIterations < 1 {
		return ErrInvalidMaxIterations
	}
	if !(p.ResidualTol >= 0) || !(p.StepTol >= 0) {
		// the negated form also rejects NaN
		return ErrInvalidTolerance
	}

	return nil
}

// Status tells why the last Solve stopped.
//
// Several halt conditions may hold at once. The reported one follows the
// priority ConvergedResidual > ConvergedStep > MaxIterations.
type Status int

const (
	// StatusPending: Solve has not completed an iteration yet.
	StatusPending Status = iota

	// StatusConvergedResidual: |f(x)| <= ResidualTol.
	StatusConvergedResidual

	// StatusConvergedStep: the last step (or bracket width) <= StepTol.
	StatusConvergedStep

	// StatusMaxIterations: the iteration budget was exhausted.
	StatusMaxIterations

	// StatusIndeterminate: a NaN residual or step stopped the loop, typically
	// because the target function is undefined at the visited point.
	StatusIndeterminate

	// StatusFailed: the update could not be computed (ErrSingularDerivative).
	StatusFailed

	// StatusStopped: the Observer returned an error.
	StatusStopped
)

var statusNames = [...]string{
	StatusPending:           "pending",
	StatusConvergedResidual: "converged-residual",
	StatusConvergedStep:     "converged-step",
	StatusMaxIterations:     "max-iterations",
	StatusIndeterminate:     "indeterminate",
	StatusFailed:            "failed",
	StatusStopped:           "stopped",
}

// String returns the kebab-case name of s.
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "unknown"
	}

	return statusNames[s]
}

// Converged reports whether s is one of the two tolerance-based outcomes.
func (s Status) Converged() bool {
	return s == StatusConvergedResidual || s == StatusConvergedStep
}

// Finder is the caller-visible root finder. The concrete strategies are
// *Newton (named "Newton" or "Secant") and *Bisection.
//
// A Finder is not safe for concurrent use. Independent finders share nothing
// and may run in parallel.
type Finder interface {
	// Solve runs the iteration until a halt condition holds and returns the
	// final estimate. Calling it again resumes from the current state.
	Solve() (float64, error)

	// Name is the short method label: "Newton", "Secant" or "Bisection".
	Name() string

	// Estimate is the latest approximation (NaN for Bisection before Solve).
	Estimate() float64

	// Iterations is the number of iterations completed so far.
	Iterations() int

	// Residual is |f(Estimate())| at the last accepted estimate
	// (+Inf before the first iteration).
	Residual() float64

	// History returns a copy of every estimate produced, oldest first,
	// including the seeded initial guess for Newton/Secant.
	History() []float64

	// Status tells why the last Solve stopped.
	Status() Status

	// String is the fixed-format multi-line report.
	String() string
}

// compile-time interface checks
var (
	_ Finder = (*Newton)(nil)
	_ Finder = (*Bisection)(nil)
)

// notMeasured marks residual/step values before the first iteration.
var notMeasured = math.Inf(1)
