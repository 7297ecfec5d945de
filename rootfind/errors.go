// SPDX-License-Identifier: MIT
// Package: rootfinder/rootfind
//
// errors.go — sentinel errors for the rootfind package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Every message is prefixed "rootfind: ..." for easy grepping.
//   • Context (the offending x, the bracket values) is attached with %w at the
//     return site, never baked into the sentinel itself.
//   • Solve never panics on user input. Option constructors (WithX) panic on
//     nonsensical values, which are programmer errors.

package rootfind

import "errors"

var (
	// ErrNilFunction is returned by Solve when Params.F is nil.
	ErrNilFunction = errors.New("rootfind: target function is nil")

	// ErrInvalidMaxIterations is returned by Solve when Params.MaxIterations < 1.
	ErrInvalidMaxIterations = errors.New("rootfind: max iterations must be >= 1")

	// ErrInvalidTolerance is returned by Solve when a tolerance is negative or NaN.
	ErrInvalidTolerance = errors.New("rootfind: tolerances must be non-negative")

	// ErrInvalidBracket is returned by Bisection.Solve when f(a) and f(b) do not
	// have opposite signs (or an endpoint is not finite). No estimate is
	// produced and the finder state is left untouched.
	ErrInvalidBracket = errors.New("rootfind: no sign change in bracket")

	// ErrSingularDerivative is returned by Newton.Solve when f'(x) is zero or
	// non-finite, or when the resulting update is non-finite. The estimate that
	// triggered it stays the current one; nothing is appended to the history.
	ErrSingularDerivative = errors.New("rootfind: singular derivative")

	// ErrStopped is wrapped together with the observer's own error when
	// Params.Observer asks the loop to stop.
	ErrStopped = errors.New("rootfind: stopped by observer")
)
