// SPDX-License-Identifier: MIT

package problemset

import "errors"

var (
	// ErrNoProblems is returned when a set has an empty problems list.
	ErrNoProblems = errors.New("problemset: no problems defined")

	// ErrMissingName is returned for a problem without a name.
	ErrMissingName = errors.New("problemset: problem name is required")

	// ErrDuplicateName is returned when two problems share a name.
	ErrDuplicateName = errors.New("problemset: duplicate problem name")

	// ErrUnknownMethod is returned for a method other than newton, secant, bisection.
	ErrUnknownMethod = errors.New("problemset: unknown method")

	// ErrMissingFunction is returned when f is blank.
	ErrMissingFunction = errors.New("problemset: f is required")

	// ErrMethodMismatch is returned when df is given to a method that cannot
	// use it, or missing for newton.
	ErrMethodMismatch = errors.New("problemset: derivative does not match method")

	// ErrMissingInitialGuess is returned for newton or secant without x0.
	ErrMissingInitialGuess = errors.New("problemset: newton and secant need x0")

	// ErrMissingBracket is returned for bisection without both a and b.
	ErrMissingBracket = errors.New("problemset: bisection needs a and b")

	// ErrBadLimit is returned for a negative difference step or tolerance,
	// or an iteration cap below 1.
	ErrBadLimit = errors.New("problemset: invalid limit")
)
