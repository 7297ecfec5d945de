// SPDX-License-Identifier: MIT

// Package expr compiles one-line Go expressions in x, such as "x*x - 2" or
// "math.Cos(x) - x", into rootfind.Func values.
//
// Expressions are interpreted with yaegi. Only the math package is exported
// to the interpreter, and the source must be a single expression: statement
// separators, braces, backquotes and newlines are rejected before evaluation.
//
// Each compiled Func owns its own interpreter and is not safe for concurrent
// use; compile once per goroutine.
package expr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"github.com/katalvlaran/rootfinder/rootfind"
)

var (
	// ErrEmpty is returned for a blank expression.
	ErrEmpty = errors.New("expr: empty expression")

	// ErrUnsafe is returned when the source is not a single expression.
	ErrUnsafe = errors.New("expr: only a single expression is allowed")

	// ErrCompile wraps interpreter errors (syntax, undefined names, types).
	ErrCompile = errors.New("expr: compile failed")
)

// forbidden lists characters that could end the expression and start new code.
const forbidden = ";{}`\n\r"

// unit is the interpreted wrapper. The blank math reference keeps the import
// used when the expression does not mention it.
const unit = `package fn

import "math"

var _ = math.Pi

func F(x float64) float64 { return %s }
`

// Compile turns src into a function of x.
func Compile(src string) (rootfind.Func, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, ErrEmpty
	}
	if strings.ContainsAny(src, forbidden) {
		return nil, fmt.Errorf("%w: %q", ErrUnsafe, src)
	}

	i := interp.New(interp.Options{})
	if err := i.Use(interp.Exports{"math/math": stdlib.Symbols["math/math"]}); err != nil {
		return nil, fmt.Errorf("%w: load math: %w", ErrCompile, err)
	}
	if _, err := i.Eval(fmt.Sprintf(unit, src)); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrCompile, src, err)
	}

	v, err := i.Eval("fn.F")
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrCompile, src, err)
	}
	f, ok := v.Interface().(func(float64) float64)
	if !ok {
		return nil, fmt.Errorf("%w: %q: unexpected type %s", ErrCompile, src, v.Type())
	}

	return f, nil
}

// MustCompile is Compile that panics on error. Intended for tests and
// package-level tables of known-good expressions.
func MustCompile(src string) rootfind.Func {
	f, err := Compile(src)
	if err != nil {
		panic(err)
	}

	return f
}
