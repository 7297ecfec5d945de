// SPDX-License-Identifier: MIT

package rootfind

import (
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/num/hyperdual"
)

// derivative evaluates f'(x) for the Newton update.
type derivative interface {
	at(x float64) float64
}

// exactDerivative is a caller-supplied f'.
type exactDerivative Func

func (d exactDerivative) at(x float64) float64 { return d(x) }

// forwardDifference approximates f'(x) by (f(x+h) − f(x)) / h.
// It carries its own copy of f and h, so it does not depend on the finder
// that built it.
type forwardDifference struct {
	f Func
	h float64
}

func (d forwardDifference) at(x float64) float64 {
	return fd.Derivative(d.f, x, &fd.Settings{
		Formula: fd.Forward,
		Step:    d.h,
	})
}

// Dual builds f and its exact derivative f' from a single function written
// over hyperdual numbers (automatic differentiation). The pair plugs straight
// into NewNewton:
//
//	f, df := rootfind.Dual(func(x hyperdual.Number) hyperdual.Number {
//		return hyperdual.Sub(hyperdual.Mul(x, x), hyperdual.Number{Real: 2})
//	})
//	n := rootfind.NewNewton(rootfind.DefaultParams(f), 1, rootfind.WithDerivative(df))
func Dual(fn func(hyperdual.Number) hyperdual.Number) (f, df Func) {
	f = func(x float64) float64 {
		return fn(hyperdual.Number{Real: x}).Real
	}
	df = func(x float64) float64 {
		return fn(hyperdual.Number{Real: x, E1mag: 1}).E1mag
	}

	return f, df
}
