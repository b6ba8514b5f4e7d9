// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"
	"math"
)

// Env binds variable names to full-length series. Missing entries are NaN
// and propagate through arithmetic.
type Env map[string][]float64

// value is either a scalar (vec == nil) or a series of the evaluation length.
type value struct {
	vec []float64
	s   float64
}

func scalar(v float64) value { return value{s: v} }

func (v value) isScalar() bool { return v.vec == nil }

func (v value) at(i int) float64 {
	if v.vec == nil {
		return v.s
	}

	return v.vec[i]
}

// Eval evaluates the expression over env and returns a series of length n.
// Scalars broadcast against series; a scalar result is repeated n times.
//
// Errors:
//   - *NameError  (ErrUnknownName) for a variable env does not bind.
//   - *CallError  (ErrBadCall) for a helper outside the allowed set.
//   - ErrLength   when a referenced series is not n long.
//
// Arithmetic faults (division by zero, log of a negative) follow IEEE-754 and
// yield ±Inf or NaN rather than an error.
func (e *Expr) Eval(env Env, n int) ([]float64, error) {
	for _, name := range e.vars {
		series, ok := env[name]
		if !ok {
			return nil, &NameError{Name: name}
		}
		if len(series) != n {
			return nil, fmt.Errorf("%w: %s has %d values, want %d", ErrLength, name, len(series), n)
		}
	}
	v, err := e.root.eval(env, n)
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	if v.isScalar() {
		for i := range out {
			out[i] = v.s
		}
		return out, nil
	}
	copy(out, v.vec)

	return out, nil
}

func (x *numberNode) eval(Env, int) (value, error) { return scalar(x.v), nil }

func (x *nameNode) eval(env Env, _ int) (value, error) {
	series, ok := env[x.name]
	if !ok {
		return value{}, &NameError{Name: x.name}
	}

	return value{vec: series}, nil
}

func (x *unaryNode) eval(env Env, n int) (value, error) {
	v, err := x.x.eval(env, n)
	if err != nil {
		return value{}, err
	}
	if !x.neg {
		return v, nil
	}

	return mapValue(v, n, func(a float64) float64 { return -a }), nil
}

func (x *binaryNode) eval(env Env, n int) (value, error) {
	l, err := x.l.eval(env, n)
	if err != nil {
		return value{}, err
	}
	r, err := x.r.eval(env, n)
	if err != nil {
		return value{}, err
	}
	var f func(a, b float64) float64
	switch x.op {
	case tokPlus:
		f = func(a, b float64) float64 { return a + b }
	case tokMinus:
		f = func(a, b float64) float64 { return a - b }
	case tokStar:
		f = func(a, b float64) float64 { return a * b }
	case tokSlash:
		f = func(a, b float64) float64 { return a / b }
	case tokPercent:
		f = floorMod
	case tokPow:
		f = math.Pow
	default:
		return value{}, fmt.Errorf("%w: operator %d", ErrSyntax, x.op)
	}

	return zipValues(l, r, n, f), nil
}

func (x *callNode) eval(env Env, n int) (value, error) {
	h, ok := helpers[x.fn]
	if !ok {
		return value{}, &CallError{Func: x.fn, Msg: "not an allowed function"}
	}
	args := make([]value, len(x.args))
	var err error
	for i, a := range x.args {
		if args[i], err = a.eval(env, n); err != nil {
			return value{}, err
		}
	}

	return h.fn(x.fn, args, n)
}

// mapValue applies f elementwise, preserving scalar-ness.
func mapValue(v value, n int, f func(float64) float64) value {
	if v.isScalar() {
		return scalar(f(v.s))
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = f(v.vec[i])
	}

	return value{vec: out}
}

// zipValues applies f pairwise with scalar broadcasting.
func zipValues(a, b value, n int, f func(x, y float64) float64) value {
	if a.isScalar() && b.isScalar() {
		return scalar(f(a.s, b.s))
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = f(a.at(i), b.at(i))
	}

	return value{vec: out}
}

// floorMod is the modulo whose result takes the sign of the divisor.
func floorMod(a, b float64) float64 {
	r := math.Mod(a, b)
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}

	return r
}
