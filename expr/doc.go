// SPDX-License-Identifier: MIT

// Package expr parses and evaluates the restricted arithmetic used for target
// formulas.
//
// An expression is evaluated over a closed namespace: the series bound in an
// Env plus a fixed helper set (exp, log, sqrt, sin, cos, tan, abs, floor,
// ceil, pow, round, min, max, sum), optionally qualified as np.<helper>.
// Nothing else resolves; there are no attributes, indexing, assignments or
// user-defined functions.
//
// Values are series of one evaluation length or scalars, and scalars broadcast.
// round is half-to-even. min and max with one argument reduce a series to a
// scalar; with several they compare elementwise. sum reduces.
//
// Usage:
//
//	e, err := expr.Parse("2*x + np.sqrt(abs(y_lag1))")
//	vars := e.Vars()                  // ["x", "y_lag1"]
//	out, err := e.Eval(expr.Env{"x": xs, "y_lag1": ys}, len(xs))
package expr
