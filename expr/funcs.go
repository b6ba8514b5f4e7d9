// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"
	"math"
	"sort"
)

// NamespacePrefix is the optional qualifier accepted in front of helper
// calls: np.exp(x) and exp(x) are the same call.
const NamespacePrefix = "np"

type helper struct {
	minArgs int
	maxArgs int // -1 for variadic
	fn      func(name string, args []value, n int) (value, error)
}

func (h helper) arity() string {
	switch {
	case h.maxArgs < 0:
		return fmt.Sprintf("at least %d argument(s)", h.minArgs)
	case h.minArgs == h.maxArgs:
		return fmt.Sprintf("%d argument(s)", h.minArgs)
	}

	return fmt.Sprintf("%d to %d arguments", h.minArgs, h.maxArgs)
}

func elementwise(f func(float64) float64) helper {
	return helper{minArgs: 1, maxArgs: 1, fn: func(_ string, args []value, n int) (value, error) {
		return mapValue(args[0], n, f), nil
	}}
}

// helpers is the closed set of callable names.
var helpers = map[string]helper{
	"exp":   elementwise(math.Exp),
	"log":   elementwise(math.Log),
	"sqrt":  elementwise(math.Sqrt),
	"sin":   elementwise(math.Sin),
	"cos":   elementwise(math.Cos),
	"tan":   elementwise(math.Tan),
	"abs":   elementwise(math.Abs),
	"floor": elementwise(math.Floor),
	"ceil":  elementwise(math.Ceil),
	"pow": {minArgs: 2, maxArgs: 2, fn: func(_ string, args []value, n int) (value, error) {
		return zipValues(args[0], args[1], n, math.Pow), nil
	}},
	"round": {minArgs: 1, maxArgs: 2, fn: roundHelper},
	"min":   {minArgs: 1, maxArgs: -1, fn: extremum(math.Min)},
	"max":   {minArgs: 1, maxArgs: -1, fn: extremum(math.Max)},
	"sum":   {minArgs: 1, maxArgs: 1, fn: sumHelper},
}

// Helpers returns the callable helper names, sorted.
func Helpers() []string {
	names := make([]string, 0, len(helpers))
	for name := range helpers {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// IsHelper reports whether name is a callable helper.
func IsHelper(name string) bool {
	_, ok := helpers[name]

	return ok
}

// roundHelper rounds half to even, optionally to a scalar number of decimals.
func roundHelper(name string, args []value, n int) (value, error) {
	if len(args) == 1 {
		return mapValue(args[0], n, math.RoundToEven), nil
	}
	if !args[1].isScalar() {
		return value{}, &CallError{Func: name, Msg: "decimals must be a scalar"}
	}
	scale := math.Pow(10, math.Trunc(args[1].s))

	return mapValue(args[0], n, func(x float64) float64 {
		return math.RoundToEven(x*scale) / scale
	}), nil
}

// extremum reduces a single argument to one scalar and folds several
// arguments elementwise. math.Min/Max propagate NaN in both modes.
func extremum(pick func(a, b float64) float64) func(string, []value, int) (value, error) {
	return func(_ string, args []value, n int) (value, error) {
		if len(args) == 1 {
			v := args[0]
			if v.isScalar() {
				return v, nil
			}
			if len(v.vec) == 0 {
				return scalar(math.NaN()), nil
			}
			acc := v.vec[0]
			for _, x := range v.vec[1:] {
				acc = pick(acc, x)
			}
			return scalar(acc), nil
		}
		acc := args[0]
		for _, v := range args[1:] {
			acc = zipValues(acc, v, n, pick)
		}
		return acc, nil
	}
}

func sumHelper(_ string, args []value, _ int) (value, error) {
	v := args[0]
	if v.isScalar() {
		return v, nil
	}
	var total float64
	for _, x := range v.vec {
		total += x
	}

	return scalar(total), nil
}
