// SPDX-License-Identifier: MIT

package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Valid returns the non-NaN entries of values, in order, as a new slice.
func Valid(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}

	return out
}

// CountMissing returns the number of NaN entries.
func CountMissing(values []float64) int {
	var n int
	for _, v := range values {
		if math.IsNaN(v) {
			n++
		}
	}

	return n
}

// MeanStd returns the population mean and standard deviation (ddof=0) of the
// non-missing entries. An empty input yields (NaN, NaN).
func MeanStd(values []float64) (mean, std float64) {
	valid := Valid(values)
	if len(valid) == 0 {
		return math.NaN(), math.NaN()
	}

	return stat.PopMeanStdDev(valid, nil)
}

// Range returns max-min over the non-missing entries, and false when there
// are none.
func Range(values []float64) (float64, bool) {
	valid := Valid(values)
	if len(valid) == 0 {
		return 0, false
	}

	return floats.Max(valid) - floats.Min(valid), true
}

// Quantile returns the p-quantile (0 <= p <= 1) of the non-missing entries
// using linear interpolation between closest ranks:
//
//	h = (n-1)·p,  Q = x[⌊h⌋] + (h-⌊h⌋)·(x[⌊h⌋+1] - x[⌊h⌋])
//
// An empty input yields NaN.
func Quantile(values []float64, p float64) float64 {
	sorted := Valid(values)
	sort.Float64s(sorted)

	return QuantileSorted(sorted, p)
}

// QuantileSorted is Quantile over an already sorted, NaN-free slice.
func QuantileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}
	h := float64(n-1) * p
	lo := int(math.Floor(h))
	if lo+1 >= n {
		return sorted[n-1]
	}
	frac := h - float64(lo)

	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// Quartiles returns Q1, Q3 and IQR = Q3 - Q1 of the non-missing entries.
func Quartiles(values []float64) (q1, q3, iqr float64) {
	sorted := Valid(values)
	sort.Float64s(sorted)
	q1 = QuantileSorted(sorted, 0.25)
	q3 = QuantileSorted(sorted, 0.75)

	return q1, q3, q3 - q1
}

// Pearson returns the Pearson correlation of x and y over rows where both
// are present.
func Pearson(x, y []float64) float64 {
	px, py := pairwise(x, y)
	if len(px) < 2 {
		return math.NaN()
	}

	return stat.Correlation(px, py, nil)
}

// Spearman returns the rank correlation of x and y over rows where both are
// present. Ties receive ordinal ranks in input order.
func Spearman(x, y []float64) float64 {
	px, py := pairwise(x, y)
	if len(px) < 2 {
		return math.NaN()
	}

	return stat.Correlation(Ranks(px), Ranks(py), nil)
}

// Order returns the indices that sort values ascending (a stable argsort).
func Order(values []float64) []int {
	order := make([]int, len(values))
	var i int
	for i = range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return values[order[a]] < values[order[b]] })

	return order
}

// Ranks returns the 0-based ordinal rank of every entry: the position it
// would occupy after a stable ascending sort.
func Ranks(values []float64) []float64 {
	ranks := make([]float64, len(values))
	for pos, idx := range Order(values) {
		ranks[idx] = float64(pos)
	}

	return ranks
}

func pairwise(x, y []float64) ([]float64, []float64) {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	px := make([]float64, 0, n)
	py := make([]float64, 0, n)
	var i int
	for i = 0; i < n; i++ {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		px = append(px, x[i])
		py = append(py, y[i])
	}

	return px, py
}
