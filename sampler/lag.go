// SPDX-License-Identifier: MIT

package sampler

import "math"

// Lag returns values shifted right by k rows: the first k entries are NaN
// and entry i is values[i-k]. k >= len(values) yields an all-NaN series.
func Lag(values []float64, k int) []float64 {
	out := make([]float64, len(values))
	var i int
	for i = range out {
		if i < k {
			out[i] = math.NaN()
			continue
		}
		out[i] = values[i-k]
	}

	return out
}
