// SPDX-License-Identifier: MIT

package quality

import (
	"math"
	"sort"

	"github.com/katalvlaran/synthdata/dataset"
	"github.com/katalvlaran/synthdata/stats"
)

// MiddleCode is assigned to every present value when the decile edges
// collapse, as they do for a constant column.
const MiddleCode = dataset.NumCategories/2 - 1

// DecileEdges returns the distinct type-7 quantiles of the non-missing values
// at 0, 0.1, ..., 1, ascending.
func DecileEdges(values []float64) []float64 {
	sorted := stats.Valid(values)
	if len(sorted) == 0 {
		return nil
	}
	sort.Float64s(sorted)
	edges := make([]float64, 0, dataset.NumCategories+1)
	var i int
	for i = 0; i <= dataset.NumCategories; i++ {
		e := stats.QuantileSorted(sorted, float64(i)/dataset.NumCategories)
		if len(edges) > 0 && e <= edges[len(edges)-1] {
			continue
		}
		edges = append(edges, e)
	}

	return edges
}

// Discretize maps every value to a decile code in [0, NumCategories).
//
// Bins are right-closed with the lowest edge included: code 0 is
// [e0, e1], code j is (e_j, e_j+1]. Duplicate edges are dropped, so a heavily
// tied column uses fewer codes. NaN maps to Missing. When fewer than two
// distinct edges remain, every present value maps to MiddleCode.
func Discretize(values []float64) []int {
	codes := make([]int, len(values))
	edges := DecileEdges(values)
	var i, pos int
	for i = range values {
		v := values[i]
		switch {
		case math.IsNaN(v):
			codes[i] = Missing
		case len(edges) < 2:
			codes[i] = MiddleCode
		default:
			pos = sort.SearchFloat64s(edges, v)
			if pos == 0 {
				codes[i] = 0
			} else {
				codes[i] = pos - 1
			}
		}
	}

	return codes
}
