// SPDX-License-Identifier: MIT

package quality

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/synthdata/dataset"
	"github.com/katalvlaran/synthdata/sampler"
	"github.com/katalvlaran/synthdata/stats"
)

const opOutliers = "InjectOutliers"

// Outliers reports one outlier pass. High and Low are the fence values that
// were written; Rows lists the overwritten rows in selection order.
type Outliers struct {
	Rows      []int
	High, Low float64
	NumHigh   int
}

// InjectOutliers overwrites round(len(values)·q.OutlierRate) distinct rows
// with values beyond the interquartile fences of the current sample.
//
// Implementation:
//   - Stage 1: Q1, Q3 and IQR over the non-missing values (type-7 quantiles).
//   - Stage 2: select k rows without replacement from rng.
//   - Stage 3: write Q3 + m·IQR (extreme_high), Q1 − m·IQR (extreme_low), or
//     for extreme_both the first ⌊k/2⌋ selected rows high and the rest low.
//
// m is q.OutlierMultiplier, or defaultMultiplier when that is zero. Nothing is
// drawn when the rate is zero, the count rounds to zero, or every value is
// missing. A selected row that was missing receives the fence value too.
//
// Errors:
//   - ErrBadRate, ErrBadMultiplier, or a wrapped sampler error.
func InjectOutliers(values []float64, q dataset.Quality, defaultMultiplier float64, rng *rand.Rand) (Outliers, error) {
	mult := q.OutlierMultiplier
	if mult == 0 {
		mult = defaultMultiplier
	}
	if !(mult > 0) {
		return Outliers{}, qualityErrorf(opOutliers, fmt.Errorf("%g: %w", mult, ErrBadMultiplier))
	}
	k, err := Count(len(values), q.OutlierRate)
	if err != nil {
		return Outliers{}, qualityErrorf(opOutliers, err)
	}
	if k == 0 || stats.CountMissing(values) == len(values) {
		return Outliers{}, nil
	}

	q1, q3, iqr := stats.Quartiles(values)
	out := Outliers{High: q3 + mult*iqr, Low: q1 - mult*iqr}
	if out.Rows, err = sampler.Choose(len(values), k, rng); err != nil {
		return Outliers{}, qualityErrorf(opOutliers, err)
	}

	switch q.OutlierMethod {
	case dataset.ExtremeHigh:
		out.NumHigh = k
	case dataset.ExtremeLow:
		out.NumHigh = 0
	case dataset.ExtremeBoth:
		out.NumHigh = k / 2
	}
	for pos, i := range out.Rows {
		if pos < out.NumHigh {
			values[i] = out.High
		} else {
			values[i] = out.Low
		}
	}

	return out, nil
}
