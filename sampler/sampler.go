// SPDX-License-Identifier: MIT

package sampler

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/synthdata/dataset"
)

const opSample = "Sample"

// Series is one sampled column: Numbers for numeric families, Times (ISO-8601
// text) for sequential_datetime. Exactly one of them is non-nil.
type Series struct {
	Numbers []float64
	Times   []string
}

// Sample draws n raw values from d.
//
// Behavior per family:
//   - Uniform:            Min + (Max-Min)·U, U ∈ [0,1).
//   - Normal:             Mean + Std·Z, then clamped to [MinClip, MaxClip] when set.
//   - Weibull:            Location + Scale·(-ln(1-U))^(1/Shape).
//   - RandomWalk:         Start + running sum of (U(-StepSize, StepSize) + Drift).
//   - Sequential:         Start + i·Step.
//   - SequentialDatetime: Start advanced one Interval per row (see Timestamps).
//
// Determinism:
//   - Stochastic families consume exactly n draws from rng, in row order;
//     Sequential and SequentialDatetime consume none.
//
// Errors:
//   - ErrBadSize (n <= 0), ErrNeedRand (nil rng for a stochastic family),
//     ErrUnknownDistribution.
func Sample(d dataset.Distribution, n int, rng *rand.Rand) (Series, error) {
	if d == nil {
		return Series{}, samplerErrorf(opSample, "nil", ErrUnknownDistribution)
	}
	if n <= 0 {
		return Series{}, samplerErrorf(opSample, d.Kind(), ErrBadSize)
	}

	switch dist := d.(type) {
	case dataset.Sequential:
		return Series{Numbers: sequential(dist, n)}, nil
	case dataset.SequentialDatetime:
		return Series{Times: Timestamps(dist, n)}, nil
	}

	if rng == nil {
		return Series{}, samplerErrorf(opSample, d.Kind(), ErrNeedRand)
	}
	out := make([]float64, n)
	var i int
	switch dist := d.(type) {
	case dataset.Uniform:
		width := dist.Max - dist.Min
		for i = 0; i < n; i++ {
			out[i] = dist.Min + width*rng.Float64()
		}
	case dataset.Normal:
		for i = 0; i < n; i++ {
			out[i] = clamp(dist.Mean+dist.Std*rng.NormFloat64(), dist.MinClip, dist.MaxClip)
		}
	case dataset.Weibull:
		inv := 1 / dist.Shape
		for i = 0; i < n; i++ {
			out[i] = dist.Location + dist.Scale*math.Pow(-math.Log1p(-rng.Float64()), inv)
		}
	case dataset.RandomWalk:
		level := dist.Start
		for i = 0; i < n; i++ {
			level += dist.StepSize*(2*rng.Float64()-1) + dist.Drift
			out[i] = level
		}
	default:
		return Series{}, samplerErrorf(opSample, d.Kind(), ErrUnknownDistribution)
	}

	return Series{Numbers: out}, nil
}

func sequential(d dataset.Sequential, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = d.Start + float64(i)*d.Step
	}

	return out
}

func clamp(v float64, lo, hi *float64) float64 {
	if lo != nil && v < *lo {
		v = *lo
	}
	if hi != nil && v > *hi {
		v = *hi
	}

	return v
}
