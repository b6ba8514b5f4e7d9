// SPDX-License-Identifier: MIT

package quality

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/synthdata/sampler"
)

const opMissing = "InjectMissing"

// Missing is the code of an absent category.
const Missing = -1

// InjectMissing sets round(len(values)·rate) distinct rows to NaN and returns
// the selected rows in selection order.
func InjectMissing(values []float64, rate float64, rng *rand.Rand) ([]int, error) {
	idx, err := selectRows(len(values), rate, rng)
	if err != nil {
		return nil, err
	}
	for _, i := range idx {
		values[i] = math.NaN()
	}

	return idx, nil
}

// InjectMissingCodes sets round(len(codes)·rate) distinct rows to Missing.
func InjectMissingCodes(codes []int, rate float64, rng *rand.Rand) ([]int, error) {
	idx, err := selectRows(len(codes), rate, rng)
	if err != nil {
		return nil, err
	}
	for _, i := range idx {
		codes[i] = Missing
	}

	return idx, nil
}

// InjectMissingTimes sets round(len(times)·rate) distinct rows to "".
func InjectMissingTimes(times []string, rate float64, rng *rand.Rand) ([]int, error) {
	idx, err := selectRows(len(times), rate, rng)
	if err != nil {
		return nil, err
	}
	for _, i := range idx {
		times[i] = ""
	}

	return idx, nil
}

// selectRows draws the rows of one pass. A zero count draws nothing.
func selectRows(n int, rate float64, rng *rand.Rand) ([]int, error) {
	k, err := Count(n, rate)
	if err != nil {
		return nil, qualityErrorf(opMissing, err)
	}
	if k == 0 {
		return nil, nil
	}
	idx, err := sampler.Choose(n, k, rng)
	if err != nil {
		return nil, qualityErrorf(opMissing, err)
	}

	return idx, nil
}
