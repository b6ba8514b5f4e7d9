// SPDX-License-Identifier: MIT

package stats_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/synthdata/stats"
)

var nan = math.NaN()

func TestQuantile_LinearInterpolation(t *testing.T) {
	t.Parallel()
	values := []float64{4, 1, nan, 3, 2}

	cases := []struct {
		p, want float64
	}{
		{0, 1},
		{0.25, 1.75},
		{0.5, 2.5},
		{0.75, 3.25},
		{1, 4},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, stats.Quantile(values, tc.p), 1e-12, "p=%v", tc.p)
	}
	assert.True(t, math.IsNaN(stats.Quantile([]float64{nan}, 0.5)))
}

func TestQuartiles(t *testing.T) {
	t.Parallel()
	values := make([]float64, 101)
	for i := range values {
		values[i] = float64(i)
	}
	q1, q3, iqr := stats.Quartiles(values)
	assert.Equal(t, 25.0, q1)
	assert.Equal(t, 75.0, q3)
	assert.Equal(t, 50.0, iqr)
}

func TestMeanStdRange(t *testing.T) {
	t.Parallel()
	values := []float64{2, 4, nan, 4, 4, 5, 5, 7, 9}

	mean, std := stats.MeanStd(values)
	assert.InDelta(t, 5.0, mean, 1e-12)
	assert.InDelta(t, 2.0, std, 1e-12, "population std")

	r, ok := stats.Range(values)
	require.True(t, ok)
	assert.Equal(t, 7.0, r)

	_, ok = stats.Range([]float64{nan, nan})
	assert.False(t, ok)
	assert.Equal(t, 2, stats.CountMissing([]float64{nan, 1, nan}))
}

func TestCorrelations(t *testing.T) {
	t.Parallel()
	x := []float64{1, 2, 3, 4, 5, nan}
	y := []float64{1, 4, 9, 16, 25, 3}

	assert.InDelta(t, 1.0, stats.Spearman(x, y), 1e-12)
	assert.Greater(t, stats.Pearson(x, y), 0.95)
	assert.Less(t, stats.Pearson(x, y), 1.0)

	neg := []float64{5, 4, 3, 2, 1, 0}
	assert.InDelta(t, -1.0, stats.Spearman(x, neg), 1e-12)
}

func TestOrderAndRanks(t *testing.T) {
	t.Parallel()
	values := []float64{0.3, -1, 2, 0.3}
	assert.Equal(t, []int{1, 0, 3, 2}, stats.Order(values))
	assert.Equal(t, []float64{1, 0, 3, 2}, stats.Ranks(values))
}
