// SPDX-License-Identifier: MIT

package dataset_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/synthdata/dataset"
)

func TestCompile(t *testing.T) {
	t.Parallel()
	spec, err := dataset.Compile(mustDecode(t, validDoc))
	require.NoError(t, err)

	assert.Equal(t, "sales", spec.Name)
	require.NotNil(t, spec.Seed)
	assert.Equal(t, int64(7), *spec.Seed)
	assert.Equal(t, 100, spec.Rows)
	require.Len(t, spec.Features, 4)

	date := spec.Features[0]
	assert.Equal(t, dataset.Datetime, date.Type)
	sd, ok := date.Distribution.(dataset.SequentialDatetime)
	require.True(t, ok)
	assert.Equal(t, dataset.Monthly, sd.Interval)
	assert.False(t, sd.Zoned)
	assert.True(t, sd.Start.Equal(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)))

	price, ok := spec.Feature("price")
	require.True(t, ok)
	n, ok := price.Distribution.(dataset.Normal)
	require.True(t, ok)
	require.NotNil(t, n.MinClip)
	assert.Nil(t, n.MaxClip)
	assert.Equal(t, []int{1, 7}, price.Lags)
	assert.Equal(t, dataset.ExtremeBoth, price.OutlierMethod)
	assert.Equal(t, 0.05, price.MissingRate)

	assert.Equal(t, dataset.Categorical, spec.Features[3].Type)
	assert.Len(t, spec.Features[3].Categories, dataset.NumCategories)

	assert.Equal(t, []dataset.Correlation{{A: "price", B: "ads", Coefficient: 0.4}}, spec.Correlations)
	assert.Equal(t, "revenue", spec.Target.Name)
	assert.Equal(t, []float64{1, 1.1, 0.9}, spec.Target.Seasonality)
	assert.Nil(t, spec.Target.SecondarySeasonality)
	assert.Equal(t, []string{"price", "ads", "price_lag1"}, spec.Target.Expression.Vars())
}

func TestCompile_Invalid(t *testing.T) {
	t.Parallel()
	_, err := dataset.Compile(mustDecode(t, `{"dataset_config": {"name": "x"}}`))
	require.ErrorIs(t, err, dataset.ErrInvalid)

	var verr *dataset.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Errors, 3)
}

func TestLoadSpec_YAMLFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "hourly.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
dataset_config:
  name: hourly
  n_rows: 24
  features:
    - name: ts
      data_type: datetime
      distribution: {type: sequential_datetime, start: "2024-03-10T00:00:00+02:00", interval: hourly}
    - name: load
      data_type: float
      distribution: {type: weibull, shape: 1.5, scale: 2}
  target: {name: demand, data_type: float, expression: "load * 10"}
`), 0o600))

	spec, err := dataset.LoadSpec(path)
	require.NoError(t, err)
	sd := spec.Features[0].Distribution.(dataset.SequentialDatetime)
	assert.True(t, sd.Zoned)
	w := spec.Features[1].Distribution.(dataset.Weibull)
	assert.Equal(t, dataset.Weibull{Shape: 1.5, Scale: 2, Location: 0}, w)
}

func TestSummarize(t *testing.T) {
	t.Parallel()
	spec, err := dataset.Compile(mustDecode(t, validDoc))
	require.NoError(t, err)

	sum := dataset.Summarize(spec)
	assert.Equal(t, "7", sum.Seed)
	assert.Equal(t, 4, sum.Features)
	assert.Equal(t, 1, sum.Correlations)
	assert.Equal(t, 3, sum.Seasonality)
	assert.Equal(t, map[string]int{"datetime": 1, "float": 1, "int": 1, "categorical": 1}, sum.FeatureTypes)
	assert.Contains(t, sum.String(), "Target:        revenue (float)")

	spec.Seed = nil
	assert.Equal(t, "None (random)", dataset.Summarize(spec).Seed)
}

func TestParseTimestamp(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"2024-01-01", "2024-01-01T06:30", "2024-01-01 06:30:00", "2024-01-01T06:30:00.25"} {
		_, zoned, err := dataset.ParseTimestamp(s)
		require.NoError(t, err, s)
		assert.False(t, zoned, s)
	}
	for _, s := range []string{"2024-01-01T06:30:00Z", "2024-01-01T06:30:00-05:00"} {
		_, zoned, err := dataset.ParseTimestamp(s)
		require.NoError(t, err, s)
		assert.True(t, zoned, s)
	}
	_, _, err := dataset.ParseTimestamp("01/02/2024")
	require.Error(t, err)
}
