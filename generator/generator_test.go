// SPDX-License-Identifier: MIT

package generator_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/synthdata/correlate"
	"github.com/katalvlaran/synthdata/dataset"
	"github.com/katalvlaran/synthdata/expr"
	"github.com/katalvlaran/synthdata/generator"
	"github.com/katalvlaran/synthdata/quality"
	"github.com/katalvlaran/synthdata/stats"
)

const labels = `["c0","c1","c2","c3","c4","c5","c6","c7","c8","c9"]`

func compile(t *testing.T, doc string) *dataset.Spec {
	t.Helper()
	cfg, err := dataset.Decode([]byte(doc), dataset.FormatJSON)
	require.NoError(t, err)
	spec, err := dataset.Compile(cfg)
	require.NoError(t, err)

	return spec
}

func generate(t *testing.T, spec *dataset.Spec, opts ...generator.Option) *generator.Table {
	t.Helper()
	opts = append([]generator.Option{generator.WithLogger(zaptest.NewLogger(t))}, opts...)
	table, err := generator.New(opts...).Generate(context.Background(), spec)
	require.NoError(t, err)

	return table
}

func cells(table *generator.Table) [][]string {
	out := make([][]string, len(table.Columns))
	for j, c := range table.Columns {
		out[j] = make([]string, c.Len())
		for i := range out[j] {
			out[j][i] = c.Cell(i)
		}
	}

	return out
}

const mixedDoc = `{"dataset_config": {
  "name": "mixed", "random_seed": 42, "n_rows": 500,
  "correlations": [{"variables": ["a", "b"], "correlation": 0.7, "method": "cholesky"}],
  "features": [
    {"name": "day", "data_type": "datetime",
     "distribution": {"type": "sequential_datetime", "start": "2024-01-01", "interval": "daily"},
     "missing_rate": 0.02},
    {"name": "a", "data_type": "float", "distribution": {"type": "normal", "mean": 10, "std": 2},
     "missing_rate": 0.1, "outlier_rate": 0.02, "outlier_method": "extreme_both", "lags": [1]},
    {"name": "b", "data_type": "int", "distribution": {"type": "uniform", "min": 0, "max": 100},
     "missing_rate": 0.05},
    {"name": "seg", "data_type": "categorical", "distribution": {"type": "weibull", "shape": 1.5, "scale": 2},
     "categories": ` + labels + `, "missing_rate": 0.03}
  ],
  "target": {"name": "y", "data_type": "float", "expression": "2*a + np.log(b + 1) - a_lag1",
             "noise_percent": 5, "seasonality_multipliers": [1, 1.5],
             "missing_rate": 0.04, "outlier_rate": 0.01}}}`

func TestGenerate_Shape(t *testing.T) {
	t.Parallel()
	table := generate(t, compile(t, mixedDoc))

	assert.Equal(t, "mixed", table.Name)
	assert.Equal(t, 500, table.Rows)
	require.NotNil(t, table.Seed)
	assert.Equal(t, int64(42), *table.Seed)
	assert.Equal(t, []string{"day", "a", "b", "seg", "y"}, table.Names())
	for _, c := range table.Columns {
		assert.Equal(t, 500, c.Len(), c.Name)
	}
	_, ok := table.Column("a_lag1")
	assert.False(t, ok, "lag series never reach the table")
	assert.Empty(t, table.Diagnostics)
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()
	spec := compile(t, mixedDoc)
	first := cells(generate(t, spec))
	second := cells(generate(t, spec))
	assert.Equal(t, first, second)

	other := cells(generate(t, spec, generator.WithSeed(43)))
	assert.NotEqual(t, first, other)
}

func TestGenerate_ExactMissingCounts(t *testing.T) {
	t.Parallel()
	table := generate(t, compile(t, mixedDoc))
	want := map[string]int{"day": 10, "a": 50, "b": 25, "seg": 15}
	for name, n := range want {
		c, ok := table.Column(name)
		require.True(t, ok)
		assert.Equal(t, n, c.CountMissing(), name)
	}
	// the target also inherits NaN from its inputs
	y, _ := table.Column("y")
	assert.GreaterOrEqual(t, y.CountMissing(), 20)

	day, _ := table.Column("day")
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < day.Len(); i++ {
		if !day.IsMissing(i) {
			require.Equal(t, start.AddDate(0, 0, i).Format("2006-01-02T15:04:05"), day.Cell(i))
		}
	}
}

func TestGenerate_IntColumnsAreWhole(t *testing.T) {
	t.Parallel()
	b, _ := generate(t, compile(t, mixedDoc)).Column("b")
	for _, v := range stats.Valid(b.Numbers) {
		require.Equal(t, math.Trunc(v), v)
	}
}

func TestGenerate_ExtremeHighOutliers(t *testing.T) {
	t.Parallel()
	table := generate(t, compile(t, `{"dataset_config": {
	  "name": "o", "random_seed": 3, "n_rows": 1000,
	  "features": [{"name": "u", "data_type": "float", "distribution": {"type": "uniform", "min": 0, "max": 1},
	                "outlier_rate": 0.05}],
	  "target": {"name": "y", "data_type": "float", "expression": "u"}}}`))
	u, _ := table.Column("u")
	// Q3 ≈ 0.75, IQR ≈ 0.5, so the fence sits near 2.25
	var above int
	for _, v := range u.Numbers {
		if v > 2 {
			above++
		}
	}
	assert.Equal(t, 50, above)
	y, _ := table.Column("y")
	assert.Equal(t, u.Numbers, y.Numbers, "target sees features after outliers")
}

func TestGenerate_CategoricalDeciles(t *testing.T) {
	t.Parallel()
	table := generate(t, compile(t, `{"dataset_config": {
	  "name": "cat", "random_seed": 9, "n_rows": 1000,
	  "features": [{"name": "u", "data_type": "categorical", "distribution": {"type": "uniform", "min": 0, "max": 1},
	                "categories": `+labels+`}],
	  "target": {"name": "y", "data_type": "categorical", "expression": "np.sum(1) * 0 + 7",
	             "categories": `+labels+`}}}`))
	u, _ := table.Column("u")
	counts := map[string]int{}
	for i := 0; i < u.Len(); i++ {
		counts[u.Cell(i)]++
	}
	require.Len(t, counts, dataset.NumCategories)
	for label, n := range counts {
		assert.InDelta(t, 100, n, 1, label)
	}

	// a constant target collapses to the middle label
	y, _ := table.Column("y")
	for i := 0; i < y.Len(); i++ {
		require.Equal(t, "c4", y.Cell(i))
	}
}

func TestGenerate_NoiselessExpression(t *testing.T) {
	t.Parallel()
	table := generate(t, compile(t, `{"dataset_config": {
	  "name": "lin", "random_seed": 1, "n_rows": 200,
	  "features": [{"name": "x", "data_type": "float", "distribution": {"type": "normal", "mean": 0, "std": 1},
	                "lags": [2]}],
	  "target": {"name": "y", "data_type": "float", "expression": "2*x"}}}`))
	x, _ := table.Column("x")
	y, _ := table.Column("y")
	for i := range x.Numbers {
		require.Equal(t, 2*x.Numbers[i], y.Numbers[i])
	}
	assert.Equal(t, []string{"x", "y"}, table.Names())
}

func TestGenerate_LagSeries(t *testing.T) {
	t.Parallel()
	table := generate(t, compile(t, `{"dataset_config": {
	  "name": "lag", "n_rows": 6,
	  "features": [{"name": "x", "data_type": "float", "distribution": {"type": "sequential", "start": 1, "step": 1},
	                "lags": [2]}],
	  "target": {"name": "y", "data_type": "float", "expression": "x_lag2"}}}`))
	y, _ := table.Column("y")
	assert.True(t, math.IsNaN(y.Numbers[0]))
	assert.True(t, math.IsNaN(y.Numbers[1]))
	assert.Equal(t, []float64{1, 2, 3, 4}, y.Numbers[2:])
	assert.Equal(t, "", y.Cell(0))
}

func TestGenerate_SeasonalityAndIntRounding(t *testing.T) {
	t.Parallel()
	table := generate(t, compile(t, `{"dataset_config": {
	  "name": "season", "random_seed": 1, "n_rows": 6,
	  "features": [{"name": "x", "data_type": "float", "distribution": {"type": "sequential", "start": 0, "step": 0.5}}],
	  "target": {"name": "y", "data_type": "int", "expression": "x*0 + 1.25",
	             "seasonality_multipliers": [1, 2], "secondary_seasonality_multipliers": [1, 1, 2]}}}`))
	y, _ := table.Column("y")
	// 1.25·[1,2,2,2,1,4] = [1.25, 2.5, 2.5, 2.5, 1.25, 5] rounded half to even
	assert.Equal(t, []float64{1, 2, 2, 2, 1, 5}, y.Numbers)
	assert.Equal(t, "5", y.Cell(5))
}

func TestGenerate_NonPositiveDefiniteContinues(t *testing.T) {
	t.Parallel()
	table := generate(t, compile(t, `{"dataset_config": {
	  "name": "npd", "random_seed": 5, "n_rows": 100,
	  "correlations": [
	    {"variables": ["a", "b"], "correlation": 0.9, "method": "cholesky"},
	    {"variables": ["b", "c"], "correlation": 0.9, "method": "cholesky"},
	    {"variables": ["a", "c"], "correlation": -0.9, "method": "cholesky"}],
	  "features": [
	    {"name": "a", "data_type": "float", "distribution": {"type": "uniform", "min": 0, "max": 1}},
	    {"name": "b", "data_type": "float", "distribution": {"type": "uniform", "min": 0, "max": 1}},
	    {"name": "c", "data_type": "float", "distribution": {"type": "uniform", "min": 0, "max": 1}}],
	  "target": {"name": "y", "data_type": "float", "expression": "a + b + c"}}}`))
	require.Len(t, table.Diagnostics, 1)
	assert.Equal(t, correlate.CodeCorrelationSkipped, table.Diagnostics[0].Code)
	assert.Equal(t, []string{"a", "b", "c"}, table.Diagnostics[0].Features)
}

func TestGenerate_ExpressionError(t *testing.T) {
	t.Parallel()
	e, err := expr.Parse("ghost + 1")
	require.NoError(t, err)
	spec := &dataset.Spec{
		Name: "broken", Rows: 3,
		Features: []dataset.Feature{{Name: "x", Type: dataset.Float, Distribution: dataset.Sequential{Start: 0, Step: 1}}},
		Target:   dataset.Target{Name: "y", Type: dataset.Float, Expression: e},
	}
	_, err = generator.New(generator.WithSeed(1)).Generate(context.Background(), spec)
	require.Error(t, err)

	var exprErr *generator.ExpressionError
	require.True(t, errors.As(err, &exprErr))
	assert.Equal(t, "ghost + 1", exprErr.Expression)
	assert.ErrorIs(t, err, generator.ErrExpression)
	assert.ErrorIs(t, err, expr.ErrUnknownName)
}

func TestGenerate_Guards(t *testing.T) {
	t.Parallel()
	g := generator.New()
	_, err := g.Generate(context.Background(), nil)
	require.ErrorIs(t, err, generator.ErrNilSpec)

	_, err = g.Generate(context.Background(), &dataset.Spec{Name: "x"})
	require.ErrorIs(t, err, generator.ErrBadRows)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = g.Generate(ctx, compile(t, mixedDoc))
	require.ErrorIs(t, err, context.Canceled)
}

func TestGenerate_TargetMissingCategorical(t *testing.T) {
	t.Parallel()
	table := generate(t, compile(t, `{"dataset_config": {
	  "name": "tc", "random_seed": 2, "n_rows": 100,
	  "features": [{"name": "x", "data_type": "float", "distribution": {"type": "uniform", "min": 0, "max": 1}}],
	  "target": {"name": "y", "data_type": "categorical", "expression": "x", "categories": `+labels+`,
	             "missing_rate": 0.1, "outlier_rate": 0.5}}}`))
	y, _ := table.Column("y")
	assert.Equal(t, 10, y.CountMissing())
	for i := 0; i < y.Len(); i++ {
		if y.IsMissing(i) {
			assert.Equal(t, quality.Missing, y.Codes[i])
			assert.Equal(t, "", y.Cell(i))
		}
	}
}

func TestOptions_Panic(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { generator.WithRand(nil) })
	assert.Panics(t, func() { generator.WithLogger(nil) })
	assert.Panics(t, func() { generator.WithOutlierMultiplier(0) })
	assert.NotPanics(t, func() { generator.New(generator.WithLogger(zap.NewNop())) })
}
