// SPDX-License-Identifier: MIT

package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/synthdata/dataset"
)

const validDoc = `{
  "dataset_config": {
    "name": "sales",
    "description": "weekly sales",
    "random_seed": 7,
    "n_rows": 100,
    "correlations": [{"variables": ["price", "ads"], "correlation": 0.4, "method": "cholesky"}],
    "features": [
      {"name": "date", "data_type": "datetime",
       "distribution": {"type": "sequential_datetime", "start": "2024-01-31", "interval": "monthly"}},
      {"name": "price", "data_type": "float",
       "distribution": {"type": "normal", "mean": 10, "std": 2, "min_clip": 0},
       "missing_rate": 0.05, "outlier_rate": 0.02, "outlier_method": "extreme_both", "lags": [1, 7]},
      {"name": "ads", "data_type": "int", "distribution": {"type": "uniform", "min": 0, "max": 50}},
      {"name": "region", "data_type": "categorical", "distribution": {"type": "uniform", "min": 0, "max": 1},
       "categories": ["a","b","c","d","e","f","g","h","i","j"]}
    ],
    "target": {"name": "revenue", "data_type": "float",
               "expression": "price * ads + np.log(1 + abs(price_lag1))",
               "noise_percent": 5, "seasonality_multipliers": [1, 1.1, 0.9]}
  }
}`

func mustDecode(t *testing.T, doc string) *dataset.Config {
	t.Helper()
	cfg, err := dataset.Decode([]byte(doc), dataset.Sniff([]byte(doc)))
	require.NoError(t, err)

	return cfg
}

func TestValidate_Valid(t *testing.T) {
	t.Parallel()
	res := dataset.Validate(mustDecode(t, validDoc))
	assert.True(t, res.Valid, "%v", res.Errors)
	assert.NotNil(t, res.Errors)
	assert.Empty(t, res.Errors)
}

func TestValidate_CollectsEverythingInOrder(t *testing.T) {
	t.Parallel()
	doc := `{"dataset_config": {
	  "name": "1bad", "n_rows": 0,
	  "features": [
	    {"name": "x", "data_type": "float", "distribution": {"type": "normal", "mean": 0, "std": -1}, "missing_rate": 2},
	    {"name": "x", "data_type": "datetime", "distribution": {"type": "uniform", "min": 5, "max": 1}},
	    {"data_type": "blob", "distribution": {"type": "zipf"}, "lags": [0, 1.5]}
	  ],
	  "target": {"name": "y", "data_type": "float", "expression": "2*x + zz", "noise_percent": 101,
	             "seasonality_multipliers": []},
	  "correlations": [{"variables": ["x", "nope"], "correlation": 1.5, "method": "spearman"}]
	}}`
	res := dataset.Validate(mustDecode(t, doc))
	require.False(t, res.Valid)
	assert.Equal(t, []string{
		"Invalid name '1bad': must be valid identifier",
		"n_rows must be positive integer",
		"Feature 'x': normal std must be positive",
		"Feature 'x': missing_rate must be between 0 and 1",
		"Feature 'x': datetime data_type requires distribution type 'sequential_datetime'",
		"Feature 'x': uniform min must be less than max",
		"Duplicate feature name: x",
		"Feature 2: missing 'name'",
		"Feature 2: invalid data_type 'blob'",
		"Feature 2: unknown distribution type 'zipf'",
		"Feature 2: lag values must be positive integers",
		"Feature 2: lag values must be positive integers",
		"Target: expression references undefined features: zz",
		"Target: noise_percent must be between 0 and 100",
		"Target: seasonality_multipliers cannot be empty",
		"Correlation 0: unknown feature 'nope'",
		"Correlation 0: correlation must be between -1 and 1",
		"Correlation 0: only 'cholesky' method is supported",
	}, res.Errors)
}

func TestValidate_MissingSections(t *testing.T) {
	t.Parallel()
	res := dataset.Validate(mustDecode(t, `{"dataset_config": {}}`))
	assert.Equal(t, []string{
		"Missing required field: dataset_config.name",
		"n_rows must be positive integer",
		"At least one feature is required",
		"Target configuration is required",
	}, res.Errors)

	res = dataset.Validate(nil)
	assert.False(t, res.Valid)
}

func TestValidate_UndeclaredCorrelationFeature(t *testing.T) {
	t.Parallel()
	doc := `{"dataset_config": {"name": "d", "n_rows": 10,
	  "features": [{"name": "a", "data_type": "float", "distribution": {"type": "uniform", "min": 0, "max": 1}}],
	  "target": {"name": "y", "data_type": "float", "expression": "a"},
	  "correlations": [{"variables": ["a", "ghost"], "correlation": 0.5, "method": "cholesky"}]}}`
	res := dataset.Validate(mustDecode(t, doc))
	require.False(t, res.Valid)
	assert.Contains(t, res.Errors, "Correlation 0: unknown feature 'ghost'")
}

func TestValidate_ExpressionNamespace(t *testing.T) {
	t.Parallel()
	doc := `{"dataset_config": {"name": "d", "n_rows": 10,
	  "features": [
	    {"name": "a", "data_type": "float", "distribution": {"type": "uniform", "min": 0, "max": 1}, "lags": [2]},
	    {"name": "c", "data_type": "categorical", "distribution": {"type": "uniform", "min": 0, "max": 1},
	     "categories": ["1","2","3","4","5","6","7","8","9"]},
	    {"name": "t", "data_type": "datetime", "distribution": {"type": "sequential_datetime", "start": "nope", "interval": "fortnightly"}}
	  ],
	  "target": {"name": "y", "data_type": "datetime", "expression": "a_lag2 + a_lag1 + c + evil(a)",
	             "secondary_seasonality_multipliers": [1, "x"]},
	  "correlations": [{"variables": ["a", "c"], "correlation": 0.5, "method": "cholesky"},
	                   {"variables": ["a", "a"], "correlation": 0.5, "method": "cholesky"}]}}`
	res := dataset.Validate(mustDecode(t, doc))
	assert.Equal(t, []string{
		"Feature 'c': categories array must have exactly 10 labels",
		"Feature 't': sequential_datetime start 'nope' is not a valid ISO datetime",
		"Feature 't': sequential_datetime interval must be one of: hourly, daily, weekly, monthly, quarterly, yearly",
		"Target: invalid data_type 'datetime'",
		"Target: expression references undefined features: a_lag1, evil",
		"Target: expression references non-numeric features: c",
		"Target: secondary_seasonality_multipliers[1] must be numeric",
		"Correlation 0: feature 'c' is categorical; only float and int features can be correlated",
		"Correlation 1: 'variables' must name two different features",
	}, res.Errors)
}

func TestValidate_YAML(t *testing.T) {
	t.Parallel()
	doc := `
dataset_config:
  name: yaml_set
  n_rows: 5
  features:
    - name: t
      data_type: datetime
      distribution: {type: sequential_datetime, start: "2024-02-29T10:00:00", interval: yearly}
    - name: s
      data_type: float
      distribution: {type: sequential, start: 1, step: 0.5}
      outlier_rate: 0.2
      outlier_method: extreme_sideways
  target: {name: y, data_type: int, expression: "s * 2"}
`
	cfg := mustDecode(t, doc)
	res := dataset.Validate(cfg)
	assert.Equal(t, []string{"Feature 's': invalid outlier_method 'extreme_sideways'"}, res.Errors)
}

func TestValidate_YAMLNonFinite(t *testing.T) {
	t.Parallel()
	doc := `
dataset_config:
  name: odd
  n_rows: .inf
  features:
    - name: x
      data_type: float
      distribution: {type: normal, mean: .nan, std: .nan, min_clip: .nan}
      missing_rate: .nan
      outlier_rate: .inf
      outlier_multiplier: .inf
    - name: w
      data_type: float
      distribution: {type: weibull, shape: .inf, scale: 1, location: -.inf}
    - name: r
      data_type: float
      distribution: {type: random_walk, start: .nan, step_size: 1, drift: .nan}
  target:
    name: y
    data_type: float
    expression: "x + w + r"
    noise_percent: .nan
    seasonality_multipliers: [1, .inf]
  correlations:
    - {variables: [x, w], correlation: .nan, method: cholesky}
`
	res := dataset.Validate(mustDecode(t, doc))
	require.False(t, res.Valid)
	assert.Equal(t, []string{
		"n_rows must be positive integer",
		"Feature 'x': normal mean must be finite",
		"Feature 'x': normal std must be positive",
		"Feature 'x': normal min_clip and max_clip must be numbers",
		"Feature 'x': missing_rate must be between 0 and 1",
		"Feature 'x': outlier_rate must be between 0 and 1",
		"Feature 'x': outlier_multiplier must be positive",
		"Feature 'w': weibull shape and scale must be positive",
		"Feature 'w': weibull location must be finite",
		"Feature 'r': random_walk start must be numeric",
		"Feature 'r': random_walk drift must be finite",
		"Target: noise_percent must be between 0 and 100",
		"Target: seasonality_multipliers[1] must be numeric",
		"Correlation 0: correlation must be between -1 and 1",
	}, res.Errors)
}

func TestValidate_RowCountBounds(t *testing.T) {
	t.Parallel()
	for _, rows := range []string{"1e19", "2147483648", "0.5", "-3"} {
		doc := `{"dataset_config": {"name": "d", "n_rows": ` + rows + `,
		  "features": [{"name": "a", "data_type": "float", "distribution": {"type": "uniform", "min": 0, "max": 1}}],
		  "target": {"name": "y", "data_type": "float", "expression": "a"}}}`
		res := dataset.Validate(mustDecode(t, doc))
		assert.Equal(t, []string{"n_rows must be positive integer"}, res.Errors, rows)
	}
}

func TestValidate_ExpressionOnUntypedFeature(t *testing.T) {
	t.Parallel()
	doc := `{"dataset_config": {"name": "d", "n_rows": 10,
	  "features": [
	    {"name": "a", "data_type": "float", "distribution": {"type": "uniform", "min": 0, "max": 1}},
	    {"name": "b", "data_type": "blob", "distribution": {"type": "uniform", "min": 0, "max": 1}}
	  ],
	  "target": {"name": "y", "data_type": "float", "expression": "a + b"}}}`
	res := dataset.Validate(mustDecode(t, doc))
	assert.Equal(t, []string{
		"Feature 'b': invalid data_type 'blob'",
		"Target: expression references undefined features: b",
	}, res.Errors)
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()
	_, err := dataset.Decode([]byte(`{"other": {}}`), dataset.FormatJSON)
	require.ErrorIs(t, err, dataset.ErrNoDatasetConfig)

	_, err = dataset.Decode([]byte(`{`), dataset.FormatJSON)
	require.Error(t, err)

	_, err = dataset.FormatOf("defs/x.toml")
	require.ErrorIs(t, err, dataset.ErrUnknownFormat)
}
