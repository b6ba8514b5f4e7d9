// SPDX-License-Identifier: MIT
// Package: dataset
//
// config.go: the permissive wire form of a dataset definition.
//
// Every optional or possibly-malformed field is a pointer, an interface or a
// []any so that a structurally odd document still decodes and the Validator
// can report every problem in one pass. Nothing here is trusted until
// Compile turns it into a Spec.

package dataset

// Document is the root of a definition file: {"dataset_config": {...}}.
type Document struct {
	Config *Config `json:"dataset_config" yaml:"dataset_config"`
}

// Config is the dataset_config object.
type Config struct {
	Name         *string             `json:"name,omitempty" yaml:"name,omitempty"`
	Description  string              `json:"description,omitempty" yaml:"description,omitempty"`
	RandomSeed   *int64              `json:"random_seed,omitempty" yaml:"random_seed,omitempty"`
	NRows        *float64            `json:"n_rows,omitempty" yaml:"n_rows,omitempty"`
	Correlations []CorrelationConfig `json:"correlations,omitempty" yaml:"correlations,omitempty"`
	Features     []FeatureConfig     `json:"features,omitempty" yaml:"features,omitempty"`
	Target       *TargetConfig       `json:"target,omitempty" yaml:"target,omitempty"`
}

// QualityConfig holds the data-quality knobs shared by features and target.
type QualityConfig struct {
	MissingRate       *float64 `json:"missing_rate,omitempty" yaml:"missing_rate,omitempty"`
	OutlierRate       *float64 `json:"outlier_rate,omitempty" yaml:"outlier_rate,omitempty"`
	OutlierMethod     string   `json:"outlier_method,omitempty" yaml:"outlier_method,omitempty"`
	OutlierMultiplier *float64 `json:"outlier_multiplier,omitempty" yaml:"outlier_multiplier,omitempty"`
}

// FeatureConfig is one entry of dataset_config.features.
type FeatureConfig struct {
	Name          string              `json:"name,omitempty" yaml:"name,omitempty"`
	Description   string              `json:"description,omitempty" yaml:"description,omitempty"`
	DataType      string              `json:"data_type,omitempty" yaml:"data_type,omitempty"`
	Distribution  *DistributionConfig `json:"distribution,omitempty" yaml:"distribution,omitempty"`
	Categories    []string            `json:"categories,omitempty" yaml:"categories,omitempty"`
	Lags          []any               `json:"lags,omitempty" yaml:"lags,omitempty"`
	QualityConfig `yaml:",inline"`
}

// DistributionConfig is the tagged distribution object. Type selects which of
// the parameter fields are meaningful. Start is numeric for random_walk and
// sequential, and an ISO-8601 string for sequential_datetime.
type DistributionConfig struct {
	Type     string   `json:"type,omitempty" yaml:"type,omitempty"`
	Min      *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max      *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Mean     *float64 `json:"mean,omitempty" yaml:"mean,omitempty"`
	Std      *float64 `json:"std,omitempty" yaml:"std,omitempty"`
	MinClip  *float64 `json:"min_clip,omitempty" yaml:"min_clip,omitempty"`
	MaxClip  *float64 `json:"max_clip,omitempty" yaml:"max_clip,omitempty"`
	Shape    *float64 `json:"shape,omitempty" yaml:"shape,omitempty"`
	Scale    *float64 `json:"scale,omitempty" yaml:"scale,omitempty"`
	Location *float64 `json:"location,omitempty" yaml:"location,omitempty"`
	Start    any      `json:"start,omitempty" yaml:"start,omitempty"`
	StepSize *float64 `json:"step_size,omitempty" yaml:"step_size,omitempty"`
	Drift    *float64 `json:"drift,omitempty" yaml:"drift,omitempty"`
	Step     *float64 `json:"step,omitempty" yaml:"step,omitempty"`
	Interval string   `json:"interval,omitempty" yaml:"interval,omitempty"`
}

// CorrelationConfig is one entry of dataset_config.correlations.
type CorrelationConfig struct {
	Variables   []string `json:"variables,omitempty" yaml:"variables,omitempty"`
	Correlation *float64 `json:"correlation,omitempty" yaml:"correlation,omitempty"`
	Method      string   `json:"method,omitempty" yaml:"method,omitempty"`
}

// TargetConfig is dataset_config.target.
type TargetConfig struct {
	Name                            string   `json:"name,omitempty" yaml:"name,omitempty"`
	Description                     string   `json:"description,omitempty" yaml:"description,omitempty"`
	DataType                        string   `json:"data_type,omitempty" yaml:"data_type,omitempty"`
	Expression                      string   `json:"expression,omitempty" yaml:"expression,omitempty"`
	Categories                      []string `json:"categories,omitempty" yaml:"categories,omitempty"`
	NoisePercent                    *float64 `json:"noise_percent,omitempty" yaml:"noise_percent,omitempty"`
	SeasonalityMultipliers          []any    `json:"seasonality_multipliers,omitempty" yaml:"seasonality_multipliers,omitempty"`
	SecondarySeasonalityMultipliers []any    `json:"secondary_seasonality_multipliers,omitempty" yaml:"secondary_seasonality_multipliers,omitempty"`
	QualityConfig                   `yaml:",inline"`
}
