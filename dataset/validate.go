// SPDX-License-Identifier: MIT
// Package: dataset
//
// validate.go: the schema validator.
//
// Validate is pure: it never panics on a decodable Config, never stops at the
// first problem, and reports in a fixed order (dataset fields, features,
// duplicates, target, correlations) so the same document always yields the
// same list.

package dataset

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/katalvlaran/synthdata/expr"
)

// MethodCholesky is the only supported correlation method.
const MethodCholesky = "cholesky"

// MaxRows bounds n_rows so the row count always fits an int.
const MaxRows = math.MaxInt32

var identifierRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Result is the validator outcome. Errors is never nil, so it encodes as [].
type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// IsIdentifier reports whether name is a legal dataset, feature or target name.
func IsIdentifier(name string) bool { return identifierRE.MatchString(name) }

type validator struct {
	errs []string
}

func (v *validator) addf(format string, args ...any) {
	v.errs = append(v.errs, fmt.Sprintf(format, args...))
}

// Validate checks cfg for structural and referential correctness and returns
// every violation found.
func Validate(cfg *Config) Result {
	v := &validator{errs: []string{}}
	if cfg == nil {
		v.addf("Missing required field: dataset_config")
		return Result{Valid: false, Errors: v.errs}
	}

	// Stage 1 (Dataset): name, row count, presence of features and target.
	switch {
	case cfg.Name == nil || *cfg.Name == "":
		v.addf("Missing required field: dataset_config.name")
	case !IsIdentifier(*cfg.Name):
		v.addf("Invalid name '%s': must be valid identifier", *cfg.Name)
	}
	if cfg.NRows == nil || !(*cfg.NRows >= 1 && *cfg.NRows <= MaxRows) || *cfg.NRows != math.Trunc(*cfg.NRows) {
		v.addf("n_rows must be positive integer")
	}
	if len(cfg.Features) == 0 {
		v.addf("At least one feature is required")
	}
	if cfg.Target == nil {
		v.addf("Target configuration is required")
	}

	// Stage 2 (Features): per-feature checks, then duplicates.
	seen := make(map[string]bool, len(cfg.Features))
	for i := range cfg.Features {
		v.feature(&cfg.Features[i], i)
		if name := cfg.Features[i].Name; name != "" {
			if seen[name] {
				v.addf("Duplicate feature name: %s", name)
			}
			seen[name] = true
		}
	}

	// Stage 3 (Target): only when present; its absence is reported above.
	if cfg.Target != nil {
		v.target(cfg.Target, cfg.Features)
	}

	// Stage 4 (Correlations).
	v.correlations(cfg.Correlations, cfg.Features)

	return Result{Valid: len(v.errs) == 0, Errors: v.errs}
}

func (v *validator) feature(f *FeatureConfig, index int) {
	prefix := fmt.Sprintf("Feature %d", index)
	switch {
	case f.Name == "":
		v.addf("%s: missing 'name'", prefix)
	case !IsIdentifier(f.Name):
		v.addf("%s: invalid name '%s'", prefix, f.Name)
	default:
		prefix = fmt.Sprintf("Feature '%s'", f.Name)
	}

	dt, dtOK := ParseDataType(f.DataType)
	switch {
	case f.DataType == "":
		v.addf("%s: missing 'data_type'", prefix)
	case !dtOK:
		v.addf("%s: invalid data_type '%s'", prefix, f.DataType)
	}

	if f.Distribution == nil {
		v.addf("%s: missing 'distribution'", prefix)
	} else {
		kind := f.Distribution.Type
		if dtOK && dt == Datetime && kind != kindSequentialDatetime {
			v.addf("%s: datetime data_type requires distribution type 'sequential_datetime'", prefix)
		} else if kind == kindSequentialDatetime && dtOK && dt != Datetime {
			v.addf("%s: sequential_datetime distribution requires data_type 'datetime'", prefix)
		}
		v.distribution(f.Distribution, prefix)
	}

	if dtOK && dt == Categorical {
		v.categories(f.Categories, prefix)
	}
	v.quality(&f.QualityConfig, prefix)

	for _, lag := range f.Lags {
		if _, ok := positiveInt(lag); !ok {
			v.addf("%s: lag values must be positive integers", prefix)
		}
	}
	if len(f.Lags) > 0 && dtOK && dt == Datetime {
		v.addf("%s: lags are not supported for datetime features", prefix)
	}
}

const (
	kindUniform            = "uniform"
	kindNormal             = "normal"
	kindWeibull            = "weibull"
	kindRandomWalk         = "random_walk"
	kindSequential         = "sequential"
	kindSequentialDatetime = "sequential_datetime"
)

func (v *validator) distribution(d *DistributionConfig, prefix string) {
	switch d.Type {
	case "":
		v.addf("%s: distribution missing 'type'", prefix)
	case kindUniform:
		if d.Min == nil || d.Max == nil {
			v.addf("%s: uniform requires 'min' and 'max'", prefix)
		} else if !finite(*d.Min) || !finite(*d.Max) {
			v.addf("%s: uniform min and max must be finite", prefix)
		} else if *d.Min >= *d.Max {
			v.addf("%s: uniform min must be less than max", prefix)
		}
	case kindNormal:
		if d.Mean == nil || d.Std == nil {
			v.addf("%s: normal requires 'mean' and 'std'", prefix)
		} else {
			if !finite(*d.Mean) {
				v.addf("%s: normal mean must be finite", prefix)
			}
			if !(*d.Std > 0) || !finite(*d.Std) {
				v.addf("%s: normal std must be positive", prefix)
			}
		}
		if (d.MinClip != nil && math.IsNaN(*d.MinClip)) || (d.MaxClip != nil && math.IsNaN(*d.MaxClip)) {
			v.addf("%s: normal min_clip and max_clip must be numbers", prefix)
		}
		if d.MinClip != nil && d.MaxClip != nil && *d.MinClip > *d.MaxClip {
			v.addf("%s: normal min_clip must not exceed max_clip", prefix)
		}
	case kindWeibull:
		if d.Shape == nil || d.Scale == nil {
			v.addf("%s: weibull requires 'shape' and 'scale'", prefix)
		} else if !positive(*d.Shape) || !positive(*d.Scale) {
			v.addf("%s: weibull shape and scale must be positive", prefix)
		}
		if d.Location != nil && !finite(*d.Location) {
			v.addf("%s: weibull location must be finite", prefix)
		}
	case kindRandomWalk:
		if d.Start == nil || d.StepSize == nil {
			v.addf("%s: random_walk requires 'start' and 'step_size'", prefix)
		} else {
			if _, ok := number(d.Start); !ok {
				v.addf("%s: random_walk start must be numeric", prefix)
			}
			if !positive(*d.StepSize) {
				v.addf("%s: random_walk step_size must be positive", prefix)
			}
		}
		if d.Drift != nil && !finite(*d.Drift) {
			v.addf("%s: random_walk drift must be finite", prefix)
		}
	case kindSequential:
		if d.Start == nil || d.Step == nil {
			v.addf("%s: sequential requires 'start' and 'step'", prefix)
		} else {
			if _, ok := number(d.Start); !ok {
				v.addf("%s: sequential start must be numeric", prefix)
			}
			if *d.Step == 0 {
				v.addf("%s: sequential step cannot be zero", prefix)
			} else if !finite(*d.Step) {
				v.addf("%s: sequential step must be finite", prefix)
			}
		}
	case kindSequentialDatetime:
		if s, ok := timestampText(d.Start); !ok {
			v.addf("%s: sequential_datetime requires 'start' (ISO datetime string)", prefix)
		} else if _, _, err := ParseTimestamp(s); err != nil {
			v.addf("%s: sequential_datetime start '%s' is not a valid ISO datetime", prefix, s)
		}
		if d.Interval == "" {
			v.addf("%s: sequential_datetime requires 'interval'", prefix)
		} else if _, ok := ParseInterval(d.Interval); !ok {
			v.addf("%s: sequential_datetime interval must be one of: %s", prefix, strings.Join(intervalNames[:], ", "))
		}
	default:
		v.addf("%s: unknown distribution type '%s'", prefix, d.Type)
	}
}

func (v *validator) categories(cats []string, prefix string) {
	if cats == nil {
		v.addf("%s: categorical type requires 'categories' array", prefix)
	} else if len(cats) != NumCategories {
		v.addf("%s: categories array must have exactly %d labels", prefix, NumCategories)
	}
}

func (v *validator) quality(q *QualityConfig, prefix string) {
	if q.MissingRate != nil && !unitRate(*q.MissingRate) {
		v.addf("%s: missing_rate must be between 0 and 1", prefix)
	}
	if q.OutlierRate != nil && !unitRate(*q.OutlierRate) {
		v.addf("%s: outlier_rate must be between 0 and 1", prefix)
	}
	if q.OutlierRate != nil && *q.OutlierRate > 0 && q.OutlierMethod != "" {
		if _, ok := ParseOutlierMethod(q.OutlierMethod); !ok {
			v.addf("%s: invalid outlier_method '%s'", prefix, q.OutlierMethod)
		}
	}
	if q.OutlierMultiplier != nil && !positive(*q.OutlierMultiplier) {
		v.addf("%s: outlier_multiplier must be positive", prefix)
	}
}

func (v *validator) target(t *TargetConfig, features []FeatureConfig) {
	const prefix = "Target"
	switch {
	case t.Name == "":
		v.addf("%s: missing 'name'", prefix)
	case !IsIdentifier(t.Name):
		v.addf("%s: invalid name '%s'", prefix, t.Name)
	default:
		for i := range features {
			if features[i].Name == t.Name {
				v.addf("%s: name '%s' collides with a feature name", prefix, t.Name)
				break
			}
		}
	}

	dt, dtOK := ParseDataType(t.DataType)
	switch {
	case t.DataType == "":
		v.addf("%s: missing 'data_type'", prefix)
	case !dtOK || dt == Datetime:
		v.addf("%s: invalid data_type '%s'", prefix, t.DataType)
	}

	if t.Expression == "" {
		v.addf("%s: missing 'expression'", prefix)
	} else {
		v.expression(t.Expression, features, prefix)
	}

	if dtOK && dt == Categorical {
		v.categories(t.Categories, prefix)
	}
	if t.NoisePercent != nil && !(*t.NoisePercent >= 0 && *t.NoisePercent <= 100) {
		v.addf("%s: noise_percent must be between 0 and 100", prefix)
	}
	v.multipliers(t.SeasonalityMultipliers, "seasonality_multipliers", prefix)
	v.multipliers(t.SecondarySeasonalityMultipliers, "secondary_seasonality_multipliers", prefix)
	v.quality(&t.QualityConfig, prefix)
}

// expression parses src and checks every referenced name against the
// expression namespace: numeric features, lags of non-datetime features, and
// the helper set.
func (v *validator) expression(src string, features []FeatureConfig, prefix string) {
	e, err := expr.Parse(src)
	if err != nil {
		v.addf("%s: expression is not valid: %v", prefix, err)
		return
	}

	numeric, declared := expressionNames(features)
	var undefined, nonNumeric []string
	for _, name := range e.Vars() {
		switch {
		case numeric[name]:
		case declared[name]:
			nonNumeric = append(nonNumeric, name)
		default:
			undefined = append(undefined, name)
		}
	}
	for _, name := range e.Calls() {
		if !expr.IsHelper(name) {
			undefined = append(undefined, name)
		}
	}
	if len(undefined) > 0 {
		v.addf("%s: expression references undefined features: %s", prefix, strings.Join(undefined, ", "))
	}
	if len(nonNumeric) > 0 {
		v.addf("%s: expression references non-numeric features: %s", prefix, strings.Join(nonNumeric, ", "))
	}
}

// expressionNames returns the names resolvable in a target expression and
// the declared non-numeric feature names. A feature whose data_type does not
// parse is in neither set, so references to it are reported as undefined.
func expressionNames(features []FeatureConfig) (numeric, declared map[string]bool) {
	numeric = make(map[string]bool)
	declared = make(map[string]bool)
	for i := range features {
		f := &features[i]
		dt, ok := ParseDataType(f.DataType)
		if f.Name == "" || !ok {
			continue
		}
		declared[f.Name] = true
		if dt.Numeric() {
			numeric[f.Name] = true
		}
		if dt == Datetime {
			continue
		}
		for _, lag := range f.Lags {
			if k, ok := positiveInt(lag); ok {
				numeric[LagName(f.Name, k)] = true
			}
		}
	}

	return numeric, declared
}

func (v *validator) multipliers(values []any, field, prefix string) {
	if values == nil {
		return
	}
	if len(values) == 0 {
		v.addf("%s: %s cannot be empty", prefix, field)
		return
	}
	for i, m := range values {
		if _, ok := number(m); !ok {
			v.addf("%s: %s[%d] must be numeric", prefix, field, i)
		}
	}
}

func (v *validator) correlations(edges []CorrelationConfig, features []FeatureConfig) {
	types := make(map[string]string, len(features))
	for i := range features {
		name := features[i].Name
		if _, dup := types[name]; name != "" && !dup {
			types[name] = features[i].DataType
		}
	}

	for i := range edges {
		e := &edges[i]
		prefix := fmt.Sprintf("Correlation %d", i)
		switch {
		case e.Variables == nil:
			v.addf("%s: missing 'variables'", prefix)
		case len(e.Variables) != 2:
			v.addf("%s: 'variables' must contain exactly 2 feature names", prefix)
		default:
			known := 0
			for _, name := range e.Variables {
				dtName, ok := types[name]
				if !ok {
					v.addf("%s: unknown feature '%s'", prefix, name)
					continue
				}
				known++
				if dt, ok := ParseDataType(dtName); ok && !dt.Numeric() {
					v.addf("%s: feature '%s' is %s; only float and int features can be correlated", prefix, name, dt)
				}
			}
			if known == 2 && e.Variables[0] == e.Variables[1] {
				v.addf("%s: 'variables' must name two different features", prefix)
			}
		}

		if e.Correlation == nil {
			v.addf("%s: missing 'correlation' coefficient", prefix)
		} else if !(*e.Correlation >= -1 && *e.Correlation <= 1) {
			v.addf("%s: correlation must be between -1 and 1", prefix)
		}

		if e.Method == "" {
			v.addf("%s: missing 'method'", prefix)
		} else if e.Method != MethodCholesky {
			v.addf("%s: only '%s' method is supported", prefix, MethodCholesky)
		}
	}
}

// number converts a decoded JSON/YAML scalar to a finite float64. YAML's
// .nan and .inf are rejected.
func number(x any) (float64, bool) {
	switch n := x.(type) {
	case float64:
		return n, finite(n)
	case float32:
		return float64(n), finite(float64(n))
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}

	return 0, false
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// positive is x > 0 and finite; NaN fails.
func positive(x float64) bool { return x > 0 && !math.IsInf(x, 1) }

// unitRate is x within [0, 1]; NaN fails.
func unitRate(x float64) bool { return x >= 0 && x <= 1 }

// positiveInt accepts integral numbers >= 1.
func positiveInt(x any) (int, bool) {
	f, ok := number(x)
	if !ok || f < 1 || f != math.Trunc(f) || f > math.MaxInt32 {
		return 0, false
	}

	return int(f), true
}

// timestampText extracts the textual start of a sequential_datetime. YAML
// decoders may already have produced a time.Time.
func timestampText(x any) (string, bool) {
	switch s := x.(type) {
	case string:
		return s, s != ""
	case time.Time:
		return s.Format(time.RFC3339Nano), true
	}

	return "", false
}
