// SPDX-License-Identifier: MIT

package dataset

import (
	"github.com/katalvlaran/synthdata/expr"
)

const opCompile = "Compile"

// Compile validates cfg and converts it into a Spec.
//
// Implementation:
//   - Stage 1 (Validate): run Validate; any problem yields *ValidationError.
//   - Stage 2 (Convert): map wire fields onto typed values, filling defaults
//     (rates 0, outlier_method extreme_high, location/drift 0).
//
// Errors:
//   - *ValidationError (errors.Is(err, ErrInvalid)) listing every problem.
func Compile(cfg *Config) (*Spec, error) {
	res := Validate(cfg)
	if !res.Valid {
		return nil, &ValidationError{Errors: res.Errors}
	}

	spec := &Spec{
		Name:        *cfg.Name,
		Description: cfg.Description,
		Rows:        int(*cfg.NRows),
		Features:    make([]Feature, len(cfg.Features)),
	}
	if cfg.RandomSeed != nil {
		seed := *cfg.RandomSeed
		spec.Seed = &seed
	}
	var err error
	for i := range cfg.Features {
		if spec.Features[i], err = compileFeature(&cfg.Features[i]); err != nil {
			return nil, datasetErrorf(opCompile, err)
		}
	}
	for _, c := range cfg.Correlations {
		spec.Correlations = append(spec.Correlations, Correlation{
			A: c.Variables[0], B: c.Variables[1], Coefficient: *c.Correlation,
		})
	}
	if spec.Target, err = compileTarget(cfg.Target); err != nil {
		return nil, datasetErrorf(opCompile, err)
	}

	return spec, nil
}

func compileFeature(fc *FeatureConfig) (Feature, error) {
	dt, _ := ParseDataType(fc.DataType)
	dist, err := compileDistribution(fc.Distribution)
	if err != nil {
		return Feature{}, err
	}
	f := Feature{
		Name:         fc.Name,
		Description:  fc.Description,
		Type:         dt,
		Distribution: dist,
		Quality:      compileQuality(&fc.QualityConfig),
	}
	if dt == Categorical {
		f.Categories = append([]string(nil), fc.Categories...)
	}
	for _, lag := range fc.Lags {
		k, _ := positiveInt(lag)
		f.Lags = append(f.Lags, k)
	}

	return f, nil
}

func compileDistribution(d *DistributionConfig) (Distribution, error) {
	switch d.Type {
	case kindUniform:
		return Uniform{Min: *d.Min, Max: *d.Max}, nil
	case kindNormal:
		return Normal{Mean: *d.Mean, Std: *d.Std, MinClip: d.MinClip, MaxClip: d.MaxClip}, nil
	case kindWeibull:
		return Weibull{Shape: *d.Shape, Scale: *d.Scale, Location: orZero(d.Location)}, nil
	case kindRandomWalk:
		start, _ := number(d.Start)
		return RandomWalk{Start: start, StepSize: *d.StepSize, Drift: orZero(d.Drift)}, nil
	case kindSequential:
		start, _ := number(d.Start)
		return Sequential{Start: start, Step: *d.Step}, nil
	case kindSequentialDatetime:
		text, _ := timestampText(d.Start)
		start, zoned, err := ParseTimestamp(text)
		if err != nil {
			return nil, err
		}
		iv, _ := ParseInterval(d.Interval)
		return SequentialDatetime{Start: start, Zoned: zoned, Interval: iv}, nil
	}

	// unreachable after Validate
	return nil, &ValidationError{Errors: []string{"unknown distribution type '" + d.Type + "'"}}
}

func compileQuality(q *QualityConfig) Quality {
	out := Quality{
		MissingRate:       orZero(q.MissingRate),
		OutlierRate:       orZero(q.OutlierRate),
		OutlierMultiplier: orZero(q.OutlierMultiplier),
	}
	if m, ok := ParseOutlierMethod(q.OutlierMethod); ok {
		out.OutlierMethod = m
	}

	return out
}

func compileTarget(tc *TargetConfig) (Target, error) {
	dt, _ := ParseDataType(tc.DataType)
	e, err := expr.Parse(tc.Expression)
	if err != nil {
		return Target{}, err
	}
	t := Target{
		Name:                 tc.Name,
		Description:          tc.Description,
		Type:                 dt,
		Expression:           e,
		NoisePercent:         orZero(tc.NoisePercent),
		Seasonality:          numbers(tc.SeasonalityMultipliers),
		SecondarySeasonality: numbers(tc.SecondarySeasonalityMultipliers),
		Quality:              compileQuality(&tc.QualityConfig),
	}
	if dt == Categorical {
		t.Categories = append([]string(nil), tc.Categories...)
	}

	return t, nil
}

func numbers(values []any) []float64 {
	if len(values) == 0 {
		return nil
	}
	out := make([]float64, len(values))
	for i, v := range values {
		out[i], _ = number(v)
	}

	return out
}

func orZero(p *float64) float64 {
	if p == nil {
		return 0
	}

	return *p
}
