// SPDX-License-Identifier: MIT

package generator

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/synthdata/dataset"
	"github.com/katalvlaran/synthdata/quality"
	"github.com/katalvlaran/synthdata/stats"
)

// target computes the target column.
//
// Implementation:
//   - Stage 1: bind every numeric feature (after outliers and missingness, so
//     NaN propagates) and every lag series, then evaluate the expression.
//   - Stage 2: multiply by each seasonality cycle, y[i] *= s[i mod len(s)].
//   - Stage 3: add N(0, σ) noise, σ = noise%/100 · range of the present
//     values; skipped when the range is 0 or every value is missing.
//   - Stage 4: cast (int: round half to even; categorical: deciles).
//   - Stage 5: outliers (not for categorical), then missingness.
func (r *run) target() error {
	t := &r.spec.Target
	for _, col := range r.cols {
		if col.Type.Numeric() {
			r.env[col.Name] = col.Numbers
		}
	}
	if t.Expression == nil {
		return &ExpressionError{Err: fmt.Errorf("no expression")}
	}
	y, err := t.Expression.Eval(r.env, r.n)
	if err != nil {
		return &ExpressionError{Expression: t.Expression.String(), Err: err}
	}

	applySeasonality(y, t.Seasonality)
	applySeasonality(y, t.SecondarySeasonality)
	r.addNoise(y, t.NoisePercent)

	col := &Column{Name: t.Name, Type: t.Type}
	switch t.Type {
	case dataset.Int:
		roundHalfEven(y)
		col.Numbers = y
	case dataset.Categorical:
		col.Codes = quality.Discretize(y)
		col.Categories = t.Categories
	default:
		col.Numbers = y
	}

	if t.Type != dataset.Categorical && t.OutlierRate > 0 {
		if _, err = quality.InjectOutliers(col.Numbers, t.Quality, r.mult, r.rng); err != nil {
			return fmt.Errorf("target %q: %w", t.Name, err)
		}
	}
	if t.MissingRate > 0 {
		if t.Type == dataset.Categorical {
			_, err = quality.InjectMissingCodes(col.Codes, t.MissingRate, r.rng)
		} else {
			_, err = quality.InjectMissing(col.Numbers, t.MissingRate, r.rng)
		}
		if err != nil {
			return fmt.Errorf("target %q: %w", t.Name, err)
		}
	}
	r.cols = append(r.cols, col)

	return nil
}

func applySeasonality(y, cycle []float64) {
	if len(cycle) == 0 {
		return
	}
	for i := range y {
		y[i] *= cycle[i%len(cycle)]
	}
}

func (r *run) addNoise(y []float64, percent float64) {
	if percent <= 0 {
		return
	}
	span, ok := stats.Range(y)
	if !ok || !(span > 0) {
		r.log.Debug("target noise skipped", zap.Float64("range", span))
		return
	}
	sigma := percent / 100 * span
	for i := range y {
		y[i] += sigma * r.rng.NormFloat64()
	}
}
