// SPDX-License-Identifier: MIT

package generator

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/synthdata/correlate"
	"github.com/katalvlaran/synthdata/dataset"
	"github.com/katalvlaran/synthdata/expr"
	"github.com/katalvlaran/synthdata/quality"
	"github.com/katalvlaran/synthdata/sampler"
)

const (
	stageSample    = "sample"
	stageCorrelate = "correlate"
	stageOutliers  = "outliers"
	stageMissing   = "missing"
	stageTarget    = "target"
)

// Generator runs dataset specs. A Generator is safe for concurrent use
// unless it was built WithRand, whose shared *rand.Rand is not.
type Generator struct {
	cfg config
}

// New returns a Generator configured by opts.
func New(opts ...Option) *Generator {
	return &Generator{cfg: newConfig(opts)}
}

// run is the mutable state of one Generate call.
type run struct {
	spec  *dataset.Spec
	n     int
	rng   *rand.Rand
	log   *zap.Logger
	mult  float64
	cols  []*Column
	env   expr.Env
	diags []Diagnostic
}

// Generate materializes spec into a Table.
//
// Errors:
//   - ErrNilSpec, ErrBadRows.
//   - *ExpressionError when the target expression cannot be evaluated.
//   - ctx.Err() when ctx is done between stages.
//   - wrapped sampler, correlate or quality errors, which a compiled Spec
//     does not produce.
func (g *Generator) Generate(ctx context.Context, spec *dataset.Spec) (*Table, error) {
	if spec == nil {
		return nil, ErrNilSpec
	}
	if spec.Rows <= 0 {
		return nil, fmt.Errorf("%d: %w", spec.Rows, ErrBadRows)
	}

	rng, seed := g.source(spec)
	r := &run{
		spec: spec,
		n:    spec.Rows,
		rng:  rng,
		log:  g.cfg.log.With(zap.String("dataset", spec.Name)),
		mult: g.cfg.outlierMultiplier,
		env:  make(expr.Env),
	}
	began := time.Now()

	stages := []struct {
		name string
		fn   func() error
	}{
		{stageSample, r.sampleFeatures},
		{stageCorrelate, r.correlate},
		{stageOutliers, r.featureOutliers},
		{stageMissing, r.featureMissing},
		{stageTarget, r.target},
	}
	for _, st := range stages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := st.fn(); err != nil {
			if _, ok := err.(*ExpressionError); ok {
				return nil, err
			}
			return nil, generatorErrorf(st.name, err)
		}
		r.log.Debug("stage done", zap.String("stage", st.name))
	}

	r.log.Info("dataset generated",
		zap.Int("rows", r.n),
		zap.Int("columns", len(r.cols)),
		zap.Int("diagnostics", len(r.diags)),
		zap.Duration("elapsed", time.Since(began)))

	return &Table{
		Name:        spec.Name,
		Rows:        r.n,
		Seed:        seed,
		Columns:     r.cols,
		Diagnostics: r.diags,
	}, nil
}

// source picks the run generator and the seed it was built from.
func (g *Generator) source(spec *dataset.Spec) (*rand.Rand, *int64) {
	if g.cfg.rng != nil {
		return g.cfg.rng, nil
	}
	var seed int64
	switch {
	case g.cfg.seed != nil:
		seed = *g.cfg.seed
	case spec.Seed != nil:
		seed = *spec.Seed
	default:
		seed = time.Now().UnixNano()
	}

	return sampler.NewRand(&seed), &seed
}

func (r *run) sampleFeatures() error {
	r.cols = make([]*Column, 0, len(r.spec.Features)+1)
	for i := range r.spec.Features {
		f := &r.spec.Features[i]
		s, err := sampler.Sample(f.Distribution, r.n, r.rng)
		if err != nil {
			return fmt.Errorf("feature %q: %w", f.Name, err)
		}
		col := &Column{Name: f.Name, Type: f.Type}
		if f.Type == dataset.Datetime {
			col.Times = s.Times
		} else {
			col.Numbers = s.Numbers
			for _, k := range f.Lags {
				r.env[dataset.LagName(f.Name, k)] = sampler.Lag(s.Numbers, k)
			}
		}
		if f.Type == dataset.Categorical {
			col.Categories = f.Categories
		}
		r.cols = append(r.cols, col)
	}

	return nil
}

func (r *run) correlate() error {
	if len(r.spec.Correlations) == 0 {
		return nil
	}
	numeric := make(map[string][]float64)
	for _, c := range r.cols {
		if c.Type.Numeric() {
			numeric[c.Name] = c.Numbers
		}
	}
	diags, err := correlate.Impose(numeric, r.spec.Correlations, r.rng, r.log)
	if err != nil {
		return err
	}
	r.diags = append(r.diags, diags...)

	return nil
}

// featureOutliers injects outliers into numeric features, then casts: int
// features are rounded half to even and categorical features become decile
// codes. Casting draws nothing.
func (r *run) featureOutliers() error {
	for i := range r.spec.Features {
		f, col := &r.spec.Features[i], r.cols[i]
		if f.Type.Numeric() && f.OutlierRate > 0 {
			if _, err := quality.InjectOutliers(col.Numbers, f.Quality, r.mult, r.rng); err != nil {
				return fmt.Errorf("feature %q: %w", f.Name, err)
			}
		}
	}
	for i := range r.spec.Features {
		col := r.cols[i]
		switch col.Type {
		case dataset.Int:
			roundHalfEven(col.Numbers)
		case dataset.Categorical:
			col.Codes = quality.Discretize(col.Numbers)
			col.Numbers = nil
		}
	}

	return nil
}

func (r *run) featureMissing() error {
	var err error
	for i := range r.spec.Features {
		f, col := &r.spec.Features[i], r.cols[i]
		if f.MissingRate == 0 {
			continue
		}
		switch col.Type {
		case dataset.Categorical:
			_, err = quality.InjectMissingCodes(col.Codes, f.MissingRate, r.rng)
		case dataset.Datetime:
			_, err = quality.InjectMissingTimes(col.Times, f.MissingRate, r.rng)
		default:
			_, err = quality.InjectMissing(col.Numbers, f.MissingRate, r.rng)
		}
		if err != nil {
			return fmt.Errorf("feature %q: %w", f.Name, err)
		}
	}

	return nil
}

func roundHalfEven(values []float64) {
	for i, v := range values {
		values[i] = math.RoundToEven(v)
	}
}
