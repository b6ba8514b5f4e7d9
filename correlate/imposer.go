// SPDX-License-Identifier: MIT

package correlate

import (
	"errors"
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/synthdata/dataset"
	"github.com/katalvlaran/synthdata/matrix"
	"github.com/katalvlaran/synthdata/sampler"
	"github.com/katalvlaran/synthdata/stats"
)

const opImpose = "Impose"

// CodeCorrelationSkipped marks a component left uncorrelated.
const CodeCorrelationSkipped = "correlation_skipped"

// Diagnostic is a non-fatal event recorded during generation.
type Diagnostic struct {
	Code     string   `json:"code"`
	Features []string `json:"features,omitempty"`
	Message  string   `json:"message"`
}

// Impose reorders the columns named by edges in place so that each connected
// component approximates its requested correlations.
//
// Implementation:
//   - Stage 1 (Group): Components(edges); singletons are skipped.
//   - Stage 2 (Matrix): m×m identity with the edge coefficients mirrored.
//   - Stage 3 (Factor): matrix.Cholesky; ErrNotPositiveDefinite skips the
//     component with a Diagnostic and a warning on log.
//   - Stage 4 (Draw): Z is n×m standard normals, row-major; C = Z·Lᵀ.
//   - Stage 5 (Reorder): column j's sorted values are written back so that
//     the row holding the r-th smallest C[·,j] receives the r-th smallest value.
//
// Standardizing, reordering and unstandardizing with the column's own mean
// and std is the identity on the values, so Stage 5 reorders the raw values
// directly and the marginal is preserved bit-for-bit.
//
// Errors:
//   - ErrNilRand, ErrUnknownColumn, ErrLengthMismatch, or a wrapped matrix
//     error other than ErrNotPositiveDefinite.
func Impose(cols map[string][]float64, edges []dataset.Correlation, rng *rand.Rand, log *zap.Logger) ([]Diagnostic, error) {
	if len(edges) == 0 {
		return nil, nil
	}
	if rng == nil {
		return nil, correlateErrorf(opImpose, ErrNilRand)
	}
	if log == nil {
		log = zap.NewNop()
	}

	var diags []Diagnostic
	for _, comp := range Components(edges) {
		if len(comp.Features) < 2 {
			continue
		}
		d, err := imposeComponent(cols, comp, rng, log)
		if err != nil {
			return diags, correlateErrorf(opImpose, err)
		}
		if d != nil {
			diags = append(diags, *d)
		}
	}

	return diags, nil
}

func imposeComponent(cols map[string][]float64, comp Component, rng *rand.Rand, log *zap.Logger) (*Diagnostic, error) {
	m := len(comp.Features)
	index := make(map[string]int, m)
	data := make([][]float64, m)
	n := -1
	for j, name := range comp.Features {
		col, ok := cols[name]
		if !ok {
			return nil, fmt.Errorf("%q: %w", name, ErrUnknownColumn)
		}
		if n >= 0 && len(col) != n {
			return nil, fmt.Errorf("%q has %d rows, want %d: %w", name, len(col), n, ErrLengthMismatch)
		}
		n = len(col)
		index[name] = j
		data[j] = col
	}

	corr, err := matrix.Identity(m)
	if err != nil {
		return nil, err
	}
	for _, e := range comp.Edges {
		a, b := index[e.A], index[e.B]
		if err = corr.Set(a, b, e.Coefficient); err != nil {
			return nil, err
		}
		if err = corr.Set(b, a, e.Coefficient); err != nil {
			return nil, err
		}
	}

	L, err := matrix.Cholesky(corr)
	if errors.Is(err, matrix.ErrNotPositiveDefinite) {
		log.Warn("correlation matrix not positive definite; component left uncorrelated",
			zap.Strings("features", comp.Features), zap.Error(err))
		return &Diagnostic{
			Code:     CodeCorrelationSkipped,
			Features: append([]string(nil), comp.Features...),
			Message:  fmt.Sprintf("correlation matrix not positive definite for %v", comp.Features),
		}, nil
	}
	if err != nil {
		return nil, err
	}

	z, err := matrix.NewDenseFrom(n, m, sampler.StandardNormals(n*m, rng))
	if err != nil {
		return nil, err
	}
	lt, err := matrix.Transpose(L)
	if err != nil {
		return nil, err
	}
	c, err := matrix.Mul(z, lt)
	if err != nil {
		return nil, err
	}

	var j int
	for j = 0; j < m; j++ {
		driver, err := column(c, j)
		if err != nil {
			return nil, err
		}
		reorder(data[j], driver)
	}
	log.Debug("correlation imposed", zap.Strings("features", comp.Features), zap.Int("rows", n))

	return nil, nil
}

// reorder rewrites values so that their rank order follows driver's.
func reorder(values, driver []float64) {
	sorted := make([]float64, len(values))
	for pos, i := range stats.Order(values) {
		sorted[pos] = values[i]
	}
	for pos, i := range stats.Order(driver) {
		values[i] = sorted[pos]
	}
}

func column(m matrix.Matrix, j int) ([]float64, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d.Col(j)
	}
	out := make([]float64, m.Rows())
	var i int
	var err error
	for i = range out {
		if out[i], err = m.At(i, j); err != nil {
			return nil, err
		}
	}

	return out, nil
}
