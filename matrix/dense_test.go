// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/synthdata/matrix"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct{ rows, cols int }{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.NewDense(tc.rows, tc.cols)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestNewDenseFrom(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFrom(1, 2, []float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	src := []float64{1, 2, 3, 4}
	d, err := matrix.NewDenseFrom(2, 2, src)
	require.NoError(t, err)
	src[0] = 99
	assert.Equal(t, 1.0, MustAt(t, d, 0, 0), "NewDenseFrom must copy its input")
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()
	d, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, d.Set(1, 2, 7))
	assert.Equal(t, 7.0, MustAt(t, d, 1, 2))

	_, err = d.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, d.Set(0, 3, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, d.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
}

func TestIdentity_RowColClone(t *testing.T) {
	t.Parallel()
	id, err := matrix.Identity(3)
	require.NoError(t, err)

	row, err := id.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 0}, row)

	col, err := id.Col(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 1}, col)

	cp := id.Clone()
	require.NoError(t, cp.Set(0, 0, 5))
	assert.Equal(t, 1.0, MustAt(t, id, 0, 0), "Clone must be independent")

	_, err = id.Row(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.Equal(t, "[1, 0, 0]\n[0, 1, 0]\n[0, 0, 1]\n", id.String())
}
