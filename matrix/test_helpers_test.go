// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/synthdata/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the At/Set fallback paths in kernels.
type hide struct{ matrix.Matrix }

// MustDenseFrom builds a rows×cols Dense from row-major data or fails the test.
func MustDenseFrom(t *testing.T, rows, cols int, data ...float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFrom(rows, cols, data)
	require.NoError(t, err)

	return d
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// requireAllClose compares two matrices elementwise within tol.
func requireAllClose(t *testing.T, want, got matrix.Matrix, tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "rows")
	require.Equal(t, want.Cols(), got.Cols(), "cols")
	var i, j int
	for i = 0; i < want.Rows(); i++ {
		for j = 0; j < want.Cols(); j++ {
			require.InDelta(t, MustAt(t, want, i, j), MustAt(t, got, i, j), tol, "[%d,%d]", i, j)
		}
	}
}
