// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/synthdata/matrix"
)

// LinearAlgebraSuite exercises Mul, Transpose and Cholesky on both the *Dense
// fast path and the interface fallback.
type LinearAlgebraSuite struct {
	suite.Suite
}

func (s *LinearAlgebraSuite) TestMul() {
	t := s.T()
	a := MustDenseFrom(t, 2, 3, 1, 2, 3, 4, 5, 6)
	b := MustDenseFrom(t, 3, 2, 7, 8, 9, 10, 11, 12)
	want := MustDenseFrom(t, 2, 2, 58, 64, 139, 154)

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	requireAllClose(t, want, got, 0)

	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	requireAllClose(t, got, slow, 0)

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func (s *LinearAlgebraSuite) TestTranspose() {
	t := s.T()
	a := MustDenseFrom(t, 2, 3, 1, 2, 3, 4, 5, 6)
	want := MustDenseFrom(t, 3, 2, 1, 4, 2, 5, 3, 6)

	got, err := matrix.Transpose(a)
	require.NoError(t, err)
	requireAllClose(t, want, got, 0)

	slow, err := matrix.Transpose(hide{a})
	require.NoError(t, err)
	requireAllClose(t, want, slow, 0)

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func (s *LinearAlgebraSuite) TestCholeskyReconstructs() {
	t := s.T()
	a := MustDenseFrom(t, 3, 3,
		4, 12, -16,
		12, 37, -43,
		-16, -43, 98,
	)
	L, err := matrix.Cholesky(a)
	require.NoError(t, err)

	// textbook factor
	want := MustDenseFrom(t, 3, 3,
		2, 0, 0,
		6, 1, 0,
		-8, 5, 3,
	)
	requireAllClose(t, want, L, 1e-12)

	Lt, err := matrix.Transpose(L)
	require.NoError(t, err)
	back, err := matrix.Mul(L, Lt)
	require.NoError(t, err)
	requireAllClose(t, a, back, 1e-9)

	slow, err := matrix.Cholesky(hide{a})
	require.NoError(t, err)
	requireAllClose(t, L, slow, 0)
}

func (s *LinearAlgebraSuite) TestCholeskyCorrelation() {
	t := s.T()
	c := MustDenseFrom(t, 2, 2, 1, 0.6, 0.6, 1)
	L, err := matrix.Cholesky(c)
	require.NoError(t, err)
	require.InDelta(s.T(), 1.0, MustAt(t, L, 0, 0), 1e-15)
	require.InDelta(s.T(), 0.6, MustAt(t, L, 1, 0), 1e-15)
	require.InDelta(s.T(), 0.8, MustAt(t, L, 1, 1), 1e-15)
	require.Equal(s.T(), 0.0, MustAt(t, L, 0, 1))
}

func (s *LinearAlgebraSuite) TestCholeskyRejects() {
	t := s.T()

	// rank-deficient: perfectly correlated pair
	_, err := matrix.Cholesky(MustDenseFrom(t, 2, 2, 1, 1, 1, 1))
	require.ErrorIs(t, err, matrix.ErrNotPositiveDefinite)

	// inconsistent triangle: a~b, a~c strongly positive, b~c strongly negative
	_, err = matrix.Cholesky(MustDenseFrom(t, 3, 3,
		1, 0.9, 0.9,
		0.9, 1, -0.9,
		0.9, -0.9, 1,
	))
	require.ErrorIs(t, err, matrix.ErrNotPositiveDefinite)

	_, err = matrix.Cholesky(MustDenseFrom(t, 2, 2, 1, 0.5, 0.4, 1))
	require.ErrorIs(t, err, matrix.ErrAsymmetry)

	_, err = matrix.Cholesky(MustDenseFrom(t, 2, 3, 1, 0, 0, 0, 1, 0))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Cholesky(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestLinearAlgebraSuite(t *testing.T) {
	suite.Run(t, new(LinearAlgebraSuite))
}
