// SPDX-License-Identifier: MIT
// Package matrix provides the small set of dense kernels the correlation
// imposer needs: matrix multiplication, transpose and Cholesky factorization.
// All kernels perform fail-fast validation and return wrapped sentinels.
//
// Notes:
//   - Every kernel fast-paths *Dense and falls back to At/Set for foreign
//     implementations, with identical loop orders on both paths.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value for dot-product accumulators.
const ZeroSum = 0.0

// SymmetryTol is the absolute tolerance Cholesky uses for its symmetry check.
const SymmetryTol = 1e-12

const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opCholesky  = "Cholesky"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Determinism:
//   - Fixed loop orders; the summation order for C[i,j] is k=0..n-1 on both paths.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowA, rowB, rowR int
			for i = 0; i < aRows; i++ {
				rowA = i * aCols
				rowR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowA+k]
					if av == 0 {
						continue
					}
					rowB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowR+j] += av * db.data[rowB+j]
					}
				}
			}

			return res, nil
		}
	}

	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The input is never mutated.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			base = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[base+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Cholesky computes the lower-triangular factor L with A = L·Lᵀ.
//
// Implementation:
//   - Stage 1: Validate m (not nil, square, symmetric within SymmetryTol).
//   - Stage 2: Cholesky–Banachiewicz, row by row: for each i and j<=i,
//     s = A[i,j] - Σ_{k<j} L[i,k]·L[j,k]; diagonal L[i,i] = sqrt(s), which
//     requires s > 0; off-diagonal L[i,j] = s / L[j,j].
//
// Behavior highlights:
//   - Only the lower triangle of A is read after the symmetry check.
//   - No pivoting and no jitter: a semidefinite or indefinite input is reported,
//     never silently regularized.
//
// Inputs:
//   - m: square symmetric Matrix (n×n).
//
// Returns:
//   - *Dense: L, lower triangular with a strictly positive diagonal.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAsymmetry, ErrNotPositiveDefinite (s <= 0 or NaN).
//
// Determinism:
//   - Fixed i→j→k order on both paths.
//
// Complexity:
//   - Time O(n³/3), Space O(n²).
func Cholesky(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	if err := ValidateSymmetric(m, SymmetryTol); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	n := m.Rows()
	L, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	dm, fast := m.(*Dense)
	var (
		i, j, k int
		a, sum  float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j <= i; j++ {
			if fast {
				a = dm.data[i*n+j]
			} else if a, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opCholesky, err)
			}
			sum = ZeroSum
			for k = 0; k < j; k++ {
				sum += L.data[i*n+k] * L.data[j*n+k]
			}
			a -= sum
			if i == j {
				// !(a > 0) also catches NaN
				if !(a > 0) {
					return nil, matrixErrorf(opCholesky,
						fmt.Errorf("pivot %d = %g: %w", i, a, ErrNotPositiveDefinite))
				}
				L.data[i*n+i] = math.Sqrt(a)
				continue
			}
			L.data[i*n+j] = a / L.data[j*n+j]
		}
	}

	return L, nil
}
