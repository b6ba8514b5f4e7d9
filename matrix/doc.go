// SPDX-License-Identifier: MIT

// Package matrix provides a small dense linear-algebra core used to turn a
// requested pairwise correlation structure into correlated normal draws.
//
// What & Why:
//
//	A correlation component of m features becomes an m×m Dense matrix
//	(Identity plus the requested off-diagonal coefficients). Cholesky factors
//	it as L·Lᵀ, and Mul(Z, Transpose(L)) turns independent standard normals Z
//	(n×m) into columns with the requested correlation.
//
// Contracts:
//
//   - Public accessors never panic; they return ErrOutOfRange / ErrNaNInf.
//   - Kernels wrap sentinels with an operation tag ("Mul: ...",
//     "Cholesky: ..."); match them with errors.Is.
//   - Cholesky reports ErrNotPositiveDefinite for singular, semidefinite or
//     indefinite input. Callers decide whether that is fatal.
//
// Determinism:
//
//	Every kernel uses fixed loop orders, so identical inputs give
//	bit-identical outputs.
package matrix
