// SPDX-License-Identifier: MIT

// Package correlate induces requested pairwise correlations between sampled
// feature columns without changing any column's marginal distribution.
//
// What & Why:
//
//	Correlation edges form an undirected graph over feature names. Each
//	connected component of two or more features gets one correlation matrix
//	(identity, off-diagonals from its edges, unspecified pairs 0). Its
//	Cholesky factor L turns fresh independent normals Z into correlated
//	normals C = Z·Lᵀ, and each feature's own values are then reordered to
//	follow the rank order of its column of C (a Gaussian rank copula).
//
// Contracts:
//
//   - The multiset of every column is preserved exactly.
//   - A component whose matrix is not positive definite is skipped and
//     reported as a Diagnostic. That is never an error.
//   - Components are processed in order of first appearance of their
//     variables in the edge list, and each consumes n·m normals from the run
//     generator in row-major order. Skipped components consume none.
package correlate
