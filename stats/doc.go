// SPDX-License-Identifier: MIT

// Package stats holds the small descriptive-statistics kernels shared by the
// generation passes: missing-aware filtering, population moments, type-7
// (linear interpolation) quantiles, value range, and Pearson/Spearman
// correlation.
//
// Missing values are NaN throughout. Every function that summarizes a series
// ignores NaN entries; callers never pre-filter.
//
// Moments and correlations delegate to gonum's stat and floats packages.
// Quantile implements the "linear" (Hyndman–Fan type 7) rule directly because
// gonum's stat.Quantile offers only the empirical and LinInterp (type 4)
// estimators, and the outlier fences and decile cuts are defined on type 7.
package stats
