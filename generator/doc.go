// SPDX-License-Identifier: MIT

// Package generator materializes a validated dataset.Spec into a Table.
//
// A run is one synchronous pass over columns of Spec.Rows values:
//
//	sample features (declaration order), derive lags from the raw samples
//	impose correlations (component order)
//	feature outliers, int rounding, decile categories
//	feature missingness
//	target: expression, seasonality, noise, cast, outliers, missingness
//
// Every random draw comes from one *rand.Rand, in the order above, so a
// seeded run is reproducible bit-for-bit. Generate checks its context
// between stages; it never leaves a partially built Table behind.
//
// Lag series exist only inside the run: they are visible to the target
// expression and never appear in the Table.
package generator
