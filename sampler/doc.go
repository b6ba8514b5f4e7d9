// SPDX-License-Identifier: MIT

// Package sampler draws raw feature columns from the parametric families of
// package dataset, derives lag series, and owns the run's random source.
//
// Every stochastic function takes the run's *rand.Rand explicitly. There is
// no package-level generator, so a fixed seed and a fixed call order always
// reproduce the same values.
package sampler
