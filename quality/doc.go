// SPDX-License-Identifier: MIT

// Package quality degrades clean columns the way real data is degraded, and
// turns continuous columns into decile categories.
//
// Passes:
//
//	InjectOutliers       overwrite round(n·rate) rows with an IQR fence value
//	InjectMissing        overwrite round(n·rate) rows with NaN
//	InjectMissingCodes   the same for category codes (-1)
//	InjectMissingTimes   the same for timestamp text ("")
//	Discretize           map values to decile codes 0..9
//
// Every pass that selects rows draws them without replacement from the run's
// *rand.Rand, and draws nothing when the selected count is zero. Callers
// sequence the passes; this package keeps no state between calls.
package quality
