// SPDX-License-Identifier: MIT
// Package: sampler
//
// errors.go: sentinel errors for the sampler package.
// Callers branch with errors.Is; implementations attach context with %w.

package sampler

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a non-positive sample size, or a selection larger than
// its population.
var ErrBadSize = errors.New("sampler: invalid size")

// ErrNeedRand indicates a stochastic draw without a *rand.Rand.
var ErrNeedRand = errors.New("sampler: rng is required")

// ErrUnknownDistribution indicates a Distribution implementation this package
// does not know how to draw from.
var ErrUnknownDistribution = errors.New("sampler: unknown distribution")

// samplerErrorf wraps err with the operation and distribution kind.
func samplerErrorf(op, kind string, err error) error {
	return fmt.Errorf("%s(%s): %w", op, kind, err)
}
