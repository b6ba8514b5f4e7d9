// SPDX-License-Identifier: MIT
// Package: quality
//
// errors.go: sentinel errors for the quality package.

package quality

import (
	"errors"
	"fmt"
)

// ErrBadRate indicates a rate outside [0, 1] or NaN.
var ErrBadRate = errors.New("quality: rate must be within [0, 1]")

// ErrBadMultiplier indicates a non-positive outlier multiplier.
var ErrBadMultiplier = errors.New("quality: outlier multiplier must be positive")

func qualityErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
