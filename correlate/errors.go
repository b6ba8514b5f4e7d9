// SPDX-License-Identifier: MIT

package correlate

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownColumn indicates an edge naming a column that was not supplied.
	ErrUnknownColumn = errors.New("correlate: unknown column")

	// ErrLengthMismatch indicates columns of different lengths in one component.
	ErrLengthMismatch = errors.New("correlate: column length mismatch")

	// ErrNilRand indicates a nil generator.
	ErrNilRand = errors.New("correlate: rng is nil")
)

func correlateErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
