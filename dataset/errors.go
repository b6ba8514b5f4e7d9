// SPDX-License-Identifier: MIT
// Package: dataset
//
// errors.go: sentinel errors for loading and compiling definitions.
//
// Error policy:
//   • Validation problems are data, not errors: Validate returns a Result with
//     every problem as a human-readable string.
//   • Compile turns an invalid Result into *ValidationError, which unwraps to
//     ErrInvalid so callers can branch with errors.Is.
//   • Load failures (I/O, syntax, missing root key) wrap the sentinels below.

package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is matched by every *ValidationError.
var ErrInvalid = errors.New("dataset: invalid definition")

// ErrNoDatasetConfig indicates a document without the dataset_config root key.
var ErrNoDatasetConfig = errors.New("dataset: missing dataset_config root object")

// ErrUnknownFormat indicates a definition file whose extension is neither
// JSON nor YAML.
var ErrUnknownFormat = errors.New("dataset: unknown definition format")

// ValidationError carries the full list of validator messages.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("dataset: %d validation error(s): %s", len(e.Errors), strings.Join(e.Errors, "; "))
}

// Unwrap returns ErrInvalid.
func (e *ValidationError) Unwrap() error { return ErrInvalid }

// datasetErrorf wraps err with an operation tag.
func datasetErrorf(op string, err error) error {
	return fmt.Errorf("dataset.%s: %w", op, err)
}
