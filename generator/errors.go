// SPDX-License-Identifier: MIT
// Package: generator
//
// errors.go: sentinel and typed errors for generation runs.

package generator

import (
	"errors"
	"fmt"
)

var (
	// ErrNilSpec indicates Generate was called without a spec.
	ErrNilSpec = errors.New("generator: spec is nil")

	// ErrBadRows indicates a non-positive row count.
	ErrBadRows = errors.New("generator: row count must be positive")

	// ErrExpression is the root of every target expression failure.
	ErrExpression = errors.New("generator: target expression failed")
)

// ExpressionError identifies a target expression that could not be evaluated.
// It is fatal for the run.
type ExpressionError struct {
	Expression string
	Err        error
}

func (e *ExpressionError) Error() string {
	return fmt.Sprintf("generator: error evaluating target expression '%s': %v", e.Expression, e.Err)
}

// Unwrap exposes both the cause and ErrExpression to errors.Is.
func (e *ExpressionError) Unwrap() []error { return []error{ErrExpression, e.Err} }

func generatorErrorf(stage string, err error) error {
	return fmt.Errorf("Generate(%s): %w", stage, err)
}
