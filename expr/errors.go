// SPDX-License-Identifier: MIT
// Package expr: sentinel and typed errors.
// Typed errors carry position or name detail and unwrap to a sentinel, so
// callers can branch with errors.Is and report with errors.As.

package expr

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is the root of every parse failure.
	ErrSyntax = errors.New("expr: syntax error")

	// ErrUnknownName is returned by Eval when a variable has no binding.
	ErrUnknownName = errors.New("expr: unknown name")

	// ErrBadCall marks a call to a function outside the helper set or with the
	// wrong number of arguments.
	ErrBadCall = errors.New("expr: invalid function call")

	// ErrLength is returned when a bound series does not have the evaluation length.
	ErrLength = errors.New("expr: series length mismatch")
)

// SyntaxError reports a parse failure at a byte offset of the source.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("expr: syntax error at offset %d: %s", e.Pos, e.Msg)
}

// Unwrap returns ErrSyntax.
func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// NameError reports an identifier that the evaluation environment does not bind.
type NameError struct {
	Name string
}

func (e *NameError) Error() string { return fmt.Sprintf("expr: name '%s' is not defined", e.Name) }

// Unwrap returns ErrUnknownName.
func (e *NameError) Unwrap() error { return ErrUnknownName }

// CallError reports an unknown helper or an arity mismatch.
type CallError struct {
	Func string
	Msg  string
}

func (e *CallError) Error() string { return fmt.Sprintf("expr: %s(): %s", e.Func, e.Msg) }

// Unwrap returns ErrBadCall.
func (e *CallError) Unwrap() error { return ErrBadCall }
