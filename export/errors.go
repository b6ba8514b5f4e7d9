// SPDX-License-Identifier: MIT

package export

import (
	"errors"
	"fmt"
)

var (
	// ErrNilTable indicates a nil table.
	ErrNilTable = errors.New("export: table is nil")

	// ErrClosed indicates use of a closed store.
	ErrClosed = errors.New("export: store is closed")
)

func exportErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
