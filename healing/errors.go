// SPDX-License-Identifier: MIT

package healing

import "errors"

var (
	// ErrNoRepairer indicates a failed document and no Repairer to fix it.
	ErrNoRepairer = errors.New("healing: no repairer configured")

	// ErrRepairFailed wraps an error returned by the Repairer.
	ErrRepairFailed = errors.New("healing: repair failed")

	// ErrExhausted indicates the document still failed after MaxAttempts repairs.
	ErrExhausted = errors.New("healing: repair attempts exhausted")

	// ErrOutput indicates the generated dataset could not be written. The
	// document is never repaired for it.
	ErrOutput = errors.New("healing: output not written")
)
