// SPDX-License-Identifier: MIT

// Package healing runs definition files through generation and, when a file
// is rejected, asks a Repairer to rewrite it and tries again.
//
// The Repairer is usually a language model fed the validator's complete error
// list; this package only fixes the contract and the retry policy:
//
//   - a definition whose output CSV already exists is skipped;
//   - each failure (decode, validation, generation) yields a problem list;
//   - up to MaxAttempts repairs are tried; before the first rewrite the
//     original document is copied to <path>.backup, and an existing backup
//     is never overwritten;
//   - an unwritable output (ErrOutput) or a Repairer error ends the file's
//     processing without touching the document.
package healing
