// SPDX-License-Identifier: MIT

// Package export writes generated tables to durable sinks: delimited text
// and SQLite. SQLiteStore also keeps a registry of generation runs.
//
// Missing values are written as empty CSV fields and as SQL NULL.
package export
