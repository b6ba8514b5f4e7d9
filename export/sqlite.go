// SPDX-License-Identifier: MIT

package export

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/katalvlaran/synthdata/dataset"
	"github.com/katalvlaran/synthdata/generator"
)

const (
	opOpen       = "Open"
	opWriteTable = "WriteTable"
	opRecordRun  = "RecordRun"
	opListRuns   = "ListRuns"
)

// Run statuses.
const (
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

const runsTable = `
CREATE TABLE IF NOT EXISTS generation_runs (
	id          TEXT PRIMARY KEY,
	dataset     TEXT NOT NULL,
	seed        INTEGER,
	row_count   INTEGER NOT NULL,
	status      TEXT NOT NULL,
	error       TEXT,
	diagnostics TEXT,
	spec        TEXT,
	created_at  DATETIME NOT NULL
);
`

// Run is one entry of the generation_runs registry.
type Run struct {
	ID          string
	Dataset     string
	Seed        *int64
	Rows        int
	Status      string
	Error       string
	Diagnostics []generator.Diagnostic
	Spec        []byte // the source document, verbatim
	CreatedAt   time.Time
}

// SQLiteStore writes tables and run records into one SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (creating if needed) the SQLite database at path and ensures the
// run registry exists.
func Open(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, exportErrorf(opOpen, err)
	}
	if _, err = db.Exec(runsTable); err != nil {
		_ = db.Close()
		return nil, exportErrorf(opOpen, err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close releases the database.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil

	return err
}

func sqlType(t dataset.DataType) string {
	switch t {
	case dataset.Int:
		return "INTEGER"
	case dataset.Float:
		return "REAL"
	}

	return "TEXT"
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// WriteTable replaces the table named after t with t's rows, in one
// transaction.
func (s *SQLiteStore) WriteTable(ctx context.Context, t *generator.Table) (err error) {
	if s.db == nil {
		return exportErrorf(opWriteTable, ErrClosed)
	}
	if t == nil {
		return exportErrorf(opWriteTable, ErrNilTable)
	}

	defs := make([]string, len(t.Columns))
	marks := make([]string, len(t.Columns))
	for j, c := range t.Columns {
		defs[j] = quoteIdent(c.Name) + " " + sqlType(c.Type)
		marks[j] = "?"
	}
	name := quoteIdent(t.Name)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return exportErrorf(opWriteTable, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+name); err != nil {
		return exportErrorf(opWriteTable, err)
	}
	if _, err = tx.ExecContext(ctx, fmt.Sprintf("CREATE TABLE %s (%s)", name, strings.Join(defs, ", "))); err != nil {
		return exportErrorf(opWriteTable, err)
	}
	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf("INSERT INTO %s VALUES (%s)", name, strings.Join(marks, ", ")))
	if err != nil {
		return exportErrorf(opWriteTable, err)
	}
	defer stmt.Close()

	args := make([]any, len(t.Columns))
	var i, j int
	for i = 0; i < t.Rows; i++ {
		for j = range t.Columns {
			args[j] = sqlValue(t.Columns[j], i)
		}
		if _, err = stmt.ExecContext(ctx, args...); err != nil {
			return exportErrorf(opWriteTable, fmt.Errorf("row %d: %w", i, err))
		}
	}
	if err = tx.Commit(); err != nil {
		return exportErrorf(opWriteTable, err)
	}

	return nil
}

func sqlValue(c *generator.Column, i int) any {
	if c.IsMissing(i) {
		return nil
	}
	switch c.Type {
	case dataset.Int:
		return int64(c.Numbers[i])
	case dataset.Float:
		return c.Numbers[i]
	}

	return c.Cell(i)
}

// RecordRun inserts r into generation_runs, assigning an ID and CreatedAt
// when unset, and returns the stored run.
func (s *SQLiteStore) RecordRun(ctx context.Context, r Run) (Run, error) {
	if s.db == nil {
		return Run{}, exportErrorf(opRecordRun, ErrClosed)
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	diags, err := json.Marshal(r.Diagnostics)
	if err != nil {
		return Run{}, exportErrorf(opRecordRun, err)
	}
	var seed any
	if r.Seed != nil {
		seed = *r.Seed
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO generation_runs (id, dataset, seed, row_count, status, error, diagnostics, spec, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Dataset, seed, r.Rows, r.Status, r.Error, string(diags), string(r.Spec), r.CreatedAt)
	if err != nil {
		return Run{}, exportErrorf(opRecordRun, err)
	}

	return r, nil
}

// ListRuns returns every recorded run, newest first.
func (s *SQLiteStore) ListRuns(ctx context.Context) ([]Run, error) {
	if s.db == nil {
		return nil, exportErrorf(opListRuns, ErrClosed)
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, dataset, seed, row_count, status, error, diagnostics, spec, created_at
		 FROM generation_runs ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, exportErrorf(opListRuns, err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var (
			r          Run
			seed       sql.NullInt64
			msg, diags sql.NullString
			spec       sql.NullString
		)
		if err = rows.Scan(&r.ID, &r.Dataset, &seed, &r.Rows, &r.Status, &msg, &diags, &spec, &r.CreatedAt); err != nil {
			return nil, exportErrorf(opListRuns, err)
		}
		if seed.Valid {
			v := seed.Int64
			r.Seed = &v
		}
		r.Error = msg.String
		if spec.String != "" {
			r.Spec = []byte(spec.String)
		}
		if diags.Valid && diags.String != "" && diags.String != "null" {
			if err = json.Unmarshal([]byte(diags.String), &r.Diagnostics); err != nil {
				return nil, exportErrorf(opListRuns, err)
			}
		}
		out = append(out, r)
	}
	if err = rows.Err(); err != nil {
		return nil, exportErrorf(opListRuns, err)
	}

	return out, nil
}
