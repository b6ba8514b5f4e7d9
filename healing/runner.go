// SPDX-License-Identifier: MIT

package healing

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/synthdata/dataset"
	"github.com/katalvlaran/synthdata/export"
	"github.com/katalvlaran/synthdata/generator"
)

// DefaultMaxAttempts bounds the repairs tried per document.
const DefaultMaxAttempts = 2

// BackupSuffix is appended to a definition path to name its backup.
const BackupSuffix = ".backup"

// Repairer rewrites a rejected definition document. problems is the complete
// list of reasons the document was rejected.
type Repairer interface {
	Repair(ctx context.Context, document []byte, problems []string) ([]byte, error)
}

// RepairFunc adapts a function to Repairer.
type RepairFunc func(ctx context.Context, document []byte, problems []string) ([]byte, error)

// Repair calls f.
func (f RepairFunc) Repair(ctx context.Context, document []byte, problems []string) ([]byte, error) {
	return f(ctx, document, problems)
}

// Outcome is the result of processing one definition file.
type Outcome struct {
	Name     string // file name without extension
	Path     string
	Success  bool
	Skipped  bool // output already existed
	Healed   bool // succeeded after at least one repair
	Attempts int  // repairs tried
	Output   string
	Err      error
}

// Runner processes definition files. The zero value is not usable; set
// OutDir at least.
type Runner struct {
	OutDir      string
	Generator   *generator.Generator // nil means generator.New()
	Repairer    Repairer             // nil disables repair
	MaxAttempts int                  // 0 means DefaultMaxAttempts
	Store       *export.SQLiteStore  // optional run registry
	Logger      *zap.Logger          // nil means zap.NewNop()
}

func (r *Runner) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}

	return r.Logger
}

func (r *Runner) maxAttempts() int {
	if r.MaxAttempts <= 0 {
		return DefaultMaxAttempts
	}

	return r.MaxAttempts
}

// failure is one rejected attempt. A fatal failure is not the document's
// fault and is never sent to the Repairer.
type failure struct {
	err      error
	problems []string
	fatal    bool
}

// Process runs the definition at path to completion.
func (r *Runner) Process(ctx context.Context, path string) Outcome {
	out := Outcome{Name: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), Path: path}
	log := r.logger().With(zap.String("definition", path))

	if existing, ok := r.existingOutput(path); ok {
		log.Info("output exists; skipping", zap.String("output", existing))
		out.Success, out.Skipped, out.Output = true, true, existing
		return out
	}

	for {
		if err := ctx.Err(); err != nil {
			out.Err = err
			return out
		}
		document, err := os.ReadFile(path)
		if err != nil {
			out.Err = err
			return out
		}
		output, fail := r.attempt(ctx, path, document)
		if fail == nil {
			out.Success, out.Output = true, output
			out.Healed = out.Attempts > 0
			log.Info("dataset written", zap.String("output", output), zap.Int("repairs", out.Attempts))
			return out
		}
		out.Err = fail.err
		if fail.fatal {
			log.Error("dataset not written", zap.Error(fail.err))
			return out
		}
		log.Warn("definition rejected", zap.Error(fail.err), zap.Strings("problems", fail.problems))

		if r.Repairer == nil {
			out.Err = fmt.Errorf("%w: %w", ErrNoRepairer, fail.err)
			return out
		}
		if out.Attempts >= r.maxAttempts() {
			out.Err = fmt.Errorf("%w after %d: %w", ErrExhausted, out.Attempts, fail.err)
			return out
		}
		out.Attempts++
		repaired, err := r.Repairer.Repair(ctx, document, fail.problems)
		if err != nil {
			out.Err = fmt.Errorf("%w: %w", ErrRepairFailed, err)
			return out
		}
		if err = writeBackup(path+BackupSuffix, document); err != nil {
			out.Err = err
			return out
		}
		if err = os.WriteFile(path, repaired, 0o644); err != nil {
			out.Err = err
			return out
		}
		log.Info("definition repaired", zap.Int("attempt", out.Attempts), zap.String("backup", path+BackupSuffix))
	}
}

// existingOutput reports the output CSV of the dataset named in path, when
// it already exists. Unreadable documents are never skipped.
func (r *Runner) existingOutput(path string) (string, bool) {
	cfg, err := dataset.LoadFile(path)
	if err != nil || cfg.Name == nil {
		return "", false
	}
	out := export.CSVPath(r.OutDir, &generator.Table{Name: *cfg.Name})
	if _, err = os.Stat(out); err != nil {
		return "", false
	}

	return out, true
}

// attempt decodes, validates, generates and writes one document.
func (r *Runner) attempt(ctx context.Context, path string, document []byte) (string, *failure) {
	format, err := dataset.FormatOf(path)
	if err != nil {
		return "", &failure{err: err, fatal: true}
	}
	cfg, err := dataset.Decode(document, format)
	if err != nil {
		return "", &failure{err: err, problems: []string{err.Error()}}
	}
	spec, err := dataset.Compile(cfg)
	if err != nil {
		var verr *dataset.ValidationError
		if errors.As(err, &verr) {
			return "", &failure{err: err, problems: verr.Errors}
		}
		return "", &failure{err: err, problems: []string{err.Error()}}
	}

	gen := r.Generator
	if gen == nil {
		gen = generator.New(generator.WithLogger(r.logger()))
	}
	table, err := gen.Generate(ctx, spec)
	if err != nil {
		r.record(ctx, export.Run{Dataset: spec.Name, Seed: spec.Seed, Rows: spec.Rows,
			Status: export.StatusFailed, Error: err.Error(), Spec: document})
		return "", &failure{err: err, problems: []string{err.Error()}}
	}
	output, err := export.CSVFile(r.OutDir, table)
	if err != nil {
		r.record(ctx, export.Run{Dataset: table.Name, Seed: table.Seed, Rows: table.Rows,
			Status: export.StatusFailed, Error: err.Error(), Spec: document})
		return "", &failure{err: fmt.Errorf("%w: %w", ErrOutput, err), fatal: true}
	}
	r.record(ctx, export.Run{Dataset: table.Name, Seed: table.Seed, Rows: table.Rows,
		Status: export.StatusSucceeded, Diagnostics: table.Diagnostics, Spec: document})

	return output, nil
}

// writeBackup keeps the first backup of a document: later repairs never
// overwrite the user's original.
func writeBackup(path string, document []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if _, err = f.Write(document); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func (r *Runner) record(ctx context.Context, run export.Run) {
	if r.Store == nil {
		return
	}
	if _, err := r.Store.RecordRun(ctx, run); err != nil {
		r.logger().Warn("run not recorded", zap.String("dataset", run.Dataset), zap.Error(err))
	}
}

// IsDefinition reports whether name has a definition file extension.
func IsDefinition(name string) bool {
	_, err := dataset.FormatOf(name)
	return err == nil
}

// RunDir processes every definition file of dir in lexical order. Backups
// are ignored. The error reports an unreadable directory or a done context;
// per-file failures are in the outcomes.
func (r *Runner) RunDir(ctx context.Context, dir string) ([]Outcome, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("RunDir: %w", err)
	}
	var outcomes []Outcome
	for _, e := range entries {
		if e.IsDir() || !IsDefinition(e.Name()) {
			continue
		}
		if err = ctx.Err(); err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, r.Process(ctx, filepath.Join(dir, e.Name())))
	}

	return outcomes, nil
}
