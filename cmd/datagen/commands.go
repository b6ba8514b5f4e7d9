// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/synthdata/dataset"
	"github.com/katalvlaran/synthdata/export"
	"github.com/katalvlaran/synthdata/generator"
	"github.com/katalvlaran/synthdata/healing"
)

var errInvalid = errors.New("one or more definitions are invalid")

// app carries state shared by every subcommand.
type app struct {
	configPath string
	verbose    bool
	settings   settings
	log        *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}
	root := &cobra.Command{
		Use:           "datagen",
		Short:         "Synthetic tabular dataset generator",
		Long:          "Validate, summarize and generate synthetic tabular datasets from declarative JSON or YAML definitions.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(a.configPath)
			if err != nil {
				return err
			}
			a.settings = s
			if a.log, err = newLogger(s.LogLevel, a.verbose); err != nil {
				return err
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML file with output_dir, format, db_path, log_level")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(a.validateCmd(), a.summaryCmd(), a.generateCmd(), a.batchCmd())

	return root
}

type validateReport struct {
	File   string   `json:"file"`
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check definitions and print every problem as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			allValid := true
			for _, path := range args {
				report := validateReport{File: path, Errors: []string{}}
				cfg, err := dataset.LoadFile(path)
				if err != nil {
					report.Errors = append(report.Errors, err.Error())
				} else {
					res := dataset.Validate(cfg)
					report.Valid, report.Errors = res.Valid, res.Errors
				}
				allValid = allValid && report.Valid
				if err = enc.Encode(report); err != nil {
					return err
				}
			}
			if !allValid {
				return errInvalid
			}
			return nil
		},
	}
}

func (a *app) summaryCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "summary FILE",
		Short: "Print a summary of a valid definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := dataset.LoadSpec(args[0])
			if err != nil {
				return err
			}
			sum := dataset.Summarize(spec)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(sum)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), sum.String())
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the summary as JSON")

	return cmd
}

func (a *app) generateCmd() *cobra.Command {
	var (
		outDir, format, dbPath string
		seed                   int64
	)
	cmd := &cobra.Command{
		Use:   "generate FILE",
		Short: "Generate a dataset and write it as CSV or into SQLite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("out") {
				outDir = a.settings.OutputDir
			}
			if !cmd.Flags().Changed("format") {
				format = a.settings.Format
			}
			if !cmd.Flags().Changed("db") {
				dbPath = a.settings.DBPath
			}
			opts := []generator.Option{generator.WithLogger(a.log)}
			if cmd.Flags().Changed("seed") {
				opts = append(opts, generator.WithSeed(seed))
			}
			return a.generate(cmd, args[0], format, outDir, dbPath, opts)
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory for CSV files")
	cmd.Flags().StringVarP(&format, "format", "f", formatCSV, "output format: csv or sqlite")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (sqlite format)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "override the definition's random_seed")

	return cmd
}

func (a *app) generate(cmd *cobra.Command, path, format, outDir, dbPath string, opts []generator.Option) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	spec, err := dataset.LoadSpec(path)
	if err != nil {
		return err
	}
	table, err := generator.New(opts...).Generate(ctx, spec)
	if err != nil {
		return err
	}
	for _, d := range table.Diagnostics {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", d.Message)
	}

	switch format {
	case formatCSV:
		out, err := export.CSVFile(outDir, table)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d rows to %s\n", table.Rows, out)
	case formatSQLite:
		store, err := export.Open(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()
		if err = store.WriteTable(ctx, table); err != nil {
			return err
		}
		document, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		run, err := store.RecordRun(ctx, export.Run{
			Dataset: table.Name, Seed: table.Seed, Rows: table.Rows,
			Status: export.StatusSucceeded, Diagnostics: table.Diagnostics, Spec: document,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d rows to %s table %q (run %s)\n", table.Rows, dbPath, table.Name, run.ID)
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	return nil
}

func (a *app) batchCmd() *cobra.Command {
	var outDir, dbPath string
	cmd := &cobra.Command{
		Use:   "batch DIR",
		Short: "Generate every definition in a directory, skipping existing outputs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("out") {
				outDir = a.settings.OutputDir
			}
			runner := &healing.Runner{OutDir: outDir, Logger: a.log}
			if dbPath != "" {
				store, err := export.Open(dbPath)
				if err != nil {
					return err
				}
				defer store.Close()
				runner.Store = store
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			outcomes, err := runner.RunDir(ctx, args[0])
			if err != nil {
				return err
			}
			var ok, skipped, failed int
			for _, o := range outcomes {
				switch {
				case o.Skipped:
					skipped++
				case o.Success:
					ok++
				default:
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", o.Name, o.Err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "generated %d, skipped %d, failed %d\n", ok, skipped, failed)
			if failed > 0 {
				return errInvalid
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory for CSV files")
	cmd.Flags().StringVar(&dbPath, "db", "", "record runs in this SQLite database")

	return cmd
}
