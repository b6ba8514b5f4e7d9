// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// settings are the CLI defaults. A --config file overrides the built-in
// values and explicit flags override the file.
type settings struct {
	OutputDir string `yaml:"output_dir"`
	Format    string `yaml:"format"`
	DBPath    string `yaml:"db_path"`
	LogLevel  string `yaml:"log_level"`
}

const (
	formatCSV    = "csv"
	formatSQLite = "sqlite"
)

func defaultSettings() settings {
	return settings{
		OutputDir: "generated_datasets",
		Format:    formatCSV,
		DBPath:    "datagen.db",
		LogLevel:  "info",
	}
}

// loadSettings overlays the YAML file at path onto the defaults. Keys absent
// from the file keep their default.
func loadSettings(path string) (settings, error) {
	s := defaultSettings()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("config: %w", err)
	}
	if err = yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("config %s: %w", path, err)
	}
	switch s.Format {
	case formatCSV, formatSQLite:
	default:
		return s, fmt.Errorf("config %s: unknown format %q", path, s.Format)
	}

	return s, nil
}

// newLogger builds a console logger on stderr. verbose forces debug level.
func newLogger(level string, verbose bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = !verbose
	cfg.OutputPaths = []string{"stderr"}

	return cfg.Build()
}
