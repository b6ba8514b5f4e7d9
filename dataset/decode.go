// SPDX-License-Identifier: MIT

package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the serialization of a definition document.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}

	return "json"
}

const (
	opDecode = "Decode"
	opLoad   = "LoadFile"
)

// FormatOf returns the Format implied by a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Sniff guesses the Format of an in-memory document: a leading '{' means
// JSON, anything else is treated as YAML.
func Sniff(data []byte) Format {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		return FormatJSON
	}

	return FormatYAML
}

// Decode parses a definition document and returns its dataset_config.
//
// Errors:
//   - syntax/type errors from encoding/json or yaml.v3, wrapped.
//   - ErrNoDatasetConfig when the root key is absent or null.
func Decode(data []byte, format Format) (*Config, error) {
	var doc Document
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, datasetErrorf(opDecode, fmt.Errorf("%s: %w", format, err))
	}
	if doc.Config == nil {
		return nil, datasetErrorf(opDecode, ErrNoDatasetConfig)
	}

	return doc.Config, nil
}

// Encode renders cfg as a full document in the given format.
func Encode(cfg *Config, format Format) ([]byte, error) {
	doc := Document{Config: cfg}
	if format == FormatYAML {
		return yaml.Marshal(&doc)
	}

	return json.MarshalIndent(&doc, "", "  ")
}

// LoadFile reads and decodes the definition at path, choosing the format by
// extension.
func LoadFile(path string) (*Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, datasetErrorf(opLoad, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, datasetErrorf(opLoad, err)
	}

	return Decode(data, format)
}

// LoadSpec is LoadFile followed by Compile.
func LoadSpec(path string) (*Spec, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	return Compile(cfg)
}
