// SPDX-License-Identifier: MIT

// Package dataset defines synthetic dataset definitions: their wire form
// (Config, decoded from JSON or YAML under a dataset_config root key), the
// schema validator, and the compiled typed form (Spec) consumed by the
// generator.
//
// Lifecycle:
//
//	cfg, err := dataset.LoadFile("sales.json")   // decode only
//	res := dataset.Validate(cfg)                  // {valid, errors}, never panics
//	spec, err := dataset.Compile(cfg)             // typed Spec or *ValidationError
//
// Validate collects every violation in a fixed order so the list can be fed
// back to whatever repairs the document (see package healing). Compile is the
// only constructor of Spec, so a Spec is valid by construction.
package dataset
