// SPDX-License-Identifier: MIT

// Command datagen validates, summarizes and generates synthetic datasets
// from JSON or YAML definitions.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "datagen:", err)
		os.Exit(1)
	}
}
