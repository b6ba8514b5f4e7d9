// SPDX-License-Identifier: MIT

package generator

import (
	"math"
	"strconv"

	"github.com/katalvlaran/synthdata/correlate"
	"github.com/katalvlaran/synthdata/dataset"
	"github.com/katalvlaran/synthdata/quality"
)

// Diagnostic is a non-fatal event recorded during a run.
type Diagnostic = correlate.Diagnostic

// Column is one output column. Exactly one representation is set:
//   - Float, Int: Numbers (NaN is missing; Int values are whole numbers).
//   - Categorical: Codes into Categories (quality.Missing is missing).
//   - Datetime: Times ("" is missing).
type Column struct {
	Name       string
	Type       dataset.DataType
	Numbers    []float64
	Codes      []int
	Categories []string
	Times      []string
}

// Len returns the number of rows.
func (c *Column) Len() int {
	switch c.Type {
	case dataset.Categorical:
		return len(c.Codes)
	case dataset.Datetime:
		return len(c.Times)
	}

	return len(c.Numbers)
}

// IsMissing reports whether row i holds the column's absent sentinel.
func (c *Column) IsMissing(i int) bool {
	switch c.Type {
	case dataset.Categorical:
		return c.Codes[i] == quality.Missing
	case dataset.Datetime:
		return c.Times[i] == ""
	}

	return math.IsNaN(c.Numbers[i])
}

// CountMissing returns the number of missing rows.
func (c *Column) CountMissing() int {
	var n, i int
	for i = 0; i < c.Len(); i++ {
		if c.IsMissing(i) {
			n++
		}
	}

	return n
}

// Label returns the category label of row i, or false when missing.
func (c *Column) Label(i int) (string, bool) {
	if c.Codes[i] == quality.Missing {
		return "", false
	}

	return c.Categories[c.Codes[i]], true
}

// Cell renders row i as delimited text; missing values render as "".
func (c *Column) Cell(i int) string {
	if c.IsMissing(i) {
		return ""
	}
	switch c.Type {
	case dataset.Categorical:
		label, _ := c.Label(i)
		return label
	case dataset.Datetime:
		return c.Times[i]
	case dataset.Int:
		return strconv.FormatFloat(c.Numbers[i], 'f', 0, 64)
	}

	return strconv.FormatFloat(c.Numbers[i], 'g', -1, 64)
}

// Table is the result of one run: the declared features in declaration
// order followed by the target. Tables are not modified after Generate
// returns.
type Table struct {
	Name        string
	Rows        int
	Seed        *int64 // nil when the run drew from a caller-supplied *rand.Rand
	Columns     []*Column
	Diagnostics []Diagnostic
}

// Column returns the column called name.
func (t *Table) Column(name string) (*Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}

	return nil, false
}

// Names returns the column names in output order.
func (t *Table) Names() []string {
	out := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		out[i] = c.Name
	}

	return out
}
