// SPDX-License-Identifier: MIT

package export

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/synthdata/generator"
)

const (
	opWriteCSV = "WriteCSV"
	opCSVFile  = "CSVFile"
)

// WriteCSV writes t as CSV: one header row of column names, then one record
// per row. Missing values are empty fields.
func WriteCSV(w io.Writer, t *generator.Table) error {
	if t == nil {
		return exportErrorf(opWriteCSV, ErrNilTable)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Names()); err != nil {
		return exportErrorf(opWriteCSV, err)
	}
	record := make([]string, len(t.Columns))
	var i, j int
	for i = 0; i < t.Rows; i++ {
		for j = range t.Columns {
			record[j] = t.Columns[j].Cell(i)
		}
		if err := cw.Write(record); err != nil {
			return exportErrorf(opWriteCSV, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return exportErrorf(opWriteCSV, err)
	}

	return nil
}

// CSVPath returns the file CSVFile writes for t under dir.
func CSVPath(dir string, t *generator.Table) string {
	return filepath.Join(dir, t.Name+".csv")
}

// CSVFile writes t to <dir>/<name>.csv, creating dir when needed, and
// returns the path.
func CSVFile(dir string, t *generator.Table) (path string, err error) {
	if t == nil {
		return "", exportErrorf(opCSVFile, ErrNilTable)
	}
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return "", exportErrorf(opCSVFile, err)
	}
	path = CSVPath(dir, t)
	f, err := os.Create(path)
	if err != nil {
		return "", exportErrorf(opCSVFile, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = exportErrorf(opCSVFile, cerr)
		}
	}()
	if err = WriteCSV(f, t); err != nil {
		return "", err
	}

	return path, nil
}
