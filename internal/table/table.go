// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package table assembles dataset records into a fixed-order tabular form
// and reads and writes the metadata CSV.
package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/pdiddy/uci-harvester/pkg/types"
)

// preferredColumns is the fixed leading column order of the metadata table.
// These columns always appear, even when no record carries them.
var preferredColumns = []string{
	types.FieldName,
	types.FieldURL,
	types.FieldDescription,
	"Dataset Characteristics",
	"Subject Area",
	"Associated Tasks",
	"Feature Type",
	"Instances",
	"Features",
}

// columnAliases maps legacy field spellings to their canonical columns.
var columnAliases = map[string]string{
	"# Instances": "Instances",
	"# Features":  "Features",
}

// Table is an assembled metadata table: ordered columns and one row per
// record, with missing values as empty strings.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Len returns the number of rows.
func (t Table) Len() int { return len(t.Rows) }

// Assemble builds a table from records. Columns are the preferred set
// followed by any additional discovered fields, ordered by first
// appearance across records (keys sorted within a record, since record
// field order is not meaningful).
func Assemble(records []types.Record) Table {
	normalized := make([]types.Record, len(records))
	for i, rec := range records {
		normalized[i] = canonicalize(rec)
	}

	columns := append([]string(nil), preferredColumns...)
	known := make(map[string]bool, len(columns))
	for _, c := range columns {
		known[c] = true
	}
	for _, rec := range normalized {
		keys := make([]string, 0, len(rec))
		for k := range rec {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if !known[k] {
				known[k] = true
				columns = append(columns, k)
			}
		}
	}

	rows := make([][]string, len(normalized))
	for i, rec := range normalized {
		row := make([]string, len(columns))
		for j, col := range columns {
			row[j] = rec[col]
		}
		rows[i] = row
	}
	return Table{Columns: columns, Rows: rows}
}

// canonicalize applies column aliases to a record's keys.
func canonicalize(rec types.Record) types.Record {
	out := make(types.Record, len(rec))
	for k, v := range rec {
		if alias, ok := columnAliases[k]; ok {
			k = alias
		}
		out[k] = v
	}
	return out
}

// WriteCSV writes the table with a header row.
func (t Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes the table to path as CSV, creating parent directories.
func (t Table) WriteFile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := t.WriteCSV(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadCSV reads a metadata CSV back into records. The header must carry
// name and url columns; extra columns are kept and empty cells are
// omitted from the records.
func ReadCSV(path string) ([]types.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header of %s: %w", path, err)
	}

	hasName, hasURL := false, false
	for _, col := range header {
		switch col {
		case types.FieldName:
			hasName = true
		case types.FieldURL:
			hasURL = true
		}
	}
	if !hasName || !hasURL {
		return nil, fmt.Errorf("%s: metadata CSV must have name and url columns", path)
	}

	var records []types.Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		rec := make(types.Record, len(header))
		for i, col := range header {
			if i < len(row) && row[i] != "" {
				rec[col] = row[i]
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
