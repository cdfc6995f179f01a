// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package table

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/pdiddy/uci-harvester/pkg/types"
)

func TestAssembleColumnOrder(t *testing.T) {
	records := []types.Record{
		{"name": "Iris", "url": "u1", "Subject Area": "Biology", "Donated": "1988"},
		{"name": "Adult", "url": "u2", "Area Extra": "x"},
	}
	tbl := Assemble(records)

	want := []string{
		"name", "url", "description",
		"Dataset Characteristics", "Subject Area", "Associated Tasks",
		"Feature Type", "Instances", "Features",
		// extras in first-seen order
		"Donated", "Area Extra",
	}
	if !reflect.DeepEqual(tbl.Columns, want) {
		t.Errorf("Columns = %v, want %v", tbl.Columns, want)
	}
}

func TestAssembleFillsMissingValues(t *testing.T) {
	tbl := Assemble([]types.Record{{"name": "Iris", "url": "u1"}})

	if tbl.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", tbl.Len())
	}
	row := tbl.Rows[0]
	if row[0] != "Iris" || row[1] != "u1" {
		t.Errorf("row = %v, want name and url populated", row)
	}
	for i := 2; i < len(row); i++ {
		if row[i] != "" {
			t.Errorf("row[%d] = %q, want empty string for missing field %q", i, row[i], tbl.Columns[i])
		}
	}
}

func TestAssembleAppliesAliases(t *testing.T) {
	tbl := Assemble([]types.Record{
		{"name": "Wine", "url": "u", "# Instances": "178", "# Features": "13"},
	})

	idx := func(col string) int {
		for i, c := range tbl.Columns {
			if c == col {
				return i
			}
		}
		t.Fatalf("column %q missing", col)
		return -1
	}
	if got := tbl.Rows[0][idx("Instances")]; got != "178" {
		t.Errorf("Instances = %q, want %q", got, "178")
	}
	if got := tbl.Rows[0][idx("Features")]; got != "13" {
		t.Errorf("Features = %q, want %q", got, "13")
	}
	for _, c := range tbl.Columns {
		if strings.HasPrefix(c, "# ") {
			t.Errorf("legacy column %q leaked into the table", c)
		}
	}
}

func TestWriteCSV(t *testing.T) {
	tbl := Assemble([]types.Record{{"name": "Iris", "url": "u1", "Instances": "150"}})

	var buf bytes.Buffer
	if err := tbl.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("CSV has %d lines, want header plus one row", len(lines))
	}
	if !strings.HasPrefix(lines[0], "name,url,description,") {
		t.Errorf("header = %q, want preferred column prefix", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Iris,u1,") {
		t.Errorf("row = %q, want Iris values first", lines[1])
	}
}

func TestWriteFileReadCSVRoundTrip(t *testing.T) {
	records := []types.Record{
		{"name": "Iris", "url": "https://example/dataset/53/iris", "Subject Area": "Biology"},
		{"name": "Adult", "url": "https://example/dataset/2/adult"},
	}
	path := filepath.Join(t.TempDir(), "data", "metadata.csv")

	if err := Assemble(records).WriteFile(path); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ReadCSV() returned %d records, want 2", len(got))
	}
	if got[0]["name"] != "Iris" || got[0]["Subject Area"] != "Biology" {
		t.Errorf("records[0] = %v, want Iris with Subject Area", got[0])
	}
	// Empty cells do not come back as fields.
	if _, ok := got[1]["Subject Area"]; ok {
		t.Errorf("records[1] = %v, empty cell should be omitted", got[1])
	}
}

func TestReadCSVRequiresNameAndURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	tbl := Table{Columns: []string{"title", "link"}, Rows: [][]string{{"Iris", "u"}}}
	if err := tbl.WriteFile(path); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, err := ReadCSV(path); err == nil {
		t.Fatal("ReadCSV() error = nil, want error for missing name/url columns")
	}
}
