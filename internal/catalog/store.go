// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists crawled dataset records in a queryable SQLite
// index with full-text search over names and descriptions.
package catalog

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/uci-harvester/pkg/types"
)

const (
	indexDir = "index"
	dbFile   = "catalog.db"
)

// Store manages the catalog SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the catalog database at
// dataDir/index/catalog.db, creating the schema if it does not exist.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.DataDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS datasets (
			url TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			characteristics TEXT,
			subject_area TEXT,
			associated_tasks TEXT,
			feature_type TEXT,
			instances TEXT,
			features TEXT,
			extras TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_datasets_subject ON datasets(subject_area)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='datasets_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE datasets_fts USING fts5(name, description, content=datasets, content_rowid=rowid)`,
			`CREATE TRIGGER datasets_ai AFTER INSERT ON datasets BEGIN
				INSERT INTO datasets_fts(rowid, name, description) VALUES (new.rowid, new.name, new.description);
			END`,
			`CREATE TRIGGER datasets_ad AFTER DELETE ON datasets BEGIN
				INSERT INTO datasets_fts(datasets_fts, rowid, name, description) VALUES('delete', old.rowid, old.name, old.description);
			END`,
			`CREATE TRIGGER datasets_au AFTER UPDATE ON datasets BEGIN
				INSERT INTO datasets_fts(datasets_fts, rowid, name, description) VALUES('delete', old.rowid, old.name, old.description);
				INSERT INTO datasets_fts(rowid, name, description) VALUES (new.rowid, new.name, new.description);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}
	return nil
}

// ImportSummary holds counts from a catalog import run.
type ImportSummary struct {
	Imported int
	Updated  int
	Failed   int
}

// Total returns the number of records processed.
func (s ImportSummary) Total() int {
	return s.Imported + s.Updated + s.Failed
}

// Import upserts records into the catalog, keyed by detail page URL, so
// importing the same metadata twice never duplicates rows. Records without
// a URL are rejected; failures are reported and do not abort the import.
func (s *Store) Import(records []types.Record, w io.Writer) (ImportSummary, error) {
	var summary ImportSummary
	for _, rec := range records {
		ds := datasetFromRecord(rec)
		if ds.URL == "" {
			fmt.Fprintf(w, "failed  %q: record has no url\n", ds.Name)
			summary.Failed++
			continue
		}

		var exists int
		if err := s.db.QueryRow(`SELECT count(*) FROM datasets WHERE url = ?`, ds.URL).Scan(&exists); err != nil {
			return summary, fmt.Errorf("checking %s: %w", ds.URL, err)
		}

		extras, err := json.Marshal(ds.Extras)
		if err != nil {
			fmt.Fprintf(w, "failed  %q: %v\n", ds.Name, err)
			summary.Failed++
			continue
		}

		_, err = s.db.Exec(`INSERT INTO datasets
			(url, name, description, characteristics, subject_area, associated_tasks, feature_type, instances, features, extras)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(url) DO UPDATE SET
				name = excluded.name,
				description = excluded.description,
				characteristics = excluded.characteristics,
				subject_area = excluded.subject_area,
				associated_tasks = excluded.associated_tasks,
				feature_type = excluded.feature_type,
				instances = excluded.instances,
				features = excluded.features,
				extras = excluded.extras`,
			ds.URL, ds.Name, ds.Description, ds.Characteristics, ds.SubjectArea,
			ds.AssociatedTasks, ds.FeatureType, ds.Instances, ds.Features, string(extras))
		if err != nil {
			fmt.Fprintf(w, "failed  %q: %v\n", ds.Name, err)
			summary.Failed++
			continue
		}

		if exists > 0 {
			fmt.Fprintf(w, "updated  %s\n", ds.Name)
			summary.Updated++
		} else {
			fmt.Fprintf(w, "imported %s\n", ds.Name)
			summary.Imported++
		}
	}
	return summary, nil
}

// recordColumns maps known metadata field names onto fixed dataset columns.
var recordColumns = map[string]func(*types.Dataset, string){
	types.FieldName:           func(d *types.Dataset, v string) { d.Name = v },
	types.FieldURL:            func(d *types.Dataset, v string) { d.URL = v },
	types.FieldDescription:    func(d *types.Dataset, v string) { d.Description = v },
	"Dataset Characteristics": func(d *types.Dataset, v string) { d.Characteristics = v },
	"Subject Area":            func(d *types.Dataset, v string) { d.SubjectArea = v },
	"Associated Tasks":        func(d *types.Dataset, v string) { d.AssociatedTasks = v },
	"Feature Type":            func(d *types.Dataset, v string) { d.FeatureType = v },
	"Instances":               func(d *types.Dataset, v string) { d.Instances = v },
	"Features":                func(d *types.Dataset, v string) { d.Features = v },
}

// datasetFromRecord splits a record into fixed columns and an extras map.
func datasetFromRecord(rec types.Record) types.Dataset {
	var ds types.Dataset
	for k, v := range rec {
		if set, ok := recordColumns[k]; ok {
			set(&ds, v)
			continue
		}
		if ds.Extras == nil {
			ds.Extras = make(map[string]string)
		}
		ds.Extras[k] = v
	}
	return ds
}
