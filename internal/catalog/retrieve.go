// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pdiddy/uci-harvester/pkg/types"
)

// QueryOptions holds parameters for catalog queries.
type QueryOptions struct {
	// Query is the FTS5 full-text search string over names and descriptions.
	Query string

	// Subject filters by subject area.
	Subject string

	// Task filters by associated task (substring match, since pages list
	// several tasks in one field).
	Task string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Subject == "" && q.Task == ""
}

// Retrieve queries the catalog with optional full-text search and
// structured filters. Full-text queries are ranked by relevance;
// structured-only queries are sorted by name.
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]types.Dataset, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT d.url, d.name, d.description, d.characteristics, d.subject_area,
				d.associated_tasks, d.feature_type, d.instances, d.features, d.extras
			FROM datasets_fts
			JOIN datasets d ON d.rowid = datasets_fts.rowid
			WHERE datasets_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT d.url, d.name, d.description, d.characteristics, d.subject_area,
				d.associated_tasks, d.feature_type, d.instances, d.features, d.extras
			FROM datasets d
			WHERE 1=1`)
	}

	if opts.Subject != "" {
		qb.WriteString(` AND d.subject_area = ?`)
		args = append(args, opts.Subject)
	}

	if opts.Task != "" {
		qb.WriteString(` AND d.associated_tasks LIKE ?`)
		args = append(args, "%"+opts.Task+"%")
	}

	if useFTS {
		qb.WriteString(` ORDER BY datasets_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY d.name`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var datasets []types.Dataset
	for rows.Next() {
		var ds types.Dataset
		var extras string
		if err := rows.Scan(&ds.URL, &ds.Name, &ds.Description, &ds.Characteristics,
			&ds.SubjectArea, &ds.AssociatedTasks, &ds.FeatureType,
			&ds.Instances, &ds.Features, &extras); err != nil {
			return nil, fmt.Errorf("scanning dataset row: %w", err)
		}
		if extras != "" && extras != "null" {
			if err := json.Unmarshal([]byte(extras), &ds.Extras); err != nil {
				return nil, fmt.Errorf("decoding extras for %s: %w", ds.URL, err)
			}
		}
		datasets = append(datasets, ds)
	}
	return datasets, rows.Err()
}

// All returns every dataset in the catalog, sorted by name.
func (s *Store) All(ctx context.Context) ([]types.Dataset, error) {
	return s.Retrieve(ctx, QueryOptions{MaxResults: 1 << 30})
}

// Count returns the number of datasets in the catalog.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM datasets`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting datasets: %w", err)
	}
	return n, nil
}
