// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/uci-harvester/pkg/types"
)

// exportFile is the serialized form of a full catalog dump.
type exportFile struct {
	Exported time.Time       `json:"exported" yaml:"exported"`
	Count    int             `json:"count" yaml:"count"`
	Datasets []types.Dataset `json:"datasets" yaml:"datasets"`
}

// Export writes the full catalog to export.yaml and export.json in dir.
func (s *Store) Export(ctx context.Context, dir string, w io.Writer) error {
	datasets, err := s.All(ctx)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}

	dump := exportFile{
		Exported: time.Now().UTC(),
		Count:    len(datasets),
		Datasets: datasets,
	}

	yamlPath := filepath.Join(dir, "export.yaml")
	data, err := yaml.Marshal(dump)
	if err != nil {
		return fmt.Errorf("marshaling export YAML: %w", err)
	}
	if err := os.WriteFile(yamlPath, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", yamlPath, err)
	}

	jsonPath := filepath.Join(dir, "export.json")
	data, err = json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling export JSON: %w", err)
	}
	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", jsonPath, err)
	}

	fmt.Fprintf(w, "Exported %d datasets to %s and %s\n", len(datasets), yamlPath, jsonPath)
	return nil
}
