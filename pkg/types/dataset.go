// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// Well-known record fields. Every record carries FieldName and FieldURL;
// everything else depends on which page layout matched during extraction.
const (
	FieldName        = "name"
	FieldURL         = "url"
	FieldDescription = "description"
)

// Record is one dataset's extracted metadata: a flat field → value mapping
// with no fixed schema. The field set varies per dataset; the table stage
// unions fields across records and fills gaps with empty strings.
type Record map[string]string

// NewRecord returns a record carrying the two fields every dataset has.
func NewRecord(name, url string) Record {
	return Record{FieldName: name, FieldURL: url}
}

// Name returns the dataset name, or "" when absent.
func (r Record) Name() string { return r[FieldName] }

// URL returns the detail page URL, or "" when absent.
func (r Record) URL() string { return r[FieldURL] }

// Set stores a normalized field. Keys prefixed with "# " are stripped of the
// marker; pairs with an empty key, empty value, or the "-" placeholder are
// dropped.
func (r Record) Set(key, value string) {
	key = strings.TrimPrefix(key, "# ")
	if key == "" || value == "" || value == "-" {
		return
	}
	r[key] = value
}

// Dataset is a record in its catalog index form: the common characteristic
// fields pulled into fixed columns, with any remaining discovered fields in
// Extras.
type Dataset struct {
	Name            string            `json:"name" yaml:"name"`
	URL             string            `json:"url" yaml:"url"`
	Description     string            `json:"description,omitempty" yaml:"description,omitempty"`
	Characteristics string            `json:"characteristics,omitempty" yaml:"characteristics,omitempty"`
	SubjectArea     string            `json:"subject_area,omitempty" yaml:"subject_area,omitempty"`
	AssociatedTasks string            `json:"associated_tasks,omitempty" yaml:"associated_tasks,omitempty"`
	FeatureType     string            `json:"feature_type,omitempty" yaml:"feature_type,omitempty"`
	Instances       string            `json:"instances,omitempty" yaml:"instances,omitempty"`
	Features        string            `json:"features,omitempty" yaml:"features,omitempty"`
	Extras          map[string]string `json:"extras,omitempty" yaml:"extras,omitempty"`
}
