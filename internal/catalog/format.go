// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/uci-harvester/pkg/types"
)

// FormatTable writes datasets as a human-readable table to w.
func FormatTable(datasets []types.Dataset, w io.Writer) {
	if len(datasets) == 0 {
		fmt.Fprintln(w, "No datasets found.")
		return
	}

	fmt.Fprintf(w, "%-40s  %-18s  %-22s  %-9s  %s\n",
		"Name", "Subject Area", "Associated Tasks", "Instances", "URL")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for _, ds := range datasets {
		name := ds.Name
		if len(name) > 40 {
			name = name[:37] + "..."
		}
		tasks := ds.AssociatedTasks
		if len(tasks) > 22 {
			tasks = tasks[:19] + "..."
		}
		fmt.Fprintf(w, "%-40s  %-18s  %-22s  %-9s  %s\n",
			name, ds.SubjectArea, tasks, ds.Instances, ds.URL)
	}

	fmt.Fprintf(w, "\n%d datasets\n", len(datasets))
}

// FormatJSON writes datasets as indented JSON to w.
func FormatJSON(datasets []types.Dataset, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(datasets)
}
