// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package crawl walks the catalog listing and extracts per-dataset metadata.
package crawl

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pdiddy/uci-harvester/pkg/types"
)

// CrawlMetadata lists every dataset reachable by pagination and scrapes each
// detail page in order, applying a polite delay between fetches. Per-dataset
// failures degrade to partial records and never abort the crawl.
func CrawlMetadata(client *http.Client, cfg types.CrawlConfig, w io.Writer) []types.Record {
	links := ListLinks(client, cfg, w)
	if len(links) == 0 {
		fmt.Fprintln(w, "No dataset links found. Stopping crawl.")
		return nil
	}

	fmt.Fprintln(w, "\nCrawling dataset details...")
	records := make([]types.Record, 0, len(links))
	for i, link := range links {
		fmt.Fprintf(w, "[%d/%d] scraping: %s\n", i+1, len(links), link)
		records = append(records, ParseDatasetPage(client, link, cfg, w))
		if cfg.DetailDelay > 0 && i < len(links)-1 {
			time.Sleep(cfg.DetailDelay)
		}
	}
	return records
}
