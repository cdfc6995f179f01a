// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package crawl

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/uci-harvester/internal/httputil"
	"github.com/pdiddy/uci-harvester/pkg/types"
)

const (
	// valueMissing marks a field the page did not yield.
	valueMissing = "N/A"

	// parseErrorDescription marks a record whose page was fetched but could
	// not be parsed.
	parseErrorDescription = "Error during parsing."
)

// ParseDatasetPage fetches a dataset detail page and extracts its metadata
// record. It never returns an error: a fetch failure yields a minimal
// name/url record, a parse failure a record with a sentinel description.
func ParseDatasetPage(client *http.Client, url string, cfg types.CrawlConfig, w io.Writer) types.Record {
	resp, err := httputil.Get(client, url, cfg.UserAgent)
	if err != nil {
		fmt.Fprintf(w, "  error fetching %s: %v\n", url, err)
		return types.NewRecord(valueMissing, url)
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		fmt.Fprintf(w, "  error parsing %s: %v\n", url, err)
		rec := types.NewRecord(valueMissing, url)
		rec[types.FieldDescription] = parseErrorDescription
		return rec
	}

	return extractRecord(doc, url)
}

// extractRecord pulls name, description, and the characteristic fields out
// of a parsed detail page.
func extractRecord(doc *goquery.Document, url string) types.Record {
	name := valueMissing
	title := doc.Find("h1").First()
	if title.Length() > 0 {
		name = strings.TrimSpace(title.Text())
	}

	rec := types.NewRecord(name, url)
	rec[types.FieldDescription] = extractDescription(title)

	for _, pair := range extractFields(doc) {
		rec.Set(pair.Key, pair.Value)
	}
	return rec
}

// extractDescription locates the descriptive paragraph near the title: the
// next sibling <p> of the title's enclosing div, or a pb-6-classed <p>
// inside it.
func extractDescription(title *goquery.Selection) string {
	if title.Length() == 0 {
		return valueMissing
	}
	parent := title.Closest("div")
	if parent.Length() == 0 {
		return valueMissing
	}

	desc := parent.NextAllFiltered("p").First()
	if desc.Length() == 0 {
		desc = parent.Find("p[class*='pb-6']").First()
	}
	if desc.Length() == 0 {
		return valueMissing
	}
	return strings.TrimSpace(desc.Text())
}
