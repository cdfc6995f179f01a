// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package crawl

import (
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/uci-harvester/internal/httputil"
	"github.com/pdiddy/uci-harvester/pkg/types"
)

const (
	// datasetsPath is the listing endpoint under the catalog origin.
	datasetsPath = "/datasets"

	// listingQuery pins the sort order and view so pagination walks the
	// complete list.
	listingQuery = "sort=desc&view=list&orderBy=NumHits&search="
)

// ListLinks pages through the catalog listing and returns the deduplicated
// set of dataset detail page URLs, sorted for deterministic downstream
// processing. Pagination stops when a page yields fewer links than the page
// size or none at all. A fetch error truncates the listing; links gathered
// up to that point are kept.
func ListLinks(client *http.Client, cfg types.CrawlConfig, w io.Writer) []string {
	fmt.Fprintln(w, "Fetching dataset list using pagination...")

	seen := make(map[string]struct{})
	skip := 0
	for {
		pageURL := fmt.Sprintf("%s%s?skip=%d&take=%d&%s",
			cfg.BaseURL, datasetsPath, skip, cfg.PageSize, listingQuery)
		fmt.Fprintf(w, "  -> fetching page: skip=%d\n", skip)

		doc, err := httputil.FetchDocument(client, pageURL, cfg.UserAgent)
		if err != nil {
			fmt.Fprintf(w, "error fetching dataset page at skip=%d: %v\n", skip, err)
			break
		}

		pageLinks := matchDatasetLinks(doc, cfg.BaseURL)
		for _, link := range pageLinks {
			seen[link] = struct{}{}
		}

		// A short page is the last page. The raw anchor count is compared,
		// not the deduplicated one: detail pages are typically linked twice
		// per listing entry.
		if len(pageLinks) < cfg.PageSize {
			break
		}

		skip += cfg.PageSize
		if cfg.PageDelay > 0 {
			time.Sleep(cfg.PageDelay)
		}
	}

	links := make([]string, 0, len(seen))
	for link := range seen {
		links = append(links, link)
	}
	sort.Strings(links)

	fmt.Fprintf(w, "Found a total of %d unique dataset links.\n", len(links))
	return links
}

// matchDatasetLinks returns absolute URLs for anchors pointing at dataset
// detail pages: hrefs of the form /dataset/{id}/{slug}.
func matchDatasetLinks(doc *goquery.Document, baseURL string) []string {
	var links []string
	doc.Find("a[href^='/dataset/']").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if ok && isDetailPath(href) {
			links = append(links, baseURL+href)
		}
	})
	return links
}

// isDetailPath reports whether href has exactly three non-empty path
// segments with "dataset" first. Listing pages also carry two-segment
// /dataset/{id} anchors and unrelated /datasets links; both are excluded.
func isDetailPath(href string) bool {
	var segments []string
	for _, seg := range strings.Split(href, "/") {
		if seg != "" {
			segments = append(segments, seg)
		}
	}
	return len(segments) == 3 && segments[0] == "dataset"
}
