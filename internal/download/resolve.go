// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package download

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pdiddy/uci-harvester/internal/httputil"
	"github.com/pdiddy/uci-harvester/pkg/types"
)

// Anchor selectors for the direct archive link, in preference order. The
// static file path serves the archive directly; the API endpoint is an
// older redirecting variant some pages still carry.
const (
	staticFileSelector  = `a[href*='/static/public/']`
	apiEndpointSelector = `a[href*='/api/v1/datasets/']`
)

// ResolveDirectLink scrapes a dataset detail page for its direct archive
// download URL, preferring the static file link over the API endpoint
// link. Relative hrefs are absolutized against the catalog origin. A
// missing link or a failed fetch yields "" rather than an error.
func ResolveDirectLink(client *http.Client, pageURL string, cfg types.DownloadConfig, w io.Writer) string {
	doc, err := httputil.FetchDocument(client, pageURL, cfg.UserAgent)
	if err != nil {
		fmt.Fprintf(w, "    -> error fetching page for download link: %v\n", err)
		return ""
	}

	anchor := doc.Find(staticFileSelector).First()
	if anchor.Length() == 0 {
		anchor = doc.Find(apiEndpointSelector).First()
	}

	href, ok := anchor.Attr("href")
	if !ok || href == "" {
		return ""
	}
	if strings.HasPrefix(href, "/") {
		return cfg.BaseURL + href
	}
	return href
}
