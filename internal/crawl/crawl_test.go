// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package crawl

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// TestCrawlMetadata exercises the full metadata pipeline against one
// server: a short listing page, one healthy detail page, and one broken
// detail page that must degrade rather than abort.
func TestCrawlMetadata(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/datasets", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, listingPage("/dataset/53/iris", "/dataset/99/gone"))
	})
	mux.HandleFunc("/dataset/53/iris", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, detailPageDL)
	})
	mux.HandleFunc("/dataset/99/gone", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	var out bytes.Buffer
	records := CrawlMetadata(srv.Client(), listConfig(srv.URL, 20), &out)

	if len(records) != 2 {
		t.Fatalf("CrawlMetadata() returned %d records, want 2", len(records))
	}

	// Links are processed in sorted order: /dataset/53/iris before
	// /dataset/99/gone.
	if records[0]["name"] != "Iris" {
		t.Errorf("records[0] name = %q, want %q", records[0]["name"], "Iris")
	}
	if records[1]["name"] != "N/A" || len(records[1]) != 2 {
		t.Errorf("records[1] = %v, want degraded name/url record", records[1])
	}

	if !strings.Contains(out.String(), "[1/2] scraping:") {
		t.Errorf("output missing progress lines:\n%s", out.String())
	}
}

func TestCrawlMetadataNoLinks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, listingPage())
	}))
	defer srv.Close()

	var out bytes.Buffer
	records := CrawlMetadata(srv.Client(), listConfig(srv.URL, 20), &out)

	if records != nil {
		t.Fatalf("CrawlMetadata() = %v, want nil when the listing is empty", records)
	}
	if !strings.Contains(out.String(), "No dataset links found") {
		t.Errorf("output missing empty-listing notice:\n%s", out.String())
	}
}
