// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package crawl

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/uci-harvester/pkg/types"
)

const detailPageDL = `<html><body>
<div><h1>Iris</h1></div>
<p>A small classification benchmark of flower measurements.</p>
<dl>
  <dt>Dataset Characteristics</dt><dd>Multivariate</dd>
  <dt>Subject Area</dt><dd>Biology</dd>
  <dt># Instances</dt><dd>150</dd>
  <dt># Features</dt><dd>4</dd>
  <dt>Missing Values</dt><dd>-</dd>
</dl>
</body></html>`

const detailPageClassQualified = `<html><body>
<div><h1>Adult</h1><p class="text-base pb-6">Census income prediction data.</p></div>
<div>
  <dt class="text-sm font-medium">Subject Area</dt>
  <dd class="mt-1 text-sm">Social Science</dd>
  <dt class="text-sm font-medium">Associated Tasks</dt>
  <dd class="mt-1 text-sm">Classification</dd>
</div>
</body></html>`

const detailPageGrid = `<html><body>
<div><h1>Wine</h1></div>
<div class="grid">
  <div class="col-span-4"><h1 class="text-lg font-semibold"># Instances</h1><p class="text-md">178</p></div>
  <div class="col-span-4"><h1 class="text-lg font-semibold">Feature Type</h1><p class="text-md">Real</p></div>
  <div class="col-span-4"><h1 class="text-lg font-semibold">Empty Cell</h1><p class="text-md"></p></div>
</div>
</body></html>`

const detailPageBare = `<html><body><div id="app"></div></body></html>`

func docFrom(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}
	return doc
}

func TestExtractRecordDefinitionList(t *testing.T) {
	rec := extractRecord(docFrom(t, detailPageDL), "https://example/dataset/53/iris")

	want := types.Record{
		"name":                    "Iris",
		"url":                     "https://example/dataset/53/iris",
		"description":             "A small classification benchmark of flower measurements.",
		"Dataset Characteristics": "Multivariate",
		"Subject Area":            "Biology",
		"Instances":               "150",
		"Features":                "4",
	}
	if len(rec) != len(want) {
		t.Errorf("record has %d fields, want %d: %v", len(rec), len(want), rec)
	}
	for k, v := range want {
		if rec[k] != v {
			t.Errorf("record[%q] = %q, want %q", k, rec[k], v)
		}
	}
	if _, ok := rec["Missing Values"]; ok {
		t.Error("placeholder-dash field was not dropped")
	}
}

func TestExtractRecordClassQualifiedFallback(t *testing.T) {
	rec := extractRecord(docFrom(t, detailPageClassQualified), "https://example/dataset/2/adult")

	if rec["name"] != "Adult" {
		t.Errorf("name = %q, want %q", rec["name"], "Adult")
	}
	if rec["description"] != "Census income prediction data." {
		t.Errorf("description = %q, want the pb-6 paragraph", rec["description"])
	}
	if rec["Subject Area"] != "Social Science" {
		t.Errorf("Subject Area = %q, want %q", rec["Subject Area"], "Social Science")
	}
	if rec["Associated Tasks"] != "Classification" {
		t.Errorf("Associated Tasks = %q, want %q", rec["Associated Tasks"], "Classification")
	}
}

func TestExtractRecordHeaderGridFallback(t *testing.T) {
	rec := extractRecord(docFrom(t, detailPageGrid), "https://example/dataset/109/wine")

	if rec["Instances"] != "178" {
		t.Errorf("Instances = %q, want %q (grid layout, hash marker stripped)", rec["Instances"], "178")
	}
	if rec["Feature Type"] != "Real" {
		t.Errorf("Feature Type = %q, want %q", rec["Feature Type"], "Real")
	}
	if _, ok := rec["Empty Cell"]; ok {
		t.Error("empty-valued grid cell was not dropped")
	}
}

func TestExtractRecordStrategyOrder(t *testing.T) {
	// When both a definition list and a grid are present, the definition
	// list wins.
	combined := strings.Replace(detailPageDL, "</body>",
		`<div class="grid"><div class="col-span-4"><h1 class="text-lg font-semibold">Bogus</h1><p class="text-md">yes</p></div></div></body>`, 1)
	rec := extractRecord(docFrom(t, combined), "https://example/dataset/53/iris")

	if _, ok := rec["Bogus"]; ok {
		t.Error("grid strategy ran despite the definition list yielding pairs")
	}
	if rec["Subject Area"] != "Biology" {
		t.Errorf("Subject Area = %q, want %q", rec["Subject Area"], "Biology")
	}
}

func TestExtractRecordBarePage(t *testing.T) {
	rec := extractRecord(docFrom(t, detailPageBare), "https://example/dataset/99/gone")

	if rec["name"] != "N/A" {
		t.Errorf("name = %q, want N/A when no h1 exists", rec["name"])
	}
	if rec["description"] != "N/A" {
		t.Errorf("description = %q, want N/A when no name element was found", rec["description"])
	}
	if rec["url"] != "https://example/dataset/99/gone" {
		t.Errorf("url = %q, want the page URL", rec["url"])
	}
}

func TestParseDatasetPageFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	var out bytes.Buffer
	url := srv.URL + "/dataset/99/gone"
	rec := ParseDatasetPage(srv.Client(), url, listConfig(srv.URL, 20), &out)

	if len(rec) != 2 {
		t.Fatalf("degraded record has %d fields, want name and url only: %v", len(rec), rec)
	}
	if rec["name"] != "N/A" || rec["url"] != url {
		t.Errorf("degraded record = %v, want name=N/A url=%s", rec, url)
	}
	if !strings.Contains(out.String(), "error fetching") {
		t.Errorf("output missing fetch error notice:\n%s", out.String())
	}
}

func TestParseDatasetPageSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, detailPageDL)
	}))
	defer srv.Close()

	var out bytes.Buffer
	rec := ParseDatasetPage(srv.Client(), srv.URL+"/dataset/53/iris", listConfig(srv.URL, 20), &out)

	if rec["name"] != "Iris" {
		t.Errorf("name = %q, want %q", rec["name"], "Iris")
	}
}
