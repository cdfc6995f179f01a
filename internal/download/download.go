// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package download resolves direct archive links and persists dataset files.
package download

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/pdiddy/uci-harvester/internal/httputil"
	"github.com/pdiddy/uci-harvester/pkg/types"
)

// downloadChunkSize is the copy buffer size for streaming archives to disk.
const downloadChunkSize = 8 * 1024

// allowedExtensions are archive suffixes the catalog is known to serve.
// Anything else is treated as ambiguous and defaults to zip.
var allowedExtensions = map[string]bool{
	"zip": true,
	"csv": true,
	"rar": true,
	"tgz": true,
	"txt": true,
}

// BatchResult holds the outcome of a batch download run.
type BatchResult struct {
	Downloaded int
	Skipped    int
	Failed     int
}

// Total returns the number of datasets processed.
func (r BatchResult) Total() int {
	return r.Downloaded + r.Skipped + r.Failed
}

// Succeeded returns the number of datasets present on disk after the run,
// whether downloaded now or found already there.
func (r BatchResult) Succeeded() int {
	return r.Downloaded + r.Skipped
}

// HasFailures reports whether any datasets failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// DownloadAll persists one file per resolvable dataset record into the
// configured directory. Files already on disk are counted as done without
// a transfer. Per-record failures are reported and do not abort the batch;
// a polite delay follows each processed record.
func DownloadAll(client *http.Client, records []types.Record, cfg types.DownloadConfig, w io.Writer) (BatchResult, error) {
	if err := os.MkdirAll(cfg.DownloadDir, 0o755); err != nil {
		return BatchResult{}, fmt.Errorf("creating download directory %s: %w", cfg.DownloadDir, err)
	}
	fmt.Fprintf(w, "Starting dataset download to: %s\n", cfg.DownloadDir)

	var result BatchResult
	total := len(records)
	for i, rec := range records {
		name := rec.Name()
		fmt.Fprintf(w, "[%d/%d] processing %q\n", i+1, total, name)

		link := ResolveDirectLink(client, rec.URL(), cfg, w)
		if link == "" {
			fmt.Fprintf(w, "    -> warning: no direct download link for %s, skipping\n", name)
			result.Failed++
			continue
		}

		dest := filepath.Join(cfg.DownloadDir, SanitizeName(name)+"."+fileExtension(link))
		if _, err := os.Stat(dest); err == nil {
			fmt.Fprintf(w, "    -> file already exists at %s, skipping download\n", dest)
			result.Skipped++
			if cfg.SkipDelay > 0 {
				time.Sleep(cfg.SkipDelay)
			}
			continue
		}

		fmt.Fprintf(w, "    -> downloading from: %s\n", link)
		if err := downloadFile(client, link, dest, cfg); err != nil {
			fmt.Fprintf(w, "    -> error: failed to download %s: %v\n", name, err)
			result.Failed++
		} else {
			fmt.Fprintf(w, "    -> saved to %s\n", dest)
			result.Downloaded++
		}

		if cfg.DownloadDelay > 0 {
			time.Sleep(cfg.DownloadDelay)
		}
	}

	fmt.Fprintf(w, "\nDownload complete: %d of %d datasets downloaded.\n", result.Succeeded(), total)
	return result, nil
}

// SanitizeName builds a safe base filename from a dataset name: letters,
// digits, spaces, underscores, and hyphens are kept, trailing spaces
// trimmed, and remaining spaces collapsed to underscores.
func SanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '_' || r == '-' {
			b.WriteRune(r)
		}
	}
	safe := strings.TrimRight(b.String(), " ")
	return strings.ReplaceAll(safe, " ", "_")
}

// fileExtension derives the file extension from a download link's trailing
// path segment, with any query string stripped. Ambiguous or disallowed
// suffixes default to zip.
func fileExtension(link string) string {
	ext := link
	if i := strings.LastIndex(link, "."); i >= 0 {
		ext = link[i+1:]
	}
	if j := strings.Index(ext, "?"); j >= 0 {
		ext = ext[:j]
	}
	ext = strings.ToLower(ext)
	if len(ext) > 5 || !allowedExtensions[ext] {
		return "zip"
	}
	return ext
}

// downloadFile streams url to destPath through a temporary file, renaming
// into place on success so a partial transfer never looks complete.
func downloadFile(client *http.Client, url, destPath string, cfg types.DownloadConfig) error {
	resp, err := httputil.Get(client, url, cfg.UserAgent)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	tmpFile, err := os.CreateTemp(filepath.Dir(destPath), ".download-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	buf := make([]byte, downloadChunkSize)
	_, copyErr := io.CopyBuffer(tmpFile, resp.Body, buf)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
