package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/uci-harvester/internal/download"
	"github.com/pdiddy/uci-harvester/internal/table"
	"github.com/pdiddy/uci-harvester/pkg/types"
)

var downloadCmd = &cobra.Command{
	Use:   "download <metadata.csv>",
	Short: "Download dataset archives listed in a metadata CSV",
	Long: `Download reads a metadata CSV produced by the crawl command, resolves
each dataset's direct archive link from its detail page, and saves one file
per dataset. Files already on disk are counted as done and not re-fetched;
individual failures are reported and do not stop the batch.`,
	Args: cobra.ExactArgs(1),
	RunE: runDownload,
}

func init() {
	downloadCmd.Flags().String("dir", defaultDownloadDir, "directory to save downloaded datasets")
	downloadCmd.Flags().String("base-url", defaultBaseURL, "catalog origin for relative download links")
	downloadCmd.Flags().Duration("timeout", defaultDownloadTimeout, "HTTP request timeout for file downloads")
	downloadCmd.Flags().Duration("delay", defaultDownloadDelay, "delay after each processed dataset")

	rootCmd.AddCommand(downloadCmd)
}

func runDownload(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	baseURL, _ := cmd.Flags().GetString("base-url")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	delay, _ := cmd.Flags().GetDuration("delay")

	records, err := table.ReadCSV(args[0])
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("%s contains no dataset records", args[0])
	}

	cfg := types.DownloadConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		BaseURL:       baseURL,
		DownloadDir:   dir,
		DownloadDelay: delay,
		SkipDelay:     defaultSkipDelay,
	}

	client := &http.Client{
		Timeout: cfg.Timeout,
	}

	fmt.Println("Starting UCI dataset downloader...")
	result, err := download.DownloadAll(client, records, cfg, os.Stdout)
	if err != nil {
		return err
	}
	if result.HasFailures() {
		return fmt.Errorf("%d dataset(s) failed to download", result.Failed)
	}
	return nil
}
