package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/uci-harvester/internal/crawl"
	"github.com/pdiddy/uci-harvester/internal/table"
	"github.com/pdiddy/uci-harvester/pkg/types"
)

var crawlCmd = &cobra.Command{
	Use:   "crawl",
	Short: "Collect dataset metadata into a CSV",
	Long: `Crawl pages through the repository listing, scrapes every dataset's
detail page, and writes the assembled metadata table as CSV. Fields vary by
page layout; missing values become empty cells. No arguments are required.`,
	RunE: runCrawl,
}

func init() {
	crawlCmd.Flags().String("base-url", defaultBaseURL, "catalog origin to crawl")
	crawlCmd.Flags().Int("page-size", defaultPageSize, "datasets requested per listing page")
	crawlCmd.Flags().Duration("timeout", defaultPageTimeout, "HTTP request timeout for page fetches")
	crawlCmd.Flags().Duration("page-delay", defaultPageDelay, "delay between listing page fetches")
	crawlCmd.Flags().Duration("detail-delay", defaultDetailDelay, "delay between detail page fetches")
	crawlCmd.Flags().String("out", defaultMetadataCSV, "output CSV path")

	rootCmd.AddCommand(crawlCmd)
}

func runCrawl(cmd *cobra.Command, args []string) error {
	baseURL, _ := cmd.Flags().GetString("base-url")
	pageSize, _ := cmd.Flags().GetInt("page-size")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	pageDelay, _ := cmd.Flags().GetDuration("page-delay")
	detailDelay, _ := cmd.Flags().GetDuration("detail-delay")
	out, _ := cmd.Flags().GetString("out")

	cfg := types.CrawlConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		BaseURL:     baseURL,
		PageSize:    pageSize,
		PageDelay:   pageDelay,
		DetailDelay: detailDelay,
		OutputCSV:   out,
	}

	client := &http.Client{
		Timeout: cfg.Timeout,
	}

	fmt.Println("Starting UCI metadata crawl...")
	records := crawl.CrawlMetadata(client, cfg, os.Stdout)
	if len(records) == 0 {
		return fmt.Errorf("failed to collect any data")
	}

	tbl := table.Assemble(records)
	if err := tbl.WriteFile(cfg.OutputCSV); err != nil {
		return err
	}

	fmt.Printf("\nSaved metadata for %d datasets to %s\n", tbl.Len(), cfg.OutputCSV)
	return nil
}
