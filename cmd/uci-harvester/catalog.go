package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/uci-harvester/internal/catalog"
	"github.com/pdiddy/uci-harvester/internal/table"
	"github.com/pdiddy/uci-harvester/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Index crawled metadata and query the local catalog",
	Long: `Catalog ingests a metadata CSV into a local SQLite index and supports
full-text search over dataset names and descriptions plus structured lookup
by subject area or associated task. Imports are idempotent by dataset URL.`,
}

var catalogImportCmd = &cobra.Command{
	Use:   "import <metadata.csv>",
	Short: "Ingest a metadata CSV into the catalog index",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogImport,
}

var catalogQueryCmd = &cobra.Command{
	Use:   "query",
	Short: "Search the catalog index",
	RunE:  runCatalogQuery,
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog to YAML and JSON files",
	RunE:  runCatalogExport,
}

func init() {
	catalogCmd.PersistentFlags().String("data-dir", defaultDataDir, "base directory for harvester data (contains index/)")

	catalogQueryCmd.Flags().String("query", "", "full-text search over names and descriptions")
	catalogQueryCmd.Flags().String("subject", "", "filter by subject area")
	catalogQueryCmd.Flags().String("task", "", "filter by associated task")
	catalogQueryCmd.Flags().Int("max-results", 20, "maximum number of query results")
	catalogQueryCmd.Flags().Bool("json", false, "output results as JSON")

	catalogExportCmd.Flags().String("out-dir", "", "export directory (default: the data directory)")

	catalogCmd.AddCommand(catalogImportCmd, catalogQueryCmd, catalogExportCmd)
	rootCmd.AddCommand(catalogCmd)
}

func openStore(cmd *cobra.Command) (*catalog.Store, error) {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	maxResults, _ := cmd.Flags().GetInt("max-results")
	return catalog.NewStore(types.CatalogConfig{
		DataDir:    dataDir,
		MaxResults: maxResults,
	})
}

func runCatalogImport(cmd *cobra.Command, args []string) error {
	records, err := table.ReadCSV(args[0])
	if err != nil {
		return err
	}

	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Import(records, os.Stdout)
	if err != nil {
		return err
	}

	fmt.Printf("\nImport summary: %d imported, %d updated, %d failed (total: %d)\n",
		summary.Imported, summary.Updated, summary.Failed, summary.Total())
	if summary.Failed > 0 {
		return fmt.Errorf("%d record(s) failed to import", summary.Failed)
	}
	return nil
}

func runCatalogQuery(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	query, _ := cmd.Flags().GetString("query")
	subject, _ := cmd.Flags().GetString("subject")
	task, _ := cmd.Flags().GetString("task")
	maxResults, _ := cmd.Flags().GetInt("max-results")
	asJSON, _ := cmd.Flags().GetBool("json")

	opts := catalog.QueryOptions{
		Query:      query,
		Subject:    subject,
		Task:       task,
		MaxResults: maxResults,
	}

	datasets, err := store.Retrieve(cmd.Context(), opts)
	if err != nil {
		return err
	}

	if asJSON {
		return catalog.FormatJSON(datasets, os.Stdout)
	}
	catalog.FormatTable(datasets, os.Stdout)
	return nil
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	outDir, _ := cmd.Flags().GetString("out-dir")
	if outDir == "" {
		dataDir, _ := cmd.Flags().GetString("data-dir")
		outDir = filepath.Clean(dataDir)
	}

	return store.Export(cmd.Context(), outDir, os.Stdout)
}
