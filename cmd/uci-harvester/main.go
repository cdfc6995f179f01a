// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the uci-harvester CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// Catalog defaults shared across subcommands. The User-Agent is a plain
// browser string; the archive serves degraded markup to obvious bots.
const (
	defaultBaseURL   = "https://archive.ics.uci.edu"
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	defaultPageTimeout     = 20 * time.Second
	defaultDownloadTimeout = 60 * time.Second

	defaultPageDelay     = 300 * time.Millisecond
	defaultDetailDelay   = 300 * time.Millisecond
	defaultDownloadDelay = 1 * time.Second
	defaultSkipDelay     = 100 * time.Millisecond

	defaultPageSize    = 20
	defaultDataDir     = "data"
	defaultMetadataCSV = "data/uci_datasets_metadata.csv"
	defaultDownloadDir = "datasets"
)

// rootCmd is the base command for the uci-harvester CLI.
var rootCmd = &cobra.Command{
	Use:   "uci-harvester",
	Short: "Harvest dataset metadata and archives from the UCI ML repository",
	Long: `uci-harvester collects dataset metadata and files from the UCI Machine
Learning Repository. The crawl command pages through the public listing and
scrapes each dataset's detail page into a metadata CSV; the download command
resolves direct archive links from that CSV and saves one file per dataset;
the catalog command indexes the CSV into a local SQLite database for
full-text and structured queries.

All requests are sequential with polite delays between them.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./uci-harvester.yaml or ~/.config/uci-harvester/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("uci-harvester")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "uci-harvester"))
		}
	}

	viper.SetEnvPrefix("UCI_HARVESTER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
