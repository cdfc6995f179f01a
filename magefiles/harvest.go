//go:build mage

package main

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

// Crawl builds the CLI and runs the metadata collection pipeline.
func Crawl() error {
	mg.Deps(Build, Init)
	return runCLI("crawl")
}

// Download builds the CLI and downloads every dataset listed in the
// default metadata CSV.
func Download() error {
	mg.Deps(Build, Init)
	return runCLI("download", "data/uci_datasets_metadata.csv")
}

func runCLI(args ...string) error {
	cmd := exec.Command(filepath.Join(binDir, binName), args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
