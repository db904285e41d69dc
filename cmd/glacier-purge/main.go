// Package main is the entry point for the glacier-purge CLI.
//
// glacier-purge deletes an Amazon S3 Glacier vault. It retrieves the vault
// inventory through an inventory-retrieval job, removes every archive and
// finally removes the vault itself.
//
// For detailed usage information, run:
//
//	glacier-purge --help
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/imamik/glacier-purge/cmd/glacier-purge/commands"
	"github.com/imamik/glacier-purge/internal/purge"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		// Workflow failures have already been logged.
		var failure *purge.Error
		if !errors.As(err, &failure) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
