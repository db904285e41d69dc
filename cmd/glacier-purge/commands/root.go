// Package commands defines the CLI command structure and flag bindings.
//
// Argument parsing and validation live here. Execution is delegated to the
// handlers package.
package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/imamik/glacier-purge/cmd/glacier-purge/handlers"
)

// ErrUsage is returned when the vault argument is missing.
var ErrUsage = errors.New("usage: glacier-purge [<vault_name>|LIST] [DEBUG]")

// Root returns the root command for the glacier-purge CLI.
//
// The vault is deleted by the root command itself rather than a subcommand,
// so every vault name, including "version" or "help", stays usable.
func Root() *cobra.Command {
	var flags handlers.Flags

	cmd := &cobra.Command{
		Use:   "glacier-purge <vault_name|LIST> [DEBUG]",
		Short: "Delete an Amazon S3 Glacier vault and all of its archives",
		Long: `glacier-purge removes an Amazon S3 Glacier vault.

A vault can only be deleted once it is empty, and Glacier only lists the
archives of a vault through an inventory-retrieval job, which takes hours to
complete. glacier-purge:
  - reuses the vault's inventory-retrieval job or starts a new one
  - checks the job every 30 minutes until it has finished
  - deletes every archive listed in the inventory, retrying a failure once
    after a 2 minute cooldown
  - deletes the vault

Pass LIST instead of a vault name to print the vaults of the account.
Pass DEBUG as second argument (or --debug) for verbose logs.

AWS credentials are resolved by the AWS SDK default chain (environment,
shared config files, instance metadata).

Examples:
  glacier-purge LIST
  glacier-purge my-old-backups
  glacier-purge my-old-backups DEBUG --report purge.yaml

WARNING: This operation is irreversible. All archives of the vault are lost.`,
		Args:          validateArgs,
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.Debug = flags.Debug || debugArg(args)
			return handlers.Purge(cmd.Context(), args[0], flags, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&flags.ConfigPath, "config", "c", "", "Path to a YAML configuration file")
	cmd.Flags().BoolVar(&flags.Debug, "debug", false, "Enable debug logging (same as the DEBUG argument)")
	cmd.Flags().StringVar(&flags.Region, "region", "", "AWS region of the vault")
	cmd.Flags().StringVar(&flags.Profile, "profile", "", "AWS shared config profile")
	cmd.Flags().StringVar(&flags.AccountID, "account-id", "", "AWS account id owning the vault (default: the credentials' account)")
	cmd.Flags().StringVar(&flags.Endpoint, "endpoint", "", "Override the Glacier endpoint URL")
	cmd.Flags().StringVar(&flags.ReportPath, "report", "", "Write a YAML run summary to this path")
	cmd.Flags().StringVar(&flags.MetricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile-collector path")

	return cmd
}

// validateArgs requires a vault name. Arguments after the optional DEBUG
// marker are ignored.
func validateArgs(_ *cobra.Command, args []string) error {
	if len(args) < 1 || args[0] == "" {
		return ErrUsage
	}
	return nil
}

func debugArg(args []string) bool {
	return len(args) == 2 && args[1] == handlers.DebugArg
}
