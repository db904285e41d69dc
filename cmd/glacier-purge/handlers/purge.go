// Package handlers implements the glacier-purge command business logic.
package handlers

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/juju/clock"

	"github.com/imamik/glacier-purge/internal/config"
	"github.com/imamik/glacier-purge/internal/logging"
	"github.com/imamik/glacier-purge/internal/metrics"
	"github.com/imamik/glacier-purge/internal/platform/glacier"
	"github.com/imamik/glacier-purge/internal/purge"
)

// DebugArg is the positional argument enabling debug logs.
const DebugArg = "DEBUG"

// Flags are the command line overrides of the configuration.
type Flags struct {
	ConfigPath  string
	Debug       bool
	Region      string
	Profile     string
	AccountID   string
	Endpoint    string
	ReportPath  string
	MetricsFile string
}

// apply overrides cfg with every flag that was set.
func (f Flags) apply(cfg *config.Config) {
	if f.Debug {
		cfg.Debug = true
	}
	if f.Region != "" {
		cfg.Region = f.Region
	}
	if f.Profile != "" {
		cfg.Profile = f.Profile
	}
	if f.AccountID != "" {
		cfg.AccountID = f.AccountID
	}
	if f.Endpoint != "" {
		cfg.Endpoint = f.Endpoint
	}
	if f.ReportPath != "" {
		cfg.ReportPath = f.ReportPath
	}
	if f.MetricsFile != "" {
		cfg.MetricsFile = f.MetricsFile
	}
}

// Factory function variables for purge - can be replaced in tests.
var (
	loadConfig = config.Load

	newGlacierAPI = func(ctx context.Context, opts glacier.Options) (purge.API, error) {
		client, err := glacier.NewClient(ctx, opts)
		if err != nil {
			return nil, err
		}
		return client, nil
	}

	newClock = func() clock.Clock { return clock.WallClock }

	newRunID = uuid.NewString
)

// Purge handles the root command.
//
// With the LIST target it prints the vaults of the account. Otherwise it
// deletes every archive of the target vault and then the vault. Only fatal
// workflow failures are returned; failed archive or vault deletions are
// logged and reported in the summary.
func Purge(ctx context.Context, target string, flags Flags, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(flags.ConfigPath)
	if err != nil {
		return err
	}
	flags.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	runID := newRunID()
	log := logging.New(logging.Options{Debug: cfg.Debug, Output: stderr}).WithValues("run", runID)
	if cfg.Debug {
		log.Info("Logging level set to DEBUG.")
	}

	api, err := newGlacierAPI(ctx, glacier.Options{
		Region:    cfg.Region,
		Profile:   cfg.Profile,
		AccountID: cfg.AccountID,
		Endpoint:  cfg.Endpoint,
	})
	if err != nil {
		failure := purge.NewError(purge.KindConnect, err)
		log.Error(failure, "Cannot connect to Glacier", "kind", purge.Code(err))
		return failure
	}

	clk := newClock()
	recorder := metrics.NewRecorder()
	purger := purge.New(api, log,
		purge.WithClock(clk),
		purge.WithRecorder(recorder),
		purge.WithRunID(runID),
		purge.WithOptions(purge.Options{
			PollInterval:  cfg.PollInterval,
			RetryCooldown: cfg.RetryCooldown,
			DeleteRetries: cfg.DeleteRetries,
			ProgressEvery: cfg.ProgressEvery,
		}),
	)

	if target == purge.ListSentinel {
		vaults, err := purger.ListVaults(ctx)
		if err != nil {
			log.Error(err, "Cannot list vaults", "kind", purge.Code(err))
			return err
		}
		renderVaults(stdout, vaults)
		return nil
	}

	summary, runErr := purger.Run(ctx, target)
	if runErr != nil {
		log.Error(runErr, "Purge aborted", "vault", target, "kind", purge.Code(runErr))
	}
	summary.Log(log.WithValues("vault", target))

	if cfg.ReportPath != "" {
		if err := summary.WriteFile(cfg.ReportPath); err != nil {
			log.Error(err, "Warning: cannot write run report")
		}
	}
	if cfg.MetricsFile != "" {
		if err := recorder.WriteTextfile(cfg.MetricsFile, float64(clk.Now().Unix())); err != nil {
			log.Error(err, "Warning: cannot write metrics")
		}
	}

	return runErr
}

func renderVaults(out io.Writer, vaults []glacier.Vault) {
	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.Style().Format.Footer = text.FormatDefault
	tw.AppendHeader(table.Row{"Account", "Name", "Archives", "Size", "Last Inventory"})
	for _, v := range vaults {
		tw.AppendRow(table.Row{v.AccountID, v.Name, v.NumberOfArchives, v.SizeInBytes, v.LastInventoryDate})
	}
	tw.AppendFooter(table.Row{"", fmt.Sprintf("%d vaults", len(vaults))})
	tw.Render()
}
