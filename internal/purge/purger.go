package purge

import (
	"context"
	"time"

	"github.com/go-logr/logr"
	"github.com/juju/clock"

	"github.com/imamik/glacier-purge/internal/platform/glacier"
)

// Options tunes the waits of a run.
type Options struct {
	// PollInterval is the wait between two job status checks.
	PollInterval time.Duration
	// RetryCooldown is the wait before retrying a failed archive deletion.
	RetryCooldown time.Duration
	// DeleteRetries is the number of retries after a failed archive deletion.
	DeleteRetries int
	// ProgressEvery logs progress every N archives; zero disables it.
	ProgressEvery int
}

// DefaultOptions returns the waits used by the CLI unless overridden.
func DefaultOptions() Options {
	return Options{
		PollInterval:  30 * time.Minute,
		RetryCooldown: 2 * time.Minute,
		DeleteRetries: 1,
		ProgressEvery: 1000,
	}
}

// Purger runs the vault deletion workflow against a Glacier API.
type Purger struct {
	api     API
	log     logr.Logger
	clock   clock.Clock
	metrics Recorder
	opts    Options
	runID   string
}

// Option configures a Purger.
type Option func(*Purger)

// WithClock sets the clock used for every wait.
func WithClock(clk clock.Clock) Option {
	return func(p *Purger) {
		p.clock = clk
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(p *Purger) {
		p.metrics = r
	}
}

// WithOptions replaces the default waits.
func WithOptions(opts Options) Option {
	return func(p *Purger) {
		p.opts = opts
	}
}

// WithRunID tags the summary with an identifier of the run.
func WithRunID(id string) Option {
	return func(p *Purger) {
		p.runID = id
	}
}

// New creates a Purger.
func New(api API, log logr.Logger, opts ...Option) *Purger {
	p := &Purger{
		api:     api,
		log:     log,
		clock:   clock.WallClock,
		metrics: nopRecorder{},
		opts:    DefaultOptions(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run deletes every archive of the named vault and then the vault itself.
//
// The returned Summary is never nil. A non-nil error is a fatal *Error from
// a step before the deletion phase, or a cancellation; archive and vault
// deletion failures are only reported in the Summary.
func (p *Purger) Run(ctx context.Context, vaultName string) (*Summary, error) {
	log := p.log.WithValues("vault", vaultName)
	summary := &Summary{
		RunID:     p.runID,
		Vault:     vaultName,
		Outcome:   OutcomeAborted,
		StartedAt: p.clock.Now(),
	}
	defer func() {
		summary.FinishedAt = p.clock.Now()
	}()

	vault, err := p.resolveVault(ctx, log, vaultName)
	if err != nil {
		return summary, err
	}

	jobID, err := p.findOrCreateJob(ctx, log, vault.Name)
	if err != nil {
		return summary, err
	}
	summary.JobID = jobID

	job, err := p.waitForJob(ctx, log, vault.Name, jobID, summary)
	if err != nil {
		return summary, err
	}
	summary.JobStatus = job.Status

	if job.Status != glacier.StatusSucceeded {
		log.Info("Vault inventory retrieval failed.", "job", jobID, "status", job.Status, "reason", job.StatusMessage)
		summary.Outcome = OutcomeInventoryFailed
		return summary, nil
	}

	inventory, err := p.fetchInventory(ctx, log, vault.Name, jobID)
	if err != nil {
		return summary, err
	}

	if err := p.deleteArchives(ctx, log, vault.Name, inventory.ArchiveList, summary); err != nil {
		return summary, err
	}

	p.deleteVault(ctx, log, vault.Name, summary)
	summary.Outcome = OutcomeCompleted
	return summary, nil
}
