package purge

import (
	"context"
	"io"

	"github.com/imamik/glacier-purge/internal/platform/glacier"
)

// API is the set of Glacier operations a run needs.
type API interface {
	ListVaults(ctx context.Context) ([]glacier.Vault, error)
	DescribeVault(ctx context.Context, name string) (*glacier.Vault, error)
	ListJobs(ctx context.Context, vaultName string) ([]glacier.Job, error)
	InitiateInventoryRetrieval(ctx context.Context, vaultName string) (string, error)
	DescribeJob(ctx context.Context, vaultName, jobID string) (*glacier.Job, error)
	GetJobOutput(ctx context.Context, vaultName, jobID string) (io.ReadCloser, error)
	DeleteArchive(ctx context.Context, vaultName, archiveID string) error
	DeleteVault(ctx context.Context, vaultName string) error
}

var _ API = (*glacier.Client)(nil)

// Recorder receives counters about a run.
type Recorder interface {
	ObservePoll(status string)
	ObserveDeleteAttempt()
	ObserveArchive(result string)
	ObserveVaultDeletion(ok bool)
}

type nopRecorder struct{}

func (nopRecorder) ObservePoll(string)        {}
func (nopRecorder) ObserveDeleteAttempt()     {}
func (nopRecorder) ObserveArchive(string)     {}
func (nopRecorder) ObserveVaultDeletion(bool) {}
