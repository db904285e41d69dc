package purge

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"

	"github.com/imamik/glacier-purge/internal/platform/glacier"
)

// fakeAPI simulates the Glacier API and records every call in order.
type fakeAPI struct {
	mu    sync.Mutex
	calls []string

	vaults           []glacier.Vault
	listVaultsErr    error
	describeVaultErr error

	jobs          []glacier.Job
	listJobsErr   error
	initiateJobID string
	initiateErr   error

	// statuses are returned by DescribeJob in order; the last one repeats.
	statuses       []glacier.JobStatus
	statusMessage  string
	describeJobErr error

	output    []byte
	outputErr error

	// deleteErrs are returned by DeleteArchive per archive id, in order.
	deleteErrs     map[string][]error
	deleteVaultErr error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		initiateJobID: "job-new",
		statuses:      []glacier.JobStatus{glacier.StatusSucceeded},
		deleteErrs:    make(map[string][]error),
	}
}

func (f *fakeAPI) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

// Calls returns the recorded calls whose method matches prefix.
func (f *fakeAPI) Calls(prefix string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, c := range f.calls {
		if prefix == "" || strings.HasPrefix(c, prefix+" ") {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeAPI) ListVaults(_ context.Context) ([]glacier.Vault, error) {
	f.record("ListVaults -")
	return f.vaults, f.listVaultsErr
}

func (f *fakeAPI) DescribeVault(_ context.Context, name string) (*glacier.Vault, error) {
	f.record("DescribeVault " + name)
	if f.describeVaultErr != nil {
		return nil, f.describeVaultErr
	}
	return &glacier.Vault{Name: name, AccountID: "123456789012"}, nil
}

func (f *fakeAPI) ListJobs(_ context.Context, vaultName string) ([]glacier.Job, error) {
	f.record("ListJobs " + vaultName)
	return f.jobs, f.listJobsErr
}

func (f *fakeAPI) InitiateInventoryRetrieval(_ context.Context, vaultName string) (string, error) {
	f.record("InitiateInventoryRetrieval " + vaultName)
	if f.initiateErr != nil {
		return "", f.initiateErr
	}
	return f.initiateJobID, nil
}

func (f *fakeAPI) DescribeJob(_ context.Context, _, jobID string) (*glacier.Job, error) {
	f.record("DescribeJob " + jobID)
	if f.describeJobErr != nil {
		return nil, f.describeJobErr
	}

	f.mu.Lock()
	status := f.statuses[0]
	if len(f.statuses) > 1 {
		f.statuses = f.statuses[1:]
	}
	f.mu.Unlock()

	return &glacier.Job{
		ID:            jobID,
		Action:        glacier.ActionInventoryRetrieval,
		Status:        status,
		StatusMessage: f.statusMessage,
	}, nil
}

func (f *fakeAPI) GetJobOutput(_ context.Context, _, jobID string) (io.ReadCloser, error) {
	f.record("GetJobOutput " + jobID)
	if f.outputErr != nil {
		return nil, f.outputErr
	}
	return io.NopCloser(bytes.NewReader(f.output)), nil
}

func (f *fakeAPI) DeleteArchive(_ context.Context, _, archiveID string) error {
	f.record("DeleteArchive " + archiveID)

	f.mu.Lock()
	defer f.mu.Unlock()
	errs := f.deleteErrs[archiveID]
	if len(errs) == 0 {
		return nil
	}
	f.deleteErrs[archiveID] = errs[1:]
	return errs[0]
}

func (f *fakeAPI) DeleteVault(_ context.Context, vaultName string) error {
	f.record("DeleteVault " + vaultName)
	return f.deleteVaultErr
}

// fakeRecorder counts metric observations.
type fakeRecorder struct {
	mu       sync.Mutex
	polls    []string
	attempts int
	archives map[string]int
	vault    []bool
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{archives: make(map[string]int)}
}

func (r *fakeRecorder) ObservePoll(status string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.polls = append(r.polls, status)
}

func (r *fakeRecorder) ObserveDeleteAttempt() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attempts++
}

func (r *fakeRecorder) ObserveArchive(result string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.archives[result]++
}

func (r *fakeRecorder) ObserveVaultDeletion(ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vault = append(r.vault, ok)
}
