package purge

import (
	"context"

	"github.com/go-logr/logr"

	"github.com/imamik/glacier-purge/internal/platform/glacier"
)

// findOrCreateJob reuses an inventory-retrieval job of the vault whatever
// its status, and only starts a new one when none exists.
func (p *Purger) findOrCreateJob(ctx context.Context, log logr.Logger, vaultName string) (string, error) {
	log.Info("Getting jobs list...")

	jobs, err := p.api.ListJobs(ctx, vaultName)
	if err != nil {
		return "", NewError(KindListJobs, err)
	}

	var jobID string
	for _, job := range jobs {
		log.V(1).Info("Job", "job", job.ID, "action", job.Action, "status", job.Status)
		if job.IsInventoryRetrieval() {
			log.Info("Found existing inventory retrieval job...", "job", job.ID, "status", job.Status)
			jobID = job.ID
		}
	}

	if jobID == "" {
		log.Info("No existing job found, initiate inventory retrieval...")
		jobID, err = p.api.InitiateInventoryRetrieval(ctx, vaultName)
		if err != nil {
			return "", NewError(KindInitiateJob, err)
		}
	}

	log.V(1).Info("Job ID", "job", jobID)
	return jobID, nil
}

// waitForJob polls the job until its status is no longer InProgress. There
// is no attempt limit.
func (p *Purger) waitForJob(ctx context.Context, log logr.Logger, vaultName, jobID string, summary *Summary) (*glacier.Job, error) {
	for {
		job, err := p.api.DescribeJob(ctx, vaultName, jobID)
		if err != nil {
			return nil, NewError(KindDescribeJob, err)
		}
		summary.Polls++
		p.metrics.ObservePoll(string(job.Status))

		if job.Status.Terminal() {
			return job, nil
		}

		log.Info("Inventory not ready, sleeping...", "job", jobID, "interval", p.opts.PollInterval)
		select {
		case <-ctx.Done():
			return nil, NewError(KindCanceled, ctx.Err())
		case <-p.clock.After(p.opts.PollInterval):
		}
	}
}
