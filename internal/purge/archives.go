package purge

import (
	"context"
	"time"

	"github.com/go-logr/logr"

	"github.com/imamik/glacier-purge/internal/metrics"
	"github.com/imamik/glacier-purge/internal/util/retry"
)

// deleteArchives deletes the archives in inventory order. Only cancellation
// stops the loop early.
func (p *Purger) deleteArchives(ctx context.Context, log logr.Logger, vaultName string, archives []ArchiveRecord, summary *Summary) error {
	log.Info("Removing archives... please be patient, this may take some time...", "archives", len(archives))
	summary.ArchivesTotal = len(archives)

	for i, archive := range archives {
		if err := ctx.Err(); err != nil {
			return NewError(KindCanceled, err)
		}

		result, err := p.deleteArchive(ctx, log, vaultName, archive.ArchiveID)
		if err != nil {
			return err
		}
		p.metrics.ObserveArchive(result)

		switch result {
		case metrics.ResultSkipped:
			summary.ArchivesSkipped++
		case metrics.ResultDeleted:
			summary.ArchivesDeleted++
		case metrics.ResultRetried:
			summary.ArchivesDeleted++
			summary.ArchivesRetried++
		case metrics.ResultFailed:
			summary.ArchivesFailed++
			summary.FailedArchiveIDs = append(summary.FailedArchiveIDs, archive.ArchiveID)
		}

		if p.opts.ProgressEvery > 0 && (i+1)%p.opts.ProgressEvery == 0 {
			log.Info("Archive removal progress", "processed", i+1, "total", len(archives), "failed", summary.ArchivesFailed)
		}
	}
	return nil
}

// deleteArchive returns the metrics result for one archive. An empty id is
// treated as already gone. The returned error is only set on cancellation.
func (p *Purger) deleteArchive(ctx context.Context, log logr.Logger, vaultName, archiveID string) (string, error) {
	if archiveID == "" {
		return metrics.ResultSkipped, nil
	}
	log.V(1).Info("Remove archive", "archive", archiveID)

	attempts := 0
	err := retry.Do(ctx, func() error {
		attempts++
		if attempts > 1 {
			log.Info("Retry to remove archive", "archive", archiveID, "attempt", attempts)
		}
		p.metrics.ObserveDeleteAttempt()
		return p.api.DeleteArchive(ctx, vaultName, archiveID)
	},
		retry.WithMaxRetries(p.opts.DeleteRetries),
		retry.WithFixedDelay(p.opts.RetryCooldown),
		retry.WithClock(p.clock),
		retry.WithNotify(func(_ int, delay time.Duration, err error) {
			log.Error(err, "Archive removal failed", "archive", archiveID, "kind", Code(err))
			log.Info("Sleeping before retrying...", "archive", archiveID, "cooldown", delay)
		}),
	)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", NewError(KindCanceled, ctxErr)
		}
		failure := NewError(KindDeleteArchive, err)
		log.Error(failure, "Cannot remove archive", "archive", archiveID, "kind", Code(err))
		return metrics.ResultFailed, nil
	}

	if attempts > 1 {
		log.Info("Successfully removed archive", "archive", archiveID)
		return metrics.ResultRetried, nil
	}
	return metrics.ResultDeleted, nil
}
