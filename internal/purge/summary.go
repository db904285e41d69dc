package purge

import (
	"fmt"
	"os"
	"time"

	"github.com/go-logr/logr"
	"gopkg.in/yaml.v3"

	"github.com/imamik/glacier-purge/internal/platform/glacier"
)

// Outcome is how a run ended.
type Outcome string

// Run outcomes.
const (
	// OutcomeCompleted means the archive pass ran and the vault deletion was
	// attempted, whether or not it succeeded.
	OutcomeCompleted Outcome = "completed"
	// OutcomeInventoryFailed means the inventory job ended in a state other
	// than Succeeded and nothing was deleted.
	OutcomeInventoryFailed Outcome = "inventory-failed"
	// OutcomeAborted means a fatal error or cancellation stopped the run.
	OutcomeAborted Outcome = "aborted"
)

// Summary reports what a run did.
type Summary struct {
	RunID     string            `yaml:"run_id,omitempty"`
	Vault     string            `yaml:"vault"`
	Outcome   Outcome           `yaml:"outcome"`
	JobID     string            `yaml:"job_id,omitempty"`
	JobStatus glacier.JobStatus `yaml:"job_status,omitempty"`
	Polls     int               `yaml:"polls"`

	ArchivesTotal    int      `yaml:"archives_total"`
	ArchivesSkipped  int      `yaml:"archives_skipped"`
	ArchivesDeleted  int      `yaml:"archives_deleted"`
	ArchivesRetried  int      `yaml:"archives_retried"`
	ArchivesFailed   int      `yaml:"archives_failed"`
	FailedArchiveIDs []string `yaml:"failed_archive_ids,omitempty"`

	VaultDeleted bool   `yaml:"vault_deleted"`
	VaultError   string `yaml:"vault_error,omitempty"`

	StartedAt  time.Time `yaml:"started_at"`
	FinishedAt time.Time `yaml:"finished_at"`
}

// Duration is the wall time of the run.
func (s *Summary) Duration() time.Duration {
	if s.FinishedAt.Before(s.StartedAt) {
		return 0
	}
	return s.FinishedAt.Sub(s.StartedAt)
}

// Log writes the summary as a single info line.
func (s *Summary) Log(log logr.Logger) {
	log.Info("Run summary",
		"outcome", s.Outcome,
		"job", s.JobID,
		"jobStatus", s.JobStatus,
		"archives", s.ArchivesTotal,
		"deleted", s.ArchivesDeleted,
		"retried", s.ArchivesRetried,
		"failed", s.ArchivesFailed,
		"skipped", s.ArchivesSkipped,
		"vaultDeleted", s.VaultDeleted,
		"duration", s.Duration().Round(time.Second),
	)
}

// WriteFile writes the summary to path as YAML.
func (s *Summary) WriteFile(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write summary to %s: %w", path, err)
	}
	return nil
}
