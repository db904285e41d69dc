package glacier

// JobStatus is the status code of a Glacier job.
type JobStatus string

// Job status codes reported by Glacier.
const (
	StatusInProgress JobStatus = "InProgress"
	StatusSucceeded  JobStatus = "Succeeded"
	StatusFailed     JobStatus = "Failed"
)

// Terminal reports whether the job has finished, successfully or not.
func (s JobStatus) Terminal() bool {
	return s != StatusInProgress
}

// Job actions reported by Glacier.
const (
	ActionInventoryRetrieval = "InventoryRetrieval"
	ActionArchiveRetrieval   = "ArchiveRetrieval"
	ActionSelect             = "Select"
)

// Vault describes a Glacier vault.
type Vault struct {
	Name              string
	AccountID         string
	ARN               string
	CreationDate      string
	LastInventoryDate string
	NumberOfArchives  int64
	SizeInBytes       int64
}

// Job describes a Glacier job.
type Job struct {
	ID             string
	Action         string
	Status         JobStatus
	StatusMessage  string
	CreationDate   string
	CompletionDate string
}

// IsInventoryRetrieval reports whether the job produces a vault inventory.
func (j Job) IsInventoryRetrieval() bool {
	return j.Action == ActionInventoryRetrieval
}
