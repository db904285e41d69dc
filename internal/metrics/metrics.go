// Package metrics counts what a purge run did and exports the counters in
// the Prometheus text format, for node_exporter's textfile collector.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Archive deletion results.
const (
	ResultDeleted = "deleted"
	ResultRetried = "retried"
	ResultFailed  = "failed"
	ResultSkipped = "skipped"
)

// Recorder holds the counters of one run in a private registry.
type Recorder struct {
	registry *prometheus.Registry

	jobPolls         *prometheus.CounterVec
	archiveDeletions *prometheus.CounterVec
	deleteAttempts   prometheus.Counter
	vaultDeletions   *prometheus.CounterVec
	lastRunTimestamp prometheus.Gauge
}

// NewRecorder creates a Recorder with all collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		jobPolls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "glacier_purge",
				Subsystem: "inventory",
				Name:      "job_polls_total",
				Help:      "Inventory job status checks by observed status",
			},
			[]string{"status"},
		),
		archiveDeletions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "glacier_purge",
				Subsystem: "archive",
				Name:      "deletions_total",
				Help:      "Archives processed by result",
			},
			[]string{"result"},
		),
		deleteAttempts: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "glacier_purge",
				Subsystem: "archive",
				Name:      "delete_attempts_total",
				Help:      "DeleteArchive calls issued, retries included",
			},
		),
		vaultDeletions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "glacier_purge",
				Subsystem: "vault",
				Name:      "deletions_total",
				Help:      "Vault deletion attempts by result",
			},
			[]string{"result"},
		),
		lastRunTimestamp: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "glacier_purge",
				Name:      "last_run_timestamp_seconds",
				Help:      "Unix time at which the metrics were last written",
			},
		),
	}

	r.registry.MustRegister(
		r.jobPolls,
		r.archiveDeletions,
		r.deleteAttempts,
		r.vaultDeletions,
		r.lastRunTimestamp,
	)
	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObservePoll records one inventory job status check.
func (r *Recorder) ObservePoll(status string) {
	r.jobPolls.WithLabelValues(status).Inc()
}

// ObserveDeleteAttempt records one DeleteArchive call.
func (r *Recorder) ObserveDeleteAttempt() {
	r.deleteAttempts.Inc()
}

// ObserveArchive records the final result for one archive.
func (r *Recorder) ObserveArchive(result string) {
	r.archiveDeletions.WithLabelValues(result).Inc()
}

// ObserveVaultDeletion records the vault deletion outcome.
func (r *Recorder) ObserveVaultDeletion(ok bool) {
	result := "success"
	if !ok {
		result = "error"
	}
	r.vaultDeletions.WithLabelValues(result).Inc()
}

// WriteTextfile stamps the run time and writes every metric to path
// atomically.
func (r *Recorder) WriteTextfile(path string, unixTime float64) error {
	r.lastRunTimestamp.Set(unixTime)
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
