package config

import "time"

// EnvPrefix prefixes every environment variable read by [Load].
const EnvPrefix = "GLACIER_PURGE"

// Defaults for the inventory workflow.
const (
	DefaultPollInterval  = 30 * time.Minute
	DefaultRetryCooldown = 2 * time.Minute
	DefaultDeleteRetries = 1
	DefaultProgressEvery = 1000
	// DefaultAccountID selects the account owning the credentials.
	DefaultAccountID = "-"
)

// Config holds the settings of one purge run.
type Config struct {
	// AWS connection. Empty values defer to the SDK default chain.
	Region    string `yaml:"region" envconfig:"REGION"`
	Profile   string `yaml:"profile" envconfig:"PROFILE"`
	AccountID string `yaml:"account_id" envconfig:"ACCOUNT_ID"`
	Endpoint  string `yaml:"endpoint" envconfig:"ENDPOINT"`

	// PollInterval is the wait between two inventory job status checks.
	PollInterval time.Duration `yaml:"poll_interval" envconfig:"POLL_INTERVAL"`
	// RetryCooldown is the wait before retrying a failed archive deletion.
	RetryCooldown time.Duration `yaml:"retry_cooldown" envconfig:"RETRY_COOLDOWN"`
	// DeleteRetries is fixed: a failed archive deletion is retried once.
	DeleteRetries int `yaml:"-" ignored:"true"`
	// ProgressEvery logs a progress line every N archives. Zero disables it.
	ProgressEvery int `yaml:"progress_every" envconfig:"PROGRESS_EVERY"`

	Debug       bool   `yaml:"debug" envconfig:"DEBUG"`
	ReportPath  string `yaml:"report" envconfig:"REPORT"`
	MetricsFile string `yaml:"metrics_file" envconfig:"METRICS_FILE"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		AccountID:     DefaultAccountID,
		PollInterval:  DefaultPollInterval,
		RetryCooldown: DefaultRetryCooldown,
		DeleteRetries: DefaultDeleteRetries,
		ProgressEvery: DefaultProgressEvery,
	}
}
