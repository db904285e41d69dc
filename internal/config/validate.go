package config

import (
	"fmt"
	"net/url"
)

// Validate checks the configuration for values the workflow cannot run with.
func (c *Config) Validate() error {
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive, got %s", c.PollInterval)
	}
	if c.RetryCooldown <= 0 {
		return fmt.Errorf("retry_cooldown must be positive, got %s", c.RetryCooldown)
	}
	if c.DeleteRetries < 0 {
		return fmt.Errorf("delete retries must not be negative, got %d", c.DeleteRetries)
	}
	if c.ProgressEvery < 0 {
		return fmt.Errorf("progress_every must not be negative, got %d", c.ProgressEvery)
	}
	if c.AccountID == "" {
		return fmt.Errorf("account_id must not be empty (use %q for the current account)", DefaultAccountID)
	}
	if c.Endpoint != "" {
		u, err := url.Parse(c.Endpoint)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("endpoint must be an absolute URL, got %q", c.Endpoint)
		}
	}
	return nil
}
