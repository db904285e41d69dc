package retry

import (
	"context"
	"fmt"
	"time"

	"github.com/juju/clock"
)

// Config holds retry configuration.
type Config struct {
	MaxRetries   int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
	Clock        clock.Clock
	Notify       NotifyFunc
}

// NotifyFunc is called after a failed attempt, before sleeping for delay.
// attempt is 1-based.
type NotifyFunc func(attempt int, delay time.Duration, err error)

// Option is a functional option for retry configuration.
type Option func(*Config)

// Do executes the operation, retrying it up to MaxRetries times after the
// first attempt. The delay starts at InitialDelay and is multiplied by
// Multiplier after every retry, capped at MaxDelay (zero means no cap).
// Context cancellation is respected while sleeping.
func Do(ctx context.Context, operation func() error, opts ...Option) error {
	cfg := &Config{
		MaxRetries:   5,
		InitialDelay: 1 * time.Second,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
		Clock:        clock.WallClock,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	delay := cfg.InitialDelay
	var lastErr error

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt == cfg.MaxRetries {
			break
		}

		if cfg.Notify != nil {
			cfg.Notify(attempt+1, delay, err)
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("context cancelled after %d attempts: %w", attempt+1, ctx.Err())
		case <-cfg.Clock.After(delay):
		}

		delay = time.Duration(float64(delay) * cfg.Multiplier)
		if cfg.MaxDelay > 0 && delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}
	}

	return fmt.Errorf("operation failed after %d attempts: %w", cfg.MaxRetries+1, lastErr)
}

// WithMaxRetries sets the maximum number of retries after the first attempt.
func WithMaxRetries(n int) Option {
	return func(c *Config) {
		if n < 0 {
			n = 0
		}
		c.MaxRetries = n
	}
}

// WithInitialDelay sets the initial delay between retries.
func WithInitialDelay(d time.Duration) Option {
	return func(c *Config) {
		c.InitialDelay = d
	}
}

// WithMaxDelay sets the maximum delay between retries.
func WithMaxDelay(d time.Duration) Option {
	return func(c *Config) {
		c.MaxDelay = d
	}
}

// WithMultiplier sets the backoff multiplier.
func WithMultiplier(m float64) Option {
	return func(c *Config) {
		c.Multiplier = m
	}
}

// WithFixedDelay sleeps the same duration before every retry.
func WithFixedDelay(d time.Duration) Option {
	return func(c *Config) {
		c.InitialDelay = d
		c.MaxDelay = 0
		c.Multiplier = 1
	}
}

// WithClock sets the clock used for sleeping between attempts.
func WithClock(clk clock.Clock) Option {
	return func(c *Config) {
		if clk != nil {
			c.Clock = clk
		}
	}
}

// WithNotify registers a callback invoked after each failed attempt that
// will be retried.
func WithNotify(fn NotifyFunc) Option {
	return func(c *Config) {
		c.Notify = fn
	}
}
