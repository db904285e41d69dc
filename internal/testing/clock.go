package testing

import (
	"sync"
	"time"

	"github.com/juju/clock"
)

// FakeClock implements clock.Clock. Every timer fires as soon as it is
// created and advances Now by the requested duration.
type FakeClock struct {
	mu     sync.Mutex
	now    time.Time
	sleeps []time.Duration
}

var _ clock.Clock = (*FakeClock)(nil)

// NewFakeClock creates a FakeClock starting at now.
func NewFakeClock(now time.Time) *FakeClock {
	return &FakeClock{now: now}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// After records d, advances the clock and returns an already fired channel.
func (c *FakeClock) After(d time.Duration) <-chan time.Time {
	return c.fire(d)
}

// AfterFunc records d, advances the clock and runs f synchronously.
func (c *FakeClock) AfterFunc(d time.Duration, f func()) clock.Timer {
	ch := c.fire(d)
	f()
	return &fakeTimer{ch: ch}
}

// NewTimer records d, advances the clock and returns a fired timer.
func (c *FakeClock) NewTimer(d time.Duration) clock.Timer {
	return &fakeTimer{ch: c.fire(d)}
}

// At waits until t, recorded as the duration from Now.
func (c *FakeClock) At(t time.Time) <-chan time.Time {
	return c.fire(c.until(t))
}

// AtFunc waits until t and runs f synchronously.
func (c *FakeClock) AtFunc(t time.Time, f func()) clock.Alarm {
	ch := c.fire(c.until(t))
	f()
	return &fakeAlarm{ch: ch}
}

// NewAlarm returns an alarm that has already fired at t.
func (c *FakeClock) NewAlarm(t time.Time) clock.Alarm {
	return &fakeAlarm{ch: c.fire(c.until(t))}
}

// Sleeps returns every duration waited on, in order.
func (c *FakeClock) Sleeps() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]time.Duration, len(c.sleeps))
	copy(out, c.sleeps)
	return out
}

// until returns the wait from now to t, or zero for a time in the past.
func (c *FakeClock) until(t time.Time) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d := t.Sub(c.now); d > 0 {
		return d
	}
	return 0
}

func (c *FakeClock) fire(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	c.sleeps = append(c.sleeps, d)
	ch := make(chan time.Time, 1)
	ch <- c.now
	return ch
}

type fakeTimer struct {
	ch <-chan time.Time
}

func (t *fakeTimer) Chan() <-chan time.Time  { return t.ch }
func (t *fakeTimer) Reset(time.Duration) bool { return false }
func (t *fakeTimer) Stop() bool               { return false }

type fakeAlarm struct {
	ch <-chan time.Time
}

func (a *fakeAlarm) Chan() <-chan time.Time { return a.ch }
func (a *fakeAlarm) Reset(time.Time) bool   { return false }
func (a *fakeAlarm) Stop() bool             { return false }
