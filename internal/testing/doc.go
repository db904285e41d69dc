// Package testing provides test utilities and fixtures shared by unit tests.
//
//   - FakeClock: a clock.Clock whose timers fire immediately and record
//     every requested sleep, so poll and retry loops run instantly
//   - InventoryJSON: builds Glacier inventory job output documents
//   - TestContext: a context bounded by a test timeout
//
// Usage:
//
//	clk := testing.NewFakeClock(time.Now())
//	p := purge.New(api, logger, purge.WithClock(clk))
//	...
//	assert.Equal(t, []time.Duration{30 * time.Minute}, clk.Sleeps())
package testing
