// Package retry re-runs operations that fail transiently.
//
// [Do] retries an operation up to a configured number of times, sleeping
// between attempts on an injectable [clock.Clock]. The delay may grow
// exponentially or stay fixed (multiplier 1). Archive deletion uses it with
// a single retry after a fixed cooldown.
package retry
