package study

import "time"

// Clock supplies the current instant. It is injected into every component
// that computes day or week boundaries so that reports are deterministic
// under test and all components agree on what "today" means.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by time.Now.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock is a Clock pinned to a single instant, for tests.
type FixedClock struct {
	Instant time.Time
}

// Now returns the pinned instant.
func (c FixedClock) Now() time.Time { return c.Instant }
