// Package clock provides an injectable time source. The reconciler's
// "today" and "start of current month" come from a Clock rather than
// from time.Now directly, so tests can pin the reporting window.
package clock

import "time"

// Clock abstracts the current time. Production code injects Real();
// tests inject Fake() with a fixed instant.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Real returns a Clock backed by time.Now.
func Real() Clock { return realClock{} }

// FakeClock is a deterministic Clock for testing. Time stands still
// until Set or Advance is called.
type FakeClock struct {
	current time.Time
}

// Fake returns a FakeClock initialized to the given time.
func Fake(initial time.Time) *FakeClock {
	return &FakeClock{current: initial}
}

func (c *FakeClock) Now() time.Time { return c.current }

// Set moves the clock to the given instant.
func (c *FakeClock) Set(t time.Time) { c.current = t }

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) { c.current = c.current.Add(d) }
