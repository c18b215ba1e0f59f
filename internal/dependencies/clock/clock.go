package clock

import "time"

// Clock provides time operations that can be mocked for testing
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock.
// Times are reported in UTC so stored timestamps carry a Z suffix.
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current UTC time
func (c *RealClock) Now() time.Time {
	return time.Now().UTC()
}

// Fixed is a Clock stuck at a settable instant
type Fixed struct {
	CurrentTime time.Time
}

// NewFixed creates a Fixed clock set to t
func NewFixed(t time.Time) *Fixed {
	return &Fixed{CurrentTime: t}
}

// Now returns the fixed time
func (c *Fixed) Now() time.Time {
	return c.CurrentTime
}

// Advance moves the clock forward by d
func (c *Fixed) Advance(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
}
