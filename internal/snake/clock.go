package snake

import "time"

// Clock is read once per frame to decide tick eligibility.
type Clock interface {
	Now() time.Time
}

// SystemClock returns wall time with its monotonic reading.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock is a Clock that only moves when told to.
type ManualClock struct {
	t time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{t: start}
}

func (c *ManualClock) Now() time.Time { return c.t }

func (c *ManualClock) Set(t time.Time) { c.t = t }

func (c *ManualClock) Advance(d time.Duration) { c.t = c.t.Add(d) }
