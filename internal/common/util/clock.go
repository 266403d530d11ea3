package util

import "time"

// Clock abstracts time.Now so components that measure wall-clock windows can
// be tested deterministically.
type Clock interface {
	Now() time.Time
}

type DefaultClock struct{}

func (c *DefaultClock) Now() time.Time { return time.Now() }

// DummyClock is a Clock whose time only moves when the test advances it.
type DummyClock struct {
	T time.Time
}

func (c *DummyClock) Now() time.Time {
	return c.T
}

func (c *DummyClock) Advance(d time.Duration) {
	c.T = c.T.Add(d)
}
