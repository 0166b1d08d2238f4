package driver

import "time"

// Clock reports monotonic seconds elapsed since its previous call.
type Clock interface {
	Elapsed() float64
}

// WallClock reads the monotonic wall clock. The first call returns zero.
type WallClock struct {
	last time.Time
	now  func() time.Time
}

func NewWallClock() *WallClock {
	return &WallClock{now: time.Now}
}

func (c *WallClock) Elapsed() float64 {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
		return 0
	}
	d := t.Sub(c.last)
	c.last = t
	if d < 0 {
		return 0
	}
	return d.Seconds()
}

// FixedClock returns the same interval on every call. Headless runs use it
// to simulate a steady frame rate.
type FixedClock float64

func (c FixedClock) Elapsed() float64 { return float64(c) }
