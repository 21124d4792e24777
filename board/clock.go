package board

import "time"

// WallClock measures a decision against real time. Remaining is what the
// player had on the clock when the decision started.
type WallClock struct {
	start     time.Time
	remaining time.Duration
}

func NewWallClock(remaining time.Duration) *WallClock {
	return &WallClock{start: time.Now(), remaining: remaining}
}

func (c *WallClock) Elapsed() time.Duration {
	return time.Since(c.start)
}

func (c *WallClock) Remaining() time.Duration {
	return c.remaining - c.Elapsed()
}
