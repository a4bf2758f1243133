package tiles

import "time"

// FrameCounter counts frames and reports the count once per second.
// There is no smoothing: each report is the raw number of frames seen
// since the previous one.
type FrameCounter struct {
	last   time.Time
	frames int
}

// Tick registers one frame at now. It returns the frame count of the
// elapsed second and true when a report is due.
func (c *FrameCounter) Tick(now time.Time) (int, bool) {
	if c.last.IsZero() {
		c.last = now
	}

	var (
		count int
		due   bool
	)
	if now.Sub(c.last) >= time.Second {
		count, due = c.frames, true
		c.last = now
		c.frames = 0
	}
	c.frames++
	return count, due
}
