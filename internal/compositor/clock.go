package compositor

import (
	"time"
)

// Clock drives a transition through a fixed number of discrete steps.
// It only counts; scheduling the ticks at the returned interval is the
// caller's job. A single clock serves the whole playback session.
type Clock struct {
	steps    int
	step     int
	running  bool
	progress float64
}

func NewClock() *Clock {
	return &Clock{}
}

// Start arms the clock for a transition of the given duration and step
// count and returns the tick interval. Starting while a transition is
// running is rejected; the in-flight transition always runs to
// completion.
func (c *Clock) Start(duration time.Duration, steps int) (time.Duration, bool) {
	if c.running {
		return 0, false
	}
	if steps <= 0 {
		steps = 1
	}
	c.steps = steps
	c.step = 0
	c.progress = 0
	c.running = true
	return duration / time.Duration(steps), true
}

// Tick advances one step. Progress is monotonically non-decreasing and
// terminates at exactly 1.0; done reports completion, after which the
// caller promotes the next frame to current.
func (c *Clock) Tick() (progress float64, done bool) {
	if !c.running {
		return c.progress, false
	}
	c.step++
	c.progress = float64(c.step) / float64(c.steps)
	if c.progress >= 1.0 {
		c.progress = 1.0
		c.running = false
		return c.progress, true
	}
	return c.progress, false
}

func (c *Clock) Running() bool {
	return c.running
}

func (c *Clock) Progress() float64 {
	return c.progress
}

// Reset abandons any running transition. Used when the image list is
// replaced wholesale.
func (c *Clock) Reset() {
	c.running = false
	c.step = 0
	c.progress = 0
}
