package compositor

import (
	"testing"
	"time"
)

func TestClockInterval(t *testing.T) {
	c := NewClock()
	interval, ok := c.Start(500*time.Millisecond, 20)
	if !ok {
		t.Fatal("Start should succeed on an idle clock")
	}
	if interval != 25*time.Millisecond {
		t.Errorf("interval = %v, want 25ms", interval)
	}
}

func TestClockProgression(t *testing.T) {
	c := NewClock()
	c.Start(time.Second, 4)

	want := []float64{0.25, 0.5, 0.75, 1.0}
	prev := 0.0
	for i, w := range want {
		progress, done := c.Tick()
		if progress != w {
			t.Errorf("tick %d progress = %v, want %v", i+1, progress, w)
		}
		if progress < prev {
			t.Errorf("tick %d progress decreased: %v -> %v", i+1, prev, progress)
		}
		prev = progress
		if done != (i == len(want)-1) {
			t.Errorf("tick %d done = %v", i+1, done)
		}
	}

	if c.Running() {
		t.Error("clock should stop after reaching 1.0")
	}
	if c.Progress() != 1.0 {
		t.Errorf("final progress = %v, want exactly 1.0", c.Progress())
	}
}

func TestClockStartWhileRunningIsNoOp(t *testing.T) {
	c := NewClock()
	c.Start(time.Second, 10)
	c.Tick()
	c.Tick()
	c.Tick()

	if _, ok := c.Start(time.Second, 5); ok {
		t.Error("Start during an active transition should be rejected")
	}
	if got := c.Progress(); got != 0.3 {
		t.Errorf("progress = %v after rejected Start, want 0.3", got)
	}
}

func TestClockTickWhenIdle(t *testing.T) {
	c := NewClock()
	progress, done := c.Tick()
	if progress != 0 || done {
		t.Errorf("idle Tick() = %v, %v, want 0, false", progress, done)
	}
}
