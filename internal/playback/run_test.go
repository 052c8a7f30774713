package playback

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/slidedrift/slidedrift/internal/compositor"
	"github.com/slidedrift/slidedrift/internal/library"
)

func waitFor(t *testing.T, c *Controller, desc string, pred func(Snapshot) bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if pred(c.Snapshot()) {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s; last snapshot %+v", desc, c.Snapshot())
}

func TestRunLoop(t *testing.T) {
	var paths atomic.Value
	paths.Store([]string{"/pics/a.jpg", "/pics/b.jpg"})

	changes := make(chan struct{}, 1)
	cfg := Config{
		Duration:           20 * time.Millisecond,
		Transition:         compositor.KindFade,
		TransitionDuration: 5 * time.Millisecond,
		TransitionSteps:    5,
		MaxFailures:        3,
		Debounce:           5 * time.Millisecond,
		CanvasWidth:        32,
		CanvasHeight:       32,
		MaxCacheEntries:    10,
		MaxCacheBytes:      100 * 1024 * 1024,
	}
	c := New(cfg, Deps{
		Decoder: &stubDecoder{},
		Scan: func() ([]library.Entry, error) {
			return entriesOf(paths.Load().([]string)...), nil
		},
		Changes: changes,
	})

	done := make(chan error, 1)
	go func() { done <- c.Run() }()

	waitFor(t, c, "initial display", func(s Snapshot) bool {
		return s.Count == 2 && s.Current != ""
	})

	// The slide timer drives automatic advancement.
	first := c.Snapshot().Current
	waitFor(t, c, "automatic advance", func(s Snapshot) bool {
		return s.Current != first && s.State == StateShowing
	})

	// A folder change reconciles after the debounce interval.
	paths.Store([]string{"/pics/a.jpg", "/pics/b.jpg", "/pics/c.jpg"})
	changes <- struct{}{}
	waitFor(t, c, "reconciliation after change", func(s Snapshot) bool {
		return s.Count == 3
	})

	c.Enqueue(Command{Type: CommandPause})
	waitFor(t, c, "pause", func(s Snapshot) bool {
		return s.State == StatePaused
	})

	// Manual navigation still works while paused.
	atPause := c.Snapshot().Current
	c.Enqueue(Command{Type: CommandNext})
	waitFor(t, c, "manual advance while paused", func(s Snapshot) bool {
		return s.Paused && s.Current != atPause
	})

	c.Enqueue(Command{Type: CommandStop})
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() = %v, want nil on stop", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return after stop")
	}
}

func TestRunFailsWithoutImages(t *testing.T) {
	c := New(Config{CanvasWidth: 32, CanvasHeight: 32}, Deps{
		Decoder: &stubDecoder{},
		Scan:    func() ([]library.Entry, error) { return nil, nil },
	})
	if err := c.Run(); err == nil {
		t.Fatal("Run() = nil, want error when no images are found")
	}
}

func TestRunFailsOnScanError(t *testing.T) {
	scanErr := errors.New("folders unreadable")
	c := New(Config{CanvasWidth: 32, CanvasHeight: 32}, Deps{
		Decoder: &stubDecoder{},
		Scan:    func() ([]library.Entry, error) { return nil, scanErr },
	})
	if err := c.Run(); !errors.Is(err, scanErr) {
		t.Fatalf("Run() = %v, want %v", err, scanErr)
	}
}
