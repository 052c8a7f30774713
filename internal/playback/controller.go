// Package playback owns the slideshow state machine: the ordered image
// list, the current position, pause and failure tracking, and the
// debounced reconciliation that follows folder changes. All state is
// mutated from a single goroutine (the Run loop); none of the data
// structures tolerate concurrent writers.
package playback

import (
	"fmt"
	"image"
	"math/rand/v2"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"

	"github.com/slidedrift/slidedrift/internal/compositor"
	"github.com/slidedrift/slidedrift/internal/frame"
	"github.com/slidedrift/slidedrift/internal/library"
	"github.com/slidedrift/slidedrift/internal/render"
)

// State is the controller's coarse playback state.
type State string

const (
	StateEmpty         State = "empty"
	StateShowing       State = "showing"
	StateTransitioning State = "transitioning"
	StatePaused        State = "paused"
	StateStalled       State = "stalled"
)

// Config carries the playback settings resolved by the CLI layer.
type Config struct {
	Folders            []string
	Duration           time.Duration
	Transition         compositor.Kind
	TransitionDuration time.Duration
	TransitionSteps    int
	Shuffle            bool
	MaxFailures        int
	Debounce           time.Duration
	CanvasWidth        int
	CanvasHeight       int
	MaxCacheEntries    int
	MaxCacheBytes      int64
}

// Deps are the controller's collaborators. Zero values get production
// defaults; tests inject fakes.
type Deps struct {
	Clock     clockwork.Clock
	Rand      *rand.Rand
	Decoder   library.Decoder
	Presenter render.Presenter
	Scan      func() ([]library.Entry, error)
	Changes   <-chan struct{}
}

// Controller is the playback state machine.
type Controller struct {
	cfg Config

	clock     clockwork.Clock
	rng       *rand.Rand
	decoder   library.Decoder
	presenter render.Presenter
	scan      func() ([]library.Entry, error)
	changes   <-chan struct{}

	entries       []library.Entry
	index         int
	paused        bool
	stalled       bool
	failures      int
	lastShownPath string

	currentSrc *frame.Source
	nextSrc    *frame.Source
	activeDir  compositor.Direction

	fitCache    *frame.FitCache
	canvasCache *frame.CanvasCache
	tclock      *compositor.Clock
	canvas      *image.RGBA

	slideTimer    clockwork.Timer
	debounceTimer clockwork.Timer
	ticker        clockwork.Ticker

	cmds   chan Command
	status string

	snapMu sync.Mutex
	snap   Snapshot
}

func New(cfg Config, deps Deps) *Controller {
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if deps.Decoder == nil {
		deps.Decoder = library.FileDecoder{}
	}
	if deps.Presenter == nil {
		deps.Presenter = &render.Null{Width: cfg.CanvasWidth, Height: cfg.CanvasHeight}
	}
	if deps.Scan == nil {
		folders := cfg.Folders
		deps.Scan = func() ([]library.Entry, error) { return library.Scan(folders) }
	}
	if cfg.MaxFailures <= 0 {
		cfg.MaxFailures = 3
	}
	if cfg.TransitionSteps <= 0 {
		cfg.TransitionSteps = 20
	}

	c := &Controller{
		cfg:       cfg,
		clock:     deps.Clock,
		rng:       deps.Rand,
		decoder:   deps.Decoder,
		presenter: deps.Presenter,
		scan:      deps.Scan,
		changes:   deps.Changes,
		index:     -1,
		tclock:    compositor.NewClock(),
		cmds:      make(chan Command, 8),
		canvas:    image.NewRGBA(image.Rect(0, 0, cfg.CanvasWidth, cfg.CanvasHeight)),
	}
	c.fitCache = frame.NewFitCache(cfg.MaxCacheEntries, cfg.MaxCacheBytes)
	c.canvasCache = frame.NewCanvasCache(cfg.MaxCacheEntries, cfg.MaxCacheBytes,
		cfg.CanvasWidth, cfg.CanvasHeight, compositor.Background)

	c.slideTimer = c.clock.NewTimer(time.Hour)
	c.slideTimer.Stop()
	c.debounceTimer = c.clock.NewTimer(time.Hour)
	c.debounceTimer.Stop()
	return c
}

// Load replaces the image list wholesale and resets position. Used for
// the initial load; later reloads go through Reconcile.
func (c *Controller) Load(entries []library.Entry) {
	library.Order(entries, c.cfg.Shuffle, c.rng)
	c.entries = entries
	c.index = -1
	c.failures = 0
	c.stalled = false
	c.tclock.Reset()
}

// Advance moves the index by delta with wraparound in both directions
// and attempts to display the image there. Input arriving while a
// transition is active is dropped; the in-flight transition always runs
// to completion.
func (c *Controller) Advance(delta int) {
	if c.tclock.Running() {
		return
	}
	c.stopSlideTimer()
	if len(c.entries) == 0 {
		c.setStatus("no images in folder - last image remains displayed")
		return
	}
	c.index = mod(c.index+delta, len(c.entries))
	c.attemptDisplay()
}

// attemptDisplay decodes the image at the current index. Failures skip
// forward without resetting the counter until the stall threshold.
func (c *Controller) attemptDisplay() {
	entry := c.entries[c.index]
	img, err := c.decoder.Decode(entry.Path)
	if err != nil {
		log.Errorf("error loading image %s: %v", entry.Path, err)
		c.failures++
		if c.failures >= c.cfg.MaxFailures {
			c.stalled = true
			c.stopSlideTimer()
			c.setStatus("slideshow stalled: too many image load failures")
			log.Error("too many consecutive image load failures, stalling")
			return
		}
		c.index = mod(c.index+1, len(c.entries))
		c.attemptDisplay()
		return
	}

	c.failures = 0
	c.stalled = false
	c.lastShownPath = entry.Path
	src := frame.NewSource(img)

	// The very first image of a session and single-image lists are
	// shown directly, without a transition.
	if c.currentSrc == nil || len(c.entries) == 1 {
		c.currentSrc = src
		c.nextSrc = nil
		c.armSlideTimer()
		c.setPositionStatus()
		return
	}

	c.startTransition(src)
	c.setPositionStatus()
}

// startTransition arms the clock and ticker for a transition to src.
// Rejected as a no-op if a transition is already active.
func (c *Controller) startTransition(src *frame.Source) bool {
	interval, ok := c.tclock.Start(c.cfg.TransitionDuration, c.cfg.TransitionSteps)
	if !ok {
		return false
	}
	c.nextSrc = src
	c.activeDir = compositor.DirectionFor(c.cfg.Transition, c.rng)
	c.ticker = c.clock.NewTicker(interval)
	return true
}

// tickTransition advances one animation step. On completion the next
// frame is promoted to current and the slide timer re-arms.
func (c *Controller) tickTransition() {
	_, done := c.tclock.Tick()
	if !done {
		return
	}
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
	c.currentSrc = c.nextSrc
	c.nextSrc = nil
	c.armSlideTimer()
}

// TogglePause flips the paused flag. Pausing stops the slide timer and
// clears both caches to bound memory; resuming re-arms the full
// duration.
func (c *Controller) TogglePause() {
	c.paused = !c.paused
	if c.paused {
		c.stopSlideTimer()
		c.fitCache.Clear()
		c.canvasCache.Clear()
		c.setStatus("slideshow paused")
		return
	}
	c.setStatus("slideshow resumed")
	c.armSlideTimer()
}

// Reconcile replaces the image list with a freshly enumerated set and
// re-seats playback against it.
func (c *Controller) Reconcile(newEntries []library.Entry) {
	library.Order(newEntries, c.cfg.Shuffle, c.rng)

	var prevPath string
	if c.index >= 0 && c.index < len(c.entries) {
		prevPath = c.entries[c.index].Path
	}
	wasEmpty := len(c.entries) == 0
	wasStalled := c.stalled

	if len(newEntries) == 0 {
		c.entries = nil
		c.index = -1
		c.stopSlideTimer()
		c.setStatus("no images remain - last image remains displayed")
		log.Warn("all images are gone, keeping the last frame on screen")
		return
	}

	c.entries = newEntries

	if wasEmpty {
		c.index = -1
		c.failures = 0
		c.stalled = false
		c.Advance(+1)
		return
	}

	if prevPath != "" {
		if pos := entryIndex(newEntries, prevPath); pos >= 0 {
			// Still present: re-seat the index without redisplaying.
			c.index = pos
			c.setPositionStatus()
		} else {
			// Deleted: keep showing the last frame until the slide
			// timer naturally elapses.
			if c.index >= len(newEntries) {
				c.index = len(newEntries) - 1
			}
			c.setStatus(fmt.Sprintf("last image (deleted): %s - %d images remain",
				truncateName(prevPath), len(newEntries)))
		}
		if wasStalled {
			c.failures = 0
			c.stalled = false
			c.armSlideTimer()
		}
		return
	}

	c.index = -1
	c.failures = 0
	c.stalled = false
	c.Advance(+1)
}

// Resize drops every cached rendition; it is invoked when the viewport
// or output resolution changes.
func (c *Controller) Resize() {
	c.fitCache.Clear()
	c.canvasCache.Clear()
}

func (c *Controller) armSlideTimer() {
	if c.paused || c.stalled {
		return
	}
	c.slideTimer.Reset(c.cfg.Duration)
}

func (c *Controller) stopSlideTimer() {
	c.slideTimer.Stop()
}

// State derives the coarse playback state.
func (c *Controller) State() State {
	switch {
	case c.stalled:
		return StateStalled
	case c.paused:
		return StatePaused
	case c.tclock.Running():
		return StateTransitioning
	case len(c.entries) == 0 && c.currentSrc == nil:
		return StateEmpty
	default:
		return StateShowing
	}
}

func (c *Controller) setPositionStatus() {
	c.setStatus(fmt.Sprintf("image %d of %d: %s",
		c.index+1, len(c.entries), truncateName(c.entries[c.index].Path)))
}

func (c *Controller) setStatus(s string) {
	c.status = s
	log.Info(s)
}

func truncateName(path string) string {
	name := filepath.Base(path)
	if len(name) > 30 {
		name = name[:27] + "..."
	}
	return name
}

func entryIndex(entries []library.Entry, path string) int {
	for i, e := range entries {
		if e.Path == path {
			return i
		}
	}
	return -1
}

func mod(i, n int) int {
	m := i % n
	if m < 0 {
		m += n
	}
	return m
}
