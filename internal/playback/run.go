package playback

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"github.com/slidedrift/slidedrift/internal/library"
)

type CommandType string

const (
	CommandStop  CommandType = "stop"
	CommandNext  CommandType = "next"
	CommandPrev  CommandType = "prev"
	CommandPause CommandType = "pause"
	CommandLoad  CommandType = "load"
)

type Command struct {
	Type    CommandType
	Folders []string
}

// Snapshot is the externally visible playback state, safe to read from
// other goroutines.
type Snapshot struct {
	State    State  `json:"state"`
	Index    int    `json:"index"`
	Count    int    `json:"count"`
	Current  string `json:"current"`
	Status   string `json:"status"`
	Paused   bool   `json:"paused"`
	Failures int    `json:"failures"`
}

// Enqueue hands a command to the run loop. Safe from any goroutine.
func (c *Controller) Enqueue(cmd Command) {
	c.cmds <- cmd
}

// Snapshot returns the last published playback state.
func (c *Controller) Snapshot() Snapshot {
	c.snapMu.Lock()
	defer c.snapMu.Unlock()
	return c.snap
}

func (c *Controller) publish() {
	snap := Snapshot{
		State:    c.State(),
		Index:    c.index,
		Count:    len(c.entries),
		Current:  c.lastShownPath,
		Status:   c.status,
		Paused:   c.paused,
		Failures: c.failures,
	}
	c.snapMu.Lock()
	c.snap = snap
	c.snapMu.Unlock()
}

// Run performs the initial load and then serves timer fires, transition
// ticks, change notifications and commands from a single goroutine
// until stopped. The two fatal startup conditions surface as errors for
// the CLI layer to act on.
func (c *Controller) Run() error {
	entries, err := c.scan()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return errors.New("no images found in the configured folders")
	}
	c.Load(entries)
	c.Advance(+1)
	c.present()
	c.publish()

	for {
		var tickCh <-chan time.Time
		if c.ticker != nil {
			tickCh = c.ticker.Chan()
		}

		select {
		case cmd := <-c.cmds:
			switch cmd.Type {
			case CommandStop:
				log.Info("stopping playback")
				c.stopSlideTimer()
				c.debounceTimer.Stop()
				if c.ticker != nil {
					c.ticker.Stop()
				}
				c.presenter.Cleanup()
				return nil
			case CommandNext:
				c.Advance(+1)
			case CommandPrev:
				c.Advance(-1)
			case CommandPause:
				c.TogglePause()
			case CommandLoad:
				if len(cmd.Folders) > 0 {
					c.cfg.Folders = cmd.Folders
					folders := cmd.Folders
					c.scan = func() ([]library.Entry, error) { return library.Scan(folders) }
				}
				c.reconcileNow()
			default:
				log.Errorf("unknown command: %v", cmd.Type)
			}
		case <-c.slideTimer.Chan():
			c.Advance(+1)
		case <-tickCh:
			c.tickTransition()
		case <-c.debounceTimer.Chan():
			c.reconcileNow()
		case <-c.changes:
			// Each raw notification restarts the quiet interval, so a
			// burst of changes reconciles once.
			c.debounceTimer.Reset(c.cfg.Debounce)
		}

		c.present()
		c.publish()
	}
}

// reconcileNow re-enumerates the folders and reconciles the image list.
func (c *Controller) reconcileNow() {
	entries, err := c.scan()
	if err != nil {
		log.Warnf("reconciliation skipped: %v", err)
		return
	}
	c.Reconcile(entries)
}

func (c *Controller) present() {
	if err := c.presenter.Present(c.RenderCanvas()); err != nil {
		log.Errorf("present failed: %v", err)
	}
}
