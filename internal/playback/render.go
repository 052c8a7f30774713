package playback

import (
	"image"

	"github.com/slidedrift/slidedrift/internal/compositor"
)

// Render draws the current steady frame, or the in-progress transition,
// into rect. Frames are fitted to the rect through the viewport cache.
func (c *Controller) Render(dst *image.RGBA, rect image.Rectangle) {
	if c.currentSrc == nil {
		compositor.DrawSteady(dst, rect, nil)
		return
	}
	cur := c.fitCache.GetOrCreate(c.currentSrc, rect.Dx(), rect.Dy())
	if c.tclock.Running() && c.nextSrc != nil {
		nxt := c.fitCache.GetOrCreate(c.nextSrc, rect.Dx(), rect.Dy())
		compositor.Composite(dst, rect, cur, nxt, c.cfg.Transition, c.tclock.Progress(), c.activeDir)
		return
	}
	compositor.DrawSteady(dst, rect, cur)
}

// RenderCanvas draws into the fixed-resolution output canvas, pulling
// letterboxed frames from the canvas cache. Those entries are keyed on
// the canvas dimensions, so they survive viewport changes.
func (c *Controller) RenderCanvas() *image.RGBA {
	rect := c.canvas.Bounds()
	if c.currentSrc == nil {
		compositor.DrawSteady(c.canvas, rect, nil)
		return c.canvas
	}
	cur := c.canvasCache.GetOrCreate(c.currentSrc)
	if c.tclock.Running() && c.nextSrc != nil {
		nxt := c.canvasCache.GetOrCreate(c.nextSrc)
		compositor.Composite(c.canvas, rect, cur, nxt, c.cfg.Transition, c.tclock.Progress(), c.activeDir)
		return c.canvas
	}
	compositor.DrawSteady(c.canvas, rect, cur)
	return c.canvas
}
