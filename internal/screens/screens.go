// Package screens models monitor geometry lookup. The real monitor
// list comes from whatever display system hosts the slideshow; the
// playback side only consumes pixel bounds.
package screens

import (
	"image"

	"github.com/charmbracelet/log"
)

// Screen is one attached monitor with its pixel bounds.
type Screen struct {
	Index  int
	Bounds image.Rectangle
}

// Provider lists the available monitors.
type Provider interface {
	Screens() []Screen
}

// Select picks the requested monitor. An out-of-range index falls back
// to the primary monitor with one warning, never an error.
func Select(list []Screen, index int) Screen {
	if len(list) == 0 {
		return Screen{Bounds: image.Rect(0, 0, 1920, 1080)}
	}
	if index < 0 || index >= len(list) {
		log.Warnf("monitor %d not available, using primary monitor", index)
		index = 0
	}
	return list[index]
}

// Static is a fixed monitor list, used when geometry comes from
// configuration rather than a live display connection.
type Static struct {
	list []Screen
}

func NewStatic(screens ...Screen) *Static {
	return &Static{list: screens}
}

func (s *Static) Screens() []Screen {
	return s.list
}
