// Package render defines the surface that composited frames are handed
// to. Window and fullscreen management live behind this interface; the
// playback side never sees toolkit types.
package render

import (
	"image"
)

// Presenter receives one composited RGBA frame per paint tick.
type Presenter interface {
	Present(frame *image.RGBA) error // display the frame, blocking until shown
	Size() (int, int)                // current output dimensions in pixels
	Cleanup()                        // release display resources
}

// Null discards frames. Used headless and in tests.
type Null struct {
	Width  int
	Height int
}

func (n *Null) Present(*image.RGBA) error { return nil }

func (n *Null) Size() (int, int) {
	return n.Width, n.Height
}

func (n *Null) Cleanup() {}
