// Package compositor renders the blended frame between a current and a
// next image as a pure function of transition kind and progress. It
// holds no state of its own; the playback controller owns the frames
// and drives progress through the clock.
package compositor

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math/rand/v2"

	"github.com/slidedrift/slidedrift/internal/frame"
)

// Kind names a transition effect.
type Kind string

const (
	KindNone        Kind = "none"
	KindFade        Kind = "fade"
	KindSlideLeft   Kind = "slide_left"
	KindSlideRight  Kind = "slide_right"
	KindSlideUp     Kind = "slide_up"
	KindSlideDown   Kind = "slide_down"
	KindSlideRandom Kind = "slide_random"
	KindBlinds      Kind = "blinds"
)

// ParseKind validates a configured transition name.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindNone, KindFade, KindSlideLeft, KindSlideRight,
		KindSlideUp, KindSlideDown, KindSlideRandom, KindBlinds:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown transition %q", s)
}

// Direction is the travel direction for the slide family.
type Direction string

const (
	DirLeft  Direction = "left"
	DirRight Direction = "right"
	DirUp    Direction = "up"
	DirDown  Direction = "down"
)

var slideDirections = []Direction{DirLeft, DirRight, DirUp, DirDown}

// PickDirection selects a uniform random slide direction. It is called
// once when a slide_random transition starts and the result is held for
// the transition's whole duration.
func PickDirection(rng *rand.Rand) Direction {
	return slideDirections[rng.IntN(len(slideDirections))]
}

// DirectionFor resolves the fixed direction of a slide kind, or picks a
// random one for slide_random. Non-slide kinds return DirRight, which
// is ignored.
func DirectionFor(kind Kind, rng *rand.Rand) Direction {
	switch kind {
	case KindSlideLeft:
		return DirLeft
	case KindSlideRight:
		return DirRight
	case KindSlideUp:
		return DirUp
	case KindSlideDown:
		return DirDown
	case KindSlideRandom:
		return PickDirection(rng)
	}
	return DirRight
}

// BlindsCount is the number of vertical strips for the blinds effect.
const BlindsCount = 40

// Background fills exposed output before frames are drawn.
var Background = color.RGBA{0, 0, 0, 255}

// centered returns where a frame sits when centered in rect.
func centered(f *frame.Frame, rect image.Rectangle) image.Rectangle {
	x := rect.Min.X + (rect.Dx()-f.Width)/2
	y := rect.Min.Y + (rect.Dy()-f.Height)/2
	return image.Rect(x, y, x+f.Width, y+f.Height)
}

func fill(dst *image.RGBA, rect image.Rectangle) {
	draw.Draw(dst, rect, image.NewUniform(Background), image.Point{}, draw.Src)
}

// drawAt draws f into dst at the given placement, clipped to rect.
func drawAt(dst *image.RGBA, rect, place image.Rectangle, f *frame.Frame) {
	clipped := place.Intersect(rect)
	if clipped.Empty() {
		return
	}
	sp := clipped.Min.Sub(place.Min)
	draw.Draw(dst, clipped, f.Image, sp, draw.Over)
}

// drawAlphaAt draws f at its placement with uniform opacity.
func drawAlphaAt(dst *image.RGBA, rect, place image.Rectangle, f *frame.Frame, alpha float64) {
	clipped := place.Intersect(rect)
	if clipped.Empty() {
		return
	}
	a := uint8(alpha*255 + 0.5)
	if a == 0 {
		return
	}
	sp := clipped.Min.Sub(place.Min)
	mask := image.NewUniform(color.Alpha{A: a})
	draw.DrawMask(dst, clipped, f.Image, sp, mask, image.Point{}, draw.Over)
}

// DrawSteady renders a single frame centered in rect over the
// background. It is also the output of every transition at progress 0
// (current) and 1 (next).
func DrawSteady(dst *image.RGBA, rect image.Rectangle, f *frame.Frame) {
	fill(dst, rect)
	if f != nil {
		drawAt(dst, rect, centered(f, rect), f)
	}
}

// Composite renders the transition between current and next at the
// given progress into rect. Progress exactly 0 is pure current and
// exactly 1 is pure next for every kind. dir applies only to the slide
// family.
func Composite(dst *image.RGBA, rect image.Rectangle, current, next *frame.Frame, kind Kind, progress float64, dir Direction) {
	if progress <= 0 {
		DrawSteady(dst, rect, current)
		return
	}
	if progress >= 1 {
		DrawSteady(dst, rect, next)
		return
	}

	fill(dst, rect)
	switch kind {
	case KindNone:
		if progress < 0.5 {
			drawAt(dst, rect, centered(current, rect), current)
		} else {
			drawAt(dst, rect, centered(next, rect), next)
		}
	case KindFade:
		drawAlphaAt(dst, rect, centered(current, rect), current, 1-progress)
		drawAlphaAt(dst, rect, centered(next, rect), next, progress)
	case KindBlinds:
		compositeBlinds(dst, rect, current, next, progress, BlindsCount)
	default:
		compositeSlide(dst, rect, current, next, progress, dir)
	}
}

// compositeSlide displaces the current frame out of the rect while the
// next frame arrives from the opposite edge, meeting exactly at
// progress 1. The travel extent is the rect dimension along the axis of
// motion, so both frames move in lockstep regardless of their sizes.
func compositeSlide(dst *image.RGBA, rect image.Rectangle, current, next *frame.Frame, progress float64, dir Direction) {
	curPlace := centered(current, rect)
	nextPlace := centered(next, rect)

	switch dir {
	case DirLeft:
		extent := rect.Dx()
		curPlace = curPlace.Add(image.Pt(-int(float64(extent)*progress), 0))
		nextPlace = nextPlace.Add(image.Pt(int(float64(extent)*(1-progress)), 0))
	case DirRight:
		extent := rect.Dx()
		curPlace = curPlace.Add(image.Pt(int(float64(extent)*progress), 0))
		nextPlace = nextPlace.Add(image.Pt(-int(float64(extent)*(1-progress)), 0))
	case DirUp:
		extent := rect.Dy()
		curPlace = curPlace.Add(image.Pt(0, -int(float64(extent)*progress)))
		nextPlace = nextPlace.Add(image.Pt(0, int(float64(extent)*(1-progress))))
	case DirDown:
		extent := rect.Dy()
		curPlace = curPlace.Add(image.Pt(0, int(float64(extent)*progress)))
		nextPlace = nextPlace.Add(image.Pt(0, -int(float64(extent)*(1-progress))))
	}

	drawAt(dst, rect, curPlace, current)
	drawAt(dst, rect, nextPlace, next)
}

// compositeBlinds draws the current frame as the base layer, then
// reveals the next frame through vertical strips. Even strips open from
// their left edge, odd strips from their right edge. Strip boundaries
// are integer pixel positions sharing each end with the next strip's
// start, so no 1-pixel gaps appear from rounding.
func compositeBlinds(dst *image.RGBA, rect image.Rectangle, current, next *frame.Frame, progress float64, count int) {
	drawAt(dst, rect, centered(current, rect), current)

	nextPlace := centered(next, rect)
	w := rect.Dx()
	for i := 0; i < count; i++ {
		start := rect.Min.X + i*w/count
		end := rect.Min.X + (i+1)*w/count
		stripW := end - start
		openW := int(float64(stripW) * progress)
		if openW <= 0 {
			continue
		}

		var open image.Rectangle
		if i%2 == 0 {
			open = image.Rect(start, rect.Min.Y, start+openW, rect.Max.Y)
		} else {
			open = image.Rect(end-openW, rect.Min.Y, end, rect.Max.Y)
		}

		clipped := open.Intersect(nextPlace).Intersect(rect)
		if clipped.Empty() {
			continue
		}
		sp := clipped.Min.Sub(nextPlace.Min)
		draw.Draw(dst, clipped, next.Image, sp, draw.Over)
	}
}
