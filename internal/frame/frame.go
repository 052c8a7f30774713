// Package frame provides scaled image frames and the bounded caches that
// hold them. Resampling with CatmullRom is expensive, so every scaled
// result is cached keyed on the decoded source and the target dimensions.
package frame

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Source wraps a decoded image and gives it a distinct identity. Two
// decodes of the same file are different sources; a cache entry made
// from a stale decode can never be confused with a fresh one.
type Source struct {
	img image.Image
}

func NewSource(img image.Image) *Source {
	return &Source{img: img}
}

func (s *Source) Image() image.Image {
	return s.img
}

func (s *Source) Bounds() image.Rectangle {
	return s.img.Bounds()
}

// Frame is an immutable resampled pixel buffer owned by its cache entry.
type Frame struct {
	Image  *image.RGBA
	Width  int
	Height int
}

// sizeBytes approximates the memory held by a frame, 4 bytes per pixel.
func (f *Frame) sizeBytes() int64 {
	return int64(f.Width) * int64(f.Height) * 4
}

// FitSize computes an aspect preserving fit of a source size into a
// target size. The wider dimension is clamped and the other derived,
// truncating to integer pixels.
func FitSize(srcW, srcH, targetW, targetH int) (int, int) {
	if srcW <= 0 || srcH <= 0 || targetW <= 0 || targetH <= 0 {
		return 0, 0
	}
	srcAspect := float64(srcW) / float64(srcH)
	targetAspect := float64(targetW) / float64(targetH)

	if srcAspect > targetAspect {
		w := targetW
		h := int(float64(w) / srcAspect)
		return w, h
	}
	h := targetH
	w := int(float64(h) * srcAspect)
	return w, h
}

// scaleFit resamples src into a new RGBA of the fitted size.
func scaleFit(src *Source, targetW, targetH int) *Frame {
	w, h := FitSize(src.Bounds().Dx(), src.Bounds().Dy(), targetW, targetH)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src.Image(), src.Bounds(), xdraw.Over, nil)
	return &Frame{Image: dst, Width: w, Height: h}
}

// scaleCanvas resamples src to fit inside a fixed canvas, centers it,
// and fills the surrounding letterbox or pillarbox bars with bg.
func scaleCanvas(src *Source, canvasW, canvasH int, bg color.Color) *Frame {
	w, h := FitSize(src.Bounds().Dx(), src.Bounds().Dy(), canvasW, canvasH)
	dst := image.NewRGBA(image.Rect(0, 0, canvasW, canvasH))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	x := (canvasW - w) / 2
	y := (canvasH - h) / 2
	fitted := image.Rect(x, y, x+w, y+h)
	xdraw.CatmullRom.Scale(dst, fitted, src.Image(), src.Bounds(), xdraw.Over, nil)
	return &Frame{Image: dst, Width: canvasW, Height: canvasH}
}
