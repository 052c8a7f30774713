package screens

import (
	"image"
	"testing"
)

func TestSelect(t *testing.T) {
	list := []Screen{
		{Index: 0, Bounds: image.Rect(0, 0, 1920, 1080)},
		{Index: 1, Bounds: image.Rect(1920, 0, 3840, 1080)},
	}

	if got := Select(list, 1); got.Index != 1 {
		t.Errorf("Select(list, 1).Index = %d, want 1", got.Index)
	}
	if got := Select(list, 5); got.Index != 0 {
		t.Errorf("Select(list, 5).Index = %d, want fallback to 0", got.Index)
	}
	if got := Select(list, -1); got.Index != 0 {
		t.Errorf("Select(list, -1).Index = %d, want fallback to 0", got.Index)
	}
}

func TestSelectEmptyList(t *testing.T) {
	got := Select(nil, 0)
	if got.Bounds.Dx() != 1920 || got.Bounds.Dy() != 1080 {
		t.Errorf("Select(nil, 0).Bounds = %v, want 1920x1080 default", got.Bounds)
	}
}

func TestStaticProvider(t *testing.T) {
	p := NewStatic(Screen{Index: 0, Bounds: image.Rect(0, 0, 800, 600)})
	if got := len(p.Screens()); got != 1 {
		t.Fatalf("len(Screens()) = %d, want 1", got)
	}
}
