package library

import (
	"image"
	"image/png"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestScanFiltersExtensions(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.jpg")
	touch(t, dir, "b.PNG")
	touch(t, dir, "c.webp")
	touch(t, dir, "notes.txt")
	touch(t, dir, "noext")
	if err := os.Mkdir(filepath.Join(dir, "sub.jpg"), 0o755); err != nil {
		t.Fatal(err)
	}

	entries, err := Scan([]string{dir})
	if err != nil {
		t.Fatal(err)
	}

	got := make([]string, len(entries))
	for i, e := range entries {
		got[i] = filepath.Base(e.Path)
	}
	want := []string{"a.jpg", "b.PNG", "c.webp"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("scanned names mismatch (-want +got):\n%s", diff)
	}
}

func TestScanGroupIndexes(t *testing.T) {
	dir1 := t.TempDir()
	dir2 := t.TempDir()
	touch(t, dir1, "a.jpg")
	touch(t, dir2, "b.jpg")

	entries, err := Scan([]string{dir1, dir2})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}
	if entries[0].Group != 0 || entries[1].Group != 1 {
		t.Errorf("groups = %d,%d, want 0,1", entries[0].Group, entries[1].Group)
	}
}

func TestScanMissingFolders(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.jpg")

	if _, err := Scan([]string{"/does/not/exist", "/nor/this"}); err == nil {
		t.Error("Scan should fail when no configured folder exists")
	}

	entries, err := Scan([]string{"/does/not/exist", dir})
	if err != nil {
		t.Errorf("Scan with one live folder should succeed, got %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("len = %d, want 1", len(entries))
	}
}

func TestOrderGroupThenName(t *testing.T) {
	entries := []Entry{
		{Path: "/two/b.jpg", Group: 1},
		{Path: "/one/c.jpg", Group: 0},
		{Path: "/two/a.jpg", Group: 1},
		{Path: "/one/a.jpg", Group: 0},
	}
	Order(entries, false, nil)

	want := []Entry{
		{Path: "/one/a.jpg", Group: 0},
		{Path: "/one/c.jpg", Group: 0},
		{Path: "/two/a.jpg", Group: 1},
		{Path: "/two/b.jpg", Group: 1},
	}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestOrderShuffleDeterministic(t *testing.T) {
	mk := func() []Entry {
		return []Entry{
			{Path: "a"}, {Path: "b"}, {Path: "c"}, {Path: "d"}, {Path: "e"},
		}
	}

	e1 := mk()
	Order(e1, true, rand.New(rand.NewPCG(7, 7)))
	e2 := mk()
	Order(e2, true, rand.New(rand.NewPCG(7, 7)))

	if diff := cmp.Diff(e1, e2); diff != "" {
		t.Errorf("same seed produced different permutations (-first +second):\n%s", diff)
	}
}

func TestFileDecoder(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.png")
	f, err := os.Create(good)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatal(err)
	}
	f.Close()

	bad := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(bad, []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}

	d := FileDecoder{}
	img, err := d.Decode(good)
	if err != nil {
		t.Fatalf("Decode(good) error: %v", err)
	}
	if img.Bounds().Dx() != 4 {
		t.Errorf("decoded width = %d, want 4", img.Bounds().Dx())
	}

	if _, err := d.Decode(bad); err == nil {
		t.Error("Decode(bad) should fail")
	}
	if _, err := d.Decode(filepath.Join(dir, "missing.png")); err == nil {
		t.Error("Decode(missing) should fail")
	}
}
