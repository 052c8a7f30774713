// Package library enumerates displayable images from the configured
// folders and decodes them.
package library

import (
	"bytes"
	"fmt"
	"image"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// Entry identifies one displayable image and which configured folder it
// came from. Entries are value objects; the list is replaced wholesale
// on every reload, never mutated in place.
type Entry struct {
	Path  string
	Group int
}

// extensions the scanner accepts. Matching lowers the file name first,
// which covers both cases on case-sensitive filesystems.
var extensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".bmp":  {},
	".webp": {},
}

// Scan enumerates images across the configured folders in order. A
// missing folder is logged and skipped; Scan fails only when none of
// the configured folders exist.
func Scan(folders []string) ([]Entry, error) {
	found := 0
	var entries []Entry
	for group, folder := range folders {
		dirents, err := os.ReadDir(folder)
		if err != nil {
			log.Warnf("skipping folder %s: %v", folder, err)
			continue
		}
		found++
		for _, d := range dirents {
			if d.IsDir() {
				continue
			}
			ext := strings.ToLower(filepath.Ext(d.Name()))
			if _, ok := extensions[ext]; !ok {
				continue
			}
			entries = append(entries, Entry{
				Path:  filepath.Join(folder, d.Name()),
				Group: group,
			})
		}
	}
	if found == 0 {
		return nil, fmt.Errorf("none of the %d configured folders exist", len(folders))
	}
	return entries, nil
}

// Order sorts entries by source group first, then by file name within
// the group, or applies one uniform random permutation when shuffling.
// The sort is stable and deterministic; the shuffle draws from the
// injected source so tests can pin the permutation.
func Order(entries []Entry, shuffle bool, rng *rand.Rand) {
	if shuffle {
		rng.Shuffle(len(entries), func(i, j int) {
			entries[i], entries[j] = entries[j], entries[i]
		})
		return
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Group != entries[j].Group {
			return entries[i].Group < entries[j].Group
		}
		ni, nj := filepath.Base(entries[i].Path), filepath.Base(entries[j].Path)
		if ni != nj {
			return ni < nj
		}
		return entries[i].Path < entries[j].Path
	})
}

// Decoder turns a path into a decoded image or a failure.
type Decoder interface {
	Decode(path string) (image.Image, error)
}

// FileDecoder reads and decodes an image file synchronously. A slow
// decode blocks the playback loop until it completes.
type FileDecoder struct{}

func (FileDecoder) Decode(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}
