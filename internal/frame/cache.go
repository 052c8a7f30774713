package frame

import (
	"image/color"
)

// cacheKey identifies one scaled rendition. Identity is the decoded
// source handle, not the path: reloading a file yields a new *Source
// and therefore a new key.
type cacheKey struct {
	src    *Source
	width  int
	height int
}

// cache is a bounded keyed store with strict insertion-order eviction.
// An entry that is hit repeatedly is not protected; the oldest inserted
// entry always goes first. This is deliberately simpler than LRU.
type cache struct {
	maxEntries int
	maxBytes   int64

	entries    map[cacheKey]*Frame
	order      []cacheKey
	totalBytes int64
}

// DefaultMaxEntries and DefaultMaxBytes bound each cache when the
// configuration leaves them unset.
const (
	DefaultMaxEntries = 10
	DefaultMaxBytes   = 100 * 1024 * 1024
)

func newCache(maxEntries int, maxBytes int64) cache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return cache{
		maxEntries: maxEntries,
		maxBytes:   maxBytes,
		entries:    make(map[cacheKey]*Frame),
	}
}

func (c *cache) get(k cacheKey) (*Frame, bool) {
	f, ok := c.entries[k]
	return f, ok
}

// put evicts while either bound is met, then inserts.
func (c *cache) put(k cacheKey, f *Frame) {
	for len(c.entries) >= c.maxEntries || c.totalBytes >= c.maxBytes {
		if !c.evictOldest() {
			break
		}
	}
	c.entries[k] = f
	c.order = append(c.order, k)
	c.totalBytes += f.sizeBytes()
}

func (c *cache) evictOldest() bool {
	if len(c.order) == 0 {
		return false
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	if f, ok := c.entries[oldest]; ok {
		c.totalBytes -= f.sizeBytes()
		delete(c.entries, oldest)
	}
	return true
}

func (c *cache) clear() {
	c.entries = make(map[cacheKey]*Frame)
	c.order = nil
	c.totalBytes = 0
}

func (c *cache) len() int {
	return len(c.entries)
}

// FitCache caches aspect-preserving fits of sources into arbitrary
// viewport dimensions. The key carries the requested dimensions, so a
// resize produces fresh entries (callers clear the cache on resize to
// drop the stale ones).
type FitCache struct {
	cache
}

func NewFitCache(maxEntries int, maxBytes int64) *FitCache {
	return &FitCache{cache: newCache(maxEntries, maxBytes)}
}

// GetOrCreate returns the cached fit of src into targetW x targetH,
// computing and inserting it on a miss.
func (c *FitCache) GetOrCreate(src *Source, targetW, targetH int) *Frame {
	k := cacheKey{src: src, width: targetW, height: targetH}
	if f, ok := c.get(k); ok {
		return f
	}
	f := scaleFit(src, targetW, targetH)
	c.put(k, f)
	return f
}

func (c *FitCache) Clear() { c.clear() }
func (c *FitCache) Len() int {
	return c.len()
}

// CanvasCache caches letterboxed renditions on a fixed-size canvas.
// The key always uses the canvas dimensions regardless of the current
// viewport, so entries survive fullscreen/windowed toggles.
type CanvasCache struct {
	cache
	canvasW int
	canvasH int
	bg      color.Color
}

func NewCanvasCache(maxEntries int, maxBytes int64, canvasW, canvasH int, bg color.Color) *CanvasCache {
	return &CanvasCache{
		cache:   newCache(maxEntries, maxBytes),
		canvasW: canvasW,
		canvasH: canvasH,
		bg:      bg,
	}
}

// GetOrCreate returns the cached canvas rendition of src, computing and
// inserting it on a miss.
func (c *CanvasCache) GetOrCreate(src *Source) *Frame {
	k := cacheKey{src: src, width: c.canvasW, height: c.canvasH}
	if f, ok := c.get(k); ok {
		return f
	}
	f := scaleCanvas(src, c.canvasW, c.canvasH, c.bg)
	c.put(k, f)
	return f
}

func (c *CanvasCache) Clear() { c.clear() }
func (c *CanvasCache) Len() int {
	return c.len()
}

// CanvasSize returns the fixed output dimensions.
func (c *CanvasCache) CanvasSize() (int, int) {
	return c.canvasW, c.canvasH
}
