package imageio

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// FileCache provides thread-safe caching of image file contents to avoid
// redundant disk reads.
//
// The cache stores raw file bytes keyed by path. Every Load stats the file
// and rereads it when its size or modification time differs from the cached
// entry, so edits on disk are picked up without an explicit Evict.
//
// # Memory Management
//
// Cached files remain in memory until explicitly removed via Evict() or Clear().
type FileCache struct {
	mu    sync.RWMutex
	files map[string]cacheEntry
}

type cacheEntry struct {
	data    []byte
	size    int64
	modTime time.Time
}

// NewFileCache creates and initializes a new empty cache.
func NewFileCache() *FileCache {
	return &FileCache{
		files: make(map[string]cacheEntry),
	}
}

// Load returns the contents of path, reading it from disk on first use and
// whenever the file has changed since it was cached.
//
// The returned slice is shared with the cache and must not be modified.
func (c *FileCache) Load(path string) ([]byte, error) {
	fi, err := os.Stat(path)
	if err != nil {
		c.Evict(path)
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	c.mu.RLock()
	entry, ok := c.files[path]
	c.mu.RUnlock()
	if ok && entry.size == fi.Size() && entry.modTime.Equal(fi.ModTime()) {
		return entry.data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	c.mu.Lock()
	c.files[path] = cacheEntry{data: data, size: fi.Size(), modTime: fi.ModTime()}
	c.mu.Unlock()

	return data, nil
}

// Clear removes all entries from the cache.
func (c *FileCache) Clear() {
	c.mu.Lock()
	c.files = make(map[string]cacheEntry)
	c.mu.Unlock()
}

// Evict removes a specific entry by its path. Unknown paths are ignored.
func (c *FileCache) Evict(path string) {
	c.mu.Lock()
	delete(c.files, path)
	c.mu.Unlock()
}
