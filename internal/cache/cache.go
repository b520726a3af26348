// Package cache provides a flat TTL-checked key/value cache for upstream
// payloads. Entries are opaque JSON; staleness is evaluated on read only,
// there is no background eviction.
package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Cache stores opaque JSON payloads under string keys.
type Cache interface {
	// Get returns the payload for key if it is younger than ttl. A corrupt
	// or stale entry is a miss, never an error.
	Get(key string, ttl time.Duration) (json.RawMessage, bool)
	// Set stores v under key, replacing any previous entry.
	Set(key string, v any) error
	// Clear drops every entry.
	Clear() error
}

type entry struct {
	TS      int64           `json:"_ts"`
	Payload json.RawMessage `json:"payload"`
}

// FileCache keeps one JSON file per key under a directory.
type FileCache struct {
	dir string
	now func() time.Time
}

// NewFileCache creates a file-backed cache rooted at dir.
func NewFileCache(dir string) *FileCache {
	return &FileCache{dir: dir, now: time.Now}
}

var keySanitizer = strings.NewReplacer(
	"/", "_", "\\", "_", "?", "_", "&", "_", ":", "_", " ", "_",
)

func (c *FileCache) path(key string) string {
	return filepath.Join(c.dir, keySanitizer.Replace(key)+".json")
}

// Get implements Cache.
func (c *FileCache) Get(key string, ttl time.Duration) (json.RawMessage, bool) {
	raw, err := os.ReadFile(c.path(key))
	if err != nil {
		return nil, false
	}
	var e entry
	if err := json.Unmarshal(raw, &e); err != nil || e.TS == 0 || len(e.Payload) == 0 {
		return nil, false
	}
	age := c.now().Sub(time.Unix(e.TS, 0))
	if age > ttl {
		zap.L().Debug("cache entry stale", zap.String("key", key), zap.Duration("age", age))
		return nil, false
	}
	return e.Payload, true
}

// Set implements Cache.
func (c *FileCache) Set(key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return eris.Wrap(err, "cache: marshal payload")
	}
	raw, err := json.Marshal(entry{TS: c.now().Unix(), Payload: payload})
	if err != nil {
		return eris.Wrap(err, "cache: marshal entry")
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return eris.Wrap(err, "cache: create dir")
	}
	if err := os.WriteFile(c.path(key), raw, 0o644); err != nil {
		return eris.Wrap(err, "cache: write entry")
	}
	return nil
}

// Clear implements Cache.
func (c *FileCache) Clear() error {
	matches, err := filepath.Glob(filepath.Join(c.dir, "*.json"))
	if err != nil {
		return eris.Wrap(err, "cache: glob entries")
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil && !os.IsNotExist(err) {
			return eris.Wrap(err, "cache: remove entry")
		}
	}
	return nil
}
