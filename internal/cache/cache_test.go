package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileCacheRoundTrip(t *testing.T) {
	c := NewFileCache(t.TempDir())

	require.NoError(t, c.Set("projections_HALF", map[string]int{"a": 1}))

	raw, ok := c.Get("projections_HALF", time.Hour)
	require.True(t, ok)

	var got map[string]int
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, map[string]int{"a": 1}, got)
}

func TestFileCacheMissOnAbsent(t *testing.T) {
	c := NewFileCache(t.TempDir())

	_, ok := c.Get("nothing", time.Hour)
	assert.False(t, ok)
}

func TestFileCacheTTLExpiry(t *testing.T) {
	c := NewFileCache(t.TempDir())
	now := time.Now()
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set("k", "v"))

	c.now = func() time.Time { return now.Add(2 * time.Hour) }
	_, ok := c.Get("k", time.Hour)
	assert.False(t, ok)

	c.now = func() time.Time { return now.Add(30 * time.Minute) }
	_, ok = c.Get("k", time.Hour)
	assert.True(t, ok)
}

func TestFileCacheCorruptEntryIsMiss(t *testing.T) {
	dir := t.TempDir()
	c := NewFileCache(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644))

	_, ok := c.Get("bad", time.Hour)
	assert.False(t, ok)
}

func TestFileCacheSanitizesKeys(t *testing.T) {
	dir := t.TempDir()
	c := NewFileCache(dir)

	require.NoError(t, c.Set("a/b?c&d", 1))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a_b_c_d.json", entries[0].Name())

	_, ok := c.Get("a/b?c&d", time.Hour)
	assert.True(t, ok)
}

func TestFileCacheClear(t *testing.T) {
	c := NewFileCache(t.TempDir())
	require.NoError(t, c.Set("one", 1))
	require.NoError(t, c.Set("two", 2))

	require.NoError(t, c.Clear())

	_, ok := c.Get("one", time.Hour)
	assert.False(t, ok)
	_, ok = c.Get("two", time.Hour)
	assert.False(t, ok)
}

func TestFileCacheClearEmptyDirIsNoop(t *testing.T) {
	c := NewFileCache(filepath.Join(t.TempDir(), "never-created"))
	assert.NoError(t, c.Clear())
}

func TestMemoryCache(t *testing.T) {
	m := NewMemory()
	now := time.Now()
	m.now = func() time.Time { return now }

	require.NoError(t, m.Set("k", []string{"x"}))

	raw, ok := m.Get("k", time.Minute)
	require.True(t, ok)
	assert.JSONEq(t, `["x"]`, string(raw))

	m.now = func() time.Time { return now.Add(2 * time.Minute) }
	_, ok = m.Get("k", time.Minute)
	assert.False(t, ok)

	require.NoError(t, m.Clear())
	m.now = func() time.Time { return now }
	_, ok = m.Get("k", time.Minute)
	assert.False(t, ok)
}
