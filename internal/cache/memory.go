package cache

import (
	"encoding/json"
	"time"

	"github.com/rotisserie/eris"
)

// Memory is an in-memory Cache for tests and places where disk persistence
// is unwanted.
type Memory struct {
	entries map[string]memEntry
	now     func() time.Time
}

type memEntry struct {
	ts      time.Time
	payload json.RawMessage
}

// NewMemory creates an empty in-memory cache.
func NewMemory() *Memory {
	return &Memory{entries: map[string]memEntry{}, now: time.Now}
}

// Get implements Cache.
func (m *Memory) Get(key string, ttl time.Duration) (json.RawMessage, bool) {
	e, ok := m.entries[key]
	if !ok || m.now().Sub(e.ts) > ttl {
		return nil, false
	}
	return e.payload, true
}

// Set implements Cache.
func (m *Memory) Set(key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return eris.Wrap(err, "cache: marshal payload")
	}
	m.entries[key] = memEntry{ts: m.now(), payload: payload}
	return nil
}

// Clear implements Cache.
func (m *Memory) Clear() error {
	m.entries = map[string]memEntry{}
	return nil
}
