// Package session persists captured auth sessions and drives the browser
// flows that create them.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/ffb-cli/pkg/ffb"
)

// Store persists a single session record on disk. A record is either fully
// present (cookies, nonce, timestamp) or absent; corrupt or partial state
// reads as absent, never as an error.
type Store struct {
	path string
	now  func() time.Time
}

// NewStore creates a store writing to path.
func NewStore(path string) *Store {
	return &Store{path: path, now: time.Now}
}

// Save writes the record with owner-only permissions, creating parent
// directories as needed. Incomplete records are refused.
func (s *Store) Save(rec ffb.Session) error {
	if !rec.Complete() {
		return eris.New("session: refusing to persist incomplete session")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return eris.Wrap(err, "session: create config dir")
	}
	raw, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return eris.Wrap(err, "session: marshal")
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return eris.Wrap(err, "session: write")
	}
	return nil
}

// Load returns the stored record, or ok=false when none is usable.
func (s *Store) Load() (ffb.Session, bool) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return ffb.Session{}, false
	}
	var rec ffb.Session
	if err := json.Unmarshal(raw, &rec); err != nil {
		return ffb.Session{}, false
	}
	if !rec.Complete() || rec.CreatedAt.IsZero() {
		return ffb.Session{}, false
	}
	return rec, true
}

// Clear deletes the stored record; a missing file is a no-op.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return eris.Wrap(err, "session: clear")
	}
	return nil
}

// AgeHours reports how long ago the stored session was captured.
func (s *Store) AgeHours() (float64, bool) {
	rec, ok := s.Load()
	if !ok {
		return 0, false
	}
	return s.now().Sub(rec.CreatedAt).Hours(), true
}
