// Package session persists the bearer token issued by the community API.
//
// The browser build of this application kept the token in a 7-day cookie;
// here it lives in a single JSON file under the user config directory,
// readable by any other client process (cross-process visibility, no
// real-time synchronization).
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type record struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// FileStore is a file-backed session store.
type FileStore struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// DefaultPath returns the standard session file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "ubaevents", "session.json"), nil
}

// NewFileStore returns a FileStore writing to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, now: time.Now}
}

// Get returns the stored token. Read failures, a missing file, and an
// expired token all present as absent — Get never surfaces an error.
func (s *FileStore) Get() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return "", false
	}
	if rec.Token == "" || !s.now().Before(rec.ExpiresAt) {
		return "", false
	}
	return rec.Token, true
}

// Set persists the token with the given time-to-live, overwriting any prior
// value. The file is created with 0600 under a 0700 directory.
func (s *FileStore) Set(token string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	data, err := json.Marshal(record{Token: token, ExpiresAt: s.now().Add(ttl)})
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Clear removes the persisted token. Clearing an empty store is not an
// error.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

// IsAuthenticated reports whether a non-empty, unexpired token is stored.
func (s *FileStore) IsAuthenticated() bool {
	_, ok := s.Get()
	return ok
}
