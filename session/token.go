// Package session holds everything the client keeps on disk between runs:
// the bearer token and the anonymous device identity.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileTokenStore persists the bearer token under the data directory so a
// session survives restarts. Implements client.TokenStore.
type FileTokenStore struct {
	path string

	mu     sync.Mutex
	token  string
	loaded bool
}

// NewFileTokenStore creates the data directory if needed and returns a store
// backed by a single token file with 0600 permissions.
func NewFileTokenStore(dataDir string) (*FileTokenStore, error) {
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return &FileTokenStore{path: filepath.Join(dataDir, "token")}, nil
}

// Token returns the persisted token, or "" when logged out
func (s *FileTokenStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		if raw, err := os.ReadFile(s.path); err == nil {
			s.token = strings.TrimSpace(string(raw))
		}
		s.loaded = true
	}
	return s.token
}

// SetToken writes the token to disk and updates the in-memory copy
func (s *FileTokenStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}
	s.token = token
	s.loaded = true
	return nil
}

// Clear removes the persisted token
func (s *FileTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token: %w", err)
	}
	s.token = ""
	s.loaded = true
	return nil
}
