// Package session persists the "remembered" signed in email in a
// single local file. Presence of the marker is the only thing that
// counts as being logged in: the identity provider is never asked
// again, matching the original product behavior.
package session

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Store is a file-backed single key-value slot for the session email.
type Store struct {
	path string
}

func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("empty session file path")
	}
	return &Store{path: path}, nil
}

// Login remembers the email, surviving process restarts.
func (s *Store) Login(email string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(email), 0o600)
}

// Logout clears the marker. Logging out twice is not an error.
func (s *Store) Logout() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Current returns the remembered email and whether one is stored.
func (s *Store) Current() (string, bool) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	email := strings.TrimSpace(string(b))
	return email, email != ""
}

// IsLoggedIn reports presence of the stored email.
func (s *Store) IsLoggedIn() bool {
	_, ok := s.Current()
	return ok
}
