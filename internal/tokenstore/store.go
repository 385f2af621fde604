// Package tokenstore persists session tokens issued after a successful login.
package tokenstore

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	appName       = "srpctl"
	dirMode       = 0o700
	tokenFileMode = 0o600 // Owner read/write only
)

// Store keeps one token per server URL in a private directory.
type Store struct {
	dir string
}

// NewStore creates a store in dir, creating it with 0700 permissions.
// An empty dir selects the user cache directory.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		cacheDir, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user cache directory: %w", err)
		}
		dir = filepath.Join(cacheDir, appName)
	}

	if err := os.MkdirAll(dir, dirMode); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	return &Store{dir: dir}, nil
}

// Dir returns the directory tokens are stored in.
func (s *Store) Dir() string {
	return s.dir
}

// Save stores the token for serverURL.
func (s *Store) Save(serverURL, token string) error {
	if err := os.WriteFile(s.path(serverURL), []byte(token), tokenFileMode); err != nil {
		return fmt.Errorf("failed to save session token: %w", err)
	}
	return nil
}

// Load returns the token for serverURL, or "" when none is stored.
func (s *Store) Load(serverURL string) (string, error) {
	data, err := os.ReadFile(s.path(serverURL)) // #nosec G304 - filename is derived from a hash of the URL
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read session token: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}

// Delete removes the token for serverURL. Deleting a missing token is not an error.
func (s *Store) Delete(serverURL string) error {
	if err := os.Remove(s.path(serverURL)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete session token: %w", err)
	}
	return nil
}

// path names the token file session-<first 16 hex chars of SHA-256(url)>.token.
// Trailing slashes do not change the name.
func (s *Store) path(serverURL string) string {
	sum := sha256.Sum256([]byte(strings.TrimRight(serverURL, "/")))
	return filepath.Join(s.dir, fmt.Sprintf("session-%x.token", sum[:8]))
}
