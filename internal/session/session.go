// Package session holds the console's only piece of durable local state:
// the bearer token. It is modeled as an explicit store with Get/Set/Clear
// so the HTTP client core can be exercised without a real storage medium.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Store is the session token holder.
//
// Contract:
//   - Get returns the current token, or "" when no session exists.
//   - Set replaces the token.
//   - Clear removes the token; clearing an empty store is not an error.
//
// Callers must call Get at request time rather than caching the token,
// so a Clear performed by the 401 reaction is visible to the next call.
type Store interface {
	Get() (string, error)
	Set(token string) error
	Clear() error
}

// FileStore persists the token as a single file under the user's home
// directory. The file contains nothing but the token string.
type FileStore struct {
	path string
}

// DefaultTokenPath returns the standard token location, ~/.hrconsole/token.
func DefaultTokenPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".hrconsole", "token"), nil
}

// NewFileStore returns a FileStore rooted at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Get() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read token: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileStore) Set(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}

// MemStore is an in-memory Store for tests. It counts Clear calls so tests
// can assert the 401 reaction runs exactly once per failing request.
type MemStore struct {
	Token      string
	ClearCalls int
}

func (s *MemStore) Get() (string, error) {
	return s.Token, nil
}

func (s *MemStore) Set(token string) error {
	s.Token = token
	return nil
}

func (s *MemStore) Clear() error {
	s.Token = ""
	s.ClearCalls++
	return nil
}
