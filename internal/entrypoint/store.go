// Package entrypoint manages the synthetic entry file of a plugin build:
// where it lives, what it re-exports, and clearing it once the build is done.
package entrypoint

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/spf13/afero"
)

// ErrNoEntryPoint is returned by Write when no entry path has been recorded.
var ErrNoEntryPoint = errors.New("no entry point known")

// Store records the entry file path of one build and overwrites its contents.
type Store struct {
	fs afero.Fs

	mu   sync.Mutex
	path string
}

// NewStore creates a Store writing through fs. A nil fs writes to the OS filesystem.
func NewStore(fs afero.Fs) *Store {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Store{fs: fs}
}

// SetPath records the entry file path. The most recent path wins.
func (s *Store) SetPath(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.path = path
}

// Path returns the recorded entry file path, or "" when none is known.
func (s *Store) Path() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path
}

// Write replaces the entry file contents. The write is synchronous so the
// bundler never reads a partially written shim.
func (s *Store) Write(contents string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return ErrNoEntryPoint
	}
	if err := afero.WriteFile(s.fs, s.path, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("writing entry point %s: %w", s.path, err)
	}
	return nil
}

// Clear empties the entry file. Clearing an already empty file is a no-op write.
func (s *Store) Clear() error {
	return s.Write("")
}

// Read returns the current entry file contents.
func (s *Store) Read() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return "", ErrNoEntryPoint
	}
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("entry point %s: %w", s.path, err)
		}
		return "", fmt.Errorf("reading entry point %s: %w", s.path, err)
	}
	return string(data), nil
}
