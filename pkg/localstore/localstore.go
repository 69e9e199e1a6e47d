package localstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when a key has no stored value
var ErrNotFound = errors.New("localstore: key not found")

// Store is a file-backed key/value store for durable client state
// (tokens and identities). Each key is one file inside the state
// directory. Writes go through a temp file and rename, so readers
// never observe a half-written value.
type Store struct {
	dir string
}

// New creates the state directory if needed and returns a store over it
func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("state directory must not be empty")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}

	return &Store{dir: dir}, nil
}

// Get returns the stored value for key, or ErrNotFound
func (s *Store) Get(key string) (string, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return string(data), nil
}

// Set stores a single value under key
func (s *Store) Set(key, value string) error {
	return s.SetBatch(map[string]string{key: value})
}

// SetBatch stores several values together. All values are staged to
// temp files before any rename happens, so a failure mid-batch leaves
// every existing value untouched. This is what keeps the token and
// identity pair from being persisted one without the other.
func (s *Store) SetBatch(values map[string]string) error {
	staged := make(map[string]string, len(values))

	for key, value := range values {
		tmp, err := os.CreateTemp(s.dir, "."+key+"-*")
		if err != nil {
			removeStaged(staged)
			return fmt.Errorf("failed to stage key %q: %w", key, err)
		}

		if _, err := tmp.WriteString(value); err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
			removeStaged(staged)
			return fmt.Errorf("failed to write key %q: %w", key, err)
		}
		if err := tmp.Close(); err != nil {
			os.Remove(tmp.Name())
			removeStaged(staged)
			return fmt.Errorf("failed to flush key %q: %w", key, err)
		}

		staged[key] = tmp.Name()
	}

	for key, tmpPath := range staged {
		if err := os.Rename(tmpPath, s.path(key)); err != nil {
			removeStaged(staged)
			return fmt.Errorf("failed to commit key %q: %w", key, err)
		}
		delete(staged, key)
	}

	return nil
}

// Delete removes a key. Deleting a missing key is not an error.
func (s *Store) Delete(keys ...string) error {
	for _, key := range keys {
		if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to delete key %q: %w", key, err)
		}
	}
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key)
}

func removeStaged(staged map[string]string) {
	for _, tmpPath := range staged {
		os.Remove(tmpPath)
	}
}
