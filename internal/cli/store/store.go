package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Well-known keys. The session context owns the first three; the environment
// selector owns the last one.
const (
	KeyToken       = "token"
	KeyUser        = "user"
	KeyTheme       = "theme"
	KeyEnvironment = "environment"
)

// ErrNotFound is returned by Get when a key has no persisted value.
var ErrNotFound = errors.New("key not found")

// Store is a durable key-value store with last-writer-wins semantics.
// Values are small strings (opaque tokens, JSON snapshots, literals), so no
// locking or transactionality is provided.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

const (
	stateDirName  = "curados"
	stateFileName = "state.json"
)

// FileStore persists keys as a single JSON object in the user's config
// directory. Every operation reads and rewrites the whole file; the values
// are tiny and writes only happen on explicit user actions.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by ~/.config/curados/state.json.
func NewFileStore() (*FileStore, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	return &FileStore{
		path: filepath.Join(homeDir, ".config", stateDirName, stateFileName),
	}, nil
}

// NewFileStoreAt creates a store backed by an explicit file path.
func NewFileStoreAt(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	state := map[string]string{}
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}
	return state, nil
}

func (s *FileStore) save(state map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	// 0600: the file may hold credential material when no keyring is in use
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}

func (s *FileStore) Get(key string) (string, error) {
	state, err := s.load()
	if err != nil {
		return "", err
	}
	value, exists := state[key]
	if !exists {
		return "", ErrNotFound
	}
	return value, nil
}

func (s *FileStore) Set(key, value string) error {
	state, err := s.load()
	if err != nil {
		return err
	}
	state[key] = value
	return s.save(state)
}

func (s *FileStore) Delete(key string) error {
	state, err := s.load()
	if err != nil {
		return err
	}
	if _, exists := state[key]; !exists {
		return nil
	}
	delete(state, key)
	return s.save(state)
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	values map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string]string)}
}

func (s *MemStore) Get(key string) (string, error) {
	value, exists := s.values[key]
	if !exists {
		return "", ErrNotFound
	}
	return value, nil
}

func (s *MemStore) Set(key, value string) error {
	s.values[key] = value
	return nil
}

func (s *MemStore) Delete(key string) error {
	delete(s.values, key)
	return nil
}
