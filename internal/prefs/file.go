package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	folioerrors "github.com/alexisbeaulieu97/folio/pkg/errors"
)

const fileFormatVersion = "1.0"

// File is the on-disk layout of a FileStore.
type File struct {
	Version string            `json:"version"`
	Values  map[string]string `json:"values"`
}

// FileStore persists preferences as a JSON document, rewritten atomically on
// every Set.
type FileStore struct {
	path    string
	mu      sync.RWMutex
	version string
	values  map[string]string
	loadErr error
}

// NewFileStore creates a FileStore and loads it from disk. A missing file is
// an empty store. So is an unreadable or corrupt one: its error is kept for
// LoadErr and the next Set overwrites the file.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:    path,
		version: fileFormatVersion,
		values:  make(map[string]string),
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, folioerrors.NewStorageError(DriverFile, "", fmt.Errorf("create preferences directory: %w", err))
	}

	if err := s.Load(); err != nil && !os.IsNotExist(err) {
		s.loadErr = err
	}

	return s, nil
}

// Load reads the store from disk, replacing in-memory values.
func (s *FileStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return err
		}
		return folioerrors.NewStorageError(DriverFile, "", fmt.Errorf("read %s: %w", s.path, err))
	}

	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return folioerrors.NewStorageError(DriverFile, "", fmt.Errorf("parse %s: %w", s.path, err))
	}

	if file.Version != "" {
		s.version = file.Version
	}
	s.values = file.Values
	if s.values == nil {
		s.values = make(map[string]string)
	}

	return nil
}

// Get returns the value for key.
func (s *FileStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	return v, ok, nil
}

// LoadErr reports why the file could not be loaded when the store was
// opened, or nil.
func (s *FileStore) LoadErr() error {
	return s.loadErr
}

// Set stores value under key and writes the file. When the write fails the
// previous value is kept.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.values[key]
	s.values[key] = value
	if err := s.save(); err != nil {
		if had {
			s.values[key] = prev
		} else {
			delete(s.values, key)
		}
		return folioerrors.NewStorageError(DriverFile, key, err)
	}
	return nil
}

// Close is a no-op; every Set is already on disk.
func (s *FileStore) Close() error { return nil }

// Path returns the backing file.
func (s *FileStore) Path() string { return s.path }

// save writes the file; the caller holds the lock.
func (s *FileStore) save() error {
	data, err := json.MarshalIndent(File{Version: s.version, Values: s.values}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temporary file: %w", err)
	}

	return nil
}
