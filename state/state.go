// Package state provides the local key/value storage the stores persist into.
// Values are opaque strings (the stores write JSON); a FileStore keeps them in
// a single YAML file so that every key of a profile lives side by side.
package state

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/grovetools/storefront/errors"
	"gopkg.in/yaml.v3"
)

// KV is a per-profile string key/value area.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// FileStore is a KV backed by a YAML file of key → value.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore returns a FileStore at path. The file is created on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads all entries. A missing file is an empty store.
func (f *FileStore) Load() (map[string]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load()
}

func (f *FileStore) load() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("read storage file: %w", err)
	}

	var entries map[string]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse storage file: %w", err)
	}

	if entries == nil {
		entries = make(map[string]string)
	}

	return entries, nil
}

func (f *FileStore) save(entries map[string]string) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create storage directory: %w", err)
	}

	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal storage: %w", err)
	}

	// Write to a sibling temp file and rename so readers never see a torn file
	tmp, err := os.CreateTemp(dir, ".storage-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp storage file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write storage file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write storage file: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace storage file: %w", err)
	}

	return nil
}

// Get retrieves a value by key.
// Returns the value and true if found, "" and false otherwise.
func (f *FileStore) Get(key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.load()
	if err != nil {
		return "", false, errors.StorageRead(key, err)
	}
	val, ok := entries[key]
	return val, ok, nil
}

// Set stores value under key.
func (f *FileStore) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.load()
	if err != nil {
		return errors.StorageWrite(key, err)
	}
	entries[key] = value
	if err := f.save(entries); err != nil {
		return errors.StorageWrite(key, err)
	}
	return nil
}

// Delete removes a key.
func (f *FileStore) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.load()
	if err != nil {
		return errors.StorageWrite(key, err)
	}
	if _, ok := entries[key]; !ok {
		return nil
	}
	delete(entries, key)
	if err := f.save(entries); err != nil {
		return errors.StorageWrite(key, err)
	}
	return nil
}

// MemoryStore is an in-process KV. Setting FailWrites makes every write fail
// with that error, which simulates a full or disabled storage area.
type MemoryStore struct {
	mu         sync.RWMutex
	entries    map[string]string
	FailWrites error
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]string)}
}

// Get retrieves a value by key.
func (m *MemoryStore) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.entries[key]
	return val, ok, nil
}

// Set stores value under key unless FailWrites is set.
func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return errors.StorageWrite(key, m.FailWrites)
	}
	m.entries[key] = value
	return nil
}

// Delete removes a key unless FailWrites is set.
func (m *MemoryStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return errors.StorageWrite(key, m.FailWrites)
	}
	delete(m.entries, key)
	return nil
}
