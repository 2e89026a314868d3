package preferences

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Store guards the preference slices and persists them to a YAML file when
// asked to.
type Store struct {
	path string

	mu    sync.RWMutex
	prefs Preferences
	hash  string
}

// NewStore returns a store with default slices. An empty path keeps the
// store in memory only.
func NewStore(path string) *Store {
	return &Store{path: path, prefs: Defaults()}
}

// Open builds a store and loads path when it exists.
func Open(path string) (*Store, error) {
	s := NewStore(path)
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the backing file.
func (s *Store) Path() string { return s.path }

// Get returns a copy of every slice.
func (s *Store) Get() Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs.clone()
}

// Update applies fn to the slices under the write lock.
func (s *Store) Update(fn func(*Preferences)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.prefs)
}

// Reset restores defaults in memory.
func (s *Store) Reset() {
	s.Update(func(p *Preferences) { *p = Defaults() })
}

// Load replaces the in-memory slices with the file contents. A missing file
// leaves defaults in place.
func (s *Store) Load() error {
	if s.path == "" {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("preferences: read %s: %w", s.path, err)
	}
	prefs, err := decode(data)
	if err != nil {
		return fmt.Errorf("preferences: decode %s: %w", s.path, err)
	}
	s.mu.Lock()
	s.prefs = prefs
	s.hash = digest(data)
	s.mu.Unlock()
	return nil
}

// Save writes the slices to the file through a temp file and rename.
func (s *Store) Save() error {
	if s.path == "" {
		return errors.New("preferences: store has no file path")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := yaml.Marshal(s.prefs)
	if err != nil {
		return fmt.Errorf("preferences: encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("preferences: create dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("preferences: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("preferences: rename %s: %w", tmp, err)
	}
	s.hash = digest(data)
	return nil
}

// Hash is the digest of the content last loaded or saved.
func (s *Store) Hash() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hash
}

func decode(data []byte) (Preferences, error) {
	prefs := Defaults()
	if len(bytes.TrimSpace(data)) == 0 {
		return prefs, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&prefs); err != nil {
		return Preferences{}, err
	}
	prefs.fillDefaults()
	return prefs, nil
}

func digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
