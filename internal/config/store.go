package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Store mediates all reads and writes of the durable config file.
// Failures never cross the store boundary: Load falls back to the
// built-in defaults and Save degrades silently after one retry.
//
// Saves may be issued from goroutines (the UI fires them off without
// waiting), so the store serializes access with a mutex. Last writer
// wins; there is no queue.
type Store struct {
	mu     sync.Mutex
	path   string
	config Config
	loaded bool
}

// NewStore creates a store rooted at the user's home directory. The
// config file lives at <homeDir>/hama/hama_clock/config.json.
func NewStore(homeDir string) *Store {
	return &Store{
		path:   filepath.Join(homeDir, "hama", "hama_clock", "config.json"),
		config: Default(),
	}
}

// Path returns the location of the durable config file.
func (s *Store) Path() string {
	return s.path
}

// Load populates the in-memory configuration from disk.
//
// A missing file is created from the defaults. An existing file is
// shallow-merged over the defaults and normalized. Any failure along
// the way leaves the defaults in place; Load never reports an error
// because the clock must render regardless.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.config = Default()
	s.loaded = false

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		// First run: seed the file with the defaults.
		if err := s.mkdir(); err != nil {
			return
		}
		_ = s.write(s.config)
		return
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	merged, err := merge(Default(), data)
	if err != nil {
		return
	}
	merged.normalize()
	s.config = merged
	s.loaded = true
}

// Save persists cfg to disk, replacing any existing file. If the first
// write fails (the config directory may have been removed externally),
// the directory is recreated and the write retried exactly once. A
// failed retry is logged and the in-memory configuration keeps its
// previous value; callers get no error either way.
func (s *Store) Save(cfg Config) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.write(cfg); err != nil {
		if err := s.mkdir(); err != nil {
			log.Printf("config: save abandoned: %v", err)
			return
		}
		if err := s.write(cfg); err != nil {
			log.Printf("config: save abandoned after retry: %v", err)
			return
		}
	}
	s.config = cfg.Clone()
	s.loaded = true
}

// Current returns a snapshot of the in-memory configuration. The
// snapshot shares no storage with the store.
func (s *Store) Current() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config.Clone()
}

// Loaded reports whether the current configuration came from a
// successfully parsed file rather than the built-in defaults.
func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

func (s *Store) write(cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

func (s *Store) mkdir() error {
	return os.MkdirAll(filepath.Dir(s.path), 0o755)
}
