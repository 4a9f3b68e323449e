package db

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"nexustap/models"
)

// FileStore keeps the whole ledger in a single pretty-printed JSON document
// mapping address -> UserRecord, rewritten in full on every mutation. A
// store-wide mutex serializes mutations; Update re-reads the file inside the
// critical section so two writers can no longer clobber each other's deltas.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a FileStore backed by the JSON document at path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// loadLocked reads the backing document. A missing or unreadable file is
// treated as an empty ledger, matching first-run behavior.
func (s *FileStore) loadLocked() (map[string]*models.UserRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]*models.UserRecord{}, nil
		}
		return nil, fmt.Errorf("failed to read user store: %w", err)
	}

	users := map[string]*models.UserRecord{}
	if len(data) == 0 {
		return users, nil
	}
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("failed to parse user store: %w", err)
	}
	return users, nil
}

func (s *FileStore) saveLocked(users map[string]*models.UserRecord) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode user store: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write user store: %w", err)
	}
	return nil
}

// LoadAll returns every persisted record keyed by address
func (s *FileStore) LoadAll(ctx context.Context) (map[string]*models.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

// Get returns the record for address, or (nil, nil) when none exists
func (s *FileStore) Get(ctx context.Context, address string) (*models.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadLocked()
	if err != nil {
		return nil, err
	}
	return users[address], nil
}

// Save writes the record for address, rewriting the whole document
func (s *FileStore) Save(ctx context.Context, address string, rec *models.UserRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadLocked()
	if err != nil {
		return err
	}
	users[address] = rec
	return s.saveLocked(users)
}

// Update fetches or creates the record for address, applies mutate and
// persists the result. The read and write happen under one lock.
func (s *FileStore) Update(ctx context.Context, address string, mutate func(*models.UserRecord) error) (*models.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.loadLocked()
	if err != nil {
		return nil, err
	}

	rec := users[address]
	if rec == nil {
		rec = models.NewUserRecord(address, time.Now())
	}
	if err := mutate(rec); err != nil {
		return nil, err
	}

	users[address] = rec
	if err := s.saveLocked(users); err != nil {
		return nil, err
	}
	return rec, nil
}
