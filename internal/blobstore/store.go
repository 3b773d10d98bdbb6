// Package blobstore persists the tracker's state as keyed JSON blobs in
// a local SQLite database. Reads degrade to absent and writes to logged
// no-ops when the underlying database misbehaves, so callers never see a
// storage failure as anything worse than a missing value.
package blobstore

import (
	"database/sql"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/opsforge/conveyor/pkg/types"
)

// schemaSQL creates the single blob table. Attach keeps existing rows;
// the database file is the durable copy of the tracker's state.
const schemaSQL = `CREATE TABLE IF NOT EXISTS blobs (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

// dbFileName is the SQLite database file created under DataDir.
const dbFileName = "conveyor.db"

// Compile-time interface check: Store must implement types.Store.
var _ types.Store = (*Store)(nil)

// Store implements the blob storage contract over SQLite.
type Store struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
}

// New creates a new Store. The store is not attached; call Attach with a
// Config to initialize.
func New() *Store {
	return &Store{}
}

// Attach opens the database under config.DataDir, creating the directory
// and schema as needed. Returns ErrAlreadyAttached if called while
// attached.
func (s *Store) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return err
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return err
	}

	s.db = db
	s.config = config
	s.attached = true
	return nil
}

// Detach closes the database. Idempotent; after Detach all reads return
// absent and all writes are dropped.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return err
		}
		s.db = nil
	}
	s.attached = false
	return nil
}

// Get returns the decoded value for key. Missing keys, malformed stored
// values, a detached store, and query failures all read as absent.
func (s *Store) Get(key string) (json.RawMessage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, false
	}

	var value string
	err := s.db.QueryRow("SELECT value FROM blobs WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false
	}
	if err != nil {
		log.Printf("blobstore: read %s degraded to absent: %v", key, err)
		return nil, false
	}
	if !json.Valid([]byte(value)) {
		// Malformed content is treated as absent, not as a fatal error.
		return nil, false
	}
	return json.RawMessage(value), true
}

// Set serializes value and upserts it under key. Failures are logged and
// the write is dropped.
func (s *Store) Set(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("blobstore: write %s dropped: %v", key, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		log.Printf("blobstore: write %s dropped: %v", key, types.ErrStoreDetached)
		return
	}

	_, err = s.db.Exec(
		`INSERT INTO blobs (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(data), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		log.Printf("blobstore: write %s dropped: %v", key, err)
	}
}

// Remove deletes the value stored under key. Failures are logged and
// dropped.
func (s *Store) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return
	}
	if _, err := s.db.Exec("DELETE FROM blobs WHERE key = ?", key); err != nil {
		log.Printf("blobstore: remove %s dropped: %v", key, err)
	}
}
