package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/thatdevelopergirlcobham/student-project-allocation-system/internal/pkg/metrics"
)

// Collection keys used in the snapshot store. One key per collection,
// each holding a single JSON-encoded array.
const (
	CollectionUsers       = "users"
	CollectionProjects    = "projects"
	CollectionAllocations = "allocations"
	CollectionReports     = "reports"
)

// SnapshotStore persists collections to a local SQLite file as JSON blobs.
// Each Save is one upsert statement, so a write is atomic per collection but
// a crash between two Saves can leave the snapshot partially stale across
// collections.
type SnapshotStore struct {
	db   *sql.DB
	mu   sync.Mutex
	path string
}

// NewSnapshotStore opens (or creates) the snapshot database at path.
func NewSnapshotStore(path string) (*SnapshotStore, error) {
	if path == "" {
		path = "spas.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create snapshot dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS snapshots (
		collection TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("create snapshots table: %w", err)
	}
	return &SnapshotStore{db: db, path: path}, nil
}

// Load reads one collection into v. It reports false when no snapshot exists
// for the collection and returns an error when the stored payload cannot be
// decoded, so the caller can fall back to seed data for that collection only.
func (s *SnapshotStore) Load(collection string, v interface{}) (bool, error) {
	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM snapshots WHERE collection = ?`, collection).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("select %s: %w", collection, err)
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", collection, err)
	}
	return true, nil
}

// Save serializes one collection and upserts it under its key.
func (s *SnapshotStore) Save(collection string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}
	if _, err := s.db.Exec(
		`INSERT INTO snapshots(collection, payload) VALUES(?, ?)
		 ON CONFLICT(collection) DO UPDATE SET payload = excluded.payload`,
		collection, payload,
	); err != nil {
		return fmt.Errorf("upsert %s: %w", collection, err)
	}
	metrics.SnapshotWrites.Inc()
	return nil
}

// Close releases the underlying database handle.
func (s *SnapshotStore) Close() error {
	return s.db.Close()
}

// Path returns the configured database path.
func (s *SnapshotStore) Path() string { return s.path }
