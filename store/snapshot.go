// Package store persists point-in-time engine snapshots to a local
// SQLite file for later inspection. This is diagnostic bug-report
// capture only, never consulted to resume or replay a game (spec.md §6:
// "for tests/serialization of bug reports, not for persistence of
// gameplay").
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/korjavin/blokus-engine/engine"
)

// SnapshotStore wraps a database/sql handle over modernc.org/sqlite (the
// teacher's own pure-Go SQLite choice in backend/storage.go, preferred
// over the CGO mattn/go-sqlite3 driver used only in the teacher's
// standalone dump-games tool).
type SnapshotStore struct {
	db *sql.DB
}

// Open initializes the SQLite database at path, creating its parent
// directory and schema if needed, grounded on backend/storage.go's
// InitDB.
func Open(path string) (*SnapshotStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("store: create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}

	const createTableSQL = `
	CREATE TABLE IF NOT EXISTS snapshots (
		run_id TEXT NOT NULL,
		sequence INTEGER NOT NULL,
		captured_at DATETIME,
		phase TEXT,
		current_player INTEGER,
		winner_ids TEXT,
		snapshot_json TEXT,
		PRIMARY KEY (run_id, sequence)
	);
	`
	if _, err := db.Exec(createTableSQL); err != nil {
		return nil, fmt.Errorf("store: create schema: %w", err)
	}

	log.Printf("[blokus] snapshot store initialized at %s", path)
	return &SnapshotStore{db: db}, nil
}

// Save inserts one row for a single captured snapshot under runID,
// ordered by seq, grounded on backend/storage.go's SaveGame insert.
func (s *SnapshotStore) Save(runID uuid.UUID, seq int64, snapshot engine.Snapshot) error {
	blob, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("store: marshal snapshot: %w", err)
	}
	winners, err := json.Marshal(snapshot.WinnerIDs)
	if err != nil {
		return fmt.Errorf("store: marshal winner ids: %w", err)
	}

	const insertSQL = `
	INSERT INTO snapshots (run_id, sequence, captured_at, phase, current_player, winner_ids, snapshot_json)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err = s.db.Exec(insertSQL,
		runID.String(),
		seq,
		time.Now(),
		snapshot.Phase,
		snapshot.CurrentPlayer,
		string(winners),
		string(blob),
	)
	if err != nil {
		return fmt.Errorf("store: insert snapshot: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SnapshotStore) Close() error {
	return s.db.Close()
}
