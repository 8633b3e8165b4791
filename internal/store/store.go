// Package store persists application state (favorites, alerts, settings,
// alert runtime, last-loaded snapshot) in a single SQLite database.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Store is the persistent-state collaborator. One logical writer; all
// mutations go through its methods.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the database location under a data directory.
func DefaultPath(dataDir string) string {
	return filepath.Join(dataDir, "surfscope.db")
}

// Open opens (creating if needed) the database at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS favorites (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			admin1 TEXT,
			country TEXT,
			latitude REAL NOT NULL,
			longitude REAL NOT NULL,
			face_deg REAL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE IF NOT EXISTS alerts (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			enabled INTEGER NOT NULL DEFAULT 1,
			spot_ids TEXT NOT NULL DEFAULT '[]',
			min_hs_m REAL,
			min_swell_h_m REAL,
			min_swell_p_s REAL,
			min_index REAL,
			max_wind_kmh REAL,
			wind_dir_center REAL,
			wind_dir_tol REAL NOT NULL DEFAULT 60,
			look_hours INTEGER NOT NULL DEFAULT 24,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE IF NOT EXISTS alert_runtime (
			alert_id TEXT PRIMARY KEY,
			last_fired_ms INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS app_meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS last_snapshot (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			spot_json TEXT NOT NULL,
			data_json TEXT NOT NULL,
			fetched_at DATETIME NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

func (s *Store) getMeta(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM app_meta WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading meta %q: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) setMeta(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO app_meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("writing meta %q: %w", key, err)
	}
	return nil
}
