// Package metastore records which monthly archive files have already been
// fetched, in a small pure-Go SQLite table, so a caller can tell a month
// that was fetched (or found empty) from one never attempted, even after
// the on-disk CSV was pruned from the cache directory. The download
// fetcher only writes to it; it decides what to fetch from the files on
// disk.
package metastore

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store is a keyed table of fetched-file timestamps, backed by a single
// SQLite file.
type Store struct {
	db *sql.DB
}

// Open creates (if missing) and opens the SQLite file at path, creating its
// parent directory and schema as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("metastore: mkdir %s: %w", filepath.Dir(path), err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("metastore: open %s: %w", path, err)
	}

	const schema = `
CREATE TABLE IF NOT EXISTS fetched_files (
	symbol     TEXT NOT NULL,
	kind       TEXT NOT NULL,
	yyyymm     TEXT NOT NULL,
	fetched_at INTEGER NOT NULL,
	PRIMARY KEY (symbol, kind, yyyymm)
)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("metastore: create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// MarkFetched records that (symbol, kind, yyyymm) was fetched at fetchedAt.
// A second call for the same key overwrites the timestamp.
func (s *Store) MarkFetched(symbol, kind, yyyymm string, fetchedAt time.Time) error {
	const stmt = `
INSERT INTO fetched_files (symbol, kind, yyyymm, fetched_at) VALUES (?, ?, ?, ?)
ON CONFLICT (symbol, kind, yyyymm) DO UPDATE SET fetched_at = excluded.fetched_at`
	if _, err := s.db.Exec(stmt, symbol, kind, yyyymm, fetchedAt.Unix()); err != nil {
		return fmt.Errorf("metastore: mark fetched %s/%s/%s: %w", symbol, kind, yyyymm, err)
	}
	return nil
}

// FetchedAt returns the recorded fetch timestamp for (symbol, kind, yyyymm),
// or the zero time and false if no record exists.
func (s *Store) FetchedAt(symbol, kind, yyyymm string) (time.Time, bool, error) {
	const query = `SELECT fetched_at FROM fetched_files WHERE symbol = ? AND kind = ? AND yyyymm = ?`

	var unix int64
	err := s.db.QueryRow(query, symbol, kind, yyyymm).Scan(&unix)
	if err == sql.ErrNoRows {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("metastore: fetched_at %s/%s/%s: %w", symbol, kind, yyyymm, err)
	}
	return time.Unix(unix, 0).UTC(), true, nil
}
