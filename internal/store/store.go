// Package store handles SQLite-backed session history.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/passgen/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// MemoryPath opens the store in memory; history then lives only for the
// session and no credential is ever written to disk.
const MemoryPath = ":memory:"

// Store wraps SQLite access for generation history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database and applies migrations.
func Open(path string) (*Store, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// An in-memory database exists per connection; keep the pool at one so
	// every query sees the same history.
	db.SetMaxOpenConns(1)
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS history (
			id INTEGER PRIMARY KEY,
			created_at TEXT NOT NULL,
			kind TEXT NOT NULL,
			value TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_history_created_at ON history(created_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Append records a generated credential.
func (s *Store) Append(ctx context.Context, kind, value string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO history (created_at, kind, value) VALUES (?, ?, ?)`,
		time.Now().Format(time.RFC3339Nano), kind, value)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Recent returns the most recent entries in append order (most recent last).
// A non-positive limit returns all entries.
func (s *Store) Recent(ctx context.Context, limit int) ([]model.HistoryEntry, error) {
	query := `SELECT id, created_at, kind, value FROM history ORDER BY id`
	args := []any{}
	if limit > 0 {
		query = `SELECT id, created_at, kind, value FROM (
			SELECT id, created_at, kind, value FROM history ORDER BY id DESC LIMIT ?
		) ORDER BY id`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var entries []model.HistoryEntry
	for rows.Next() {
		var entry model.HistoryEntry
		var createdAt string
		if err := rows.Scan(&entry.ID, &createdAt, &entry.Kind, &entry.Value); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, err
		}
		entry.CreatedAt = parsed
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Count returns the total number of history entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM history`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
