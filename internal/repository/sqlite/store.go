package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"wordlist/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS word_entries (
	id TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	text TEXT NOT NULL,
	created_at TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_word_entries_position ON word_entries(position);
`

// Store implements repository.WordListStore using an embedded SQLite database
type Store struct {
	db *sql.DB
}

// New opens the SQLite database at path, creating parent dirs and schema
func New(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, domain.Unavailable("sqlite open", fmt.Errorf("mkdir: %w", err))
		}
	}
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, domain.Unavailable("sqlite open", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, domain.Unavailable("sqlite schema", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database connection
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Load returns all stored entries in insertion order
func (s *Store) Load(ctx context.Context) (domain.WordList, error) {
	if s.db == nil {
		return nil, domain.Unavailable("sqlite load", sql.ErrConnDone)
	}
	rows, err := s.db.QueryContext(ctx, "SELECT id, text, created_at FROM word_entries ORDER BY position")
	if err != nil {
		return nil, domain.Unavailable("sqlite load", err)
	}
	defer rows.Close()

	list := domain.WordList{}
	for rows.Next() {
		var e domain.WordEntry
		var ts string
		if err := rows.Scan(&e.ID, &e.Text, &ts); err != nil {
			return nil, domain.Corrupt("sqlite load", err)
		}
		t, err := parseTime(ts)
		if err != nil {
			return nil, domain.Corrupt("sqlite load", fmt.Errorf("entry %s: %w", e.ID, err))
		}
		e.CreatedAt = t
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Unavailable("sqlite load", err)
	}

	if err := list.Validate(); err != nil {
		return nil, domain.Corrupt("sqlite load", err)
	}
	return list, nil
}

// Save replaces the stored entries inside a single transaction
func (s *Store) Save(ctx context.Context, list domain.WordList) (err error) {
	if s.db == nil {
		return domain.Unavailable("sqlite save", sql.ErrConnDone)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Unavailable("sqlite save", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM word_entries"); err != nil {
		return domain.WriteFailed("sqlite save", fmt.Errorf("clear entries: %w", err))
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO word_entries (id, position, text, created_at) VALUES (?, ?, ?, ?)")
	if err != nil {
		return domain.WriteFailed("sqlite save", fmt.Errorf("prepare insert: %w", err))
	}
	defer stmt.Close()

	for i, e := range list {
		if _, err = stmt.ExecContext(ctx, e.ID, i, e.Text, formatTime(e.CreatedAt)); err != nil {
			return domain.WriteFailed("sqlite save", fmt.Errorf("insert %s: %w", e.ID, err))
		}
	}

	if err = tx.Commit(); err != nil {
		return domain.WriteFailed("sqlite save", fmt.Errorf("commit: %w", err))
	}
	return nil
}

// formatTime stores zero times as the empty string
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// parseTime parses RFC3339Nano; the empty string is the zero time
func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t.UTC(), nil
}
