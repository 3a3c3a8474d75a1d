package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"wordlist/internal/domain"
)

// WordListRepo implements repository.WordListStore on PostgreSQL
type WordListRepo struct {
	db *sql.DB
}

// NewWordListRepo creates a new word list repository
func NewWordListRepo(db *sql.DB) *WordListRepo {
	return &WordListRepo{db: db}
}

// Load returns all stored entries in insertion order
func (r *WordListRepo) Load(ctx context.Context) (domain.WordList, error) {
	query := `
		SELECT id, text, created_at
		FROM word_entries
		ORDER BY position
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, domain.Unavailable("postgres load", err)
	}
	defer rows.Close()

	list := domain.WordList{}
	for rows.Next() {
		var e domain.WordEntry
		var createdAt sql.NullTime
		if err := rows.Scan(&e.ID, &e.Text, &createdAt); err != nil {
			return nil, domain.Corrupt("postgres load", err)
		}
		if createdAt.Valid {
			e.CreatedAt = createdAt.Time.UTC()
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Unavailable("postgres load", err)
	}

	if err := list.Validate(); err != nil {
		return nil, domain.Corrupt("postgres load", err)
	}
	return list, nil
}

// Save replaces the stored entries inside a single transaction
func (r *WordListRepo) Save(ctx context.Context, list domain.WordList) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Unavailable("postgres save", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM word_entries`); err != nil {
		return domain.WriteFailed("postgres save", fmt.Errorf("clear entries: %w", err))
	}

	query := `
		INSERT INTO word_entries (id, position, text, created_at)
		VALUES ($1, $2, $3, $4)
	`
	for i, e := range list {
		if _, err = tx.ExecContext(ctx, query, e.ID, i, e.Text, nullTime(e)); err != nil {
			return domain.WriteFailed("postgres save", fmt.Errorf("insert %s: %w", e.ID, err))
		}
	}

	if err = tx.Commit(); err != nil {
		return domain.WriteFailed("postgres save", fmt.Errorf("commit: %w", err))
	}
	return nil
}

func nullTime(e domain.WordEntry) sql.NullTime {
	if e.CreatedAt.IsZero() {
		return sql.NullTime{}
	}
	// TIMESTAMPTZ keeps microseconds
	return sql.NullTime{Time: e.CreatedAt.UTC().Truncate(domain.TimestampPrecision), Valid: true}
}
