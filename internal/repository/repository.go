package repository

import (
	"context"

	"wordlist/internal/domain"
)

// WordListStore defines durable word list operations.
// Load returns an empty list when nothing has been stored yet.
// Save replaces the stored list as a whole or not at all.
type WordListStore interface {
	Load(ctx context.Context) (domain.WordList, error)
	Save(ctx context.Context, list domain.WordList) error
}
