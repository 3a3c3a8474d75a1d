package testutil

import (
	"strconv"
	"time"

	"wordlist/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestEntry creates a test word entry
func NewTestEntry(id, text string) domain.WordEntry {
	return domain.WordEntry{
		ID:        id,
		Text:      text,
		CreatedAt: time.Date(2015, 7, 8, 10, 0, 0, 0, time.UTC),
	}
}

// NewTestList creates a list with one entry per text, ids "w1", "w2", ...
func NewTestList(texts ...string) domain.WordList {
	list := make(domain.WordList, 0, len(texts))
	for i, text := range texts {
		list = append(list, NewTestEntry("w"+strconv.Itoa(i+1), text))
	}
	return list
}
