package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// TimestampPrecision is the finest CreatedAt resolution every backend keeps
const TimestampPrecision = time.Microsecond

// ErrEmptyText is returned when a word entry has no text
var ErrEmptyText = errors.New("word text cannot be empty")

// WordEntry is a single record in the word list
type WordEntry struct {
	ID        string
	Text      string
	CreatedAt time.Time
}

// WordList is an ordered sequence of entries, insertion order significant
type WordList []WordEntry

// Clone returns a copy that shares no backing array with l
func (l WordList) Clone() WordList {
	out := make(WordList, len(l))
	copy(out, l)
	return out
}

// IndexOf returns the position of the entry with the given ID, or -1
func (l WordList) IndexOf(id string) int {
	for i, e := range l {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Validate reports the first entry that makes the list ill-formed
func (l WordList) Validate() error {
	seen := make(map[string]struct{}, len(l))
	for i, e := range l {
		if e.ID == "" {
			return fmt.Errorf("entry %d: missing id", i)
		}
		if strings.TrimSpace(e.Text) == "" {
			return fmt.Errorf("entry %d (%s): %w", i, e.ID, ErrEmptyText)
		}
		if _, dup := seen[e.ID]; dup {
			return fmt.Errorf("entry %d: duplicate id %s", i, e.ID)
		}
		seen[e.ID] = struct{}{}
	}
	return nil
}
