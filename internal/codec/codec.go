package codec

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"wordlist/internal/domain"
)

// CurrentVersion is the document version written by every codec
const CurrentVersion = 1

// Codec serializes a word list to and from a durable document
type Codec interface {
	Encode(w io.Writer, list domain.WordList) error
	Decode(r io.Reader) (domain.WordList, error)
	Format() string
}

// document is the on-disk shape shared by all formats
type document struct {
	Version int             `json:"version" yaml:"version"`
	Entries []documentEntry `json:"entries" yaml:"entries"`
}

type documentEntry struct {
	ID        string     `json:"id" yaml:"id"`
	Text      string     `json:"text" yaml:"text"`
	CreatedAt *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// ForName returns the codec registered under format
func ForName(format string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return NewJSONCodec(), nil
	case "yaml", "yml":
		return NewYAMLCodec(), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// ForPath picks a codec from the file extension, defaulting to JSON
func ForPath(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return NewYAMLCodec()
	default:
		return NewJSONCodec()
	}
}

func toDocument(list domain.WordList) document {
	doc := document{
		Version: CurrentVersion,
		Entries: make([]documentEntry, 0, len(list)),
	}
	for _, e := range list {
		de := documentEntry{ID: e.ID, Text: e.Text}
		if !e.CreatedAt.IsZero() {
			createdAt := e.CreatedAt.UTC()
			de.CreatedAt = &createdAt
		}
		doc.Entries = append(doc.Entries, de)
	}
	return doc
}

func fromDocument(doc document) (domain.WordList, error) {
	if doc.Version != CurrentVersion {
		return nil, fmt.Errorf("unsupported document version %d", doc.Version)
	}

	list := make(domain.WordList, 0, len(doc.Entries))
	for _, de := range doc.Entries {
		e := domain.WordEntry{ID: de.ID, Text: de.Text}
		if de.CreatedAt != nil {
			e.CreatedAt = de.CreatedAt.UTC()
		}
		list = append(list, e)
	}

	if err := list.Validate(); err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}
	return list, nil
}

var (
	// errEmptyDocument is returned when the input holds no document at all
	errEmptyDocument = errors.New("empty document")
	// errTrailingData is returned when anything follows the document
	errTrailingData = errors.New("trailing data after document")
)
