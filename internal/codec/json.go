package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"wordlist/internal/domain"
)

// JSONCodec writes indented JSON so stored lists stay diffable
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return "json"
}

// Encode writes list as a versioned JSON document
func (c *JSONCodec) Encode(w io.Writer, list domain.WordList) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(toDocument(list)); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// Decode parses a versioned JSON document
func (c *JSONCodec) Decode(r io.Reader) (domain.WordList, error) {
	var doc document
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errEmptyDocument
		}
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse JSON: %w", errTrailingData)
	}
	return fromDocument(doc)
}
