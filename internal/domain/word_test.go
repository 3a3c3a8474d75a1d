package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordList_Validate(t *testing.T) {
	tests := []struct {
		name          string
		list          WordList
		expectedError bool
	}{
		{
			name:          "empty list",
			list:          WordList{},
			expectedError: false,
		},
		{
			name: "well-formed list",
			list: WordList{
				{ID: "a", Text: "hello"},
				{ID: "b", Text: "hello"},
			},
			expectedError: false,
		},
		{
			name:          "missing id",
			list:          WordList{{Text: "hello"}},
			expectedError: true,
		},
		{
			name:          "blank text",
			list:          WordList{{ID: "a", Text: "   "}},
			expectedError: true,
		},
		{
			name: "duplicate id",
			list: WordList{
				{ID: "a", Text: "hello"},
				{ID: "a", Text: "world"},
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.list.Validate()
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWordList_Validate_EmptyTextIsWrapped(t *testing.T) {
	err := WordList{{ID: "a", Text: ""}}.Validate()
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestWordList_Clone(t *testing.T) {
	original := WordList{{ID: "a", Text: "hello"}}

	clone := original.Clone()
	clone[0].Text = "changed"

	assert.Equal(t, "hello", original[0].Text)
}

func TestWordList_IndexOf(t *testing.T) {
	list := WordList{{ID: "a", Text: "one"}, {ID: "b", Text: "two"}}

	assert.Equal(t, 1, list.IndexOf("b"))
	assert.Equal(t, -1, list.IndexOf("missing"))
}
