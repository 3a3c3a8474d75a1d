package testutil

import (
	"context"

	"wordlist/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockWordListStore is a mock for WordListStore
type MockWordListStore struct {
	mock.Mock
}

func (m *MockWordListStore) Load(ctx context.Context) (domain.WordList, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.WordList), args.Error(1)
}

func (m *MockWordListStore) Save(ctx context.Context, list domain.WordList) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

// MockClosingStore is a WordListStore that also owns a resource to release
type MockClosingStore struct {
	MockWordListStore
}

func (m *MockClosingStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
