package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"wordlist/internal/domain"
	"wordlist/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAutosaveService_FlushPending(t *testing.T) {
	tests := []struct {
		name          string
		dirty         bool
		mockError     error
		expectedError bool
	}{
		{
			name:  "nothing to save",
			dirty: false,
		},
		{
			name:  "pending changes saved",
			dirty: true,
		},
		{
			name:          "storage error",
			dirty:         true,
			mockError:     domain.WriteFailed("file save", errors.New("disk full")),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(testutil.MockWordListStore)
			p := newTestPersistence(store)
			if tt.dirty {
				_, err := p.Add("hello")
				require.NoError(t, err)
				store.On("Save", mock.Anything, mock.Anything).Return(tt.mockError)
			}

			service := NewAutosaveService(p, time.Minute, testutil.NewTestLogger())

			err := service.FlushPending(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if !tt.dirty {
				store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
			} else {
				store.AssertExpectations(t)
			}
		})
	}
}

func TestAutosaveService_Run(t *testing.T) {
	store := new(testutil.MockWordListStore)
	p := newTestPersistence(store)
	_, err := p.Add("hello")
	require.NoError(t, err)

	saved := make(chan struct{}, 1)
	store.On("Save", mock.Anything, mock.Anything).Return(nil).Run(func(mock.Arguments) {
		select {
		case saved <- struct{}{}:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		NewAutosaveService(p, 10*time.Millisecond, testutil.NewTestLogger()).Run(ctx)
		close(done)
	}()

	select {
	case <-saved:
	case <-time.After(2 * time.Second):
		t.Fatal("autosave did not flush")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("autosave did not stop")
	}
	assert.False(t, p.Dirty())
}

func TestAutosaveService_Run_Disabled(t *testing.T) {
	p := newTestPersistence(new(testutil.MockWordListStore))

	done := make(chan struct{})
	go func() {
		NewAutosaveService(p, 0, testutil.NewTestLogger()).Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("disabled autosave should return immediately")
	}
}
