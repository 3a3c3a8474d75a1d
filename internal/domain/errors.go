package domain

import (
	"errors"
	"fmt"
)

// StorageErrorKind classifies durable storage failures
type StorageErrorKind string

const (
	KindStorageUnavailable StorageErrorKind = "storage_unavailable"
	KindCorruptState       StorageErrorKind = "corrupt_state"
	KindWriteFailure       StorageErrorKind = "write_failure"
)

// Sentinels for errors.Is matching against a StorageError's kind
var (
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrCorruptState       = errors.New("corrupt state")
	ErrWriteFailure       = errors.New("write failure")
)

// StorageError is returned by every load and save path
type StorageError struct {
	Kind StorageErrorKind
	Op   string
	Err  error
}

// NewStorageError wraps err with a kind and the failing operation
func NewStorageError(kind StorageErrorKind, op string, err error) *StorageError {
	return &StorageError{Kind: kind, Op: op, Err: err}
}

func (e *StorageError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for e's kind
func (e *StorageError) Is(target error) bool {
	switch target {
	case ErrStorageUnavailable:
		return e.Kind == KindStorageUnavailable
	case ErrCorruptState:
		return e.Kind == KindCorruptState
	case ErrWriteFailure:
		return e.Kind == KindWriteFailure
	}
	return false
}

// Unavailable wraps err as a StorageUnavailable failure
func Unavailable(op string, err error) error {
	return NewStorageError(KindStorageUnavailable, op, err)
}

// Corrupt wraps err as a CorruptState failure
func Corrupt(op string, err error) error {
	return NewStorageError(KindCorruptState, op, err)
}

// WriteFailed wraps err as a WriteFailure
func WriteFailed(op string, err error) error {
	return NewStorageError(KindWriteFailure, op, err)
}
