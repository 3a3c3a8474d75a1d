package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"wordlist/internal/codec"
	"wordlist/internal/domain"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Store implements repository.WordListStore as a single document on disk
type Store struct {
	path  string
	codec codec.Codec
}

// NewStore creates a file store; a nil codec is picked from the path extension
func NewStore(path string, c codec.Codec) *Store {
	if c == nil {
		c = codec.ForPath(path)
	}
	return &Store{path: path, codec: c}
}

// Path returns the document location
func (s *Store) Path() string {
	return s.path
}

// Load reads and decodes the stored document
func (s *Store) Load(ctx context.Context) (domain.WordList, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.Unavailable("file load", err)
	}

	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.WordList{}, nil
	}
	if err != nil {
		return nil, domain.Unavailable("file load", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, domain.Unavailable("file load", err)
	}
	if info.IsDir() {
		return nil, domain.Unavailable("file load", fmt.Errorf("%s is a directory", s.path))
	}

	list, err := s.codec.Decode(f)
	if err != nil {
		return nil, domain.Corrupt("file load", fmt.Errorf("%s: %w", s.path, err))
	}
	return list, nil
}

// Save writes list to a temp file next to the target and renames it into place
func (s *Store) Save(ctx context.Context, list domain.WordList) error {
	if err := ctx.Err(); err != nil {
		return domain.WriteFailed("file save", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return domain.Unavailable("file save", fmt.Errorf("mkdir: %w", err))
	}

	tempFile, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return domain.Unavailable("file save", fmt.Errorf("create temp: %w", err))
	}
	tempName := tempFile.Name()
	committed := false
	defer func() {
		if !committed {
			tempFile.Close()
			os.Remove(tempName)
		}
	}()

	if err := s.codec.Encode(tempFile, list); err != nil {
		return domain.WriteFailed("file save", err)
	}
	if err := tempFile.Chmod(filePerm); err != nil {
		return domain.WriteFailed("file save", fmt.Errorf("chmod: %w", err))
	}
	if err := tempFile.Sync(); err != nil {
		return domain.WriteFailed("file save", fmt.Errorf("sync: %w", err))
	}
	if err := tempFile.Close(); err != nil {
		return domain.WriteFailed("file save", fmt.Errorf("close: %w", err))
	}

	// Rename to final path (atomic replace)
	if err := os.Rename(tempName, s.path); err != nil {
		return domain.WriteFailed("file save", fmt.Errorf("rename: %w", err))
	}
	committed = true

	syncDir(dir)
	return nil
}

// syncDir persists the rename; not every platform supports fsync on directories
func syncDir(dir string) {
	d, err := os.Open(dir)
	if err != nil {
		return
	}
	_ = d.Sync()
	_ = d.Close()
}
