package service

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"wordlist/internal/domain"
	"wordlist/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Persistence is the only gateway between the application and durable
// storage for the word list. It owns the in-memory list; memory and storage
// are reconciled only by Load and Save.
type Persistence struct {
	store  repository.WordListStore
	logger *zap.Logger

	mu    sync.RWMutex
	list  domain.WordList
	dirty bool

	// saveMu serializes writers so a background flush cannot interleave with Save
	saveMu sync.Mutex

	newID func() string
	now   func() time.Time
}

// NewPersistence creates a persistence service over store
func NewPersistence(store repository.WordListStore, logger *zap.Logger) *Persistence {
	return &Persistence{
		store:  store,
		logger: logger,
		list:   domain.WordList{},
		newID:  uuid.NewString,
		now:    time.Now,
	}
}

// Load replaces the in-memory list with the durable one.
// On failure the in-memory list is left as it was.
func (p *Persistence) Load(ctx context.Context) (domain.WordList, error) {
	p.saveMu.Lock()
	defer p.saveMu.Unlock()

	list, err := p.store.Load(ctx)
	if err != nil {
		p.logger.Error("Failed to load word list", zap.Error(err))
		return nil, err
	}

	p.mu.Lock()
	p.list = list.Clone()
	p.dirty = false
	p.mu.Unlock()

	p.logger.Info("Word list loaded", zap.Int("entries", len(list)))
	return list, nil
}

// Save writes list to durable storage and adopts it as the in-memory list
func (p *Persistence) Save(ctx context.Context, list domain.WordList) error {
	if err := list.Validate(); err != nil {
		err = domain.WriteFailed("save", err)
		p.logger.Error("Refusing to save invalid word list", zap.Error(err))
		return err
	}

	p.saveMu.Lock()
	defer p.saveMu.Unlock()

	snapshot := list.Clone()
	if err := p.store.Save(ctx, snapshot); err != nil {
		p.logger.Error("Failed to save word list",
			zap.Error(err),
			zap.Int("entries", len(snapshot)),
		)
		return err
	}

	p.mu.Lock()
	p.list = snapshot
	p.dirty = false
	p.mu.Unlock()

	p.logger.Info("Word list saved", zap.Int("entries", len(snapshot)))
	return nil
}

// Flush saves the in-memory list if it changed since the last load or save
func (p *Persistence) Flush(ctx context.Context) error {
	p.saveMu.Lock()
	defer p.saveMu.Unlock()

	p.mu.RLock()
	if !p.dirty {
		p.mu.RUnlock()
		return nil
	}
	snapshot := p.list.Clone()
	p.mu.RUnlock()

	if err := p.store.Save(ctx, snapshot); err != nil {
		p.logger.Error("Failed to flush word list", zap.Error(err))
		return err
	}

	p.mu.Lock()
	// Mutations made during the write keep the list dirty
	p.dirty = !sameEntries(p.list, snapshot)
	p.mu.Unlock()

	p.logger.Debug("Word list flushed", zap.Int("entries", len(snapshot)))
	return nil
}

// Add appends a new entry; it only fails on empty text
func (p *Persistence) Add(text string) (domain.WordEntry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.WordEntry{}, domain.ErrEmptyText
	}

	entry := domain.WordEntry{
		ID:        p.newID(),
		Text:      text,
		CreatedAt: p.now().UTC().Truncate(domain.TimestampPrecision),
	}

	p.mu.Lock()
	p.list = append(p.list, entry)
	p.dirty = true
	p.mu.Unlock()

	return entry, nil
}

// Remove deletes the entry with id and reports whether it existed
func (p *Persistence) Remove(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	i := p.list.IndexOf(id)
	if i < 0 {
		return false
	}
	next := make(domain.WordList, 0, len(p.list)-1)
	next = append(next, p.list[:i]...)
	next = append(next, p.list[i+1:]...)
	p.list = next
	p.dirty = true
	return true
}

// Query returns a read-only snapshot of the in-memory list
func (p *Persistence) Query() domain.WordList {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.list.Clone()
}

// Find returns entries whose text matches, ignoring case
func (p *Persistence) Find(text string) domain.WordList {
	text = strings.TrimSpace(text)

	p.mu.RLock()
	defer p.mu.RUnlock()

	found := domain.WordList{}
	for _, e := range p.list {
		if strings.EqualFold(e.Text, text) {
			found = append(found, e)
		}
	}
	return found
}

// Dirty reports whether memory has diverged from the last load or save
func (p *Persistence) Dirty() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.dirty
}

// Close is the teardown hook: it flushes pending changes and releases the store
func (p *Persistence) Close(ctx context.Context) error {
	flushErr := p.Flush(ctx)

	if closer, ok := p.store.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			p.logger.Error("Failed to close word list store", zap.Error(err))
			if flushErr == nil {
				return err
			}
		}
	}
	return flushErr
}

func sameEntries(a, b domain.WordList) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Text != b[i].Text || !a[i].CreatedAt.Equal(b[i].CreatedAt) {
			return false
		}
	}
	return true
}
