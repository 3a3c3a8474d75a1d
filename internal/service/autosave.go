package service

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// AutosaveService periodically flushes unsaved changes in the background
type AutosaveService struct {
	persistence *Persistence
	interval    time.Duration
	logger      *zap.Logger
}

// NewAutosaveService creates a new autosave service
func NewAutosaveService(persistence *Persistence, interval time.Duration, logger *zap.Logger) *AutosaveService {
	return &AutosaveService{
		persistence: persistence,
		interval:    interval,
		logger:      logger,
	}
}

// FlushPending writes the word list if it has unsaved changes
func (s *AutosaveService) FlushPending(ctx context.Context) error {
	if !s.persistence.Dirty() {
		return nil
	}

	s.logger.Debug("Autosaving word list")
	if err := s.persistence.Flush(ctx); err != nil {
		s.logger.Error("Failed to autosave word list", zap.Error(err))
		return err
	}
	return nil
}

// Run flushes every interval until ctx is done; a non-positive interval disables it
func (s *AutosaveService) Run(ctx context.Context) {
	if s.interval <= 0 {
		s.logger.Info("Autosave disabled")
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Autosave job stopped")
			return
		case <-ticker.C:
			_ = s.FlushPending(ctx)
		}
	}
}
