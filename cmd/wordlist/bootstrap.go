package main

import (
	"context"
	"errors"

	"wordlist/internal/config"
	"wordlist/internal/domain"
	"wordlist/internal/service"

	"go.uber.org/zap"
)

// loadWordList loads durable state before anything reads the list and
// applies the corrupt-state policy
func loadWordList(ctx context.Context, persistence *service.Persistence, onCorrupt string, logger *zap.Logger) error {
	list, err := persistence.Load(ctx)
	if err == nil {
		logger.Debug("Word list ready", zap.Int("entries", len(list)))
		return nil
	}

	if errors.Is(err, domain.ErrCorruptState) && onCorrupt == config.OnCorruptReset {
		logger.Warn("Stored word list is corrupt, starting with an empty list",
			zap.Error(err),
		)
		return nil
	}

	logger.Error("Cannot start without a readable word list", zap.Error(err))
	return err
}
