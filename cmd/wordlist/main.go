package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wordlist/internal/config"
	"wordlist/internal/handler"
	"wordlist/internal/service"

	"go.uber.org/zap"
)

const teardownTimeout = 10 * time.Second

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to open word list storage", zap.Error(err))
		return 1
	}

	// The application root owns the only Persistence and hands it out explicitly
	persistence := service.NewPersistence(store, logger)
	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), teardownTimeout)
		defer closeCancel()
		if err := persistence.Close(closeCtx); err != nil {
			logger.Error("Failed to flush word list on exit", zap.Error(err))
		}
	}()

	if err := loadWordList(ctx, persistence, cfg.OnCorrupt, logger); err != nil {
		return 1
	}

	h := handler.NewHandler(persistence, os.Stdout, logger)

	if len(args) > 0 && args[0] != "shell" {
		if err := h.Execute(ctx, args); err != nil {
			if !errors.Is(err, handler.ErrUsage) {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
			}
			return 1
		}
		return 0
	}

	return runShell(ctx, cancel, h, persistence, cfg, logger)
}

// runShell serves line commands from stdin until EOF, quit, or a signal
func runShell(
	ctx context.Context,
	cancel context.CancelFunc,
	h *handler.Handler,
	persistence *service.Persistence,
	cfg *config.Config,
	logger *zap.Logger,
) int {
	autosave := service.NewAutosaveService(persistence, cfg.AutosaveInterval, logger)
	go autosave.Run(ctx)

	done := make(chan error, 1)
	go func() {
		done <- h.RunShell(ctx, os.Stdin)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	status := 0
	select {
	case sig := <-sigChan:
		logger.Info("Shutdown signal received", zap.String("signal", sig.String()))
	case err := <-done:
		if err != nil {
			logger.Error("Shell stopped", zap.Error(err))
			status = 1
		}
	}

	cancel()
	return status
}

func newLogger(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
