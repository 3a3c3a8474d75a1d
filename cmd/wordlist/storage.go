package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"wordlist/internal/codec"
	"wordlist/internal/config"
	"wordlist/internal/domain"
	"wordlist/internal/repository"
	"wordlist/internal/repository/file"
	"wordlist/internal/repository/postgres"
	"wordlist/internal/repository/sqlite"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// dbStore adapts the postgres repository so Persistence.Close releases the pool
type dbStore struct {
	*postgres.WordListRepo
	db *sql.DB
}

func (s *dbStore) Close() error {
	return s.db.Close()
}

// openStore builds the configured durable storage backend
func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.WordListStore, error) {
	switch cfg.Storage {
	case config.StorageSQLite:
		logger.Info("Using SQLite storage", zap.String("path", cfg.SQLitePath))
		store, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return store, nil

	case config.StoragePostgres:
		db, err := connectDatabase(ctx, cfg.DSN(), logger)
		if err != nil {
			return nil, domain.Unavailable("postgres open", err)
		}
		if err := runMigrations(db, cfg.MigrationsURL, logger); err != nil {
			db.Close()
			return nil, domain.Unavailable("postgres migrate", err)
		}
		logger.Info("Using PostgreSQL storage", zap.String("host", cfg.Database.Host))
		return &dbStore{WordListRepo: postgres.NewWordListRepo(db), db: db}, nil

	default:
		c := codec.ForPath(cfg.FilePath)
		if cfg.FileFormat != "" {
			var err error
			if c, err = codec.ForName(cfg.FileFormat); err != nil {
				return nil, err
			}
		}
		logger.Info("Using file storage",
			zap.String("path", cfg.FilePath),
			zap.String("format", c.Format()),
		)
		return file.NewStore(cfg.FilePath, c), nil
	}
}

const dbMaxRetries = 10

var dbRetryDelay = 2 * time.Second

// connectDatabase connects to PostgreSQL with retries until ctx is done
func connectDatabase(ctx context.Context, dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := dbMaxRetries

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			if waitErr := waitRetry(ctx, dbRetryDelay); waitErr != nil {
				return nil, fmt.Errorf("database connection aborted: %w", waitErr)
			}
			continue
		}

		// Test connection
		if err = db.PingContext(ctx); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			if waitErr := waitRetry(ctx, dbRetryDelay); waitErr != nil {
				return nil, fmt.Errorf("database connection aborted: %w", waitErr)
			}
			continue
		}

		db.SetMaxOpenConns(5)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// waitRetry sleeps for delay or returns early with ctx's error
func waitRetry(ctx context.Context, delay time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB, sourceURL string, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(sourceURL, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply")
	} else {
		logger.Info("Migrations applied successfully")
	}

	return nil
}
