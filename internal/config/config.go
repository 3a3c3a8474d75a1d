package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage backends
const (
	StorageFile     = "file"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

// Corrupt-state policies applied by the application root
const (
	OnCorruptHalt  = "halt"
	OnCorruptReset = "reset"
)

// Config holds all application configuration
type Config struct {
	Storage          string
	FilePath         string
	FileFormat       string
	SQLitePath       string
	MigrationsURL    string
	OnCorrupt        string
	AutosaveInterval time.Duration
	LogLevel         string
	Database         DatabaseConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	autosave, err := time.ParseDuration(getEnv("WORDLIST_AUTOSAVE_INTERVAL", "30s"))
	if err != nil {
		return nil, fmt.Errorf("WORDLIST_AUTOSAVE_INTERVAL is invalid: %w", err)
	}

	cfg := &Config{
		Storage:          strings.ToLower(getEnv("WORDLIST_STORAGE", StorageFile)),
		FilePath:         getEnv("WORDLIST_FILE", "wordlist.json"),
		FileFormat:       os.Getenv("WORDLIST_FORMAT"),
		SQLitePath:       getEnv("WORDLIST_SQLITE_PATH", "wordlist.sqlite"),
		MigrationsURL:    getEnv("WORDLIST_MIGRATIONS", "file://migrations"),
		OnCorrupt:        strings.ToLower(getEnv("WORDLIST_ON_CORRUPT", OnCorruptHalt)),
		AutosaveInterval: autosave,
		LogLevel:         strings.ToLower(getEnv("WORDLIST_LOG_LEVEL", "info")),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "wordlist"),
			User:     getEnv("DB_USER", "wordlist"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage {
	case StorageFile, StorageSQLite:
	case StoragePostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required for postgres storage")
		}
	default:
		return fmt.Errorf("WORDLIST_STORAGE must be one of file, sqlite, postgres; got %q", c.Storage)
	}

	switch c.OnCorrupt {
	case OnCorruptHalt, OnCorruptReset:
	default:
		return fmt.Errorf("WORDLIST_ON_CORRUPT must be halt or reset; got %q", c.OnCorrupt)
	}

	if c.AutosaveInterval < 0 {
		return fmt.Errorf("WORDLIST_AUTOSAVE_INTERVAL cannot be negative")
	}
	return nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
