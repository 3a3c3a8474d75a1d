package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"WORDLIST_STORAGE",
	"WORDLIST_FILE",
	"WORDLIST_FORMAT",
	"WORDLIST_SQLITE_PATH",
	"WORDLIST_MIGRATIONS",
	"WORDLIST_ON_CORRUPT",
	"WORDLIST_AUTOSAVE_INTERVAL",
	"WORDLIST_LOG_LEVEL",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
	"DB_USER",
	"DB_PASSWORD",
}

// clearEnv unsets every config key and restores the originals afterwards
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		original, ok := os.LookupEnv(key)
		os.Unsetenv(key)
		t.Cleanup(func() {
			if ok {
				os.Setenv(key, original)
			} else {
				os.Unsetenv(key)
			}
		})
	}
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv(tt.key, tt.envValue)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func TestLoad_WithDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StorageFile, cfg.Storage)
	assert.Equal(t, "wordlist.json", cfg.FilePath)
	assert.Equal(t, "", cfg.FileFormat)
	assert.Equal(t, "wordlist.sqlite", cfg.SQLitePath)
	assert.Equal(t, "file://migrations", cfg.MigrationsURL)
	assert.Equal(t, OnCorruptHalt, cfg.OnCorrupt)
	assert.Equal(t, 30*time.Second, cfg.AutosaveInterval)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "wordlist", cfg.Database.Name)
	assert.Equal(t, "wordlist", cfg.Database.User)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORDLIST_STORAGE", "SQLite")
	t.Setenv("WORDLIST_SQLITE_PATH", "/var/lib/wordlist/words.db")
	t.Setenv("WORDLIST_ON_CORRUPT", "reset")
	t.Setenv("WORDLIST_AUTOSAVE_INTERVAL", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StorageSQLite, cfg.Storage)
	assert.Equal(t, "/var/lib/wordlist/words.db", cfg.SQLitePath)
	assert.Equal(t, OnCorruptReset, cfg.OnCorrupt)
	assert.Equal(t, time.Duration(0), cfg.AutosaveInterval)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		contains string
	}{
		{
			name:     "postgres without password",
			env:      map[string]string{"WORDLIST_STORAGE": "postgres"},
			contains: "DB_PASSWORD",
		},
		{
			name:     "unknown storage",
			env:      map[string]string{"WORDLIST_STORAGE": "s3"},
			contains: "WORDLIST_STORAGE",
		},
		{
			name:     "unknown corrupt policy",
			env:      map[string]string{"WORDLIST_ON_CORRUPT": "ignore"},
			contains: "WORDLIST_ON_CORRUPT",
		},
		{
			name:     "unparseable autosave interval",
			env:      map[string]string{"WORDLIST_AUTOSAVE_INTERVAL": "soon"},
			contains: "WORDLIST_AUTOSAVE_INTERVAL",
		},
		{
			name:     "negative autosave interval",
			env:      map[string]string{"WORDLIST_AUTOSAVE_INTERVAL": "-1s"},
			contains: "WORDLIST_AUTOSAVE_INTERVAL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestLoad_PostgresWithPassword(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORDLIST_STORAGE", "postgres")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_HOST", "db")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoragePostgres, cfg.Storage)
	assert.Equal(t, "host=db port=5432 user=wordlist password=secret dbname=wordlist sslmode=disable", cfg.DSN())
}
