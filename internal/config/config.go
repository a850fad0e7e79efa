package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"outlay/internal/storage"
)

// Config is the process configuration, populated from the environment.
type Config struct {
	// HTTP server
	Port string

	// Storage backend selection
	StorageBackend storage.Backend
	DataFile       string
	SQLiteDBPath   string

	// Insights
	DailyBudgetCents int64
	TrendWindowDays  int
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8080"),

		StorageBackend: storage.Backend(getEnv("STORAGE_BACKEND", "file")),
		DataFile:       getEnv("DATA_FILE", "./data/expenses.json"),
		SQLiteDBPath:   getEnv("SQLITE_DB_PATH", "./data/outlay.db"),

		DailyBudgetCents: getEnvInt64("DAILY_BUDGET_CENTS", 10000),
		TrendWindowDays:  getEnvInt("TREND_WINDOW_DAYS", 7),
	}
}

// Validate returns an error describing every invalid setting.
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port %q: must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if !c.StorageBackend.IsValid() {
		errs = append(errs, fmt.Sprintf("invalid storage backend %q: must be one of memory, file, sqlite", c.StorageBackend))
	}
	if c.StorageBackend == storage.BackendFile && c.DataFile == "" {
		errs = append(errs, "data file path cannot be empty when using the file backend")
	}
	if c.StorageBackend == storage.BackendSQLite && c.SQLiteDBPath == "" {
		errs = append(errs, "sqlite database path cannot be empty when using the sqlite backend")
	}

	if c.DailyBudgetCents < 1 {
		errs = append(errs, fmt.Sprintf("invalid daily budget %d: must be at least 1 cent", c.DailyBudgetCents))
	}
	if c.TrendWindowDays < 1 || c.TrendWindowDays > 366 {
		errs = append(errs, fmt.Sprintf("invalid trend window %d: must be between 1 and 366 days", c.TrendWindowDays))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// StorageOptions maps the config onto the storage factory options.
func (c *Config) StorageOptions() storage.Options {
	return storage.Options{
		Backend:      c.StorageBackend,
		DataFile:     c.DataFile,
		SQLiteDBPath: c.SQLiteDBPath,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return defaultValue
}
