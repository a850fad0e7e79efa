package storage

import (
	"fmt"
	"log/slog"
)

// Backend names a storage backend implementation.
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
)

func (b Backend) String() string { return string(b) }

// IsValid reports whether the backend name is known.
func (b Backend) IsValid() bool {
	switch b {
	case BackendMemory, BackendFile, BackendSQLite:
		return true
	default:
		return false
	}
}

// Options carries backend-specific settings for Open.
type Options struct {
	Backend Backend

	// file backend
	DataFile string

	// sqlite backend
	SQLiteDBPath string
}

// CleanupFunc releases backend resources.
type CleanupFunc func() error

// Open builds the configured Storage and a cleanup function for it.
func Open(opts Options, logger *slog.Logger) (Storage, CleanupFunc, error) {
	if logger == nil {
		logger = slog.Default()
	}
	noop := func() error { return nil }

	switch opts.Backend {
	case BackendMemory:
		logger.Info("Initialized memory storage backend")
		return NewMemory(), noop, nil

	case BackendFile:
		f, err := NewFile(opts.DataFile)
		if err != nil {
			return nil, nil, fmt.Errorf("initialize file backend: %w", err)
		}
		logger.Info("Initialized file storage backend", "path", opts.DataFile)
		return f, noop, nil

	case BackendSQLite:
		db, err := NewSQLite(opts.SQLiteDBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("initialize sqlite backend: %w", err)
		}
		logger.Info("Initialized sqlite storage backend", "db_path", opts.SQLiteDBPath)
		return db, db.Close, nil

	default:
		return nil, nil, fmt.Errorf("invalid storage backend: %q", opts.Backend)
	}
}
