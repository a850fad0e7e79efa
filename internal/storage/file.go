package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"outlay/internal/core"
)

// File persists the collection as a single JSON array document.
type File struct {
	path string
}

func NewFile(path string) (*File, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}
	return &File{path: path}, nil
}

// Load reads the persisted document. A missing file or an unparsable payload
// is treated as no data, not an error.
func (f *File) Load(ctx context.Context) ([]core.Expense, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}

	var expenses []core.Expense
	if err := json.Unmarshal(data, &expenses); err != nil {
		slog.WarnContext(ctx, "Persisted expense data is corrupt, starting empty",
			"path", f.path, "error", err)
		return nil, nil
	}
	return expenses, nil
}

// Save writes the full collection atomically (temp file + rename).
func (f *File) Save(_ context.Context, expenses []core.Expense) error {
	if expenses == nil {
		expenses = []core.Expense{}
	}
	data, err := json.MarshalIndent(expenses, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal expenses: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace %s: %w", f.path, err)
	}
	return nil
}

func (f *File) Clear(_ context.Context) error {
	err := os.Remove(f.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", f.path, err)
	}
	return nil
}
