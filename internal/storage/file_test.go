package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"outlay/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileLoadMissing(t *testing.T) {
	f, err := NewFile(filepath.Join(t.TempDir(), "expenses.json"))
	require.NoError(t, err)

	got, err := f.Load(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "expenses.json")
	f, err := NewFile(path)
	require.NoError(t, err)

	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	want := []core.Expense{{
		ID:          "id-1",
		Date:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Amount:      500,
		Category:    core.CategoryFood,
		Description: "Groceries",
		CreatedAt:   now,
		UpdatedAt:   now,
	}}

	require.NoError(t, f.Save(ctx, want))

	got, err := f.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, want[0].ID, got[0].ID)
	assert.True(t, want[0].Date.Equal(got[0].Date))
}

func TestFileLoadCorruptFailsOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expenses.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	f, err := NewFile(path)
	require.NoError(t, err)

	got, err := f.Load(context.Background())
	assert.NoError(t, err, "corrupt data should read as empty, not error")
	assert.Empty(t, got)
}

func TestFileClear(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "expenses.json")
	f, err := NewFile(path)
	require.NoError(t, err)

	require.NoError(t, f.Save(ctx, nil))
	require.NoError(t, f.Clear(ctx))
	require.NoError(t, f.Clear(ctx), "clearing twice should be a no-op")

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
