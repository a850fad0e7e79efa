// Package storage provides the persistence collaborators behind the expense
// store. Writes always carry the full collection (overwrite semantics); a
// missing or corrupt persisted payload loads as an empty collection.
package storage

import (
	"context"
	"sync"

	"outlay/internal/core"
)

// Storage is the persistence port the store writes through.
type Storage interface {
	// Load returns the persisted collection, or an empty slice when nothing
	// usable is persisted.
	Load(ctx context.Context) ([]core.Expense, error)
	// Save persists the full collection, replacing whatever was there.
	Save(ctx context.Context, expenses []core.Expense) error
	// Clear removes the persisted collection.
	Clear(ctx context.Context) error
}

// Memory is an in-process Storage used as the default backend and in tests.
type Memory struct {
	mu    sync.Mutex
	items []core.Expense
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load(_ context.Context) ([]core.Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]core.Expense(nil), m.items...), nil
}

func (m *Memory) Save(_ context.Context, expenses []core.Expense) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append([]core.Expense(nil), expenses...)
	return nil
}

func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = nil
	return nil
}
