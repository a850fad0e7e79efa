// Package store owns the canonical expense collection and funnels every
// mutation through the injected storage collaborator.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"outlay/internal/core"
	"outlay/internal/storage"
)

// Store holds the in-memory expense collection. Each mutating operation
// persists the full collection through Storage; a failed write is reported
// to the caller but the in-memory change is kept, so memory and disk may
// diverge until the next successful write.
type Store struct {
	mu          sync.Mutex
	storage     storage.Storage
	expenses    []core.Expense
	initialized bool

	now   func() time.Time
	newID func() string
}

func New(st storage.Storage) *Store {
	return &Store{
		storage: st,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Init performs the one-shot load from storage. Unreadable data fails open
// to an empty collection; Initialized flips true only on a successful read.
func (s *Store) Init(ctx context.Context) error {
	loaded, err := s.storage.Load(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Loading expenses failed, starting empty", "error", err)
		return fmt.Errorf("load expenses: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = loaded
	s.initialized = true

	slog.InfoContext(ctx, "Expense store initialized", "count", len(loaded))
	return nil
}

// Initialized reports whether the first read from storage has completed, so
// callers can tell "not loaded yet" from "genuinely empty".
func (s *Store) Initialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}

// Create builds a new expense from validated form input, appends it, and
// persists. The returned error only ever signals a persistence failure; the
// expense is in memory either way.
func (s *Store) Create(ctx context.Context, form core.FormData) (core.Expense, error) {
	now := s.now()
	e := core.Expense{
		ID:          s.newID(),
		Date:        form.Date,
		Amount:      core.ParseDollarsToCents(form.Amount),
		Category:    form.Category,
		Description: form.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.mu.Lock()
	s.expenses = append(s.expenses, e)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	slog.InfoContext(ctx, "Expense created",
		"id", e.ID, "amount_cents", e.Amount, "category", e.Category)

	return e, s.persist(ctx, snapshot)
}

// Update rewrites the mutable fields of the matching expense and bumps
// UpdatedAt. An unknown id is a silent no-op.
func (s *Store) Update(ctx context.Context, id string, form core.FormData) error {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		slog.DebugContext(ctx, "Update for unknown expense ignored", "id", id)
		return nil
	}

	e := s.expenses[idx]
	e.Date = form.Date
	e.Amount = core.ParseDollarsToCents(form.Amount)
	e.Category = form.Category
	e.Description = form.Description
	e.UpdatedAt = s.now()
	s.expenses[idx] = e

	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	slog.InfoContext(ctx, "Expense updated", "id", id)
	return s.persist(ctx, snapshot)
}

// Delete removes the matching expense. An unknown id is a silent no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		slog.DebugContext(ctx, "Delete for unknown expense ignored", "id", id)
		return nil
	}

	s.expenses = append(s.expenses[:idx], s.expenses[idx+1:]...)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	slog.InfoContext(ctx, "Expense deleted", "id", id)
	return s.persist(ctx, snapshot)
}

// GetByID returns the expense with the given id.
func (s *Store) GetByID(id string) (core.Expense, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if idx := s.indexLocked(id); idx >= 0 {
		return s.expenses[idx], true
	}
	return core.Expense{}, false
}

// List returns the collection sorted by date descending (most recent first).
// The ordering is a derived view; the persisted order is insertion order.
func (s *Store) List() []core.Expense {
	s.mu.Lock()
	out := s.snapshotLocked()
	s.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// TotalAmount sums amounts over the full collection.
func (s *Store) TotalAmount() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, e := range s.expenses {
		total += e.Amount
	}
	return total
}

// Clear drops the in-memory collection and the persisted one.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.expenses = nil
	s.mu.Unlock()

	if err := s.storage.Clear(ctx); err != nil {
		return fmt.Errorf("clear storage: %w", err)
	}
	return nil
}

func (s *Store) indexLocked(id string) int {
	for i, e := range s.expenses {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) snapshotLocked() []core.Expense {
	return append([]core.Expense(nil), s.expenses...)
}

func (s *Store) persist(ctx context.Context, snapshot []core.Expense) error {
	if err := s.storage.Save(ctx, snapshot); err != nil {
		slog.ErrorContext(ctx, "Persisting expenses failed, in-memory state kept",
			"error", err, "count", len(snapshot))
		return fmt.Errorf("persist expenses: %w", err)
	}
	return nil
}
