package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"outlay/internal/core"

	_ "modernc.org/sqlite"
)

// SQLite persists the collection in a local sqlite database. Save keeps the
// overwrite semantics of the port: the table is rewritten in one transaction.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(dbPath string) (*SQLite, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load returns all persisted expenses in insertion order. Rows that fail to
// decode are skipped so one bad row cannot take the whole collection down.
func (s *SQLite) Load(ctx context.Context) ([]core.Expense, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, date, amount_cents, category, description, created_at, updated_at
		FROM expenses ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	var out []core.Expense
	for rows.Next() {
		var (
			e                      core.Expense
			date, created, updated string
			category               string
		)
		if err := rows.Scan(&e.ID, &date, &e.Amount, &category, &e.Description, &created, &updated); err != nil {
			return nil, fmt.Errorf("scan expense row: %w", err)
		}
		e.Category = core.Category(category)

		var ok bool
		if e.Date, ok = parseStamp(ctx, e.ID, "date", date); !ok {
			continue
		}
		if e.CreatedAt, ok = parseStamp(ctx, e.ID, "created_at", created); !ok {
			continue
		}
		if e.UpdatedAt, ok = parseStamp(ctx, e.ID, "updated_at", updated); !ok {
			continue
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expense rows: %w", err)
	}
	return out, nil
}

// Save replaces the persisted collection with the given one.
func (s *SQLite) Save(ctx context.Context, expenses []core.Expense) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM expenses`); err != nil {
		return fmt.Errorf("clear expenses table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO expenses (id, date, amount_cents, category, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range expenses {
		_, err := stmt.ExecContext(ctx,
			e.ID,
			e.Date.UTC().Format(time.RFC3339Nano),
			e.Amount,
			string(e.Category),
			e.Description,
			e.CreatedAt.UTC().Format(time.RFC3339Nano),
			e.UpdatedAt.UTC().Format(time.RFC3339Nano),
		)
		if err != nil {
			return fmt.Errorf("insert expense %s: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save transaction: %w", err)
	}
	return nil
}

func (s *SQLite) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM expenses`); err != nil {
		return fmt.Errorf("clear expenses: %w", err)
	}
	return nil
}

func parseStamp(ctx context.Context, id, column, value string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		slog.WarnContext(ctx, "Skipping expense row with bad timestamp",
			"id", id, "column", column, "value", value)
		return time.Time{}, false
	}
	return t, true
}
