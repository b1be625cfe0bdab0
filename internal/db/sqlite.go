// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"almanac/internal/event"
)

// SQLite implements event.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// migrate creates the schema if it does not exist.
func (s *SQLite) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS events (
			id          TEXT PRIMARY KEY,
			title       TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			start_date  TEXT NOT NULL,
			end_date    TEXT NOT NULL,
			color       TEXT NOT NULL DEFAULT '',
			category    TEXT NOT NULL DEFAULT '',
			created_at  TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_events_start ON events(start_date);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// ListEvents returns all persisted events in creation order.
func (s *SQLite) ListEvents(ctx context.Context) ([]event.Event, error) {
	query := `
		SELECT id, title, description, start_date, end_date, color, category
		FROM events
		ORDER BY created_at, id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var events []event.Event
	for rows.Next() {
		var (
			e          event.Event
			start, end string
		)
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &start, &end, &e.Color, &e.Category); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}

		e.StartDate, err = parseTimestamp(start)
		if err != nil {
			return nil, fmt.Errorf("parsing start date: %w", err)
		}
		e.EndDate, err = parseTimestamp(end)
		if err != nil {
			return nil, fmt.Errorf("parsing end date: %w", err)
		}

		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}

	return events, nil
}

// CreateEvent persists a finalized event.
func (s *SQLite) CreateEvent(ctx context.Context, e event.Event) error {
	query := `
		INSERT INTO events (id, title, description, start_date, end_date, color, category, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		e.ID,
		e.Title,
		e.Description,
		e.StartDate.Format(time.RFC3339),
		e.EndDate.Format(time.RFC3339),
		e.Color,
		e.Category,
		time.Now().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}

	return nil
}

// UpdateEvent applies a partial update: only the non-nil patch fields are
// written. An empty patch is a no-op.
func (s *SQLite) UpdateEvent(ctx context.Context, id string, patch event.Patch) error {
	if patch.IsZero() {
		return nil
	}

	var (
		sets []string
		args []any
	)
	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.StartDate != nil {
		sets = append(sets, "start_date = ?")
		args = append(args, patch.StartDate.Format(time.RFC3339))
	}
	if patch.EndDate != nil {
		sets = append(sets, "end_date = ?")
		args = append(args, patch.EndDate.Format(time.RFC3339))
	}
	if patch.Color != nil {
		sets = append(sets, "color = ?")
		args = append(args, *patch.Color)
	}
	if patch.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, *patch.Category)
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE events SET %s WHERE id = ?", strings.Join(sets, ", "))
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating event: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("event %s: %w", id, event.ErrNotFound)
	}
	return nil
}

// DeleteEvent removes the event with the given id; missing ids are a no-op.
func (s *SQLite) DeleteEvent(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// parseTimestamp parses the RFC3339 timestamps this package writes.
func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.Local(), nil
}
