// internal/repository/postgres/event_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"secad-service/internal/domain/event"
	xerrors "secad-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/oklog/ulid/v2"
)

const eventColumns = `
	id, title, order_number, start_at, end_at, location, description, color,
	created_at, updated_at
`

type EventRepository struct {
	db *DB
}

func NewEventRepository(db *DB) *EventRepository {
	return &EventRepository{db: db}
}

// Create inserts a new service order, assigning its id and color.
func (r *EventRepository) Create(ctx context.Context, e *event.Event) error {
	q := `
		INSERT INTO events (
			id, title, order_number, start_at, end_at, location, description, color
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	e.ID = ulid.Make().String()
	e.Color = event.ColorFor(e.ID)

	err := r.db.QueryRow(
		ctx, q,
		e.ID, e.Title, e.OrderNumber, e.Start, e.End, e.Location, e.Description, e.Color,
	).Scan(&e.CreatedAt, &e.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	return nil
}

// FindByID retrieves a service order by id.
func (r *EventRepository) FindByID(ctx context.Context, id string) (*event.Event, error) {
	q := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	var e event.Event
	err := r.db.QueryRow(ctx, q, id).Scan(
		&e.ID, &e.Title, &e.OrderNumber, &e.Start, &e.End, &e.Location,
		&e.Description, &e.Color, &e.CreatedAt, &e.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find event: %w", err)
	}

	return &e, nil
}

// Update rewrites the editable columns. The color is fixed at creation.
func (r *EventRepository) Update(ctx context.Context, e *event.Event) error {
	q := `
		UPDATE events
		SET title = $1, order_number = $2, start_at = $3, end_at = $4,
		    location = $5, description = $6, updated_at = $7
		WHERE id = $8
	`

	result, err := r.db.Exec(
		ctx, q,
		e.Title, e.OrderNumber, e.Start, e.End,
		e.Location, e.Description, time.Now(), e.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

// Delete removes the service order permanently.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	return nil
}

// List returns every service order ordered by start time.
func (r *EventRepository) List(ctx context.Context) ([]event.Event, error) {
	q := `SELECT ` + eventColumns + ` FROM events ORDER BY start_at`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	events := []event.Event{}
	for rows.Next() {
		var e event.Event
		err := rows.Scan(
			&e.ID, &e.Title, &e.OrderNumber, &e.Start, &e.End, &e.Location,
			&e.Description, &e.Color, &e.CreatedAt, &e.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, e)
	}

	return events, rows.Err()
}
