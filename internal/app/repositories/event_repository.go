package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"prospecta/internal/app/models"
	"prospecta/internal/db"
)

// Event error types
var (
	ErrEventNotFound = errors.New("event not found")
)

// EventRepository handles database operations for events
type EventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository creates a new event repository
func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

func (r *EventRepository) q(ctx context.Context) db.DBTX {
	return db.QuerierFrom(ctx, r.pool)
}

// Create inserts a new event and fills in its generated id and timestamp
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	query := `
		INSERT INTO events (event_name, event_date, event_location, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.q(ctx).QueryRow(ctx, query,
		event.EventName, event.EventDate, event.EventLocation, event.Description).
		Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating event: %w", err)
	}

	return nil
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	query := `
		SELECT id, event_name, event_date, event_location, description, created_at
		FROM events
		WHERE id = $1
	`

	var event models.Event
	err := r.q(ctx).QueryRow(ctx, query, id).Scan(
		&event.ID,
		&event.EventName,
		&event.EventDate,
		&event.EventLocation,
		&event.Description,
		&event.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("error retrieving event: %w", err)
	}

	return &event, nil
}

// GetAll retrieves all events, most recent first
func (r *EventRepository) GetAll(ctx context.Context) ([]*models.Event, error) {
	query := `
		SELECT id, event_name, event_date, event_location, description, created_at
		FROM events
		ORDER BY event_date DESC
	`

	rows, err := r.q(ctx).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		var event models.Event
		if err := rows.Scan(
			&event.ID,
			&event.EventName,
			&event.EventDate,
			&event.EventLocation,
			&event.Description,
			&event.CreatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, &event)
	}

	return events, rows.Err()
}

// Update persists the mutable event fields. Events carry no updated_at.
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	query := `
		UPDATE events
		SET event_name = $1, event_date = $2, event_location = $3, description = $4
		WHERE id = $5
	`

	cmdTag, err := r.q(ctx).Exec(ctx, query,
		event.EventName, event.EventDate, event.EventLocation, event.Description, event.ID)
	if err != nil {
		return fmt.Errorf("error updating event: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrEventNotFound
	}

	return nil
}

// Delete deletes an event by ID
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.q(ctx).Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrEventNotFound
	}

	return nil
}
