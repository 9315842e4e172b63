package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"prospecta/internal/app/models"
	"prospecta/internal/db"
	"prospecta/internal/pkg/dberrors"
)

// Interaction error types
var (
	ErrInteractionNotFound  = errors.New("interaction not found")
	ErrInteractionDuplicate = errors.New("student already has an interaction with this event")
)

// InteractionRepository handles database operations for interactions
type InteractionRepository struct {
	pool *pgxpool.Pool
}

// NewInteractionRepository creates a new interaction repository
func NewInteractionRepository(pool *pgxpool.Pool) *InteractionRepository {
	return &InteractionRepository{pool: pool}
}

func (r *InteractionRepository) q(ctx context.Context) db.DBTX {
	return db.QuerierFrom(ctx, r.pool)
}

const interactionJoinedSelect = `
	SELECT i.id, i.student_id, i.event_id, i.interaction_date,
	       s.id, s.full_name, s.email, s.phone_number, s.school_id, s.main_formation_id,
	       s.created_at, s.updated_at,
	       e.id, e.event_name, e.event_date, e.event_location, e.description, e.created_at
	FROM interactions i
	JOIN students s ON s.id = i.student_id
	JOIN events e ON e.id = i.event_id`

func scanJoinedInteraction(row pgx.Row) (*models.Interaction, error) {
	var (
		interaction models.Interaction
		student     models.Student
		event       models.Event
	)

	err := row.Scan(
		&interaction.ID,
		&interaction.StudentID,
		&interaction.EventID,
		&interaction.InteractionDate,
		&student.ID, &student.FullName, &student.Email, &student.PhoneNumber,
		&student.SchoolID, &student.MainFormationID, &student.CreatedAt, &student.UpdatedAt,
		&event.ID, &event.EventName, &event.EventDate, &event.EventLocation,
		&event.Description, &event.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	interaction.Student = &student
	interaction.Event = &event
	return &interaction, nil
}

// Create inserts a new interaction linking a student to an event. A
// duplicate (student_id, event_id) pair surfaces as
// ErrInteractionDuplicate.
func (r *InteractionRepository) Create(ctx context.Context, interaction *models.Interaction) error {
	query := `
		INSERT INTO interactions (student_id, event_id)
		VALUES ($1, $2)
		RETURNING id, interaction_date
	`

	err := r.q(ctx).QueryRow(ctx, query, interaction.StudentID, interaction.EventID).
		Scan(&interaction.ID, &interaction.InteractionDate)
	if err != nil {
		if dberrors.IsUniqueViolation(err, "uq_interactions_student_event") {
			return ErrInteractionDuplicate
		}
		return fmt.Errorf("error creating interaction: %w", err)
	}

	return nil
}

// GetByID retrieves an interaction by ID with student and event joined
func (r *InteractionRepository) GetByID(ctx context.Context, id int64) (*models.Interaction, error) {
	interaction, err := scanJoinedInteraction(r.q(ctx).QueryRow(ctx, interactionJoinedSelect+" WHERE i.id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInteractionNotFound
		}
		return nil, fmt.Errorf("error retrieving interaction: %w", err)
	}

	return interaction, nil
}

// GetAll retrieves interactions with relations joined, oldest first,
// optionally filtered by student and/or event.
func (r *InteractionRepository) GetAll(ctx context.Context, studentID, eventID *int64) ([]*models.Interaction, error) {
	query := interactionJoinedSelect
	var (
		conditions []string
		args       []any
	)

	if studentID != nil {
		args = append(args, *studentID)
		conditions = append(conditions, fmt.Sprintf("i.student_id = $%d", len(args)))
	}
	if eventID != nil {
		args = append(args, *eventID)
		conditions = append(conditions, fmt.Sprintf("i.event_id = $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY i.interaction_date"

	rows, err := r.q(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var interactions []*models.Interaction
	for rows.Next() {
		interaction, err := scanJoinedInteraction(rows)
		if err != nil {
			return nil, err
		}
		interactions = append(interactions, interaction)
	}

	return interactions, rows.Err()
}

// CountByEventID counts interactions referencing an event
func (r *InteractionRepository) CountByEventID(ctx context.Context, eventID int64) (int64, error) {
	var count int64
	err := r.q(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM interactions WHERE event_id = $1`, eventID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting interactions by event: %w", err)
	}

	return count, nil
}

// Delete deletes an interaction by ID
func (r *InteractionRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.q(ctx).Exec(ctx, `DELETE FROM interactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting interaction: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrInteractionNotFound
	}

	return nil
}
