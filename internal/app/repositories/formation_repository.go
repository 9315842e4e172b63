package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"prospecta/internal/app/models"
	"prospecta/internal/db"
	"prospecta/internal/pkg/dberrors"
)

// Formation error types
var (
	ErrFormationNotFound  = errors.New("formation not found")
	ErrFormationNameTaken = errors.New("formation with this name already exists")
)

// FormationRepository handles database operations for formations
type FormationRepository struct {
	pool *pgxpool.Pool
}

// NewFormationRepository creates a new formation repository
func NewFormationRepository(pool *pgxpool.Pool) *FormationRepository {
	return &FormationRepository{pool: pool}
}

func (r *FormationRepository) q(ctx context.Context) db.DBTX {
	return db.QuerierFrom(ctx, r.pool)
}

// Create inserts a new formation and fills in its generated id and
// timestamps. A name collision surfaces as ErrFormationNameTaken.
func (r *FormationRepository) Create(ctx context.Context, formation *models.Formation) error {
	query := `
		INSERT INTO formations (name, description, degree_level)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.q(ctx).QueryRow(ctx, query, formation.Name, formation.Description, formation.DegreeLevel).
		Scan(&formation.ID, &formation.CreatedAt, &formation.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err, "uq_formations_name") {
			return ErrFormationNameTaken
		}
		return fmt.Errorf("error creating formation: %w", err)
	}

	return nil
}

// GetByID retrieves a formation by ID
func (r *FormationRepository) GetByID(ctx context.Context, id int64) (*models.Formation, error) {
	query := `
		SELECT id, name, description, degree_level, created_at, updated_at
		FROM formations
		WHERE id = $1
	`

	var formation models.Formation
	err := r.q(ctx).QueryRow(ctx, query, id).Scan(
		&formation.ID,
		&formation.Name,
		&formation.Description,
		&formation.DegreeLevel,
		&formation.CreatedAt,
		&formation.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFormationNotFound
		}
		return nil, fmt.Errorf("error retrieving formation: %w", err)
	}

	return &formation, nil
}

// GetAll retrieves all formations ordered by name
func (r *FormationRepository) GetAll(ctx context.Context) ([]*models.Formation, error) {
	query := `
		SELECT id, name, description, degree_level, created_at, updated_at
		FROM formations
		ORDER BY name
	`

	rows, err := r.q(ctx).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var formations []*models.Formation
	for rows.Next() {
		var formation models.Formation
		if err := rows.Scan(
			&formation.ID,
			&formation.Name,
			&formation.Description,
			&formation.DegreeLevel,
			&formation.CreatedAt,
			&formation.UpdatedAt,
		); err != nil {
			return nil, err
		}
		formations = append(formations, &formation)
	}

	return formations, rows.Err()
}

// Update persists the mutable formation fields
func (r *FormationRepository) Update(ctx context.Context, formation *models.Formation) error {
	query := `
		UPDATE formations
		SET name = $1, description = $2, degree_level = $3, updated_at = $4
		WHERE id = $5
	`

	cmdTag, err := r.q(ctx).Exec(ctx, query,
		formation.Name, formation.Description, formation.DegreeLevel, formation.UpdatedAt, formation.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err, "uq_formations_name") {
			return ErrFormationNameTaken
		}
		return fmt.Errorf("error updating formation: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrFormationNotFound
	}

	return nil
}

// Delete deletes a formation by ID
func (r *FormationRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.q(ctx).Exec(ctx, `DELETE FROM formations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting formation: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrFormationNotFound
	}

	return nil
}
