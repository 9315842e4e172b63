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

// School error types
var (
	ErrSchoolNotFound  = errors.New("school not found")
	ErrSchoolNameTaken = errors.New("school with this name already exists")
)

// SchoolRepository handles database operations for schools
type SchoolRepository struct {
	pool *pgxpool.Pool
}

// NewSchoolRepository creates a new school repository
func NewSchoolRepository(pool *pgxpool.Pool) *SchoolRepository {
	return &SchoolRepository{pool: pool}
}

func (r *SchoolRepository) q(ctx context.Context) db.DBTX {
	return db.QuerierFrom(ctx, r.pool)
}

// Create inserts a new school and fills in its generated id and
// timestamps. A name collision surfaces as ErrSchoolNameTaken.
func (r *SchoolRepository) Create(ctx context.Context, school *models.School) error {
	query := `
		INSERT INTO schools (name, city)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`

	err := r.q(ctx).QueryRow(ctx, query, school.Name, school.City).
		Scan(&school.ID, &school.CreatedAt, &school.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err, "uq_schools_name") {
			return ErrSchoolNameTaken
		}
		return fmt.Errorf("error creating school: %w", err)
	}

	return nil
}

// GetByID retrieves a school by ID
func (r *SchoolRepository) GetByID(ctx context.Context, id int64) (*models.School, error) {
	query := `
		SELECT id, name, city, created_at, updated_at
		FROM schools
		WHERE id = $1
	`

	var school models.School
	err := r.q(ctx).QueryRow(ctx, query, id).Scan(
		&school.ID,
		&school.Name,
		&school.City,
		&school.CreatedAt,
		&school.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSchoolNotFound
		}
		return nil, fmt.Errorf("error retrieving school: %w", err)
	}

	return &school, nil
}

// GetAll retrieves all schools ordered by name
func (r *SchoolRepository) GetAll(ctx context.Context) ([]*models.School, error) {
	query := `
		SELECT id, name, city, created_at, updated_at
		FROM schools
		ORDER BY name
	`

	rows, err := r.q(ctx).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schools []*models.School
	for rows.Next() {
		var school models.School
		if err := rows.Scan(
			&school.ID,
			&school.Name,
			&school.City,
			&school.CreatedAt,
			&school.UpdatedAt,
		); err != nil {
			return nil, err
		}
		schools = append(schools, &school)
	}

	return schools, rows.Err()
}

// Update persists the mutable school fields
func (r *SchoolRepository) Update(ctx context.Context, school *models.School) error {
	query := `
		UPDATE schools
		SET name = $1, city = $2, updated_at = $3
		WHERE id = $4
	`

	cmdTag, err := r.q(ctx).Exec(ctx, query, school.Name, school.City, school.UpdatedAt, school.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err, "uq_schools_name") {
			return ErrSchoolNameTaken
		}
		return fmt.Errorf("error updating school: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrSchoolNotFound
	}

	return nil
}

// Delete deletes a school by ID
func (r *SchoolRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.q(ctx).Exec(ctx, `DELETE FROM schools WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting school: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrSchoolNotFound
	}

	return nil
}
