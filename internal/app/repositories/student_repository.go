package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"prospecta/internal/app/models"
	"prospecta/internal/db"
	"prospecta/internal/pkg/dberrors"
)

// Student error types
var (
	ErrStudentNotFound   = errors.New("student not found")
	ErrStudentEmailTaken = errors.New("student with this email already exists")
)

// StudentRepository handles database operations for students
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

func (r *StudentRepository) q(ctx context.Context) db.DBTX {
	return db.QuerierFrom(ctx, r.pool)
}

const studentJoinedSelect = `
	SELECT s.id, s.full_name, s.email, s.phone_number, s.school_id, s.main_formation_id,
	       s.created_at, s.updated_at,
	       sc.id, sc.name, sc.city, sc.created_at, sc.updated_at,
	       f.id, f.name, f.description, f.degree_level, f.created_at, f.updated_at
	FROM students s
	LEFT JOIN schools sc ON sc.id = s.school_id
	LEFT JOIN formations f ON f.id = s.main_formation_id`

// scanJoinedStudent reads one row of studentJoinedSelect, building the
// nested school/formation only when the left join matched.
func scanJoinedStudent(row pgx.Row) (*models.Student, error) {
	var (
		student     models.Student
		schoolID    *int64
		schoolName  *string
		schoolCity  *string
		schoolCr    *time.Time
		schoolUp    *time.Time
		formationID *int64
		formName    *string
		formDesc    *string
		formLevel   *string
		formationCr *time.Time
		formationUp *time.Time
	)

	err := row.Scan(
		&student.ID,
		&student.FullName,
		&student.Email,
		&student.PhoneNumber,
		&student.SchoolID,
		&student.MainFormationID,
		&student.CreatedAt,
		&student.UpdatedAt,
		&schoolID, &schoolName, &schoolCity, &schoolCr, &schoolUp,
		&formationID, &formName, &formDesc, &formLevel, &formationCr, &formationUp,
	)
	if err != nil {
		return nil, err
	}

	if schoolID != nil {
		student.School = &models.School{
			ID:        *schoolID,
			Name:      *schoolName,
			City:      schoolCity,
			CreatedAt: *schoolCr,
			UpdatedAt: *schoolUp,
		}
	}

	if formationID != nil {
		student.MainFormation = &models.Formation{
			ID:          *formationID,
			Name:        *formName,
			Description: formDesc,
			DegreeLevel: formLevel,
			CreatedAt:   *formationCr,
			UpdatedAt:   *formationUp,
		}
	}

	return &student, nil
}

// Create inserts a new student and fills in its generated id and
// timestamps. An email collision surfaces as ErrStudentEmailTaken.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (full_name, email, phone_number, school_id, main_formation_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.q(ctx).QueryRow(ctx, query,
		student.FullName, student.Email, student.PhoneNumber, student.SchoolID, student.MainFormationID).
		Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err, "uq_students_email") {
			return ErrStudentEmailTaken
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID with its school and formation joined
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := scanJoinedStudent(r.q(ctx).QueryRow(ctx, studentJoinedSelect+" WHERE s.id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetAll retrieves students with their relations joined, ordered by
// full name, optionally filtered by school and/or formation.
func (r *StudentRepository) GetAll(ctx context.Context, schoolID, formationID *int64) ([]*models.Student, error) {
	query := studentJoinedSelect
	var (
		conditions []string
		args       []any
	)

	if schoolID != nil {
		args = append(args, *schoolID)
		conditions = append(conditions, fmt.Sprintf("s.school_id = $%d", len(args)))
	}
	if formationID != nil {
		args = append(args, *formationID)
		conditions = append(conditions, fmt.Sprintf("s.main_formation_id = $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY s.full_name"

	rows, err := r.q(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanJoinedStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	return students, rows.Err()
}

// CountBySchoolID counts students associated with a school
func (r *StudentRepository) CountBySchoolID(ctx context.Context, schoolID int64) (int64, error) {
	var count int64
	err := r.q(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM students WHERE school_id = $1`, schoolID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students by school: %w", err)
	}

	return count, nil
}

// CountByFormationID counts students whose main formation is the given one
func (r *StudentRepository) CountByFormationID(ctx context.Context, formationID int64) (int64, error) {
	var count int64
	err := r.q(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM students WHERE main_formation_id = $1`, formationID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students by formation: %w", err)
	}

	return count, nil
}

// Update persists the mutable student fields
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET full_name = $1, email = $2, phone_number = $3, school_id = $4,
		    main_formation_id = $5, updated_at = $6
		WHERE id = $7
	`

	cmdTag, err := r.q(ctx).Exec(ctx, query,
		student.FullName, student.Email, student.PhoneNumber,
		student.SchoolID, student.MainFormationID, student.UpdatedAt, student.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err, "uq_students_email") {
			return ErrStudentEmailTaken
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}

	return nil
}

// Delete deletes a student by ID; its interactions cascade away with it
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.q(ctx).Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrStudentNotFound
	}

	return nil
}
