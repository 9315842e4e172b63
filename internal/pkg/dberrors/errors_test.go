package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	err := &pgconn.PgError{Code: "23505", ConstraintName: "uq_schools_name"}

	assert.True(t, IsUniqueViolation(err, "uq_schools_name"))
	assert.False(t, IsUniqueViolation(err, "uq_students_email"))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", err), "uq_schools_name"))
}

func TestIsUniqueViolationOtherErrors(t *testing.T) {
	assert.False(t, IsUniqueViolation(errors.New("boom"), "uq_schools_name"))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503", ConstraintName: "uq_schools_name"}, "uq_schools_name"))
	assert.False(t, IsUniqueViolation(nil, "uq_schools_name"))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsForeignKeyViolation(errors.New("boom")))
}
