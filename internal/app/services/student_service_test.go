package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prospecta/internal/app/models/dto"
	"prospecta/internal/pkg/apperrors"
)

// studentReq builds a valid creation request: school and main
// formation are mandatory, so each student gets fresh inline ones
// named after them.
func studentReq(fullName, email string) *dto.CreateStudentRequest {
	return &dto.CreateStudentRequest{
		FullName:      fullName,
		Email:         email,
		School:        &dto.CreateSchoolRequest{Name: "Escola de " + fullName},
		MainFormation: &dto.CreateFormationRequest{Name: "Formação de " + fullName},
	}
}

func TestCreateStudentRequiresSchool(t *testing.T) {
	env := newTestEnv()

	_, err := env.students.CreateStudent(context.Background(), &dto.CreateStudentRequest{
		FullName:      "Ana Souza",
		Email:         "ana@example.com",
		MainFormation: &dto.CreateFormationRequest{Name: "Direito"},
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidInput, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "Dados da Escola são obrigatórios")
	assert.Empty(t, env.studentRepo.students)
}

func TestCreateStudentRequiresFormation(t *testing.T) {
	env := newTestEnv()

	_, err := env.students.CreateStudent(context.Background(), &dto.CreateStudentRequest{
		FullName: "Ana Souza",
		Email:    "ana@example.com",
		School:   &dto.CreateSchoolRequest{Name: "Liceu Central"},
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidInput, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "Dados da Formação são obrigatórios")

	// The school created before the rejection must not survive it.
	assert.Empty(t, env.schoolRepo.schools)
	assert.Empty(t, env.studentRepo.students)
}

func TestCreateStudentWithExistingRelations(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	school, err := env.schools.CreateSchool(ctx, &dto.CreateSchoolRequest{Name: "Liceu Central"})
	require.NoError(t, err)
	formation, err := env.formations.CreateFormation(ctx, &dto.CreateFormationRequest{Name: "Direito"})
	require.NoError(t, err)

	student, err := env.students.CreateStudent(ctx, &dto.CreateStudentRequest{
		FullName:        "Ana Souza",
		Email:           "ana@example.com",
		SchoolID:        ptr(school.ID),
		MainFormationID: ptr(formation.ID),
	})
	require.NoError(t, err)
	require.NotNil(t, student.SchoolID)
	assert.Equal(t, school.ID, *student.SchoolID)
	require.NotNil(t, student.MainFormationID)
	assert.Equal(t, formation.ID, *student.MainFormationID)
	assert.Equal(t, 1, env.tx.calls, "creation must run inside a transaction")
}

func TestCreateStudentWithInlineRelations(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	student, err := env.students.CreateStudent(ctx, &dto.CreateStudentRequest{
		FullName:      "Ana Souza",
		Email:         "ana@example.com",
		School:        &dto.CreateSchoolRequest{Name: "Liceu Novo", City: ptr("Braga")},
		MainFormation: &dto.CreateFormationRequest{Name: "Medicina"},
	})
	require.NoError(t, err)
	require.NotNil(t, student.SchoolID)
	require.NotNil(t, student.MainFormationID)

	school, err := env.schools.GetSchoolByID(ctx, *student.SchoolID)
	require.NoError(t, err)
	assert.Equal(t, "Liceu Novo", school.Name)

	formation, err := env.formations.GetFormationByID(ctx, *student.MainFormationID)
	require.NoError(t, err)
	assert.Equal(t, "Medicina", formation.Name)
}

func TestCreateStudentUnknownSchool(t *testing.T) {
	env := newTestEnv()

	_, err := env.students.CreateStudent(context.Background(), &dto.CreateStudentRequest{
		FullName:      "Ana Souza",
		Email:         "ana@example.com",
		SchoolID:      ptr(int64(999)),
		MainFormation: &dto.CreateFormationRequest{Name: "Direito"},
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "999")
}

func TestCreateStudentZeroSchoolIDCountsAsMissing(t *testing.T) {
	env := newTestEnv()

	_, err := env.students.CreateStudent(context.Background(), &dto.CreateStudentRequest{
		FullName:      "Ana Souza",
		Email:         "ana@example.com",
		SchoolID:      ptr(int64(0)),
		MainFormation: &dto.CreateFormationRequest{Name: "Direito"},
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidInput, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "Dados da Escola são obrigatórios")
}

func TestCreateStudentDuplicateEmail(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.students.CreateStudent(ctx, studentReq("Ana Souza", "ana@example.com"))
	require.NoError(t, err)

	_, err = env.students.CreateStudent(ctx, studentReq("Outra Ana", "ana@example.com"))
	require.Error(t, err)
	assert.Equal(t, apperrors.KindAlreadyExists, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "ana@example.com")
}

func TestCreateStudentDuplicateEmailRollsBackInlineRelations(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.students.CreateStudent(ctx, studentReq("Ana Souza", "ana@example.com"))
	require.NoError(t, err)

	// The inline school and formation are created first; the duplicate
	// email then fails the insert, and the rollback must take both
	// nested creations with it.
	_, err = env.students.CreateStudent(ctx, &dto.CreateStudentRequest{
		FullName:      "Outra Ana",
		Email:         "ana@example.com",
		School:        &dto.CreateSchoolRequest{Name: "Liceu Órfão"},
		MainFormation: &dto.CreateFormationRequest{Name: "Formação Órfã"},
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindAlreadyExists, apperrors.KindOf(err))

	schools, err := env.schools.GetAllSchools(ctx)
	require.NoError(t, err)
	require.Len(t, schools, 1)
	assert.NotEqual(t, "Liceu Órfão", schools[0].Name)

	formations, err := env.formations.GetAllFormations(ctx)
	require.NoError(t, err)
	assert.Len(t, formations, 1)
}

func TestCreateStudentInlineSchoolDuplicateName(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.schools.CreateSchool(ctx, &dto.CreateSchoolRequest{Name: "Liceu Central"})
	require.NoError(t, err)

	// The inline school collides; its ALREADY_EXISTS must surface
	// unchanged as the student's failure.
	_, err = env.students.CreateStudent(ctx, &dto.CreateStudentRequest{
		FullName:      "Ana Souza",
		Email:         "ana@example.com",
		School:        &dto.CreateSchoolRequest{Name: "Liceu Central"},
		MainFormation: &dto.CreateFormationRequest{Name: "Direito"},
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindAlreadyExists, apperrors.KindOf(err))
}

func TestGetAllStudentsFiltered(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	school, err := env.schools.CreateSchool(ctx, &dto.CreateSchoolRequest{Name: "Liceu Central"})
	require.NoError(t, err)

	_, err = env.students.CreateStudent(ctx, &dto.CreateStudentRequest{
		FullName:      "Ana Souza",
		Email:         "ana@example.com",
		SchoolID:      ptr(school.ID),
		MainFormation: &dto.CreateFormationRequest{Name: "Direito"},
	})
	require.NoError(t, err)
	_, err = env.students.CreateStudent(ctx, studentReq("Bruno Lima", "bruno@example.com"))
	require.NoError(t, err)

	all, err := env.students.GetAllStudents(ctx, nil, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := env.students.GetAllStudents(ctx, ptr(school.ID), nil)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Ana Souza", filtered[0].FullName)
}

func TestUpdateStudentPartial(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	req := studentReq("Ana Souza", "ana@example.com")
	req.PhoneNumber = ptr("912345678")
	student, err := env.students.CreateStudent(ctx, req)
	require.NoError(t, err)

	updated, err := env.students.UpdateStudent(ctx, student.ID, &dto.UpdateStudentRequest{
		FullName: ptr("Ana Maria Souza"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria Souza", updated.FullName)
	assert.Equal(t, "ana@example.com", updated.Email)
	require.NotNil(t, updated.PhoneNumber)
	assert.Equal(t, "912345678", *updated.PhoneNumber)
	assert.Equal(t, updated.SchoolID, student.SchoolID, "omitted relation pair must keep its value")
}

func TestUpdateStudentResolvesNewRelation(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	student, err := env.students.CreateStudent(ctx, studentReq("Ana Souza", "ana@example.com"))
	require.NoError(t, err)

	updated, err := env.students.UpdateStudent(ctx, student.ID, &dto.UpdateStudentRequest{
		School: &dto.CreateSchoolRequest{Name: "Liceu Criado no Update"},
	})
	require.NoError(t, err)
	require.NotNil(t, updated.SchoolID)
	assert.NotEqual(t, *student.SchoolID, *updated.SchoolID)

	school, err := env.schools.GetSchoolByID(ctx, *updated.SchoolID)
	require.NoError(t, err)
	assert.Equal(t, "Liceu Criado no Update", school.Name)
}

func TestUpdateStudentUnknownFormation(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	student, err := env.students.CreateStudent(ctx, studentReq("Ana Souza", "ana@example.com"))
	require.NoError(t, err)

	_, err = env.students.UpdateStudent(ctx, student.ID, &dto.UpdateStudentRequest{
		MainFormationID: ptr(int64(404)),
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestDeleteStudent(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	student, err := env.students.CreateStudent(ctx, studentReq("Ana Souza", "ana@example.com"))
	require.NoError(t, err)

	require.NoError(t, env.students.DeleteStudent(ctx, student.ID))

	_, err = env.students.GetStudentByID(ctx, student.ID)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}
