package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"prospecta/internal/app/models"
	"prospecta/internal/app/models/dto"
	"prospecta/internal/app/repositories"
	"prospecta/internal/pkg/apperrors"
	"prospecta/internal/pkg/logger"
)

// StudentService defines student business operations
type StudentService interface {
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	GetAllStudents(ctx context.Context, schoolID, formationID *int64) ([]*models.Student, error)
	UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
}

type studentService struct {
	studentRepo      StudentRepository
	schoolService    SchoolService
	formationService FormationService
	tx               TxRunner
}

// NewStudentService creates a new student service. Relation lookups and
// inline creations go through the school and formation services so
// their messages and invalidations apply unchanged.
func NewStudentService(
	studentRepo StudentRepository,
	schoolService SchoolService,
	formationService FormationService,
	tx TxRunner,
) StudentService {
	return &studentService{
		studentRepo:      studentRepo,
		schoolService:    schoolService,
		formationService: formationService,
		tx:               tx,
	}
}

// resolveSchool resolves a school reference to a concrete id. One of
// the two forms must be supplied; registration without a school is
// rejected.
func (s *studentService) resolveSchool(ctx context.Context, id *int64, inline *dto.CreateSchoolRequest) (*int64, error) {
	resolved, err := resolveRelation(ctx, id, inline,
		"Dados da Escola são obrigatórios para o cadastro",
		func(ctx context.Context, id int64) error {
			_, err := s.schoolService.GetSchoolByID(ctx, id)
			return err
		},
		func(ctx context.Context, inline *dto.CreateSchoolRequest) (int64, error) {
			school, err := s.schoolService.CreateSchool(ctx, inline)
			if err != nil {
				return 0, err
			}
			return school.ID, nil
		},
	)
	if err != nil {
		return nil, err
	}

	return &resolved, nil
}

// resolveFormation resolves a main formation reference; same contract
// as resolveSchool.
func (s *studentService) resolveFormation(ctx context.Context, id *int64, inline *dto.CreateFormationRequest) (*int64, error) {
	resolved, err := resolveRelation(ctx, id, inline,
		"Dados da Formação são obrigatórios para o cadastro.",
		func(ctx context.Context, id int64) error {
			_, err := s.formationService.GetFormationByID(ctx, id)
			return err
		},
		func(ctx context.Context, inline *dto.CreateFormationRequest) (int64, error) {
			formation, err := s.formationService.CreateFormation(ctx, inline)
			if err != nil {
				return 0, err
			}
			return formation.ID, nil
		},
	)
	if err != nil {
		return nil, err
	}

	return &resolved, nil
}

// CreateStudent creates a student, resolving or creating its school
// and main formation in the same transaction. Both relations are
// mandatory at registration, by id or inline; a failed relation rolls
// the whole creation back.
func (s *studentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	var created *models.Student

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		schoolID, err := s.resolveSchool(ctx, req.SchoolID, req.School)
		if err != nil {
			return err
		}

		formationID, err := s.resolveFormation(ctx, req.MainFormationID, req.MainFormation)
		if err != nil {
			return err
		}

		student := &models.Student{
			FullName:        req.FullName,
			Email:           req.Email,
			PhoneNumber:     req.PhoneNumber,
			SchoolID:        schoolID,
			MainFormationID: formationID,
		}

		if err := s.studentRepo.Create(ctx, student); err != nil {
			if errors.Is(err, repositories.ErrStudentEmailTaken) {
				return apperrors.AlreadyExists(fmt.Sprintf("Aluno com o email '%s' já existe.", req.Email))
			}
			logger.Error().Err(err).Str("email", req.Email).Msg("Failed to create student")
			return apperrors.Internal("Não foi possível criar o aluno.", err)
		}

		created, err = s.studentRepo.GetByID(ctx, student.ID)
		if err != nil {
			logger.Error().Err(err).Int64("id", student.ID).Msg("Failed to reload created student")
			return apperrors.Internal("Não foi possível criar o aluno.", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// GetStudentByID retrieves a student with its school and main formation
func (s *studentService) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return nil, apperrors.NotFound(fmt.Sprintf("Aluno com ID %d não encontrado.", id))
		}
		logger.Error().Err(err).Int64("id", id).Msg("Failed to retrieve student")
		return nil, apperrors.Internal("Não foi possível buscar o aluno.", err)
	}

	return student, nil
}

// GetAllStudents lists students, optionally filtered by school and/or
// main formation
func (s *studentService) GetAllStudents(ctx context.Context, schoolID, formationID *int64) ([]*models.Student, error) {
	students, err := s.studentRepo.GetAll(ctx, schoolID, formationID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list students")
		return nil, apperrors.Internal("Não foi possível listar os alunos.", err)
	}

	return students, nil
}

// UpdateStudent applies a partial update. Supplying either half of a
// relation pair re-runs the same resolve-or-create logic as creation,
// inside one transaction.
func (s *studentService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	var updated *models.Student

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		student, err := s.GetStudentByID(ctx, id)
		if err != nil {
			return err
		}

		if req.FullName != nil {
			student.FullName = *req.FullName
		}
		if req.Email != nil {
			student.Email = *req.Email
		}
		if req.PhoneNumber != nil {
			student.PhoneNumber = req.PhoneNumber
		}

		if (req.SchoolID != nil && *req.SchoolID != 0) || req.School != nil {
			schoolID, err := s.resolveSchool(ctx, req.SchoolID, req.School)
			if err != nil {
				return err
			}
			student.SchoolID = schoolID
		}

		if (req.MainFormationID != nil && *req.MainFormationID != 0) || req.MainFormation != nil {
			formationID, err := s.resolveFormation(ctx, req.MainFormationID, req.MainFormation)
			if err != nil {
				return err
			}
			student.MainFormationID = formationID
		}

		student.UpdatedAt = time.Now().UTC()

		if err := s.studentRepo.Update(ctx, student); err != nil {
			if errors.Is(err, repositories.ErrStudentEmailTaken) {
				return apperrors.AlreadyExists(fmt.Sprintf("Aluno com o email '%s' já existe.", student.Email))
			}
			if errors.Is(err, repositories.ErrStudentNotFound) {
				return apperrors.NotFound(fmt.Sprintf("Aluno com ID %d não encontrado.", id))
			}
			logger.Error().Err(err).Int64("id", id).Msg("Failed to update student")
			return apperrors.Internal("Não foi possível atualizar o aluno.", err)
		}

		updated, err = s.studentRepo.GetByID(ctx, id)
		if err != nil {
			logger.Error().Err(err).Int64("id", id).Msg("Failed to reload updated student")
			return apperrors.Internal("Não foi possível atualizar o aluno.", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteStudent removes a student. Its interactions go with it via the
// cascading foreign key.
func (s *studentService) DeleteStudent(ctx context.Context, id int64) error {
	if err := s.studentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrStudentNotFound) {
			return apperrors.NotFound(fmt.Sprintf("Aluno com ID %d não encontrado.", id))
		}
		logger.Error().Err(err).Int64("id", id).Msg("Failed to delete student")
		return apperrors.Internal("Não foi possível deletar o aluno.", err)
	}

	return nil
}
