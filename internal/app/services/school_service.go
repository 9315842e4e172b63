package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"prospecta/internal/app/models"
	"prospecta/internal/app/models/dto"
	"prospecta/internal/app/repositories"
	"prospecta/internal/db"
	"prospecta/internal/pkg/apperrors"
	"prospecta/internal/pkg/cache"
	"prospecta/internal/pkg/logger"
)

// schoolsCacheKey holds the cached full school listing.
const schoolsCacheKey = "schools:all"

// SchoolService defines school business operations
type SchoolService interface {
	CreateSchool(ctx context.Context, req *dto.CreateSchoolRequest) (*models.School, error)
	GetSchoolByID(ctx context.Context, id int64) (*models.School, error)
	GetAllSchools(ctx context.Context) ([]*models.School, error)
	UpdateSchool(ctx context.Context, id int64, req *dto.UpdateSchoolRequest) (*models.School, error)
	DeleteSchool(ctx context.Context, id int64) error
}

type schoolService struct {
	schoolRepo  SchoolRepository
	studentRepo StudentRepository
	tx          TxRunner
	cache       *cache.Cache
}

// NewSchoolService creates a new school service
func NewSchoolService(schoolRepo SchoolRepository, studentRepo StudentRepository, tx TxRunner, c *cache.Cache) SchoolService {
	return &schoolService{
		schoolRepo:  schoolRepo,
		studentRepo: studentRepo,
		tx:          tx,
		cache:       c,
	}
}

// CreateSchool creates a new school. The unique constraint on the name
// is authoritative: a collision maps to ALREADY_EXISTS even when two
// requests race past any prior check.
func (s *schoolService) CreateSchool(ctx context.Context, req *dto.CreateSchoolRequest) (*models.School, error) {
	school := &models.School{
		Name: req.Name,
		City: req.City,
	}

	if err := s.schoolRepo.Create(ctx, school); err != nil {
		if errors.Is(err, repositories.ErrSchoolNameTaken) {
			return nil, apperrors.AlreadyExists(fmt.Sprintf("Escola com o nome '%s' já existe.", req.Name))
		}
		logger.Error().Err(err).Str("name", req.Name).Msg("Failed to create school")
		return nil, apperrors.Internal("Não foi possível criar a escola.", err)
	}

	// Creation may run inside a caller's transaction (inline school on
	// a student); invalidating before that commit would let a
	// concurrent listing recache the old state.
	db.AfterCommit(ctx, func() {
		s.cache.Invalidate(ctx, schoolsCacheKey)
	})
	return school, nil
}

// GetSchoolByID retrieves a school by its ID
func (s *schoolService) GetSchoolByID(ctx context.Context, id int64) (*models.School, error) {
	school, err := s.schoolRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSchoolNotFound) {
			return nil, apperrors.NotFound(fmt.Sprintf("Escola com ID %d não encontrada.", id))
		}
		logger.Error().Err(err).Int64("id", id).Msg("Failed to retrieve school")
		return nil, apperrors.Internal("Não foi possível buscar a escola.", err)
	}

	return school, nil
}

// GetAllSchools lists all schools, serving from the cache when warm
func (s *schoolService) GetAllSchools(ctx context.Context) ([]*models.School, error) {
	var cached []*models.School
	if found, err := s.cache.GetJSON(ctx, schoolsCacheKey, &cached); err == nil && found {
		return cached, nil
	}

	schools, err := s.schoolRepo.GetAll(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list schools")
		return nil, apperrors.Internal("Não foi possível listar as escolas.", err)
	}

	s.cache.SetJSON(ctx, schoolsCacheKey, schools)
	return schools, nil
}

// UpdateSchool applies a partial update; nil fields keep their prior
// value
func (s *schoolService) UpdateSchool(ctx context.Context, id int64, req *dto.UpdateSchoolRequest) (*models.School, error) {
	school, err := s.GetSchoolByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		school.Name = *req.Name
	}
	if req.City != nil {
		school.City = req.City
	}
	school.UpdatedAt = time.Now().UTC()

	if err := s.schoolRepo.Update(ctx, school); err != nil {
		if errors.Is(err, repositories.ErrSchoolNameTaken) {
			return nil, apperrors.AlreadyExists(fmt.Sprintf("Escola com o nome '%s' já existe.", school.Name))
		}
		if errors.Is(err, repositories.ErrSchoolNotFound) {
			return nil, apperrors.NotFound(fmt.Sprintf("Escola com ID %d não encontrada.", id))
		}
		logger.Error().Err(err).Int64("id", id).Msg("Failed to update school")
		return nil, apperrors.Internal("Não foi possível atualizar a escola.", err)
	}

	s.cache.Invalidate(ctx, schoolsCacheKey)
	return school, nil
}

// DeleteSchool removes a school. The dependency check and the delete
// run in one transaction so a student created in between cannot be
// orphaned.
func (s *schoolService) DeleteSchool(ctx context.Context, id int64) error {
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.GetSchoolByID(ctx, id); err != nil {
			return err
		}

		count, err := s.studentRepo.CountBySchoolID(ctx, id)
		if err != nil {
			logger.Error().Err(err).Int64("id", id).Msg("Failed to count students for school")
			return apperrors.Internal("Não foi possível deletar a escola.", err)
		}
		if count > 0 {
			return apperrors.Dependency("Não é possível deletar a escola. Alunos estão associados a ela.")
		}

		if err := s.schoolRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, repositories.ErrSchoolNotFound) {
				return apperrors.NotFound(fmt.Sprintf("Escola com ID %d não encontrada.", id))
			}
			logger.Error().Err(err).Int64("id", id).Msg("Failed to delete school")
			return apperrors.Internal("Não foi possível deletar a escola.", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.cache.Invalidate(ctx, schoolsCacheKey)
	return nil
}
