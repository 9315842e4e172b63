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

// formationsCacheKey holds the cached full formation listing.
const formationsCacheKey = "formations:all"

// FormationService defines formation business operations
type FormationService interface {
	CreateFormation(ctx context.Context, req *dto.CreateFormationRequest) (*models.Formation, error)
	GetFormationByID(ctx context.Context, id int64) (*models.Formation, error)
	GetAllFormations(ctx context.Context) ([]*models.Formation, error)
	UpdateFormation(ctx context.Context, id int64, req *dto.UpdateFormationRequest) (*models.Formation, error)
	DeleteFormation(ctx context.Context, id int64) error
}

type formationService struct {
	formationRepo FormationRepository
	studentRepo   StudentRepository
	tx            TxRunner
	cache         *cache.Cache
}

// NewFormationService creates a new formation service
func NewFormationService(formationRepo FormationRepository, studentRepo StudentRepository, tx TxRunner, c *cache.Cache) FormationService {
	return &formationService{
		formationRepo: formationRepo,
		studentRepo:   studentRepo,
		tx:            tx,
		cache:         c,
	}
}

// CreateFormation creates a new formation. The unique constraint on the
// name is authoritative for duplicate detection.
func (s *formationService) CreateFormation(ctx context.Context, req *dto.CreateFormationRequest) (*models.Formation, error) {
	formation := &models.Formation{
		Name:        req.Name,
		Description: req.Description,
		DegreeLevel: req.DegreeLevel,
	}

	if err := s.formationRepo.Create(ctx, formation); err != nil {
		if errors.Is(err, repositories.ErrFormationNameTaken) {
			return nil, apperrors.AlreadyExists(fmt.Sprintf("Formação com o nome '%s' já existe.", req.Name))
		}
		logger.Error().Err(err).Str("name", req.Name).Msg("Failed to create formation")
		return nil, apperrors.Internal("Não foi possível criar a formação.", err)
	}

	// Creation may run inside a caller's transaction (inline formation
	// on a student); invalidation waits for that commit.
	db.AfterCommit(ctx, func() {
		s.cache.Invalidate(ctx, formationsCacheKey)
	})
	return formation, nil
}

// GetFormationByID retrieves a formation by its ID
func (s *formationService) GetFormationByID(ctx context.Context, id int64) (*models.Formation, error) {
	formation, err := s.formationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrFormationNotFound) {
			return nil, apperrors.NotFound(fmt.Sprintf("Formação com ID %d não encontrada.", id))
		}
		logger.Error().Err(err).Int64("id", id).Msg("Failed to retrieve formation")
		return nil, apperrors.Internal("Não foi possível buscar a formação.", err)
	}

	return formation, nil
}

// GetAllFormations lists all formations, serving from the cache when warm
func (s *formationService) GetAllFormations(ctx context.Context) ([]*models.Formation, error) {
	var cached []*models.Formation
	if found, err := s.cache.GetJSON(ctx, formationsCacheKey, &cached); err == nil && found {
		return cached, nil
	}

	formations, err := s.formationRepo.GetAll(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list formations")
		return nil, apperrors.Internal("Não foi possível listar as formações.", err)
	}

	s.cache.SetJSON(ctx, formationsCacheKey, formations)
	return formations, nil
}

// UpdateFormation applies a partial update; nil fields keep their prior
// value
func (s *formationService) UpdateFormation(ctx context.Context, id int64, req *dto.UpdateFormationRequest) (*models.Formation, error) {
	formation, err := s.GetFormationByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		formation.Name = *req.Name
	}
	if req.Description != nil {
		formation.Description = req.Description
	}
	if req.DegreeLevel != nil {
		formation.DegreeLevel = req.DegreeLevel
	}
	formation.UpdatedAt = time.Now().UTC()

	if err := s.formationRepo.Update(ctx, formation); err != nil {
		if errors.Is(err, repositories.ErrFormationNameTaken) {
			return nil, apperrors.AlreadyExists(fmt.Sprintf("Formação com o nome '%s' já existe.", formation.Name))
		}
		if errors.Is(err, repositories.ErrFormationNotFound) {
			return nil, apperrors.NotFound(fmt.Sprintf("Formação com ID %d não encontrada.", id))
		}
		logger.Error().Err(err).Int64("id", id).Msg("Failed to update formation")
		return nil, apperrors.Internal("Não foi possível atualizar a formação.", err)
	}

	s.cache.Invalidate(ctx, formationsCacheKey)
	return formation, nil
}

// DeleteFormation removes a formation unless students still point at it
// as their main formation. Check and delete share one transaction.
func (s *formationService) DeleteFormation(ctx context.Context, id int64) error {
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.GetFormationByID(ctx, id); err != nil {
			return err
		}

		count, err := s.studentRepo.CountByFormationID(ctx, id)
		if err != nil {
			logger.Error().Err(err).Int64("id", id).Msg("Failed to count students for formation")
			return apperrors.Internal("Não foi possível deletar a formação.", err)
		}
		if count > 0 {
			return apperrors.Dependency("Não é possível deletar a formação. Alunos estão associados a ela.")
		}

		if err := s.formationRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, repositories.ErrFormationNotFound) {
				return apperrors.NotFound(fmt.Sprintf("Formação com ID %d não encontrada.", id))
			}
			logger.Error().Err(err).Int64("id", id).Msg("Failed to delete formation")
			return apperrors.Internal("Não foi possível deletar a formação.", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.cache.Invalidate(ctx, formationsCacheKey)
	return nil
}
