package services

import (
	"context"
	"errors"
	"fmt"

	"prospecta/internal/app/models"
	"prospecta/internal/app/models/dto"
	"prospecta/internal/app/repositories"
	"prospecta/internal/pkg/apperrors"
	"prospecta/internal/pkg/logger"
)

// InteractionService defines interaction business operations
type InteractionService interface {
	CreateInteraction(ctx context.Context, req *dto.CreateInteractionRequest) (*models.Interaction, error)
	GetInteractionByID(ctx context.Context, id int64) (*models.Interaction, error)
	GetAllInteractions(ctx context.Context, studentID, eventID *int64) ([]*models.Interaction, error)
	DeleteInteraction(ctx context.Context, id int64) error
}

type interactionService struct {
	interactionRepo InteractionRepository
	studentService  StudentService
	eventService    EventService
	tx              TxRunner
}

// NewInteractionService creates a new interaction service
func NewInteractionService(
	interactionRepo InteractionRepository,
	studentService StudentService,
	eventService EventService,
	tx TxRunner,
) InteractionService {
	return &interactionService{
		interactionRepo: interactionRepo,
		studentService:  studentService,
		eventService:    eventService,
		tx:              tx,
	}
}

// CreateInteraction links a student to an event. Either side may be an
// existing id or an inline object created in the same transaction; if
// any part fails, nothing is persisted. The unique constraint on the
// (student, event) pair is authoritative for duplicate detection.
func (s *interactionService) CreateInteraction(ctx context.Context, req *dto.CreateInteractionRequest) (*models.Interaction, error) {
	var created *models.Interaction

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		studentID, err := resolveRelation(ctx, req.StudentID, req.Student,
			"Forneça 'student_id' ou 'student' para criar a interação.",
			func(ctx context.Context, id int64) error {
				_, err := s.studentService.GetStudentByID(ctx, id)
				return err
			},
			func(ctx context.Context, inline *dto.CreateStudentRequest) (int64, error) {
				student, err := s.studentService.CreateStudent(ctx, inline)
				if err != nil {
					return 0, err
				}
				return student.ID, nil
			},
		)
		if err != nil {
			return err
		}

		eventID, err := resolveRelation(ctx, req.EventID, req.Event,
			"Forneça 'event_id' ou 'event' para criar a interação.",
			func(ctx context.Context, id int64) error {
				_, err := s.eventService.GetEventByID(ctx, id)
				return err
			},
			func(ctx context.Context, inline *dto.CreateEventRequest) (int64, error) {
				event, err := s.eventService.CreateEvent(ctx, inline)
				if err != nil {
					return 0, err
				}
				return event.ID, nil
			},
		)
		if err != nil {
			return err
		}

		interaction := &models.Interaction{
			StudentID: studentID,
			EventID:   eventID,
		}

		if err := s.interactionRepo.Create(ctx, interaction); err != nil {
			if errors.Is(err, repositories.ErrInteractionDuplicate) {
				return apperrors.AlreadyExists("Este aluno já está registrado para este evento (interação duplicada).")
			}
			logger.Error().Err(err).
				Int64("student_id", studentID).
				Int64("event_id", eventID).
				Msg("Failed to create interaction")
			return apperrors.Internal("Não foi possível criar a interação.", err)
		}

		created, err = s.interactionRepo.GetByID(ctx, interaction.ID)
		if err != nil {
			logger.Error().Err(err).Int64("id", interaction.ID).Msg("Failed to reload created interaction")
			return apperrors.Internal("Não foi possível criar a interação.", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// GetInteractionByID retrieves an interaction with its student and
// event joined
func (s *interactionService) GetInteractionByID(ctx context.Context, id int64) (*models.Interaction, error) {
	interaction, err := s.interactionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrInteractionNotFound) {
			return nil, apperrors.NotFound(fmt.Sprintf("Interação com ID %d não encontrada.", id))
		}
		logger.Error().Err(err).Int64("id", id).Msg("Failed to retrieve interaction")
		return nil, apperrors.Internal("Não foi possível buscar a interação.", err)
	}

	return interaction, nil
}

// GetAllInteractions lists interactions, optionally filtered by student
// and/or event
func (s *interactionService) GetAllInteractions(ctx context.Context, studentID, eventID *int64) ([]*models.Interaction, error) {
	interactions, err := s.interactionRepo.GetAll(ctx, studentID, eventID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list interactions")
		return nil, apperrors.Internal("Não foi possível listar as interações.", err)
	}

	return interactions, nil
}

// DeleteInteraction removes an interaction
func (s *interactionService) DeleteInteraction(ctx context.Context, id int64) error {
	if err := s.interactionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrInteractionNotFound) {
			return apperrors.NotFound(fmt.Sprintf("Interação com ID %d não encontrada.", id))
		}
		logger.Error().Err(err).Int64("id", id).Msg("Failed to delete interaction")
		return apperrors.Internal("Não foi possível deletar a interação.", err)
	}

	return nil
}
