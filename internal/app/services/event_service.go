package services

import (
	"context"
	"errors"
	"fmt"

	"prospecta/internal/app/models"
	"prospecta/internal/app/models/dto"
	"prospecta/internal/app/repositories"
	"prospecta/internal/pkg/apperrors"
	"prospecta/internal/pkg/helpers"
	"prospecta/internal/pkg/logger"
)

// EventService defines event business operations
type EventService interface {
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*models.Event, error)
	GetEventByID(ctx context.Context, id int64) (*models.Event, error)
	GetAllEvents(ctx context.Context) ([]*models.Event, error)
	UpdateEvent(ctx context.Context, id int64, req *dto.UpdateEventRequest) (*models.Event, error)
	DeleteEvent(ctx context.Context, id int64) error
}

type eventService struct {
	eventRepo       EventRepository
	interactionRepo InteractionRepository
	tx              TxRunner
}

// NewEventService creates a new event service
func NewEventService(eventRepo EventRepository, interactionRepo InteractionRepository, tx TxRunner) EventService {
	return &eventService{
		eventRepo:       eventRepo,
		interactionRepo: interactionRepo,
		tx:              tx,
	}
}

// CreateEvent creates a new event. The date must be a strict
// YYYY-MM-DD calendar date.
func (s *eventService) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*models.Event, error) {
	eventDate, err := helpers.ParseEventDate(req.EventDate)
	if err != nil {
		return nil, apperrors.InvalidInput("Formato de data inválido para event_date. Use AAAA-MM-DD.")
	}

	event := &models.Event{
		EventName:     req.EventName,
		EventDate:     eventDate,
		EventLocation: req.EventLocation,
		Description:   req.Description,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		logger.Error().Err(err).Str("event_name", req.EventName).Msg("Failed to create event")
		return nil, apperrors.Internal("Não foi possível criar o evento.", err)
	}

	return event, nil
}

// GetEventByID retrieves an event by its ID
func (s *eventService) GetEventByID(ctx context.Context, id int64) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, apperrors.NotFound(fmt.Sprintf("Evento com ID %d não encontrado.", id))
		}
		logger.Error().Err(err).Int64("id", id).Msg("Failed to retrieve event")
		return nil, apperrors.Internal("Não foi possível buscar o evento.", err)
	}

	return event, nil
}

// GetAllEvents lists all events, most recent first
func (s *eventService) GetAllEvents(ctx context.Context) ([]*models.Event, error) {
	events, err := s.eventRepo.GetAll(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list events")
		return nil, apperrors.Internal("Não foi possível listar os eventos.", err)
	}

	return events, nil
}

// UpdateEvent applies a partial update; nil fields keep their prior
// value. A supplied date is re-validated the same way as on create.
func (s *eventService) UpdateEvent(ctx context.Context, id int64, req *dto.UpdateEventRequest) (*models.Event, error) {
	event, err := s.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.EventName != nil {
		event.EventName = *req.EventName
	}
	if req.EventDate != nil {
		eventDate, err := helpers.ParseEventDate(*req.EventDate)
		if err != nil {
			return nil, apperrors.InvalidInput("Formato de data inválido para event_date. Use AAAA-MM-DD.")
		}
		event.EventDate = eventDate
	}
	if req.EventLocation != nil {
		event.EventLocation = req.EventLocation
	}
	if req.Description != nil {
		event.Description = req.Description
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, repositories.ErrEventNotFound) {
			return nil, apperrors.NotFound(fmt.Sprintf("Evento com ID %d não encontrado.", id))
		}
		logger.Error().Err(err).Int64("id", id).Msg("Failed to update event")
		return nil, apperrors.Internal("Não foi possível atualizar o evento.", err)
	}

	return event, nil
}

// DeleteEvent removes an event unless interactions still reference it.
// Check and delete share one transaction.
func (s *eventService) DeleteEvent(ctx context.Context, id int64) error {
	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.GetEventByID(ctx, id); err != nil {
			return err
		}

		count, err := s.interactionRepo.CountByEventID(ctx, id)
		if err != nil {
			logger.Error().Err(err).Int64("id", id).Msg("Failed to count interactions for event")
			return apperrors.Internal("Não foi possível deletar o evento.", err)
		}
		if count > 0 {
			return apperrors.Dependency("Não é possível deletar o evento. Interações estão associadas a ele.")
		}

		if err := s.eventRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, repositories.ErrEventNotFound) {
				return apperrors.NotFound(fmt.Sprintf("Evento com ID %d não encontrado.", id))
			}
			logger.Error().Err(err).Int64("id", id).Msg("Failed to delete event")
			return apperrors.Internal("Não foi possível deletar o evento.", err)
		}

		return nil
	})
}
