package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prospecta/internal/app/models/dto"
	"prospecta/internal/app/services"
	"prospecta/internal/middleware"
)

// EventController handles event-related operations
type EventController struct {
	eventService services.EventService
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService) *EventController {
	return &EventController{eventService: eventService}
}

// CreateEvent handles event creation
// @Summary Create a new event
// @Description Creates a new recruiting event; event_date must be YYYY-MM-DD
// @Tags events
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.CreateEventRequest true "Event information"
// @Success 201 {object} dto.APIResponse{data=models.Event} "Event created successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data or date format"
// @Failure 401 {object} dto.APIResponse "Missing or invalid API key"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /events [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidInput, "Dados do evento inválidos.")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return
	}

	event, err := c.eventService.CreateEvent(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(event))
}

// GetEventByID retrieves an event by ID
// @Summary Get event by ID
// @Description Retrieves a specific event by its ID
// @Tags events
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.APIResponse{data=models.Event} "Event retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Invalid event ID"
// @Failure 401 {object} dto.APIResponse "Missing or invalid API key"
// @Failure 404 {object} dto.APIResponse "Event not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /events/{id} [get]
func (c *EventController) GetEventByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Evento")
	if !ok {
		return
	}

	event, err := c.eventService.GetEventByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(event))
}

// GetAllEvents retrieves all events
// @Summary List events
// @Description Retrieves all events, most recent first
// @Tags events
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Event} "Events retrieved successfully"
// @Failure 401 {object} dto.APIResponse "Missing or invalid API key"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /events [get]
func (c *EventController) GetAllEvents(ctx *gin.Context) {
	events, err := c.eventService.GetAllEvents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(events))
}

// UpdateEvent handles a partial event update
// @Summary Update event
// @Description Updates the supplied fields of an event; omitted fields keep their value
// @Tags events
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Event ID"
// @Param request body dto.UpdateEventRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Event} "Event updated successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data or date format"
// @Failure 401 {object} dto.APIResponse "Missing or invalid API key"
// @Failure 404 {object} dto.APIResponse "Event not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /events/{id} [put]
func (c *EventController) UpdateEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Evento")
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidInput, "Dados do evento inválidos.")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return
	}

	event, err := c.eventService.UpdateEvent(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(event))
}

// DeleteEvent handles event deletion
// @Summary Delete event
// @Description Deletes an event that has no associated interactions
// @Tags events
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Event ID"
// @Success 204 "Event deleted successfully"
// @Failure 400 {object} dto.APIResponse "Interactions still reference this event"
// @Failure 401 {object} dto.APIResponse "Missing or invalid API key"
// @Failure 404 {object} dto.APIResponse "Event not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /events/{id} [delete]
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Evento")
	if !ok {
		return
	}

	if err := c.eventService.DeleteEvent(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
