package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prospecta/internal/app/models/dto"
	"prospecta/internal/app/services"
	"prospecta/internal/middleware"
)

// InteractionController handles interaction-related operations
type InteractionController struct {
	interactionService services.InteractionService
}

// NewInteractionController creates a new InteractionController
func NewInteractionController(interactionService services.InteractionService) *InteractionController {
	return &InteractionController{interactionService: interactionService}
}

// CreateInteraction handles interaction creation
// @Summary Register a student at an event
// @Description Links a student to an event; either side may be an id or an inline object created in the same call
// @Tags interactions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.CreateInteractionRequest true "Interaction information"
// @Success 201 {object} dto.APIResponse{data=models.Interaction} "Interaction created successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 401 {object} dto.APIResponse "Missing or invalid API key"
// @Failure 404 {object} dto.APIResponse "Referenced student or event not found"
// @Failure 409 {object} dto.APIResponse "Student already registered for this event"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /interactions [post]
func (c *InteractionController) CreateInteraction(ctx *gin.Context) {
	var req dto.CreateInteractionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidInput, "Dados da interação inválidos.")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return
	}

	interaction, err := c.interactionService.CreateInteraction(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(interaction))
}

// GetInteractionByID retrieves an interaction by ID
// @Summary Get interaction by ID
// @Description Retrieves an interaction with its student and event
// @Tags interactions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Interaction ID"
// @Success 200 {object} dto.APIResponse{data=models.Interaction} "Interaction retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Invalid interaction ID"
// @Failure 401 {object} dto.APIResponse "Missing or invalid API key"
// @Failure 404 {object} dto.APIResponse "Interaction not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /interactions/{id} [get]
func (c *InteractionController) GetInteractionByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Interação")
	if !ok {
		return
	}

	interaction, err := c.interactionService.GetInteractionByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(interaction))
}

// GetAllInteractions retrieves interactions, optionally filtered
// @Summary List interactions
// @Description Retrieves interactions oldest first, optionally filtered by student and/or event
// @Tags interactions
// @Produce json
// @Security ApiKeyAuth
// @Param student_id query int false "Filter by student ID"
// @Param event_id query int false "Filter by event ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Interaction} "Interactions retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Invalid filter parameter"
// @Failure 401 {object} dto.APIResponse "Missing or invalid API key"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /interactions [get]
func (c *InteractionController) GetAllInteractions(ctx *gin.Context) {
	studentID, ok := parseOptionalIDQuery(ctx, "student_id")
	if !ok {
		return
	}
	eventID, ok := parseOptionalIDQuery(ctx, "event_id")
	if !ok {
		return
	}

	interactions, err := c.interactionService.GetAllInteractions(ctx, studentID, eventID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(interactions))
}

// DeleteInteraction handles interaction deletion
// @Summary Delete interaction
// @Description Removes an interaction between a student and an event
// @Tags interactions
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Interaction ID"
// @Success 204 "Interaction deleted successfully"
// @Failure 400 {object} dto.APIResponse "Invalid interaction ID"
// @Failure 401 {object} dto.APIResponse "Missing or invalid API key"
// @Failure 404 {object} dto.APIResponse "Interaction not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /interactions/{id} [delete]
func (c *InteractionController) DeleteInteraction(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Interação")
	if !ok {
		return
	}

	if err := c.interactionService.DeleteInteraction(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
