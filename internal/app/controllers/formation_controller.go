package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prospecta/internal/app/models/dto"
	"prospecta/internal/app/services"
	"prospecta/internal/middleware"
)

// FormationController handles formation-related operations
type FormationController struct {
	formationService services.FormationService
}

// NewFormationController creates a new FormationController
func NewFormationController(formationService services.FormationService) *FormationController {
	return &FormationController{formationService: formationService}
}

// CreateFormation handles formation creation
// @Summary Create a new formation
// @Description Creates a new formation with a unique name
// @Tags formations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.CreateFormationRequest true "Formation information"
// @Success 201 {object} dto.APIResponse{data=models.Formation} "Formation created successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 401 {object} dto.APIResponse "Missing or invalid API key"
// @Failure 409 {object} dto.APIResponse "Formation name already in use"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /formations [post]
func (c *FormationController) CreateFormation(ctx *gin.Context) {
	var req dto.CreateFormationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidInput, "Dados da formação inválidos.")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return
	}

	formation, err := c.formationService.CreateFormation(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(formation))
}

// GetFormationByID retrieves a formation by ID
// @Summary Get formation by ID
// @Description Retrieves a specific formation by its ID
// @Tags formations
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Formation ID"
// @Success 200 {object} dto.APIResponse{data=models.Formation} "Formation retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Invalid formation ID"
// @Failure 401 {object} dto.APIResponse "Missing or invalid API key"
// @Failure 404 {object} dto.APIResponse "Formation not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /formations/{id} [get]
func (c *FormationController) GetFormationByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Formação")
	if !ok {
		return
	}

	formation, err := c.formationService.GetFormationByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(formation))
}

// GetAllFormations retrieves all formations
// @Summary List formations
// @Description Retrieves all formations ordered by name
// @Tags formations
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Formation} "Formations retrieved successfully"
// @Failure 401 {object} dto.APIResponse "Missing or invalid API key"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /formations [get]
func (c *FormationController) GetAllFormations(ctx *gin.Context) {
	formations, err := c.formationService.GetAllFormations(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(formations))
}

// UpdateFormation handles a partial formation update
// @Summary Update formation
// @Description Updates the supplied fields of a formation; omitted fields keep their value
// @Tags formations
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Formation ID"
// @Param request body dto.UpdateFormationRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Formation} "Formation updated successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 401 {object} dto.APIResponse "Missing or invalid API key"
// @Failure 404 {object} dto.APIResponse "Formation not found"
// @Failure 409 {object} dto.APIResponse "Formation name already in use"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /formations/{id} [put]
func (c *FormationController) UpdateFormation(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Formação")
	if !ok {
		return
	}

	var req dto.UpdateFormationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidInput, "Dados da formação inválidos.")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return
	}

	formation, err := c.formationService.UpdateFormation(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(formation))
}

// DeleteFormation handles formation deletion
// @Summary Delete formation
// @Description Deletes a formation no student points at as their main formation
// @Tags formations
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Formation ID"
// @Success 204 "Formation deleted successfully"
// @Failure 400 {object} dto.APIResponse "Students still reference this formation"
// @Failure 401 {object} dto.APIResponse "Missing or invalid API key"
// @Failure 404 {object} dto.APIResponse "Formation not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /formations/{id} [delete]
func (c *FormationController) DeleteFormation(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Formação")
	if !ok {
		return
	}

	if err := c.formationService.DeleteFormation(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
