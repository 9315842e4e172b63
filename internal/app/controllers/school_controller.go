package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prospecta/internal/app/models/dto"
	"prospecta/internal/app/services"
	"prospecta/internal/middleware"
)

// SchoolController handles school-related operations
type SchoolController struct {
	schoolService services.SchoolService
}

// NewSchoolController creates a new SchoolController
func NewSchoolController(schoolService services.SchoolService) *SchoolController {
	return &SchoolController{schoolService: schoolService}
}

// CreateSchool handles school creation
// @Summary Create a new school
// @Description Creates a new school with a unique name
// @Tags schools
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.CreateSchoolRequest true "School information"
// @Success 201 {object} dto.APIResponse{data=models.School} "School created successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 401 {object} dto.APIResponse "Missing or invalid API key"
// @Failure 409 {object} dto.APIResponse "School name already in use"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /schools [post]
func (c *SchoolController) CreateSchool(ctx *gin.Context) {
	var req dto.CreateSchoolRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidInput, "Dados da escola inválidos.")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return
	}

	school, err := c.schoolService.CreateSchool(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(school))
}

// GetSchoolByID retrieves a school by ID
// @Summary Get school by ID
// @Description Retrieves a specific school by its ID
// @Tags schools
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "School ID"
// @Success 200 {object} dto.APIResponse{data=models.School} "School retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Invalid school ID"
// @Failure 401 {object} dto.APIResponse "Missing or invalid API key"
// @Failure 404 {object} dto.APIResponse "School not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /schools/{id} [get]
func (c *SchoolController) GetSchoolByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Escola")
	if !ok {
		return
	}

	school, err := c.schoolService.GetSchoolByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(school))
}

// GetAllSchools retrieves all schools
// @Summary List schools
// @Description Retrieves all schools ordered by name
// @Tags schools
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.APIResponse{data=[]models.School} "Schools retrieved successfully"
// @Failure 401 {object} dto.APIResponse "Missing or invalid API key"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /schools [get]
func (c *SchoolController) GetAllSchools(ctx *gin.Context) {
	schools, err := c.schoolService.GetAllSchools(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(schools))
}

// UpdateSchool handles a partial school update
// @Summary Update school
// @Description Updates the supplied fields of a school; omitted fields keep their value
// @Tags schools
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "School ID"
// @Param request body dto.UpdateSchoolRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.School} "School updated successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 401 {object} dto.APIResponse "Missing or invalid API key"
// @Failure 404 {object} dto.APIResponse "School not found"
// @Failure 409 {object} dto.APIResponse "School name already in use"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /schools/{id} [put]
func (c *SchoolController) UpdateSchool(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Escola")
	if !ok {
		return
	}

	var req dto.UpdateSchoolRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidInput, "Dados da escola inválidos.")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return
	}

	school, err := c.schoolService.UpdateSchool(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(school))
}

// DeleteSchool handles school deletion
// @Summary Delete school
// @Description Deletes a school that has no associated students
// @Tags schools
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "School ID"
// @Success 204 "School deleted successfully"
// @Failure 400 {object} dto.APIResponse "Students still reference this school"
// @Failure 401 {object} dto.APIResponse "Missing or invalid API key"
// @Failure 404 {object} dto.APIResponse "School not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /schools/{id} [delete]
func (c *SchoolController) DeleteSchool(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "Escola")
	if !ok {
		return
	}

	if err := c.schoolService.DeleteSchool(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
