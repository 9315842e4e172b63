package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"prospecta/internal/app/models/dto"
	"prospecta/internal/app/services"
)

// Controllers holds all the controller instances
type Controllers struct {
	SchoolController      *SchoolController
	FormationController   *FormationController
	EventController       *EventController
	StudentController     *StudentController
	InteractionController *InteractionController
}

// NewControllers initializes all controllers
func NewControllers(s *services.Services) *Controllers {
	return &Controllers{
		SchoolController:      NewSchoolController(s.SchoolService),
		FormationController:   NewFormationController(s.FormationService),
		EventController:       NewEventController(s.EventService),
		StudentController:     NewStudentController(s.StudentService),
		InteractionController: NewInteractionController(s.InteractionService),
	}
}

// parseIDParam reads the :id path parameter. On failure it writes the
// error response itself and reports false.
func parseIDParam(ctx *gin.Context, resource string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidInput,
			fmt.Sprintf("ID inválido para %s.", resource))
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails("O ID deve ser um número inteiro positivo.")))
		return 0, false
	}
	return id, true
}

// parseOptionalIDQuery reads an optional int64 query filter. A missing
// parameter yields nil; a malformed one writes the error response and
// reports false.
func parseOptionalIDQuery(ctx *gin.Context, name string) (*int64, bool) {
	raw, present := ctx.GetQuery(name)
	if !present || raw == "" {
		return nil, true
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidInput,
			fmt.Sprintf("Parâmetro '%s' inválido.", name))
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails("O filtro deve ser um número inteiro positivo.")))
		return nil, false
	}

	return &id, true
}
