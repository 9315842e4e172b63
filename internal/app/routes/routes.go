package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prospecta/internal/app/controllers"
	"prospecta/internal/middleware"
)

// SetupRouter configures all application routes. Everything under
// /api/v1 requires the API key; health, metrics and docs stay public.
func SetupRouter(router *gin.Engine, ctrl *controllers.Controllers, apiKey string) {
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.Use(middleware.APIKeyAuth(apiKey))

	schools := v1.Group("/schools")
	{
		schools.POST("", ctrl.SchoolController.CreateSchool)
		schools.GET("", ctrl.SchoolController.GetAllSchools)
		schools.GET("/:id", ctrl.SchoolController.GetSchoolByID)
		schools.PUT("/:id", ctrl.SchoolController.UpdateSchool)
		schools.DELETE("/:id", ctrl.SchoolController.DeleteSchool)
	}

	formations := v1.Group("/formations")
	{
		formations.POST("", ctrl.FormationController.CreateFormation)
		formations.GET("", ctrl.FormationController.GetAllFormations)
		formations.GET("/:id", ctrl.FormationController.GetFormationByID)
		formations.PUT("/:id", ctrl.FormationController.UpdateFormation)
		formations.DELETE("/:id", ctrl.FormationController.DeleteFormation)
	}

	events := v1.Group("/events")
	{
		events.POST("", ctrl.EventController.CreateEvent)
		events.GET("", ctrl.EventController.GetAllEvents)
		events.GET("/:id", ctrl.EventController.GetEventByID)
		events.PUT("/:id", ctrl.EventController.UpdateEvent)
		events.DELETE("/:id", ctrl.EventController.DeleteEvent)
	}

	students := v1.Group("/students")
	{
		students.POST("", ctrl.StudentController.CreateStudent)
		students.GET("", ctrl.StudentController.GetAllStudents)
		students.GET("/:id", ctrl.StudentController.GetStudentByID)
		students.PUT("/:id", ctrl.StudentController.UpdateStudent)
		students.DELETE("/:id", ctrl.StudentController.DeleteStudent)
	}

	interactions := v1.Group("/interactions")
	{
		interactions.POST("", ctrl.InteractionController.CreateInteraction)
		interactions.GET("", ctrl.InteractionController.GetAllInteractions)
		interactions.GET("/:id", ctrl.InteractionController.GetInteractionByID)
		interactions.DELETE("/:id", ctrl.InteractionController.DeleteInteraction)
	}
}
