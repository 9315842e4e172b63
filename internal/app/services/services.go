package services

import (
	"context"

	"prospecta/internal/app/models"
	"prospecta/internal/app/repositories"
	"prospecta/internal/pkg/cache"
)

// TxRunner runs a function inside a database transaction carried by the
// context. *db.PostgresDB satisfies it; tests substitute a fake.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// SchoolRepository defines the storage operations the services need for
// schools
type SchoolRepository interface {
	Create(ctx context.Context, school *models.School) error
	GetByID(ctx context.Context, id int64) (*models.School, error)
	GetAll(ctx context.Context) ([]*models.School, error)
	Update(ctx context.Context, school *models.School) error
	Delete(ctx context.Context, id int64) error
}

// FormationRepository defines the storage operations the services need
// for formations
type FormationRepository interface {
	Create(ctx context.Context, formation *models.Formation) error
	GetByID(ctx context.Context, id int64) (*models.Formation, error)
	GetAll(ctx context.Context) ([]*models.Formation, error)
	Update(ctx context.Context, formation *models.Formation) error
	Delete(ctx context.Context, id int64) error
}

// EventRepository defines the storage operations the services need for
// events
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	GetAll(ctx context.Context) ([]*models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id int64) error
}

// StudentRepository defines the storage operations the services need
// for students
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetAll(ctx context.Context, schoolID, formationID *int64) ([]*models.Student, error)
	CountBySchoolID(ctx context.Context, schoolID int64) (int64, error)
	CountByFormationID(ctx context.Context, formationID int64) (int64, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
}

// InteractionRepository defines the storage operations the services
// need for interactions
type InteractionRepository interface {
	Create(ctx context.Context, interaction *models.Interaction) error
	GetByID(ctx context.Context, id int64) (*models.Interaction, error)
	GetAll(ctx context.Context, studentID, eventID *int64) ([]*models.Interaction, error)
	CountByEventID(ctx context.Context, eventID int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}

// Services holds all the service instances
type Services struct {
	SchoolService      SchoolService
	FormationService   FormationService
	EventService       EventService
	StudentService     StudentService
	InteractionService InteractionService
}

// NewServices initializes all services. The cache may be nil, in which
// case list reads always hit the database.
func NewServices(repos *repositories.Repositories, tx TxRunner, c *cache.Cache) *Services {
	schoolService := NewSchoolService(repos.SchoolRepository, repos.StudentRepository, tx, c)
	formationService := NewFormationService(repos.FormationRepository, repos.StudentRepository, tx, c)
	eventService := NewEventService(repos.EventRepository, repos.InteractionRepository, tx)
	studentService := NewStudentService(repos.StudentRepository, schoolService, formationService, tx)
	interactionService := NewInteractionService(repos.InteractionRepository, studentService, eventService, tx)

	return &Services{
		SchoolService:      schoolService,
		FormationService:   formationService,
		EventService:       eventService,
		StudentService:     studentService,
		InteractionService: interactionService,
	}
}
