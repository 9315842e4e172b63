package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	SchoolRepository      *SchoolRepository
	FormationRepository   *FormationRepository
	EventRepository       *EventRepository
	StudentRepository     *StudentRepository
	InteractionRepository *InteractionRepository
}

// NewRepositories initializes all repositories
func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		SchoolRepository:      NewSchoolRepository(pool),
		FormationRepository:   NewFormationRepository(pool),
		EventRepository:       NewEventRepository(pool),
		StudentRepository:     NewStudentRepository(pool),
		InteractionRepository: NewInteractionRepository(pool),
	}
}
