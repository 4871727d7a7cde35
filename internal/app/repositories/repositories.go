package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the query surface the repositories need. Both *pgxpool.Pool and
// pgx.Tx satisfy it, so a set of repositories can run inside a transaction.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	OpenDayRepository      *OpenDayRepository
	EventRepository        *EventRepository
	BuildingRepository     *BuildingRepository
	SubjectAreaRepository  *SubjectAreaRepository
	RegistrationRepository *RegistrationRepository
	AgendaRepository       *AgendaRepository
	FeedbackRepository     *FeedbackRepository
	CourseRepository       *CourseRepository
	FAQRepository          *FAQRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db DB) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		OpenDayRepository:      NewOpenDayRepository(db),
		EventRepository:        NewEventRepository(db),
		BuildingRepository:     NewBuildingRepository(db),
		SubjectAreaRepository:  NewSubjectAreaRepository(db),
		RegistrationRepository: NewRegistrationRepository(db),
		AgendaRepository:       NewAgendaRepository(db),
		FeedbackRepository:     NewFeedbackRepository(db),
		CourseRepository:       NewCourseRepository(db),
		FAQRepository:          NewFAQRepository(db),
	}
}
