package services

import (
	"context"

	"github.com/openday/backend/internal/app/models"
)

// Repository interfaces consumed by the services. The concrete pgx-backed
// implementations live in the repositories package; tests substitute
// in-memory fakes.

// UserRepository describes user persistence operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// OpenDayRepository describes open day persistence operations
type OpenDayRepository interface {
	Create(ctx context.Context, openDay *models.OpenDay) error
	GetByID(ctx context.Context, id int64) (*models.OpenDay, error)
	GetAll(ctx context.Context) ([]*models.OpenDay, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// EventRepository describes event persistence operations
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	GetAll(ctx context.Context, filter models.EventFilter) ([]*models.Event, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// BuildingRepository describes building persistence operations
type BuildingRepository interface {
	GetAll(ctx context.Context, campus *string) ([]*models.Building, error)
	DistinctCampuses(ctx context.Context) ([]string, error)
}

// SubjectAreaRepository describes subject area persistence operations
type SubjectAreaRepository interface {
	GetAll(ctx context.Context) ([]*models.SubjectArea, error)
}

// RegistrationRepository describes registration persistence operations
type RegistrationRepository interface {
	Create(ctx context.Context, registration *models.Registration) error
	GetByUserAndOpenDay(ctx context.Context, userID, openDayID int64) (*models.Registration, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Registration, error)
}

// AgendaRepository describes agenda persistence operations
type AgendaRepository interface {
	Exists(ctx context.Context, userID, eventID int64) (bool, error)
	Create(ctx context.Context, item *models.AgendaItem) error
	Delete(ctx context.Context, userID, eventID int64) error
	ListByUser(ctx context.Context, userID int64, openDayID *int64) ([]*models.AgendaItem, error)
}

// FeedbackRepository describes feedback persistence operations
type FeedbackRepository interface {
	ExistsByUserAndOpenDay(ctx context.Context, userID, openDayID int64) (bool, error)
	Create(ctx context.Context, feedback *models.Feedback) error
}

// CourseRepository describes course persistence operations
type CourseRepository interface {
	GetAll(ctx context.Context, subjectAreaID *int64) ([]*models.Course, error)
}

// FAQRepository describes FAQ persistence operations
type FAQRepository interface {
	GetAll(ctx context.Context, category *string) ([]*models.FAQ, error)
}
