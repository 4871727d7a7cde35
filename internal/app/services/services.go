package services

import (
	"github.com/openday/backend/internal/app/repositories"
	"github.com/openday/backend/internal/pkg/auth"
)

// Services holds all the service instances
type Services struct {
	AuthService         AuthService
	OpenDayService      OpenDayService
	EventService        EventService
	RegistrationService RegistrationService
	AgendaService       AgendaService
	BuildingService     BuildingService
	CourseService       CourseService
	FeedbackService     FeedbackService
	FAQService          FAQService
	ContactService      ContactService
}

// NewServices initializes all services over the given repositories
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService) *Services {
	return &Services{
		AuthService:         NewAuthService(repos.UserRepository, jwtService),
		OpenDayService:      NewOpenDayService(repos.OpenDayRepository),
		EventService:        NewEventService(repos.EventRepository, repos.OpenDayRepository),
		RegistrationService: NewRegistrationService(repos.RegistrationRepository, repos.OpenDayRepository),
		AgendaService:       NewAgendaService(repos.AgendaRepository, repos.EventRepository),
		BuildingService:     NewBuildingService(repos.BuildingRepository),
		CourseService:       NewCourseService(repos.CourseRepository, repos.SubjectAreaRepository),
		FeedbackService:     NewFeedbackService(repos.FeedbackRepository, repos.OpenDayRepository),
		FAQService:          NewFAQService(repos.FAQRepository),
		ContactService:      NewContactService(),
	}
}
