package routes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/openday/backend/internal/app/controllers"
	"github.com/openday/backend/internal/middleware"
)

// Controllers bundles the handlers wired into the router
type Controllers struct {
	Auth         *controllers.AuthController
	OpenDay      *controllers.OpenDayController
	Event        *controllers.EventController
	Registration *controllers.RegistrationController
	Agenda       *controllers.AgendaController
	Building     *controllers.BuildingController
	Course       *controllers.CourseController
	Feedback     *controllers.FeedbackController
	FAQ          *controllers.FAQController
	Contact      *controllers.ContactController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrl *Controllers, authMiddleware *middleware.AuthMiddleware) {
	api := router.Group("/api")

	// --- Public routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", ctrl.Auth.Register)
		auth.POST("/login", ctrl.Auth.Login)
		auth.POST("/refresh", ctrl.Auth.Refresh)
	}

	openDays := api.Group("/opendays")
	{
		openDays.GET("", ctrl.OpenDay.List)
		openDays.GET("/:id", ctrl.OpenDay.Get)
	}

	events := api.Group("/events")
	{
		events.GET("", ctrl.Event.List)
		events.GET("/:id", ctrl.Event.Get)
	}

	maps := api.Group("/maps")
	{
		maps.GET("/buildings", ctrl.Building.Buildings)
		maps.GET("/campuses", ctrl.Building.Campuses)
	}

	courses := api.Group("/courses")
	{
		courses.GET("", ctrl.Course.Courses)
		courses.GET("/subject-areas", ctrl.Course.SubjectAreas)
	}

	api.GET("/faqs", ctrl.FAQ.List)
	api.POST("/contact", ctrl.Contact.Submit)

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", ctrl.Auth.Me)

		authenticated.POST("/register/openday/:id", ctrl.Registration.Register)
		authenticated.GET("/registrations", ctrl.Registration.List)

		authenticated.GET("/agenda", ctrl.Agenda.List)
		authenticated.POST("/agenda/add/:id", ctrl.Agenda.Add)
		authenticated.DELETE("/agenda/remove/:id", ctrl.Agenda.Remove)

		authenticated.POST("/feedback", ctrl.Feedback.Submit)

		// --- Admin routes ---
		admin := authenticated.Group("")
		admin.Use(authMiddleware.AdminRequired())
		{
			admin.POST("/opendays", ctrl.OpenDay.Create)
			admin.POST("/events", ctrl.Event.Create)
		}
	}
}

// SetupFallbackRoutes serves the SPA entry point for non-API paths and a
// JSON 404 for unknown API paths.
func SetupFallbackRoutes(router *gin.Engine, staticDir string) {
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.File(staticDir + "/index.html")
	})
}
