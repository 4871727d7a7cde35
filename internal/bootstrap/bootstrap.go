package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/openday/backend/internal/app/controllers"
	"github.com/openday/backend/internal/app/migrations"
	"github.com/openday/backend/internal/app/repositories"
	"github.com/openday/backend/internal/app/routes"
	"github.com/openday/backend/internal/app/services"
	"github.com/openday/backend/internal/config"
	"github.com/openday/backend/internal/db"
	"github.com/openday/backend/internal/metrics"
	"github.com/openday/backend/internal/middleware"
	"github.com/openday/backend/internal/pkg/auth"
	"github.com/openday/backend/internal/pkg/logger"
	"github.com/openday/backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *repositories.Repositories
	Services       *services.Services
	Controllers    *routes.Controllers
	AuthMiddleware *middleware.AuthMiddleware
	JWTService     *auth.JWTService
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger
func LoadConfigAndSetupLogger() (*config.Config, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	logger.Info().
		Str("logLevel", cfg.Logging.Level).
		Str("logFormat", cfg.Logging.Format).
		Msg("Logger configured")
	return cfg, nil
}

// SetupDatabase establishes the database connection, runs migrations, and
// seeds default data.
func SetupDatabase(cfg *config.Config) (*db.PostgresDB, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		logger.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	logger.Info().Msg("Database connection established")

	migrator := migrations.NewMigrator(database)
	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	logger.Info().Msg("Database migrations applied")

	if err := seed.CreateDefaultData(context.Background(), database); err != nil {
		// The seed transaction rolled back; the app can serve without
		// fixtures, so log and continue.
		logger.Error().Err(err).Msg("Failed to seed default data, proceeding anyway")
	}

	return database, nil
}

// BuildDependencies initializes repositories, services, controllers, and
// middleware.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool) *Dependencies {
	repos := repositories.NewRepositories(dbPool)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  cfg.AccessTokenExp(),
		RefreshTokenExp: cfg.RefreshTokenExp(),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	svcs := services.NewServices(repos, jwtService)

	ctrl := &routes.Controllers{
		Auth:         controllers.NewAuthController(svcs.AuthService),
		OpenDay:      controllers.NewOpenDayController(svcs.OpenDayService),
		Event:        controllers.NewEventController(svcs.EventService),
		Registration: controllers.NewRegistrationController(svcs.RegistrationService),
		Agenda:       controllers.NewAgendaController(svcs.AgendaService),
		Building:     controllers.NewBuildingController(svcs.BuildingService),
		Course:       controllers.NewCourseController(svcs.CourseService),
		Feedback:     controllers.NewFeedbackController(svcs.FeedbackService),
		FAQ:          controllers.NewFAQController(svcs.FAQService),
		Contact:      controllers.NewContactController(svcs.ContactService),
	}

	return &Dependencies{
		Repos:          repos,
		Services:       svcs,
		Controllers:    ctrl,
		AuthMiddleware: middleware.NewAuthMiddleware(jwtService, repos.UserRepository),
		JWTService:     jwtService,
	}
}

// SetupRouter configures the Gin engine with middleware and routes
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RequestMetrics())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	routes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	// Serve the SPA bundle; unknown non-API paths fall back to its entry
	// point so client-side routing works.
	staticDir := cfg.Server.StaticDir
	if info, err := os.Stat(staticDir); err == nil && info.IsDir() {
		router.Static("/static", staticDir)
		router.StaticFile("/", filepath.Join(staticDir, "index.html"))
	}
	routes.SetupFallbackRoutes(router, staticDir)

	return router
}
