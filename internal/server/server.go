// Package server implements the reference backend: the HTTP contract the
// client SDK talks to, including the server-owned invariants (terminal
// proposal transitions, one acceptance per project, employer gating).
package server

import (
	"log/slog"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"gigboard/internal/config"
	"gigboard/internal/middleware"
	"gigboard/internal/models"
	"gigboard/internal/repository"
)

// Server holds all dependencies and provides handlers.
type Server struct {
	config *config.Config
	db     *gorm.DB
	redis  *redis.Client
	logger *slog.Logger

	users         repository.UserRepository
	employers     repository.EmployerRepository
	jobs          repository.JobRepository
	applications  repository.ApplicationRepository
	projects      repository.ProjectRepository
	proposals     repository.ProposalRepository
	organizations repository.OrganizationRepository
	audioBooks    repository.AudioBookRepository
	opinions      repository.OpinionRepository
}

// NewServer creates a server instance over an already-connected database.
// redisClient may be nil; caching and rate limiting then fail open.
func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		config:        cfg,
		db:            db,
		redis:         redisClient,
		logger:        logger,
		users:         repository.NewUserRepository(db),
		employers:     repository.NewEmployerRepository(db),
		jobs:          repository.NewJobRepository(db),
		applications:  repository.NewApplicationRepository(db),
		projects:      repository.NewProjectRepository(db),
		proposals:     repository.NewProposalRepository(db),
		organizations: repository.NewOrganizationRepository(db),
		audioBooks:    repository.NewAudioBookRepository(db),
		opinions:      repository.NewOpinionRepository(db),
	}
}

// App builds the fiber application with middleware and routes wired.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "Gigboard Reference API",
	})
	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}

// SetupMiddleware configures middleware for the fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(requestid.New())
	app.Use(middleware.StructuredLogger(s.logger))

	prometheus := fiberprometheus.New("gigboard")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)
}

// SetupRoutes configures all routes for the application.
func (s *Server) SetupRoutes(app *fiber.App) {
	authRequired := middleware.AuthRequired(s.config.JWTSecret)
	optionalAuth := middleware.OptionalAuth(s.config.JWTSecret)

	app.Get("/health", s.HealthCheck)

	auth := app.Group("/auth")
	auth.Post("/signup", middleware.RateLimit(s.redis, 5, 10*time.Minute, "signup"), s.Signup)
	auth.Post("/login", middleware.RateLimit(s.redis, 10, 10*time.Minute, "login"), s.Login)

	app.Get("/jobs", optionalAuth, s.ListJobs)
	app.Post("/jobs", authRequired, s.CreateJob)
	app.Get("/jobs/:id", s.GetJob)
	app.Post("/jobs/:id/apply", authRequired, s.ApplyToJob)
	app.Get("/my-applications", authRequired, s.MyApplications)
	app.Get("/employer/jobs", authRequired, s.EmployerJobs)
	app.Get("/employer/jobs/:id/applications", authRequired, s.EmployerJobApplications)

	app.Get("/projects", optionalAuth, s.ListProjects)
	app.Post("/projects", authRequired, s.CreateProject)
	app.Get("/projects/:id", s.GetProject)
	app.Get("/client/projects", authRequired, s.ClientProjects)
	app.Post("/projects/:id/proposals", authRequired, s.SubmitProposal)
	app.Get("/projects/:id/proposals", authRequired, s.ListProposals)
	app.Get("/projects/:id/relationship", authRequired, s.ProjectRelationship)
	app.Patch("/proposals/:id/status", authRequired, s.UpdateProposalStatus)

	app.Get("/employers/status", authRequired, s.EmployerStatus)
	app.Post("/employers/apply", authRequired, s.EmployerApply)

	app.Get("/api/v1/organizations", s.ListOrganizations)
	app.Get("/api/v1/organizations/:id", s.GetOrganization)
	app.Post("/add-organizations", authRequired, s.AddOrganization)
	app.Get("/api/v1/activities", s.ListActivities)
	app.Post("/api/v1/activities", authRequired, s.AddActivity)

	app.Get("/audiobooks", s.ListAudioBooks)
	app.Get("/audiobooks/:id", s.GetAudioBook)

	app.Get("/opinions", s.ListOpinions)
	app.Post("/opinions", authRequired, s.CreateOpinion)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	return models.RespondWithData(c, fiber.StatusOK, fiber.Map{"status": "ok"})
}

// respondAppError maps an application error to its HTTP status and writes a
// failure envelope.
func respondAppError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	if appErr, ok := err.(*models.AppError); ok {
		switch appErr.Code {
		case "NOT_FOUND":
			status = fiber.StatusNotFound
		case "VALIDATION_ERROR":
			status = fiber.StatusBadRequest
		case "UNAUTHORIZED":
			status = fiber.StatusUnauthorized
		case "FORBIDDEN":
			status = fiber.StatusForbidden
		case "CONFLICT":
			status = fiber.StatusConflict
		}
	}
	return models.RespondWithError(c, status, err)
}
