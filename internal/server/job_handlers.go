package server

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"gigboard/internal/cache"
	"gigboard/internal/middleware"
	"gigboard/internal/models"
	"gigboard/internal/repository"
)

const jobListTTL = 30 * time.Second

// ListJobs handles GET /jobs.
func (s *Server) ListJobs(c *fiber.Ctx) error {
	q := repository.JobQuery{
		Q:               c.Query("q"),
		Category:        c.Query("category"),
		Location:        c.Query("location"),
		JobType:         c.Query("jobType"),
		ExperienceLevel: c.Query("experienceLevel"),
		Page:            c.QueryInt("page"),
		Limit:           c.QueryInt("limit"),
	}

	key := fmt.Sprintf("jobs:list:%s", string(c.Request().URI().QueryString()))
	var jobs []models.Job
	err := cache.CacheAside(c.Context(), s.redis, key, &jobs, jobListTTL, func() error {
		var err error
		jobs, err = s.jobs.List(c.Context(), q)
		return err
	})
	if err != nil {
		return respondAppError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusOK, jobs)
}

// GetJob handles GET /jobs/:id.
func (s *Server) GetJob(c *fiber.Ctx) error {
	id := c.Params("id")
	job, err := s.jobs.GetByID(c.Context(), id)
	if err != nil {
		return respondAppError(c, err)
	}
	if job == nil {
		return respondAppError(c, models.NewNotFoundError("Job", id))
	}
	return models.RespondWithData(c, fiber.StatusOK, job)
}

// CreateJob handles POST /jobs. Only approved employers pass the gate; the
// check here is authoritative, whatever the client chose to display.
func (s *Server) CreateJob(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	profile, err := s.employers.GetByUserID(c.Context(), userID)
	if err != nil {
		return respondAppError(c, err)
	}
	if profile == nil || profile.Approval != models.ApprovalApproved {
		return respondAppError(c, models.NewForbiddenError("Employer approval required to post jobs"))
	}

	var req struct {
		Title           string         `json:"title"`
		Description     string         `json:"description"`
		Category        string         `json:"category"`
		Location        string         `json:"location"`
		JobType         models.JobType `json:"jobType"`
		ExperienceLevel string         `json:"experienceLevel"`
		SalaryMin       *float64       `json:"salaryMin"`
		SalaryMax       *float64       `json:"salaryMax"`
		Skills          []string       `json:"skills"`
		Deadline        time.Time      `json:"deadline"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondAppError(c, models.NewValidationError("Invalid request body"))
	}
	if req.Title == "" {
		return respondAppError(c, models.NewValidationError("Title is required"))
	}
	if !models.ValidJobType(req.JobType) {
		return respondAppError(c, models.NewValidationError("Invalid jobType"))
	}

	job := &models.Job{
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		Location:        req.Location,
		JobType:         req.JobType,
		ExperienceLevel: req.ExperienceLevel,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		Skills:          req.Skills,
		Deadline:        req.Deadline,
		PostedBy:        userID,
		Status:          models.JobOpen,
	}
	if err := s.jobs.Create(c.Context(), job); err != nil {
		return respondAppError(c, err)
	}

	cache.Invalidate(c.Context(), s.redis, "jobs:list:*")

	return models.RespondWithData(c, fiber.StatusCreated, job)
}

// ApplyToJob handles POST /jobs/:id/apply.
func (s *Server) ApplyToJob(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	jobID := c.Params("id")

	var req struct {
		CVURL       string `json:"cvUrl"`
		CoverLetter string `json:"coverLetter"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondAppError(c, models.NewValidationError("Invalid request body"))
	}
	if req.CVURL == "" || req.CoverLetter == "" {
		return respondAppError(c, models.NewValidationError("cvUrl and coverLetter are required"))
	}

	job, err := s.jobs.GetByID(c.Context(), jobID)
	if err != nil {
		return respondAppError(c, err)
	}
	if job == nil {
		return respondAppError(c, models.NewNotFoundError("Job", jobID))
	}
	if job.Status != models.JobOpen {
		return respondAppError(c, models.NewConflictError("Job is closed"))
	}

	exists, err := s.applications.Exists(c.Context(), jobID, userID)
	if err != nil {
		return respondAppError(c, err)
	}
	if exists {
		return respondAppError(c, models.NewConflictError("Already applied to this job"))
	}

	app := &models.JobApplication{
		JobID:       jobID,
		Applicant:   userID,
		CVURL:       req.CVURL,
		CoverLetter: req.CoverLetter,
		AppliedAt:   time.Now(),
	}
	if err := s.applications.Create(c.Context(), app); err != nil {
		return respondAppError(c, err)
	}
	app.Job = *job

	return models.RespondWithData(c, fiber.StatusCreated, app)
}

// MyApplications handles GET /my-applications.
func (s *Server) MyApplications(c *fiber.Ctx) error {
	apps, err := s.applications.ListByApplicant(c.Context(), middleware.UserID(c))
	if err != nil {
		return respondAppError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusOK, apps)
}

// EmployerJobs handles GET /employer/jobs.
func (s *Server) EmployerJobs(c *fiber.Ctx) error {
	jobs, err := s.jobs.ListByPoster(c.Context(), middleware.UserID(c))
	if err != nil {
		return respondAppError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusOK, jobs)
}

// EmployerJobApplications handles GET /employer/jobs/:id/applications.
// Only the job's poster may see its applicants.
func (s *Server) EmployerJobApplications(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	jobID := c.Params("id")

	job, err := s.jobs.GetByID(c.Context(), jobID)
	if err != nil {
		return respondAppError(c, err)
	}
	if job == nil {
		return respondAppError(c, models.NewNotFoundError("Job", jobID))
	}
	if job.PostedBy != userID {
		return respondAppError(c, models.NewForbiddenError("Not your job posting"))
	}

	apps, err := s.applications.ListByJob(c.Context(), jobID)
	if err != nil {
		return respondAppError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusOK, apps)
}
