package server

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"gigboard/internal/middleware"
	"gigboard/internal/models"
	"gigboard/internal/repository"
)

// ListProjects handles GET /projects.
func (s *Server) ListProjects(c *fiber.Ctx) error {
	q := repository.ProjectQuery{
		Q:        c.Query("q"),
		Category: c.Query("category"),
		Page:     c.QueryInt("page"),
		Limit:    c.QueryInt("limit"),
	}
	projects, err := s.projects.List(c.Context(), q)
	if err != nil {
		return respondAppError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusOK, projects)
}

// GetProject handles GET /projects/:id.
func (s *Server) GetProject(c *fiber.Ctx) error {
	id := c.Params("id")
	project, err := s.projects.GetByID(c.Context(), id)
	if err != nil {
		return respondAppError(c, err)
	}
	if project == nil {
		return respondAppError(c, models.NewNotFoundError("Project", id))
	}
	return models.RespondWithData(c, fiber.StatusOK, project)
}

// CreateProject handles POST /projects.
func (s *Server) CreateProject(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req struct {
		Title       string            `json:"title"`
		Description string            `json:"description"`
		Category    string            `json:"category"`
		BudgetType  models.BudgetType `json:"budgetType"`
		Budget      *float64          `json:"budget"`
		HourlyRate  *float64          `json:"hourlyRate"`
		Skills      []string          `json:"skills"`
		Deadline    time.Time         `json:"deadline"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondAppError(c, models.NewValidationError("Invalid request body"))
	}
	if req.Title == "" {
		return respondAppError(c, models.NewValidationError("Title is required"))
	}

	project := &models.Project{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		BudgetType:  req.BudgetType,
		Budget:      req.Budget,
		HourlyRate:  req.HourlyRate,
		Skills:      req.Skills,
		Deadline:    req.Deadline,
		PostedBy:    userID,
		Status:      models.ProjectOpen,
	}
	if err := project.ValidateBudget(); err != nil {
		return respondAppError(c, models.NewValidationError(err.Error()))
	}

	if err := s.projects.Create(c.Context(), project); err != nil {
		return respondAppError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusCreated, project)
}

// ClientProjects handles GET /client/projects.
func (s *Server) ClientProjects(c *fiber.Ctx) error {
	projects, err := s.projects.ListByPoster(c.Context(), middleware.UserID(c))
	if err != nil {
		return respondAppError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusOK, projects)
}

// SubmitProposal handles POST /projects/:id/proposals.
func (s *Server) SubmitProposal(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	projectID := c.Params("id")

	var req struct {
		CoverLetter   string   `json:"coverLetter"`
		ProposedPrice *float64 `json:"proposedPrice"`
		HourlyRate    *float64 `json:"hourlyRate"`
		DeliveryTime  string   `json:"deliveryTime"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondAppError(c, models.NewValidationError("Invalid request body"))
	}
	if req.CoverLetter == "" {
		return respondAppError(c, models.NewValidationError("coverLetter is required"))
	}

	project, err := s.projects.GetByID(c.Context(), projectID)
	if err != nil {
		return respondAppError(c, err)
	}
	if project == nil {
		return respondAppError(c, models.NewNotFoundError("Project", projectID))
	}
	if project.Status != models.ProjectOpen {
		return respondAppError(c, models.NewConflictError("Project is not open for proposals"))
	}
	if project.PostedBy == userID {
		return respondAppError(c, models.NewForbiddenError("Cannot bid on your own project"))
	}

	// The proposal's price field must match the project's budget type.
	switch project.BudgetType {
	case models.BudgetFixed:
		if req.ProposedPrice == nil || req.HourlyRate != nil {
			return respondAppError(c, models.NewValidationError("Fixed-budget projects take proposedPrice only"))
		}
	case models.BudgetHourly:
		if req.HourlyRate == nil || req.ProposedPrice != nil {
			return respondAppError(c, models.NewValidationError("Hourly projects take hourlyRate only"))
		}
	}

	existing, err := s.proposals.GetByProjectAndFreelancer(c.Context(), projectID, userID)
	if err != nil {
		return respondAppError(c, err)
	}
	if existing != nil {
		return respondAppError(c, models.NewConflictError("Already submitted a proposal for this project"))
	}

	proposal := &models.Proposal{
		ProjectID:     projectID,
		Freelancer:    userID,
		CoverLetter:   req.CoverLetter,
		ProposedPrice: req.ProposedPrice,
		HourlyRate:    req.HourlyRate,
		DeliveryTime:  req.DeliveryTime,
		Status:        models.ProposalPending,
	}
	if err := s.proposals.Create(c.Context(), proposal); err != nil {
		return respondAppError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusCreated, proposal)
}

// ListProposals handles GET /projects/:id/proposals. Owner only.
func (s *Server) ListProposals(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	projectID := c.Params("id")

	project, err := s.projects.GetByID(c.Context(), projectID)
	if err != nil {
		return respondAppError(c, err)
	}
	if project == nil {
		return respondAppError(c, models.NewNotFoundError("Project", projectID))
	}
	if project.PostedBy != userID {
		return respondAppError(c, models.NewForbiddenError("Only the project owner may list proposals"))
	}

	proposals, err := s.proposals.ListByProject(c.Context(), projectID)
	if err != nil {
		return respondAppError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusOK, proposals)
}

// ProjectRelationship handles GET /projects/:id/relationship: the explicit
// "what am I to this project" answer, instead of clients inferring ownership
// from which fetches fail.
func (s *Server) ProjectRelationship(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	projectID := c.Params("id")

	project, err := s.projects.GetByID(c.Context(), projectID)
	if err != nil {
		return respondAppError(c, err)
	}
	if project == nil {
		return respondAppError(c, models.NewNotFoundError("Project", projectID))
	}

	if project.PostedBy == userID {
		return models.RespondWithData(c, fiber.StatusOK, models.ProjectRelationship{
			Role: models.ProjectRoleClient,
		})
	}

	proposal, err := s.proposals.GetByProjectAndFreelancer(c.Context(), projectID, userID)
	if err != nil {
		return respondAppError(c, err)
	}
	if proposal != nil {
		return models.RespondWithData(c, fiber.StatusOK, models.ProjectRelationship{
			Role:     models.ProjectRoleFreelancer,
			Proposal: proposal,
		})
	}

	return models.RespondWithData(c, fiber.StatusOK, models.ProjectRelationship{
		Role: models.ProjectRoleVisitor,
	})
}

// UpdateProposalStatus handles PATCH /proposals/:id/status. Only the owning
// project's client may decide a proposal, and only while it is pending.
func (s *Server) UpdateProposalStatus(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	proposalID := c.Params("id")

	var req struct {
		Status models.ProposalStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondAppError(c, models.NewValidationError("Invalid request body"))
	}
	if !req.Status.Terminal() {
		return respondAppError(c, models.NewValidationError("status must be accepted or rejected"))
	}

	proposal, err := s.proposals.GetByID(c.Context(), proposalID)
	if err != nil {
		return respondAppError(c, err)
	}
	if proposal == nil {
		return respondAppError(c, models.NewNotFoundError("Proposal", proposalID))
	}

	project, err := s.projects.GetByID(c.Context(), proposal.ProjectID)
	if err != nil {
		return respondAppError(c, err)
	}
	if project == nil || project.PostedBy != userID {
		return respondAppError(c, models.NewForbiddenError("Only the project owner may decide proposals"))
	}

	decided, err := s.proposals.Decide(c.Context(), proposalID, req.Status)
	if err != nil {
		return respondAppError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusOK, decided)
}
