package server

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"gigboard/internal/middleware"
	"gigboard/internal/models"
)

// ListOrganizations handles GET /api/v1/organizations.
func (s *Server) ListOrganizations(c *fiber.Ctx) error {
	orgs, err := s.organizations.List(c.Context())
	if err != nil {
		return respondAppError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusOK, orgs)
}

// GetOrganization handles GET /api/v1/organizations/:id.
func (s *Server) GetOrganization(c *fiber.Ctx) error {
	id := c.Params("id")
	org, err := s.organizations.GetByID(c.Context(), id)
	if err != nil {
		return respondAppError(c, err)
	}
	if org == nil {
		return respondAppError(c, models.NewNotFoundError("Organization", id))
	}
	return models.RespondWithData(c, fiber.StatusOK, org)
}

// AddOrganization handles POST /add-organizations. The path predates the
// /api/v1 prefix and is kept for the deployed clients.
func (s *Server) AddOrganization(c *fiber.Ctx) error {
	var req struct {
		Name         string                  `json:"name"`
		Type         models.OrganizationType `json:"type"`
		Email        string                  `json:"email"`
		Phone        string                  `json:"phone"`
		Location     string                  `json:"location"`
		Description  string                  `json:"description"`
		ProfileImage string                  `json:"profileImage"`
		Sections     []models.Section        `json:"sections"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondAppError(c, models.NewValidationError("Invalid request body"))
	}
	if req.Name == "" {
		return respondAppError(c, models.NewValidationError("Name is required"))
	}

	org := &models.Organization{
		Name:         req.Name,
		Type:         req.Type,
		Email:        req.Email,
		Phone:        req.Phone,
		Location:     req.Location,
		Description:  req.Description,
		ProfileImage: req.ProfileImage,
		Sections:     req.Sections,
		Status:       models.ApprovalPending,
		SubmittedBy:  middleware.UserID(c),
	}
	if err := s.organizations.Create(c.Context(), org); err != nil {
		return respondAppError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusCreated, org)
}

// ListActivities handles GET /api/v1/activities.
func (s *Server) ListActivities(c *fiber.Ctx) error {
	activities, err := s.organizations.ListActivities(c.Context())
	if err != nil {
		return respondAppError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusOK, activities)
}

// AddActivity handles POST /api/v1/activities.
func (s *Server) AddActivity(c *fiber.Ctx) error {
	var req struct {
		OrganizationID string `json:"organization"`
		Title          string `json:"title"`
		Details        string `json:"details"`
		Date           string `json:"date"`
		Place          string `json:"place"`
		Image          string `json:"image"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondAppError(c, models.NewValidationError("Invalid request body"))
	}
	if req.Title == "" {
		return respondAppError(c, models.NewValidationError("Title is required"))
	}

	// An omitted date stays zero; the mobile clients send RFC3339 or bare
	// dates when they set one.
	var date time.Time
	if req.Date != "" {
		var err error
		date, err = time.Parse(time.RFC3339, req.Date)
		if err != nil {
			date, err = time.Parse("2006-01-02", req.Date)
			if err != nil {
				return respondAppError(c, models.NewValidationError("Invalid date"))
			}
		}
	}

	activity := &models.Activity{
		OrganizationID: req.OrganizationID,
		Title:          req.Title,
		Details:        req.Details,
		Date:           date,
		Place:          req.Place,
		Image:          req.Image,
	}
	if err := s.organizations.CreateActivity(c.Context(), activity); err != nil {
		return respondAppError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusCreated, activity)
}
