package server

import (
	"github.com/gofiber/fiber/v2"

	"gigboard/internal/middleware"
	"gigboard/internal/models"
)

// EmployerStatus handles GET /employers/status. The response puts `approved`
// and `status` beside `success` rather than under `data`; the mobile clients
// already depend on that shape.
func (s *Server) EmployerStatus(c *fiber.Ctx) error {
	profile, err := s.employers.GetByUserID(c.Context(), middleware.UserID(c))
	if err != nil {
		return respondAppError(c, err)
	}

	approval := models.ApprovalNone
	if profile != nil {
		approval = profile.Approval
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":  true,
		"approved": approval == models.ApprovalApproved,
		"status":   approval,
	})
}

// EmployerApply handles POST /employers/apply.
func (s *Server) EmployerApply(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var req struct {
		CompanyName     string `json:"companyName"`
		CompanyWebsite  string `json:"companyWebsite"`
		CompanyLocation string `json:"companyLocation"`
		Description     string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondAppError(c, models.NewValidationError("Invalid request body"))
	}
	if req.CompanyName == "" || req.CompanyLocation == "" {
		return respondAppError(c, models.NewValidationError("companyName and companyLocation are required"))
	}

	existing, err := s.employers.GetByUserID(c.Context(), userID)
	if err != nil {
		return respondAppError(c, err)
	}
	if existing != nil {
		return respondAppError(c, models.NewConflictError("Employer application already exists"))
	}

	profile := &models.EmployerProfile{
		UserID:          userID,
		CompanyName:     req.CompanyName,
		CompanyWebsite:  req.CompanyWebsite,
		CompanyLocation: req.CompanyLocation,
		Description:     req.Description,
		Approval:        models.ApprovalPending,
	}
	if err := s.employers.Create(c.Context(), profile); err != nil {
		return respondAppError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusCreated, profile)
}
