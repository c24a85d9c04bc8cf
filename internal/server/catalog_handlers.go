package server

import (
	"github.com/gofiber/fiber/v2"

	"gigboard/internal/middleware"
	"gigboard/internal/models"
)

// ListAudioBooks handles GET /audiobooks.
func (s *Server) ListAudioBooks(c *fiber.Ctx) error {
	books, err := s.audioBooks.List(c.Context())
	if err != nil {
		return respondAppError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusOK, books)
}

// GetAudioBook handles GET /audiobooks/:id.
func (s *Server) GetAudioBook(c *fiber.Ctx) error {
	id := c.Params("id")
	book, err := s.audioBooks.GetByID(c.Context(), id)
	if err != nil {
		return respondAppError(c, err)
	}
	if book == nil {
		return respondAppError(c, models.NewNotFoundError("AudioBook", id))
	}
	return models.RespondWithData(c, fiber.StatusOK, book)
}

// ListOpinions handles GET /opinions.
func (s *Server) ListOpinions(c *fiber.Ctx) error {
	opinions, err := s.opinions.List(c.Context())
	if err != nil {
		return respondAppError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusOK, opinions)
}

// CreateOpinion handles POST /opinions.
func (s *Server) CreateOpinion(c *fiber.Ctx) error {
	var req struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondAppError(c, models.NewValidationError("Invalid request body"))
	}
	if req.Content == "" {
		return respondAppError(c, models.NewValidationError("Content is required"))
	}

	opinion := &models.Opinion{
		Author:  middleware.UserID(c),
		Content: req.Content,
	}
	if err := s.opinions.Create(c.Context(), opinion); err != nil {
		return respondAppError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusCreated, opinion)
}
