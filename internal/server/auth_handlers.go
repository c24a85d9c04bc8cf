package server

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"gigboard/internal/models"
)

// Signup handles POST /auth/signup.
func (s *Server) Signup(c *fiber.Ctx) error {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Phone    string `json:"phone"`
		Location string `json:"location"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondAppError(c, models.NewValidationError("Invalid request body"))
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return respondAppError(c, models.NewValidationError("Name, email, and password are required"))
	}

	existing, err := s.users.GetByEmail(c.Context(), req.Email)
	if err != nil {
		return respondAppError(c, err)
	}
	if existing != nil {
		return respondAppError(c, models.NewConflictError("User already exists"))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return respondAppError(c, models.NewInternalError(err))
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		Phone:    req.Phone,
		Location: req.Location,
	}
	if err := s.users.Create(c.Context(), user); err != nil {
		return respondAppError(c, err)
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return respondAppError(c, models.NewInternalError(err))
	}

	return models.RespondWithData(c, fiber.StatusCreated, fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Login handles POST /auth/login.
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondAppError(c, models.NewValidationError("Invalid request body"))
	}

	user, err := s.users.GetByEmail(c.Context(), req.Email)
	if err != nil {
		return respondAppError(c, err)
	}
	if user == nil {
		return respondAppError(c, models.NewUnauthorizedError("Invalid credentials"))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return respondAppError(c, models.NewUnauthorizedError("Invalid credentials"))
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return respondAppError(c, models.NewInternalError(err))
	}

	return models.RespondWithData(c, fiber.StatusOK, fiber.Map{
		"token": token,
		"user":  user,
	})
}

// generateToken creates a JWT for the given user id.
func (s *Server) generateToken(userID string) (string, error) {
	if s.config.JWTSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	claims := jwt.MapClaims{
		"sub": userID,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}
