// Package middleware provides authentication, logging and rate-limiting
// middleware for the reference backend.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// UserIDKey is the fiber locals key carrying the authenticated user id.
const UserIDKey = "userID"

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

func parseBearer(c *fiber.Ctx, secret string) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Authorization header required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid authorization header format")
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid token structure - missing subject")
	}
	return sub, nil
}

// AuthRequired enforces a valid bearer token and stores the user id in
// c.Locals(UserIDKey).
func AuthRequired(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := parseBearer(c, secret)
		if err != nil {
			if ferr, ok := err.(*fiber.Error); ok {
				return unauthorized(c, ferr.Message)
			}
			return unauthorized(c, "Invalid token")
		}
		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}

// OptionalAuth stores the user id when a valid bearer token is present and
// lets the request through either way. Public listings use it so they can
// personalize without requiring login.
func OptionalAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if userID, err := parseBearer(c, secret); err == nil {
			c.Locals(UserIDKey, userID)
		}
		return c.Next()
	}
}

// UserID extracts the authenticated user id set by AuthRequired.
func UserID(c *fiber.Ctx) string {
	if id, ok := c.Locals(UserIDKey).(string); ok {
		return id
	}
	return ""
}
