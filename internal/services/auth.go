package services

import (
	"context"
	"fmt"

	"gigboard/internal/api"
	"gigboard/internal/models"
	"gigboard/internal/session"
)

// AuthService wraps the signup/login endpoints and produces sessions.
type AuthService struct {
	client *api.Client
}

// NewAuthService creates an auth accessor on top of the resource client.
// The client used here should carry no token source; the token comes out of
// the login response.
func NewAuthService(client *api.Client) *AuthService {
	return &AuthService{client: client}
}

type credentials struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authPayload struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Login exchanges credentials for a session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*session.Session, error) {
	if email == "" {
		return nil, validationError("email")
	}
	if password == "" {
		return nil, validationError("password")
	}
	return s.authenticate(ctx, "/auth/login", credentials{Email: email, Password: password})
}

// Signup registers a new account and returns its session.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (*session.Session, error) {
	if name == "" {
		return nil, validationError("name")
	}
	if email == "" {
		return nil, validationError("email")
	}
	if password == "" {
		return nil, validationError("password")
	}
	return s.authenticate(ctx, "/auth/signup", credentials{Name: name, Email: email, Password: password})
}

func (s *AuthService) authenticate(ctx context.Context, path string, creds credentials) (*session.Session, error) {
	env, err := s.client.Post(ctx, path, creds)
	if err != nil {
		return nil, err
	}
	var payload authPayload
	found, err := decodeData(env, &payload)
	if err != nil {
		return nil, err
	}
	if !found || payload.Token == "" {
		return nil, fmt.Errorf("%w: missing token in auth response", api.ErrMalformedResponse)
	}
	return &session.Session{User: payload.User, Token: payload.Token}, nil
}
