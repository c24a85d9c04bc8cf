package services

import (
	"context"

	"gigboard/internal/api"
	"gigboard/internal/models"
)

// OpinionsService wraps the social opinion-posting endpoints.
type OpinionsService struct {
	client *api.Client
}

// NewOpinionsService creates an opinions accessor on top of the resource
// client.
func NewOpinionsService(client *api.Client) *OpinionsService {
	return &OpinionsService{client: client}
}

// List fetches the opinion feed.
func (s *OpinionsService) List(ctx context.Context) ([]models.Opinion, error) {
	env, err := s.client.Get(ctx, "/opinions", nil)
	if err != nil {
		return nil, err
	}
	opinions := []models.Opinion{}
	if _, err := decodeData(env, &opinions); err != nil {
		return nil, err
	}
	return opinions, nil
}

// Create posts an opinion.
func (s *OpinionsService) Create(ctx context.Context, content string) (*models.Opinion, error) {
	if content == "" {
		return nil, validationError("content")
	}
	env, err := s.client.Post(ctx, "/opinions", map[string]string{"content": content})
	if err != nil {
		return nil, err
	}
	var opinion models.Opinion
	if _, err := decodeData(env, &opinion); err != nil {
		return nil, err
	}
	return &opinion, nil
}
