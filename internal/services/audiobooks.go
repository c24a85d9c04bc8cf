package services

import (
	"context"

	"gigboard/internal/api"
	"gigboard/internal/models"
)

// AudioBooksService wraps the audiobook catalogue endpoints. Listing and
// detail only; playback belongs to the consumer.
type AudioBooksService struct {
	client *api.Client
}

// NewAudioBooksService creates an audiobooks accessor on top of the resource
// client.
func NewAudioBooksService(client *api.Client) *AudioBooksService {
	return &AudioBooksService{client: client}
}

// List fetches the audiobook catalogue.
func (s *AudioBooksService) List(ctx context.Context) ([]models.AudioBook, error) {
	env, err := s.client.Get(ctx, "/audiobooks", nil)
	if err != nil {
		return nil, err
	}
	books := []models.AudioBook{}
	if _, err := decodeData(env, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// Get fetches a single audiobook. A missing book is (nil, nil).
func (s *AudioBooksService) Get(ctx context.Context, id string) (*models.AudioBook, error) {
	env, err := s.client.Get(ctx, "/audiobooks/"+id, nil)
	if api.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var book models.AudioBook
	found, err := decodeData(env, &book)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &book, nil
}
