package services

import (
	"context"

	"gigboard/internal/api"
	"gigboard/internal/models"
)

// OrganizationsService wraps the organization-directory endpoints. The paths
// mix an /api/v1 prefix with a bare /add-organizations route; that
// inconsistency is part of the backend contract and is kept as-is.
type OrganizationsService struct {
	client *api.Client
}

// NewOrganizationsService creates an organizations accessor on top of the
// resource client.
func NewOrganizationsService(client *api.Client) *OrganizationsService {
	return &OrganizationsService{client: client}
}

// List fetches the organization directory.
func (s *OrganizationsService) List(ctx context.Context) ([]models.Organization, error) {
	env, err := s.client.Get(ctx, "/api/v1/organizations", nil)
	if err != nil {
		return nil, err
	}
	orgs := []models.Organization{}
	if _, err := decodeData(env, &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

// Get fetches a single organization. A missing organization is (nil, nil).
func (s *OrganizationsService) Get(ctx context.Context, id string) (*models.Organization, error) {
	env, err := s.client.Get(ctx, "/api/v1/organizations/"+id, nil)
	if api.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var org models.Organization
	found, err := decodeData(env, &org)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &org, nil
}

// NewOrganization is the payload for submitting an organization to the
// directory. It enters the moderation queue as pending.
type NewOrganization struct {
	Name         string                  `json:"name"`
	Type         models.OrganizationType `json:"type"`
	Email        string                  `json:"email,omitempty"`
	Phone        string                  `json:"phone,omitempty"`
	Location     string                  `json:"location,omitempty"`
	Description  string                  `json:"description"`
	ProfileImage string                  `json:"profileImage,omitempty"`
	Sections     []models.Section        `json:"sections,omitempty"`
}

// Validate rejects incomplete submissions before any network round trip.
func (in NewOrganization) Validate() error {
	if in.Name == "" {
		return validationError("name")
	}
	return nil
}

// Add submits an organization for moderation.
func (s *OrganizationsService) Add(ctx context.Context, in NewOrganization) (*models.Organization, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	env, err := s.client.Post(ctx, "/add-organizations", in)
	if err != nil {
		return nil, err
	}
	var org models.Organization
	if _, err := decodeData(env, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

// Activities lists organization activities.
func (s *OrganizationsService) Activities(ctx context.Context) ([]models.Activity, error) {
	env, err := s.client.Get(ctx, "/api/v1/activities", nil)
	if err != nil {
		return nil, err
	}
	activities := []models.Activity{}
	if _, err := decodeData(env, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}

// NewActivity is the payload for announcing an organization activity.
type NewActivity struct {
	OrganizationID string `json:"organization,omitempty"`
	Title          string `json:"title"`
	Details        string `json:"details"`
	Date           string `json:"date"`
	Place          string `json:"place"`
	Image          string `json:"image,omitempty"`
}

// AddActivity announces an activity.
func (s *OrganizationsService) AddActivity(ctx context.Context, in NewActivity) (*models.Activity, error) {
	if in.Title == "" {
		return nil, validationError("title")
	}
	env, err := s.client.Post(ctx, "/api/v1/activities", in)
	if err != nil {
		return nil, err
	}
	var activity models.Activity
	if _, err := decodeData(env, &activity); err != nil {
		return nil, err
	}
	return &activity, nil
}
