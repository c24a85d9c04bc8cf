package services

import (
	"context"

	"gigboard/internal/api"
	"gigboard/internal/models"
)

// EmployersService wraps the employer-application endpoints.
type EmployersService struct {
	client *api.Client
}

// NewEmployersService creates an employers accessor on top of the resource client.
func NewEmployersService(client *api.Client) *EmployersService {
	return &EmployersService{client: client}
}

// EmployerStatus is the current user's employer standing. This endpoint puts
// `approved` and `status` beside `success` instead of under `data`; the shape
// is preserved as the contract defines it.
type EmployerStatus struct {
	Success  bool                  `json:"success"`
	Approved bool                  `json:"approved"`
	Status   models.ApprovalStatus `json:"status"`
}

// Status fetches the current user's employer standing. Guests get a 401,
// which propagates; the role resolver is responsible for downgrading that to
// "not an employer".
func (s *EmployersService) Status(ctx context.Context) (EmployerStatus, error) {
	var status EmployerStatus
	if err := s.client.GetInto(ctx, "/employers/status", nil, &status); err != nil {
		return EmployerStatus{}, err
	}
	return status, nil
}

// EmployerApplication is the payload for requesting employer approval.
type EmployerApplication struct {
	CompanyName     string `json:"companyName"`
	CompanyWebsite  string `json:"companyWebsite,omitempty"`
	CompanyLocation string `json:"companyLocation"`
	Description     string `json:"description"`
}

// Validate rejects incomplete applications before any network round trip.
func (in EmployerApplication) Validate() error {
	if in.CompanyName == "" {
		return validationError("companyName")
	}
	if in.CompanyLocation == "" {
		return validationError("companyLocation")
	}
	return nil
}

// Apply submits an employer application. Approval happens in an external
// moderation workflow; the profile stays pending until then.
func (s *EmployersService) Apply(ctx context.Context, in EmployerApplication) (*models.EmployerProfile, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	env, err := s.client.Post(ctx, "/employers/apply", in)
	if err != nil {
		return nil, err
	}
	var profile models.EmployerProfile
	if _, err := decodeData(env, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
