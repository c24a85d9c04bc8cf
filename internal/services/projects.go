package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"gigboard/internal/api"
	"gigboard/internal/models"
)

// ProjectsService wraps the freelance-marketplace endpoints, proposals
// included.
type ProjectsService struct {
	client *api.Client
}

// NewProjectsService creates a projects accessor on top of the resource client.
func NewProjectsService(client *api.Client) *ProjectsService {
	return &ProjectsService{client: client}
}

// ProjectFilters narrows a project listing.
type ProjectFilters struct {
	Q        string
	Category string
	Page     int
	Limit    int
}

func (f ProjectFilters) values() url.Values {
	q := url.Values{}
	if f.Q != "" {
		q.Set("q", f.Q)
	}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Page > 0 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	return q
}

// List fetches projects matching the filters.
func (s *ProjectsService) List(ctx context.Context, f ProjectFilters) ([]models.Project, error) {
	env, err := s.client.Get(ctx, "/projects", f.values())
	if err != nil {
		return nil, err
	}
	projects := []models.Project{}
	if _, err := decodeData(env, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// Get fetches a single project. A missing project is (nil, nil).
func (s *ProjectsService) Get(ctx context.Context, id string) (*models.Project, error) {
	env, err := s.client.Get(ctx, "/projects/"+id, nil)
	if api.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var project models.Project
	found, err := decodeData(env, &project)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &project, nil
}

// NewProject is the payload for posting a project. Exactly one of Budget or
// HourlyRate must be set, matching BudgetType.
type NewProject struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	BudgetType  models.BudgetType `json:"budgetType"`
	Budget      *float64          `json:"budget,omitempty"`
	HourlyRate  *float64          `json:"hourlyRate,omitempty"`
	Skills      []string          `json:"skills"`
	Deadline    time.Time         `json:"deadline"`
}

// Validate rejects incomplete or budget-ambiguous projects before any
// network round trip.
func (in NewProject) Validate() error {
	if in.Title == "" {
		return validationError("title")
	}
	probe := models.Project{BudgetType: in.BudgetType, Budget: in.Budget, HourlyRate: in.HourlyRate}
	if err := probe.ValidateBudget(); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// Create posts a new project and returns the created entity.
func (s *ProjectsService) Create(ctx context.Context, in NewProject) (*models.Project, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	env, err := s.client.Post(ctx, "/projects", in)
	if err != nil {
		return nil, err
	}
	var project models.Project
	if _, err := decodeData(env, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// ClientProjects lists the projects owned by the current user.
func (s *ProjectsService) ClientProjects(ctx context.Context) ([]models.Project, error) {
	env, err := s.client.Get(ctx, "/client/projects", nil)
	if err != nil {
		return nil, err
	}
	projects := []models.Project{}
	if _, err := decodeData(env, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// NewProposal is the payload for bidding on a project. Exactly one of
// ProposedPrice or HourlyRate must be set, matching the project's budget
// type; the backend rejects mismatches.
type NewProposal struct {
	CoverLetter   string   `json:"coverLetter"`
	ProposedPrice *float64 `json:"proposedPrice,omitempty"`
	HourlyRate    *float64 `json:"hourlyRate,omitempty"`
	DeliveryTime  string   `json:"deliveryTime"`
}

// Validate rejects incomplete proposals before any network round trip.
func (in NewProposal) Validate() error {
	if in.CoverLetter == "" {
		return validationError("coverLetter")
	}
	if in.ProposedPrice == nil && in.HourlyRate == nil {
		return validationError("proposedPrice or hourlyRate")
	}
	if in.ProposedPrice != nil && in.HourlyRate != nil {
		return fmt.Errorf("%w: proposedPrice and hourlyRate are mutually exclusive", ErrValidation)
	}
	return nil
}

// SubmitProposal bids on a project and returns the created proposal.
func (s *ProjectsService) SubmitProposal(ctx context.Context, projectID string, in NewProposal) (*models.Proposal, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	env, err := s.client.Post(ctx, "/projects/"+projectID+"/proposals", in)
	if err != nil {
		return nil, err
	}
	var proposal models.Proposal
	if _, err := decodeData(env, &proposal); err != nil {
		return nil, err
	}
	return &proposal, nil
}

// Proposals lists the proposals on a project. The backend only answers this
// for the project's owner; everyone else gets a 403, which propagates.
func (s *ProjectsService) Proposals(ctx context.Context, projectID string) ([]models.Proposal, error) {
	env, err := s.client.Get(ctx, "/projects/"+projectID+"/proposals", nil)
	if err != nil {
		return nil, err
	}
	proposals := []models.Proposal{}
	if _, err := decodeData(env, &proposals); err != nil {
		return nil, err
	}
	return proposals, nil
}

// Relationship asks the backend what the current user is to the given
// project, instead of inferring it from which fetches happen to succeed.
func (s *ProjectsService) Relationship(ctx context.Context, projectID string) (*models.ProjectRelationship, error) {
	env, err := s.client.Get(ctx, "/projects/"+projectID+"/relationship", nil)
	if err != nil {
		return nil, err
	}
	var rel models.ProjectRelationship
	found, err := decodeData(env, &rel)
	if err != nil {
		return nil, err
	}
	if !found {
		return &models.ProjectRelationship{Role: models.ProjectRoleVisitor}, nil
	}
	return &rel, nil
}

// UpdateProposalStatus asks the backend to decide a pending proposal. Only
// terminal targets are legal input; the call mutates nothing locally, so on
// success or failure alike the caller re-fetches the project and its
// proposals to pick up the authoritative state.
func (s *ProjectsService) UpdateProposalStatus(ctx context.Context, proposalID string, status models.ProposalStatus) (*models.Proposal, error) {
	if !status.Terminal() {
		return nil, fmt.Errorf("%w: status must be accepted or rejected", ErrValidation)
	}
	env, err := s.client.Patch(ctx, "/proposals/"+proposalID+"/status", map[string]models.ProposalStatus{
		"status": status,
	})
	if err != nil {
		return nil, err
	}
	var proposal models.Proposal
	if _, err := decodeData(env, &proposal); err != nil {
		return nil, err
	}
	return &proposal, nil
}
