package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gigboard/internal/models"
)

// ProposalRepository defines the interface for proposal data operations.
// Decide is the authoritative state machine: it is the only way a proposal
// leaves pending.
type ProposalRepository interface {
	Create(ctx context.Context, proposal *models.Proposal) error
	GetByID(ctx context.Context, id string) (*models.Proposal, error)
	ListByProject(ctx context.Context, projectID string) ([]models.Proposal, error)
	GetByProjectAndFreelancer(ctx context.Context, projectID, userID string) (*models.Proposal, error)
	Decide(ctx context.Context, id string, status models.ProposalStatus) (*models.Proposal, error)
}

type proposalRepository struct {
	db *gorm.DB
}

// NewProposalRepository creates a new proposal repository.
func NewProposalRepository(db *gorm.DB) ProposalRepository {
	return &proposalRepository{db: db}
}

func (r *proposalRepository) Create(ctx context.Context, proposal *models.Proposal) error {
	if proposal.ID == "" {
		proposal.ID = uuid.NewString()
	}
	if proposal.Status == "" {
		proposal.Status = models.ProposalPending
	}
	if err := r.db.WithContext(ctx).Create(proposal).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *proposalRepository) GetByID(ctx context.Context, id string) (*models.Proposal, error) {
	var proposal models.Proposal
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&proposal).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &proposal, nil
}

func (r *proposalRepository) ListByProject(ctx context.Context, projectID string) ([]models.Proposal, error) {
	var proposals []models.Proposal
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&proposals).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return proposals, nil
}

func (r *proposalRepository) GetByProjectAndFreelancer(ctx context.Context, projectID, userID string) (*models.Proposal, error) {
	var proposal models.Proposal
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND freelancer = ?", projectID, userID).
		First(&proposal).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &proposal, nil
}

// Decide transitions a pending proposal to a terminal status inside one
// transaction. Accepting also moves the project to in_progress and records
// the selected freelancer. The status write is conditional on the row still
// being pending, and the partial unique index on accepted proposals rejects
// a second accept that slipped past the count, so the invariant holds under
// concurrent decisions too.
func (r *proposalRepository) Decide(ctx context.Context, id string, status models.ProposalStatus) (*models.Proposal, error) {
	var decided *models.Proposal
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var proposal models.Proposal
		if err := tx.Where("id = ?", id).First(&proposal).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return models.NewNotFoundError("Proposal", id)
			}
			return models.NewInternalError(err)
		}

		if !models.CanTransitionProposal(proposal.Status, status) {
			return models.NewConflictError("proposal already " + string(proposal.Status))
		}

		if status == models.ProposalAccepted {
			var accepted int64
			err := tx.Model(&models.Proposal{}).
				Where("project_id = ? AND status = ?", proposal.ProjectID, models.ProposalAccepted).
				Count(&accepted).Error
			if err != nil {
				return models.NewInternalError(err)
			}
			if accepted > 0 {
				return models.NewConflictError("a proposal is already accepted for this project")
			}
		}

		res := tx.Model(&models.Proposal{}).
			Where("id = ? AND status = ?", id, models.ProposalPending).
			Update("status", status)
		if res.Error != nil {
			if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
				return models.NewConflictError("a proposal is already accepted for this project")
			}
			return models.NewInternalError(res.Error)
		}
		if res.RowsAffected == 0 {
			return models.NewConflictError("proposal already decided")
		}

		if status == models.ProposalAccepted {
			err := tx.Model(&models.Project{}).
				Where("id = ?", proposal.ProjectID).
				Updates(map[string]any{
					"status":              models.ProjectInProgress,
					"selected_freelancer": proposal.Freelancer,
				}).Error
			if err != nil {
				return models.NewInternalError(err)
			}
		}

		proposal.Status = status
		decided = &proposal
		return nil
	})
	if err != nil {
		return nil, err
	}
	return decided, nil
}
