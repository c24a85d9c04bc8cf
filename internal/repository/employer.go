package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gigboard/internal/models"
)

// EmployerRepository defines the interface for employer profile operations.
type EmployerRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.EmployerProfile, error)
	Create(ctx context.Context, profile *models.EmployerProfile) error
	SetApproval(ctx context.Context, userID string, approval models.ApprovalStatus) error
}

type employerRepository struct {
	db *gorm.DB
}

// NewEmployerRepository creates a new employer repository.
func NewEmployerRepository(db *gorm.DB) EmployerRepository {
	return &employerRepository{db: db}
}

func (r *employerRepository) GetByUserID(ctx context.Context, userID string) (*models.EmployerProfile, error) {
	var profile models.EmployerProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}

func (r *employerRepository) Create(ctx context.Context, profile *models.EmployerProfile) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	if profile.Approval == "" {
		profile.Approval = models.ApprovalPending
	}
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// SetApproval transitions a profile's approval status. In production this is
// driven by the external admin workflow; the seed command and tests use it
// directly.
func (r *employerRepository) SetApproval(ctx context.Context, userID string, approval models.ApprovalStatus) error {
	result := r.db.WithContext(ctx).Model(&models.EmployerProfile{}).
		Where("user_id = ?", userID).
		Update("approval", approval)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("EmployerProfile", userID)
	}
	return nil
}
