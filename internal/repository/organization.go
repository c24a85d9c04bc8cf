package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gigboard/internal/models"
)

// OrganizationRepository defines the interface for organization directory
// operations.
type OrganizationRepository interface {
	List(ctx context.Context) ([]models.Organization, error)
	GetByID(ctx context.Context, id string) (*models.Organization, error)
	Create(ctx context.Context, org *models.Organization) error
	ListActivities(ctx context.Context) ([]models.Activity, error)
	CreateActivity(ctx context.Context, activity *models.Activity) error
}

type organizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new organization repository.
func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &organizationRepository{db: db}
}

func (r *organizationRepository) List(ctx context.Context) ([]models.Organization, error) {
	var orgs []models.Organization
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&orgs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return orgs, nil
}

func (r *organizationRepository) GetByID(ctx context.Context, id string) (*models.Organization, error) {
	var org models.Organization
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&org).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &org, nil
}

func (r *organizationRepository) Create(ctx context.Context, org *models.Organization) error {
	if org.ID == "" {
		org.ID = uuid.NewString()
	}
	if org.Status == "" {
		org.Status = models.ApprovalPending
	}
	if err := r.db.WithContext(ctx).Create(org).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *organizationRepository) ListActivities(ctx context.Context) ([]models.Activity, error) {
	var activities []models.Activity
	if err := r.db.WithContext(ctx).Order("date DESC").Find(&activities).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return activities, nil
}

func (r *organizationRepository) CreateActivity(ctx context.Context, activity *models.Activity) error {
	if activity.ID == "" {
		activity.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(activity).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
