package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gigboard/internal/models"
)

// ApplicationRepository defines the interface for job application operations.
// Applications have no lifecycle status; they are created and listed, nothing
// else.
type ApplicationRepository interface {
	Create(ctx context.Context, app *models.JobApplication) error
	ListByApplicant(ctx context.Context, userID string) ([]models.JobApplication, error)
	ListByJob(ctx context.Context, jobID string) ([]models.JobApplication, error)
	Exists(ctx context.Context, jobID, userID string) (bool, error)
}

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository.
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, app *models.JobApplication) error {
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(app).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *applicationRepository) ListByApplicant(ctx context.Context, userID string) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := r.db.WithContext(ctx).Preload("Job").
		Where("applicant = ?", userID).
		Order("applied_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return apps, nil
}

func (r *applicationRepository) ListByJob(ctx context.Context, jobID string) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := r.db.WithContext(ctx).Preload("Job").
		Where("job_id = ?", jobID).
		Order("applied_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return apps, nil
}

func (r *applicationRepository) Exists(ctx context.Context, jobID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.JobApplication{}).
		Where("job_id = ? AND applicant = ?", jobID, userID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}
