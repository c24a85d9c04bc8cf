package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gigboard/internal/models"
)

// JobQuery narrows a job listing.
type JobQuery struct {
	Q               string
	Category        string
	Location        string
	JobType         string
	ExperienceLevel string
	Page            int
	Limit           int
}

// JobRepository defines the interface for job data operations.
type JobRepository interface {
	List(ctx context.Context, q JobQuery) ([]models.Job, error)
	GetByID(ctx context.Context, id string) (*models.Job, error)
	ListByPoster(ctx context.Context, userID string) ([]models.Job, error)
	Create(ctx context.Context, job *models.Job) error
}

type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new job repository.
func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) List(ctx context.Context, q JobQuery) ([]models.Job, error) {
	tx := r.db.WithContext(ctx).Model(&models.Job{})
	if q.Q != "" {
		like := "%" + strings.ToLower(q.Q) + "%"
		tx = tx.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}
	if q.Location != "" {
		tx = tx.Where("location = ?", q.Location)
	}
	if q.JobType != "" {
		tx = tx.Where("job_type = ?", q.JobType)
	}
	if q.ExperienceLevel != "" {
		tx = tx.Where("experience_level = ?", q.ExperienceLevel)
	}

	limit := q.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := 0
	if q.Page > 1 {
		offset = (q.Page - 1) * limit
	}

	var jobs []models.Job
	if err := tx.Order("created_at DESC").Limit(limit).Offset(offset).Find(&jobs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return jobs, nil
}

func (r *jobRepository) GetByID(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&job).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &job, nil
}

func (r *jobRepository) ListByPoster(ctx context.Context, userID string) ([]models.Job, error) {
	var jobs []models.Job
	if err := r.db.WithContext(ctx).Where("posted_by = ?", userID).Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return jobs, nil
}

func (r *jobRepository) Create(ctx context.Context, job *models.Job) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.Status == "" {
		job.Status = models.JobOpen
	}
	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
