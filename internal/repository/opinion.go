package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gigboard/internal/models"
)

// OpinionRepository defines the interface for the opinion feed.
type OpinionRepository interface {
	List(ctx context.Context) ([]models.Opinion, error)
	Create(ctx context.Context, opinion *models.Opinion) error
}

type opinionRepository struct {
	db *gorm.DB
}

// NewOpinionRepository creates a new opinion repository.
func NewOpinionRepository(db *gorm.DB) OpinionRepository {
	return &opinionRepository{db: db}
}

func (r *opinionRepository) List(ctx context.Context) ([]models.Opinion, error) {
	var opinions []models.Opinion
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(100).Find(&opinions).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return opinions, nil
}

func (r *opinionRepository) Create(ctx context.Context, opinion *models.Opinion) error {
	if opinion.ID == "" {
		opinion.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(opinion).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
