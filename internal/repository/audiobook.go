package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gigboard/internal/models"
)

// AudioBookRepository defines the interface for audiobook catalogue
// operations.
type AudioBookRepository interface {
	List(ctx context.Context) ([]models.AudioBook, error)
	GetByID(ctx context.Context, id string) (*models.AudioBook, error)
	Create(ctx context.Context, book *models.AudioBook) error
}

type audioBookRepository struct {
	db *gorm.DB
}

// NewAudioBookRepository creates a new audiobook repository.
func NewAudioBookRepository(db *gorm.DB) AudioBookRepository {
	return &audioBookRepository{db: db}
}

func (r *audioBookRepository) List(ctx context.Context) ([]models.AudioBook, error) {
	var books []models.AudioBook
	if err := r.db.WithContext(ctx).Order("title").Find(&books).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return books, nil
}

func (r *audioBookRepository) GetByID(ctx context.Context, id string) (*models.AudioBook, error) {
	var book models.AudioBook
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&book).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &book, nil
}

func (r *audioBookRepository) Create(ctx context.Context, book *models.AudioBook) error {
	if book.ID == "" {
		book.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(book).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
