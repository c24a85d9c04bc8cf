package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gigboard/internal/models"
)

// ProjectQuery narrows a project listing.
type ProjectQuery struct {
	Q        string
	Category string
	Page     int
	Limit    int
}

// ProjectRepository defines the interface for project data operations.
type ProjectRepository interface {
	List(ctx context.Context, q ProjectQuery) ([]models.Project, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)
	ListByPoster(ctx context.Context, userID string) ([]models.Project, error)
	Create(ctx context.Context, project *models.Project) error
}

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) List(ctx context.Context, q ProjectQuery) ([]models.Project, error) {
	tx := r.db.WithContext(ctx).Model(&models.Project{})
	if q.Q != "" {
		like := "%" + strings.ToLower(q.Q) + "%"
		tx = tx.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}

	limit := q.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := 0
	if q.Page > 1 {
		offset = (q.Page - 1) * limit
	}

	var projects []models.Project
	if err := tx.Order("created_at DESC").Limit(limit).Offset(offset).Find(&projects).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return projects, nil
}

func (r *projectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&project).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &project, nil
}

func (r *projectRepository) ListByPoster(ctx context.Context, userID string) ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.WithContext(ctx).Where("posted_by = ?", userID).Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return projects, nil
}

func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	if project.ID == "" {
		project.ID = uuid.NewString()
	}
	if project.Status == "" {
		project.Status = models.ProjectOpen
	}
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
