package repositories

import (
	"campaignhub_backend/internal/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	FindByProject(projectID uint) ([]models.Comment, error)
	Create(comment *models.Comment) error
	DeleteByProject(projectID uint) error
}

type commentRepository struct {
	db *gorm.DB
}

// FindByProject возвращает комментарии проекта от старых к новым
func (r *commentRepository) FindByProject(projectID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.Where("project_id = ?", projectID).Order("created_at, id").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) DeleteByProject(projectID uint) error {
	return r.db.Where("project_id = ?", projectID).Delete(&models.Comment{}).Error
}
