package repositories

import (
	"campaignhub_backend/internal/models"

	"gorm.io/gorm"
)

type ActivityRepository interface {
	FindByProject(projectID uint) ([]models.Activity, error)
	FindRecent(limit int) ([]models.Activity, error)
	Create(activity *models.Activity) error
	DeleteByProject(projectID uint) error
}

type activityRepository struct {
	db *gorm.DB
}

// FindByProject возвращает записи активности от новых к старым
func (r *activityRepository) FindByProject(projectID uint) ([]models.Activity, error) {
	var activities []models.Activity
	if err := r.db.Where("project_id = ?", projectID).Order("created_at DESC, id DESC").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) FindRecent(limit int) ([]models.Activity, error) {
	var activities []models.Activity
	if err := r.db.Order("created_at DESC, id DESC").Limit(limit).Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) Create(activity *models.Activity) error {
	return r.db.Create(activity).Error
}

func (r *activityRepository) DeleteByProject(projectID uint) error {
	return r.db.Where("project_id = ?", projectID).Delete(&models.Activity{}).Error
}
