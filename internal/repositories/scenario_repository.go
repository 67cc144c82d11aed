package repositories

import (
	"errors"

	"campaignhub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrScenarioNotFound = errors.New("scenario not found")

type ScenarioRepository interface {
	FindByID(id uint) (*models.Scenario, error)
	FindByProject(projectID uint) ([]models.Scenario, error)
	Create(scenario *models.Scenario) error
	Update(scenario *models.Scenario) error
	Delete(id uint) error
	DeleteByProject(projectID uint) error
}

type scenarioRepository struct {
	db *gorm.DB
}

func (r *scenarioRepository) FindByID(id uint) (*models.Scenario, error) {
	var scenario models.Scenario
	if err := r.db.First(&scenario, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScenarioNotFound
		}
		return nil, err
	}
	return &scenario, nil
}

func (r *scenarioRepository) FindByProject(projectID uint) ([]models.Scenario, error) {
	var scenarios []models.Scenario
	if err := r.db.Where("project_id = ?", projectID).Order("id").Find(&scenarios).Error; err != nil {
		return nil, err
	}
	return scenarios, nil
}

func (r *scenarioRepository) Create(scenario *models.Scenario) error {
	return r.db.Create(scenario).Error
}

func (r *scenarioRepository) Update(scenario *models.Scenario) error {
	return r.db.Save(scenario).Error
}

func (r *scenarioRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Scenario{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrScenarioNotFound
	}
	return nil
}

func (r *scenarioRepository) DeleteByProject(projectID uint) error {
	return r.db.Where("project_id = ?", projectID).Delete(&models.Scenario{}).Error
}
