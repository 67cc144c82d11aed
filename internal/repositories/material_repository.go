package repositories

import (
	"errors"

	"campaignhub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrMaterialNotFound = errors.New("material not found")

type MaterialRepository interface {
	FindByID(id uint) (*models.Material, error)
	FindByProject(projectID uint) ([]models.Material, error)
	Create(material *models.Material) error
	Update(material *models.Material) error
	Delete(id uint) error
	DeleteByProject(projectID uint) error
}

type materialRepository struct {
	db *gorm.DB
}

func (r *materialRepository) FindByID(id uint) (*models.Material, error) {
	var material models.Material
	if err := r.db.First(&material, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMaterialNotFound
		}
		return nil, err
	}
	return &material, nil
}

func (r *materialRepository) FindByProject(projectID uint) ([]models.Material, error) {
	var materials []models.Material
	if err := r.db.Where("project_id = ?", projectID).Order("id").Find(&materials).Error; err != nil {
		return nil, err
	}
	return materials, nil
}

func (r *materialRepository) Create(material *models.Material) error {
	return r.db.Create(material).Error
}

func (r *materialRepository) Update(material *models.Material) error {
	return r.db.Save(material).Error
}

func (r *materialRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Material{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMaterialNotFound
	}
	return nil
}

func (r *materialRepository) DeleteByProject(projectID uint) error {
	return r.db.Where("project_id = ?", projectID).Delete(&models.Material{}).Error
}
