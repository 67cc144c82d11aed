package repositories

import (
	"errors"

	"campaignhub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPublicationNotFound = errors.New("publication not found")

type PublicationRepository interface {
	FindByID(id uint) (*models.Publication, error)
	FindByProject(projectID uint) ([]models.Publication, error)
	Create(publication *models.Publication) error
	Update(publication *models.Publication) error
	Delete(id uint) error
	DeleteByProject(projectID uint) error
}

type publicationRepository struct {
	db *gorm.DB
}

func (r *publicationRepository) FindByID(id uint) (*models.Publication, error) {
	var publication models.Publication
	if err := r.db.First(&publication, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPublicationNotFound
		}
		return nil, err
	}
	return &publication, nil
}

func (r *publicationRepository) FindByProject(projectID uint) ([]models.Publication, error) {
	var publications []models.Publication
	if err := r.db.Where("project_id = ?", projectID).Order("id").Find(&publications).Error; err != nil {
		return nil, err
	}
	return publications, nil
}

func (r *publicationRepository) Create(publication *models.Publication) error {
	return r.db.Create(publication).Error
}

func (r *publicationRepository) Update(publication *models.Publication) error {
	return r.db.Save(publication).Error
}

func (r *publicationRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Publication{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPublicationNotFound
	}
	return nil
}

func (r *publicationRepository) DeleteByProject(projectID uint) error {
	return r.db.Where("project_id = ?", projectID).Delete(&models.Publication{}).Error
}
