package repositories

import (
	"errors"

	"campaignhub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProjectInfluencerNotFound = errors.New("project influencer not found")
	ErrProjectInfluencerExists   = errors.New("influencer already attached to project")
)

type ProjectInfluencerRepository interface {
	FindByPair(projectID, influencerID uint) (*models.ProjectInfluencer, error)
	FindByProject(projectID uint) ([]models.ProjectInfluencer, error)
	FindByInfluencer(influencerID uint) ([]models.ProjectInfluencer, error)
	Create(pi *models.ProjectInfluencer) error
	Update(pi *models.ProjectInfluencer) error
	DeleteByProject(projectID uint) error
}

type projectInfluencerRepository struct {
	db *gorm.DB
}

func (r *projectInfluencerRepository) FindByPair(projectID, influencerID uint) (*models.ProjectInfluencer, error) {
	var pi models.ProjectInfluencer
	err := r.db.First(&pi, "project_id = ? AND influencer_id = ?", projectID, influencerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectInfluencerNotFound
		}
		return nil, err
	}
	return &pi, nil
}

func (r *projectInfluencerRepository) FindByProject(projectID uint) ([]models.ProjectInfluencer, error) {
	var pis []models.ProjectInfluencer
	if err := r.db.Where("project_id = ?", projectID).Order("id").Find(&pis).Error; err != nil {
		return nil, err
	}
	return pis, nil
}

func (r *projectInfluencerRepository) FindByInfluencer(influencerID uint) ([]models.ProjectInfluencer, error) {
	var pis []models.ProjectInfluencer
	if err := r.db.Where("influencer_id = ?", influencerID).Order("id").Find(&pis).Error; err != nil {
		return nil, err
	}
	return pis, nil
}

func (r *projectInfluencerRepository) Create(pi *models.ProjectInfluencer) error {
	var count int64
	err := r.db.Model(&models.ProjectInfluencer{}).
		Where("project_id = ? AND influencer_id = ?", pi.ProjectID, pi.InfluencerID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrProjectInfluencerExists
	}
	return r.db.Create(pi).Error
}

func (r *projectInfluencerRepository) Update(pi *models.ProjectInfluencer) error {
	return r.db.Save(pi).Error
}

func (r *projectInfluencerRepository) DeleteByProject(projectID uint) error {
	return r.db.Where("project_id = ?", projectID).Delete(&models.ProjectInfluencer{}).Error
}
