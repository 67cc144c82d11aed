package repositories

import (
	"errors"

	"campaignhub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrInfluencerNotFound = errors.New("influencer not found")

type InfluencerRepository interface {
	FindByID(id uint) (*models.Influencer, error)
	FindByUserID(userID uint) (*models.Influencer, error)
	Create(influencer *models.Influencer) error
	FindAll() ([]models.Influencer, error)
}

type influencerRepository struct {
	db *gorm.DB
}

func (r *influencerRepository) FindByID(id uint) (*models.Influencer, error) {
	var influencer models.Influencer
	if err := r.db.First(&influencer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInfluencerNotFound
		}
		return nil, err
	}
	return &influencer, nil
}

func (r *influencerRepository) FindByUserID(userID uint) (*models.Influencer, error) {
	var influencer models.Influencer
	if err := r.db.First(&influencer, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInfluencerNotFound
		}
		return nil, err
	}
	return &influencer, nil
}

func (r *influencerRepository) Create(influencer *models.Influencer) error {
	return r.db.Create(influencer).Error
}

func (r *influencerRepository) FindAll() ([]models.Influencer, error) {
	var influencers []models.Influencer
	if err := r.db.Order("id").Find(&influencers).Error; err != nil {
		return nil, err
	}
	return influencers, nil
}
