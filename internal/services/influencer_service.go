package services

import (
	"errors"

	"campaignhub_backend/internal/models"
	"campaignhub_backend/internal/repositories"
	"campaignhub_backend/internal/services/dto"
	"campaignhub_backend/pkg/apperrors"
)

// InfluencerService - ростер инфлюенсеров агентства
type InfluencerService struct {
	store repositories.Store
}

func NewInfluencerService(store repositories.Store) *InfluencerService {
	return &InfluencerService{store: store}
}

func (s *InfluencerService) ListInfluencers() ([]models.Influencer, error) {
	influencers, err := s.store.Influencers().FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return influencers, nil
}

func (s *InfluencerService) GetInfluencer(id uint) (*models.Influencer, error) {
	influencer, err := s.store.Influencers().FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrInfluencerNotFound) {
			return nil, apperrors.ErrInfluencerNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return influencer, nil
}

func (s *InfluencerService) CreateInfluencer(req *dto.CreateInfluencerRequest) (*models.Influencer, error) {
	influencer := &models.Influencer{
		UserID:             req.UserID,
		Nickname:           req.Nickname,
		Bio:                req.Bio,
		InstagramHandle:    req.InstagramHandle,
		InstagramFollowers: req.InstagramFollowers,
		TiktokHandle:       req.TiktokHandle,
		TiktokFollowers:    req.TiktokFollowers,
		YoutubeHandle:      req.YoutubeHandle,
		YoutubeFollowers:   req.YoutubeFollowers,
		TelegramHandle:     req.TelegramHandle,
		TelegramFollowers:  req.TelegramFollowers,
		VkHandle:           req.VkHandle,
		VkFollowers:        req.VkFollowers,
	}
	if err := s.store.Influencers().Create(influencer); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return influencer, nil
}
