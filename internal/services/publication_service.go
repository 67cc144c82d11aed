package services

import (
	"errors"
	"time"

	"campaignhub_backend/internal/models"
	"campaignhub_backend/internal/repositories"
	"campaignhub_backend/internal/services/dto"
	"campaignhub_backend/pkg/apperrors"
)

// PublicationService - размещения этапа publication.
// Чистый CRUD, без переходов этапа проекта.
type PublicationService struct {
	store repositories.Store
}

func NewPublicationService(store repositories.Store) *PublicationService {
	return &PublicationService{store: store}
}

func (s *PublicationService) ListPublications(projectID uint) ([]models.Publication, error) {
	if _, err := s.store.Projects().FindByID(projectID); err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	publications, err := s.store.Publications().FindByProject(projectID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return publications, nil
}

func (s *PublicationService) CreatePublication(projectID uint, req *dto.CreatePublicationRequest) (*models.Publication, error) {
	if _, err := s.store.Projects().FindByID(projectID); err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if _, err := s.store.ProjectInfluencers().FindByPair(projectID, req.InfluencerID); err != nil {
		if errors.Is(err, repositories.ErrProjectInfluencerNotFound) {
			return nil, apperrors.ErrInfluencerNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	publication := &models.Publication{
		ProjectID:      projectID,
		InfluencerID:   req.InfluencerID,
		Platform:       req.Platform,
		PublicationURL: req.PublicationURL,
		Status:         models.PublicationStatusPublished,
		PublishedAt:    req.PublishedAt,
	}
	if err := s.store.Publications().Create(publication); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return publication, nil
}

func (s *PublicationService) getProjectPublication(projectID, publicationID uint) (*models.Publication, error) {
	publication, err := s.store.Publications().FindByID(publicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrPublicationNotFound) {
			return nil, apperrors.ErrPublicationNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if publication.ProjectID != projectID {
		return nil, apperrors.ErrPublicationNotFound
	}
	return publication, nil
}

func (s *PublicationService) UpdatePublication(projectID, publicationID uint, req *dto.UpdatePublicationRequest) (*models.Publication, error) {
	publication, err := s.getProjectPublication(projectID, publicationID)
	if err != nil {
		return nil, err
	}

	if req.Platform != nil {
		publication.Platform = *req.Platform
	}
	if req.PublicationURL != nil {
		publication.PublicationURL = *req.PublicationURL
	}
	if req.Status != nil {
		publication.Status = *req.Status
		if *req.Status == models.PublicationStatusVerified && publication.VerifiedAt == nil {
			now := time.Now()
			publication.VerifiedAt = &now
		}
	}

	if err := s.store.Publications().Update(publication); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return publication, nil
}

func (s *PublicationService) DeletePublication(projectID, publicationID uint) error {
	if _, err := s.getProjectPublication(projectID, publicationID); err != nil {
		return err
	}
	if err := s.store.Publications().Delete(publicationID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
