package services

import (
	"errors"
	"time"

	"campaignhub_backend/internal/models"
	"campaignhub_backend/internal/repositories"
	"campaignhub_backend/internal/services/dto"
	"campaignhub_backend/pkg/apperrors"
)

// MaterialService - готовые материалы этапа material.
// Чистый CRUD, без переходов этапа проекта.
type MaterialService struct {
	store repositories.Store
}

func NewMaterialService(store repositories.Store) *MaterialService {
	return &MaterialService{store: store}
}

func (s *MaterialService) ListMaterials(projectID uint) ([]models.Material, error) {
	if _, err := s.store.Projects().FindByID(projectID); err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	materials, err := s.store.Materials().FindByProject(projectID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return materials, nil
}

func (s *MaterialService) CreateMaterial(projectID uint, req *dto.CreateMaterialRequest) (*models.Material, error) {
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

	material := &models.Material{
		ProjectID:    projectID,
		InfluencerID: req.InfluencerID,
		MaterialURL:  req.MaterialURL,
		Description:  req.Description,
		Status:       models.MaterialStatusDraft,
	}
	if err := s.store.Materials().Create(material); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return material, nil
}

func (s *MaterialService) getProjectMaterial(projectID, materialID uint) (*models.Material, error) {
	material, err := s.store.Materials().FindByID(materialID)
	if err != nil {
		if errors.Is(err, repositories.ErrMaterialNotFound) {
			return nil, apperrors.ErrMaterialNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if material.ProjectID != projectID {
		return nil, apperrors.ErrMaterialNotFound
	}
	return material, nil
}

func (s *MaterialService) UpdateMaterial(projectID, materialID uint, req *dto.UpdateMaterialRequest) (*models.Material, error) {
	material, err := s.getProjectMaterial(projectID, materialID)
	if err != nil {
		return nil, err
	}

	if req.MaterialURL != nil {
		material.MaterialURL = *req.MaterialURL
	}
	if req.Description != nil {
		material.Description = *req.Description
	}
	if req.Status != nil {
		material.Status = *req.Status
		now := time.Now()
		switch *req.Status {
		case models.MaterialStatusSubmitted:
			if material.SubmittedAt == nil {
				material.SubmittedAt = &now
			}
		case models.MaterialStatusApproved:
			if material.ApprovedAt == nil {
				material.ApprovedAt = &now
			}
		}
	}

	if err := s.store.Materials().Update(material); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return material, nil
}

func (s *MaterialService) DeleteMaterial(projectID, materialID uint) error {
	if _, err := s.getProjectMaterial(projectID, materialID); err != nil {
		return err
	}
	if err := s.store.Materials().Delete(materialID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
