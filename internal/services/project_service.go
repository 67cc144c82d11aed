package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"campaignhub_backend/internal/logger"
	"campaignhub_backend/internal/models"
	"campaignhub_backend/internal/repositories"
	"campaignhub_backend/internal/services/dto"
	"campaignhub_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

// ProjectService - CRUD рекламных кампаний и каскадное удаление
type ProjectService struct {
	store repositories.Store
}

func NewProjectService(store repositories.Store) *ProjectService {
	return &ProjectService{store: store}
}

func marshalJSON(v interface{}) (datatypes.JSON, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal json field: %w", err)
	}
	return datatypes.JSON(b), nil
}

func (s *ProjectService) ListProjects() ([]models.Project, error) {
	projects, err := s.store.Projects().FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return projects, nil
}

func (s *ProjectService) GetProject(id uint) (*models.Project, error) {
	project, err := s.store.Projects().FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return project, nil
}

// CreateProject создает кампанию; новые проекты всегда стартуют на этапе scenario
func (s *ProjectService) CreateProject(managerID uint, req *dto.CreateProjectRequest) (*models.Project, error) {
	keyRequirements, err := marshalJSON(req.KeyRequirements)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	technicalLinks, err := marshalJSON(req.TechnicalLinks)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	platforms, err := marshalJSON(req.Platforms)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	status := models.ProjectStatusActive
	if req.Status != nil {
		status = *req.Status
	}

	project := &models.Project{
		Title:               req.Title,
		Client:              req.Client,
		Description:         req.Description,
		KeyRequirements:     keyRequirements,
		StartDate:           req.StartDate,
		Deadline:            req.Deadline,
		ScenarioDeadline:    req.ScenarioDeadline,
		MaterialDeadline:    req.MaterialDeadline,
		PublicationDeadline: req.PublicationDeadline,
		Status:              status,
		WorkflowStage:       models.WorkflowStageScenario,
		Budget:              req.Budget,
		Erid:                req.Erid,
		ManagerID:           managerID,
		TechnicalLinks:      technicalLinks,
		Platforms:           platforms,
	}
	if err := s.store.Projects().Create(project); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("project created", "project_id", project.ID, "manager_id", managerID)
	return project, nil
}

func (s *ProjectService) UpdateProject(id uint, req *dto.UpdateProjectRequest) (*models.Project, error) {
	project, err := s.GetProject(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Client != nil {
		project.Client = *req.Client
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.KeyRequirements != nil {
		keyRequirements, err := marshalJSON(req.KeyRequirements)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		project.KeyRequirements = keyRequirements
	}
	if req.StartDate != nil {
		project.StartDate = *req.StartDate
	}
	if req.Deadline != nil {
		project.Deadline = req.Deadline
	}
	if req.ScenarioDeadline != nil {
		project.ScenarioDeadline = req.ScenarioDeadline
	}
	if req.MaterialDeadline != nil {
		project.MaterialDeadline = req.MaterialDeadline
	}
	if req.PublicationDeadline != nil {
		project.PublicationDeadline = req.PublicationDeadline
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.Budget != nil {
		project.Budget = req.Budget
	}
	if req.Erid != nil {
		project.Erid = *req.Erid
	}
	if req.TechnicalLinks != nil {
		technicalLinks, err := marshalJSON(req.TechnicalLinks)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		project.TechnicalLinks = technicalLinks
	}
	if req.Platforms != nil {
		platforms, err := marshalJSON(req.Platforms)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		project.Platforms = platforms
	}

	if err := s.store.Projects().Update(project); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return project, nil
}

// DeleteProject удаляет проект со всеми дочерними записями в одной
// транзакции. Разрешено только менеджеру-владельцу проекта.
func (s *ProjectService) DeleteProject(callerID, id uint) error {
	project, err := s.GetProject(id)
	if err != nil {
		return err
	}
	if project.ManagerID != callerID {
		return apperrors.ErrNotProjectOwner
	}

	err = s.store.Transaction(func(tx repositories.Store) error {
		if err := tx.ProjectInfluencers().DeleteByProject(id); err != nil {
			return err
		}
		if err := tx.Scenarios().DeleteByProject(id); err != nil {
			return err
		}
		if err := tx.Materials().DeleteByProject(id); err != nil {
			return err
		}
		if err := tx.Publications().DeleteByProject(id); err != nil {
			return err
		}
		if err := tx.Comments().DeleteByProject(id); err != nil {
			return err
		}
		if err := tx.Activities().DeleteByProject(id); err != nil {
			return err
		}
		return tx.Projects().Delete(id)
	})
	if err != nil {
		return apperrors.InternalError(err)
	}

	logger.Info("project deleted", "project_id", id, "manager_id", callerID)
	return nil
}
