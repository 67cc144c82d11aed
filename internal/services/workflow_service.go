package services

import (
	"errors"
	"fmt"
	"time"

	"campaignhub_backend/internal/logger"
	"campaignhub_backend/internal/models"
	"campaignhub_backend/internal/repositories"
	"campaignhub_backend/internal/services/dto"
	"campaignhub_backend/pkg/apperrors"
)

// WorkflowService - движок этапов проекта: привязка инфлюенсеров,
// жизненный цикл сценариев и переключение этапов. Каждая операция,
// меняющая больше одной записи, выполняется в транзакции Store и
// оставляет след в журнале активности.
type WorkflowService struct {
	store repositories.Store
}

func NewWorkflowService(store repositories.Store) *WorkflowService {
	return &WorkflowService{store: store}
}

func stageActivityType(stage models.WorkflowStage) string {
	switch stage {
	case models.WorkflowStageMaterial:
		return models.ActivityWorkflowToMaterial
	case models.WorkflowStagePublication:
		return models.ActivityWorkflowToPublication
	default:
		return models.ActivityWorkflowToScenario
	}
}

func stageDescription(stage models.WorkflowStage) string {
	switch stage {
	case models.WorkflowStageMaterial:
		return "Проект переведен на этап материалов"
	case models.WorkflowStagePublication:
		return "Проект переведен на этап публикаций"
	default:
		return "Проект переведен на этап сценариев"
	}
}

// AttachInfluencer связывает инфлюенсера с проектом. Пара уникальна,
// повторная привязка возвращает Conflict.
func (s *WorkflowService) AttachInfluencer(userID, projectID, influencerID uint) (*dto.ProjectInfluencerResponse, error) {
	if _, err := s.store.Projects().FindByID(projectID); err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	influencer, err := s.store.Influencers().FindByID(influencerID)
	if err != nil {
		if errors.Is(err, repositories.ErrInfluencerNotFound) {
			return nil, apperrors.ErrInfluencerNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	pi := &models.ProjectInfluencer{
		ProjectID:         projectID,
		InfluencerID:      influencerID,
		ScenarioStatus:    models.ScenarioStatusPending,
		MaterialStatus:    models.MaterialReviewPending,
		PublicationStatus: models.PublicationStatusPending,
	}

	err = s.store.Transaction(func(tx repositories.Store) error {
		if err := tx.ProjectInfluencers().Create(pi); err != nil {
			return err
		}
		return tx.Activities().Create(&models.Activity{
			ProjectID:    projectID,
			UserID:       &userID,
			ActivityType: models.ActivityInfluencerAdded,
			Description:  fmt.Sprintf("Инфлюенсер %s добавлен в проект", influencer.Nickname),
		})
	})
	if err != nil {
		if errors.Is(err, repositories.ErrProjectInfluencerExists) {
			return nil, apperrors.ErrInfluencerAlreadyAttached
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("influencer attached", "project_id", projectID, "influencer_id", influencerID)
	return &dto.ProjectInfluencerResponse{ProjectInfluencer: *pi, Influencer: influencer}, nil
}

// ListProjectInfluencers возвращает связки проекта вместе с профилями
func (s *WorkflowService) ListProjectInfluencers(projectID uint) ([]dto.ProjectInfluencerResponse, error) {
	if _, err := s.store.Projects().FindByID(projectID); err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	pis, err := s.store.ProjectInfluencers().FindByProject(projectID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.ProjectInfluencerResponse, 0, len(pis))
	for _, pi := range pis {
		influencer, err := s.store.Influencers().FindByID(pi.InfluencerID)
		if err != nil && !errors.Is(err, repositories.ErrInfluencerNotFound) {
			return nil, apperrors.InternalError(err)
		}
		responses = append(responses, dto.ProjectInfluencerResponse{
			ProjectInfluencer: pi,
			Influencer:        influencer,
		})
	}
	return responses, nil
}

// CreateScenario добавляет сценарий проекту. Требует хотя бы одного
// привязанного инфлюенсера; без явного influencerId берется первый.
func (s *WorkflowService) CreateScenario(userID, projectID uint, req *dto.CreateScenarioRequest) (*models.Scenario, error) {
	if _, err := s.store.Projects().FindByID(projectID); err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	pis, err := s.store.ProjectInfluencers().FindByProject(projectID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(pis) == 0 {
		return nil, apperrors.ErrNoInfluencersAttached
	}

	influencerID := pis[0].InfluencerID
	if req.InfluencerID != nil {
		influencerID = *req.InfluencerID
		if _, err := s.store.ProjectInfluencers().FindByPair(projectID, influencerID); err != nil {
			if errors.Is(err, repositories.ErrProjectInfluencerNotFound) {
				return nil, apperrors.ErrInfluencerNotFound
			}
			return nil, apperrors.InternalError(err)
		}
	}

	scenario := &models.Scenario{
		ProjectID:    projectID,
		InfluencerID: influencerID,
		Content:      req.Content,
		GoogleDocURL: req.GoogleDocURL,
		Status:       models.ScenarioStatusAdded,
		Deadline:     req.Deadline,
		Version:      1,
	}

	err = s.store.Transaction(func(tx repositories.Store) error {
		if err := tx.Scenarios().Create(scenario); err != nil {
			return err
		}
		return tx.Activities().Create(&models.Activity{
			ProjectID:    projectID,
			UserID:       &userID,
			ActivityType: models.ActivityScenarioCreate,
			Description:  "Создан сценарий",
		})
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return scenario, nil
}

func (s *WorkflowService) ListScenarios(projectID uint) ([]models.Scenario, error) {
	if _, err := s.store.Projects().FindByID(projectID); err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	scenarios, err := s.store.Scenarios().FindByProject(projectID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return scenarios, nil
}

func (s *WorkflowService) getProjectScenario(projectID, scenarioID uint) (*models.Scenario, error) {
	scenario, err := s.store.Scenarios().FindByID(scenarioID)
	if err != nil {
		if errors.Is(err, repositories.ErrScenarioNotFound) {
			return nil, apperrors.ErrScenarioNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if scenario.ProjectID != projectID {
		return nil, apperrors.ErrScenarioProjectMismatch
	}
	return scenario, nil
}

// UpdateScenario правит поля сценария. Переход в approved идет через
// ApproveScenario со всеми его побочными эффектами.
func (s *WorkflowService) UpdateScenario(userID, projectID, scenarioID uint, req *dto.UpdateScenarioRequest) (*models.Scenario, error) {
	if req.Status != nil && *req.Status == models.ScenarioStatusApproved {
		return s.ApproveScenario(userID, projectID, scenarioID)
	}

	scenario, err := s.getProjectScenario(projectID, scenarioID)
	if err != nil {
		return nil, err
	}

	if req.Content != nil {
		scenario.Content = *req.Content
		scenario.Version++
	}
	if req.GoogleDocURL != nil {
		scenario.GoogleDocURL = req.GoogleDocURL
	}
	if req.Deadline != nil {
		scenario.Deadline = req.Deadline
	}
	if req.Status != nil {
		scenario.Status = *req.Status
		if *req.Status == models.ScenarioStatusUnderApproval && scenario.SubmittedAt == nil {
			now := time.Now()
			scenario.SubmittedAt = &now
		}
	}

	if err := s.store.Scenarios().Update(scenario); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return scenario, nil
}

// ApproveScenario утверждает сценарий: сам сценарий, статус связки
// инфлюенсера и этап проекта меняются атомарно, с двумя записями журнала.
func (s *WorkflowService) ApproveScenario(userID, projectID, scenarioID uint) (*models.Scenario, error) {
	scenario, err := s.getProjectScenario(projectID, scenarioID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	err = s.store.Transaction(func(tx repositories.Store) error {
		scenario.Status = models.ScenarioStatusApproved
		scenario.ApprovedAt = &now
		if err := tx.Scenarios().Update(scenario); err != nil {
			return err
		}

		pi, err := tx.ProjectInfluencers().FindByPair(projectID, scenario.InfluencerID)
		if err != nil {
			return err
		}
		pi.ScenarioStatus = models.ScenarioStatusApproved
		pi.ScenarioCompletedAt = &now
		if err := tx.ProjectInfluencers().Update(pi); err != nil {
			return err
		}

		project, err := tx.Projects().FindByID(projectID)
		if err != nil {
			return err
		}
		project.WorkflowStage = models.WorkflowStageMaterial
		if err := tx.Projects().Update(project); err != nil {
			return err
		}

		if err := tx.Activities().Create(&models.Activity{
			ProjectID:    projectID,
			UserID:       &userID,
			ActivityType: models.ActivityScenarioApproved,
			Description:  "Сценарий утвержден",
		}); err != nil {
			return err
		}
		return tx.Activities().Create(&models.Activity{
			ProjectID:    projectID,
			UserID:       &userID,
			ActivityType: models.ActivityScenarioToMaterial,
			Description:  "Проект переведен на этап материалов",
		})
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("scenario approved", "project_id", projectID, "scenario_id", scenarioID)
	return scenario, nil
}

// DeleteScenario удаляет сценарий без отката этапа проекта
func (s *WorkflowService) DeleteScenario(userID, projectID, scenarioID uint) error {
	if _, err := s.getProjectScenario(projectID, scenarioID); err != nil {
		return err
	}

	err := s.store.Transaction(func(tx repositories.Store) error {
		if err := tx.Scenarios().Delete(scenarioID); err != nil {
			return err
		}
		return tx.Activities().Create(&models.Activity{
			ProjectID:    projectID,
			UserID:       &userID,
			ActivityType: models.ActivityScenarioDeleted,
			Description:  "Сценарий удален",
		})
	})
	if err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// SetWorkflowStage переключает этап проекта на любой допустимый,
// включая возврат назад
func (s *WorkflowService) SetWorkflowStage(userID, projectID uint, stage models.WorkflowStage) (*models.Project, error) {
	if !models.ValidWorkflowStage(stage) {
		return nil, apperrors.ErrInvalidWorkflowStage
	}

	project, err := s.store.Projects().FindByID(projectID)
	if err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	err = s.store.Transaction(func(tx repositories.Store) error {
		project.WorkflowStage = stage
		if err := tx.Projects().Update(project); err != nil {
			return err
		}
		return tx.Activities().Create(&models.Activity{
			ProjectID:    projectID,
			UserID:       &userID,
			ActivityType: stageActivityType(stage),
			Description:  stageDescription(stage),
		})
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("workflow stage changed", "project_id", projectID, "stage", stage)
	return project, nil
}
