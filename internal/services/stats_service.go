package services

import (
	"errors"

	"campaignhub_backend/internal/models"
	"campaignhub_backend/internal/repositories"
	"campaignhub_backend/internal/services/dto"
	"campaignhub_backend/pkg/apperrors"
)

// Фиксированный демо-доход, пока нет интеграции с биллингом
const demoMonthlyIncome = 120000

// StatsService - агрегаты для дашбордов менеджера и инфлюенсера
type StatsService struct {
	store repositories.Store
}

func NewStatsService(store repositories.Store) *StatsService {
	return &StatsService{store: store}
}

// ManagerStats считает сводку по проектам менеджера
func (s *StatsService) ManagerStats(managerID uint) (*dto.ManagerStatsResponse, error) {
	projects, err := s.store.Projects().FindByManagerID(managerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	influencers, err := s.store.Influencers().FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	stats := &dto.ManagerStatsResponse{InfluencersCount: len(influencers)}
	for _, project := range projects {
		switch project.Status {
		case models.ProjectStatusActive:
			stats.ActiveProjects++
		case models.ProjectStatusCompleted:
			stats.CompletedProjects++
		}

		if project.Status != models.ProjectStatusActive {
			continue
		}
		switch project.WorkflowStage {
		case models.WorkflowStageScenario:
			stats.PendingReviewsDetails.Scenario++
		case models.WorkflowStageMaterial:
			stats.PendingReviewsDetails.Material++
		case models.WorkflowStagePublication:
			stats.PendingReviewsDetails.Publication++
		}
	}
	stats.PendingReviews = stats.PendingReviewsDetails.Scenario +
		stats.PendingReviewsDetails.Material +
		stats.PendingReviewsDetails.Publication

	return stats, nil
}

// InfluencerStats считает сводку по проектам, в которые привязан
// инфлюенсер текущего пользователя
func (s *StatsService) InfluencerStats(userID uint) (*dto.InfluencerStatsResponse, error) {
	influencer, err := s.store.Influencers().FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrInfluencerNotFound) {
			return nil, apperrors.ErrInfluencerProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	pis, err := s.store.ProjectInfluencers().FindByInfluencer(influencer.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	stats := &dto.InfluencerStatsResponse{MonthlyIncome: demoMonthlyIncome}
	for _, pi := range pis {
		project, err := s.store.Projects().FindByID(pi.ProjectID)
		if err != nil {
			if errors.Is(err, repositories.ErrProjectNotFound) {
				continue
			}
			return nil, apperrors.InternalError(err)
		}

		switch project.Status {
		case models.ProjectStatusActive:
			stats.ActiveProjects++
		case models.ProjectStatusCompleted:
			stats.CompletedProjects++
		}

		scenarioPending := pi.ScenarioStatus == models.ScenarioStatusPending ||
			pi.ScenarioStatus == models.ScenarioStatusRejected
		materialPending := pi.MaterialStatus == models.MaterialReviewPending ||
			pi.MaterialStatus == models.MaterialReviewRejected
		publicationPending := pi.PublicationStatus == models.PublicationStatusPending

		if scenarioPending || materialPending || publicationPending {
			stats.NeedsAction++
		}
	}

	return stats, nil
}
