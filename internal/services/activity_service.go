package services

import (
	"errors"

	"campaignhub_backend/internal/models"
	"campaignhub_backend/internal/repositories"
	"campaignhub_backend/internal/services/dto"
	"campaignhub_backend/pkg/apperrors"
)

const defaultRecentActivitiesLimit = 5

// ActivityService - чтение журнала аудита и ручные записи.
// Журнал только пополняется, правок и удалений отдельных записей нет.
type ActivityService struct {
	store repositories.Store
}

func NewActivityService(store repositories.Store) *ActivityService {
	return &ActivityService{store: store}
}

func (s *ActivityService) activityUser(userID *uint) (*models.PublicUser, error) {
	if userID == nil {
		return nil, nil
	}
	user, err := s.store.Users().FindByID(*userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}
	public := user.Public()
	return &public, nil
}

// ListProjectActivities возвращает журнал проекта от новых к старым
func (s *ActivityService) ListProjectActivities(projectID uint) ([]dto.ActivityResponse, error) {
	if _, err := s.store.Projects().FindByID(projectID); err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	activities, err := s.store.Activities().FindByProject(projectID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.ActivityResponse, 0, len(activities))
	for _, activity := range activities {
		user, err := s.activityUser(activity.UserID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		responses = append(responses, dto.ActivityResponse{Activity: activity, User: user})
	}
	return responses, nil
}

// ListRecentActivities возвращает последние записи по всем проектам,
// обогащенные пользователем и сводкой проекта
func (s *ActivityService) ListRecentActivities(limit int) ([]dto.RecentActivityResponse, error) {
	if limit <= 0 {
		limit = defaultRecentActivitiesLimit
	}

	activities, err := s.store.Activities().FindRecent(limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.RecentActivityResponse, 0, len(activities))
	for _, activity := range activities {
		user, err := s.activityUser(activity.UserID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}

		var summary *dto.ProjectSummary
		project, err := s.store.Projects().FindByID(activity.ProjectID)
		if err == nil {
			summary = &dto.ProjectSummary{ID: project.ID, Title: project.Title, Client: project.Client}
		} else if !errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.InternalError(err)
		}

		responses = append(responses, dto.RecentActivityResponse{
			Activity: activity,
			User:     user,
			Project:  summary,
		})
	}
	return responses, nil
}

// AddActivity добавляет ручную запись журнала от имени пользователя
func (s *ActivityService) AddActivity(userID, projectID uint, req *dto.CreateActivityRequest) (*dto.ActivityResponse, error) {
	if _, err := s.store.Projects().FindByID(projectID); err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	activity := &models.Activity{
		ProjectID:    projectID,
		UserID:       &userID,
		ActivityType: req.ActivityType,
		Description:  req.Description,
	}
	if err := s.store.Activities().Create(activity); err != nil {
		return nil, apperrors.InternalError(err)
	}

	user, err := s.activityUser(activity.UserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.ActivityResponse{Activity: *activity, User: user}, nil
}
