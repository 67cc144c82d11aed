package services

import "campaignhub_backend/internal/repositories"

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService        *AuthService
	UserService        *UserService
	InfluencerService  *InfluencerService
	ProjectService     *ProjectService
	WorkflowService    *WorkflowService
	MaterialService    *MaterialService
	PublicationService *PublicationService
	CommentService     *CommentService
	ActivityService    *ActivityService
	StatsService       *StatsService
}

// NewServiceContainer собирает сервисы поверх выбранного Store
func NewServiceContainer(store repositories.Store) *ServiceContainer {
	return &ServiceContainer{
		AuthService:        NewAuthService(store),
		UserService:        NewUserService(store),
		InfluencerService:  NewInfluencerService(store),
		ProjectService:     NewProjectService(store),
		WorkflowService:    NewWorkflowService(store),
		MaterialService:    NewMaterialService(store),
		PublicationService: NewPublicationService(store),
		CommentService:     NewCommentService(store),
		ActivityService:    NewActivityService(store),
		StatsService:       NewStatsService(store),
	}
}
