package handlers

import "campaignhub_backend/internal/services"

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	UserHandler        *UserHandler
	InfluencerHandler  *InfluencerHandler
	ProjectHandler     *ProjectHandler
	ScenarioHandler    *ScenarioHandler
	MaterialHandler    *MaterialHandler
	PublicationHandler *PublicationHandler
	CommentHandler     *CommentHandler
	ActivityHandler    *ActivityHandler
	StatsHandler       *StatsHandler
}

// NewAppHandlers собирает хэндлеры поверх контейнера сервисов
func NewAppHandlers(base *BaseHandler, sc *services.ServiceContainer) *AppHandlers {
	return &AppHandlers{
		AuthHandler:        NewAuthHandler(base, sc.AuthService),
		UserHandler:        NewUserHandler(base, sc.UserService),
		InfluencerHandler:  NewInfluencerHandler(base, sc.InfluencerService),
		ProjectHandler:     NewProjectHandler(base, sc.ProjectService, sc.WorkflowService),
		ScenarioHandler:    NewScenarioHandler(base, sc.WorkflowService),
		MaterialHandler:    NewMaterialHandler(base, sc.MaterialService),
		PublicationHandler: NewPublicationHandler(base, sc.PublicationService),
		CommentHandler:     NewCommentHandler(base, sc.CommentService),
		ActivityHandler:    NewActivityHandler(base, sc.ActivityService),
		StatsHandler:       NewStatsHandler(base, sc.StatsService),
	}
}
