package dto

import "campaignhub_backend/internal/models"

// --- Activity Requests ---

type CreateActivityRequest struct {
	ActivityType string `json:"activityType" validate:"required,max=50"`
	Description  string `json:"description" validate:"required,max=1000"`
}

// --- Activity Responses ---

// ActivityResponse - запись журнала, обогащенная пользователем.
// User равен nil для системных записей.
type ActivityResponse struct {
	models.Activity
	User *models.PublicUser `json:"user"`
}

// ProjectSummary - краткая сводка проекта для ленты недавней активности
type ProjectSummary struct {
	ID     uint   `json:"id"`
	Title  string `json:"title"`
	Client string `json:"client"`
}

type RecentActivityResponse struct {
	models.Activity
	User    *models.PublicUser `json:"user"`
	Project *ProjectSummary    `json:"project"`
}
