package dto

import (
	"time"

	"campaignhub_backend/internal/models"
)

// --- Project Requests ---

type CreateProjectRequest struct {
	Title           string   `json:"title" validate:"required,min=1,max=255"`
	Client          string   `json:"client" validate:"required,max=255"`
	Description     string   `json:"description" validate:"omitempty,max=10000"`
	KeyRequirements []string `json:"keyRequirements"`

	StartDate           time.Time  `json:"startDate" validate:"required"`
	Deadline            *time.Time `json:"deadline"`
	ScenarioDeadline    *time.Time `json:"scenarioDeadline"`
	MaterialDeadline    *time.Time `json:"materialDeadline"`
	PublicationDeadline *time.Time `json:"publicationDeadline"`

	Status *models.ProjectStatus `json:"status" validate:"omitempty,oneof=draft active completed"`

	Budget *int   `json:"budget" validate:"omitempty,min=0"`
	Erid   string `json:"erid" validate:"omitempty,max=64"`

	TechnicalLinks []models.TechnicalLink `json:"technicalLinks"`
	Platforms      []string               `json:"platforms"`
}

type UpdateProjectRequest struct {
	Title           *string  `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Client          *string  `json:"client,omitempty" validate:"omitempty,max=255"`
	Description     *string  `json:"description,omitempty" validate:"omitempty,max=10000"`
	KeyRequirements []string `json:"keyRequirements,omitempty"`

	StartDate           *time.Time `json:"startDate,omitempty"`
	Deadline            *time.Time `json:"deadline,omitempty"`
	ScenarioDeadline    *time.Time `json:"scenarioDeadline,omitempty"`
	MaterialDeadline    *time.Time `json:"materialDeadline,omitempty"`
	PublicationDeadline *time.Time `json:"publicationDeadline,omitempty"`

	Status *models.ProjectStatus `json:"status,omitempty" validate:"omitempty,oneof=draft active completed"`

	Budget *int    `json:"budget,omitempty" validate:"omitempty,min=0"`
	Erid   *string `json:"erid,omitempty" validate:"omitempty,max=64"`

	TechnicalLinks []models.TechnicalLink `json:"technicalLinks,omitempty"`
	Platforms      []string               `json:"platforms,omitempty"`
}

type AttachInfluencerRequest struct {
	InfluencerID uint `json:"influencerId" validate:"required"`
}

type SetWorkflowStageRequest struct {
	WorkflowStage models.WorkflowStage `json:"workflowStage" validate:"required"`
}

// --- Project Responses ---

// ProjectInfluencerResponse - запись связки, обогащенная профилем инфлюенсера
type ProjectInfluencerResponse struct {
	models.ProjectInfluencer
	Influencer *models.Influencer `json:"influencer"`
}
