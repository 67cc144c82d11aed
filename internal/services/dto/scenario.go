package dto

import (
	"time"

	"campaignhub_backend/internal/models"
)

// --- Scenario Requests ---

type CreateScenarioRequest struct {
	Content      string     `json:"content" validate:"required"`
	GoogleDocURL *string    `json:"googleDocUrl" validate:"omitempty,url,max=512"`
	InfluencerID *uint      `json:"influencerId"`
	Deadline     *time.Time `json:"deadline"`
}

type UpdateScenarioRequest struct {
	Content      *string                `json:"content,omitempty"`
	GoogleDocURL *string                `json:"googleDocUrl,omitempty" validate:"omitempty,url,max=512"`
	Deadline     *time.Time             `json:"deadline,omitempty"`
	Status       *models.ScenarioStatus `json:"status,omitempty" validate:"omitempty,oneof=added under_approval approved rejected"`
}
