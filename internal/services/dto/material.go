package dto

import "campaignhub_backend/internal/models"

// --- Material Requests ---

type CreateMaterialRequest struct {
	InfluencerID uint   `json:"influencerId" validate:"required"`
	MaterialURL  string `json:"materialUrl" validate:"required,url,max=512"`
	Description  string `json:"description" validate:"omitempty,max=5000"`
}

type UpdateMaterialRequest struct {
	MaterialURL *string                `json:"materialUrl,omitempty" validate:"omitempty,url,max=512"`
	Description *string                `json:"description,omitempty" validate:"omitempty,max=5000"`
	Status      *models.MaterialStatus `json:"status,omitempty" validate:"omitempty,oneof=draft submitted approved rejected"`
}
