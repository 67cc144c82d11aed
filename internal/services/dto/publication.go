package dto

import (
	"time"

	"campaignhub_backend/internal/models"
)

// --- Publication Requests ---

type CreatePublicationRequest struct {
	InfluencerID   uint      `json:"influencerId" validate:"required"`
	Platform       string    `json:"platform" validate:"required,max=20"`
	PublicationURL string    `json:"publicationUrl" validate:"required,url,max=512"`
	PublishedAt    time.Time `json:"publishedAt" validate:"required"`
}

type UpdatePublicationRequest struct {
	Platform       *string                   `json:"platform,omitempty" validate:"omitempty,max=20"`
	PublicationURL *string                   `json:"publicationUrl,omitempty" validate:"omitempty,url,max=512"`
	Status         *models.PublicationStatus `json:"status,omitempty" validate:"omitempty,oneof=pending published verified"`
}
