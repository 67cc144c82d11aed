package models

import "time"

// Publication - размещение материала на платформе
type Publication struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	ProjectID    uint `gorm:"index;not null" json:"projectId"`
	InfluencerID uint `gorm:"index;not null" json:"influencerId"`

	Platform       string `gorm:"size:20;not null" json:"platform"`
	PublicationURL string `gorm:"size:512;not null" json:"publicationUrl"`

	Status      PublicationStatus `gorm:"type:varchar(20);not null" json:"status"`
	PublishedAt time.Time         `gorm:"not null" json:"publishedAt"`
	VerifiedAt  *time.Time        `json:"verifiedAt"`
}
