package models

import "time"

// Material - готовый контент инфлюенсера для этапа material
type Material struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	ProjectID    uint `gorm:"index;not null" json:"projectId"`
	InfluencerID uint `gorm:"index;not null" json:"influencerId"`

	MaterialURL string `gorm:"size:512;not null" json:"materialUrl"`
	Description string `gorm:"type:text" json:"description"`

	Status MaterialStatus `gorm:"type:varchar(20);not null" json:"status"`

	SubmittedAt *time.Time `json:"submittedAt"`
	ApprovedAt  *time.Time `json:"approvedAt"`
}
