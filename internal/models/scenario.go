package models

import "time"

// Scenario - сценарий контента, предложенный инфлюенсеру на утверждение
type Scenario struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	ProjectID    uint `gorm:"index;not null" json:"projectId"`
	InfluencerID uint `gorm:"index;not null" json:"influencerId"`

	Content      string  `gorm:"type:text;not null" json:"content"`
	GoogleDocURL *string `gorm:"size:512" json:"googleDocUrl"`

	Status   ScenarioStatus `gorm:"type:varchar(20);not null" json:"status"`
	Deadline *time.Time     `json:"deadline"`

	SubmittedAt *time.Time `json:"submittedAt"`
	ApprovedAt  *time.Time `json:"approvedAt"`

	Version int `gorm:"not null;default:1" json:"version"`
}
