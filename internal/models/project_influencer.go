package models

import "time"

// ProjectInfluencer - связка проект-инфлюенсер с пер-инфлюенсерным
// прогрессом по этапам. Не больше одной записи на пару.
type ProjectInfluencer struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	ProjectID    uint `gorm:"index:idx_project_influencer,unique;not null" json:"projectId"`
	InfluencerID uint `gorm:"index:idx_project_influencer,unique;not null" json:"influencerId"`

	ScenarioStatus    ScenarioStatus       `gorm:"type:varchar(20);not null" json:"scenarioStatus"`
	MaterialStatus    MaterialReviewStatus `gorm:"type:varchar(20);not null" json:"materialStatus"`
	PublicationStatus PublicationStatus    `gorm:"type:varchar(20);not null" json:"publicationStatus"`

	ScenarioCompletedAt    *time.Time `json:"scenarioCompletedAt"`
	MaterialCompletedAt    *time.Time `json:"materialCompletedAt"`
	PublicationCompletedAt *time.Time `json:"publicationCompletedAt"`
}
