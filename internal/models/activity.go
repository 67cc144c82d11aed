package models

import "time"

// Типы записей журнала активности. Каждая операция воркфлоу
// добавляет ровно одну запись на каждое смысловое изменение.
const (
	ActivityInfluencerAdded       = "influencer_added"
	ActivityScenarioCreate        = "scenario_create"
	ActivityScenarioApproved      = "scenario_approved"
	ActivityScenarioToMaterial    = "scenario_to_material"
	ActivityScenarioDeleted       = "scenario_deleted"
	ActivityWorkflowToScenario    = "workflow_to_scenario"
	ActivityWorkflowToMaterial    = "workflow_to_material"
	ActivityWorkflowToPublication = "workflow_to_publication"
)

// Activity - неизменяемая запись журнала аудита проекта.
// UserID может быть nil для системных переходов.
type Activity struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ProjectID    uint      `gorm:"index;not null" json:"projectId"`
	UserID       *uint     `json:"userId"`
	ActivityType string    `gorm:"size:50;not null" json:"activityType"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	CreatedAt    time.Time `json:"createdAt"`
}
