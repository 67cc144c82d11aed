package models

import (
	"time"

	"gorm.io/datatypes"
)

// TechnicalLink - именованная ссылка на внешние материалы проекта
type TechnicalLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Project - рекламная кампания, проходящая этапы scenario -> material -> publication
type Project struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Client      string `gorm:"size:255;not null" json:"client"`
	Description string `gorm:"type:text" json:"description"`

	KeyRequirements datatypes.JSON `gorm:"type:jsonb" json:"keyRequirements"`

	StartDate           time.Time  `gorm:"not null" json:"startDate"`
	Deadline            *time.Time `json:"deadline"`
	ScenarioDeadline    *time.Time `json:"scenarioDeadline"`
	MaterialDeadline    *time.Time `json:"materialDeadline"`
	PublicationDeadline *time.Time `json:"publicationDeadline"`

	Status        ProjectStatus `gorm:"type:varchar(20);not null" json:"status"`
	WorkflowStage WorkflowStage `gorm:"type:varchar(20);not null" json:"workflowStage"`

	Budget *int   `json:"budget"`
	Erid   string `gorm:"size:64" json:"erid"`

	ManagerID uint `gorm:"index" json:"managerId"`

	TechnicalLinks datatypes.JSON `gorm:"type:jsonb" json:"technicalLinks"`
	Platforms      datatypes.JSON `gorm:"type:jsonb" json:"platforms"`

	CreatedAt time.Time `json:"createdAt"`
}
