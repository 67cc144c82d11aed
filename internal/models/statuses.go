package models

type UserRole string
type ProjectStatus string
type WorkflowStage string
type ScenarioStatus string
type MaterialStatus string
type MaterialReviewStatus string
type PublicationStatus string

const (
	UserRoleManager    UserRole = "manager"
	UserRoleInfluencer UserRole = "influencer"

	ProjectStatusDraft     ProjectStatus = "draft"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"

	WorkflowStageScenario    WorkflowStage = "scenario"
	WorkflowStageMaterial    WorkflowStage = "material"
	WorkflowStagePublication WorkflowStage = "publication"

	// Статусы сценария; pending используется только в project_influencers
	ScenarioStatusPending       ScenarioStatus = "pending"
	ScenarioStatusAdded         ScenarioStatus = "added"
	ScenarioStatusUnderApproval ScenarioStatus = "under_approval"
	ScenarioStatusApproved      ScenarioStatus = "approved"
	ScenarioStatusRejected      ScenarioStatus = "rejected"

	// Статусы записи материала
	MaterialStatusDraft     MaterialStatus = "draft"
	MaterialStatusSubmitted MaterialStatus = "submitted"
	MaterialStatusApproved  MaterialStatus = "approved"
	MaterialStatusRejected  MaterialStatus = "rejected"

	// Статус проверки материала в project_influencers
	MaterialReviewPending  MaterialReviewStatus = "pending"
	MaterialReviewInReview MaterialReviewStatus = "in_review"
	MaterialReviewApproved MaterialReviewStatus = "approved"
	MaterialReviewRejected MaterialReviewStatus = "rejected"

	PublicationStatusPending   PublicationStatus = "pending"
	PublicationStatusPublished PublicationStatus = "published"
	PublicationStatusVerified  PublicationStatus = "verified"
)

// ValidWorkflowStage проверяет принадлежность этапа закрытому множеству
func ValidWorkflowStage(stage WorkflowStage) bool {
	switch stage {
	case WorkflowStageScenario, WorkflowStageMaterial, WorkflowStagePublication:
		return true
	}
	return false
}
