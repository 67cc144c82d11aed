package services

import (
	"testing"

	"campaignhub_backend/internal/models"
	"campaignhub_backend/internal/services/dto"
	"campaignhub_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachInfluencer(t *testing.T) {
	sc, store := newTestContainer()
	manager := registerUser(t, sc, "anna", "Анна", "manager")
	project := createProject(t, sc, manager.ID, "Кампания")
	influencer := createInfluencer(t, sc, "blogger_one")

	pi, err := sc.WorkflowService.AttachInfluencer(manager.ID, project.ID, influencer.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ScenarioStatusPending, pi.ScenarioStatus)
	assert.Equal(t, models.MaterialReviewPending, pi.MaterialStatus)
	assert.Equal(t, models.PublicationStatusPending, pi.PublicationStatus)
	require.NotNil(t, pi.Influencer)
	assert.Equal(t, "blogger_one", pi.Influencer.Nickname)

	activities, err := store.Activities().FindByProject(project.ID)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, models.ActivityInfluencerAdded, activities[0].ActivityType)
	require.NotNil(t, activities[0].UserID)
	assert.Equal(t, manager.ID, *activities[0].UserID)
}

func TestAttachInfluencerTwiceConflict(t *testing.T) {
	sc, store := newTestContainer()
	manager := registerUser(t, sc, "anna", "Анна", "manager")
	project := createProject(t, sc, manager.ID, "Кампания")
	influencer := createInfluencer(t, sc, "blogger_one")

	_, err := sc.WorkflowService.AttachInfluencer(manager.ID, project.ID, influencer.ID)
	require.NoError(t, err)

	_, err = sc.WorkflowService.AttachInfluencer(manager.ID, project.ID, influencer.ID)
	assert.ErrorIs(t, err, apperrors.ErrInfluencerAlreadyAttached)

	// повторная привязка не оставляет следов в журнале
	activities, err := store.Activities().FindByProject(project.ID)
	require.NoError(t, err)
	assert.Len(t, activities, 1)
}

func TestAttachInfluencerNotFound(t *testing.T) {
	sc, _ := newTestContainer()
	manager := registerUser(t, sc, "anna", "Анна", "manager")
	project := createProject(t, sc, manager.ID, "Кампания")

	_, err := sc.WorkflowService.AttachInfluencer(manager.ID, project.ID, 999)
	assert.ErrorIs(t, err, apperrors.ErrInfluencerNotFound)

	_, err = sc.WorkflowService.AttachInfluencer(manager.ID, 999, 1)
	assert.ErrorIs(t, err, apperrors.ErrProjectNotFound)
}

func TestCreateScenarioWithoutInfluencersPreconditionFailed(t *testing.T) {
	sc, _ := newTestContainer()
	manager := registerUser(t, sc, "anna", "Анна", "manager")
	project := createProject(t, sc, manager.ID, "Кампания")

	_, err := sc.WorkflowService.CreateScenario(manager.ID, project.ID, &dto.CreateScenarioRequest{
		Content: "Сценарий без исполнителя",
	})
	require.ErrorIs(t, err, apperrors.ErrNoInfluencersAttached)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 412, appErr.HTTPCode)
}

func TestCreateScenarioAutoAssignsFirstInfluencer(t *testing.T) {
	sc, store := newTestContainer()
	manager := registerUser(t, sc, "anna", "Анна", "manager")
	project := createProject(t, sc, manager.ID, "Кампания")
	first := createInfluencer(t, sc, "first")
	second := createInfluencer(t, sc, "second")

	_, err := sc.WorkflowService.AttachInfluencer(manager.ID, project.ID, first.ID)
	require.NoError(t, err)
	_, err = sc.WorkflowService.AttachInfluencer(manager.ID, project.ID, second.ID)
	require.NoError(t, err)

	scenario, err := sc.WorkflowService.CreateScenario(manager.ID, project.ID, &dto.CreateScenarioRequest{
		Content: "Обзор продукта",
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, scenario.InfluencerID)
	assert.Equal(t, models.ScenarioStatusAdded, scenario.Status)
	assert.Equal(t, 1, scenario.Version)

	activities, err := store.Activities().FindByProject(project.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ActivityScenarioCreate, activities[0].ActivityType)
}

func TestApproveScenarioSideEffects(t *testing.T) {
	sc, store := newTestContainer()
	manager := registerUser(t, sc, "anna", "Анна", "manager")
	project := createProject(t, sc, manager.ID, "Кампания")
	influencer := createInfluencer(t, sc, "blogger_one")

	_, err := sc.WorkflowService.AttachInfluencer(manager.ID, project.ID, influencer.ID)
	require.NoError(t, err)

	scenario, err := sc.WorkflowService.CreateScenario(manager.ID, project.ID, &dto.CreateScenarioRequest{
		Content: "Обзор продукта",
	})
	require.NoError(t, err)

	approved, err := sc.WorkflowService.ApproveScenario(manager.ID, project.ID, scenario.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ScenarioStatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedAt)

	pi, err := store.ProjectInfluencers().FindByPair(project.ID, influencer.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ScenarioStatusApproved, pi.ScenarioStatus)
	assert.NotNil(t, pi.ScenarioCompletedAt)

	updated, err := store.Projects().FindByID(project.ID)
	require.NoError(t, err)
	assert.Equal(t, models.WorkflowStageMaterial, updated.WorkflowStage)

	activities, err := store.Activities().FindByProject(project.ID)
	require.NoError(t, err)
	// от новых к старым: переход этапа, утверждение, создание, привязка
	require.Len(t, activities, 4)
	assert.Equal(t, models.ActivityScenarioToMaterial, activities[0].ActivityType)
	assert.Equal(t, models.ActivityScenarioApproved, activities[1].ActivityType)
}

func TestUpdateScenarioApprovedStatusRoutesToApprove(t *testing.T) {
	sc, store := newTestContainer()
	manager := registerUser(t, sc, "anna", "Анна", "manager")
	project := createProject(t, sc, manager.ID, "Кампания")
	influencer := createInfluencer(t, sc, "blogger_one")

	_, err := sc.WorkflowService.AttachInfluencer(manager.ID, project.ID, influencer.ID)
	require.NoError(t, err)
	scenario, err := sc.WorkflowService.CreateScenario(manager.ID, project.ID, &dto.CreateScenarioRequest{
		Content: "Обзор продукта",
	})
	require.NoError(t, err)

	status := models.ScenarioStatusApproved
	updated, err := sc.WorkflowService.UpdateScenario(manager.ID, project.ID, scenario.ID, &dto.UpdateScenarioRequest{
		Status: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ScenarioStatusApproved, updated.Status)

	projectAfter, err := store.Projects().FindByID(project.ID)
	require.NoError(t, err)
	assert.Equal(t, models.WorkflowStageMaterial, projectAfter.WorkflowStage)
}

func TestUpdateScenarioProjectMismatch(t *testing.T) {
	sc, _ := newTestContainer()
	manager := registerUser(t, sc, "anna", "Анна", "manager")
	projectA := createProject(t, sc, manager.ID, "Кампания A")
	projectB := createProject(t, sc, manager.ID, "Кампания B")
	influencer := createInfluencer(t, sc, "blogger_one")

	_, err := sc.WorkflowService.AttachInfluencer(manager.ID, projectA.ID, influencer.ID)
	require.NoError(t, err)
	scenario, err := sc.WorkflowService.CreateScenario(manager.ID, projectA.ID, &dto.CreateScenarioRequest{
		Content: "Обзор продукта",
	})
	require.NoError(t, err)

	content := "правка"
	_, err = sc.WorkflowService.UpdateScenario(manager.ID, projectB.ID, scenario.ID, &dto.UpdateScenarioRequest{
		Content: &content,
	})
	assert.ErrorIs(t, err, apperrors.ErrScenarioProjectMismatch)
}

func TestUpdateScenarioContentBumpsVersion(t *testing.T) {
	sc, _ := newTestContainer()
	manager := registerUser(t, sc, "anna", "Анна", "manager")
	project := createProject(t, sc, manager.ID, "Кампания")
	influencer := createInfluencer(t, sc, "blogger_one")

	_, err := sc.WorkflowService.AttachInfluencer(manager.ID, project.ID, influencer.ID)
	require.NoError(t, err)
	scenario, err := sc.WorkflowService.CreateScenario(manager.ID, project.ID, &dto.CreateScenarioRequest{
		Content: "Первая версия",
	})
	require.NoError(t, err)

	content := "Вторая версия"
	updated, err := sc.WorkflowService.UpdateScenario(manager.ID, project.ID, scenario.ID, &dto.UpdateScenarioRequest{
		Content: &content,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Version)
	assert.Equal(t, "Вторая версия", updated.Content)
}

func TestDeleteScenarioKeepsStage(t *testing.T) {
	sc, store := newTestContainer()
	manager := registerUser(t, sc, "anna", "Анна", "manager")
	project := createProject(t, sc, manager.ID, "Кампания")
	influencer := createInfluencer(t, sc, "blogger_one")

	_, err := sc.WorkflowService.AttachInfluencer(manager.ID, project.ID, influencer.ID)
	require.NoError(t, err)
	scenario, err := sc.WorkflowService.CreateScenario(manager.ID, project.ID, &dto.CreateScenarioRequest{
		Content: "Обзор продукта",
	})
	require.NoError(t, err)

	_, err = sc.WorkflowService.ApproveScenario(manager.ID, project.ID, scenario.ID)
	require.NoError(t, err)

	require.NoError(t, sc.WorkflowService.DeleteScenario(manager.ID, project.ID, scenario.ID))

	// удаление сценария не откатывает этап проекта
	projectAfter, err := store.Projects().FindByID(project.ID)
	require.NoError(t, err)
	assert.Equal(t, models.WorkflowStageMaterial, projectAfter.WorkflowStage)

	activities, err := store.Activities().FindByProject(project.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ActivityScenarioDeleted, activities[0].ActivityType)
}

func TestSetWorkflowStage(t *testing.T) {
	sc, store := newTestContainer()
	manager := registerUser(t, sc, "anna", "Анна", "manager")
	project := createProject(t, sc, manager.ID, "Кампания")

	updated, err := sc.WorkflowService.SetWorkflowStage(manager.ID, project.ID, models.WorkflowStagePublication)
	require.NoError(t, err)
	assert.Equal(t, models.WorkflowStagePublication, updated.WorkflowStage)

	// переход назад разрешен
	updated, err = sc.WorkflowService.SetWorkflowStage(manager.ID, project.ID, models.WorkflowStageScenario)
	require.NoError(t, err)
	assert.Equal(t, models.WorkflowStageScenario, updated.WorkflowStage)

	activities, err := store.Activities().FindByProject(project.ID)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, models.ActivityWorkflowToScenario, activities[0].ActivityType)
	assert.Equal(t, models.ActivityWorkflowToPublication, activities[1].ActivityType)
}

func TestSetWorkflowStageInvalid(t *testing.T) {
	sc, _ := newTestContainer()
	manager := registerUser(t, sc, "anna", "Анна", "manager")
	project := createProject(t, sc, manager.ID, "Кампания")

	_, err := sc.WorkflowService.SetWorkflowStage(manager.ID, project.ID, models.WorkflowStage("review"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidWorkflowStage)
}
