package services

import (
	"testing"

	"campaignhub_backend/internal/models"
	"campaignhub_backend/internal/services/dto"
	"campaignhub_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProjectDefaults(t *testing.T) {
	sc, _ := newTestContainer()
	manager := registerUser(t, sc, "anna", "Анна", "manager")

	project := createProject(t, sc, manager.ID, "Кампания")
	assert.Equal(t, models.ProjectStatusActive, project.Status)
	assert.Equal(t, models.WorkflowStageScenario, project.WorkflowStage)
	assert.Equal(t, manager.ID, project.ManagerID)
}

func TestUpdateProjectPartial(t *testing.T) {
	sc, _ := newTestContainer()
	manager := registerUser(t, sc, "anna", "Анна", "manager")
	project := createProject(t, sc, manager.ID, "Кампания")

	title := "Новое название"
	status := models.ProjectStatusCompleted
	updated, err := sc.ProjectService.UpdateProject(project.ID, &dto.UpdateProjectRequest{
		Title:  &title,
		Status: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, "Новое название", updated.Title)
	assert.Equal(t, models.ProjectStatusCompleted, updated.Status)
	assert.Equal(t, "Acme", updated.Client, "незатронутые поля не меняются")
}

func TestDeleteProjectCascade(t *testing.T) {
	sc, store := newTestContainer()
	manager := registerUser(t, sc, "anna", "Анна", "manager")
	project := createProject(t, sc, manager.ID, "Кампания")
	other := createProject(t, sc, manager.ID, "Другая кампания")
	influencer := createInfluencer(t, sc, "blogger_one")

	_, err := sc.WorkflowService.AttachInfluencer(manager.ID, project.ID, influencer.ID)
	require.NoError(t, err)
	_, err = sc.WorkflowService.AttachInfluencer(manager.ID, other.ID, influencer.ID)
	require.NoError(t, err)

	_, err = sc.WorkflowService.CreateScenario(manager.ID, project.ID, &dto.CreateScenarioRequest{
		Content: "Обзор продукта",
	})
	require.NoError(t, err)
	_, err = sc.CommentService.AddComment(manager.ID, project.ID, &dto.CreateCommentRequest{
		Content: "Комментарий",
	})
	require.NoError(t, err)
	_, err = sc.MaterialService.CreateMaterial(project.ID, &dto.CreateMaterialRequest{
		InfluencerID: influencer.ID,
		MaterialURL:  "https://example.com/video.mp4",
	})
	require.NoError(t, err)

	require.NoError(t, sc.ProjectService.DeleteProject(manager.ID, project.ID))

	_, err = sc.ProjectService.GetProject(project.ID)
	assert.ErrorIs(t, err, apperrors.ErrProjectNotFound)

	pis, err := store.ProjectInfluencers().FindByProject(project.ID)
	require.NoError(t, err)
	assert.Empty(t, pis)

	scenarios, err := store.Scenarios().FindByProject(project.ID)
	require.NoError(t, err)
	assert.Empty(t, scenarios)

	materials, err := store.Materials().FindByProject(project.ID)
	require.NoError(t, err)
	assert.Empty(t, materials)

	comments, err := store.Comments().FindByProject(project.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)

	activities, err := store.Activities().FindByProject(project.ID)
	require.NoError(t, err)
	assert.Empty(t, activities)

	// соседний проект не задет
	otherPis, err := store.ProjectInfluencers().FindByProject(other.ID)
	require.NoError(t, err)
	assert.Len(t, otherPis, 1)
}

func TestDeleteProjectForbiddenForNonOwner(t *testing.T) {
	sc, store := newTestContainer()
	owner := registerUser(t, sc, "anna", "Анна", "manager")
	intruder := registerUser(t, sc, "boris", "Борис", "manager")
	project := createProject(t, sc, owner.ID, "Кампания")

	err := sc.ProjectService.DeleteProject(intruder.ID, project.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotProjectOwner)

	_, err = store.Projects().FindByID(project.ID)
	assert.NoError(t, err, "чужой менеджер не должен удалить проект")
}
