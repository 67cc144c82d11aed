package services

import (
	"testing"

	"campaignhub_backend/internal/models"
	"campaignhub_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectActivitiesEnrichedNewestFirst(t *testing.T) {
	sc, _ := newTestContainer()
	manager := registerUser(t, sc, "anna", "Анна", "manager")
	project := createProject(t, sc, manager.ID, "Кампания")
	influencer := createInfluencer(t, sc, "blogger_one")

	_, err := sc.WorkflowService.AttachInfluencer(manager.ID, project.ID, influencer.ID)
	require.NoError(t, err)
	_, err = sc.WorkflowService.CreateScenario(manager.ID, project.ID, &dto.CreateScenarioRequest{
		Content: "Обзор продукта",
	})
	require.NoError(t, err)

	activities, err := sc.ActivityService.ListProjectActivities(project.ID)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, models.ActivityScenarioCreate, activities[0].ActivityType)
	assert.Equal(t, models.ActivityInfluencerAdded, activities[1].ActivityType)
	require.NotNil(t, activities[0].User)
	assert.Equal(t, "Анна", activities[0].User.Name)
}

func TestRecentActivitiesLimitAndProjectSummary(t *testing.T) {
	sc, _ := newTestContainer()
	manager := registerUser(t, sc, "anna", "Анна", "manager")
	influencer := createInfluencer(t, sc, "blogger_one")

	for _, title := range []string{"Первая", "Вторая", "Третья"} {
		project := createProject(t, sc, manager.ID, title)
		_, err := sc.WorkflowService.AttachInfluencer(manager.ID, project.ID, influencer.ID)
		require.NoError(t, err)
	}

	recent, err := sc.ActivityService.ListRecentActivities(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	require.NotNil(t, recent[0].Project)
	assert.Equal(t, "Третья", recent[0].Project.Title)

	// нулевой лимит заменяется дефолтным
	recent, err = sc.ActivityService.ListRecentActivities(0)
	require.NoError(t, err)
	assert.Len(t, recent, 3)
}

func TestAddManualActivity(t *testing.T) {
	sc, _ := newTestContainer()
	manager := registerUser(t, sc, "anna", "Анна", "manager")
	project := createProject(t, sc, manager.ID, "Кампания")

	activity, err := sc.ActivityService.AddActivity(manager.ID, project.ID, &dto.CreateActivityRequest{
		ActivityType: "note",
		Description:  "Созвон с клиентом",
	})
	require.NoError(t, err)
	assert.Equal(t, "note", activity.ActivityType)
	require.NotNil(t, activity.User)
	assert.Equal(t, manager.ID, activity.User.ID)
}
