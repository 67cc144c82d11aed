package memory

import (
	"errors"
	"testing"
	"time"

	"campaignhub_backend/internal/models"
	"campaignhub_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProject(t *testing.T, store *Store, managerID uint) *models.Project {
	t.Helper()
	project := &models.Project{
		Title:         "Летняя кампания",
		Client:        "Acme",
		StartDate:     time.Now(),
		Status:        models.ProjectStatusActive,
		WorkflowStage: models.WorkflowStageScenario,
		ManagerID:     managerID,
	}
	require.NoError(t, store.Projects().Create(project))
	return project
}

func TestUserCreateAssignsIDAndRejectsDuplicateUsername(t *testing.T) {
	store := NewStore()

	user := &models.User{Username: "manager", Name: "Анна", Role: models.UserRoleManager}
	require.NoError(t, store.Users().Create(user))
	assert.NotZero(t, user.ID)

	dup := &models.User{Username: "manager", Name: "Другая Анна", Role: models.UserRoleManager}
	err := store.Users().Create(dup)
	assert.ErrorIs(t, err, repositories.ErrUserAlreadyExists)
}

func TestProjectInfluencerUniquePair(t *testing.T) {
	store := NewStore()
	project := seedProject(t, store, 1)

	pi := &models.ProjectInfluencer{ProjectID: project.ID, InfluencerID: 7}
	require.NoError(t, store.ProjectInfluencers().Create(pi))

	again := &models.ProjectInfluencer{ProjectID: project.ID, InfluencerID: 7}
	err := store.ProjectInfluencers().Create(again)
	assert.ErrorIs(t, err, repositories.ErrProjectInfluencerExists)

	// другой проект - другая пара
	other := seedProject(t, store, 1)
	ok := &models.ProjectInfluencer{ProjectID: other.ID, InfluencerID: 7}
	assert.NoError(t, store.ProjectInfluencers().Create(ok))
}

func TestCommentsOrderedOldestFirst(t *testing.T) {
	store := NewStore()
	project := seedProject(t, store, 1)

	base := time.Now()
	for i := 0; i < 3; i++ {
		comment := &models.Comment{
			ProjectID: project.ID,
			UserID:    1,
			Content:   "комментарий",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, store.Comments().Create(comment))
	}

	comments, err := store.Comments().FindByProject(project.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.True(t, comments[0].CreatedAt.Before(comments[1].CreatedAt))
	assert.True(t, comments[1].CreatedAt.Before(comments[2].CreatedAt))
}

func TestActivitiesOrderedNewestFirst(t *testing.T) {
	store := NewStore()
	project := seedProject(t, store, 1)

	base := time.Now()
	for i := 0; i < 4; i++ {
		activity := &models.Activity{
			ProjectID:    project.ID,
			ActivityType: models.ActivityScenarioCreate,
			Description:  "Создан сценарий",
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, store.Activities().Create(activity))
	}

	activities, err := store.Activities().FindByProject(project.ID)
	require.NoError(t, err)
	require.Len(t, activities, 4)
	for i := 1; i < len(activities); i++ {
		assert.True(t, !activities[i-1].CreatedAt.Before(activities[i].CreatedAt))
	}

	recent, err := store.Activities().FindRecent(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, activities[0].ID, recent[0].ID)
}

func TestTransactionCommitSwapsState(t *testing.T) {
	store := NewStore()
	project := seedProject(t, store, 1)

	err := store.Transaction(func(tx repositories.Store) error {
		if err := tx.Scenarios().Create(&models.Scenario{
			ProjectID:    project.ID,
			InfluencerID: 1,
			Content:      "сценарий",
			Status:       models.ScenarioStatusAdded,
			Version:      1,
		}); err != nil {
			return err
		}
		return tx.Activities().Create(&models.Activity{
			ProjectID:    project.ID,
			ActivityType: models.ActivityScenarioCreate,
			Description:  "Создан сценарий",
		})
	})
	require.NoError(t, err)

	scenarios, err := store.Scenarios().FindByProject(project.ID)
	require.NoError(t, err)
	assert.Len(t, scenarios, 1)

	activities, err := store.Activities().FindByProject(project.ID)
	require.NoError(t, err)
	assert.Len(t, activities, 1)
}

func TestTransactionErrorLeavesStateUntouched(t *testing.T) {
	store := NewStore()
	project := seedProject(t, store, 1)

	require.NoError(t, store.ProjectInfluencers().Create(&models.ProjectInfluencer{
		ProjectID:    project.ID,
		InfluencerID: 3,
	}))
	require.NoError(t, store.Comments().Create(&models.Comment{
		ProjectID: project.ID,
		UserID:    1,
		Content:   "важный комментарий",
	}))

	boom := errors.New("db connection lost")
	err := store.Transaction(func(tx repositories.Store) error {
		// частичный каскад, затем сбой посередине
		if err := tx.ProjectInfluencers().DeleteByProject(project.ID); err != nil {
			return err
		}
		if err := tx.Comments().DeleteByProject(project.ID); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	pis, err := store.ProjectInfluencers().FindByProject(project.ID)
	require.NoError(t, err)
	assert.Len(t, pis, 1, "откат транзакции должен вернуть связки")

	comments, err := store.Comments().FindByProject(project.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 1, "откат транзакции должен вернуть комментарии")

	_, err = store.Projects().FindByID(project.ID)
	assert.NoError(t, err)
}

func TestSequencesSurviveTransaction(t *testing.T) {
	store := NewStore()

	var first *models.Project
	err := store.Transaction(func(tx repositories.Store) error {
		first = &models.Project{Title: "A", Client: "C", StartDate: time.Now(), ManagerID: 1}
		return tx.Projects().Create(first)
	})
	require.NoError(t, err)

	second := &models.Project{Title: "B", Client: "C", StartDate: time.Now(), ManagerID: 1}
	require.NoError(t, store.Projects().Create(second))
	assert.Greater(t, second.ID, first.ID)
}
