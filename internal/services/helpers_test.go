package services

import (
	"testing"
	"time"

	"campaignhub_backend/internal/models"
	"campaignhub_backend/internal/repositories/memory"
	"campaignhub_backend/internal/services/dto"

	"github.com/stretchr/testify/require"
)

func newTestContainer() (*ServiceContainer, *memory.Store) {
	store := memory.NewStore()
	return NewServiceContainer(store), store
}

func registerUser(t *testing.T, sc *ServiceContainer, username, name, role string) *models.User {
	t.Helper()
	user, err := sc.AuthService.Register(&dto.RegisterRequest{
		Username: username,
		Password: "secret-password",
		Name:     name,
		Role:     role,
	})
	require.NoError(t, err)
	return user
}

func createInfluencer(t *testing.T, sc *ServiceContainer, nickname string) *models.Influencer {
	t.Helper()
	influencer, err := sc.InfluencerService.CreateInfluencer(&dto.CreateInfluencerRequest{
		Nickname: nickname,
	})
	require.NoError(t, err)
	return influencer
}

func createProject(t *testing.T, sc *ServiceContainer, managerID uint, title string) *models.Project {
	t.Helper()
	project, err := sc.ProjectService.CreateProject(managerID, &dto.CreateProjectRequest{
		Title:     title,
		Client:    "Acme",
		StartDate: time.Now(),
	})
	require.NoError(t, err)
	return project
}
