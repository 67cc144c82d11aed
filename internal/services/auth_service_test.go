package services

import (
	"testing"

	"campaignhub_backend/internal/services/dto"
	"campaignhub_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	sc, _ := newTestContainer()

	user := registerUser(t, sc, "anna", "Анна", "manager")
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "secret-password", user.PasswordHash, "пароль не должен храниться открытым текстом")

	logged, err := sc.AuthService.Login(&dto.LoginRequest{Username: "anna", Password: "secret-password"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	sc, _ := newTestContainer()
	registerUser(t, sc, "anna", "Анна", "manager")

	_, err := sc.AuthService.Register(&dto.RegisterRequest{
		Username: "anna",
		Password: "another-password",
		Name:     "Другая Анна",
		Role:     "influencer",
	})
	assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)
}

func TestRegisterShortPassword(t *testing.T) {
	sc, _ := newTestContainer()

	_, err := sc.AuthService.Register(&dto.RegisterRequest{
		Username: "bob",
		Password: "short",
		Name:     "Боб",
		Role:     "manager",
	})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	sc, _ := newTestContainer()
	registerUser(t, sc, "anna", "Анна", "manager")

	_, err := sc.AuthService.Login(&dto.LoginRequest{Username: "anna", Password: "wrong-password"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = sc.AuthService.Login(&dto.LoginRequest{Username: "nobody", Password: "secret-password"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials, "неизвестный логин и неверный пароль неразличимы")
}
