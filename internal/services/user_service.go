package services

import (
	"campaignhub_backend/internal/models"
	"campaignhub_backend/internal/repositories"
	"campaignhub_backend/pkg/apperrors"
)

type UserService struct {
	store repositories.Store
}

func NewUserService(store repositories.Store) *UserService {
	return &UserService{store: store}
}

// ListUsers возвращает всех пользователей; хеш пароля скрыт на уровне модели
func (s *UserService) ListUsers() ([]models.User, error) {
	users, err := s.store.Users().FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return users, nil
}
