package services

import (
	"errors"

	"campaignhub_backend/internal/auth"
	"campaignhub_backend/internal/logger"
	"campaignhub_backend/internal/models"
	"campaignhub_backend/internal/repositories"
	"campaignhub_backend/internal/services/dto"
	"campaignhub_backend/pkg/apperrors"
)

// AuthService - регистрация и проверка учетных данных.
// Сессионные куки живут в слое handlers, сервис работает только с пользователями.
type AuthService struct {
	store repositories.Store
}

func NewAuthService(store repositories.Store) *AuthService {
	return &AuthService{store: store}
}

// Register создает пользователя и возвращает его для установки сессии
func (s *AuthService) Register(req *dto.RegisterRequest) (*models.User, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: hash,
		Name:         req.Name,
		Role:         models.UserRole(req.Role),
	}
	if err := s.store.Users().Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrUsernameTaken
		}
		return nil, apperrors.InternalError(err)
	}

	logger.Info("user registered", "user_id", user.ID, "role", user.Role)
	return user, nil
}

// Login проверяет пару логин/пароль, не раскрывая, что именно не совпало
func (s *AuthService) Login(req *dto.LoginRequest) (*models.User, error) {
	user, err := s.store.Users().FindByUsername(req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}

// GetUser возвращает пользователя текущей сессии
func (s *AuthService) GetUser(id uint) (*models.User, error) {
	user, err := s.store.Users().FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("Не авторизован")
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}
