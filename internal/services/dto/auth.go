package dto

import "campaignhub_backend/internal/models"

// --- Auth Requests ---

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,max=100"`
	Role     string `json:"role" validate:"required,oneof=manager influencer"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Auth Responses ---

type AuthResponse struct {
	User SessionUser `json:"user"`
}

// SessionUser - публичное представление аутентифицированного пользователя
type SessionUser struct {
	ID       uint            `json:"id"`
	Username string          `json:"username"`
	Name     string          `json:"name"`
	Role     models.UserRole `json:"role"`
}

func NewSessionUser(user *models.User) SessionUser {
	return SessionUser{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
		Role:     user.Role,
	}
}
