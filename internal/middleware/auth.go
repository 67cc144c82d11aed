package middleware

import (
	"campaignhub_backend/internal/logger"
	"campaignhub_backend/internal/models"
	"campaignhub_backend/pkg/apperrors"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Ключи сессии и gin-контекста
const (
	SessionKeyUserID = "user_id"
	SessionKeyRole   = "role"

	ContextKeyUserID = "userID"
	ContextKeyRole   = "userRole"
)

// AuthMiddleware - middleware проверки сессионной куки.
// Принципал (id, роль) кладется в gin-контекст до логики хэндлера.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		rawID := session.Get(SessionKeyUserID)
		if rawID == nil {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Не авторизован"))
			c.Abort()
			return
		}

		userID, ok := rawID.(uint)
		if !ok {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Не авторизован"))
			c.Abort()
			return
		}

		role := models.UserRole("")
		if rawRole, ok := session.Get(SessionKeyRole).(string); ok {
			role = models.UserRole(rawRole)
		}

		c.Set(ContextKeyUserID, userID)
		c.Set(ContextKeyRole, role)

		ctx := logger.WithUserID(c.Request.Context(), userID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRoles - middleware ограничения по ролям, ставится после AuthMiddleware
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool)
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		role, exists := c.Get(ContextKeyRole)
		if !exists {
			apperrors.HandleError(c, apperrors.NewForbiddenError("Доступ запрещен"))
			c.Abort()
			return
		}

		userRole, ok := role.(models.UserRole)
		if !ok || !roleSet[userRole] {
			apperrors.HandleError(c, apperrors.NewForbiddenError("Доступ запрещен"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUserID возвращает идентификатор пользователя текущей сессии
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get(ContextKeyUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// CurrentUserRole возвращает роль пользователя текущей сессии
func CurrentUserRole(c *gin.Context) models.UserRole {
	if v, ok := c.Get(ContextKeyRole); ok {
		if role, ok := v.(models.UserRole); ok {
			return role
		}
	}
	return ""
}
