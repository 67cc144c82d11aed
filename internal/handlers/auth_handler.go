package handlers

import (
	"net/http"

	"campaignhub_backend/internal/logger"
	"campaignhub_backend/internal/middleware"
	"campaignhub_backend/internal/services"
	"campaignhub_backend/internal/services/dto"
	"campaignhub_backend/pkg/apperrors"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// AuthHandler - регистрация, вход и выход. Аутентификация держится
// на сессионной куке, токенов нет.
type AuthHandler struct {
	*BaseHandler
	authService *services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService *services.AuthService) *AuthHandler {
	return &AuthHandler{BaseHandler: base, authService: authService}
}

func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/user", h.GetUser)
	}
}

func (h *AuthHandler) setSession(c *gin.Context, userID uint, role string) error {
	session := sessions.Default(c)
	session.Set(middleware.SessionKeyUserID, userID)
	session.Set(middleware.SessionKeyRole, role)
	return session.Save()
}

// Register создает пользователя и сразу открывает сессию
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.setSession(c, user.ID, string(user.Role)); err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{User: dto.NewSessionUser(user)})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.setSession(c, user.ID, string(user.Role)); err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}

	logger.CtxInfo(c.Request.Context(), "user logged in", "user_id", user.ID)
	c.JSON(http.StatusOK, dto.AuthResponse{User: dto.NewSessionUser(user)})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetUser возвращает пользователя текущей сессии или 401
func (h *AuthHandler) GetUser(c *gin.Context) {
	session := sessions.Default(c)
	rawID := session.Get(middleware.SessionKeyUserID)
	userID, ok := rawID.(uint)
	if rawID == nil || !ok {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Не авторизован"))
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{User: dto.NewSessionUser(user)})
}
