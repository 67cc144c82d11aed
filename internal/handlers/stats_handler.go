package handlers

import (
	"net/http"

	"campaignhub_backend/internal/middleware"
	"campaignhub_backend/internal/models"
	"campaignhub_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	*BaseHandler
	statsService *services.StatsService
}

func NewStatsHandler(base *BaseHandler, statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{BaseHandler: base, statsService: statsService}
}

func (h *StatsHandler) RegisterRoutes(r *gin.RouterGroup) {
	stats := r.Group("/stats")
	stats.Use(middleware.AuthMiddleware())
	{
		stats.GET("/manager", middleware.RequireRoles(models.UserRoleManager), h.ManagerStats)
		stats.GET("/influencer", middleware.RequireRoles(models.UserRoleInfluencer), h.InfluencerStats)
	}
}

func (h *StatsHandler) ManagerStats(c *gin.Context) {
	stats, err := h.statsService.ManagerStats(middleware.CurrentUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *StatsHandler) InfluencerStats(c *gin.Context) {
	stats, err := h.statsService.InfluencerStats(middleware.CurrentUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
