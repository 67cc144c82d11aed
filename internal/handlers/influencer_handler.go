package handlers

import (
	"net/http"

	"campaignhub_backend/internal/middleware"
	"campaignhub_backend/internal/models"
	"campaignhub_backend/internal/services"
	"campaignhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type InfluencerHandler struct {
	*BaseHandler
	influencerService *services.InfluencerService
}

func NewInfluencerHandler(base *BaseHandler, influencerService *services.InfluencerService) *InfluencerHandler {
	return &InfluencerHandler{BaseHandler: base, influencerService: influencerService}
}

func (h *InfluencerHandler) RegisterRoutes(r *gin.RouterGroup) {
	influencers := r.Group("/influencers")
	influencers.Use(middleware.AuthMiddleware())
	{
		influencers.GET("", h.ListInfluencers)
		influencers.GET("/:influencerId", h.GetInfluencer)
		influencers.POST("", middleware.RequireRoles(models.UserRoleManager), h.CreateInfluencer)
	}
}

func (h *InfluencerHandler) ListInfluencers(c *gin.Context) {
	influencers, err := h.influencerService.ListInfluencers()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, influencers)
}

func (h *InfluencerHandler) GetInfluencer(c *gin.Context) {
	id, err := ParseParamUint(c, "influencerId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	influencer, err := h.influencerService.GetInfluencer(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, influencer)
}

func (h *InfluencerHandler) CreateInfluencer(c *gin.Context) {
	var req dto.CreateInfluencerRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	influencer, err := h.influencerService.CreateInfluencer(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, influencer)
}
