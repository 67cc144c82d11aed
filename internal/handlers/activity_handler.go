package handlers

import (
	"net/http"

	"campaignhub_backend/internal/middleware"
	"campaignhub_backend/internal/services"
	"campaignhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// ActivityHandler - чтение журнала аудита. Записи не правятся и не
// удаляются по одной, только каскадно вместе с проектом.
type ActivityHandler struct {
	*BaseHandler
	activityService *services.ActivityService
}

func NewActivityHandler(base *BaseHandler, activityService *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{BaseHandler: base, activityService: activityService}
}

func (h *ActivityHandler) RegisterRoutes(r *gin.RouterGroup) {
	activities := r.Group("/projects/:projectId/activities")
	activities.Use(middleware.AuthMiddleware())
	{
		activities.GET("", h.ListProjectActivities)
		activities.POST("", h.AddActivity)
	}

	recent := r.Group("/activities")
	recent.Use(middleware.AuthMiddleware())
	{
		recent.GET("/recent", h.ListRecentActivities)
	}
}

func (h *ActivityHandler) ListProjectActivities(c *gin.Context) {
	projectID, err := ParseParamUint(c, "projectId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	activities, err := h.activityService.ListProjectActivities(projectID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, activities)
}

func (h *ActivityHandler) ListRecentActivities(c *gin.Context) {
	limit := ParseQueryInt(c, "limit", 0)

	activities, err := h.activityService.ListRecentActivities(limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, activities)
}

func (h *ActivityHandler) AddActivity(c *gin.Context) {
	projectID, err := ParseParamUint(c, "projectId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.CreateActivityRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	activity, err := h.activityService.AddActivity(middleware.CurrentUserID(c), projectID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, activity)
}
