package handlers

import (
	"net/http"

	"campaignhub_backend/internal/middleware"
	"campaignhub_backend/internal/models"
	"campaignhub_backend/internal/services"
	"campaignhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// ScenarioHandler - сценарии проекта. Утверждение идет через PATCH
// со статусом approved и тянет за собой смену этапа проекта.
type ScenarioHandler struct {
	*BaseHandler
	workflowService *services.WorkflowService
}

func NewScenarioHandler(base *BaseHandler, workflowService *services.WorkflowService) *ScenarioHandler {
	return &ScenarioHandler{BaseHandler: base, workflowService: workflowService}
}

func (h *ScenarioHandler) RegisterRoutes(r *gin.RouterGroup) {
	scenarios := r.Group("/projects/:projectId/scenarios")
	scenarios.Use(middleware.AuthMiddleware())
	{
		scenarios.GET("", h.ListScenarios)

		manager := scenarios.Group("")
		manager.Use(middleware.RequireRoles(models.UserRoleManager))
		{
			manager.POST("", h.CreateScenario)
			manager.PATCH("/:scenarioId", h.UpdateScenario)
			manager.DELETE("/:scenarioId", h.DeleteScenario)
		}
	}
}

func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	projectID, err := ParseParamUint(c, "projectId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	scenarios, err := h.workflowService.ListScenarios(projectID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, scenarios)
}

func (h *ScenarioHandler) CreateScenario(c *gin.Context) {
	projectID, err := ParseParamUint(c, "projectId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.CreateScenarioRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	scenario, err := h.workflowService.CreateScenario(middleware.CurrentUserID(c), projectID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, scenario)
}

func (h *ScenarioHandler) UpdateScenario(c *gin.Context) {
	projectID, err := ParseParamUint(c, "projectId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	scenarioID, err := ParseParamUint(c, "scenarioId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateScenarioRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	scenario, err := h.workflowService.UpdateScenario(middleware.CurrentUserID(c), projectID, scenarioID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, scenario)
}

func (h *ScenarioHandler) DeleteScenario(c *gin.Context) {
	projectID, err := ParseParamUint(c, "projectId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	scenarioID, err := ParseParamUint(c, "scenarioId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.workflowService.DeleteScenario(middleware.CurrentUserID(c), projectID, scenarioID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
