package handlers

import (
	"net/http"

	"campaignhub_backend/internal/middleware"
	"campaignhub_backend/internal/models"
	"campaignhub_backend/internal/services"
	"campaignhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// ProjectHandler - кампании: CRUD, этап воркфлоу и состав инфлюенсеров
type ProjectHandler struct {
	*BaseHandler
	projectService  *services.ProjectService
	workflowService *services.WorkflowService
}

func NewProjectHandler(base *BaseHandler, projectService *services.ProjectService, workflowService *services.WorkflowService) *ProjectHandler {
	return &ProjectHandler{
		BaseHandler:     base,
		projectService:  projectService,
		workflowService: workflowService,
	}
}

func (h *ProjectHandler) RegisterRoutes(r *gin.RouterGroup) {
	projects := r.Group("/projects")
	projects.Use(middleware.AuthMiddleware())
	{
		projects.GET("", h.ListProjects)
		projects.GET("/:projectId", h.GetProject)
		projects.GET("/:projectId/influencers", h.ListProjectInfluencers)

		manager := projects.Group("")
		manager.Use(middleware.RequireRoles(models.UserRoleManager))
		{
			manager.POST("", h.CreateProject)
			manager.PATCH("/:projectId", h.UpdateProject)
			manager.DELETE("/:projectId", h.DeleteProject)
			manager.PATCH("/:projectId/workflow-stage", h.SetWorkflowStage)
			manager.POST("/:projectId/influencers", h.AttachInfluencer)
		}
	}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.ListProjects()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := ParseParamUint(c, "projectId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	project, err := h.projectService.GetProject(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	project, err := h.projectService.CreateProject(middleware.CurrentUserID(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := ParseParamUint(c, "projectId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateProjectRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	project, err := h.projectService.UpdateProject(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := ParseParamUint(c, "projectId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.projectService.DeleteProject(middleware.CurrentUserID(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ProjectHandler) SetWorkflowStage(c *gin.Context) {
	id, err := ParseParamUint(c, "projectId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.SetWorkflowStageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	project, err := h.workflowService.SetWorkflowStage(middleware.CurrentUserID(c), id, req.WorkflowStage)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) ListProjectInfluencers(c *gin.Context) {
	id, err := ParseParamUint(c, "projectId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	influencers, err := h.workflowService.ListProjectInfluencers(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, influencers)
}

func (h *ProjectHandler) AttachInfluencer(c *gin.Context) {
	id, err := ParseParamUint(c, "projectId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.AttachInfluencerRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	pi, err := h.workflowService.AttachInfluencer(middleware.CurrentUserID(c), id, req.InfluencerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pi)
}
