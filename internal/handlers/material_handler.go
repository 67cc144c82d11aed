package handlers

import (
	"net/http"

	"campaignhub_backend/internal/middleware"
	"campaignhub_backend/internal/models"
	"campaignhub_backend/internal/services"
	"campaignhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type MaterialHandler struct {
	*BaseHandler
	materialService *services.MaterialService
}

func NewMaterialHandler(base *BaseHandler, materialService *services.MaterialService) *MaterialHandler {
	return &MaterialHandler{BaseHandler: base, materialService: materialService}
}

func (h *MaterialHandler) RegisterRoutes(r *gin.RouterGroup) {
	materials := r.Group("/projects/:projectId/materials")
	materials.Use(middleware.AuthMiddleware())
	{
		materials.GET("", h.ListMaterials)
		materials.POST("", h.CreateMaterial)

		manager := materials.Group("")
		manager.Use(middleware.RequireRoles(models.UserRoleManager))
		{
			manager.PATCH("/:materialId", h.UpdateMaterial)
			manager.DELETE("/:materialId", h.DeleteMaterial)
		}
	}
}

func (h *MaterialHandler) ListMaterials(c *gin.Context) {
	projectID, err := ParseParamUint(c, "projectId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	materials, err := h.materialService.ListMaterials(projectID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, materials)
}

func (h *MaterialHandler) CreateMaterial(c *gin.Context) {
	projectID, err := ParseParamUint(c, "projectId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.CreateMaterialRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	material, err := h.materialService.CreateMaterial(projectID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, material)
}

func (h *MaterialHandler) UpdateMaterial(c *gin.Context) {
	projectID, err := ParseParamUint(c, "projectId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	materialID, err := ParseParamUint(c, "materialId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateMaterialRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	material, err := h.materialService.UpdateMaterial(projectID, materialID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, material)
}

func (h *MaterialHandler) DeleteMaterial(c *gin.Context) {
	projectID, err := ParseParamUint(c, "projectId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	materialID, err := ParseParamUint(c, "materialId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.materialService.DeleteMaterial(projectID, materialID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
