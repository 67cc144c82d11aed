package handlers

import (
	"net/http"

	"campaignhub_backend/internal/middleware"
	"campaignhub_backend/internal/models"
	"campaignhub_backend/internal/services"
	"campaignhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PublicationHandler struct {
	*BaseHandler
	publicationService *services.PublicationService
}

func NewPublicationHandler(base *BaseHandler, publicationService *services.PublicationService) *PublicationHandler {
	return &PublicationHandler{BaseHandler: base, publicationService: publicationService}
}

func (h *PublicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	publications := r.Group("/projects/:projectId/publications")
	publications.Use(middleware.AuthMiddleware())
	{
		publications.GET("", h.ListPublications)
		publications.POST("", h.CreatePublication)

		manager := publications.Group("")
		manager.Use(middleware.RequireRoles(models.UserRoleManager))
		{
			manager.PATCH("/:publicationId", h.UpdatePublication)
			manager.DELETE("/:publicationId", h.DeletePublication)
		}
	}
}

func (h *PublicationHandler) ListPublications(c *gin.Context) {
	projectID, err := ParseParamUint(c, "projectId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	publications, err := h.publicationService.ListPublications(projectID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, publications)
}

func (h *PublicationHandler) CreatePublication(c *gin.Context) {
	projectID, err := ParseParamUint(c, "projectId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.CreatePublicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	publication, err := h.publicationService.CreatePublication(projectID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, publication)
}

func (h *PublicationHandler) UpdatePublication(c *gin.Context) {
	projectID, err := ParseParamUint(c, "projectId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	publicationID, err := ParseParamUint(c, "publicationId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdatePublicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	publication, err := h.publicationService.UpdatePublication(projectID, publicationID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, publication)
}

func (h *PublicationHandler) DeletePublication(c *gin.Context) {
	projectID, err := ParseParamUint(c, "projectId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	publicationID, err := ParseParamUint(c, "publicationId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.publicationService.DeletePublication(projectID, publicationID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
