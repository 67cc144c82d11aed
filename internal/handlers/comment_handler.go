package handlers

import (
	"net/http"

	"campaignhub_backend/internal/middleware"
	"campaignhub_backend/internal/services"
	"campaignhub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	*BaseHandler
	commentService *services.CommentService
}

func NewCommentHandler(base *BaseHandler, commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{BaseHandler: base, commentService: commentService}
}

func (h *CommentHandler) RegisterRoutes(r *gin.RouterGroup) {
	comments := r.Group("/projects/:projectId/comments")
	comments.Use(middleware.AuthMiddleware())
	{
		comments.GET("", h.ListComments)
		comments.POST("", h.AddComment)
	}
}

func (h *CommentHandler) ListComments(c *gin.Context) {
	projectID, err := ParseParamUint(c, "projectId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	comments, err := h.commentService.ListComments(projectID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (h *CommentHandler) AddComment(c *gin.Context) {
	projectID, err := ParseParamUint(c, "projectId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.CreateCommentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	comment, err := h.commentService.AddComment(middleware.CurrentUserID(c), projectID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}
