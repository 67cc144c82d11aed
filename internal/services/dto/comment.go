package dto

import "campaignhub_backend/internal/models"

// --- Comment Requests ---

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,max=10000"`
}

// --- Comment Responses ---

// CommentResponse - комментарий, обогащенный автором
type CommentResponse struct {
	models.Comment
	User models.PublicUser `json:"user"`
}
