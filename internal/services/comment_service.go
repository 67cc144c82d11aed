package services

import (
	"errors"

	"campaignhub_backend/internal/models"
	"campaignhub_backend/internal/repositories"
	"campaignhub_backend/internal/services/dto"
	"campaignhub_backend/pkg/apperrors"
)

// CommentService - обсуждение проекта. Комментарии не порождают
// записей активности.
type CommentService struct {
	store repositories.Store
}

func NewCommentService(store repositories.Store) *CommentService {
	return &CommentService{store: store}
}

func (s *CommentService) enrich(comment models.Comment) (dto.CommentResponse, error) {
	resp := dto.CommentResponse{Comment: comment}
	user, err := s.store.Users().FindByID(comment.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return resp, nil
		}
		return resp, err
	}
	resp.User = user.Public()
	return resp, nil
}

// ListComments возвращает комментарии проекта от старых к новым,
// с данными автора
func (s *CommentService) ListComments(projectID uint) ([]dto.CommentResponse, error) {
	if _, err := s.store.Projects().FindByID(projectID); err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	comments, err := s.store.Comments().FindByProject(projectID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		resp, err := s.enrich(comment)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *CommentService) AddComment(userID, projectID uint, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if _, err := s.store.Projects().FindByID(projectID); err != nil {
		if errors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	comment := &models.Comment{
		ProjectID: projectID,
		UserID:    userID,
		Content:   req.Content,
	}
	if err := s.store.Comments().Create(comment); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp, err := s.enrich(*comment)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &resp, nil
}
