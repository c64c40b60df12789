package services

import (
	"fmt"

	"inkpress/app/models"
	"inkpress/app/repositories"
)

// CommentService handles business logic for comments
type CommentService struct {
	commentRepo repositories.CommentRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo}
}

// ListForPost returns the approved comments of a post
func (s *CommentService) ListForPost(postID string) ([]*models.Comment, error) {
	comments, err := s.commentRepo.ListForPost(postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// CreateComment validates the input and stores a comment awaiting approval.
// The post itself is not looked up.
func (s *CommentService) CreateComment(postID string, input *models.CommentInput) (*models.Comment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	comment := input.ToComment(postID)
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

// Pending returns the comments waiting for moderation
func (s *CommentService) Pending() ([]*models.Comment, error) {
	return s.commentRepo.ListPending()
}

// Approve publishes a comment
func (s *CommentService) Approve(id string) (*models.Comment, error) {
	return s.commentRepo.Approve(id)
}
