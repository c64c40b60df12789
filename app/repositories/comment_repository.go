package repositories

import (
	"inkpress/app/models"
)

// JSONCommentRepository implements CommentRepository over the comments collection
type JSONCommentRepository struct {
	comments collection[models.Comment]
}

// NewJSONCommentRepository creates a new JSONCommentRepository
func NewJSONCommentRepository(repo *Repository) *JSONCommentRepository {
	return &JSONCommentRepository{comments: newCollection[models.Comment](repo, CommentsCollection)}
}

// ListForPost returns the approved comments of a post in storage order
func (r *JSONCommentRepository) ListForPost(postID string) ([]*models.Comment, error) {
	return r.filter(func(c *models.Comment) bool {
		return c.PostID == postID && c.Approved
	})
}

// ListPending returns comments still waiting for approval
func (r *JSONCommentRepository) ListPending() ([]*models.Comment, error) {
	return r.filter(func(c *models.Comment) bool { return !c.Approved })
}

// Create stores a new, unapproved comment
func (r *JSONCommentRepository) Create(comment *models.Comment) error {
	comment.BeforeCreate(newID(), now())
	return r.comments.update(func(comments []models.Comment) ([]models.Comment, error) {
		return append(comments, *comment), nil
	})
}

// Approve makes a comment visible to readers
func (r *JSONCommentRepository) Approve(id string) (*models.Comment, error) {
	var approved models.Comment
	err := r.comments.update(func(comments []models.Comment) ([]models.Comment, error) {
		for i := range comments {
			if comments[i].ID == id {
				comments[i].Approved = true
				approved = comments[i]
				return comments, nil
			}
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &approved, nil
}

func (r *JSONCommentRepository) filter(keep func(*models.Comment) bool) ([]*models.Comment, error) {
	comments, err := r.comments.load()
	if err != nil {
		return nil, err
	}
	result := make([]*models.Comment, 0)
	for i := range comments {
		if keep(&comments[i]) {
			result = append(result, &comments[i])
		}
	}
	return result, nil
}
