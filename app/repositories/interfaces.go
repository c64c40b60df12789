package repositories

import (
	"encoding/json"

	"inkpress/app/models"
)

// PostRepository defines the interface for post data access
type PostRepository interface {
	ListAll() ([]*models.Post, error)
	ListPublished() ([]*models.Post, error)
	GetByID(id string) (*models.Post, error)
	Create(post *models.Post) error
	Update(id string, patch map[string]json.RawMessage) (*models.Post, error)
	Delete(id string) error
	IncrementViews(id string) error
	ToggleLike(id string) (int, error)
	Search(query string) ([]*models.Post, error)
	Seed(posts []*models.Post) (bool, error)
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	ListForPost(postID string) ([]*models.Comment, error)
	ListPending() ([]*models.Comment, error)
	Create(comment *models.Comment) error
	Approve(id string) (*models.Comment, error)
}

// NewsletterRepository defines the interface for newsletter subscriptions
type NewsletterRepository interface {
	Subscribe(email string) (*models.Subscription, error)
	Unsubscribe(email string) error
}

// ContactRepository defines the interface for contact messages
type ContactRepository interface {
	Create(message *models.ContactMessage) error
}
