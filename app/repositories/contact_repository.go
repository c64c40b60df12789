package repositories

import (
	"inkpress/app/models"
)

// JSONContactRepository implements ContactRepository over the contact collection
type JSONContactRepository struct {
	messages collection[models.ContactMessage]
}

// NewJSONContactRepository creates a new JSONContactRepository
func NewJSONContactRepository(repo *Repository) *JSONContactRepository {
	return &JSONContactRepository{messages: newCollection[models.ContactMessage](repo, ContactCollection)}
}

// Create stores a new, unread contact message
func (r *JSONContactRepository) Create(message *models.ContactMessage) error {
	message.BeforeCreate(newID(), now())
	return r.messages.update(func(messages []models.ContactMessage) ([]models.ContactMessage, error) {
		return append(messages, *message), nil
	})
}
