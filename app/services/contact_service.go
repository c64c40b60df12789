package services

import (
	"fmt"

	"inkpress/app/models"
	"inkpress/app/repositories"
)

// ContactService stores messages sent through the contact form
type ContactService struct {
	contactRepo repositories.ContactRepository
}

func NewContactService(contactRepo repositories.ContactRepository) *ContactService {
	return &ContactService{contactRepo: contactRepo}
}

// Submit validates and stores a contact message
func (s *ContactService) Submit(input *models.ContactInput) (*models.ContactMessage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	message := input.ToMessage()
	if err := s.contactRepo.Create(message); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}
	return message, nil
}
