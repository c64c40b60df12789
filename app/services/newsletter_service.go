package services

import (
	"fmt"

	"inkpress/app/models"
	"inkpress/app/repositories"
)

// NewsletterService manages newsletter subscriptions
type NewsletterService struct {
	newsletterRepo repositories.NewsletterRepository
}

func NewNewsletterService(newsletterRepo repositories.NewsletterRepository) *NewsletterService {
	return &NewsletterService{newsletterRepo: newsletterRepo}
}

// Handle subscribes or unsubscribes the requested address. Unsubscribing
// returns a nil subscription.
func (s *NewsletterService) Handle(req *models.NewsletterRequest) (*models.Subscription, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.Unsubscribe() {
		return nil, s.Unsubscribe(req.Email)
	}
	return s.Subscribe(req.Email)
}

func (s *NewsletterService) Subscribe(email string) (*models.Subscription, error) {
	if err := (&models.NewsletterRequest{Email: email}).Validate(); err != nil {
		return nil, err
	}
	sub, err := s.newsletterRepo.Subscribe(email)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}
	return sub, nil
}

// Unsubscribe deactivates a subscription. Unknown addresses yield
// repositories.ErrNotFound.
func (s *NewsletterService) Unsubscribe(email string) error {
	if err := (&models.NewsletterRequest{Email: email}).Validate(); err != nil {
		return err
	}
	return s.newsletterRepo.Unsubscribe(email)
}
