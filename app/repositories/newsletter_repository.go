package repositories

import (
	"inkpress/app/models"
)

// JSONNewsletterRepository implements NewsletterRepository over the newsletter collection
type JSONNewsletterRepository struct {
	subscribers collection[models.Subscription]
}

// NewJSONNewsletterRepository creates a new JSONNewsletterRepository
func NewJSONNewsletterRepository(repo *Repository) *JSONNewsletterRepository {
	return &JSONNewsletterRepository{subscribers: newCollection[models.Subscription](repo, NewsletterCollection)}
}

// Subscribe activates the subscription for email, reusing an existing record
// for the same address instead of adding a duplicate.
func (r *JSONNewsletterRepository) Subscribe(email string) (*models.Subscription, error) {
	var result models.Subscription
	err := r.subscribers.update(func(subs []models.Subscription) ([]models.Subscription, error) {
		for i := range subs {
			if subs[i].Email == email {
				subs[i].Active = true
				result = subs[i]
				return subs, nil
			}
		}
		result = *models.NewSubscription(newID(), email, now())
		return append(subs, result), nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Unsubscribe deactivates the subscription for email without deleting it
func (r *JSONNewsletterRepository) Unsubscribe(email string) error {
	return r.subscribers.update(func(subs []models.Subscription) ([]models.Subscription, error) {
		for i := range subs {
			if subs[i].Email == email {
				subs[i].Active = false
				return subs, nil
			}
		}
		return nil, ErrNotFound
	})
}
