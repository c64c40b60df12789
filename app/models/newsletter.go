package models

import "time"

// NewsletterActionUnsubscribe is the action that deactivates a subscription.
// Any other action subscribes.
const NewsletterActionUnsubscribe = "unsubscribe"

// NewsletterRequest is the body of a newsletter request.
type NewsletterRequest struct {
	Email  string `json:"email" validate:"required,blogemail"`
	Action string `json:"action"`
}

// Validate checks the email address.
func (in *NewsletterRequest) Validate() error {
	return checkStruct(in, "Email is required")
}

// Unsubscribe reports whether the request asks to unsubscribe.
func (in *NewsletterRequest) Unsubscribe() bool {
	return in.Action == NewsletterActionUnsubscribe
}

// NewSubscription creates an active subscription for email.
func NewSubscription(id, email string, now time.Time) *Subscription {
	return &Subscription{
		ID:           id,
		Email:        email,
		SubscribedAt: now,
		Active:       true,
	}
}
