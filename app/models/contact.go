package models

import "time"

// ContactInput holds the fields of the contact form.
type ContactInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,blogemail"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// Validate checks that every field is present and the email is well formed.
func (in *ContactInput) Validate() error {
	return checkStruct(in, "All fields are required")
}

// ToMessage builds an unread contact message.
func (in *ContactInput) ToMessage() *ContactMessage {
	return &ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	}
}

// BeforeCreate assigns the identifier and date and marks the message unread.
func (m *ContactMessage) BeforeCreate(id string, now time.Time) {
	m.ID = id
	m.Date = now
	m.Read = false
}
