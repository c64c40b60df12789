package controllers

import (
	"net/http"

	"inkpress/app/models"
	"inkpress/app/services"
)

type ContactController struct {
	contactService *services.ContactService
}

func NewContactController(contactService *services.ContactService) *ContactController {
	return &ContactController{contactService: contactService}
}

// Create stores a message from the contact form
func (cc *ContactController) Create(w http.ResponseWriter, r *http.Request) {
	var input models.ContactInput
	if err := decodeJSON(w, r, &input); err != nil {
		sendFailure(w, r, err, "", "Failed to send message")
		return
	}

	message, err := cc.contactService.Submit(&input)
	if err != nil {
		sendFailure(w, r, err, "", "Failed to send message")
		return
	}
	sendJSON(w, http.StatusCreated, Response{
		Success: true,
		Data:    message,
		Message: "Message sent successfully",
	})
}
