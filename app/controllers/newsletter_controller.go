package controllers

import (
	"net/http"

	"inkpress/app/models"
	"inkpress/app/services"
)

// NewsletterController handles newsletter sign-ups
type NewsletterController struct {
	newsletterService *services.NewsletterService
}

func NewNewsletterController(newsletterService *services.NewsletterService) *NewsletterController {
	return &NewsletterController{newsletterService: newsletterService}
}

// Handle subscribes the address, or unsubscribes it when action is
// "unsubscribe".
func (nc *NewsletterController) Handle(w http.ResponseWriter, r *http.Request) {
	const failure = "Failed to process newsletter subscription"

	var req models.NewsletterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		sendFailure(w, r, err, "", failure)
		return
	}

	sub, err := nc.newsletterService.Handle(&req)
	if err != nil {
		sendFailure(w, r, err, "Email not found in subscription list", failure)
		return
	}

	if req.Unsubscribe() {
		sendJSON(w, http.StatusOK, Response{Success: true, Message: "Successfully unsubscribed from newsletter"})
		return
	}
	sendJSON(w, http.StatusCreated, Response{
		Success: true,
		Data:    sub,
		Message: "Successfully subscribed to newsletter",
	})
}
