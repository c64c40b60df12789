package controllers

import (
	"net/http"

	"inkpress/app/models"
	"inkpress/app/services"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	commentService *services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// Index lists the approved comments of a post
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r, "postId")
	if !ok {
		return
	}

	comments, err := cc.commentService.ListForPost(postID)
	if err != nil {
		sendFailure(w, r, err, "", "Failed to fetch comments")
		return
	}
	sendList(w, comments)
}

// Create stores a comment awaiting moderation
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r, "postId")
	if !ok {
		return
	}

	var input models.CommentInput
	if err := decodeJSON(w, r, &input); err != nil {
		sendFailure(w, r, err, "", "Failed to create comment")
		return
	}

	comment, err := cc.commentService.CreateComment(postID, &input)
	if err != nil {
		sendFailure(w, r, err, "", "Failed to create comment")
		return
	}
	sendJSON(w, http.StatusCreated, Response{
		Success: true,
		Data:    comment,
		Message: "Comment submitted for approval",
	})
}
