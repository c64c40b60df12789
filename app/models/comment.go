package models

import "time"

// CommentInput holds the fields a reader submits with a comment.
type CommentInput struct {
	Author  string `json:"author" validate:"required"`
	Email   string `json:"email" validate:"required,blogemail"`
	Content string `json:"content" validate:"required"`
}

// Validate checks for missing fields and a malformed email address.
func (in *CommentInput) Validate() error {
	return checkStruct(in, "Missing required fields")
}

// ToComment builds a comment on the given post.
func (in *CommentInput) ToComment(postID string) *Comment {
	return &Comment{
		PostID:  postID,
		Author:  in.Author,
		Email:   in.Email,
		Content: in.Content,
	}
}

// BeforeCreate assigns the identifier and date. New comments always wait
// for approval, whatever the caller asked for.
func (c *Comment) BeforeCreate(id string, now time.Time) {
	c.ID = id
	c.Date = now
	c.Approved = false
}
