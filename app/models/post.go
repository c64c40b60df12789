package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DefaultImageURL is used for posts created without an image.
const DefaultImageURL = "https://images.unsplash.com/photo-1486312338219-ce68d2c6f44d?w=800&h=400&fit=crop"

// wordsPerMinute is the reading speed behind ReadTime labels.
const wordsPerMinute = 200

// PostInput holds the caller-supplied fields of a new post.
type PostInput struct {
	Title    string   `json:"title" validate:"required"`
	Content  string   `json:"content" validate:"required"`
	Excerpt  string   `json:"excerpt" validate:"required"`
	Author   string   `json:"author" validate:"required"`
	Category string   `json:"category" validate:"required"`
	ImageURL string   `json:"imageUrl"`
	Featured bool     `json:"featured"`
	Tags     []string `json:"tags"`
}

// Validate checks that every required field is present.
func (in *PostInput) Validate() error {
	return checkStruct(in, "Missing required fields")
}

// ToPost builds a published post from the input, filling in defaults. The
// identifier, date and counters are left for the repository to assign.
func (in *PostInput) ToPost() *Post {
	post := &Post{
		Title:     in.Title,
		Content:   in.Content,
		Excerpt:   in.Excerpt,
		Author:    in.Author,
		Category:  in.Category,
		ImageURL:  in.ImageURL,
		Featured:  in.Featured,
		Published: true,
		Tags:      in.Tags,
		ReadTime:  EstimateReadTime(in.Content),
	}
	if post.ImageURL == "" {
		post.ImageURL = DefaultImageURL
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	return post
}

// EstimateReadTime returns a label such as "3 min read" for the given text.
func EstimateReadTime(content string) string {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

// BeforeCreate assigns the store-owned fields of a new post.
func (p *Post) BeforeCreate(id string, now time.Time) {
	p.ID = id
	p.Date = now
	p.Views = 0
	p.Likes = 0
	if p.Tags == nil {
		p.Tags = []string{}
	}
}

// immutablePostFields can only change through the repository itself.
var immutablePostFields = map[string]bool{
	"id":    true,
	"views": true,
	"likes": true,
}

// ApplyPatch returns a copy of p with the given JSON fields overwritten.
// The merge is shallow: a provided "tags" array replaces the old one.
func (p Post) ApplyPatch(patch map[string]json.RawMessage) (Post, error) {
	base, err := json.Marshal(p)
	if err != nil {
		return Post{}, fmt.Errorf("failed to marshal post: %w", err)
	}

	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(base, &fields); err != nil {
		return Post{}, fmt.Errorf("failed to unmarshal post: %w", err)
	}
	for key, value := range patch {
		if immutablePostFields[key] {
			continue
		}
		fields[key] = value
	}

	merged, err := json.Marshal(fields)
	if err != nil {
		return Post{}, fmt.Errorf("failed to marshal patch: %w", err)
	}
	var out Post
	if err := json.Unmarshal(merged, &out); err != nil {
		return Post{}, NewValidationError("Invalid field value: " + err.Error())
	}
	if out.Tags == nil {
		out.Tags = []string{}
	}
	return out, nil
}

// Matches reports whether the lowercase query occurs in the title, excerpt,
// content, category or any tag of the post, ignoring case.
func (p *Post) Matches(lowerQuery string) bool {
	if strings.Contains(strings.ToLower(p.Title), lowerQuery) ||
		strings.Contains(strings.ToLower(p.Excerpt), lowerQuery) ||
		strings.Contains(strings.ToLower(p.Content), lowerQuery) ||
		strings.Contains(strings.ToLower(p.Category), lowerQuery) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), lowerQuery) {
			return true
		}
	}
	return false
}
