package models

import "time"

// Post represents a blog post.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Excerpt   string    `json:"excerpt"`
	Author    string    `json:"author"`
	Date      time.Time `json:"date"`
	ReadTime  string    `json:"readTime"`
	Category  string    `json:"category"`
	ImageURL  string    `json:"imageUrl"`
	Featured  bool      `json:"featured"`
	Published bool      `json:"published"`
	Tags      []string  `json:"tags"`
	Views     int       `json:"views"`
	Likes     int       `json:"likes"`
}

// Comment represents a reader comment on a blog post. Comments start
// unapproved and are hidden from readers until a moderator approves them.
type Comment struct {
	ID       string    `json:"id"`
	PostID   string    `json:"postId"`
	Author   string    `json:"author"`
	Email    string    `json:"email"`
	Content  string    `json:"content"`
	Date     time.Time `json:"date"`
	Approved bool      `json:"approved"`
}

// Subscription is a newsletter subscription keyed by email address.
type Subscription struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribedAt"`
	Active       bool      `json:"active"`
}

// ContactMessage is a message submitted through the contact form.
type ContactMessage struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Subject string    `json:"subject"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
	Read    bool      `json:"read"`
}
