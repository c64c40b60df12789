package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"inkpress/app/models"
	"inkpress/app/services"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

// Index lists published posts. Query parameters: featured=true, category,
// search and limit.
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := services.PostFilter{
		Featured: query.Get("featured") == "true",
		Category: query.Get("category"),
		Search:   query.Get("search"),
		Limit:    parseLimit(query.Get("limit")),
	}

	posts, err := pc.postService.List(filter)
	if err != nil {
		sendFailure(w, r, err, "", "Failed to fetch posts")
		return
	}
	sendList(w, posts)
}

// Create handles creating a new post
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var input models.PostInput
	if err := decodeJSON(w, r, &input); err != nil {
		sendFailure(w, r, err, "", "Failed to create post")
		return
	}

	post, err := pc.postService.CreatePost(&input)
	if err != nil {
		sendFailure(w, r, err, "", "Failed to create post")
		return
	}
	sendData(w, http.StatusCreated, post)
}

// Show returns a published post and counts the view
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	post, err := pc.postService.GetPublished(id)
	if err != nil {
		sendFailure(w, r, err, "Post not found", "Failed to fetch post")
		return
	}
	sendData(w, http.StatusOK, post)
}

// Edit merges the fields of the JSON body into an existing post
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var patch map[string]json.RawMessage
	if err := decodeJSON(w, r, &patch); err != nil {
		sendFailure(w, r, err, "", "Failed to update post")
		return
	}

	post, err := pc.postService.UpdatePost(id, patch)
	if err != nil {
		sendFailure(w, r, err, "Post not found", "Failed to update post")
		return
	}
	sendData(w, http.StatusOK, post)
}

// Delete handles deleting a post
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := pc.postService.DeletePost(id); err != nil {
		sendFailure(w, r, err, "Post not found", "Failed to delete post")
		return
	}
	sendJSON(w, http.StatusOK, Response{Success: true, Message: "Post deleted successfully"})
}

// Like adds a like to a post
func (pc *PostController) Like(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	likes, err := pc.postService.Like(id)
	if err != nil {
		sendFailure(w, r, err, "Post not found", "Failed to like post")
		return
	}
	sendData(w, http.StatusOK, map[string]int{"likes": likes})
}

// Search handles keyword search over published posts
func (pc *PostController) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	q := query.Get("q")

	posts, err := pc.postService.Search(q, parseLimit(query.Get("limit")))
	if err != nil {
		sendFailure(w, r, err, "", "Search failed")
		return
	}
	total := len(posts)
	sendJSON(w, http.StatusOK, Response{Success: true, Data: posts, Total: &total, Query: q})
}

// parseLimit reads the limit parameter. Missing, malformed and negative
// values mean no limit.
func parseLimit(raw string) int {
	if raw == "" {
		return services.NoLimit
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return services.NoLimit
	}
	return limit
}
