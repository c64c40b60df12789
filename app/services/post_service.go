package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"inkpress/app/models"
	"inkpress/app/repositories"
)

// NoLimit disables the result limit of a listing.
const NoLimit = -1

// FeedSize is the number of posts published in the feeds.
const FeedSize = 20

// PostFilter narrows a post listing.
type PostFilter struct {
	Featured bool
	Category string
	Search   string
	// Limit caps the number of results; NoLimit (or any negative value)
	// returns everything and 0 returns nothing.
	Limit int
}

// PostService handles business logic for blog posts
type PostService struct {
	postRepo repositories.PostRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// List returns published posts matching the filter, newest first.
func (s *PostService) List(filter PostFilter) ([]*models.Post, error) {
	var (
		posts []*models.Post
		err   error
	)
	if filter.Search != "" {
		posts, err = s.postRepo.Search(filter.Search)
	} else {
		posts, err = s.postRepo.ListPublished()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	filtered := make([]*models.Post, 0, len(posts))
	for _, post := range posts {
		if filter.Featured && !post.Featured {
			continue
		}
		if filter.Category != "" && !strings.EqualFold(post.Category, filter.Category) {
			continue
		}
		filtered = append(filtered, post)
	}

	sortNewestFirst(filtered)
	return applyLimit(filtered, filter.Limit), nil
}

// CreatePost validates the input and stores a new published post
func (s *PostService) CreatePost(input *models.PostInput) (*models.Post, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	post := input.ToPost()
	if err := s.postRepo.Create(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

// GetPublished retrieves a published post and records the view. Drafts are
// reported as not found.
func (s *PostService) GetPublished(id string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !post.Published {
		return nil, repositories.ErrNotFound
	}

	if err := s.postRepo.IncrementViews(id); err != nil {
		return nil, fmt.Errorf("failed to record view: %w", err)
	}
	post.Views++
	return post, nil
}

// UpdatePost merges the given fields into an existing post
func (s *PostService) UpdatePost(id string, patch map[string]json.RawMessage) (*models.Post, error) {
	return s.postRepo.Update(id, patch)
}

// DeletePost deletes a post. Its comments are kept.
func (s *PostService) DeletePost(id string) error {
	return s.postRepo.Delete(id)
}

// Like adds one like to a post and returns the new count
func (s *PostService) Like(id string) (int, error) {
	return s.postRepo.ToggleLike(id)
}

// Search returns published posts containing query, in storage order.
func (s *PostService) Search(query string, limit int) ([]*models.Post, error) {
	if query == "" {
		return nil, models.NewValidationError("Search query is required")
	}
	posts, err := s.postRepo.Search(query)
	if err != nil {
		return nil, fmt.Errorf("failed to search posts: %w", err)
	}
	return applyLimit(posts, limit), nil
}

// Feed returns the newest published posts for syndication
func (s *PostService) Feed() ([]*models.Post, error) {
	return s.List(PostFilter{Limit: FeedSize})
}

// SeedSamples writes the sample posts when no post exists yet
func (s *PostService) SeedSamples() (bool, error) {
	seeded, err := s.postRepo.Seed(repositories.SamplePosts())
	if err != nil {
		return false, fmt.Errorf("failed to seed posts: %w", err)
	}
	return seeded, nil
}

// IsNotFound reports whether err means the requested record does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, repositories.ErrNotFound)
}

func sortNewestFirst(posts []*models.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date)
	})
}

func applyLimit[T any](items []T, limit int) []T {
	if limit < 0 || limit >= len(items) {
		return items
	}
	return items[:limit]
}
