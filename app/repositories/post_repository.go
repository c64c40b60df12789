package repositories

import (
	"encoding/json"
	"strings"

	"inkpress/app/models"
)

// JSONPostRepository implements PostRepository over the posts collection
type JSONPostRepository struct {
	posts collection[models.Post]
}

// NewJSONPostRepository creates a new JSONPostRepository
func NewJSONPostRepository(repo *Repository) *JSONPostRepository {
	return &JSONPostRepository{posts: newCollection[models.Post](repo, PostsCollection)}
}

// ListAll returns every post in storage order
func (r *JSONPostRepository) ListAll() ([]*models.Post, error) {
	return r.filter(func(*models.Post) bool { return true })
}

// ListPublished returns published posts in storage order
func (r *JSONPostRepository) ListPublished() ([]*models.Post, error) {
	return r.filter(func(p *models.Post) bool { return p.Published })
}

// GetByID retrieves a post by ID
func (r *JSONPostRepository) GetByID(id string) (*models.Post, error) {
	posts, err := r.posts.load()
	if err != nil {
		return nil, err
	}
	if i := indexOfPost(posts, id); i >= 0 {
		return &posts[i], nil
	}
	return nil, ErrNotFound
}

// Create assigns the identifier, date and counters of a new post and appends it
func (r *JSONPostRepository) Create(post *models.Post) error {
	post.BeforeCreate(newID(), now())
	return r.posts.update(func(posts []models.Post) ([]models.Post, error) {
		return append(posts, *post), nil
	})
}

// Update merges the patch into the stored post
func (r *JSONPostRepository) Update(id string, patch map[string]json.RawMessage) (*models.Post, error) {
	var updated models.Post
	err := r.posts.update(func(posts []models.Post) ([]models.Post, error) {
		i := indexOfPost(posts, id)
		if i < 0 {
			return nil, ErrNotFound
		}
		merged, err := posts[i].ApplyPatch(patch)
		if err != nil {
			return nil, err
		}
		posts[i] = merged
		updated = merged
		return posts, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a post by ID
func (r *JSONPostRepository) Delete(id string) error {
	return r.posts.update(func(posts []models.Post) ([]models.Post, error) {
		i := indexOfPost(posts, id)
		if i < 0 {
			return nil, ErrNotFound
		}
		return append(posts[:i], posts[i+1:]...), nil
	})
}

// IncrementViews adds one view to a post. Unknown IDs are ignored.
func (r *JSONPostRepository) IncrementViews(id string) error {
	return r.posts.update(func(posts []models.Post) ([]models.Post, error) {
		i := indexOfPost(posts, id)
		if i < 0 {
			return nil, errUnchanged
		}
		posts[i].Views++
		return posts, nil
	})
}

// ToggleLike adds one like to a post and returns the new count. Every call
// increments; there is no unlike.
func (r *JSONPostRepository) ToggleLike(id string) (int, error) {
	var likes int
	err := r.posts.update(func(posts []models.Post) ([]models.Post, error) {
		i := indexOfPost(posts, id)
		if i < 0 {
			return nil, ErrNotFound
		}
		posts[i].Likes++
		likes = posts[i].Likes
		return posts, nil
	})
	if err != nil {
		return 0, err
	}
	return likes, nil
}

// Search returns published posts whose title, excerpt, content, category or
// tags contain query, ignoring case, in storage order.
func (r *JSONPostRepository) Search(query string) ([]*models.Post, error) {
	lower := strings.ToLower(query)
	return r.filter(func(p *models.Post) bool {
		return p.Published && p.Matches(lower)
	})
}

// Seed writes posts only when the collection is empty and reports whether it did.
func (r *JSONPostRepository) Seed(seed []*models.Post) (bool, error) {
	seeded := false
	err := r.posts.update(func(posts []models.Post) ([]models.Post, error) {
		if len(posts) > 0 {
			return nil, errUnchanged
		}
		for _, p := range seed {
			posts = append(posts, *p)
		}
		seeded = true
		return posts, nil
	})
	return seeded, err
}

func (r *JSONPostRepository) filter(keep func(*models.Post) bool) ([]*models.Post, error) {
	posts, err := r.posts.load()
	if err != nil {
		return nil, err
	}
	result := make([]*models.Post, 0, len(posts))
	for i := range posts {
		if keep(&posts[i]) {
			result = append(result, &posts[i])
		}
	}
	return result, nil
}

func indexOfPost(posts []models.Post, id string) int {
	for i := range posts {
		if posts[i].ID == id {
			return i
		}
	}
	return -1
}
