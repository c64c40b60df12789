package repositories

import (
	"encoding/json"
	"testing"

	"inkpress/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPost(title string) *models.Post {
	input := models.PostInput{
		Title:    title,
		Content:  "Some content about " + title,
		Excerpt:  "Excerpt",
		Author:   "Tester",
		Category: "Testing",
		Tags:     []string{"go"},
	}
	return input.ToPost()
}

func TestPostRepository(t *testing.T) {
	repo, _ := setupTestRepository(t)
	posts := NewJSONPostRepository(repo)

	t.Run("empty collection", func(t *testing.T) {
		all, err := posts.ListAll()
		require.NoError(t, err)
		assert.Empty(t, all)
		assert.NotNil(t, all)
	})

	var created *models.Post

	t.Run("create assigns store-owned fields", func(t *testing.T) {
		created = newTestPost("First")
		created.Views = 99
		created.Likes = 12

		require.NoError(t, posts.Create(created))
		assert.Equal(t, "id-1", created.ID)
		assert.Equal(t, testTime, created.Date)
		assert.Zero(t, created.Views)
		assert.Zero(t, created.Likes)

		stored, err := posts.GetByID(created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, stored)
	})

	t.Run("get missing post", func(t *testing.T) {
		_, err := posts.GetByID("missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("update merges fields", func(t *testing.T) {
		patch := map[string]json.RawMessage{
			"title":    json.RawMessage(`"Renamed"`),
			"featured": json.RawMessage(`true`),
			"views":    json.RawMessage(`1000`),
			"id":       json.RawMessage(`"hijack"`),
		}
		updated, err := posts.Update(created.ID, patch)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Title)
		assert.True(t, updated.Featured)
		assert.Equal(t, created.ID, updated.ID)
		assert.Zero(t, updated.Views)
		assert.Equal(t, created.Content, updated.Content)

		stored, err := posts.GetByID(created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", stored.Title)
	})

	t.Run("update with invalid value", func(t *testing.T) {
		_, err := posts.Update(created.ID, map[string]json.RawMessage{"featured": json.RawMessage(`"yes"`)})
		assert.True(t, models.IsValidationError(err))
	})

	t.Run("update missing post", func(t *testing.T) {
		_, err := posts.Update("missing", map[string]json.RawMessage{"title": json.RawMessage(`"x"`)})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("increment views", func(t *testing.T) {
		require.NoError(t, posts.IncrementViews(created.ID))
		require.NoError(t, posts.IncrementViews(created.ID))
		stored, err := posts.GetByID(created.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, stored.Views)
	})

	t.Run("increment views of missing post is ignored", func(t *testing.T) {
		assert.NoError(t, posts.IncrementViews("missing"))
	})

	t.Run("toggle like always increments", func(t *testing.T) {
		likes, err := posts.ToggleLike(created.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, likes)
		likes, err = posts.ToggleLike(created.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, likes)
	})

	t.Run("toggle like of missing post", func(t *testing.T) {
		_, err := posts.ToggleLike("missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		other := newTestPost("Second")
		require.NoError(t, posts.Create(other))

		require.NoError(t, posts.Delete(created.ID))
		_, err := posts.GetByID(created.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		all, err := posts.ListAll()
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, other.ID, all[0].ID)
	})

	t.Run("delete missing post", func(t *testing.T) {
		assert.ErrorIs(t, posts.Delete("missing"), ErrNotFound)
	})
}

func TestPostRepositoryPublished(t *testing.T) {
	repo, _ := setupTestRepository(t)
	posts := NewJSONPostRepository(repo)

	visible := newTestPost("Visible golang post")
	hidden := newTestPost("Hidden golang draft")
	hidden.Published = false
	require.NoError(t, posts.Create(visible))
	require.NoError(t, posts.Create(hidden))

	t.Run("list published", func(t *testing.T) {
		published, err := posts.ListPublished()
		require.NoError(t, err)
		require.Len(t, published, 1)
		assert.Equal(t, visible.ID, published[0].ID)
	})

	t.Run("list all includes drafts", func(t *testing.T) {
		all, err := posts.ListAll()
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("search skips drafts", func(t *testing.T) {
		found, err := posts.Search("golang")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, visible.ID, found[0].ID)
	})
}

func TestPostRepositorySearch(t *testing.T) {
	repo, _ := setupTestRepository(t)
	posts := NewJSONPostRepository(repo)
	seeded, err := posts.Seed(SamplePosts())
	require.NoError(t, err)
	require.True(t, seeded)

	tests := []struct {
		query string
		want  []string
	}{
		{query: "design", want: []string{"2"}},
		{query: "DESIGN", want: []string{"2"}},
		{query: "business", want: []string{"3"}},
		{query: "ui/ux", want: []string{"2"}},
		{query: "no such thing", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			found, err := posts.Search(tt.query)
			require.NoError(t, err)
			ids := make([]string, 0, len(found))
			for _, p := range found {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestPostRepositorySeed(t *testing.T) {
	t.Run("seeds an empty collection once", func(t *testing.T) {
		repo, store := setupTestRepository(t)
		posts := NewJSONPostRepository(repo)

		seeded, err := posts.Seed(SamplePosts())
		require.NoError(t, err)
		assert.True(t, seeded)

		seeded, err = posts.Seed(SamplePosts())
		require.NoError(t, err)
		assert.False(t, seeded)
		assert.Equal(t, 1, store.Writes)

		all, err := posts.ListAll()
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "1", all[0].ID)
		assert.Equal(t, 1250, all[0].Views)
	})

	t.Run("leaves existing posts alone", func(t *testing.T) {
		repo, _ := setupTestRepository(t)
		posts := NewJSONPostRepository(repo)
		require.NoError(t, posts.Create(newTestPost("Mine")))

		seeded, err := posts.Seed(SamplePosts())
		require.NoError(t, err)
		assert.False(t, seeded)

		all, err := posts.ListAll()
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("refuses to seed over a corrupt collection", func(t *testing.T) {
		repo, store := setupTestRepository(t)
		store.Set(PostsCollection, []byte("{"))

		_, err := NewJSONPostRepository(repo).Seed(SamplePosts())
		assert.ErrorIs(t, err, ErrCorruptCollection)
	})
}

func TestPostRepositoryOnStoreBackends(t *testing.T) {
	for name, store := range testStores(t) {
		store := store
		t.Run(name, func(t *testing.T) {
			posts := NewJSONPostRepository(NewRepository(store))
			post := newTestPost("Portable")
			require.NoError(t, posts.Create(post))
			require.NoError(t, posts.IncrementViews(post.ID))

			stored, err := posts.GetByID(post.ID)
			require.NoError(t, err)
			assert.Equal(t, "Portable", stored.Title)
			assert.Equal(t, 1, stored.Views)
			assert.True(t, stored.Date.Equal(post.Date))
		})
	}
}
