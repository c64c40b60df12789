package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"inkpress/app/models"
	"inkpress/app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validPostJSON = `{
	"title": "Test Post",
	"content": "This is a test post content",
	"excerpt": "A test",
	"author": "Tester",
	"category": "Testing",
	"tags": ["go", "testing"]
}`

func createPost(t *testing.T, env *testEnv) models.Post {
	t.Helper()
	w := env.do(t, http.MethodPost, "/posts", validPostJSON)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var post models.Post
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &post))
	return post
}

func TestPostController(t *testing.T) {
	env := setupTestEnv(t)
	var post models.Post

	t.Run("create post", func(t *testing.T) {
		post = createPost(t, env)
		assert.NotEmpty(t, post.ID)
		assert.Equal(t, "Test Post", post.Title)
		assert.True(t, post.Published)
		assert.Equal(t, models.DefaultImageURL, post.ImageURL)
		assert.Equal(t, []string{"go", "testing"}, post.Tags)
		assert.Zero(t, post.Views)
	})

	t.Run("create post with missing fields", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/posts", `{"title":"Only a title"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeEnvelope(t, w)
		assert.False(t, resp.Success)
		assert.Equal(t, "Missing required fields", resp.Error)
	})

	t.Run("create post with empty body", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/posts", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Missing required fields", decodeEnvelope(t, w).Error)
	})

	t.Run("create post with invalid JSON", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/posts", `{"title":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeEnvelope(t, w).Error, "Invalid JSON")
	})

	t.Run("show post counts views", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/posts/"+post.ID, "")
		require.Equal(t, http.StatusOK, w.Code)
		var shown models.Post
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &shown))
		assert.Equal(t, 1, shown.Views)
	})

	t.Run("show missing post", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/posts/missing", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Post not found", decodeEnvelope(t, w).Error)
	})

	t.Run("show with malformed id", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/posts/bad.id", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid post ID", decodeEnvelope(t, w).Error)
	})

	t.Run("edit post", func(t *testing.T) {
		w := env.do(t, http.MethodPut, "/posts/"+post.ID, `{"title":"Updated","likes":500}`)
		require.Equal(t, http.StatusOK, w.Code)
		var updated models.Post
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &updated))
		assert.Equal(t, "Updated", updated.Title)
		assert.Equal(t, post.Content, updated.Content)
		assert.Zero(t, updated.Likes)
	})

	t.Run("edit with invalid value", func(t *testing.T) {
		w := env.do(t, http.MethodPut, "/posts/"+post.ID, `{"tags":"not a list"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeEnvelope(t, w).Error, "Invalid field value")
	})

	t.Run("edit missing post", func(t *testing.T) {
		w := env.do(t, http.MethodPut, "/posts/missing", `{"title":"x"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("like post", func(t *testing.T) {
		for want := 1; want <= 2; want++ {
			w := env.do(t, http.MethodPost, "/posts/"+post.ID+"/like", "")
			require.Equal(t, http.StatusOK, w.Code)
			var data struct {
				Likes int `json:"likes"`
			}
			require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &data))
			assert.Equal(t, want, data.Likes)
		}
	})

	t.Run("like missing post", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/posts/missing/like", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Post not found", decodeEnvelope(t, w).Error)
	})

	t.Run("delete post", func(t *testing.T) {
		w := env.do(t, http.MethodDelete, "/posts/"+post.ID, "")
		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeEnvelope(t, w)
		assert.True(t, resp.Success)
		assert.Equal(t, "Post deleted successfully", resp.Message)

		w = env.do(t, http.MethodDelete, "/posts/"+post.ID, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPostControllerIndex(t *testing.T) {
	env := setupTestEnv(t)
	_, err := env.posts.SeedSamples()
	require.NoError(t, err)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "all", query: "", want: []string{"1", "2", "3"}},
		{name: "featured", query: "?featured=true", want: []string{"1", "2"}},
		{name: "featured must be true", query: "?featured=yes", want: []string{"1", "2", "3"}},
		{name: "category", query: "?category=business", want: []string{"3"}},
		{name: "search", query: "?search=design", want: []string{"2"}},
		{name: "limit", query: "?limit=1", want: []string{"1"}},
		{name: "zero limit", query: "?limit=0", want: []string{}},
		{name: "bad limit ignored", query: "?limit=abc", want: []string{"1", "2", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodGet, "/posts"+tt.query, "")
			require.Equal(t, http.StatusOK, w.Code)
			resp := decodeEnvelope(t, w)
			assert.True(t, resp.Success)

			var posts []models.Post
			require.NoError(t, json.Unmarshal(resp.Data, &posts))
			ids := make([]string, 0, len(posts))
			for _, p := range posts {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.want, ids)
			require.NotNil(t, resp.Total)
			assert.Equal(t, len(tt.want), *resp.Total)
		})
	}
}

func TestPostControllerSearch(t *testing.T) {
	env := setupTestEnv(t)
	_, err := env.posts.SeedSamples()
	require.NoError(t, err)

	t.Run("missing query", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/search", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Search query is required", decodeEnvelope(t, w).Error)
	})

	t.Run("results", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/search?q=Design&limit=5", "")
		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeEnvelope(t, w)
		assert.Equal(t, "Design", resp.Query)
		require.NotNil(t, resp.Total)
		assert.Equal(t, 1, *resp.Total)
	})

	t.Run("no results", func(t *testing.T) {
		w := env.do(t, http.MethodGet, "/search?q=zzzz", "")
		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeEnvelope(t, w)
		assert.JSONEq(t, `[]`, string(resp.Data))
		assert.Equal(t, 0, *resp.Total)
	})
}

func TestPostControllerStorageFailures(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		target  string
		body    string
		corrupt bool
		message string
	}{
		{name: "list", method: http.MethodGet, target: "/posts", corrupt: true, message: "Failed to fetch posts"},
		{name: "show", method: http.MethodGet, target: "/posts/1", corrupt: true, message: "Failed to fetch post"},
		{name: "create", method: http.MethodPost, target: "/posts", body: validPostJSON, message: "Failed to create post"},
		{name: "edit", method: http.MethodPut, target: "/posts/1", body: `{"title":"x"}`, corrupt: true, message: "Failed to update post"},
		{name: "delete", method: http.MethodDelete, target: "/posts/1", corrupt: true, message: "Failed to delete post"},
		{name: "like", method: http.MethodPost, target: "/posts/1/like", corrupt: true, message: "Failed to like post"},
		{name: "search", method: http.MethodGet, target: "/search?q=x", corrupt: true, message: "Search failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnv(t)
			if tt.corrupt {
				env.store.Set(repositories.PostsCollection, []byte("{not an array"))
			} else {
				env.store.FailWrites = true
			}

			w := env.do(t, tt.method, tt.target, tt.body)
			assert.Equal(t, http.StatusInternalServerError, w.Code)
			resp := decodeEnvelope(t, w)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.message, resp.Error)
		})
	}
}
