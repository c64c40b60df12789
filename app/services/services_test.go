package services

import (
	"testing"

	"inkpress/app/repositories"
	"inkpress/app/repositories/mock"

	"github.com/stretchr/testify/require"
)

type testServices struct {
	store      *mock.Store
	posts      *PostService
	comments   *CommentService
	newsletter *NewsletterService
	contact    *ContactService
}

func setupServices(t *testing.T) *testServices {
	t.Helper()

	store := mock.NewStore()
	repo := repositories.NewRepository(store)
	t.Cleanup(func() {
		require.NoError(t, repo.Close())
	})

	return &testServices{
		store:      store,
		posts:      NewPostService(repositories.NewJSONPostRepository(repo)),
		comments:   NewCommentService(repositories.NewJSONCommentRepository(repo)),
		newsletter: NewNewsletterService(repositories.NewJSONNewsletterRepository(repo)),
		contact:    NewContactService(repositories.NewJSONContactRepository(repo)),
	}
}
