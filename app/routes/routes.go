package routes

import (
	"net/http"

	"inkpress/app/controllers"
	"inkpress/app/middleware"
	"inkpress/app/repositories"
	"inkpress/app/services"

	"github.com/gorilla/mux"
)

// Options configures the router.
type Options struct {
	// APIPrefix is the path the JSON API is mounted under, e.g. "/api".
	APIPrefix string
	Site      controllers.Site
}

// SetupRoutes builds the services and controllers on top of repo and
// returns the router serving the JSON API and the feeds.
func SetupRoutes(repo *repositories.Repository, opts Options) *mux.Router {
	postService := services.NewPostService(repositories.NewJSONPostRepository(repo))
	commentService := services.NewCommentService(repositories.NewJSONCommentRepository(repo))
	newsletterService := services.NewNewsletterService(repositories.NewJSONNewsletterRepository(repo))
	contactService := services.NewContactService(repositories.NewJSONContactRepository(repo))

	postController := controllers.NewPostController(postService)
	commentController := controllers.NewCommentController(commentService)
	newsletterController := controllers.NewNewsletterController(newsletterService)
	contactController := controllers.NewContactController(contactService)
	feedController := controllers.NewFeedController(postService, opts.Site)

	router := mux.NewRouter()

	// Apply global middleware.
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// Feeds.
	handle(router, "/feed", route{http.MethodGet, feedController.RSS})
	handle(router, "/feed.atom", route{http.MethodGet, feedController.Atom})

	// API routes with JSON content type.
	api := router.PathPrefix(opts.APIPrefix).Subrouter()
	api.Use(middleware.ContentTypeJSON(opts.APIPrefix))
	api.NotFoundHandler = http.HandlerFunc(controllers.NotFound)

	// Posts API endpoints.
	handle(api, "/posts",
		route{http.MethodGet, postController.Index},
		route{http.MethodPost, postController.Create},
	)
	handle(api, "/posts/{id}",
		route{http.MethodGet, postController.Show},
		route{http.MethodPut, postController.Edit},
		route{http.MethodDelete, postController.Delete},
	)
	handle(api, "/posts/{id}/like", route{http.MethodPost, postController.Like})
	handle(api, "/search", route{http.MethodGet, postController.Search})

	// Comments API endpoints.
	handle(api, "/comments/{postId}",
		route{http.MethodGet, commentController.Index},
		route{http.MethodPost, commentController.Create},
	)

	handle(api, "/newsletter", route{http.MethodPost, newsletterController.Handle})
	handle(api, "/contact", route{http.MethodPost, contactController.Create})

	return router
}

type route struct {
	method  string
	handler http.HandlerFunc
}

// handle registers one handler per method on path, followed by a catch-all
// that answers every other method with 405.
func handle(r *mux.Router, path string, routes ...route) {
	methods := make([]string, 0, len(routes))
	for _, rt := range routes {
		r.HandleFunc(path, rt.handler).Methods(rt.method)
		methods = append(methods, rt.method)
	}
	r.HandleFunc(path, controllers.MethodNotAllowed(methods...))
}
