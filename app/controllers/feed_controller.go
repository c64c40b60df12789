package controllers

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"inkpress/app/models"
	"inkpress/app/services"

	"github.com/gorilla/feeds"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Site describes the blog in syndication feeds.
type Site struct {
	Title       string
	URL         string
	Description string
}

// FeedController serves RSS and Atom feeds of the newest published posts
type FeedController struct {
	postService *services.PostService
	site        Site
	markdown    goldmark.Markdown
}

func NewFeedController(postService *services.PostService, site Site) *FeedController {
	return &FeedController{
		postService: postService,
		site:        site,
		markdown:    goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// RSS serves the RSS 2.0 feed
func (fc *FeedController) RSS(w http.ResponseWriter, r *http.Request) {
	fc.serve(w, r, "application/rss+xml", (*feeds.Feed).WriteRss)
}

// Atom serves the Atom feed
func (fc *FeedController) Atom(w http.ResponseWriter, r *http.Request) {
	fc.serve(w, r, "application/atom+xml", (*feeds.Feed).WriteAtom)
}

func (fc *FeedController) serve(w http.ResponseWriter, r *http.Request, contentType string, write func(*feeds.Feed, io.Writer) error) {
	posts, err := fc.postService.Feed()
	if err != nil {
		sendFailure(w, r, err, "", "Failed to generate feed")
		return
	}

	w.Header().Set("Content-Type", contentType+"; charset=utf-8")
	if err := write(fc.build(posts), w); err != nil {
		slog.Error("failed to write feed", "error", err, "path", r.URL.Path)
	}
}

func (fc *FeedController) build(posts []*models.Post) *feeds.Feed {
	base := strings.TrimSuffix(fc.site.URL, "/")
	feed := &feeds.Feed{
		Title:       fc.site.Title,
		Link:        &feeds.Link{Href: base},
		Description: fc.site.Description,
		Created:     time.Now().UTC(),
	}
	if len(posts) > 0 {
		feed.Updated = posts[0].Date
	}

	for _, post := range posts {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          post.ID,
			Title:       post.Title,
			Link:        &feeds.Link{Href: base + "/posts/" + post.ID},
			Author:      &feeds.Author{Name: post.Author},
			Description: post.Excerpt,
			Content:     fc.renderMarkdown(post.Content),
			Created:     post.Date,
		})
	}
	return feed
}

func (fc *FeedController) renderMarkdown(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	var b strings.Builder
	if err := fc.markdown.Convert([]byte(input), &b); err != nil {
		return input
	}
	return b.String()
}
