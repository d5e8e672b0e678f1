package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fitflowhq/fitflow/internal/blog"
	"github.com/fitflowhq/fitflow/internal/models"
	"github.com/fitflowhq/fitflow/internal/textutil"
)

// AddComment handles POST /api/posts/{slug}/comments. It validates the
// author name and content, appends the comment to the post, and returns the
// created record.
func AddComment(store *blog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		post, ok := store.PostBySlug(slug)
		if !ok {
			writeError(w, http.StatusNotFound, "Post not found")
			return
		}

		var body struct {
			Author  string `json:"author"`
			Content string `json:"content"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		author := strings.TrimSpace(body.Author)
		content := strings.TrimSpace(body.Content)
		if author == "" {
			writeError(w, http.StatusBadRequest, "author is required")
			return
		}
		if content == "" {
			writeError(w, http.StatusBadRequest, "content is required")
			return
		}

		comment := models.Comment{
			ID:        textutil.NewID(),
			Author:    author,
			Content:   content,
			CreatedAt: time.Now().UTC(),
		}
		store.AddComment(post.ID, comment)

		slog.Info("comment added", "post", post.Slug, "author", author)
		writeJSON(w, http.StatusCreated, comment)
	}
}
