package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fitflowhq/fitflow/internal/blog"
	"github.com/fitflowhq/fitflow/internal/models"
)

// ListCategories handles GET /api/categories. It returns the derived
// category summary: name, slug, color, and post count.
func ListCategories(store *blog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories := store.Categories()
		if categories == nil {
			categories = []models.Category{}
		}
		writeJSON(w, http.StatusOK, categories)
	}
}

// GetCategory handles GET /api/categories/{slug}. It returns the category
// record together with the posts belonging to it (exact name match), newest
// first in store order.
func GetCategory(store *blog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		category, ok := store.CategoryBySlug(slug)
		if !ok {
			writeError(w, http.StatusNotFound, "Category not found")
			return
		}

		var posts []models.Post
		for _, p := range store.Posts() {
			if p.Category == category.Name {
				posts = append(posts, p)
			}
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"category": category,
			"posts":    summarizeAll(posts),
		})
	}
}
