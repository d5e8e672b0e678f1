package handlers

import (
	"net/http"

	"github.com/fitflowhq/fitflow/internal/blog"
)

// Home handles GET /api/home. It returns the three rails the home page
// renders: featured posts (first three flagged, original order), recent
// posts (published desc, five), and popular posts (likes desc, five).
func Home(store *blog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"featured": summarizeAll(store.FeaturedPosts()),
			"recent":   summarizeAll(store.RecentPosts()),
			"popular":  summarizeAll(store.PopularPosts()),
		})
	}
}
