package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fitflowhq/fitflow/internal/blog"
)

// ToggleLike handles POST /api/posts/{id}/like. It flips the reader's like
// on the post and returns the new membership plus the adjusted count.
func ToggleLike(store *blog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if _, ok := store.PostByID(id); !ok {
			writeError(w, http.StatusNotFound, "Post not found")
			return
		}

		store.ToggleLike(id)

		post, _ := store.PostByID(id)
		writeJSON(w, http.StatusOK, map[string]any{
			"liked": store.IsLiked(id),
			"likes": post.Likes,
		})
	}
}

// ToggleFavorite handles POST /api/posts/{id}/favorite. Favorites are
// independent of likes and never touch the like count.
func ToggleFavorite(store *blog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if _, ok := store.PostByID(id); !ok {
			writeError(w, http.StatusNotFound, "Post not found")
			return
		}

		store.ToggleFavorite(id)

		writeJSON(w, http.StatusOK, map[string]any{
			"favorited": store.IsFavorite(id),
		})
	}
}

// SetReadingProgress handles PUT /api/posts/{id}/progress. The store does
// not clamp, so the handler clamps the reported percentage to [0, 100]
// before recording it (last write wins).
func SetReadingProgress(store *blog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if _, ok := store.PostByID(id); !ok {
			writeError(w, http.StatusNotFound, "Post not found")
			return
		}

		var body struct {
			Progress float64 `json:"progress"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		progress := body.Progress
		if progress < 0 {
			progress = 0
		}
		if progress > 100 {
			progress = 100
		}
		store.SetReadingProgress(id, progress)

		writeJSON(w, http.StatusOK, map[string]any{
			"progress": progress,
		})
	}
}
