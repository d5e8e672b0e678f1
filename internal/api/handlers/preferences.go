package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/fitflowhq/fitflow/internal/blog"
	"github.com/fitflowhq/fitflow/internal/models"
)

// GetPreferences handles GET /api/preferences. It returns the durable slice
// of store state: theme, liked and favorite post ids, and reading progress.
func GetPreferences(store *blog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, store.UserState())
	}
}

// UpdatePreferences handles PUT /api/preferences. Only the theme can be set
// directly; likes, favorites, and progress go through their own endpoints.
func UpdatePreferences(store *blog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Theme models.Theme `json:"theme"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		if !body.Theme.Valid() {
			writeError(w, http.StatusBadRequest, `theme must be "light" or "dark"`)
			return
		}

		store.SetTheme(body.Theme)
		writeJSON(w, http.StatusOK, store.UserState())
	}
}

// ToggleTheme handles POST /api/preferences/theme/toggle. It flips between
// light and dark and returns the new theme.
func ToggleTheme(store *blog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store.ToggleTheme()
		writeJSON(w, http.StatusOK, map[string]any{
			"theme": store.Theme(),
		})
	}
}
