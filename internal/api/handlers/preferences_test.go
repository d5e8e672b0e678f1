package handlers_test

import (
	"net/http"
	"testing"

	"github.com/fitflowhq/fitflow/internal/models"
)

func TestGetPreferences_Defaults(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doRequest(t, h, http.MethodGet, "/api/preferences", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var got models.UserState
	decodeJSON(t, rec, &got)

	if got.Theme != models.ThemeLight {
		t.Errorf("theme = %q, want %q", got.Theme, models.ThemeLight)
	}
	if len(got.LikedPosts) != 0 || len(got.FavoritePosts) != 0 {
		t.Errorf("liked/favorites = %v/%v, want empty", got.LikedPosts, got.FavoritePosts)
	}
}

func TestGetPreferences_ReflectsInteractions(t *testing.T) {
	h, _ := newTestServer(t)

	doRequest(t, h, http.MethodPost, "/api/posts/1/like", "")
	doRequest(t, h, http.MethodPost, "/api/posts/2/favorite", "")
	doRequest(t, h, http.MethodPut, "/api/posts/3/progress", `{"progress": 40}`)

	rec := doRequest(t, h, http.MethodGet, "/api/preferences", "")
	var got models.UserState
	decodeJSON(t, rec, &got)

	if len(got.LikedPosts) != 1 || got.LikedPosts[0] != "1" {
		t.Errorf("liked_posts = %v, want [1]", got.LikedPosts)
	}
	if len(got.FavoritePosts) != 1 || got.FavoritePosts[0] != "2" {
		t.Errorf("favorite_posts = %v, want [2]", got.FavoritePosts)
	}
	if got.ReadingProgress["3"] != 40 {
		t.Errorf("reading_progress[3] = %v, want 40", got.ReadingProgress["3"])
	}
}

func TestUpdatePreferences_SetsTheme(t *testing.T) {
	h, store := newTestServer(t)

	rec := doRequest(t, h, http.MethodPut, "/api/preferences", `{"theme": "dark"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var got models.UserState
	decodeJSON(t, rec, &got)
	if got.Theme != models.ThemeDark {
		t.Errorf("theme = %q, want %q", got.Theme, models.ThemeDark)
	}
	if store.Theme() != models.ThemeDark {
		t.Errorf("store.Theme() = %q, want %q", store.Theme(), models.ThemeDark)
	}
}

func TestUpdatePreferences_InvalidTheme(t *testing.T) {
	h, store := newTestServer(t)

	rec := doRequest(t, h, http.MethodPut, "/api/preferences", `{"theme": "sepia"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if store.Theme() != models.ThemeLight {
		t.Errorf("store.Theme() = %q, want unchanged %q", store.Theme(), models.ThemeLight)
	}
}

func TestToggleTheme(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doRequest(t, h, http.MethodPost, "/api/preferences/theme/toggle", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var got struct {
		Theme models.Theme `json:"theme"`
	}
	decodeJSON(t, rec, &got)
	if got.Theme != models.ThemeDark {
		t.Errorf("theme = %q, want %q", got.Theme, models.ThemeDark)
	}

	rec = doRequest(t, h, http.MethodPost, "/api/preferences/theme/toggle", "")
	decodeJSON(t, rec, &got)
	if got.Theme != models.ThemeLight {
		t.Errorf("theme = %q, want %q after second toggle", got.Theme, models.ThemeLight)
	}
}
