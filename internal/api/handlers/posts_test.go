package handlers_test

import (
	"net/http"
	"testing"
)

type listResponse struct {
	Posts []struct {
		ID           string `json:"id"`
		Title        string `json:"title"`
		Slug         string `json:"slug"`
		CommentCount int    `json:"comment_count"`
	} `json:"posts"`
	CurrentPage int    `json:"current_page"`
	TotalPages  int    `json:"total_pages"`
	TotalPosts  int    `json:"total_posts"`
	Query       string `json:"query"`
	Category    string `json:"category"`
}

func TestListPosts_All(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doRequest(t, h, http.MethodGet, "/api/posts", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var got listResponse
	decodeJSON(t, rec, &got)

	if got.TotalPosts != 4 {
		t.Errorf("total_posts = %d, want 4", got.TotalPosts)
	}
	if got.TotalPages != 1 {
		t.Errorf("total_pages = %d, want 1", got.TotalPages)
	}
	if got.CurrentPage != 1 {
		t.Errorf("current_page = %d, want 1", got.CurrentPage)
	}
	if len(got.Posts) != 4 {
		t.Errorf("len(posts) = %d, want 4", len(got.Posts))
	}
}

func TestListPosts_SearchQuery(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doRequest(t, h, http.MethodGet, "/api/posts?q=hiit", "")
	var got listResponse
	decodeJSON(t, rec, &got)

	if got.TotalPosts != 1 {
		t.Fatalf("total_posts = %d, want 1", got.TotalPosts)
	}
	if got.Posts[0].ID != "1" {
		t.Errorf("posts[0].id = %q, want %q", got.Posts[0].ID, "1")
	}
	if got.Query != "hiit" {
		t.Errorf("query = %q, want %q", got.Query, "hiit")
	}
}

func TestListPosts_CategoryFilter(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doRequest(t, h, http.MethodGet, "/api/posts?category=Nutrition", "")
	var got listResponse
	decodeJSON(t, rec, &got)

	if got.TotalPosts != 1 {
		t.Fatalf("total_posts = %d, want 1", got.TotalPosts)
	}
	if got.Posts[0].ID != "2" {
		t.Errorf("posts[0].id = %q, want %q", got.Posts[0].ID, "2")
	}
}

func TestListPosts_NoMatches(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doRequest(t, h, http.MethodGet, "/api/posts?q=swimming", "")
	var got listResponse
	decodeJSON(t, rec, &got)

	if got.TotalPosts != 0 {
		t.Errorf("total_posts = %d, want 0", got.TotalPosts)
	}
	if got.TotalPages != 0 {
		t.Errorf("total_pages = %d, want 0", got.TotalPages)
	}
	if len(got.Posts) != 0 {
		t.Errorf("len(posts) = %d, want 0", len(got.Posts))
	}
}

func TestListPosts_PageOutOfRange(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doRequest(t, h, http.MethodGet, "/api/posts?page=99", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var got listResponse
	decodeJSON(t, rec, &got)
	if len(got.Posts) != 0 {
		t.Errorf("len(posts) = %d, want 0 for out-of-range page", len(got.Posts))
	}
	if got.CurrentPage != 99 {
		t.Errorf("current_page = %d, want 99 echoed back", got.CurrentPage)
	}
}

func TestListPosts_InvalidPageFallsBackToOne(t *testing.T) {
	h, _ := newTestServer(t)

	for _, page := range []string{"0", "-3", "abc"} {
		rec := doRequest(t, h, http.MethodGet, "/api/posts?page="+page, "")
		var got listResponse
		decodeJSON(t, rec, &got)
		if got.CurrentPage != 1 {
			t.Errorf("page=%q: current_page = %d, want 1", page, got.CurrentPage)
		}
	}
}

func TestGetPost(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doRequest(t, h, http.MethodGet, "/api/posts/10-minute-full-body-hiit-workout-beginners", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var got struct {
		Post struct {
			ID          string `json:"id"`
			ContentHTML string `json:"content_html"`
		} `json:"post"`
		ComputedReadTime int     `json:"computed_read_time"`
		PublishedDisplay string  `json:"published_display"`
		YouTubeID        string  `json:"youtube_id"`
		Liked            bool    `json:"liked"`
		Favorited        bool    `json:"favorited"`
		ReadingProgress  float64 `json:"reading_progress"`
	}
	decodeJSON(t, rec, &got)

	if got.Post.ID != "1" {
		t.Errorf("post.id = %q, want %q", got.Post.ID, "1")
	}
	if got.Post.ContentHTML == "" {
		t.Error("post.content_html is empty, want rendered HTML")
	}
	if got.ComputedReadTime < 1 {
		t.Errorf("computed_read_time = %d, want >= 1", got.ComputedReadTime)
	}
	if got.PublishedDisplay != "January 15, 2024" {
		t.Errorf("published_display = %q, want %q", got.PublishedDisplay, "January 15, 2024")
	}
	if got.Liked || got.Favorited {
		t.Error("liked/favorited true on a fresh store, want false")
	}
}

func TestGetPost_NotFound(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doRequest(t, h, http.MethodGet, "/api/posts/no-such-post", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRelatedPosts(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doRequest(t, h, http.MethodGet, "/api/posts/5-morning-habits-transform-fitness-journey/related", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var got []struct {
		ID string `json:"id"`
	}
	decodeJSON(t, rec, &got)

	if len(got) != 1 || got[0].ID != "4" {
		t.Errorf("related = %v, want exactly post 4", got)
	}
}

func TestRelatedPosts_NotFound(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doRequest(t, h, http.MethodGet, "/api/posts/no-such-post/related", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHome_Rails(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doRequest(t, h, http.MethodGet, "/api/home", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var got struct {
		Featured []struct {
			ID string `json:"id"`
		} `json:"featured"`
		Recent []struct {
			ID string `json:"id"`
		} `json:"recent"`
		Popular []struct {
			ID string `json:"id"`
		} `json:"popular"`
	}
	decodeJSON(t, rec, &got)

	if len(got.Featured) != 2 || got.Featured[0].ID != "1" || got.Featured[1].ID != "2" {
		t.Errorf("featured = %v, want posts 1 and 2 in order", got.Featured)
	}
	if len(got.Recent) != 4 || got.Recent[0].ID != "1" || got.Recent[3].ID != "4" {
		t.Errorf("recent = %v, want newest first (1..4)", got.Recent)
	}
	if len(got.Popular) != 4 || got.Popular[0].ID != "3" {
		t.Errorf("popular = %v, want post 3 (312 likes) first", got.Popular)
	}
}
