package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fitflowhq/fitflow/internal/blog"
	"github.com/fitflowhq/fitflow/internal/models"
	"github.com/fitflowhq/fitflow/internal/textutil"
)

// postSummary is the card-sized projection of a post used by listing
// responses. The full body is only sent on the detail endpoint.
type postSummary struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Slug         string        `json:"slug"`
	Excerpt      string        `json:"excerpt"`
	Thumbnail    string        `json:"thumbnail"`
	Category     string        `json:"category"`
	Tags         []string      `json:"tags"`
	Author       models.Author `json:"author"`
	PublishedAt  time.Time     `json:"published_at"`
	ReadTime     int           `json:"read_time"`
	Likes        int           `json:"likes"`
	CommentCount int           `json:"comment_count"`
	IsFeatured   bool          `json:"is_featured"`
}

func summarize(p models.Post) postSummary {
	return postSummary{
		ID:           p.ID,
		Title:        p.Title,
		Slug:         p.Slug,
		Excerpt:      p.Excerpt,
		Thumbnail:    p.Thumbnail,
		Category:     p.Category,
		Tags:         p.Tags,
		Author:       p.Author,
		PublishedAt:  p.PublishedAt,
		ReadTime:     p.ReadTime,
		Likes:        p.Likes,
		CommentCount: len(p.Comments),
		IsFeatured:   p.IsFeatured,
	}
}

func summarizeAll(posts []models.Post) []postSummary {
	out := make([]postSummary, 0, len(posts))
	for _, p := range posts {
		out = append(out, summarize(p))
	}
	return out
}

// ListPosts handles GET /api/posts. The q, category, and page query
// parameters drive the store's filters; setting q or category resets the
// page to 1, so page is applied last. The response carries the page of
// posts plus everything the listing page needs to render its pagination.
func ListPosts(store *blog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store.SetSearchQuery(r.URL.Query().Get("q"))
		store.SetSelectedCategory(r.URL.Query().Get("category"))

		page := 1
		if p := r.URL.Query().Get("page"); p != "" {
			if n, err := strconv.Atoi(p); err == nil && n > 0 {
				page = n
			}
		}
		store.SetCurrentPage(page)

		writeJSON(w, http.StatusOK, map[string]any{
			"posts":        summarizeAll(store.PaginatedPosts()),
			"current_page": store.CurrentPage(),
			"total_pages":  store.TotalPages(),
			"total_posts":  len(store.FilteredPosts()),
			"query":        store.SearchQuery(),
			"category":     store.SelectedCategory(),
		})
	}
}

// GetPost handles GET /api/posts/{slug}. The response carries the full post
// with rendered HTML, the reader's interaction state, and a display-only
// reading time computed from the body (which may diverge from the stored,
// author-set estimate).
func GetPost(store *blog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		post, ok := store.PostBySlug(slug)
		if !ok {
			writeError(w, http.StatusNotFound, "Post not found")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"post":               post,
			"computed_read_time": textutil.ReadingTime(post.Content),
			"published_display":  textutil.FormatDate(post.PublishedAt),
			"youtube_id":         textutil.ExtractYouTubeID(post.YouTubeURL),
			"liked":              store.IsLiked(post.ID),
			"favorited":          store.IsFavorite(post.ID),
			"reading_progress":   store.ReadingProgress(post.ID),
		})
	}
}

// RelatedPosts handles GET /api/posts/{slug}/related. It returns up to
// three posts sharing the subject's category or at least one tag.
func RelatedPosts(store *blog.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		post, ok := store.PostBySlug(slug)
		if !ok {
			writeError(w, http.StatusNotFound, "Post not found")
			return
		}

		writeJSON(w, http.StatusOK, summarizeAll(store.RelatedPosts(post.ID)))
	}
}
