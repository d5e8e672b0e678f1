package blog

import (
	"math"
	"sort"
	"strings"

	"github.com/fitflowhq/fitflow/internal/models"
)

// Posts returns a copy of the full post list in store order.
func (s *Store) Posts() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Post(nil), s.posts...)
}

// Categories returns a copy of the category list.
func (s *Store) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Category(nil), s.categories...)
}

// PostByID returns the post with the given id.
func (s *Store) PostByID(id string) (models.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.posts {
		if p.ID == id {
			return p, true
		}
	}
	return models.Post{}, false
}

// PostBySlug returns the post with the given slug.
func (s *Store) PostBySlug(slug string) (models.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return models.Post{}, false
}

// CategoryBySlug returns the category with the given slug.
func (s *Store) CategoryBySlug(slug string) (models.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return models.Category{}, false
}

// SearchQuery returns the current search filter.
func (s *Store) SearchQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.searchQuery
}

// SelectedCategory returns the current category filter ("" means none).
func (s *Store) SelectedCategory() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedCategory
}

// CurrentPage returns the 1-indexed current page.
func (s *Store) CurrentPage() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentPage
}

// PostsPerPage returns the fixed pagination size.
func (s *Store) PostsPerPage() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.postsPerPage
}

// Theme returns the current theme.
func (s *Store) Theme() models.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// IsLiked reports whether the post is in the liked set.
func (s *Store) IsLiked(postID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.liked[postID]
}

// IsFavorite reports whether the post is in the favorite set.
func (s *Store) IsFavorite(postID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.favorites[postID]
}

// ReadingProgress returns the recorded progress percentage for a post, or 0
// if none has been recorded.
func (s *Store) ReadingProgress(postID string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.progress[postID]
}

// FilteredPosts returns the posts passing both active filters: the search
// query must be a case-insensitive substring of the title, content, excerpt,
// or any tag, and the selected category must match the post's category
// exactly (case-sensitive). An empty query or empty category passes
// everything.
func (s *Store) FilteredPosts() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filteredLocked()
}

// filteredLocked computes FilteredPosts. Callers must hold mu.
func (s *Store) filteredLocked() []models.Post {
	query := strings.ToLower(s.searchQuery)
	var out []models.Post
	for _, p := range s.posts {
		if s.selectedCategory != "" && p.Category != s.selectedCategory {
			continue
		}
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// matchesQuery reports whether the lowercased query is a substring of the
// post's title, content, excerpt, or any tag.
func matchesQuery(p models.Post, query string) bool {
	if strings.Contains(strings.ToLower(p.Title), query) ||
		strings.Contains(strings.ToLower(p.Content), query) ||
		strings.Contains(strings.ToLower(p.Excerpt), query) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// PaginatedPosts returns the slice of FilteredPosts for the current page:
// elements [(page-1)*perPage, (page-1)*perPage+perPage).
func (s *Store) PaginatedPosts() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := s.filteredLocked()
	start := (s.currentPage - 1) * s.postsPerPage
	if start < 0 || start >= len(filtered) {
		return nil
	}
	end := start + s.postsPerPage
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// TotalPages returns ceil(len(FilteredPosts)/postsPerPage). When the
// filtered list is empty this is 0; callers treat 0 and 1 alike as "no
// extra pagination needed".
func (s *Store) TotalPages() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int(math.Ceil(float64(len(s.filteredLocked())) / float64(s.postsPerPage)))
}

// FeaturedPosts returns the first three posts with the featured flag set,
// in original order.
func (s *Store) FeaturedPosts() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Post
	for _, p := range s.posts {
		if p.IsFeatured {
			out = append(out, p)
			if len(out) == 3 {
				break
			}
		}
	}
	return out
}

// RecentPosts returns the five most recently published posts, newest first.
func (s *Store) RecentPosts() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sorted := append([]models.Post(nil), s.posts...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PublishedAt.After(sorted[j].PublishedAt)
	})
	if len(sorted) > 5 {
		sorted = sorted[:5]
	}
	return sorted
}

// PopularPosts returns the five posts with the highest like counts.
func (s *Store) PopularPosts() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sorted := append([]models.Post(nil), s.posts...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Likes > sorted[j].Likes
	})
	if len(sorted) > 5 {
		sorted = sorted[:5]
	}
	return sorted
}

// RelatedPosts returns up to three posts related to the given one: same
// category, or a non-empty tag intersection. The subject post is excluded
// and results keep encounter order; overlap strength is not ranked. An
// unknown id yields an empty result.
func (s *Store) RelatedPosts(postID string) []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var current *models.Post
	for i := range s.posts {
		if s.posts[i].ID == postID {
			current = &s.posts[i]
			break
		}
	}
	if current == nil {
		return nil
	}

	tags := make(map[string]bool, len(current.Tags))
	for _, t := range current.Tags {
		tags[t] = true
	}

	var out []models.Post
	for _, p := range s.posts {
		if p.ID == postID {
			continue
		}
		related := p.Category == current.Category
		if !related {
			for _, t := range p.Tags {
				if tags[t] {
					related = true
					break
				}
			}
		}
		if related {
			out = append(out, p)
			if len(out) == 3 {
				break
			}
		}
	}
	return out
}
