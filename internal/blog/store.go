// Package blog holds the single source of truth for post data and
// UI/interaction state: a mutable state container exposing mutation actions
// and derived-read selectors.
//
// Actions are total functions: unknown ids degrade to silent no-ops rather
// than errors. Selectors are pure projections recomputed on every call.
// All access is guarded by a single RWMutex, so coupled mutations (such as
// flipping a like and adjusting the like count) are atomic with respect to
// any concurrent read.
package blog

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/fitflowhq/fitflow/internal/models"
)

// DefaultPostsPerPage is the page size used when none is configured.
const DefaultPostsPerPage = 6

// Persister receives a snapshot of the durable slice of store state after
// every mutation that touches it. Implementations are expected to be
// best-effort; the store logs failures and moves on.
type Persister interface {
	SaveUserState(ctx context.Context, state models.UserState) error
}

// Options configures a new Store.
type Options struct {
	// PostsPerPage is the fixed pagination size. Zero means
	// DefaultPostsPerPage.
	PostsPerPage int
	// Persister, if non-nil, is notified whenever theme, likes, favorites,
	// or reading progress change.
	Persister Persister
	// InitialState restores previously persisted user state. Nil starts
	// from the defaults (light theme, nothing liked).
	InitialState *models.UserState
}

// Store is the global blog state container.
type Store struct {
	mu sync.RWMutex

	posts      []models.Post
	categories []models.Category

	searchQuery      string
	selectedCategory string
	currentPage      int
	postsPerPage     int

	theme     models.Theme
	liked     map[string]bool
	favorites map[string]bool
	progress  map[string]float64

	persister Persister
}

// New creates a Store with empty post data and the given options applied.
func New(opts Options) *Store {
	perPage := opts.PostsPerPage
	if perPage <= 0 {
		perPage = DefaultPostsPerPage
	}

	s := &Store{
		currentPage:  1,
		postsPerPage: perPage,
		theme:        models.ThemeLight,
		liked:        make(map[string]bool),
		favorites:    make(map[string]bool),
		progress:     make(map[string]float64),
		persister:    opts.Persister,
	}

	if st := opts.InitialState; st != nil {
		if st.Theme.Valid() {
			s.theme = st.Theme
		}
		for _, id := range st.LikedPosts {
			s.liked[id] = true
		}
		for _, id := range st.FavoritePosts {
			s.favorites[id] = true
		}
		for id, p := range st.ReadingProgress {
			s.progress[id] = p
		}
	}

	return s
}

// SetPosts replaces the post list.
func (s *Store) SetPosts(posts []models.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append([]models.Post(nil), posts...)
}

// AddPost prepends a post to the list.
func (s *Store) AddPost(post models.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append([]models.Post{post}, s.posts...)
}

// UpdatePost merges the non-nil fields of patch onto the post with the given
// id. It is a no-op if no post matches.
func (s *Store) UpdatePost(id string, patch models.PostPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID != id {
			continue
		}
		p := &s.posts[i]
		if patch.Title != nil {
			p.Title = *patch.Title
		}
		if patch.Slug != nil {
			p.Slug = *patch.Slug
		}
		if patch.Excerpt != nil {
			p.Excerpt = *patch.Excerpt
		}
		if patch.Content != nil {
			p.Content = *patch.Content
		}
		if patch.Thumbnail != nil {
			p.Thumbnail = *patch.Thumbnail
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if patch.Tags != nil {
			p.Tags = append([]string(nil), (*patch.Tags)...)
		}
		if patch.ReadTime != nil {
			p.ReadTime = *patch.ReadTime
		}
		if patch.YouTubeURL != nil {
			p.YouTubeURL = *patch.YouTubeURL
		}
		if patch.IsFeatured != nil {
			p.IsFeatured = *patch.IsFeatured
		}
		return
	}
}

// DeletePost removes the post with the given id, if present.
func (s *Store) DeletePost(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return
		}
	}
}

// SetCategories replaces the category list.
func (s *Store) SetCategories(categories []models.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append([]models.Category(nil), categories...)
}

// SetSearchQuery updates the search filter and resets pagination to page 1.
func (s *Store) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = query
	s.currentPage = 1
}

// SetSelectedCategory updates the category filter and resets pagination to
// page 1. The empty string means no filter.
func (s *Store) SetSelectedCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedCategory = category
	s.currentPage = 1
}

// SetCurrentPage sets the 1-indexed current page. No bounds validation is
// performed; callers are expected to clamp to [1, TotalPages].
func (s *Store) SetCurrentPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentPage = page
}

// SetTheme sets the theme explicitly.
func (s *Store) SetTheme(theme models.Theme) {
	s.mu.Lock()
	s.theme = theme
	snap := s.userStateLocked()
	s.mu.Unlock()
	s.persist(snap)
}

// ToggleTheme flips between light and dark.
func (s *Store) ToggleTheme() {
	s.mu.Lock()
	if s.theme == models.ThemeLight {
		s.theme = models.ThemeDark
	} else {
		s.theme = models.ThemeLight
	}
	snap := s.userStateLocked()
	s.mu.Unlock()
	s.persist(snap)
}

// ToggleLike flips membership of postID in the liked set and adjusts that
// post's like counter by +-1 in the same critical section: increment when
// newly liked, decrement when unliked. Calling it twice restores both the
// set and the count exactly.
func (s *Store) ToggleLike(postID string) {
	s.mu.Lock()
	delta := 1
	if s.liked[postID] {
		delete(s.liked, postID)
		delta = -1
	} else {
		s.liked[postID] = true
	}
	for i := range s.posts {
		if s.posts[i].ID == postID {
			s.posts[i].Likes += delta
			break
		}
	}
	snap := s.userStateLocked()
	s.mu.Unlock()
	s.persist(snap)
}

// ToggleFavorite flips membership of postID in the favorite set. It does not
// touch the like count.
func (s *Store) ToggleFavorite(postID string) {
	s.mu.Lock()
	if s.favorites[postID] {
		delete(s.favorites, postID)
	} else {
		s.favorites[postID] = true
	}
	snap := s.userStateLocked()
	s.mu.Unlock()
	s.persist(snap)
}

// AddComment appends a comment to the named post's comment list. It is a
// no-op if the post does not exist.
func (s *Store) AddComment(postID string, comment models.Comment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == postID {
			s.posts[i].Comments = append(s.posts[i].Comments, comment)
			return
		}
	}
}

// SetReadingProgress records the reading progress percentage for a post,
// last write wins. The store does not clamp; callers clamp to [0, 100].
func (s *Store) SetReadingProgress(postID string, percent float64) {
	s.mu.Lock()
	s.progress[postID] = percent
	snap := s.userStateLocked()
	s.mu.Unlock()
	s.persist(snap)
}

// UserState returns a snapshot of the durable slice of store state.
func (s *Store) UserState() models.UserState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userStateLocked()
}

// userStateLocked builds a UserState snapshot. Callers must hold mu.
func (s *Store) userStateLocked() models.UserState {
	st := models.UserState{
		Theme:           s.theme,
		LikedPosts:      make([]string, 0, len(s.liked)),
		FavoritePosts:   make([]string, 0, len(s.favorites)),
		ReadingProgress: make(map[string]float64, len(s.progress)),
	}
	for id := range s.liked {
		st.LikedPosts = append(st.LikedPosts, id)
	}
	for id := range s.favorites {
		st.FavoritePosts = append(st.FavoritePosts, id)
	}
	sort.Strings(st.LikedPosts)
	sort.Strings(st.FavoritePosts)
	for id, p := range s.progress {
		st.ReadingProgress[id] = p
	}
	return st
}

// persist hands a state snapshot to the configured persister. Failures are
// logged and swallowed: persistence is best-effort by contract.
func (s *Store) persist(state models.UserState) {
	if s.persister == nil {
		return
	}
	if err := s.persister.SaveUserState(context.Background(), state); err != nil {
		slog.Warn("failed to persist user state", "error", err)
	}
}
