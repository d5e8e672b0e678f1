package models

// Theme is the two-valued UI theme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is one of the recognized themes.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// UserState is the slice of UI state that survives a restart: theme, liked
// and favorite post ids, and per-post reading progress (0-100). It is
// persisted as a single JSON document under one namespaced storage key.
type UserState struct {
	Theme           Theme              `json:"theme"`
	LikedPosts      []string           `json:"liked_posts"`
	FavoritePosts   []string           `json:"favorite_posts"`
	ReadingProgress map[string]float64 `json:"reading_progress"`
}

// DefaultUserState returns the state used when nothing has been persisted
// yet or the persisted document cannot be read.
func DefaultUserState() UserState {
	return UserState{
		Theme:           ThemeLight,
		LikedPosts:      []string{},
		FavoritePosts:   []string{},
		ReadingProgress: map[string]float64{},
	}
}
