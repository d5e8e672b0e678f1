package storage

import (
	"context"
	"errors"
	"log/slog"

	"github.com/fitflowhq/fitflow/internal/models"
)

// stateKey is the single namespaced key the durable UI state document lives
// under. It matches the storage key the web client used.
const stateKey = "fitflow-blog-storage"

// SaveUserState persists the given state document, overwriting any previous
// one.
func (s *Store) SaveUserState(ctx context.Context, state models.UserState) error {
	return s.SetPreference(ctx, stateKey, state)
}

// LoadUserState reads the persisted state document. Reads are best-effort:
// a missing key yields the defaults silently, and any other failure
// (including corrupt JSON) logs a warning and yields the defaults. It never
// returns an error to the caller.
func (s *Store) LoadUserState(ctx context.Context, defaults models.UserState) models.UserState {
	var state models.UserState
	err := s.GetPreference(ctx, stateKey, &state)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			slog.Warn("failed to load persisted user state, using defaults", "error", err)
		}
		return defaults
	}

	// Backfill fields absent from older documents so callers never see nil
	// collections or an unknown theme.
	if !state.Theme.Valid() {
		state.Theme = defaults.Theme
	}
	if state.LikedPosts == nil {
		state.LikedPosts = []string{}
	}
	if state.FavoritePosts == nil {
		state.FavoritePosts = []string{}
	}
	if state.ReadingProgress == nil {
		state.ReadingProgress = map[string]float64{}
	}
	return state
}
