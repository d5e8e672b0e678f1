package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/fitflowhq/fitflow/internal/api"
	"github.com/fitflowhq/fitflow/internal/blog"
	"github.com/fitflowhq/fitflow/internal/config"
	"github.com/fitflowhq/fitflow/internal/models"
	"github.com/fitflowhq/fitflow/internal/storage"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	dataDir := flag.String("data-dir", "./data", "path to data directory")
	flag.Parse()

	// Load configuration (auto-creates default if missing).
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Ensure data directory exists.
	if err := os.MkdirAll(*dataDir, 0o755); err != nil {
		slog.Error("failed to create data directory", "error", err)
		os.Exit(1)
	}

	// Open the user-state database with WAL mode and pragmas.
	db, err := storage.OpenDatabase(filepath.Join(*dataDir, "fitflow.db"))
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run schema migrations.
	if err := storage.RunMigrations(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	st := storage.NewStore(db)

	// Restore the persisted slice of UI state (theme, likes, favorites,
	// reading progress); anything unreadable falls back to defaults.
	userState := st.LoadUserState(ctx, models.DefaultUserState())

	// Build the blog store and seed it with the fixture data. Posts and
	// categories are session-only; only the user state above persists.
	store := blog.New(blog.Options{
		PostsPerPage: cfg.Blog.PostsPerPage,
		Persister:    st,
		InitialState: &userState,
	})
	if err := store.Seed(ctx); err != nil {
		slog.Error("failed to seed blog data", "error", err)
		os.Exit(1)
	}

	router := api.NewRouter(store, cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	slog.Info("starting server", "addr", addr, "site", cfg.Site.Title)
	if err := http.ListenAndServe(addr, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
