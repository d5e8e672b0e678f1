package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fitflowhq/fitflow/internal/api/handlers"
	"github.com/fitflowhq/fitflow/internal/blog"
	"github.com/fitflowhq/fitflow/internal/config"
)

// NewRouter creates and configures the HTTP router: the JSON API each page
// of the client renders from, plus the SEO surface (robots.txt, sitemap).
func NewRouter(store *blog.Store, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware.
	r.Use(RequestLogger)
	r.Use(Recovery)
	r.Use(CORS)

	// API sub-router.
	r.Route("/api", func(api chi.Router) {
		api.Get("/home", handlers.Home(store))

		api.Get("/posts", handlers.ListPosts(store))
		api.Get("/posts/{slug}", handlers.GetPost(store))
		api.Get("/posts/{slug}/related", handlers.RelatedPosts(store))
		api.Post("/posts/{slug}/comments", handlers.AddComment(store))

		api.Post("/posts/{id}/like", handlers.ToggleLike(store))
		api.Post("/posts/{id}/favorite", handlers.ToggleFavorite(store))
		api.Put("/posts/{id}/progress", handlers.SetReadingProgress(store))

		api.Get("/categories", handlers.ListCategories(store))
		api.Get("/categories/{slug}", handlers.GetCategory(store))

		api.Get("/preferences", handlers.GetPreferences(store))
		api.Put("/preferences", handlers.UpdatePreferences(store))
		api.Post("/preferences/theme/toggle", handlers.ToggleTheme(store))

		api.Post("/contact", handlers.Contact())
	})

	// SEO surface.
	r.Get("/robots.txt", handlers.RobotsTxt(cfg))
	r.Get("/sitemap.xml", handlers.Sitemap(store, cfg))

	// Catch-all: the data source for the client's not-found view.
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		handlers.NotFound(w, req)
	})

	return r
}
