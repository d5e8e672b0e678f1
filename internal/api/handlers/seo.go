package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fitflowhq/fitflow/internal/blog"
	"github.com/fitflowhq/fitflow/internal/config"
)

// RobotsTxt handles GET /robots.txt.
func RobotsTxt(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		base := strings.TrimSuffix(cfg.Site.BaseURL, "/")
		content := fmt.Sprintf(`User-agent: *
Allow: /

Sitemap: %s/sitemap.xml
`, base)

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, content)
	}
}

// Sitemap handles GET /sitemap.xml. It lists the static pages, every post
// detail URL (lastmod from the post's update time), and every category page.
func Sitemap(store *blog.Store, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		base := strings.TrimSuffix(cfg.Site.BaseURL, "/")

		var b strings.Builder
		b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
		b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")

		writeURL := func(loc, lastmod, changefreq string) {
			b.WriteString("  <url>\n")
			fmt.Fprintf(&b, "    <loc>%s</loc>\n", loc)
			if lastmod != "" {
				fmt.Fprintf(&b, "    <lastmod>%s</lastmod>\n", lastmod)
			}
			fmt.Fprintf(&b, "    <changefreq>%s</changefreq>\n", changefreq)
			b.WriteString("  </url>\n")
		}

		for _, path := range []string{"", "/blog", "/categories", "/about", "/contact"} {
			writeURL(base+path, "", "weekly")
		}
		for _, p := range store.Posts() {
			writeURL(base+"/blog/"+p.Slug, p.UpdatedAt.Format(time.RFC3339), "monthly")
		}
		for _, c := range store.Categories() {
			writeURL(base+"/categories/"+c.Slug, "", "weekly")
		}

		b.WriteString("</urlset>\n")

		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, b.String())
	}
}
