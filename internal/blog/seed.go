package blog

import (
	"context"
	"log/slog"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/fitflowhq/fitflow/internal/models"
	"github.com/fitflowhq/fitflow/internal/render"
	"github.com/fitflowhq/fitflow/internal/textutil"
)

// categoryColors is the palette cycled through when deriving category
// summaries. Purely presentational.
var categoryColors = []string{
	"bg-red-500",
	"bg-green-500",
	"bg-purple-500",
	"bg-blue-500",
	"bg-orange-500",
	"bg-teal-500",
}

// Seed loads the fixture posts and the derived category summary into the
// store if, and only if, the post list is empty. It is safe to call any
// number of times. Post bodies are pre-rendered to sanitized HTML before the
// posts become visible.
func (s *Store) Seed(ctx context.Context) error {
	s.mu.RLock()
	empty := len(s.posts) == 0
	s.mu.RUnlock()
	if !empty {
		return nil
	}

	posts := SamplePosts()

	g, ctx := errgroup.WithContext(ctx)
	for i := range posts {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			posts[i].ContentHTML = render.Markdown(posts[i].Content)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	s.SetPosts(posts)
	s.SetCategories(DeriveCategories(posts))

	slog.Info("seeded blog store", "posts", len(posts), "categories", len(s.Categories()))
	return nil
}

// DeriveCategories scans posts once and builds the category summary:
// grouping is by exact category-name match, ids are assigned in encounter
// order, slugs come from the name, colors cycle through a fixed palette, and
// PostCount counts occurrences.
func DeriveCategories(posts []models.Post) []models.Category {
	var out []models.Category
	index := make(map[string]int)

	for _, p := range posts {
		if i, ok := index[p.Category]; ok {
			out[i].PostCount++
			continue
		}
		index[p.Category] = len(out)
		out = append(out, models.Category{
			ID:        strconv.Itoa(len(out) + 1),
			Name:      p.Category,
			Slug:      textutil.Slugify(p.Category),
			Color:     categoryColors[len(out)%len(categoryColors)],
			PostCount: 1,
		})
	}
	return out
}
