package blog

import (
	"context"
	"strconv"
	"strings"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

const (
	fallbackSlug  = "post"
	maxSlugLength = 80
)

// uniqueSlug derives a slug from title that no other post uses. Collisions
// get the smallest free numeric suffix starting at 2. own is the current
// slug of the post being renamed, which does not count as taken.
func (s *Service) uniqueSlug(ctx context.Context, title, own string) (string, error) {
	base := slugify(title)

	existing, err := s.posts.SlugsWithPrefix(ctx, base)
	if err != nil {
		return "", err
	}
	taken := make(map[string]bool, len(existing))
	for _, slug := range existing {
		if slug != own {
			taken[slug] = true
		}
	}

	if !taken[base] {
		return base, nil
	}
	for n := 2; ; n++ {
		candidate := base + "-" + strconv.Itoa(n)
		if !taken[candidate] {
			return candidate, nil
		}
	}
}

func slugify(title string) string {
	base := domain.Slugify(title)
	if r := []rune(base); len(r) > maxSlugLength {
		base = strings.TrimRight(string(r[:maxSlugLength]), "-")
	}
	if base == "" {
		return fallbackSlug
	}
	return base
}
