package blog

import (
	"strings"
	"unicode/utf8"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

const (
	maxTitleLength   = 200
	maxExcerptLength = 500
	maxTags          = 20
)

// PostInput holds the editable fields of a blog post.
type PostInput struct {
	Title   string
	Excerpt string
	Content string
	Tags    []string
	Publish bool
}

func (i *PostInput) normalize() {
	i.Title = strings.TrimSpace(i.Title)
	i.Excerpt = strings.TrimSpace(i.Excerpt)
	tags := make([]string, 0, len(i.Tags))
	seen := make(map[string]bool, len(i.Tags))
	for _, t := range i.Tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		tags = append(tags, t)
	}
	i.Tags = tags
}

// Validate validates the post input.
func (i PostInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if utf8.RuneCountInString(i.Title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}
	if utf8.RuneCountInString(i.Excerpt) > maxExcerptLength {
		errs = append(errs, domain.FieldError{Field: "excerpt", Message: "too long"})
	}
	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if len(i.Tags) > maxTags {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "too many tags"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds blog list filters. Status is honoured for admins only.
type ListInput struct {
	Status string
	Search string
	Tag    string
	domain.PageRequest
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	if i.Status != "" && !domain.BlogStatus(i.Status).IsValid() {
		return domain.NewValidationError("status", "invalid blog status")
	}
	return nil
}
