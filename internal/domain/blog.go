package domain

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// BlogPost is an article managed from the admin back office.
type BlogPost struct {
	ID          uuid.UUID
	AuthorID    uuid.UUID
	Title       string
	Slug        string
	Excerpt     string
	Content     string
	Tags        []string
	Status      BlogStatus
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BlogFilter filters blog post lists.
type BlogFilter struct {
	Status *BlogStatus
	Search string
	Tag    string
	PageRequest
}

// Slugify lowercases s and joins its letter/digit runs with hyphens.
func Slugify(s string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			pendingDash = false
			continue
		}
		pendingDash = true
	}
	return b.String()
}
