package review

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

const maxCommentLength = 2000

// CreateInput holds a new review.
type CreateInput struct {
	ItemKind string
	ItemID   uuid.UUID
	Rating   int
	Comment  string
}

// Validate validates the review input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if !domain.ItemKind(i.ItemKind).IsValid() {
		errs = append(errs, domain.FieldError{Field: "itemType", Message: "must be product or service"})
	}
	if i.ItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "itemId", Message: "required"})
	}
	if i.Rating < 1 || i.Rating > 5 {
		errs = append(errs, domain.FieldError{Field: "rating", Message: "must be between 1 and 5"})
	}
	if utf8.RuneCountInString(strings.TrimSpace(i.Comment)) > maxCommentLength {
		errs = append(errs, domain.FieldError{Field: "comment", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
