package approval

import (
	"strings"
	"time"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

const (
	maxNotesLength  = 2000
	maxReasonLength = 1000
	maxBatchSize    = 100
)

func validateDocuments(docs []domain.DocumentUpload, required bool) error {
	var errs []domain.FieldError

	if required && len(docs) == 0 {
		errs = append(errs, domain.FieldError{Field: "documents", Message: "at least one document is required"})
	}
	for _, d := range docs {
		if strings.TrimSpace(d.Path) == "" {
			errs = append(errs, domain.FieldError{Field: "documents", Message: "document path is required"})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ApproveInput holds parameters for approving a request.
type ApproveInput struct {
	Notes string
}

// Validate validates the approve input.
func (i ApproveInput) Validate() error {
	if len([]rune(i.Notes)) > maxNotesLength {
		return domain.NewValidationError("notes", "too long")
	}
	return nil
}

// RejectInput holds parameters for rejecting a request.
type RejectInput struct {
	Reason string
	Notes  string
}

// Validate validates the reject input. The reason is required.
func (i RejectInput) Validate() error {
	var errs []domain.FieldError

	if r := strings.TrimSpace(i.Reason); r == "" {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "rejection reason is required"})
	} else if len([]rune(r)) > maxReasonLength {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "too long"})
	}
	if len([]rune(i.Notes)) > maxNotesLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds the admin queue filters.
type ListInput struct {
	Status string
	Type   string
	Search string
	From   *time.Time
	To     *time.Time
	domain.PageRequest
}

// Validate checks the enum values and the date range.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Status != "" && !domain.ApprovalStatus(i.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
	}
	if i.Type != "" && !domain.ApprovalType(i.Type).IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "invalid type"})
	}
	if i.From != nil && i.To != nil && i.To.Before(*i.From) {
		errs = append(errs, domain.FieldError{Field: "endDate", Message: "must not be before startDate"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ListInput) filter() domain.ApprovalFilter {
	f := domain.ApprovalFilter{
		Search:      strings.TrimSpace(i.Search),
		From:        i.From,
		To:          i.To,
		PageRequest: i.PageRequest.Normalize(),
	}
	if i.Status != "" {
		st := domain.ApprovalStatus(i.Status)
		f.Status = &st
	}
	if i.Type != "" {
		typ := domain.ApprovalType(i.Type)
		f.Type = &typ
	}
	return f
}

// DocumentStatusInput holds parameters for changing one embedded document.
type DocumentStatusInput struct {
	Status string
}

// Validate validates the document status input.
func (i DocumentStatusInput) Validate() error {
	if !domain.DocumentStatus(i.Status).IsValid() {
		return domain.NewValidationError("status", "must be one of pending, verified, rejected")
	}
	return nil
}
