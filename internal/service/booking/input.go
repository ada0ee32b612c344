package booking

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

// CreateInput holds a booking request.
type CreateInput struct {
	ServiceID   uuid.UUID
	ScheduledAt time.Time
	Notes       string
}

// Validate validates the booking input. now bounds ScheduledAt from below.
func (i CreateInput) Validate(now time.Time) error {
	var errs []domain.FieldError

	if i.ServiceID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "serviceId", Message: "required"})
	}
	if i.ScheduledAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "scheduledAt", Message: "required"})
	} else if !i.ScheduledAt.After(now) {
		errs = append(errs, domain.FieldError{Field: "scheduledAt", Message: "must be in the future"})
	}
	if utf8.RuneCountInString(i.Notes) > 1000 {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds booking list filters.
type ListInput struct {
	Status string
	domain.PageRequest
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	if i.Status != "" && !domain.BookingStatus(i.Status).IsValid() {
		return domain.NewValidationError("status", "invalid booking status")
	}
	return nil
}
