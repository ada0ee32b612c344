package seller

import (
	"strings"
	"unicode/utf8"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

// UpdateProfileInput holds the editable seller profile fields. Nil fields
// are left unchanged.
type UpdateProfileInput struct {
	BusinessName  *string
	ServiceBranch *string
	Rank          *string
	ServiceNumber *string
	Category      *string
	Description   *string
	City          *string
	State         *string
}

// Validate validates the profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.BusinessName != nil {
		n := strings.TrimSpace(*i.BusinessName)
		if n == "" {
			errs = append(errs, domain.FieldError{Field: "businessName", Message: "must not be empty"})
		} else if utf8.RuneCountInString(n) > 200 {
			errs = append(errs, domain.FieldError{Field: "businessName", Message: "too long"})
		}
	}
	if i.Category != nil && strings.TrimSpace(*i.Category) == "" {
		errs = append(errs, domain.FieldError{Field: "category", Message: "must not be empty"})
	}
	if i.Description != nil && utf8.RuneCountInString(*i.Description) > 5000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateProfileInput) apply(s *domain.Seller) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&s.BusinessName, i.BusinessName)
	set(&s.ServiceBranch, i.ServiceBranch)
	set(&s.Rank, i.Rank)
	set(&s.ServiceNumber, i.ServiceNumber)
	set(&s.Category, i.Category)
	set(&s.Description, i.Description)
	set(&s.City, i.City)
	set(&s.State, i.State)
}

// ListInput holds admin seller list filters.
type ListInput struct {
	Status string
	Search string
	domain.PageRequest
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	if i.Status != "" && !domain.SellerStatus(i.Status).IsValid() {
		return domain.NewValidationError("status", "invalid seller status")
	}
	return nil
}

// SetStatusInput holds an admin status change.
type SetStatusInput struct {
	Status string
	Reason string
}

// Validate validates the status input. Only suspension and reactivation are
// set directly; approval decisions go through the approval workflow.
func (i SetStatusInput) Validate() error {
	switch domain.SellerStatus(i.Status) {
	case domain.SellerStatusSuspended, domain.SellerStatusActive:
		return nil
	}
	return domain.NewValidationError("status", "must be suspended or active")
}
