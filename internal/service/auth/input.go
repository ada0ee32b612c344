package auth

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 72 // bcrypt limit
	maxNameLength     = 100
	maxPhoneLength    = 20
)

func validateEmail(email string, errs []domain.FieldError) []domain.FieldError {
	if email == "" {
		return append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if len(email) > 254 {
		return append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}
	return errs
}

// RegisterInput holds parameters for buyer registration.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

func (i *RegisterInput) normalize() {
	i.Name = strings.TrimSpace(i.Name)
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
	i.Phone = strings.TrimSpace(i.Phone)
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	errs := i.fieldErrors()
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i RegisterInput) fieldErrors() []domain.FieldError {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if utf8.RuneCountInString(i.Name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	errs = validateEmail(i.Email, errs)

	if len(i.Password) < minPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 8 characters"})
	} else if len(i.Password) > maxPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(i.Phone) > maxPhoneLength {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "too long"})
	}
	return errs
}

// RegisterSellerInput holds parameters for ESM seller registration.
type RegisterSellerInput struct {
	RegisterInput
	BusinessName  string
	ServiceBranch string
	Rank          string
	ServiceNumber string
	Category      string
	Description   string
	City          string
	State         string
	Documents     []domain.DocumentUpload
}

func (i *RegisterSellerInput) normalize() {
	i.RegisterInput.normalize()
	i.BusinessName = strings.TrimSpace(i.BusinessName)
	i.ServiceBranch = strings.TrimSpace(i.ServiceBranch)
	i.Rank = strings.TrimSpace(i.Rank)
	i.ServiceNumber = strings.TrimSpace(i.ServiceNumber)
	i.Category = strings.TrimSpace(i.Category)
	i.Description = strings.TrimSpace(i.Description)
	i.City = strings.TrimSpace(i.City)
	i.State = strings.TrimSpace(i.State)
}

// Validate validates the seller registration input.
func (i RegisterSellerInput) Validate() error {
	errs := i.RegisterInput.fieldErrors()

	if i.BusinessName == "" {
		errs = append(errs, domain.FieldError{Field: "businessName", Message: "required"})
	} else if utf8.RuneCountInString(i.BusinessName) > 200 {
		errs = append(errs, domain.FieldError{Field: "businessName", Message: "too long"})
	}
	if i.ServiceBranch == "" {
		errs = append(errs, domain.FieldError{Field: "serviceBranch", Message: "required"})
	}
	if i.Category == "" {
		errs = append(errs, domain.FieldError{Field: "category", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for email + password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > maxPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.RefreshToken == "" {
		errs = append(errs, domain.FieldError{Field: "refreshToken", Message: "required"})
	} else if len(i.RefreshToken) > 512 {
		errs = append(errs, domain.FieldError{Field: "refreshToken", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateProfileInput holds account fields a user may change.
type UpdateProfileInput struct {
	Name  *string
	Phone *string
}

// Validate validates the profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Name != nil {
		n := strings.TrimSpace(*i.Name)
		if n == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
		} else if utf8.RuneCountInString(n) > maxNameLength {
			errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
		}
	}
	if i.Phone != nil && len(strings.TrimSpace(*i.Phone)) > maxPhoneLength {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
