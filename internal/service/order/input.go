package order

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

const (
	maxQuantity      = 1000
	maxAddressLength = 500
	maxNoteLength    = 1000
)

// CreateInput holds a buyer's order for a single product.
type CreateInput struct {
	ProductID       uuid.UUID
	Quantity        int
	ShippingAddress string
	PaymentMethod   string
	Notes           string
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.ProductID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "productId", Message: "required"})
	}
	if i.Quantity < 1 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be at least 1"})
	} else if i.Quantity > maxQuantity {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "too large"})
	}
	if a := strings.TrimSpace(i.ShippingAddress); a == "" {
		errs = append(errs, domain.FieldError{Field: "shippingAddress", Message: "required"})
	} else if utf8.RuneCountInString(a) > maxAddressLength {
		errs = append(errs, domain.FieldError{Field: "shippingAddress", Message: "too long"})
	}
	if utf8.RuneCountInString(i.Notes) > maxNoteLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// StatusInput moves an order along its lifecycle.
type StatusInput struct {
	Status string
	Note   string
}

// Validate validates the status input.
func (i StatusInput) Validate() error {
	var errs []domain.FieldError
	if !domain.OrderStatus(i.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid order status"})
	}
	if utf8.RuneCountInString(i.Note) > maxNoteLength {
		errs = append(errs, domain.FieldError{Field: "note", Message: "too long"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// PaymentInput records a payment status change.
type PaymentInput struct {
	Status        string
	PaymentMethod string
	Note          string
}

// Validate validates the payment input.
func (i PaymentInput) Validate() error {
	var errs []domain.FieldError
	if !domain.PaymentStatus(i.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "paymentStatus", Message: "invalid payment status"})
	}
	if utf8.RuneCountInString(i.Note) > maxNoteLength {
		errs = append(errs, domain.FieldError{Field: "note", Message: "too long"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// TrackingInput sets the shipment carrier and tracking number.
type TrackingInput struct {
	TrackingNumber string
	Carrier        string
}

// Validate validates the tracking input.
func (i TrackingInput) Validate() error {
	var errs []domain.FieldError
	if n := strings.TrimSpace(i.TrackingNumber); n == "" {
		errs = append(errs, domain.FieldError{Field: "trackingNumber", Message: "required"})
	} else if len(n) > 100 {
		errs = append(errs, domain.FieldError{Field: "trackingNumber", Message: "too long"})
	}
	if len(strings.TrimSpace(i.Carrier)) > 100 {
		errs = append(errs, domain.FieldError{Field: "carrier", Message: "too long"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds order list filters.
type ListInput struct {
	Status        string
	PaymentStatus string
	Search        string
	From          *time.Time
	To            *time.Time
	domain.PageRequest
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Status != "" && !domain.OrderStatus(i.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid order status"})
	}
	if i.PaymentStatus != "" && !domain.PaymentStatus(i.PaymentStatus).IsValid() {
		errs = append(errs, domain.FieldError{Field: "paymentStatus", Message: "invalid payment status"})
	}
	if i.From != nil && i.To != nil && i.To.Before(*i.From) {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must not be before from"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ListInput) filter() domain.OrderFilter {
	f := domain.OrderFilter{
		Search:      strings.TrimSpace(i.Search),
		From:        i.From,
		To:          i.To,
		PageRequest: i.PageRequest.Normalize(),
	}
	if i.Status != "" {
		st := domain.OrderStatus(i.Status)
		f.Status = &st
	}
	if i.PaymentStatus != "" {
		ps := domain.PaymentStatus(i.PaymentStatus)
		f.PaymentStatus = &ps
	}
	return f
}
