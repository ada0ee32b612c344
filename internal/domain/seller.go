package domain

import (
	"time"

	"github.com/google/uuid"
)

// Seller is the ESM seller profile attached to a seller user.
type Seller struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	BusinessName    string
	ServiceBranch   string
	Rank            string
	ServiceNumber   string
	Category        string
	Description     string
	City            string
	State           string
	IsVerified      bool
	Status          SellerStatus
	RejectionReason string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CanList reports whether the seller may publish listings.
func (s *Seller) CanList() bool {
	return s.IsVerified && s.Status == SellerStatusActive
}

// SellerWithUser joins a seller profile with its account contact fields.
type SellerWithUser struct {
	Seller
	Name  string
	Email string
	Phone string
}

// SellerFilter holds admin seller list filters.
type SellerFilter struct {
	Status *SellerStatus
	Search string
	PageRequest
}
