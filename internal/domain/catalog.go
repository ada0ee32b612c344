package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product is a physical item offered by a seller.
type Product struct {
	ID              uuid.UUID
	SellerID        uuid.UUID
	Name            string
	Description     string
	Category        string
	Price           float64
	Stock           int
	Images          []string
	Status          ListingStatus
	RejectionReason string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ServiceListing is a service offered by a seller (security, transport, consulting...).
type ServiceListing struct {
	ID              uuid.UUID
	SellerID        uuid.UUID
	Name            string
	Description     string
	Category        string
	PriceFrom       float64
	PriceUnit       string
	ServiceArea     string
	Images          []string
	Status          ListingStatus
	RejectionReason string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ListingFilter filters products and service listings.
type ListingFilter struct {
	Status    *ListingStatus
	Category  string
	Search    string
	SellerID  *uuid.UUID
	MinPrice  *float64
	MaxPrice  *float64
	SortBy    string
	SortOrder SortOrder
	PageRequest
}
