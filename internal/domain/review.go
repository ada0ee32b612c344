package domain

import (
	"time"

	"github.com/google/uuid"
)

// Review is a buyer's rating of a product or service listing.
type Review struct {
	ID         uuid.UUID
	ReviewerID uuid.UUID
	Item       ListingRef
	Rating     int
	Comment    string
	Status     ReviewStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ReviewSummary aggregates the visible reviews of one item.
type ReviewSummary struct {
	Count   int
	Average float64
}
