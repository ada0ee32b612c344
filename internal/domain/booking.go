package domain

import (
	"time"

	"github.com/google/uuid"
)

// Booking reserves a service listing for a point in time.
type Booking struct {
	ID          uuid.UUID
	ServiceID   uuid.UUID
	BuyerID     uuid.UUID
	SellerID    uuid.UUID
	ScheduledAt time.Time
	Notes       string
	Status      BookingStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCompleted, BookingStatusCancelled},
}

// CanTransition reports whether the booking may move to the given status.
func (b *Booking) CanTransition(to BookingStatus) bool {
	for _, s := range bookingTransitions[b.Status] {
		if s == to {
			return true
		}
	}
	return false
}

// BookingFilter filters booking lists.
type BookingFilter struct {
	BuyerID  *uuid.UUID
	SellerID *uuid.UUID
	Status   *BookingStatus
	PageRequest
}
