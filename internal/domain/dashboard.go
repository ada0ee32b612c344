package domain

import "time"

// StatusCounts maps a status value to the number of rows in that status.
type StatusCounts map[string]int

// Total sums all counters.
func (c StatusCounts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// AdminDashboard is the back-office overview.
type AdminDashboard struct {
	Users       StatusCounts
	Sellers     StatusCounts
	Products    StatusCounts
	Services    StatusCounts
	Orders      StatusCounts
	Revenue     float64
	Approvals   ApprovalStats
	GeneratedAt time.Time
}

// SellerDashboard is the seller portal overview.
type SellerDashboard struct {
	Products            StatusCounts
	Services            StatusCounts
	Orders              StatusCounts
	Revenue             float64
	UnreadConversations int
	PendingBookings     int
	Rating              ReviewSummary
	GeneratedAt         time.Time
}
