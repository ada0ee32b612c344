package domain

import (
	"time"

	"github.com/google/uuid"
)

// HistoryKind tells which order attribute a history entry records.
type HistoryKind string

const (
	HistoryKindStatus   HistoryKind = "status"
	HistoryKindPayment  HistoryKind = "payment"
	HistoryKindTracking HistoryKind = "tracking"
)

// OrderHistoryEntry is one audit record in an order's status history.
type OrderHistoryEntry struct {
	Kind      HistoryKind
	Value     string
	Note      string
	ChangedBy uuid.UUID
	ChangedAt time.Time
}

// Order is a purchase of a single product.
type Order struct {
	ID              uuid.UUID
	OrderNumber     string
	BuyerID         uuid.UUID
	SellerID        uuid.UUID
	ProductID       uuid.UUID
	ProductName     string
	Quantity        int
	UnitPrice       float64
	TotalAmount     float64
	ShippingAddress string
	Status          OrderStatus
	PaymentStatus   PaymentStatus
	PaymentMethod   string
	TrackingNumber  string
	Carrier         string
	Notes           string
	StatusHistory   []OrderHistoryEntry
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:   {OrderStatusDelivered},
}

// CanTransition reports whether the order may move to the given status.
func (o *Order) CanTransition(to OrderStatus) bool {
	for _, s := range orderTransitions[o.Status] {
		if s == to {
			return true
		}
	}
	return false
}

// Record appends an entry to the status history.
func (o *Order) Record(kind HistoryKind, value, note string, by uuid.UUID, at time.Time) {
	o.StatusHistory = append(o.StatusHistory, OrderHistoryEntry{
		Kind:      kind,
		Value:     value,
		Note:      note,
		ChangedBy: by,
		ChangedAt: at,
	})
	o.UpdatedAt = at
}

// OrderFilter filters order lists. BuyerID/SellerID scope the list to a party.
type OrderFilter struct {
	BuyerID       *uuid.UUID
	SellerID      *uuid.UUID
	Status        *OrderStatus
	PaymentStatus *PaymentStatus
	Search        string
	From          *time.Time
	To            *time.Time
	PageRequest
}
