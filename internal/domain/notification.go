package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an in-app notice for a single user.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      NotificationType
	Title     string
	Message   string
	Link      string
	IsRead    bool
	CreatedAt time.Time
}

// EventType names a realtime event pushed to connected clients.
type EventType string

const (
	EventMessageNew      EventType = "message.new"
	EventNotificationNew EventType = "notification.new"
)

// Event is a realtime payload addressed to one user.
type Event struct {
	Type      EventType
	UserID    uuid.UUID
	Data      any
	CreatedAt time.Time
}
