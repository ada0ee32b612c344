package notification

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

// notificationRepo defines the notification repository interface needed by the service.
type notificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListForUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, p domain.PageRequest) ([]domain.Notification, int, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

// publisher pushes realtime events to connected clients.
type publisher interface {
	Publish(ctx context.Context, ev domain.Event) error
}

// Service implements in-app notifications.
type Service struct {
	log    *slog.Logger
	repo   notificationRepo
	events publisher
}

// NewService creates a new notification service instance.
func NewService(logger *slog.Logger, repo notificationRepo, events publisher) *Service {
	return &Service{
		log:    logger.With("service", "notification"),
		repo:   repo,
		events: events,
	}
}

// eventData is the realtime payload of a new notification.
func eventData(n *domain.Notification) map[string]any {
	return map[string]any{
		"id":        n.ID,
		"type":      n.Type,
		"title":     n.Title,
		"message":   n.Message,
		"link":      n.Link,
		"createdAt": n.CreatedAt,
	}
}
