package notification

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

// Notify stores a notification and pushes it to the user. Failures are
// logged and swallowed so that callers can fire and forget.
func (s *Service) Notify(ctx context.Context, n domain.Notification) {
	if _, err := s.create(ctx, &n); err != nil {
		s.log.WarnContext(ctx, "notification dropped",
			slog.String("user_id", n.UserID.String()),
			slog.String("type", n.Type.String()),
			slog.String("error", err.Error()))
	}
}

// Create validates and stores a notification, then publishes a realtime
// event to its recipient.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Notification, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	n := &domain.Notification{
		UserID:  input.UserID,
		Type:    input.Type,
		Title:   strings.TrimSpace(input.Title),
		Message: strings.TrimSpace(input.Message),
		Link:    strings.TrimSpace(input.Link),
	}
	created, err := s.create(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("notification.Create: %w", err)
	}
	return created, nil
}

func (s *Service) create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	n.IsRead = false

	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}

	ev := domain.Event{
		Type:      domain.EventNotificationNew,
		UserID:    n.UserID,
		Data:      eventData(n),
		CreatedAt: n.CreatedAt,
	}
	if err := s.events.Publish(ctx, ev); err != nil {
		s.log.WarnContext(ctx, "publish notification event",
			slog.String("user_id", n.UserID.String()),
			slog.String("error", err.Error()))
	}
	return n, nil
}
