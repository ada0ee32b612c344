package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
	"github.com/limopeace/beatlenut-trails-sub002/pkg/ctxutil"
)

// List returns a page of the caller's notifications, newest first.
func (s *Service) List(ctx context.Context, input ListInput) (domain.Page[domain.Notification], error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Page[domain.Notification]{}, domain.ErrUnauthorized
	}

	page := input.PageRequest.Normalize()
	items, total, err := s.repo.ListForUser(ctx, userID, input.UnreadOnly, page)
	if err != nil {
		return domain.Page[domain.Notification]{}, fmt.Errorf("notification.List: %w", err)
	}
	return domain.NewPage(items, total, page), nil
}

// MarkRead marks one of the caller's notifications read. A notification of
// another user is reported as not found.
func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := s.repo.MarkRead(ctx, id, userID); err != nil {
		return fmt.Errorf("notification.MarkRead: %w", err)
	}
	return nil
}

// MarkAllRead marks every unread notification of the caller read and
// returns how many changed.
func (s *Service) MarkAllRead(ctx context.Context) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}
	n, err := s.repo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("notification.MarkAllRead: %w", err)
	}
	return n, nil
}

// UnreadCount returns the number of unread notifications of the caller.
func (s *Service) UnreadCount(ctx context.Context) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}
	n, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("notification.UnreadCount: %w", err)
	}
	return n, nil
}

// Delete removes one of the caller's notifications.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return fmt.Errorf("notification.Delete: %w", err)
	}
	return nil
}
