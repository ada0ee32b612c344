package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

type statsRepo interface {
	UsersByRole(ctx context.Context) (domain.StatusCounts, error)
	SellersByStatus(ctx context.Context) (domain.StatusCounts, error)
	ProductsByStatus(ctx context.Context, sellerID *uuid.UUID) (domain.StatusCounts, error)
	ServicesByStatus(ctx context.Context, sellerID *uuid.UUID) (domain.StatusCounts, error)
	OrdersByStatus(ctx context.Context, sellerID *uuid.UUID) (domain.StatusCounts, error)
	Revenue(ctx context.Context, sellerID *uuid.UUID) (float64, error)
	PendingBookings(ctx context.Context, sellerID uuid.UUID) (int, error)
}

type approvalStats interface {
	PendingStats(ctx context.Context) (domain.ApprovalStats, error)
}

type unreadCounter interface {
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
}

type reviewStats interface {
	SellerSummary(ctx context.Context, sellerID uuid.UUID) (domain.ReviewSummary, error)
}

type sellerRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Seller, error)
}

// Service builds the admin and seller overview screens.
type Service struct {
	log       *slog.Logger
	stats     statsRepo
	approvals approvalStats
	unread    unreadCounter
	reviews   reviewStats
	sellers   sellerRepo
	now       func() time.Time
}

// NewService creates a new dashboard service instance.
func NewService(
	logger *slog.Logger,
	stats statsRepo,
	approvals approvalStats,
	unread unreadCounter,
	reviews reviewStats,
	sellers sellerRepo,
) *Service {
	return &Service{
		log:       logger.With("service", "dashboard"),
		stats:     stats,
		approvals: approvals,
		unread:    unread,
		reviews:   reviews,
		sellers:   sellers,
		now:       func() time.Time { return time.Now().UTC() },
	}
}
