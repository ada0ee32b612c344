package seller

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

type sellerRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Seller, error)
	GetWithUser(ctx context.Context, id uuid.UUID) (*domain.SellerWithUser, error)
	UpdateProfile(ctx context.Context, s *domain.Seller) error
	SetStatus(ctx context.Context, id uuid.UUID, status domain.SellerStatus) error
	List(ctx context.Context, f domain.SellerFilter) ([]domain.SellerWithUser, int, error)
}

type reviewStats interface {
	SellerSummary(ctx context.Context, sellerID uuid.UUID) (domain.ReviewSummary, error)
}

type documentApprovals interface {
	CreateDocumentApproval(ctx context.Context, sellerID uuid.UUID, docs []domain.DocumentUpload) (*domain.Approval, error)
}

type notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

// Service implements seller profile operations.
type Service struct {
	log       *slog.Logger
	sellers   sellerRepo
	reviews   reviewStats
	approvals documentApprovals
	notify    notifier
}

// NewService creates a new seller service instance.
func NewService(
	logger *slog.Logger,
	sellers sellerRepo,
	reviews reviewStats,
	approvals documentApprovals,
	notify notifier,
) *Service {
	return &Service{
		log:       logger.With("service", "seller"),
		sellers:   sellers,
		reviews:   reviews,
		approvals: approvals,
		notify:    notify,
	}
}

// PublicPage is what buyers see on a seller's storefront.
type PublicPage struct {
	Seller domain.SellerWithUser
	Rating domain.ReviewSummary
}
