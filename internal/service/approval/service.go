package approval

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/config"
	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

// approvalRepo defines the approval repository interface needed by the service.
type approvalRepo interface {
	Create(ctx context.Context, a *domain.Approval) error
	GetDetail(ctx context.Context, id uuid.UUID) (*domain.ApprovalDetail, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Approval, error)
	List(ctx context.Context, f domain.ApprovalFilter) ([]domain.ApprovalDetail, int, error)
	ListAll(ctx context.Context, f domain.ApprovalFilter, max int) ([]domain.ApprovalDetail, error)
	Decide(ctx context.Context, a *domain.Approval) error
	UpdateDocuments(ctx context.Context, a *domain.Approval) error
	PendingStats(ctx context.Context) (domain.ApprovalStats, error)
	HasPending(ctx context.Context, typ domain.ApprovalType, refID uuid.UUID) (bool, error)
}

// sellerRepo defines the seller operations the approval cascade needs.
type sellerRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Seller, error)
	SetVerification(ctx context.Context, id uuid.UUID, verified bool, status domain.SellerStatus, reason string) error
}

// productRepo defines the product operations the approval cascade needs.
type productRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.ListingStatus, reason string) error
}

// serviceRepo defines the service listing operations the approval cascade needs.
type serviceRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ServiceListing, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.ListingStatus, reason string) error
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// notifier delivers best-effort in-app notifications.
type notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

// Service implements the admin approval workflow.
type Service struct {
	log       *slog.Logger
	approvals approvalRepo
	sellers   sellerRepo
	products  productRepo
	services  serviceRepo
	tx        txManager
	notify    notifier
	cfg       config.MarketplaceConfig
	now       func() time.Time
}

// NewService creates a new approval service instance.
func NewService(
	logger *slog.Logger,
	approvals approvalRepo,
	sellers sellerRepo,
	products productRepo,
	services serviceRepo,
	tx txManager,
	notify notifier,
	cfg config.MarketplaceConfig,
) *Service {
	return &Service{
		log:       logger.With("service", "approval"),
		approvals: approvals,
		sellers:   sellers,
		products:  products,
		services:  services,
		tx:        tx,
		notify:    notify,
		cfg:       cfg,
		now:       func() time.Time { return time.Now().UTC() },
	}
}
