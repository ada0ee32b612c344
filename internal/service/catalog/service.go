package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/config"
	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

type productRepo interface {
	Create(ctx context.Context, p *domain.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f domain.ListingFilter) ([]domain.Product, int, error)
}

type serviceRepo interface {
	Create(ctx context.Context, s *domain.ServiceListing) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ServiceListing, error)
	Update(ctx context.Context, s *domain.ServiceListing) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, f domain.ListingFilter) ([]domain.ServiceListing, int, error)
}

type sellerRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Seller, error)
}

// listingApprovals opens the moderation request for a new or resubmitted listing.
type listingApprovals interface {
	CreateProductApproval(ctx context.Context, productID uuid.UUID) (*domain.Approval, error)
	CreateServiceApproval(ctx context.Context, serviceID uuid.UUID) (*domain.Approval, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements product and service listing operations.
type Service struct {
	log       *slog.Logger
	products  productRepo
	services  serviceRepo
	sellers   sellerRepo
	approvals listingApprovals
	tx        txManager
	cfg       config.MarketplaceConfig
	now       func() time.Time
}

// NewService creates a new catalog service instance.
func NewService(
	logger *slog.Logger,
	products productRepo,
	services serviceRepo,
	sellers sellerRepo,
	approvals listingApprovals,
	tx txManager,
	cfg config.MarketplaceConfig,
) *Service {
	return &Service{
		log:       logger.With("service", "catalog"),
		products:  products,
		services:  services,
		sellers:   sellers,
		approvals: approvals,
		tx:        tx,
		cfg:       cfg,
		now:       func() time.Time { return time.Now().UTC() },
	}
}
