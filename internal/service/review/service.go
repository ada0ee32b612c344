package review

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

type reviewRepo interface {
	Create(ctx context.Context, rv *domain.Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.ReviewStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByItem(ctx context.Context, itemID uuid.UUID, p domain.PageRequest) ([]domain.Review, int, error)
	Summary(ctx context.Context, itemID uuid.UUID) (domain.ReviewSummary, error)
}

type productRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
}

type serviceRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ServiceListing, error)
}

type sellerRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Seller, error)
}

// Service implements listing reviews.
type Service struct {
	log      *slog.Logger
	reviews  reviewRepo
	products productRepo
	services serviceRepo
	sellers  sellerRepo
}

// NewService creates a new review service instance.
func NewService(logger *slog.Logger, reviews reviewRepo, products productRepo, services serviceRepo, sellers sellerRepo) *Service {
	return &Service{
		log:      logger.With("service", "review"),
		reviews:  reviews,
		products: products,
		services: services,
		sellers:  sellers,
	}
}

// ItemReviews is one page of an item's reviews with the overall summary.
type ItemReviews struct {
	Page    domain.Page[domain.Review]
	Summary domain.ReviewSummary
}
