package order

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/config"
	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

type orderRepo interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	GetByNumber(ctx context.Context, number string) (*domain.Order, error)
	Save(ctx context.Context, o *domain.Order) error
	List(ctx context.Context, f domain.OrderFilter) ([]domain.Order, int, error)
	ListAll(ctx context.Context, f domain.OrderFilter, max int) ([]domain.Order, error)
}

type productRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	DecrementStock(ctx context.Context, id uuid.UUID, qty int) error
	RestoreStock(ctx context.Context, id uuid.UUID, qty int) error
}

type sellerRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Seller, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Seller, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

// Service implements order placement and fulfilment.
type Service struct {
	log      *slog.Logger
	orders   orderRepo
	products productRepo
	sellers  sellerRepo
	tx       txManager
	notify   notifier
	cfg      config.MarketplaceConfig
	now      func() time.Time
}

// NewService creates a new order service instance.
func NewService(
	logger *slog.Logger,
	orders orderRepo,
	products productRepo,
	sellers sellerRepo,
	tx txManager,
	notify notifier,
	cfg config.MarketplaceConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "order"),
		orders:   orders,
		products: products,
		sellers:  sellers,
		tx:       tx,
		notify:   notify,
		cfg:      cfg,
		now:      func() time.Time { return time.Now().UTC() },
	}
}
