package booking

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

type bookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.BookingStatus, now time.Time) error
	List(ctx context.Context, f domain.BookingFilter) ([]domain.Booking, int, error)
}

type serviceRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ServiceListing, error)
}

type sellerRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Seller, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Seller, error)
}

type notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

// Service implements service listing bookings.
type Service struct {
	log      *slog.Logger
	bookings bookingRepo
	services serviceRepo
	sellers  sellerRepo
	notify   notifier
	now      func() time.Time
}

// NewService creates a new booking service instance.
func NewService(
	logger *slog.Logger,
	bookings bookingRepo,
	services serviceRepo,
	sellers sellerRepo,
	notify notifier,
) *Service {
	return &Service{
		log:      logger.With("service", "booking"),
		bookings: bookings,
		services: services,
		sellers:  sellers,
		notify:   notify,
		now:      func() time.Time { return time.Now().UTC() },
	}
}
