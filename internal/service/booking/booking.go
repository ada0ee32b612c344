package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
	"github.com/limopeace/beatlenut-trails-sub002/pkg/ctxutil"
)

// Create books an active service listing for a future time and notifies
// the seller.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Booking, error) {
	buyerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	now := s.now()
	if err := input.Validate(now); err != nil {
		return nil, err
	}

	listing, err := s.services.GetByID(ctx, input.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("booking.Create: %w", err)
	}
	if listing.Status != domain.ListingStatusActive {
		return nil, domain.NewStateError("Service is not available")
	}

	seller, err := s.sellers.GetByID(ctx, listing.SellerID)
	if err != nil {
		return nil, fmt.Errorf("booking.Create seller: %w", err)
	}
	if seller.UserID == buyerID {
		return nil, domain.NewStateError("You cannot book your own service")
	}

	b := &domain.Booking{
		ID:          uuid.New(),
		ServiceID:   listing.ID,
		BuyerID:     buyerID,
		SellerID:    listing.SellerID,
		ScheduledAt: input.ScheduledAt.UTC(),
		Notes:       strings.TrimSpace(input.Notes),
		Status:      domain.BookingStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("booking.Create: %w", err)
	}

	s.notify.Notify(ctx, domain.Notification{
		UserID:  seller.UserID,
		Type:    domain.NotificationTypeBooking,
		Title:   "New booking request",
		Message: fmt.Sprintf("%s on %s", listing.Name, b.ScheduledAt.Format("02 Jan 2006 15:04")),
		Link:    "/seller/bookings/" + b.ID.String(),
	})

	s.log.InfoContext(ctx, "booking created",
		slog.String("booking_id", b.ID.String()),
		slog.String("service_id", listing.ID.String()))
	return b, nil
}

// Confirm accepts a pending booking. Seller only.
func (s *Service) Confirm(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	return s.transition(ctx, id, domain.BookingStatusConfirmed)
}

// Complete marks a confirmed booking as done. Seller only.
func (s *Service) Complete(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	return s.transition(ctx, id, domain.BookingStatusCompleted)
}

// Cancel cancels a pending or confirmed booking. Allowed for the buyer and
// the seller.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	return s.transition(ctx, id, domain.BookingStatusCancelled)
}

func (s *Service) transition(ctx context.Context, id uuid.UUID, to domain.BookingStatus) (*domain.Booking, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("booking.transition: %w", err)
	}

	isSeller, err := s.isSeller(ctx, userID, b.SellerID)
	if err != nil {
		return nil, fmt.Errorf("booking.transition: %w", err)
	}
	isBuyer := b.BuyerID == userID
	if !isSeller && !(isBuyer && to == domain.BookingStatusCancelled) {
		return nil, domain.ErrForbidden
	}

	if !b.CanTransition(to) {
		return nil, domain.NewStateError("Cannot change booking status from %s to %s", b.Status, to)
	}

	now := s.now()
	if err := s.bookings.UpdateStatus(ctx, b.ID, b.Status, to, now); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.NewStateError("Booking was modified concurrently")
		}
		return nil, fmt.Errorf("booking.transition: %w", err)
	}
	b.Status = to
	b.UpdatedAt = now

	msg := fmt.Sprintf("Booking for %s is now %s", b.ScheduledAt.Format("02 Jan 2006 15:04"), to)
	if isSeller {
		s.notify.Notify(ctx, domain.Notification{
			UserID:  b.BuyerID,
			Type:    domain.NotificationTypeBooking,
			Title:   "Booking " + to.String(),
			Message: msg,
			Link:    "/bookings/" + b.ID.String(),
		})
	} else if seller, err := s.sellers.GetByID(ctx, b.SellerID); err == nil {
		s.notify.Notify(ctx, domain.Notification{
			UserID:  seller.UserID,
			Type:    domain.NotificationTypeBooking,
			Title:   "Booking " + to.String(),
			Message: msg,
			Link:    "/seller/bookings/" + b.ID.String(),
		})
	}
	return b, nil
}

func (s *Service) isSeller(ctx context.Context, userID, sellerID uuid.UUID) (bool, error) {
	seller, err := s.sellers.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return seller.ID == sellerID, nil
}

// Get returns a booking to its buyer, its seller or an admin.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("booking.Get: %w", err)
	}
	if ctxutil.IsAdminCtx(ctx) || b.BuyerID == userID {
		return b, nil
	}
	isSeller, err := s.isSeller(ctx, userID, b.SellerID)
	if err != nil {
		return nil, fmt.Errorf("booking.Get: %w", err)
	}
	if !isSeller {
		return nil, domain.ErrForbidden
	}
	return b, nil
}

// List returns bookings scoped like orders: admins see all, sellers their
// incoming bookings and everyone else their own. asBuyer forces the latter.
func (s *Service) List(ctx context.Context, input ListInput, asBuyer bool) (domain.Page[domain.Booking], error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Page[domain.Booking]{}, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return domain.Page[domain.Booking]{}, err
	}

	f := domain.BookingFilter{PageRequest: input.PageRequest.Normalize()}
	if input.Status != "" {
		st := domain.BookingStatus(input.Status)
		f.Status = &st
	}

	switch {
	case asBuyer:
		f.BuyerID = &userID
	case ctxutil.IsAdminCtx(ctx):
		// unscoped
	default:
		seller, err := s.sellers.GetByUserID(ctx, userID)
		switch {
		case err == nil:
			f.SellerID = &seller.ID
		case errors.Is(err, domain.ErrNotFound):
			f.BuyerID = &userID
		default:
			return domain.Page[domain.Booking]{}, fmt.Errorf("booking.List: %w", err)
		}
	}

	items, total, err := s.bookings.List(ctx, f)
	if err != nil {
		return domain.Page[domain.Booking]{}, fmt.Errorf("booking.List: %w", err)
	}
	return domain.NewPage(items, total, f.PageRequest), nil
}
