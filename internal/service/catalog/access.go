package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
	"github.com/limopeace/beatlenut-trails-sub002/pkg/ctxutil"
)

// currentSeller resolves the caller's seller profile. Callers without one
// get ErrForbidden.
func (s *Service) currentSeller(ctx context.Context) (*domain.Seller, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	seller, err := s.sellers.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrForbidden
		}
		return nil, fmt.Errorf("get seller: %w", err)
	}
	return seller, nil
}

// listingSeller returns the caller's seller profile when it may publish.
func (s *Service) listingSeller(ctx context.Context) (*domain.Seller, error) {
	seller, err := s.currentSeller(ctx)
	if err != nil {
		return nil, err
	}
	if !seller.CanList() {
		return nil, domain.NewStateError("Only verified active sellers can create listings")
	}
	return seller, nil
}

// ownsListing reports whether the caller is the listing's seller. Errors
// other than a missing seller profile are returned.
func (s *Service) ownsListing(ctx context.Context, sellerID uuid.UUID) (bool, error) {
	seller, err := s.currentSeller(ctx)
	switch {
	case err == nil:
		return seller.ID == sellerID, nil
	case errors.Is(err, domain.ErrForbidden), errors.Is(err, domain.ErrUnauthorized):
		return false, nil
	default:
		return false, err
	}
}

// canSeeListing applies listing visibility: active listings are public, the
// rest are visible to their seller and admins only.
func (s *Service) canSeeListing(ctx context.Context, status domain.ListingStatus, sellerID uuid.UUID) (bool, error) {
	if status == domain.ListingStatusActive || ctxutil.IsAdminCtx(ctx) {
		return true, nil
	}
	return s.ownsListing(ctx, sellerID)
}

// resubmits reports whether an edit must go back to moderation.
func resubmits(status domain.ListingStatus) bool {
	return status == domain.ListingStatusRejected
}
