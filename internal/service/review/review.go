package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
	"github.com/limopeace/beatlenut-trails-sub002/pkg/ctxutil"
)

// Create stores a review of an active listing. Each user may review an item
// once; sellers cannot review their own listings.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Review, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	kind := domain.ItemKind(input.ItemKind)

	sellerID, status, err := s.listing(ctx, kind, input.ItemID)
	if err != nil {
		return nil, fmt.Errorf("review.Create: %w", err)
	}
	if status != domain.ListingStatusActive {
		return nil, domain.NewStateError("Only active listings can be reviewed")
	}

	own, err := s.sellers.GetByUserID(ctx, userID)
	switch {
	case err == nil && own.ID == sellerID:
		return nil, domain.NewStateError("You cannot review your own listing")
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("review.Create seller: %w", err)
	}

	now := time.Now().UTC()
	rv := &domain.Review{
		ID:         uuid.New(),
		ReviewerID: userID,
		Item:       domain.ListingRef{Kind: kind, ID: input.ItemID},
		Rating:     input.Rating,
		Comment:    strings.TrimSpace(input.Comment),
		Status:     domain.ReviewStatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.reviews.Create(ctx, rv); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.NewStateError("You have already reviewed this item")
		}
		return nil, fmt.Errorf("review.Create: %w", err)
	}

	s.log.InfoContext(ctx, "review created",
		slog.String("review_id", rv.ID.String()),
		slog.String("item_id", input.ItemID.String()),
		slog.Int("rating", rv.Rating))
	return rv, nil
}

func (s *Service) listing(ctx context.Context, kind domain.ItemKind, id uuid.UUID) (uuid.UUID, domain.ListingStatus, error) {
	if kind == domain.ItemKindProduct {
		p, err := s.products.GetByID(ctx, id)
		if err != nil {
			return uuid.Nil, "", err
		}
		return p.SellerID, p.Status, nil
	}
	l, err := s.services.GetByID(ctx, id)
	if err != nil {
		return uuid.Nil, "", err
	}
	return l.SellerID, l.Status, nil
}

// ListByItem returns visible reviews of an item with the rating summary.
func (s *Service) ListByItem(ctx context.Context, itemID uuid.UUID, p domain.PageRequest) (*ItemReviews, error) {
	p = p.Normalize()
	items, total, err := s.reviews.ListByItem(ctx, itemID, p)
	if err != nil {
		return nil, fmt.Errorf("review.ListByItem: %w", err)
	}
	summary, err := s.reviews.Summary(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("review.ListByItem summary: %w", err)
	}
	return &ItemReviews{Page: domain.NewPage(items, total, p), Summary: summary}, nil
}

// Delete removes a review. Allowed for its author and admins.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	rv, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("review.Delete: %w", err)
	}
	if rv.ReviewerID != userID && !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	if err := s.reviews.Delete(ctx, id); err != nil {
		return fmt.Errorf("review.Delete: %w", err)
	}
	return nil
}

// SetHidden hides or restores a review. Admin only.
func (s *Service) SetHidden(ctx context.Context, id uuid.UUID, hidden bool) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	status := domain.ReviewStatusActive
	if hidden {
		status = domain.ReviewStatusHidden
	}
	if err := s.reviews.SetStatus(ctx, id, status); err != nil {
		return fmt.Errorf("review.SetHidden: %w", err)
	}
	s.log.InfoContext(ctx, "review visibility changed",
		slog.String("review_id", id.String()),
		slog.Bool("hidden", hidden))
	return nil
}
