package seller

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

// CurrentSeller resolves the seller profile of the authenticated user.
// Returns ErrForbidden when the user has no seller profile.
func (s *Service) CurrentSeller(ctx context.Context) (*domain.Seller, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	seller, err := s.sellers.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrForbidden
		}
		return nil, fmt.Errorf("seller.CurrentSeller: %w", err)
	}
	return seller, nil
}

// GetProfile returns the current seller's profile with account contact fields.
func (s *Service) GetProfile(ctx context.Context) (*domain.SellerWithUser, error) {
	seller, err := s.CurrentSeller(ctx)
	if err != nil {
		return nil, err
	}
	full, err := s.sellers.GetWithUser(ctx, seller.ID)
	if err != nil {
		return nil, fmt.Errorf("seller.GetProfile: %w", err)
	}
	return full, nil
}

// UpdateProfile edits the current seller's profile. Verification state and
// status are not editable here.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.Seller, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	seller, err := s.CurrentSeller(ctx)
	if err != nil {
		return nil, err
	}

	input.apply(seller)
	seller.UpdatedAt = time.Now().UTC()

	if err := s.sellers.UpdateProfile(ctx, seller); err != nil {
		return nil, fmt.Errorf("seller.UpdateProfile: %w", err)
	}
	return seller, nil
}

// SubmitDocuments opens a document_verification approval for documents the
// current seller uploads after registration.
func (s *Service) SubmitDocuments(ctx context.Context, docs []domain.DocumentUpload) (*domain.Approval, error) {
	seller, err := s.CurrentSeller(ctx)
	if err != nil {
		return nil, err
	}
	a, err := s.approvals.CreateDocumentApproval(ctx, seller.ID, docs)
	if err != nil {
		return nil, fmt.Errorf("seller.SubmitDocuments: %w", err)
	}
	return a, nil
}

// GetPublic returns the storefront of an active seller. Sellers in any other
// state are reported as not found.
func (s *Service) GetPublic(ctx context.Context, id uuid.UUID) (*PublicPage, error) {
	full, err := s.sellers.GetWithUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("seller.GetPublic: %w", err)
	}
	if full.Status != domain.SellerStatusActive {
		return nil, fmt.Errorf("seller.GetPublic: %w", domain.ErrNotFound)
	}

	page := &PublicPage{Seller: *full}
	// The private contact fields stay off the public page.
	page.Seller.Phone = ""
	page.Seller.ServiceNumber = ""

	rating, err := s.reviews.SellerSummary(ctx, id)
	if err != nil {
		s.log.WarnContext(ctx, "seller rating unavailable",
			slog.String("seller_id", id.String()),
			slog.String("error", err.Error()))
	} else {
		page.Rating = rating
	}
	return page, nil
}

// List returns sellers for the admin back office.
func (s *Service) List(ctx context.Context, input ListInput) (domain.Page[domain.SellerWithUser], error) {
	if err := input.Validate(); err != nil {
		return domain.Page[domain.SellerWithUser]{}, err
	}
	f := domain.SellerFilter{
		Search:      strings.TrimSpace(input.Search),
		PageRequest: input.PageRequest.Normalize(),
	}
	if input.Status != "" {
		st := domain.SellerStatus(input.Status)
		f.Status = &st
	}

	items, total, err := s.sellers.List(ctx, f)
	if err != nil {
		return domain.Page[domain.SellerWithUser]{}, fmt.Errorf("seller.List: %w", err)
	}
	return domain.NewPage(items, total, f.PageRequest), nil
}

// SetStatus suspends an active seller or reactivates a suspended one.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, input SetStatusInput) (*domain.SellerWithUser, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	target := domain.SellerStatus(input.Status)

	full, err := s.sellers.GetWithUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("seller.SetStatus: %w", err)
	}

	switch {
	case full.Status == target:
		return nil, domain.NewStateError("Seller is already %s", target)
	case target == domain.SellerStatusSuspended && full.Status != domain.SellerStatusActive:
		return nil, domain.NewStateError("Only active sellers can be suspended")
	case target == domain.SellerStatusActive && full.Status != domain.SellerStatusSuspended:
		return nil, domain.NewStateError("Only suspended sellers can be reactivated")
	}

	if err := s.sellers.SetStatus(ctx, id, target); err != nil {
		return nil, fmt.Errorf("seller.SetStatus: %w", err)
	}
	full.Status = target

	msg := "Your seller account has been reactivated."
	if target == domain.SellerStatusSuspended {
		msg = "Your seller account has been suspended."
		if r := strings.TrimSpace(input.Reason); r != "" {
			msg += " Reason: " + r
		}
	}
	s.notify.Notify(ctx, domain.Notification{
		UserID:  full.UserID,
		Type:    domain.NotificationTypeSystem,
		Title:   "Account status updated",
		Message: msg,
	})

	s.log.InfoContext(ctx, "seller status changed",
		slog.String("seller_id", id.String()),
		slog.String("status", target.String()))
	return full, nil
}
