package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
	"github.com/limopeace/beatlenut-trails-sub002/pkg/ctxutil"
)

// CreateService stores a pending service listing and opens its
// service_listing approval in one transaction.
func (s *Service) CreateService(ctx context.Context, input ServiceInput) (*domain.ServiceListing, error) {
	input.normalize()
	if err := input.Validate(s.cfg); err != nil {
		return nil, err
	}
	seller, err := s.listingSeller(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.CreateService: %w", err)
	}

	now := s.now()
	l := &domain.ServiceListing{
		ID:          uuid.New(),
		SellerID:    seller.ID,
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		PriceFrom:   input.PriceFrom,
		PriceUnit:   input.PriceUnit,
		ServiceArea: input.ServiceArea,
		Images:      input.Images,
		Status:      domain.ListingStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.services.Create(txCtx, l); err != nil {
			return fmt.Errorf("create service: %w", err)
		}
		if _, err := s.approvals.CreateServiceApproval(txCtx, l.ID); err != nil {
			return fmt.Errorf("create approval: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("catalog.CreateService: %w", err)
	}

	s.log.InfoContext(ctx, "service submitted",
		slog.String("service_id", l.ID.String()),
		slog.String("seller_id", seller.ID.String()))
	return l, nil
}

// UpdateService replaces the editable fields of the caller's service
// listing. A rejected listing goes back to pending with a fresh approval.
func (s *Service) UpdateService(ctx context.Context, id uuid.UUID, input ServiceInput) (*domain.ServiceListing, error) {
	input.normalize()
	if err := input.Validate(s.cfg); err != nil {
		return nil, err
	}
	seller, err := s.currentSeller(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.UpdateService: %w", err)
	}

	l, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("catalog.UpdateService: %w", err)
	}
	if l.SellerID != seller.ID {
		return nil, domain.ErrForbidden
	}

	l.Name = input.Name
	l.Description = input.Description
	l.Category = input.Category
	l.PriceFrom = input.PriceFrom
	l.PriceUnit = input.PriceUnit
	l.ServiceArea = input.ServiceArea
	l.Images = input.Images
	l.UpdatedAt = s.now()

	resubmit := resubmits(l.Status)
	if resubmit {
		l.Status = domain.ListingStatusPending
		l.RejectionReason = ""
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.services.Update(txCtx, l); err != nil {
			return fmt.Errorf("update service: %w", err)
		}
		if resubmit {
			if _, err := s.approvals.CreateServiceApproval(txCtx, l.ID); err != nil {
				return fmt.Errorf("create approval: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("catalog.UpdateService: %w", err)
	}

	if resubmit {
		s.log.InfoContext(ctx, "service resubmitted", slog.String("service_id", l.ID.String()))
	}
	return l, nil
}

// DeleteService removes a service listing. Allowed for its seller and admins.
func (s *Service) DeleteService(ctx context.Context, id uuid.UUID) error {
	l, err := s.services.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("catalog.DeleteService: %w", err)
	}
	if !ctxutil.IsAdminCtx(ctx) {
		owns, err := s.ownsListing(ctx, l.SellerID)
		if err != nil {
			return fmt.Errorf("catalog.DeleteService: %w", err)
		}
		if !owns {
			return domain.ErrForbidden
		}
	}

	if err := s.services.Delete(ctx, id); err != nil {
		return fmt.Errorf("catalog.DeleteService: %w", err)
	}
	s.log.InfoContext(ctx, "service deleted", slog.String("service_id", id.String()))
	return nil
}

// GetService returns a service listing. Non-active listings are reported as
// not found to anyone but their seller and admins.
func (s *Service) GetService(ctx context.Context, id uuid.UUID) (*domain.ServiceListing, error) {
	l, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("catalog.GetService: %w", err)
	}
	ok, err := s.canSeeListing(ctx, l.Status, l.SellerID)
	if err != nil {
		return nil, fmt.Errorf("catalog.GetService: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("catalog.GetService: %w", domain.ErrNotFound)
	}
	return l, nil
}

// ListServices returns active service listings for the public catalog.
func (s *Service) ListServices(ctx context.Context, input ListInput) (domain.Page[domain.ServiceListing], error) {
	if err := input.Validate(); err != nil {
		return domain.Page[domain.ServiceListing]{}, err
	}
	f := input.filter()
	active := domain.ListingStatusActive
	f.Status = &active

	items, total, err := s.services.List(ctx, f)
	if err != nil {
		return domain.Page[domain.ServiceListing]{}, fmt.Errorf("catalog.ListServices: %w", err)
	}
	return domain.NewPage(items, total, f.PageRequest), nil
}

// ListOwnServices returns the caller's service listings in any status.
func (s *Service) ListOwnServices(ctx context.Context, input ListInput) (domain.Page[domain.ServiceListing], error) {
	if err := input.Validate(); err != nil {
		return domain.Page[domain.ServiceListing]{}, err
	}
	seller, err := s.currentSeller(ctx)
	if err != nil {
		return domain.Page[domain.ServiceListing]{}, fmt.Errorf("catalog.ListOwnServices: %w", err)
	}
	f := input.filter()
	f.SellerID = &seller.ID

	items, total, err := s.services.List(ctx, f)
	if err != nil {
		return domain.Page[domain.ServiceListing]{}, fmt.Errorf("catalog.ListOwnServices: %w", err)
	}
	return domain.NewPage(items, total, f.PageRequest), nil
}
