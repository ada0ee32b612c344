package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
	"github.com/limopeace/beatlenut-trails-sub002/pkg/ctxutil"
)

// CreateProduct stores a pending product and opens its product_listing
// approval in one transaction.
func (s *Service) CreateProduct(ctx context.Context, input ProductInput) (*domain.Product, error) {
	input.normalize()
	if err := input.Validate(s.cfg); err != nil {
		return nil, err
	}
	seller, err := s.listingSeller(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.CreateProduct: %w", err)
	}

	now := s.now()
	p := &domain.Product{
		ID:          uuid.New(),
		SellerID:    seller.ID,
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		Stock:       input.Stock,
		Images:      input.Images,
		Status:      domain.ListingStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.products.Create(txCtx, p); err != nil {
			return fmt.Errorf("create product: %w", err)
		}
		if _, err := s.approvals.CreateProductApproval(txCtx, p.ID); err != nil {
			return fmt.Errorf("create approval: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("catalog.CreateProduct: %w", err)
	}

	s.log.InfoContext(ctx, "product submitted",
		slog.String("product_id", p.ID.String()),
		slog.String("seller_id", seller.ID.String()))
	return p, nil
}

// UpdateProduct replaces the editable fields of the caller's product. A
// rejected product goes back to pending with a fresh approval.
func (s *Service) UpdateProduct(ctx context.Context, id uuid.UUID, input ProductInput) (*domain.Product, error) {
	input.normalize()
	if err := input.Validate(s.cfg); err != nil {
		return nil, err
	}
	seller, err := s.currentSeller(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.UpdateProduct: %w", err)
	}

	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("catalog.UpdateProduct: %w", err)
	}
	if p.SellerID != seller.ID {
		return nil, domain.ErrForbidden
	}

	p.Name = input.Name
	p.Description = input.Description
	p.Category = input.Category
	p.Price = input.Price
	p.Stock = input.Stock
	p.Images = input.Images
	p.UpdatedAt = s.now()

	resubmit := resubmits(p.Status)
	if resubmit {
		p.Status = domain.ListingStatusPending
		p.RejectionReason = ""
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.products.Update(txCtx, p); err != nil {
			return fmt.Errorf("update product: %w", err)
		}
		if resubmit {
			if _, err := s.approvals.CreateProductApproval(txCtx, p.ID); err != nil {
				return fmt.Errorf("create approval: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("catalog.UpdateProduct: %w", err)
	}

	if resubmit {
		s.log.InfoContext(ctx, "product resubmitted", slog.String("product_id", p.ID.String()))
	}
	return p, nil
}

// DeleteProduct removes a product. Allowed for its seller and admins.
func (s *Service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("catalog.DeleteProduct: %w", err)
	}
	if !ctxutil.IsAdminCtx(ctx) {
		owns, err := s.ownsListing(ctx, p.SellerID)
		if err != nil {
			return fmt.Errorf("catalog.DeleteProduct: %w", err)
		}
		if !owns {
			return domain.ErrForbidden
		}
	}

	if err := s.products.Delete(ctx, id); err != nil {
		return fmt.Errorf("catalog.DeleteProduct: %w", err)
	}
	s.log.InfoContext(ctx, "product deleted", slog.String("product_id", id.String()))
	return nil
}

// GetProduct returns a product. Non-active products are reported as not
// found to anyone but their seller and admins.
func (s *Service) GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("catalog.GetProduct: %w", err)
	}
	ok, err := s.canSeeListing(ctx, p.Status, p.SellerID)
	if err != nil {
		return nil, fmt.Errorf("catalog.GetProduct: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("catalog.GetProduct: %w", domain.ErrNotFound)
	}
	return p, nil
}

// ListProducts returns active products for the public catalog.
func (s *Service) ListProducts(ctx context.Context, input ListInput) (domain.Page[domain.Product], error) {
	if err := input.Validate(); err != nil {
		return domain.Page[domain.Product]{}, err
	}
	f := input.filter()
	active := domain.ListingStatusActive
	f.Status = &active

	items, total, err := s.products.List(ctx, f)
	if err != nil {
		return domain.Page[domain.Product]{}, fmt.Errorf("catalog.ListProducts: %w", err)
	}
	return domain.NewPage(items, total, f.PageRequest), nil
}

// ListOwnProducts returns the caller's products in any status.
func (s *Service) ListOwnProducts(ctx context.Context, input ListInput) (domain.Page[domain.Product], error) {
	if err := input.Validate(); err != nil {
		return domain.Page[domain.Product]{}, err
	}
	seller, err := s.currentSeller(ctx)
	if err != nil {
		return domain.Page[domain.Product]{}, fmt.Errorf("catalog.ListOwnProducts: %w", err)
	}
	f := input.filter()
	f.SellerID = &seller.ID

	items, total, err := s.products.List(ctx, f)
	if err != nil {
		return domain.Page[domain.Product]{}, fmt.Errorf("catalog.ListOwnProducts: %w", err)
	}
	return domain.NewPage(items, total, f.PageRequest), nil
}
