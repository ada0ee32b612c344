package approval

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

// CreateSellerApproval opens a seller_registration approval with the
// documents uploaded at registration.
func (s *Service) CreateSellerApproval(ctx context.Context, sellerID uuid.UUID, docs []domain.DocumentUpload) (*domain.Approval, error) {
	if err := validateDocuments(docs, false); err != nil {
		return nil, err
	}
	if _, err := s.sellers.GetByID(ctx, sellerID); err != nil {
		return nil, fmt.Errorf("approval.CreateSellerApproval: %w", err)
	}
	return s.create(ctx, domain.ApprovalTypeSellerRegistration, sellerID, nil, docs)
}

// CreateProductApproval opens a product_listing approval on behalf of the
// product's seller.
func (s *Service) CreateProductApproval(ctx context.Context, productID uuid.UUID) (*domain.Approval, error) {
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("approval.CreateProductApproval: %w", err)
	}
	item := &domain.ItemRef{Model: domain.ItemModelProduct, ID: p.ID}
	return s.create(ctx, domain.ApprovalTypeProductListing, p.SellerID, item, nil)
}

// CreateServiceApproval opens a service_listing approval on behalf of the
// listing's seller.
func (s *Service) CreateServiceApproval(ctx context.Context, serviceID uuid.UUID) (*domain.Approval, error) {
	l, err := s.services.GetByID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("approval.CreateServiceApproval: %w", err)
	}
	item := &domain.ItemRef{Model: domain.ItemModelService, ID: l.ID}
	return s.create(ctx, domain.ApprovalTypeServiceListing, l.SellerID, item, nil)
}

// CreateDocumentApproval opens a document_verification approval for
// documents a seller submits after registration.
func (s *Service) CreateDocumentApproval(ctx context.Context, sellerID uuid.UUID, docs []domain.DocumentUpload) (*domain.Approval, error) {
	if err := validateDocuments(docs, true); err != nil {
		return nil, err
	}
	if _, err := s.sellers.GetByID(ctx, sellerID); err != nil {
		return nil, fmt.Errorf("approval.CreateDocumentApproval: %w", err)
	}
	return s.create(ctx, domain.ApprovalTypeDocumentVerification, sellerID, nil, docs)
}

func (s *Service) create(
	ctx context.Context,
	typ domain.ApprovalType,
	sellerID uuid.UUID,
	item *domain.ItemRef,
	docs []domain.DocumentUpload,
) (*domain.Approval, error) {
	refID := sellerID
	if item != nil {
		refID = item.ID
	}
	pending, err := s.approvals.HasPending(ctx, typ, refID)
	if err != nil {
		return nil, fmt.Errorf("approval.create %s: %w", typ, err)
	}
	if pending {
		return nil, domain.NewStateError("A pending %s approval already exists", typ)
	}

	now := s.now()
	a := &domain.Approval{
		ID:        uuid.New(),
		Type:      typ,
		Status:    domain.ApprovalStatusPending,
		Requester: domain.RequesterRef{Model: domain.RequesterModelSeller, ID: sellerID},
		Item:      item,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, d := range docs {
		name := strings.TrimSpace(d.Name)
		if name == "" {
			name = d.Path
		}
		a.Documents = append(a.Documents, domain.ApprovalDocument{
			ID:         uuid.New(),
			Type:       strings.TrimSpace(d.Type),
			Name:       name,
			Path:       d.Path,
			Status:     domain.DocumentStatusPending,
			UploadedAt: now,
		})
	}

	if err := s.approvals.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("approval.create %s: %w", typ, err)
	}

	s.log.InfoContext(ctx, "approval created",
		slog.String("approval_id", a.ID.String()),
		slog.String("type", typ.String()),
		slog.String("seller_id", sellerID.String()))

	return a, nil
}
