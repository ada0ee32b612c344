package approval

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

// ApproveRequest approves a pending approval and activates the item under
// review in the same transaction.
func (s *Service) ApproveRequest(ctx context.Context, id uuid.UUID, input ApproveInput) (*domain.Approval, error) {
	adminID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	notes := strings.TrimSpace(input.Notes)
	a, err := s.decide(ctx, id, func(a *domain.Approval, now time.Time) error {
		return a.Approve(adminID, notes, now)
	})
	if err != nil {
		return nil, fmt.Errorf("approval.ApproveRequest: %w", err)
	}

	s.log.InfoContext(ctx, "approval approved",
		slog.String("approval_id", a.ID.String()),
		slog.String("type", a.Type.String()),
		slog.String("admin_id", adminID.String()))
	return a, nil
}

// RejectRequest rejects a pending approval with a mandatory reason and marks
// the item under review rejected in the same transaction.
func (s *Service) RejectRequest(ctx context.Context, id uuid.UUID, input RejectInput) (*domain.Approval, error) {
	adminID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	notes := strings.TrimSpace(input.Notes)
	a, err := s.decide(ctx, id, func(a *domain.Approval, now time.Time) error {
		return a.Reject(adminID, input.Reason, notes, now)
	})
	if err != nil {
		return nil, fmt.Errorf("approval.RejectRequest: %w", err)
	}

	s.log.InfoContext(ctx, "approval rejected",
		slog.String("approval_id", a.ID.String()),
		slog.String("type", a.Type.String()),
		slog.String("admin_id", adminID.String()))
	return a, nil
}

// decide locks the approval, applies the transition, persists it guarded by
// the pending status and cascades to the referenced entity. The requester is
// notified after commit.
func (s *Service) decide(ctx context.Context, id uuid.UUID, apply func(*domain.Approval, time.Time) error) (*domain.Approval, error) {
	var (
		decided   *domain.Approval
		requester uuid.UUID
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		a, err := s.approvals.GetForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if err := apply(a, s.now()); err != nil {
			return err
		}
		if err := s.approvals.Decide(txCtx, a); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				return domain.NewStateError("Approval is already processed")
			}
			return err
		}

		seller, err := s.sellers.GetByID(txCtx, a.Requester.ID)
		if err != nil {
			return fmt.Errorf("load requester: %w", err)
		}
		if err := s.cascade(txCtx, a); err != nil {
			return fmt.Errorf("cascade %s: %w", a.Type, err)
		}

		decided, requester = a, seller.UserID
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify.Notify(ctx, decisionNotification(decided, requester))
	return decided, nil
}

// cascade propagates a decision to the entity under review.
func (s *Service) cascade(ctx context.Context, a *domain.Approval) error {
	approved := a.Status == domain.ApprovalStatusApproved

	listingStatus, sellerStatus, docStatus := domain.ListingStatusRejected, domain.SellerStatusRejected, domain.DocumentStatusRejected
	if approved {
		listingStatus, sellerStatus, docStatus = domain.ListingStatusActive, domain.SellerStatusActive, domain.DocumentStatusVerified
	}

	switch a.Type {
	case domain.ApprovalTypeSellerRegistration:
		if err := s.sellers.SetVerification(ctx, a.Requester.ID, approved, sellerStatus, a.RejectionReason); err != nil {
			return err
		}
		return s.settleDocuments(ctx, a, docStatus)

	case domain.ApprovalTypeProductListing:
		if a.Item == nil || a.Item.Model != domain.ItemModelProduct {
			return fmt.Errorf("approval %s does not reference a product", a.ID)
		}
		return s.products.SetStatus(ctx, a.Item.ID, listingStatus, a.RejectionReason)

	case domain.ApprovalTypeServiceListing:
		if a.Item == nil || a.Item.Model != domain.ItemModelService {
			return fmt.Errorf("approval %s does not reference a service", a.ID)
		}
		return s.services.SetStatus(ctx, a.Item.ID, listingStatus, a.RejectionReason)

	case domain.ApprovalTypeDocumentVerification:
		return s.settleDocuments(ctx, a, docStatus)

	default:
		return fmt.Errorf("unknown approval type %q", a.Type)
	}
}

func (s *Service) settleDocuments(ctx context.Context, a *domain.Approval, status domain.DocumentStatus) error {
	if len(a.Documents) == 0 {
		return nil
	}
	a.SetAllDocuments(status)
	return s.approvals.UpdateDocuments(ctx, a)
}

func decisionNotification(a *domain.Approval, userID uuid.UUID) domain.Notification {
	var subject, link string
	switch a.Type {
	case domain.ApprovalTypeSellerRegistration:
		subject, link = "Your seller registration", "/esm-portal/dashboard"
	case domain.ApprovalTypeProductListing:
		subject, link = "Your product listing", "/esm-portal/products"
	case domain.ApprovalTypeServiceListing:
		subject, link = "Your service listing", "/esm-portal/services"
	case domain.ApprovalTypeDocumentVerification:
		subject, link = "Your documents", "/esm-portal/profile"
	}
	if a.Item != nil {
		link += "/" + a.Item.ID.String()
	}

	n := domain.Notification{UserID: userID, Type: domain.NotificationTypeApproval, Link: link}
	if a.Status == domain.ApprovalStatusApproved {
		n.Title = subject + " was approved"
		n.Message = a.AdminNotes
	} else {
		n.Title = subject + " was rejected"
		n.Message = "Reason: " + a.RejectionReason
	}
	return n
}
