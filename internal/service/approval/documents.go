package approval

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

// UpdateDocumentStatus changes the status of one document embedded in an
// approval. Returns ErrNotFound when the document is not attached to it.
func (s *Service) UpdateDocumentStatus(ctx context.Context, approvalID, documentID uuid.UUID, input DocumentStatusInput) (*domain.Approval, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Approval
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		a, err := s.approvals.GetForUpdate(txCtx, approvalID)
		if err != nil {
			return err
		}
		if err := a.SetDocumentStatus(documentID, domain.DocumentStatus(input.Status), s.now()); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("document %s: %w", documentID, domain.ErrNotFound)
			}
			return err
		}
		if err := s.approvals.UpdateDocuments(txCtx, a); err != nil {
			return err
		}
		updated = a
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("approval.UpdateDocumentStatus: %w", err)
	}

	s.log.InfoContext(ctx, "approval document updated",
		slog.String("approval_id", approvalID.String()),
		slog.String("document_id", documentID.String()),
		slog.String("status", input.Status))
	return updated, nil
}
