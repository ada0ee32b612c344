package approval

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
	"github.com/limopeace/beatlenut-trails-sub002/pkg/ctxutil"
)

// ProcessBatch applies approve/reject decisions one by one. Every item is
// independent: a failure is recorded in Failed and processing continues.
func (s *Service) ProcessBatch(ctx context.Context, items []domain.ApprovalDecision) (*domain.BatchResult, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if len(items) == 0 {
		return nil, domain.NewValidationError("items", "at least one item is required")
	}
	if len(items) > maxBatchSize {
		return nil, domain.NewValidationError("items", fmt.Sprintf("at most %d items per batch", maxBatchSize))
	}

	res := &domain.BatchResult{
		Successful: []domain.BatchSuccess{},
		Failed:     []domain.BatchFailure{},
	}
	for _, it := range items {
		id, err := uuid.Parse(it.ID)
		if err != nil {
			res.Failed = append(res.Failed, domain.BatchFailure{ID: it.ID, Error: "Invalid approval id"})
			continue
		}

		var a *domain.Approval
		action := domain.ApprovalAction(it.Action)
		switch action {
		case domain.ApprovalActionApprove:
			a, err = s.ApproveRequest(ctx, id, ApproveInput{Notes: it.Notes})
		case domain.ApprovalActionReject:
			a, err = s.RejectRequest(ctx, id, RejectInput{Reason: it.Reason, Notes: it.Notes})
		default:
			res.Failed = append(res.Failed, domain.BatchFailure{ID: it.ID, Error: "Invalid action: " + it.Action})
			continue
		}
		if err != nil {
			res.Failed = append(res.Failed, domain.BatchFailure{ID: it.ID, Error: s.failureMessage(ctx, it.ID, err)})
			continue
		}

		res.Successful = append(res.Successful, domain.BatchSuccess{ID: a.ID, Action: action, Type: a.Type, Item: a.Item})
	}

	s.log.InfoContext(ctx, "approval batch processed",
		slog.Int("successful", len(res.Successful)),
		slog.Int("failed", len(res.Failed)))
	return res, nil
}

// failureMessage turns an item error into a client-safe message.
func (s *Service) failureMessage(ctx context.Context, id string, err error) string {
	var se *domain.StateError
	if errors.As(err, &se) {
		return se.Message
	}
	var ve *domain.ValidationError
	if errors.As(err, &ve) && len(ve.Errors) > 0 {
		return ve.Errors[0].Message
	}
	if errors.Is(err, domain.ErrNotFound) {
		return "Approval not found"
	}

	s.log.ErrorContext(ctx, "approval batch item failed",
		slog.String("approval_id", id),
		slog.String("error", err.Error()))
	return "Internal error"
}
