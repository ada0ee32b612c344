package approval

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/adapter/report"
	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

// GetApprovals returns a filtered page of the admin queue, newest first.
func (s *Service) GetApprovals(ctx context.Context, input ListInput) (domain.Page[domain.ApprovalDetail], error) {
	if err := input.Validate(); err != nil {
		return domain.Page[domain.ApprovalDetail]{}, err
	}

	f := input.filter()
	items, total, err := s.approvals.List(ctx, f)
	if err != nil {
		return domain.Page[domain.ApprovalDetail]{}, fmt.Errorf("approval.GetApprovals: %w", err)
	}
	return domain.NewPage(items, total, f.PageRequest), nil
}

// GetApproval returns one approval with requester and item details.
func (s *Service) GetApproval(ctx context.Context, id uuid.UUID) (*domain.ApprovalDetail, error) {
	d, err := s.approvals.GetDetail(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("approval.GetApproval: %w", err)
	}
	return d, nil
}

// GetApprovalStats counts pending approvals overall and per type.
func (s *Service) GetApprovalStats(ctx context.Context) (domain.ApprovalStats, error) {
	stats, err := s.approvals.PendingStats(ctx)
	if err != nil {
		return domain.ApprovalStats{}, fmt.Errorf("approval.GetApprovalStats: %w", err)
	}
	return stats, nil
}

// ExportApprovals renders the filtered queue as an xlsx workbook. Paging is
// ignored; at most ExportMaxRows rows are written.
func (s *Service) ExportApprovals(ctx context.Context, input ListInput) ([]byte, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	items, err := s.approvals.ListAll(ctx, input.filter(), s.cfg.ExportMaxRows)
	if err != nil {
		return nil, fmt.Errorf("approval.ExportApprovals: %w", err)
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, report.ApprovalsSheet(items)); err != nil {
		return nil, fmt.Errorf("approval.ExportApprovals render: %w", err)
	}
	return buf.Bytes(), nil
}
