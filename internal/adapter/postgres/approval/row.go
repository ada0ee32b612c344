package approval

import (
	"time"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

type documentJSON struct {
	ID         uuid.UUID `json:"id"`
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Path       string    `json:"path"`
	Status     string    `json:"status"`
	UploadedAt time.Time `json:"uploadedAt"`
}

type approvalRow struct {
	ID              uuid.UUID      `db:"id"`
	Type            string         `db:"type"`
	Status          string         `db:"status"`
	RequesterModel  string         `db:"requester_model"`
	RequesterID     uuid.UUID      `db:"requester_id"`
	ItemModel       *string        `db:"item_model"`
	ItemID          *uuid.UUID     `db:"item_id"`
	Documents       []documentJSON `db:"documents"`
	AdminNotes      string         `db:"admin_notes"`
	ApprovedBy      *uuid.UUID     `db:"approved_by"`
	ApprovedAt      *time.Time     `db:"approved_at"`
	RejectedBy      *uuid.UUID     `db:"rejected_by"`
	RejectedAt      *time.Time     `db:"rejected_at"`
	RejectionReason string         `db:"rejection_reason"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

type detailRow struct {
	approvalRow
	SellerID       uuid.UUID `db:"seller_id"`
	UserID         uuid.UUID `db:"user_id"`
	RequesterName  string    `db:"requester_name"`
	RequesterEmail string    `db:"requester_email"`
	BusinessName   string    `db:"business_name"`
	ItemName       string    `db:"item_name"`
}

func (r approvalRow) toDomain() domain.Approval {
	a := domain.Approval{
		ID:     r.ID,
		Type:   domain.ApprovalType(r.Type),
		Status: domain.ApprovalStatus(r.Status),
		Requester: domain.RequesterRef{
			Model: domain.RequesterModel(r.RequesterModel),
			ID:    r.RequesterID,
		},
		Documents:       fromDocumentsJSON(r.Documents),
		AdminNotes:      r.AdminNotes,
		ApprovedBy:      r.ApprovedBy,
		ApprovedAt:      r.ApprovedAt,
		RejectedBy:      r.RejectedBy,
		RejectedAt:      r.RejectedAt,
		RejectionReason: r.RejectionReason,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	if r.ItemModel != nil && r.ItemID != nil {
		a.Item = &domain.ItemRef{Model: domain.ItemModel(*r.ItemModel), ID: *r.ItemID}
	}
	return a
}

func (r detailRow) toDomain() domain.ApprovalDetail {
	return domain.ApprovalDetail{
		Approval: r.approvalRow.toDomain(),
		Requester: domain.ApprovalRequester{
			SellerID:     r.SellerID,
			UserID:       r.UserID,
			Name:         r.RequesterName,
			Email:        r.RequesterEmail,
			BusinessName: r.BusinessName,
		},
		ItemName: r.ItemName,
	}
}

func toDocumentsJSON(docs []domain.ApprovalDocument) []documentJSON {
	out := make([]documentJSON, 0, len(docs))
	for _, d := range docs {
		out = append(out, documentJSON{
			ID:         d.ID,
			Type:       d.Type,
			Name:       d.Name,
			Path:       d.Path,
			Status:     string(d.Status),
			UploadedAt: d.UploadedAt,
		})
	}
	return out
}

func fromDocumentsJSON(docs []documentJSON) []domain.ApprovalDocument {
	out := make([]domain.ApprovalDocument, 0, len(docs))
	for _, d := range docs {
		out = append(out, domain.ApprovalDocument{
			ID:         d.ID,
			Type:       d.Type,
			Name:       d.Name,
			Path:       d.Path,
			Status:     domain.DocumentStatus(d.Status),
			UploadedAt: d.UploadedAt,
		})
	}
	return out
}
