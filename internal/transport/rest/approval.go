package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
	"github.com/limopeace/beatlenut-trails-sub002/internal/service/approval"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type approvalService interface {
	GetApprovals(ctx context.Context, input approval.ListInput) (domain.Page[domain.ApprovalDetail], error)
	GetApproval(ctx context.Context, id uuid.UUID) (*domain.ApprovalDetail, error)
	GetApprovalStats(ctx context.Context) (domain.ApprovalStats, error)
	ApproveRequest(ctx context.Context, id uuid.UUID, input approval.ApproveInput) (*domain.Approval, error)
	RejectRequest(ctx context.Context, id uuid.UUID, input approval.RejectInput) (*domain.Approval, error)
	UpdateDocumentStatus(ctx context.Context, approvalID, documentID uuid.UUID, input approval.DocumentStatusInput) (*domain.Approval, error)
	ProcessBatch(ctx context.Context, items []domain.ApprovalDecision) (*domain.BatchResult, error)
	ExportApprovals(ctx context.Context, input approval.ListInput) ([]byte, error)
}

// ApprovalHandler serves the admin approval queue.
type ApprovalHandler struct {
	svc approvalService
	log *slog.Logger
}

// NewApprovalHandler creates an ApprovalHandler.
func NewApprovalHandler(svc approvalService, logger *slog.Logger) *ApprovalHandler {
	return &ApprovalHandler{svc: svc, log: logger.With("handler", "approval")}
}

type approveRequest struct {
	Notes string `json:"notes"`
}

type rejectRequest struct {
	Reason string `json:"reason"`
	Notes  string `json:"notes"`
}

type documentStatusRequest struct {
	Status string `json:"status"`
}

type batchRequest struct {
	Items []struct {
		ID     string `json:"id"`
		Action string `json:"action"`
		Reason string `json:"reason"`
		Notes  string `json:"notes"`
	} `json:"items"`
}

func listApprovalsInput(r *http.Request) (approval.ListInput, error) {
	from, to, err := dateRange(r)
	if err != nil {
		return approval.ListInput{}, err
	}
	q := r.URL.Query()
	return approval.ListInput{
		Status:      q.Get("status"),
		Type:        q.Get("type"),
		Search:      q.Get("search"),
		From:        from,
		To:          to,
		PageRequest: pageRequest(r),
	}, nil
}

// List handles GET /api/admin/approvals.
func (h *ApprovalHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := listApprovalsInput(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	page, err := h.svc.GetApprovals(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toList(page, toApprovalDetail))
}

// Get handles GET /api/admin/approvals/{id}.
func (h *ApprovalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	a, err := h.svc.GetApproval(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toApprovalDetail(a))
}

// Stats handles GET /api/admin/approvals/stats.
func (h *ApprovalHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetApprovalStats(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toApprovalStats(stats))
}

// Approve handles PATCH /api/admin/approvals/{id}/approve.
func (h *ApprovalHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req approveRequest
	if err := decodeOptionalJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	a, err := h.svc.ApproveRequest(r.Context(), id, approval.ApproveInput{Notes: req.Notes})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: toApproval(a), Message: "Request approved"})
}

// Reject handles PATCH /api/admin/approvals/{id}/reject.
func (h *ApprovalHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req rejectRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	a, err := h.svc.RejectRequest(r.Context(), id, approval.RejectInput{Reason: req.Reason, Notes: req.Notes})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: toApproval(a), Message: "Request rejected"})
}

// DocumentStatus handles PATCH /api/admin/approvals/{id}/documents/{documentId}.
func (h *ApprovalHandler) DocumentStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	docID, err := pathUUID(r, "documentId")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req documentStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	a, err := h.svc.UpdateDocumentStatus(r.Context(), id, docID, approval.DocumentStatusInput{Status: req.Status})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toApproval(a))
}

// Batch handles POST /api/admin/approvals/batch.
func (h *ApprovalHandler) Batch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items := make([]domain.ApprovalDecision, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.ApprovalDecision{ID: it.ID, Action: it.Action, Reason: it.Reason, Notes: it.Notes})
	}

	result, err := h.svc.ProcessBatch(r.Context(), items)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toBatchResult(result))
}

// Export handles GET /api/admin/approvals/export.
func (h *ApprovalHandler) Export(w http.ResponseWriter, r *http.Request) {
	input, err := listApprovalsInput(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	body, err := h.svc.ExportApprovals(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeFile(w, xlsxContentType, "approvals-"+time.Now().UTC().Format("20060102")+".xlsx", body)
}
