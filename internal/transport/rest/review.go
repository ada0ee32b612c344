package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
	"github.com/limopeace/beatlenut-trails-sub002/internal/service/review"
)

type reviewService interface {
	Create(ctx context.Context, input review.CreateInput) (*domain.Review, error)
	ListByItem(ctx context.Context, itemID uuid.UUID, p domain.PageRequest) (*review.ItemReviews, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetHidden(ctx context.Context, id uuid.UUID, hidden bool) error
}

// ReviewHandler serves listing reviews.
type ReviewHandler struct {
	svc reviewService
	log *slog.Logger
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc reviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{svc: svc, log: logger.With("handler", "review")}
}

type reviewRequest struct {
	ItemType string `json:"itemType"`
	ItemID   string `json:"itemId"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

type visibilityRequest struct {
	Hidden bool `json:"hidden"`
}

type itemReviewsResponse struct {
	listDTO[reviewDTO]
	Summary reviewSummaryDTO `json:"summary"`
}

// Create handles POST /api/reviews.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		handleError(w, r, h.log, domain.NewValidationError("itemId", "invalid id"))
		return
	}

	rv, err := h.svc.Create(r.Context(), review.CreateInput{
		ItemKind: req.ItemType,
		ItemID:   itemID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusCreated, toReview(rv))
}

// ListByItem handles GET /api/reviews/item/{id}.
func (h *ReviewHandler) ListByItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.svc.ListByItem(r.Context(), id, pageRequest(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, itemReviewsResponse{
		listDTO: toList(res.Page, toReview),
		Summary: toReviewSummary(res.Summary),
	})
}

// Delete handles DELETE /api/reviews/{id}.
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeMessage(w, "Review deleted")
}

// SetVisibility handles PATCH /api/admin/reviews/{id}/visibility.
func (h *ReviewHandler) SetVisibility(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req visibilityRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.svc.SetHidden(r.Context(), id, req.Hidden); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeMessage(w, "Review visibility updated")
}
