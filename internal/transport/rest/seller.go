package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
	"github.com/limopeace/beatlenut-trails-sub002/internal/service/seller"
)

type sellerService interface {
	GetProfile(ctx context.Context) (*domain.SellerWithUser, error)
	UpdateProfile(ctx context.Context, input seller.UpdateProfileInput) (*domain.Seller, error)
	SubmitDocuments(ctx context.Context, docs []domain.DocumentUpload) (*domain.Approval, error)
	GetPublic(ctx context.Context, id uuid.UUID) (*seller.PublicPage, error)
	List(ctx context.Context, input seller.ListInput) (domain.Page[domain.SellerWithUser], error)
	SetStatus(ctx context.Context, id uuid.UUID, input seller.SetStatusInput) (*domain.SellerWithUser, error)
}

// SellerHandler serves seller profile endpoints.
type SellerHandler struct {
	svc    sellerService
	upload uploader
	log    *slog.Logger
}

// NewSellerHandler creates a SellerHandler.
func NewSellerHandler(svc sellerService, store fileStore, limits UploadLimits, logger *slog.Logger) *SellerHandler {
	log := logger.With("handler", "seller")
	return &SellerHandler{
		svc:    svc,
		upload: newUploader(store, limits, log),
		log:    log,
	}
}

type sellerProfileRequest struct {
	BusinessName  *string `json:"businessName"`
	ServiceBranch *string `json:"serviceBranch"`
	Rank          *string `json:"rank"`
	ServiceNumber *string `json:"serviceNumber"`
	Category      *string `json:"category"`
	Description   *string `json:"description"`
	City          *string `json:"city"`
	State         *string `json:"state"`
}

type sellerStatusRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

type publicSellerResponse struct {
	Seller sellerDTO        `json:"seller"`
	Rating reviewSummaryDTO `json:"rating"`
}

// Profile handles GET /api/sellers/me.
func (h *SellerHandler) Profile(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.GetProfile(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toSellerWithUser(s))
}

// UpdateProfile handles PUT /api/sellers/me.
func (h *SellerHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req sellerProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	s, err := h.svc.UpdateProfile(r.Context(), seller.UpdateProfileInput{
		BusinessName:  req.BusinessName,
		ServiceBranch: req.ServiceBranch,
		Rank:          req.Rank,
		ServiceNumber: req.ServiceNumber,
		Category:      req.Category,
		Description:   req.Description,
		City:          req.City,
		State:         req.State,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toSeller(s))
}

// SubmitDocuments handles POST /api/sellers/me/documents (multipart).
func (h *SellerHandler) SubmitDocuments(w http.ResponseWriter, r *http.Request) {
	if !isMultipart(r) {
		handleError(w, r, h.log, domain.NewValidationError("documents", "multipart form required"))
		return
	}
	if err := h.upload.parseForm(w, r); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	files, err := h.upload.save(r, "documents", "documents")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	a, err := h.svc.SubmitDocuments(r.Context(), documentUploads(files, formList(r, "documentTypes")))
	if err != nil {
		h.upload.discard(r.Context(), files)
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusCreated, toApproval(a))
}

// Public handles GET /api/sellers/{id}.
func (h *SellerHandler) Public(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	page, err := h.svc.GetPublic(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, publicSellerResponse{
		Seller: toSellerWithUser(&page.Seller),
		Rating: toReviewSummary(page.Rating),
	})
}

// List handles GET /api/admin/sellers.
func (h *SellerHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := h.svc.List(r.Context(), seller.ListInput{
		Status:      q.Get("status"),
		Search:      q.Get("search"),
		PageRequest: pageRequest(r),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toList(page, toSellerWithUser))
}

// SetStatus handles PATCH /api/admin/sellers/{id}/status.
func (h *SellerHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req sellerStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	s, err := h.svc.SetStatus(r.Context(), id, seller.SetStatusInput{Status: req.Status, Reason: req.Reason})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toSellerWithUser(s))
}
