package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
	"github.com/limopeace/beatlenut-trails-sub002/internal/service/booking"
)

type bookingService interface {
	Create(ctx context.Context, input booking.CreateInput) (*domain.Booking, error)
	Confirm(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	Complete(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	Cancel(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	List(ctx context.Context, input booking.ListInput, asBuyer bool) (domain.Page[domain.Booking], error)
}

// BookingHandler serves service bookings.
type BookingHandler struct {
	svc bookingService
	log *slog.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc bookingService, logger *slog.Logger) *BookingHandler {
	return &BookingHandler{svc: svc, log: logger.With("handler", "booking")}
}

type bookingRequest struct {
	ServiceID   string    `json:"serviceId"`
	ScheduledAt time.Time `json:"scheduledAt"`
	Notes       string    `json:"notes"`
}

// Create handles POST /api/bookings.
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		handleError(w, r, h.log, domain.NewValidationError("serviceId", "invalid id"))
		return
	}

	b, err := h.svc.Create(r.Context(), booking.CreateInput{
		ServiceID:   serviceID,
		ScheduledAt: req.ScheduledAt,
		Notes:       req.Notes,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusCreated, toBooking(b))
}

// List handles GET /api/bookings. ?as=buyer lists a seller's own bookings.
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.List(r.Context(), booking.ListInput{
		Status:      r.URL.Query().Get("status"),
		PageRequest: pageRequest(r),
	}, r.URL.Query().Get("as") == "buyer")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toList(page, toBooking))
}

// Get handles GET /api/bookings/{id}.
func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, h.svc.Get)
}

// Confirm handles PATCH /api/bookings/{id}/confirm.
func (h *BookingHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, h.svc.Confirm)
}

// Complete handles PATCH /api/bookings/{id}/complete.
func (h *BookingHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, h.svc.Complete)
}

// Cancel handles PATCH /api/bookings/{id}/cancel.
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, h.svc.Cancel)
}

func (h *BookingHandler) byID(w http.ResponseWriter, r *http.Request,
	fn func(context.Context, uuid.UUID) (*domain.Booking, error),
) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	b, err := fn(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toBooking(b))
}
