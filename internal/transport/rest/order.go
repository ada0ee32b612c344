package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
	"github.com/limopeace/beatlenut-trails-sub002/internal/service/order"
)

const defaultQRSize = 256

type orderService interface {
	Create(ctx context.Context, input order.CreateInput) (*domain.Order, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	List(ctx context.Context, input order.ListInput, asBuyer bool) (domain.Page[domain.Order], error)
	UpdateStatus(ctx context.Context, id uuid.UUID, input order.StatusInput) (*domain.Order, error)
	UpdatePayment(ctx context.Context, id uuid.UUID, input order.PaymentInput) (*domain.Order, error)
	UpdateTracking(ctx context.Context, id uuid.UUID, input order.TrackingInput) (*domain.Order, error)
	Export(ctx context.Context, input order.ListInput) ([]byte, error)
	TrackingURL(o *domain.Order) string
	TrackingQR(ctx context.Context, id uuid.UUID, size int) ([]byte, error)
	Track(ctx context.Context, number string) (*order.Tracking, error)
}

// OrderHandler serves product orders.
type OrderHandler struct {
	svc orderService
	log *slog.Logger
}

// NewOrderHandler creates an OrderHandler.
func NewOrderHandler(svc orderService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{svc: svc, log: logger.With("handler", "order")}
}

type createOrderRequest struct {
	ProductID       string `json:"productId"`
	Quantity        int    `json:"quantity"`
	ShippingAddress string `json:"shippingAddress"`
	PaymentMethod   string `json:"paymentMethod"`
	Notes           string `json:"notes"`
}

type orderStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

type paymentRequest struct {
	Status        string `json:"paymentStatus"`
	PaymentMethod string `json:"paymentMethod"`
	Note          string `json:"note"`
}

type trackingRequest struct {
	TrackingNumber string `json:"trackingNumber"`
	Carrier        string `json:"carrier"`
}

type trackingResponse struct {
	OrderNumber    string       `json:"orderNumber"`
	Status         string       `json:"status"`
	Carrier        string       `json:"carrier,omitempty"`
	TrackingNumber string       `json:"trackingNumber,omitempty"`
	History        []historyDTO `json:"history"`
}

func (h *OrderHandler) dto(o *domain.Order) orderDTO {
	d := toOrder(o)
	d.TrackingURL = h.svc.TrackingURL(o)
	return d
}

func orderListInput(r *http.Request) (order.ListInput, error) {
	from, to, err := dateRange(r)
	if err != nil {
		return order.ListInput{}, err
	}
	q := r.URL.Query()
	return order.ListInput{
		Status:        q.Get("status"),
		PaymentStatus: q.Get("paymentStatus"),
		Search:        q.Get("search"),
		From:          from,
		To:            to,
		PageRequest:   pageRequest(r),
	}, nil
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		handleError(w, r, h.log, domain.NewValidationError("productId", "invalid id"))
		return
	}

	o, err := h.svc.Create(r.Context(), order.CreateInput{
		ProductID:       productID,
		Quantity:        req.Quantity,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		Notes:           req.Notes,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusCreated, h.dto(o))
}

// Get handles GET /api/orders/{id}.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	o, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, h.dto(o))
}

// List handles GET /api/orders. Sellers see orders for their products unless
// ?as=buyer asks for the orders they placed themselves.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := orderListInput(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	page, err := h.svc.List(r.Context(), input, r.URL.Query().Get("as") == "buyer")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toList(page, h.dto))
}

// UpdateStatus handles PATCH /api/orders/{id}/status.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req orderStatusRequest
	h.update(w, r, &req, func(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
		return h.svc.UpdateStatus(ctx, id, order.StatusInput{Status: req.Status, Note: req.Note})
	})
}

// UpdatePayment handles PATCH /api/orders/{id}/payment.
func (h *OrderHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	h.update(w, r, &req, func(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
		return h.svc.UpdatePayment(ctx, id, order.PaymentInput{
			Status:        req.Status,
			PaymentMethod: req.PaymentMethod,
			Note:          req.Note,
		})
	})
}

// UpdateTracking handles PATCH /api/orders/{id}/tracking.
func (h *OrderHandler) UpdateTracking(w http.ResponseWriter, r *http.Request) {
	var req trackingRequest
	h.update(w, r, &req, func(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
		return h.svc.UpdateTracking(ctx, id, order.TrackingInput{
			TrackingNumber: req.TrackingNumber,
			Carrier:        req.Carrier,
		})
	})
}

func (h *OrderHandler) update(w http.ResponseWriter, r *http.Request, req any,
	fn func(context.Context, uuid.UUID) (*domain.Order, error),
) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := decodeJSON(r, req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	o, err := fn(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, h.dto(o))
}

// QR handles GET /api/orders/{id}/qr and returns a PNG of the tracking URL.
func (h *OrderHandler) QR(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	size := defaultQRSize
	if v, err := strconv.Atoi(r.URL.Query().Get("size")); err == nil && v >= 64 && v <= 1024 {
		size = v
	}

	png, err := h.svc.TrackingQR(r.Context(), id, size)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeFile(w, "image/png", "", png)
}

// Track handles GET /api/orders/track/{number}. Public.
func (h *OrderHandler) Track(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.Track(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, trackingResponse{
		OrderNumber:    t.OrderNumber,
		Status:         t.Status.String(),
		Carrier:        t.Carrier,
		TrackingNumber: t.TrackingNumber,
		History:        mapSlice(t.History, toHistory),
	})
}

// Export handles GET /api/admin/orders/export.
func (h *OrderHandler) Export(w http.ResponseWriter, r *http.Request) {
	input, err := orderListInput(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	body, err := h.svc.Export(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeFile(w, xlsxContentType, "orders-"+time.Now().UTC().Format("20060102")+".xlsx", body)
}
