package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
)

type dashboardService interface {
	Admin(ctx context.Context) (*domain.AdminDashboard, error)
	Seller(ctx context.Context) (*domain.SellerDashboard, error)
}

// DashboardHandler serves the admin and seller overviews.
type DashboardHandler struct {
	svc dashboardService
	log *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: logger.With("handler", "dashboard")}
}

type countsDTO struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"byStatus"`
}

func toCounts(c domain.StatusCounts) countsDTO {
	if c == nil {
		c = domain.StatusCounts{}
	}
	return countsDTO{Total: c.Total(), ByStatus: c}
}

type adminDashboardDTO struct {
	Users       countsDTO        `json:"users"`
	Sellers     countsDTO        `json:"sellers"`
	Products    countsDTO        `json:"products"`
	Services    countsDTO        `json:"services"`
	Orders      countsDTO        `json:"orders"`
	Revenue     float64          `json:"revenue"`
	Approvals   approvalStatsDTO `json:"approvals"`
	GeneratedAt time.Time        `json:"generatedAt"`
}

type sellerDashboardDTO struct {
	Products            countsDTO        `json:"products"`
	Services            countsDTO        `json:"services"`
	Orders              countsDTO        `json:"orders"`
	Revenue             float64          `json:"revenue"`
	UnreadConversations int              `json:"unreadConversations"`
	PendingBookings     int              `json:"pendingBookings"`
	Rating              reviewSummaryDTO `json:"rating"`
	GeneratedAt         time.Time        `json:"generatedAt"`
}

// Admin handles GET /api/admin/dashboard.
func (h *DashboardHandler) Admin(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Admin(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, adminDashboardDTO{
		Users:       toCounts(d.Users),
		Sellers:     toCounts(d.Sellers),
		Products:    toCounts(d.Products),
		Services:    toCounts(d.Services),
		Orders:      toCounts(d.Orders),
		Revenue:     d.Revenue,
		Approvals:   toApprovalStats(d.Approvals),
		GeneratedAt: d.GeneratedAt,
	})
}

// Seller handles GET /api/sellers/me/dashboard.
func (h *DashboardHandler) Seller(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Seller(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeData(w, http.StatusOK, sellerDashboardDTO{
		Products:            toCounts(d.Products),
		Services:            toCounts(d.Services),
		Orders:              toCounts(d.Orders),
		Revenue:             d.Revenue,
		UnreadConversations: d.UnreadConversations,
		PendingBookings:     d.PendingBookings,
		Rating:              toReviewSummary(d.Rating),
		GeneratedAt:         d.GeneratedAt,
	})
}
