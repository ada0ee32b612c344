package order

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/limopeace/beatlenut-trails-sub002/internal/adapter/qrcode"
	"github.com/limopeace/beatlenut-trails-sub002/internal/adapter/report"
	"github.com/limopeace/beatlenut-trails-sub002/internal/domain"
	"github.com/limopeace/beatlenut-trails-sub002/pkg/ctxutil"
)

// Get returns an order to its buyer, its seller or an admin.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	c, err := s.caller(ctx)
	if err != nil {
		return nil, fmt.Errorf("order.Get: %w", err)
	}
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("order.Get: %w", err)
	}
	if c.partyTo(o) == partyNone {
		return nil, domain.ErrForbidden
	}
	return o, nil
}

// List returns orders scoped to the caller: admins see all orders, sellers
// the orders for their products, everyone else their own purchases.
// asBuyer forces the purchase view for a seller who also buys.
func (s *Service) List(ctx context.Context, input ListInput, asBuyer bool) (domain.Page[domain.Order], error) {
	if err := input.Validate(); err != nil {
		return domain.Page[domain.Order]{}, err
	}
	c, err := s.caller(ctx)
	if err != nil {
		return domain.Page[domain.Order]{}, fmt.Errorf("order.List: %w", err)
	}

	f := input.filter()
	switch {
	case c.admin && !asBuyer:
		// unscoped
	case c.sellerID != nil && !asBuyer:
		f.SellerID = c.sellerID
	default:
		f.BuyerID = &c.userID
	}

	items, total, err := s.orders.List(ctx, f)
	if err != nil {
		return domain.Page[domain.Order]{}, fmt.Errorf("order.List: %w", err)
	}
	return domain.NewPage(items, total, f.PageRequest), nil
}

// Export renders the filtered orders as an xlsx workbook. Admin only.
func (s *Service) Export(ctx context.Context, input ListInput) ([]byte, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	orders, err := s.orders.ListAll(ctx, input.filter(), s.cfg.ExportMaxRows)
	if err != nil {
		return nil, fmt.Errorf("order.Export: %w", err)
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, report.OrdersSheet(orders)); err != nil {
		return nil, fmt.Errorf("order.Export render: %w", err)
	}
	return buf.Bytes(), nil
}

// TrackingURL is the public page a tracking QR code points to.
func (s *Service) TrackingURL(o *domain.Order) string {
	return s.cfg.PublicBaseURL + "/track/" + o.OrderNumber
}

// TrackingQR renders a PNG QR code linking to the order's tracking page.
func (s *Service) TrackingQR(ctx context.Context, id uuid.UUID, size int) ([]byte, error) {
	o, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	png, err := qrcode.PNG(s.TrackingURL(o), size)
	if err != nil {
		return nil, fmt.Errorf("order.TrackingQR: %w", err)
	}
	return png, nil
}

// Tracking is the public view of an order's shipment progress.
type Tracking struct {
	OrderNumber    string
	Status         domain.OrderStatus
	Carrier        string
	TrackingNumber string
	History        []domain.OrderHistoryEntry
}

// Track returns the public tracking view for an order number. Only status
// and tracking entries are exposed.
func (s *Service) Track(ctx context.Context, number string) (*Tracking, error) {
	o, err := s.orders.GetByNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("order.Track: %w", err)
	}
	t := &Tracking{
		OrderNumber:    o.OrderNumber,
		Status:         o.Status,
		Carrier:        o.Carrier,
		TrackingNumber: o.TrackingNumber,
		History:        []domain.OrderHistoryEntry{},
	}
	for _, h := range o.StatusHistory {
		if h.Kind == domain.HistoryKindPayment {
			continue
		}
		h.ChangedBy = uuid.Nil
		t.History = append(t.History, h)
	}
	return t, nil
}
